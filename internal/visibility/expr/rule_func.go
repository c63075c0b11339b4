package expr

import (
	"github.com/bornholm/menud/internal/syncx"
	"github.com/bornholm/menud/pkg/menu"
	"github.com/pkg/errors"
)

// RuleFunc returns a menu.RuleFunc evaluating item rules as expr
// scripts against the session map. Compiled programs are cached per
// script so repeated renders do not recompile.
func RuleFunc() menu.RuleFunc {
	var rules syncx.Map[string, *Rule]

	return func(script string, session menu.Session) (bool, error) {
		rule, _ := rules.LoadOrStore(script, NewRule(script))

		visible, err := rule.Exec(map[string]any(session))
		if err != nil {
			return false, errors.WithStack(err)
		}

		return visible, nil
	}
}
