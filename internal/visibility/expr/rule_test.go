package expr

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestRule(t *testing.T) {
	type testCase struct {
		Script      string
		Env         map[string]any
		Visible     bool
		ExpectError bool
	}

	testCases := []testCase{
		{
			Script:  "true",
			Env:     map[string]any{},
			Visible: true,
		},
		{
			Script:  `read == 1 && write == 1`,
			Env:     map[string]any{"read": 1, "write": 1},
			Visible: true,
		},
		{
			Script:  `read == 1 && write == 1`,
			Env:     map[string]any{"read": 1, "write": 0},
			Visible: false,
		},
		{
			Script:  `profile > 0`,
			Env:     map[string]any{"profile": 42},
			Visible: true,
		},
		{
			// Undefined variables resolve to nil instead of failing.
			Script:  `admin == 1`,
			Env:     map[string]any{},
			Visible: false,
		},
		{
			Script:      `1 +`,
			Env:         map[string]any{},
			ExpectError: true,
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			rule := NewRule(tc.Script)

			visible, err := rule.Exec(tc.Env)
			if tc.ExpectError {
				if err == nil {
					t.Fatalf("rule.Exec: expected error, got nil")
				}

				return
			}
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Visible, visible; e != g {
				t.Errorf("visible: expected %v, got %v", e, g)
			}
		})
	}
}

func TestRuleFunc(t *testing.T) {
	fn := RuleFunc()

	visible, err := fn(`write == 1`, map[string]any{"write": 1})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !visible {
		t.Errorf("visible: expected true, got false")
	}

	// Second call hits the compiled program cache.
	visible, err = fn(`write == 1`, map[string]any{"write": 0})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if visible {
		t.Errorf("visible: expected false, got true")
	}
}
