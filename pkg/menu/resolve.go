package menu

import "slices"

// Link is a resolved navigation link, ready to render.
type Link struct {
	Label string
	URL   string
}

// ViewItem is a resolved top-level entry: a plain link, or a dropdown
// toggle when Dropdown is non-empty.
type ViewItem struct {
	Name     string
	URL      string
	Dropdown []Link
}

func (i ViewItem) IsDropdown() bool {
	return len(i.Dropdown) > 0
}

// View is the output of Resolve: only the items visible to the session,
// in configuration order, with all hrefs prefixed.
type View struct {
	Left       []ViewItem
	ShowExtras bool
	Extras     []Link
	Right      []ViewItem
}

// RuleFunc evaluates a visibility rule script against a session.
type RuleFunc func(script string, session Session) (bool, error)

type resolveOptions struct {
	Rule RuleFunc
}

type ResolveOptionFunc func(opts *resolveOptions)

// WithRuleFunc installs the evaluator used for items carrying a
// visibility rule. Without an evaluator such items stay hidden.
func WithRuleFunc(fn RuleFunc) ResolveOptionFunc {
	return func(opts *resolveOptions) {
		opts.Rule = fn
	}
}

// Resolve filters the menu configuration against the session and
// builds the view rendered by the navigation bar templates.
//
// Resolve never modifies cfg. It does write to session: when the
// "profile" flag is absent it is defaulted to 0 in place, which the
// caller observes after Resolve returns.
func Resolve(path string, session Session, cfg Config, funcs ...ResolveOptionFunc) View {
	opts := &resolveOptions{}
	for _, fn := range funcs {
		fn(opts)
	}

	if session != nil {
		if _, exists := session["profile"]; !exists {
			session["profile"] = 0
		}
	}

	view := View{
		Left:   make([]ViewItem, 0, len(cfg.Left)),
		Extras: make([]Link, 0, len(cfg.Dropdown)),
		Right:  make([]ViewItem, 0, len(cfg.Right)+1),
	}

	for _, item := range cfg.Left {
		if item.Session != "" && !session.Flag(item.Session) {
			continue
		}

		if !opts.ruleAllows(item, session) {
			continue
		}

		view.Left = append(view.Left, resolveItem(path, item))
	}

	// The extras block is gated on the global read flag. Extras items
	// are checked against their session flag unconditionally, so an
	// extras item without one never shows.
	view.ShowExtras = len(cfg.Dropdown) > 0 && session.Flag("read")
	if view.ShowExtras {
		for _, item := range cfg.Dropdown {
			if !session.Flag(item.Session) {
				continue
			}

			if !opts.ruleAllows(item, session) {
				continue
			}

			view.Extras = append(view.Extras, Link{
				Label: item.Name,
				URL:   path + item.Path,
			})
		}
	}

	right := slices.Clone(cfg.Right)
	if !session.Flag("write") {
		right = append(right, Item{
			Name:  "Log In",
			Path:  "user/login",
			Order: -1,
		})
	}

	for _, item := range right {
		if item.Session != "" && !session.Flag(item.Session) {
			continue
		}

		if !opts.ruleAllows(item, session) {
			continue
		}

		view.Right = append(view.Right, resolveItem(path, item))
	}

	return view
}

func (opts *resolveOptions) ruleAllows(item Item, session Session) bool {
	if item.Rule == "" {
		return true
	}

	if opts.Rule == nil {
		return false
	}

	allowed, err := opts.Rule(item.Rule, session)
	if err != nil {
		return false
	}

	return allowed
}

func resolveItem(path string, item Item) ViewItem {
	resolved := ViewItem{
		Name: item.Name,
		URL:  path + item.Path,
	}

	if len(item.Dropdown) > 0 {
		resolved.Dropdown = make([]Link, 0, len(item.Dropdown))
		for _, entry := range item.Dropdown {
			resolved.Dropdown = append(resolved.Dropdown, Link{
				Label: entry.Label,
				URL:   path + entry.Path,
			})
		}
	}

	return resolved
}
