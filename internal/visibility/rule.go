package visibility

// Rule decides whether a menu item is visible to a given session
// environment.
type Rule interface {
	Exec(env map[string]any) (bool, error)
}
