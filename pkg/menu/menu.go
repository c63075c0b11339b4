package menu

// Entry is a single link inside a dropdown toggle.
type Entry struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// Item is one configured top-level navigation entry. When Session is
// non-empty the item is only visible to sessions carrying that flag.
// When Dropdown is non-empty the item renders as a toggle revealing
// its entries instead of a direct link.
type Item struct {
	Name     string  `yaml:"name"`
	Path     string  `yaml:"path"`
	Order    int     `yaml:"order"`
	Session  string  `yaml:"session"`
	Rule     string  `yaml:"rule"`
	Dropdown []Entry `yaml:"dropdown"`
}

// Config is the full menu configuration: three independently ordered
// lists, each rendered into a different region of the navigation bar.
// Config is read-only input to Resolve.
type Config struct {
	Left     []Item `yaml:"left"`
	Right    []Item `yaml:"right"`
	Dropdown []Item `yaml:"dropdown"`
}
