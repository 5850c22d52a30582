package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Candidates
	AddCandidate    string `yaml:"add_candidate"`
	DeleteCandidate string `yaml:"delete_candidate"`
	ViewCandidate   string `yaml:"view_candidate"`
	OpenMenu        string `yaml:"open_menu"`

	// Drag and drop
	GrabCandidate string `yaml:"grab_candidate"`
	DropCandidate string `yaml:"drop_candidate"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevColumn          string `yaml:"prev_column"`
	NextColumn          string `yaml:"next_column"`
	PrevCandidate       string `yaml:"prev_candidate"`
	NextCandidate       string `yaml:"next_candidate"`
	ScrollViewportLeft  string `yaml:"scroll_viewport_left"`
	ScrollViewportRight string `yaml:"scroll_viewport_right"`

	// Other
	Search   string `yaml:"search"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Candidates
		AddCandidate:    "a",
		DeleteCandidate: "d",
		ViewCandidate:   "v",
		OpenMenu:        ".",

		// Drag and drop
		GrabCandidate: "m",
		DropCandidate: "enter",

		SaveForm: "ctrl+s",

		// Navigation
		PrevColumn:          "h",
		NextColumn:          "l",
		PrevCandidate:       "k",
		NextCandidate:       "j",
		ScrollViewportLeft:  "[",
		ScrollViewportRight: "]",

		// Other
		Search:   "/",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.AddCandidate, defaults.AddCandidate)
	fill(&k.DeleteCandidate, defaults.DeleteCandidate)
	fill(&k.ViewCandidate, defaults.ViewCandidate)
	fill(&k.OpenMenu, defaults.OpenMenu)
	fill(&k.GrabCandidate, defaults.GrabCandidate)
	fill(&k.DropCandidate, defaults.DropCandidate)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevCandidate, defaults.PrevCandidate)
	fill(&k.NextCandidate, defaults.NextCandidate)
	fill(&k.ScrollViewportLeft, defaults.ScrollViewportLeft)
	fill(&k.ScrollViewportRight, defaults.ScrollViewportRight)
	fill(&k.Search, defaults.Search)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
