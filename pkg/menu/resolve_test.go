package menu

import (
	"fmt"
	"testing"
)

func TestResolveLeftWithoutSessionFlagAlwaysVisible(t *testing.T) {
	cfg := Config{
		Left: []Item{
			{Name: "Dashboard", Path: "dashboard"},
			{Name: "Feeds", Path: "feeds"},
		},
	}

	sessions := []Session{
		{},
		{"write": 1, "read": 1},
		{"write": 0, "read": 0},
		nil,
	}

	for idx, session := range sessions {
		view := Resolve("/", session, cfg)
		if e, g := 2, len(view.Left); e != g {
			t.Errorf("session #%d: len(view.Left): expected %d, got %d", idx, e, g)
		}
	}
}

func TestResolveLeftSessionFlagLooseEquality(t *testing.T) {
	type testCase struct {
		Value   any
		Missing bool
		Visible bool
	}

	testCases := []testCase{
		{Value: 1, Visible: true},
		{Value: int64(1), Visible: true},
		{Value: 1.0, Visible: true},
		{Value: "1", Visible: true},
		{Value: true, Visible: true},
		{Value: 0, Visible: false},
		{Value: "0", Visible: false},
		{Value: false, Visible: false},
		{Value: 2, Visible: false},
		{Value: "yes", Visible: false},
		{Value: nil, Visible: false},
		{Missing: true, Visible: false},
	}

	cfg := Config{
		Left: []Item{
			{Name: "Setup", Path: "setup", Session: "admin"},
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			session := Session{}
			if !tc.Missing {
				session["admin"] = tc.Value
			}

			view := Resolve("/", session, cfg)

			visible := len(view.Left) == 1
			if e, g := tc.Visible, visible; e != g {
				t.Errorf("visible: expected %v, got %v (value %#v)", e, g, tc.Value)
			}
		})
	}
}

func TestResolveLeftDropdown(t *testing.T) {
	cfg := Config{
		Left: []Item{
			{
				Name:    "Tools",
				Path:    "tools",
				Session: "read",
				Dropdown: []Entry{
					{Label: "Export", Path: "tools/export"},
					{Label: "Import", Path: "tools/import"},
					{Label: "Backup", Path: "tools/backup"},
				},
			},
		},
	}

	view := Resolve("/app/", Session{"read": 1}, cfg)

	if e, g := 1, len(view.Left); e != g {
		t.Fatalf("len(view.Left): expected %d, got %d", e, g)
	}

	item := view.Left[0]

	if !item.IsDropdown() {
		t.Errorf("item.IsDropdown(): expected true, got false")
	}

	if e, g := 3, len(item.Dropdown); e != g {
		t.Fatalf("len(item.Dropdown): expected %d, got %d", e, g)
	}

	if e, g := "Export", item.Dropdown[0].Label; e != g {
		t.Errorf("item.Dropdown[0].Label: expected '%v', got '%v'", e, g)
	}

	if e, g := "/app/tools/export", item.Dropdown[0].URL; e != g {
		t.Errorf("item.Dropdown[0].URL: expected '%v', got '%v'", e, g)
	}
}

func TestResolveExtras(t *testing.T) {
	type testCase struct {
		Name       string
		Session    Session
		Dropdown   []Item
		ShowExtras bool
		Extras     int
	}

	dropdown := []Item{
		{Name: "API Help", Path: "api", Session: "read"},
		{Name: "Admin", Path: "admin", Session: "admin"},
		// No session flag: never shown in the extras block.
		{Name: "About", Path: "about"},
	}

	testCases := []testCase{
		{
			Name:       "ReadSessionSeesGatedItems",
			Session:    Session{"read": 1},
			Dropdown:   dropdown,
			ShowExtras: true,
			Extras:     1,
		},
		{
			Name:       "AdminSessionSeesBoth",
			Session:    Session{"read": 1, "admin": 1},
			Dropdown:   dropdown,
			ShowExtras: true,
			Extras:     2,
		},
		{
			Name:       "NoReadFlagHidesBlock",
			Session:    Session{"admin": 1},
			Dropdown:   dropdown,
			ShowExtras: false,
		},
		{
			Name:       "EmptyDropdownHidesBlock",
			Session:    Session{"read": 1},
			Dropdown:   nil,
			ShowExtras: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			view := Resolve("/", tc.Session, Config{Dropdown: tc.Dropdown})

			if e, g := tc.ShowExtras, view.ShowExtras; e != g {
				t.Errorf("view.ShowExtras: expected %v, got %v", e, g)
			}

			if e, g := tc.Extras, len(view.Extras); e != g {
				t.Errorf("len(view.Extras): expected %d, got %d", e, g)
			}
		})
	}
}

func TestResolveRightLogin(t *testing.T) {
	cfg := Config{
		Right: []Item{
			{Name: "My Account", Path: "user/view", Session: "write"},
		},
	}

	t.Run("Unauthenticated", func(t *testing.T) {
		view := Resolve("/app/", Session{}, cfg)

		if e, g := 1, len(view.Right); e != g {
			t.Fatalf("len(view.Right): expected %d, got %d", e, g)
		}

		if e, g := "Log In", view.Right[0].Name; e != g {
			t.Errorf("view.Right[0].Name: expected '%v', got '%v'", e, g)
		}

		if e, g := "/app/user/login", view.Right[0].URL; e != g {
			t.Errorf("view.Right[0].URL: expected '%v', got '%v'", e, g)
		}
	})

	t.Run("Authenticated", func(t *testing.T) {
		view := Resolve("/app/", Session{"write": 1}, cfg)

		if e, g := 1, len(view.Right); e != g {
			t.Fatalf("len(view.Right): expected %d, got %d", e, g)
		}

		if e, g := "My Account", view.Right[0].Name; e != g {
			t.Errorf("view.Right[0].Name: expected '%v', got '%v'", e, g)
		}
	})
}

func TestResolveDoesNotModifyConfig(t *testing.T) {
	cfg := Config{
		Right: []Item{
			{Name: "Account", Path: "account"},
		},
	}

	Resolve("/", Session{}, cfg)

	if e, g := 1, len(cfg.Right); e != g {
		t.Errorf("len(cfg.Right): expected %d, got %d", e, g)
	}

	if e, g := "Account", cfg.Right[0].Name; e != g {
		t.Errorf("cfg.Right[0].Name: expected '%v', got '%v'", e, g)
	}
}

func TestResolveDefaultsProfile(t *testing.T) {
	session := Session{"write": 1}

	Resolve("/", session, Config{})

	profile, exists := session["profile"]
	if !exists {
		t.Fatalf("session[\"profile\"]: expected to be set")
	}

	if e, g := 0, profile; e != g {
		t.Errorf("session[\"profile\"]: expected %v, got %v", e, g)
	}

	// An existing value is left alone.
	session = Session{"profile": 42}

	Resolve("/", session, Config{})

	if e, g := 42, session["profile"]; e != g {
		t.Errorf("session[\"profile\"]: expected %v, got %v", e, g)
	}
}

func TestResolveRules(t *testing.T) {
	cfg := Config{
		Left: []Item{
			{Name: "Lab", Path: "lab", Rule: `profile == 42`},
		},
	}

	t.Run("WithoutEvaluator", func(t *testing.T) {
		view := Resolve("/", Session{"profile": 42}, cfg)
		if e, g := 0, len(view.Left); e != g {
			t.Errorf("len(view.Left): expected %d, got %d", e, g)
		}
	})

	t.Run("EvaluatorAllows", func(t *testing.T) {
		rule := func(script string, session Session) (bool, error) {
			return session["profile"] == 42, nil
		}

		view := Resolve("/", Session{"profile": 42}, cfg, WithRuleFunc(rule))
		if e, g := 1, len(view.Left); e != g {
			t.Errorf("len(view.Left): expected %d, got %d", e, g)
		}
	})

	t.Run("EvaluatorErrorHides", func(t *testing.T) {
		rule := func(script string, session Session) (bool, error) {
			return true, fmt.Errorf("boom")
		}

		view := Resolve("/", Session{"profile": 42}, cfg, WithRuleFunc(rule))
		if e, g := 0, len(view.Left); e != g {
			t.Errorf("len(view.Left): expected %d, got %d", e, g)
		}
	})
}

func TestResolveEndToEnd(t *testing.T) {
	view := Resolve("/app/", Session{"write": 1, "read": 0}, Config{
		Left: []Item{
			{Name: "Dashboard", Path: "dashboard"},
		},
	})

	if e, g := 1, len(view.Left); e != g {
		t.Fatalf("len(view.Left): expected %d, got %d", e, g)
	}

	if e, g := "Dashboard", view.Left[0].Name; e != g {
		t.Errorf("view.Left[0].Name: expected '%v', got '%v'", e, g)
	}

	if e, g := "/app/dashboard", view.Left[0].URL; e != g {
		t.Errorf("view.Left[0].URL: expected '%v', got '%v'", e, g)
	}

	if view.ShowExtras {
		t.Errorf("view.ShowExtras: expected false, got true")
	}

	if e, g := 0, len(view.Right); e != g {
		t.Errorf("len(view.Right): expected %d, got %d", e, g)
	}
}
