package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

const testDocument = `
left:
  - name: Dashboard
    path: dashboard
  - name: Setup
    path: setup
    session: admin
    dropdown:
      - label: Users
        path: setup/users
      - label: Input
        path: setup/input
right:
  - name: My Account
    path: user/view
    session: write
dropdown:
  - name: API Help
    path: api
    session: read
`

func TestSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yml")

	if err := os.WriteFile(path, []byte(testDocument), 0o644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	src, err := CreateSourceFromOptions(map[string]any{"path": path})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := src.Load(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(cfg.Left); e != g {
		t.Fatalf("len(cfg.Left): expected %d, got %d", e, g)
	}

	if e, g := "admin", cfg.Left[1].Session; e != g {
		t.Errorf("cfg.Left[1].Session: expected '%v', got '%v'", e, g)
	}

	if e, g := 2, len(cfg.Left[1].Dropdown); e != g {
		t.Fatalf("len(cfg.Left[1].Dropdown): expected %d, got %d", e, g)
	}

	if e, g := "setup/users", cfg.Left[1].Dropdown[0].Path; e != g {
		t.Errorf("cfg.Left[1].Dropdown[0].Path: expected '%v', got '%v'", e, g)
	}

	if e, g := 1, len(cfg.Right); e != g {
		t.Fatalf("len(cfg.Right): expected %d, got %d", e, g)
	}

	if e, g := 1, len(cfg.Dropdown); e != g {
		t.Fatalf("len(cfg.Dropdown): expected %d, got %d", e, g)
	}

	if e, g := "read", cfg.Dropdown[0].Session; e != g {
		t.Errorf("cfg.Dropdown[0].Session: expected '%v', got '%v'", e, g)
	}
}

func TestSourceMissingFile(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "does-not-exist.yml"))

	if _, err := src.Load(context.Background()); err == nil {
		t.Fatalf("src.Load: expected error, got nil")
	}
}
