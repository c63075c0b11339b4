package config

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestDumpLoadDefaults(t *testing.T) {
	getEnv = func(key string) string {
		return ""
	}

	conf := NewDefaultConfig()

	var buff bytes.Buffer

	if err := Dump(&buff, conf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	loaded := NewDefaultConfig()

	if err := Load(&buff, loaded); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := ":8080", string(loaded.HTTP.Address); e != g {
		t.Errorf("loaded.HTTP.Address: expected '%v', got '%v'", e, g)
	}

	if e, g := "/", string(loaded.HTTP.BasePath); e != g {
		t.Errorf("loaded.HTTP.BasePath: expected '%v', got '%v'", e, g)
	}

	if e, g := "file", string(loaded.Menu.Type); e != g {
		t.Errorf("loaded.Menu.Type: expected '%v', got '%v'", e, g)
	}

	if e, g := "menu.yml", loaded.Menu.Options.Data["path"]; e != g {
		t.Errorf("loaded.Menu.Options.Data[\"path\"]: expected '%v', got '%v'", e, g)
	}

	if e, g := "menud.db", string(loaded.Store.Path); e != g {
		t.Errorf("loaded.Store.Path: expected '%v', got '%v'", e, g)
	}
}
