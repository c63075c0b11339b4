package session

import (
	"testing"

	"github.com/bornholm/menud/internal/store"
)

func TestAnonymous(t *testing.T) {
	session := Anonymous()

	if session.Flag("read") {
		t.Errorf("session.Flag(\"read\"): expected 'false', got 'true'")
	}

	if session.Flag("write") {
		t.Errorf("session.Flag(\"write\"): expected 'false', got 'true'")
	}
}

func TestFromUser(t *testing.T) {
	user := &store.User{
		ID:         42,
		ReadAccess: true,
	}

	session := FromUser(user)

	if e, g := 42, session["profile"]; e != g {
		t.Errorf("session[\"profile\"]: expected '%v', got '%v'", e, g)
	}

	if !session.Flag("read") {
		t.Errorf("session.Flag(\"read\"): expected 'true', got 'false'")
	}

	if session.Flag("write") {
		t.Errorf("session.Flag(\"write\"): expected 'false', got 'true'")
	}

	if session.Flag("admin") {
		t.Errorf("session.Flag(\"admin\"): expected 'false', got 'true'")
	}
}
