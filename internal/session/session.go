package session

import (
	"github.com/bornholm/menud/internal/store"
	"github.com/bornholm/menud/pkg/menu"
)

// Anonymous returns the session of an unauthenticated visitor: no
// flags at all, so only ungated items and the synthetic login entry
// render.
func Anonymous() menu.Session {
	return menu.Session{}
}

// FromUser builds the menu session of an authenticated user: the
// profile id, the standard access flags and every named flag stored
// for the user. Flags use 1/0 values to match the loose-equality
// check of the menu package.
func FromUser(user *store.User) menu.Session {
	session := menu.Session{
		"profile": int(user.ID),
		"read":    flagValue(user.ReadAccess),
		"write":   flagValue(user.WriteAccess),
		"admin":   flagValue(user.IsAdmin),
	}

	for _, flag := range user.Flags() {
		session[flag.Name] = flag.Value
	}

	return session
}

func flagValue(granted bool) int {
	if granted {
		return 1
	}

	return 0
}
