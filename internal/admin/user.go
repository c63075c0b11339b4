package admin

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bornholm/menud/internal/store"
	"github.com/bornholm/menud/internal/ui"
	"github.com/bornholm/menud/pkg/log"
	"github.com/pkg/errors"
)

const basicPasswordLength = 32

// serveUsers handles requests for the users page
func (h *Handler) serveUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	admin, ok := h.contextAdmin(w, r)
	if !ok {
		return
	}

	data := UsersTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Users - Admin",
		},
		Topbar:   h.topbar(ctx, admin),
		Prefix:   h.prefix,
		Username: getUserDisplayName(admin),
		Users:    []UserTemplateData{},
	}

	users, err := h.store.GetUsers(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not get users", log.Error(errors.WithStack(err)))
	} else {
		for _, user := range users {
			data.Users = append(data.Users, NewUserTemplateData(user))
		}
	}

	if err := templates.ExecuteTemplate(w, "users", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

// serveUpdateAccess handles POST requests to update the standard
// access flags of a user
func (h *Handler) serveUpdateAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := h.contextAdmin(w, r); !ok {
		return
	}

	user, ok := h.pathUser(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	user.ReadAccess = r.Form.Get("read") == "1"
	user.WriteAccess = r.Form.Get("write") == "1"
	user.IsAdmin = r.Form.Get("admin") == "1"

	if err := h.store.UpdateUserProfile(ctx, user); err != nil {
		slog.ErrorContext(ctx, "could not update user", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.prefix+"/users", http.StatusSeeOther)
}

// serveSetFlag handles POST requests to set a named session flag on a
// user
func (h *Handler) serveSetFlag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := h.contextAdmin(w, r); !ok {
		return
	}

	user, ok := h.pathUser(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	name := r.Form.Get("name")
	if name == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	value, err := strconv.Atoi(r.Form.Get("value"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.store.SetUserFlag(ctx, user.ID, name, value); err != nil {
		slog.ErrorContext(ctx, "could not set user flag", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.prefix+"/users", http.StatusSeeOther)
}

// serveDeleteFlag handles POST requests to remove a named session
// flag from a user
func (h *Handler) serveDeleteFlag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := h.contextAdmin(w, r); !ok {
		return
	}

	user, ok := h.pathUser(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	name := r.Form.Get("name")
	if name == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteUserFlag(ctx, user.ID, name); err != nil {
		slog.ErrorContext(ctx, "could not delete user flag", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.prefix+"/users", http.StatusSeeOther)
}

// serveRegenerateCredentials handles POST requests to generate new
// basic auth credentials for a user. The password is only shown once.
func (h *Handler) serveRegenerateCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	admin, ok := h.contextAdmin(w, r)
	if !ok {
		return
	}

	user, ok := h.pathUser(w, r)
	if !ok {
		return
	}

	username, password, err := h.store.RegenerateBasicCredentials(ctx, user.ID, basicPasswordLength)
	if err != nil {
		slog.ErrorContext(ctx, "could not regenerate credentials", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := CredentialsTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Credentials - Admin",
		},
		Topbar:        h.topbar(ctx, admin),
		Prefix:        h.prefix,
		Username:      getUserDisplayName(admin),
		User:          NewUserTemplateData(user),
		BasicUsername: username,
		BasicPassword: password,
	}

	if err := templates.ExecuteTemplate(w, "credentials", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

// serveDeleteUser handles POST requests to delete a user
func (h *Handler) serveDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	admin, ok := h.contextAdmin(w, r)
	if !ok {
		return
	}

	user, ok := h.pathUser(w, r)
	if !ok {
		return
	}

	// Prevent deleting own account
	if user.ID == admin.ID {
		http.Error(w, "Cannot delete your own account", http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteUsers(ctx, user.ID); err != nil {
		slog.ErrorContext(ctx, "could not delete user", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.prefix+"/users", http.StatusSeeOther)
}

// pathUser loads the user identified by the {id} path segment,
// writing the error response itself on failure.
func (h *Handler) pathUser(w http.ResponseWriter, r *http.Request) (*store.User, bool) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return nil, false
	}

	users, err := h.store.GetUsers(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "could not get user", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, false
	}

	if len(users) == 0 {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return nil, false
	}

	return users[0], true
}
