package admin

import (
	"embed"
	"html/template"
	"time"

	"github.com/bornholm/menud/internal/store"
	"github.com/bornholm/menud/internal/ui"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// FlagTemplateData contains information about a named session flag
type FlagTemplateData struct {
	Name  string
	Value int
}

// UserTemplateData contains information about a user
type UserTemplateData struct {
	ID               int64
	Provider         string
	Subject          string
	Nickname         string
	Email            string
	ReadAccess       bool
	WriteAccess      bool
	IsAdmin          bool
	CreatedAt        time.Time
	ConnectedAt      time.Time
	HumanCreatedAt   string
	HumanConnectedAt string
	BasicUsername    string
	Flags            []FlagTemplateData
}

// DashboardTemplateData contains the data needed to render the admin
// dashboard
type DashboardTemplateData struct {
	ui.HeadTemplateData
	Topbar    ui.TopbarTemplateData
	Prefix    string
	Username  string
	UserCount int
	FlagCount int
}

// UsersTemplateData contains the data needed to render the users page
type UsersTemplateData struct {
	ui.HeadTemplateData
	Topbar   ui.TopbarTemplateData
	Prefix   string
	Username string
	Users    []UserTemplateData
}

// CredentialsTemplateData contains the data needed to render the
// freshly generated basic auth credentials of a user
type CredentialsTemplateData struct {
	ui.HeadTemplateData
	Topbar        ui.TopbarTemplateData
	Prefix        string
	Username      string
	User          UserTemplateData
	BasicUsername string
	BasicPassword string
}

// NewUserTemplateData creates a new user template data from a store.User
func NewUserTemplateData(user *store.User) UserTemplateData {
	data := UserTemplateData{
		ID:               user.ID,
		Provider:         user.Provider,
		Subject:          user.Subject,
		Nickname:         user.Nickname,
		Email:            user.Email,
		ReadAccess:       user.ReadAccess,
		WriteAccess:      user.WriteAccess,
		IsAdmin:          user.IsAdmin,
		CreatedAt:        user.CreatedAt,
		ConnectedAt:      user.ConnectedAt,
		HumanCreatedAt:   humanize.Time(user.CreatedAt),
		HumanConnectedAt: humanizeConnectedAt(user.ConnectedAt),
		BasicUsername:    user.BasicUsername,
		Flags:            []FlagTemplateData{},
	}

	for _, flag := range user.Flags() {
		data.Flags = append(data.Flags, FlagTemplateData{
			Name:  flag.Name,
			Value: flag.Value,
		})
	}

	return data
}

func humanizeConnectedAt(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	return humanize.Time(t)
}
