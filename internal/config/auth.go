package config

import "github.com/goccy/go-yaml"

type Auth struct {
	Providers AuthProviders `yaml:"providers"`
	Admins    []User        `yaml:"admins"`
}

type User struct {
	Email    InterpolatedString `yaml:"email"`
	Provider InterpolatedString `yaml:"provider"`
}

type AuthProviders struct {
	Google OAuth2Provider `yaml:"google"`
	Github OAuth2Provider `yaml:"github"`
	OIDC   OIDCProvider   `yaml:"oidc"`
}

type OAuth2Provider struct {
	Key    InterpolatedString      `yaml:"key"`
	Secret InterpolatedString      `yaml:"secret"`
	Scopes InterpolatedStringSlice `yaml:"scopes"`
}

type OIDCProvider struct {
	OAuth2Provider `yaml:",inline"`
	DiscoveryURL   InterpolatedString `yaml:"discoveryUrl"`
	Icon           InterpolatedString `yaml:"icon"`
	Label          InterpolatedString `yaml:"label"`
}

func NewDefaultAuthConfig() Auth {
	return Auth{
		Providers: AuthProviders{},
		Admins: []User{
			{
				Email:    "",
				Provider: "google",
			},
		},
	}
}

func NewAuthConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                    []*yaml.Comment{yaml.HeadComment(" Auth configuration")},
		".admins":             []*yaml.Comment{yaml.HeadComment(" List of users with admin privileges")},
		".admins[0].email":    []*yaml.Comment{yaml.HeadComment(" Admin's email address")},
		".admins[0].provider": []*yaml.Comment{yaml.HeadComment(" Admin's identify provider (see 'providers' section)")},
	}
}
