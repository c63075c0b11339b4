package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type HTTP struct {
	Address  InterpolatedString `yaml:"address"`
	BaseURL  InterpolatedString `yaml:"baseUrl"`
	BasePath InterpolatedString `yaml:"basePath"`
	Brand    InterpolatedString `yaml:"brand"`
	Session  Session            `yaml:"session"`
}

type Session struct {
	Keys   InterpolatedStringSlice `yaml:"keys"`
	Cookie Cookie                  `yaml:"cookie"`
}

type Cookie struct {
	MaxAge   *InterpolatedDuration `yaml:"maxAge"`
	Path     InterpolatedString    `yaml:"path"`
	HTTPOnly InterpolatedBool      `yaml:"httpOnly"`
	Secure   InterpolatedBool      `yaml:"secure"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address:  "${MENUD_HTTP_ADDRESS:-:8080}",
		BaseURL:  "${MENUD_HTTP_BASE_URL:-http://localhost:8080}",
		BasePath: "${MENUD_HTTP_BASE_PATH:-/}",
		Brand:    "${MENUD_HTTP_BRAND:-Menud}",
		Session: Session{
			Keys: InterpolatedStringSlice{},
			Cookie: Cookie{
				MaxAge:   NewInterpolatedDuration(12 * time.Hour),
				Path:     "/",
				HTTPOnly: true,
				Secure:   false,
			},
		},
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":         []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address": []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".baseUrl": []*yaml.Comment{yaml.HeadComment(" Public URL of the service, used to build OAuth2 callbacks")},
		".basePath": []*yaml.Comment{
			yaml.HeadComment(" Prefix prepended to every menu link"),
		},
		".brand":        []*yaml.Comment{yaml.HeadComment(" Name displayed in the topbar")},
		".session.keys": []*yaml.Comment{yaml.HeadComment(" Cookie signing keys, a random one is generated when empty")},
	}
}
