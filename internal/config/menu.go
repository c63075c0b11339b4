package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bornholm/menud/internal/source"
	"github.com/bornholm/menud/internal/source/file"
	"github.com/bornholm/menud/internal/source/s3"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

type Menu struct {
	Type    InterpolatedString `yaml:"type"`
	Options *InterpolatedMap   `yaml:"options"`
}

func NewDefaultMenuConfig() Menu {
	return Menu{
		Type: InterpolatedString(fmt.Sprintf("${MENUD_MENU_TYPE:-%s}", file.Type)),
		Options: &InterpolatedMap{
			Data: map[string]any{
				"path": "${MENUD_MENU_PATH:-menu.yml}",
			},
		},
	}
}

func NewMenuConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":      []*yaml.Comment{yaml.HeadComment(" Menu configuration")},
		".type": []*yaml.Comment{yaml.HeadComment(" Menu source type", fmt.Sprintf(" Available: %v", source.Registered()))},
		".options": []*yaml.Comment{
			yaml.HeadComment(" Menu source options"),
			getMenuOptionComment("S3 menu source", s3.Options{}),
		},
	}
}

func getMenuOptionComment(message string, opts any) *yaml.Comment {
	rawOpts, err := yaml.Marshal(opts)
	if err != nil {
		panic(errors.WithStack(err))
	}

	comments := []string{message, "options:"}
	comments = append(comments, slices.Collect(func(yield func(string) bool) {
		for _, str := range strings.Split(string(rawOpts), "\n") {
			if !yield("  " + str) {
				return
			}
		}
	})...)

	return yaml.FootComment(comments...)
}
