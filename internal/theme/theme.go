package theme

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// ErrInvalidToken is returned by Validate for a malformed token value.
var ErrInvalidToken = errors.New("invalid design token")

// Load reads a YAML theme file and overlays it onto Default. A missing file
// yields the default theme.
func Load(path string) (*Theme, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, fmt.Errorf("accessing theme %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading theme %s: %w", path, err)
	}
	if err := k.Unmarshal("", t); err != nil {
		return nil, fmt.Errorf("unmarshalling theme: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// Save writes the theme as YAML.
func (t *Theme) Save(path string) error {
	data, err := yamlv3.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshalling theme: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing theme to %s: %w", path, err)
	}
	return nil
}

var (
	hexColor  = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	cssLength = regexp.MustCompile(`^(0|\d+(\.\d+)?(px|rem|em|%|vh|vw))$`)
	tokenKey  = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

// Validate checks every token for a well-formed value.
func (t *Theme) Validate() error {
	if !tokenKey.MatchString(t.Name) {
		return fmt.Errorf("%w: name %q", ErrInvalidToken, t.Name)
	}

	colors := map[string]string{
		"black":       t.Colors.Black,
		"white":       t.Colors.White,
		"gray.light":  t.Colors.Gray.Light,
		"gray.medium": t.Colors.Gray.Medium,
		"gray.dark":   t.Colors.Gray.Dark,
		"blue":        t.Colors.Blue,
		"green":       t.Colors.Green,
		"red":         t.Colors.Red,
	}
	for name, v := range colors {
		if !hexColor.MatchString(v) {
			return fmt.Errorf("%w: color %s %q is not a hex color", ErrInvalidToken, name, v)
		}
	}

	if len(t.FontFamily) == 0 {
		return fmt.Errorf("%w: font_family is empty", ErrInvalidToken)
	}
	for _, f := range t.FontFamily {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("%w: font_family has a blank entry", ErrInvalidToken)
		}
	}

	for _, group := range []struct {
		name   string
		values map[string]string
	}{
		{"font_size", t.FontSize},
		{"border_radius", t.BorderRadius},
		{"spacing", t.Spacing},
	} {
		for k, v := range group.values {
			if !tokenKey.MatchString(k) {
				return fmt.Errorf("%w: %s key %q", ErrInvalidToken, group.name, k)
			}
			if !cssLength.MatchString(v) {
				return fmt.Errorf("%w: %s.%s %q is not a CSS length", ErrInvalidToken, group.name, k, v)
			}
		}
	}

	for k, w := range t.FontWeight {
		if !tokenKey.MatchString(k) {
			return fmt.Errorf("%w: font_weight key %q", ErrInvalidToken, k)
		}
		if w <= 0 || w > 1000 {
			return fmt.Errorf("%w: font_weight.%s %d out of range", ErrInvalidToken, k, w)
		}
	}

	for k, v := range t.BoxShadow {
		if !tokenKey.MatchString(k) {
			return fmt.Errorf("%w: box_shadow key %q", ErrInvalidToken, k)
		}
		if strings.TrimSpace(v) == "" || strings.ContainsAny(v, ";{}") {
			return fmt.Errorf("%w: box_shadow.%s %q", ErrInvalidToken, k, v)
		}
	}

	return nil
}
