// Package style holds the colour scheme of the agenda page. It is loaded once
// at startup and handed to the page handler as a plain value.
package style

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

type Style struct {
	Accent     string `yaml:"accent" json:"accent"`
	Secondary  string `yaml:"secondary" json:"secondary"`
	Text       string `yaml:"text" json:"text"`
	Background string `yaml:"background" json:"background"`
	Panel      string `yaml:"panel" json:"panel"`
	Highlight  string `yaml:"highlight" json:"highlight"`
}

func Default() Style {
	return Style{
		Accent:     "#FF6B35",
		Secondary:  "#2EC4B6",
		Text:       "#262626",
		Background: "#FFFFFF",
		Panel:      "#f8f9fa",
		Highlight:  "#FFE5D9",
	}
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Load reads a YAML style file over the defaults. An empty path or a missing
// file yields the defaults.
func Load(path string) (Style, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return Style{}, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Style{}, err
	}
	return s, s.Validate()
}

// Validate only accepts hex colours, the values end up in a style block.
func (s Style) Validate() error {
	fields := map[string]string{
		"accent":     s.Accent,
		"secondary":  s.Secondary,
		"text":       s.Text,
		"background": s.Background,
		"panel":      s.Panel,
		"highlight":  s.Highlight,
	}
	for name, v := range fields {
		if !hexColor.MatchString(v) {
			return fmt.Errorf("style: %s: %q is not a hex colour", name, v)
		}
	}
	return nil
}
