package page

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Content is the static copy around the cards: title, tagline, footer.
// It comes from an optional YAML file so the page can be rebranded
// without touching code.
type Content struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Footer      []Link `yaml:"footer"`
}

type Link struct {
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
}

func DefaultContent() Content {
	return Content{
		Title:       "Service Status",
		Description: "Live availability of our monitored services.",
	}
}

// LoadContent reads the page file. A missing file falls back to defaults;
// a present but malformed one is an error.
func LoadContent(path string) (Content, error) {
	if path == "" {
		return DefaultContent(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultContent(), nil
		}
		return Content{}, fmt.Errorf("read page file %s: %w", path, err)
	}
	c := DefaultContent()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Content{}, fmt.Errorf("parse page file %s: %w", path, err)
	}
	if c.Title == "" {
		c.Title = DefaultContent().Title
	}
	return c, nil
}
