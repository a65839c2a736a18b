// Package config loads the optional YAML configuration consumed by the
// md2term CLI and maps it onto conversion options and renderer settings.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/mdtext/mdtext"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound      = errors.New("config file not found")
	ErrConfigParse         = errors.New("failed to parse config")
	ErrConfigTooLarge      = errors.New("config file exceeds maximum size")
	ErrInvalidHeadingDepth = errors.New("invalid heading depth")
	ErrInvalidWidth        = errors.New("invalid width")
)

// MaxConfigSize bounds config input to keep hostile files cheap to reject.
const MaxConfigSize = 1 << 20

// Config is the file representation. All sections are optional; zero values
// mean "use defaults".
type Config struct {
	Headings HeadingsConfig `yaml:"headings"`
	Links    LinksConfig    `yaml:"links"`
	Render   RenderConfig   `yaml:"render"`
}

// HeadingsConfig controls heading spacing.
type HeadingsConfig struct {
	// Spacing lists the heading depths (1-6) followed by a blank line.
	// Absent means the default (depth 1 only); an empty list disables
	// spacing everywhere.
	Spacing []int `yaml:"spacing"`
}

// LinksConfig overrides the emphasis applied to link text. Absent fields
// inherit the surrounding style.
type LinksConfig struct {
	Bold      *bool `yaml:"bold"`
	Italic    *bool `yaml:"italic"`
	Strikeout *bool `yaml:"strikeout"`
}

// RenderConfig holds renderer settings.
type RenderConfig struct {
	// Width is the target line width; 0 means autodetect.
	Width int `yaml:"width"`
	// Color forces color on or off; absent means autodetect.
	Color *bool `yaml:"color"`
	// CodeStyle names the chroma style for code blocks.
	CodeStyle string `yaml:"codeStyle"`
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own --config flag
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates config data. Unknown fields are rejected so
// typos surface instead of being silently ignored.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxConfigSize)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	for _, depth := range c.Headings.Spacing {
		if depth < 1 || depth > 6 {
			return fmt.Errorf("%w: %d (must be between 1 and 6)", ErrInvalidHeadingDepth, depth)
		}
	}
	if c.Render.Width < 0 {
		return fmt.Errorf("%w: %d (must not be negative)", ErrInvalidWidth, c.Render.Width)
	}
	return nil
}

// Options maps the config onto conversion options, starting from the
// defaults for anything the file does not mention.
func (c *Config) Options() mdtext.Options {
	opts := mdtext.DefaultOptions()
	if c.Headings.Spacing != nil {
		opts.HeaderSpacing = [6]bool{}
		for _, depth := range c.Headings.Spacing {
			opts.HeaderSpacing[depth-1] = true
		}
	}
	opts.LinkStyle = mdtext.LinkStyle{
		Bold:      c.Links.Bold,
		Italic:    c.Links.Italic,
		Strikeout: c.Links.Strikeout,
	}
	return opts
}
