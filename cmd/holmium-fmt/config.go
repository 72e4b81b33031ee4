package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/holmium-go/holmium/htmltag"
)

// Config is the optional YAML configuration for holmium-fmt. Tag
// overrides are layered on top of the built-in HTML5 tables.
type Config struct {
	Compact  bool         `yaml:"compact"`
	Encoding string       `yaml:"encoding" validate:"omitempty,printascii"`
	Tags     TagOverrides `yaml:"tags"`
}

// TagOverrides lists extra tag names per category. Tag names are
// expected in lowercase, matching how the parser reports them.
type TagOverrides struct {
	Void    []string `yaml:"void" validate:"omitempty,dive,lowercase"`
	Block   []string `yaml:"block" validate:"omitempty,dive,lowercase"`
	RawText []string `yaml:"rawtext" validate:"omitempty,dive,lowercase"`
	RCDATA  []string `yaml:"rcdata" validate:"omitempty,dive,lowercase"`
}

func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Table builds the classification table: HTML5 plus the configured
// overrides. The built-in table is returned untouched when there are
// no overrides.
func (c *Config) Table() *htmltag.Table {
	o := c.Tags
	if len(o.Void)+len(o.Block)+len(o.RawText)+len(o.RCDATA) == 0 {
		return htmltag.HTML5
	}
	t := htmltag.HTML5.Clone()
	t.Add(htmltag.Void, o.Void...)
	t.Add(htmltag.Block, o.Block...)
	t.Add(htmltag.RawText, o.RawText...)
	t.Add(htmltag.RCDATA, o.RCDATA...)
	return t
}
