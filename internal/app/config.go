package app

import (
	"errors"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/ui"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DataPaths []string // hcl manifests + logged data
	DBPath    string   // sqlite store; empty keeps everything in memory

	Entity   string // "/path" or "/path[3]"; empty renders every entity
	Timeline string
	At       int64
	Layout   string

	EditKey   string   // component to edit on Entity
	WritePath string   // defaults to the entity path
	Inputs    []string // scripted widget input, "id=value"

	Terminal bool // draw onto the terminal instead of the output writer

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.DataPaths) == 0 && cfg.DBPath == "" {
		return nil, errors.New("at least one data path or a database is required")
	}
	if cfg.EditKey != "" && cfg.Entity == "" {
		return nil, errors.New("editing a component requires an entity")
	}
	if cfg.Terminal && cfg.EditKey != "" {
		return nil, errors.New("the terminal surface is read-only and cannot edit")
	}
	if _, err := ui.ParseLayout(cfg.layoutName()); err != nil {
		return nil, err
	}
	if cfg.At != 0 && cfg.Timeline == "" {
		return nil, errors.New("a time requires a timeline")
	}
	return &cfg, nil
}

func (c *Config) layoutName() string {
	if c.Layout == "" {
		return "selection"
	}
	return c.Layout
}

// Query returns the latest-at query the session renders.
func (c *Config) Query() component.Query {
	return component.Query{Timeline: c.Timeline, At: c.At}
}
