// Package controller provides the interactive and plain front ends of jsonreader.
package controller

import (
	"errors"

	m "github.com/mouse-blink/jsonreader/internal/model"
)

// ErrNoFile is returned by the plain UI when no document was given.
var ErrNoFile = errors.New("no file given: plain output needs a FILE argument")

// OutputFormat selects how the plain UI prints a result.
type OutputFormat string

// Available OutputFormat values.
const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
)

// Option is a functional option for NewUI.
type Option func(*Config)

// Config holds the settings shared by every UI.
type Config struct {
	clearOnLoad bool
	startDir    string
	format      OutputFormat
}

func newConfig(options ...Option) Config {
	cfg := Config{
		startDir: ".",
		format:   FormatText,
	}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// WithClearOnLoad sets the initial state of the clear toggle.
func WithClearOnLoad(clear bool) Option {
	return func(c *Config) {
		c.clearOnLoad = clear
	}
}

// WithStartDir sets the directory the file picker opens in.
func WithStartDir(dir string) Option {
	return func(c *Config) {
		if dir != "" {
			c.startDir = dir
		}
	}
}

// WithFormat sets the plain UI output format.
func WithFormat(format OutputFormat) Option {
	return func(c *Config) {
		c.format = format
	}
}

// UI runs a front end until the user is done.
// An empty path means no document is loaded up front.
type UI interface {
	Run(path m.Path) error
}
