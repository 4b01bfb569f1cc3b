// Package config loads shellver's optional Lua configuration file.
//
// The file is evaluated in a sandboxed gopher-lua VM with a read-only
// "platform" table available, and must define a global "shellver" table:
//
//	shellver = {
//	    placeholder = "unknown",   -- printed when the version is absent
//	    format = "text",           -- "text" or "json"
//	    debug = false,
//	    probe_timeout = 0,         -- seconds, 0 waits forever
//	}
//
// Every field is optional. A missing file yields Default().
package config

import (
	"fmt"
	"time"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultPlaceholder is printed in place of an absent version.
const DefaultPlaceholder = "unknown"

// Config holds CLI settings.
type Config struct {
	Placeholder  string
	Format       string
	Debug        bool
	ProbeTimeout time.Duration
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Placeholder: DefaultPlaceholder,
		Format:      FormatText,
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, c.Format)
	}
	if c.ProbeTimeout < 0 {
		return fmt.Errorf("probe_timeout must not be negative, got %v", c.ProbeTimeout)
	}
	return nil
}
