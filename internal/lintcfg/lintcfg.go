// Package lintcfg reads lintwire.toml, the per-project lint level
// configuration applied on top of each lint's declared default.
package lintcfg

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"lintwire/lint"
)

// DefaultFileName is looked up in the working directory when no config
// path is given.
const DefaultFileName = "lintwire.toml"

// Config is the parsed configuration file.
type Config struct {
	// Lints maps lint name to a level word: allow, warn, deny, forbid.
	Lints map[string]string `toml:"lints"`
}

// Load parses the config at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("lintcfg: %w", err)
	}
	if _, err := cfg.Levels(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Levels converts the raw level words to lint levels. Unknown words are
// configuration errors, reported with the offending lint name.
func (c *Config) Levels() (map[string]lint.Level, error) {
	out := make(map[string]lint.Level, len(c.Lints))
	for name, word := range c.Lints {
		level, ok := lint.ParseLevel(word)
		if !ok {
			return nil, fmt.Errorf("lintcfg: lint %q has unknown level %q", name, word)
		}
		out[name] = level
	}
	return out, nil
}
