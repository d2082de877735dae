// Package config loads an optional chimp.toml file overriding the
// engine's compiled-in search tunables and hash size default. Absent a
// file, or on any parse error, every compiled-in default stands.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/fsoonaye/chimp/engine"
)

// Search mirrors the subset of the engine's tunable vars
// (engine/tunables.go) a chimp.toml may override; zero fields are left
// at whatever the engine already has.
type Search struct {
	AspirationDelta       int32 `toml:"aspiration_delta"`
	RazorMargin           int32 `toml:"razor_margin"`
	ReverseFutilityMargin int32 `toml:"reverse_futility_margin"`
	NullMoveBaseReduction int   `toml:"null_move_base_reduction"`
}

// Config is the top-level shape of chimp.toml.
type Config struct {
	HashMB int    `toml:"hash_mb"`
	Search Search `toml:"search"`
}

// DefaultPath is where Load looks when called with no explicit path:
// a chimp.toml alongside the engine binary's working directory.
const DefaultPath = "chimp.toml"

// Load reads path and applies any overrides it sets onto the engine
// package's tunable vars. A missing file is not an error: the engine
// keeps running on its compiled-in defaults. An unparsable file is
// reported through warn (may be nil) and otherwise also ignored.
func Load(path string, warn func(string)) Config {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		if warn != nil {
			warn(err.Error())
		}
		return Config{}
	}
	cfg.apply()
	return cfg
}

func (c Config) apply() {
	if c.Search.AspirationDelta != 0 {
		engine.AspirationDelta = c.Search.AspirationDelta
	}
	if c.Search.RazorMargin != 0 {
		engine.RazorMargin = c.Search.RazorMargin
	}
	if c.Search.ReverseFutilityMargin != 0 {
		engine.ReverseFutilityMargin = c.Search.ReverseFutilityMargin
	}
	if c.Search.NullMoveBaseReduction != 0 {
		engine.NMPBaseReduction = c.Search.NullMoveBaseReduction
	}
}
