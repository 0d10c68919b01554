// Package config loads optional engine defaults from a TOML file, grounded on the
// BurntSushi/toml usage in frankkopp-FrankyGo and Mgrdich-TermChess: a small config
// struct decoded in one call, with the zero value standing in for "no file given".
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/corvidchess/corvid/pkg/engine"
)

// Config holds the engine defaults a TOML file may override.
type Config struct {
	Engine struct {
		Depth int `toml:"depth"`
		Hash  uint `toml:"hash_mb"`
		Noise uint `toml:"noise_cp"`
	} `toml:"engine"`
}

// Options converts the decoded config into engine.Options. Absent fields decode to the
// Go zero value, which is also engine's "unset" convention for Depth and Noise; Hash of
// 0 is replaced by the engine's own default rather than clamped to MinHashMB, since an
// absent config file must behave identically to no config at all.
func (c Config) Options() engine.Options {
	return engine.Options{
		Depth: c.Engine.Depth,
		Hash:  c.Engine.Hash,
		Noise: c.Engine.Noise,
	}
}

// Load decodes the TOML file at path. A missing file is not an error: it returns the
// zero Config, so callers fall back to engine defaults.
func Load(path string) (Config, error) {
	var c Config
	if path == "" {
		return c, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c, nil
	}

	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("decode config %q: %w", path, err)
	}
	return c, nil
}
