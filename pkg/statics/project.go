package statics

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ConfigFileName is the per-project configuration file, found by walking
// up from the directory being checked.
const ConfigFileName = "lacuna.toml"

// ProjectConfig configures checking for a source tree.
type ProjectConfig struct {
	// CacheSize bounds the session's memo cache.
	CacheSize int `toml:"cache-size"`
	// JSON switches reports to machine-readable output.
	JSON bool `toml:"json"`
	// NoColor disables styled terminal reports.
	NoColor bool `toml:"no-color"`
}

// DefaultProjectConfig returns the configuration used when no lacuna.toml
// governs a tree.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{CacheSize: DefaultCacheSize}
}

// FindProjectConfig walks up from dir to the filesystem root looking for
// the nearest lacuna.toml.
func FindProjectConfig(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// LoadProjectConfig reads the configuration governing dir, falling back
// to defaults when no lacuna.toml is found.
func LoadProjectConfig(dir string) (ProjectConfig, error) {
	cfg := DefaultProjectConfig()
	path, ok := FindProjectConfig(dir)
	if !ok {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse %s", path)
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	return cfg, nil
}
