package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/goodhex/internal/config/loader"
)

// EnvConfigPath names the variable that may point at the config file.
const EnvConfigPath = loader.EnvPrefix + "CONFIG"

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path is the configuration file. Empty uses DefaultPath; a missing file
	// is not an error.
	Path string
	// FS overrides the file system, for tests.
	FS loader.FileSystem
	// NoEnv skips GOODHEX_* environment variables.
	NoEnv bool
}

// Load reads defaults, the configuration file and the environment, and
// validates the result.
func Load(opts LoadOptions) (*Config, error) {
	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}

	merged, err := loader.ForPath(opts.FS, path).Load()
	if err != nil {
		return nil, err
	}

	if !opts.NoEnv {
		env := loader.NewEnvLoader(loader.EnvPrefix)
		env.Ignore(EnvConfigPath)
		vars, err := env.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, vars)
	}

	cfg := Default()
	if err := cfg.apply(merged); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply decodes a merged settings map over c. Keys absent from m keep
// their current values.
func (c *Config) apply(m map[string]any) error {
	if len(m) == 0 {
		return nil
	}
	normalizeSets(m)

	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// normalizeSets accepts annotations.sets as a comma separated string.
func normalizeSets(m map[string]any) {
	ann, ok := m["annotations"].(map[string]any)
	if !ok {
		return
	}
	s, ok := ann["sets"].(string)
	if !ok {
		return
	}
	var names []any
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	ann["sets"] = names
}

// TOML renders the configuration as a TOML document.
func (c *Config) TOML() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
