package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	navshellerrors "github.com/alexisbeaulieu97/navshell/pkg/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "NAVSHELL_"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load builds the effective configuration: defaults, then the file at path
// (skipped when path is empty), then environment overrides. Relative storage
// and log paths are filled in under ~/.navshell. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, navshellerrors.NewValidationError("env", fmt.Sprintf("parse environment: %v", err), err)
	}

	if err := fillPaths(&cfg); err != nil {
		return nil, err
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decodeFile overlays the file at path onto cfg. The format follows the
// extension: .yaml/.yml or .toml. Unknown keys are rejected.
func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return navshellerrors.NewParseError(path, 0, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return navshellerrors.NewParseError(path, extractLine(err), err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return navshellerrors.NewParseError(path, tomlLine(err), err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}
			sort.Strings(keys)
			return navshellerrors.NewParseError(path, 0, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")))
		}
	default:
		return navshellerrors.NewParseError(path, 0, fmt.Errorf("unsupported config format %q", filepath.Ext(path)))
	}
	return nil
}

// fillPaths places unset file locations in the navshell home directory.
func fillPaths(cfg *Config) error {
	needStore := cfg.Storage.Path == "" && cfg.Storage.Backend != "memory"
	if !needStore && cfg.Log.File != "" {
		return nil
	}

	dir, err := HomeDir()
	if err != nil {
		return navshellerrors.NewValidationError("storage.path", "cannot determine home directory", err)
	}

	if needStore {
		name := "settings.json"
		if cfg.Storage.Backend == "sqlite" {
			name = "settings.db"
		}
		cfg.Storage.Path = filepath.Join(dir, name)
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(dir, "navshell.log")
	}
	return nil
}

// HomeDir returns ~/.navshell.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".navshell"), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return perr.Position.Line
	}
	return 0
}
