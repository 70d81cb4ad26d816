package config

// Config is the navshell configuration document. Every field has a default;
// a config file and NAVSHELL_* environment variables override them in that
// order.
type Config struct {
	Log       LogConfig     `yaml:"log" toml:"log" envPrefix:"LOG_"`
	Storage   StorageConfig `yaml:"storage" toml:"storage" envPrefix:"STORAGE_"`
	StartPath string        `yaml:"start_path" toml:"start_path" env:"START_PATH" validate:"required,route_path"`
}

// LogConfig controls diagnostics output.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level" env:"LEVEL" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" toml:"format" env:"FORMAT" validate:"required,oneof=auto json console"`
	// File receives logs while the interactive shell owns the terminal.
	File string `yaml:"file" toml:"file" env:"FILE"`
}

// StorageConfig selects the settings store backend.
type StorageConfig struct {
	Backend string `yaml:"backend" toml:"backend" env:"BACKEND" validate:"required,oneof=memory file sqlite"`
	Path    string `yaml:"path" toml:"path" env:"PATH" validate:"required_unless=Backend memory"`
}

// Defaults returns the configuration used when nothing overrides it. Paths
// are left empty and filled in by Load from the user's home directory.
func Defaults() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
		Storage: StorageConfig{
			Backend: "file",
		},
		StartPath: "/login",
	}
}
