// Package config handles glmtool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Stack   StackConfig   `yaml:"stack"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "yaml"
	Digits int    `yaml:"digits"` // significant digits, -1 for shortest exact
}

// StackConfig sizes the transform stack used by scripts.
type StackConfig struct {
	InitialCapacity int `yaml:"initial_capacity"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Format: "text",
			Digits: -1,
		},
		Stack: StackConfig{
			InitialCapacity: 8,
		},
	}
}
