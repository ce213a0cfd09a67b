package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagFormat = flag.String("format", "", "Output format: text or yaml")
	flagDigits = flag.Int("digits", 0, "Significant digits for printed scalars, -1 for shortest exact")
	flagStack  = flag.Int("stack", 0, "Initial transform stack capacity")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	// 0 means the flag was not given.
	if *flagDigits != 0 {
		cfg.Output.Digits = *flagDigits
	}
	if *flagStack > 0 {
		cfg.Stack.InitialCapacity = *flagStack
	}
}
