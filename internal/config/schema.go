package config

// Config is the root configuration. Every field has a working default, so a
// missing config file is the normal case rather than an error.
type Config struct {
	API APIConfig `yaml:"api"`
	Log LogConfig `yaml:"log"`
}

// APIConfig controls the outbound URLhaus client.
type APIConfig struct {
	BaseURL string `yaml:"baseUrl"`
	// Timeout is the per-request timeout in seconds.
	Timeout   int    `yaml:"timeout"`
	UserAgent string `yaml:"userAgent"`
}

// LogConfig controls stderr logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "https://urlhaus-api.abuse.ch/v1",
			Timeout:   30,
			UserAgent: "urlhaus-mcp/" + Version,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Version is the release version, also sent in the User-Agent header.
const Version = "0.1.0"
