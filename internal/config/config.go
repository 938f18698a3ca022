package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all wikifetch configuration.
type Config struct {
	Source SourceConfig
	Fetch  FetchConfig
	Log    LogConfig
}

// SourceConfig holds record-source settings.
type SourceConfig struct {
	Provider string // registered source provider name
	Endpoint string // base URL override, empty = provider default
	APIToken string // bearer token, optional for public datasets
	PageSize int    // rows fetched per request
}

// FetchConfig holds fetch-run settings. The byte/count budget itself is
// flag-only (mutually exclusive, one required) and lives on the command.
type FetchConfig struct {
	Language  string // Wikipedia edition code
	OutputDir string
	Split     string // dataset split
}

// LogConfig holds logging settings.
type LogConfig struct {
	Format string // "text" or "json"
	Level  string // "debug", "info", "warn", "error"
}

// Load reads configuration from WIKIFETCH_-prefixed environment variables
// with sensible defaults. Command-line flags override these values.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("wikifetch")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("source.provider", "huggingface")
	v.SetDefault("source.endpoint", "")
	v.SetDefault("source.api_token", "")
	v.SetDefault("source.page_size", 100)
	v.SetDefault("fetch.language", "simple")
	v.SetDefault("fetch.output_dir", "data/wikipedia")
	v.SetDefault("fetch.split", "train")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.level", "info")

	return Config{
		Source: SourceConfig{
			Provider: v.GetString("source.provider"),
			Endpoint: v.GetString("source.endpoint"),
			APIToken: v.GetString("source.api_token"),
			PageSize: v.GetInt("source.page_size"),
		},
		Fetch: FetchConfig{
			Language:  v.GetString("fetch.language"),
			OutputDir: v.GetString("fetch.output_dir"),
			Split:     v.GetString("fetch.split"),
		},
		Log: LogConfig{
			Format: v.GetString("log.format"),
			Level:  v.GetString("log.level"),
		},
	}
}
