package domain

import "path/filepath"

// Config represents the application configuration.
type Config struct {
	GitHub   GitHubConfig  // [github] settings
	Display  DisplayConfig // [display] settings
	Cache    CacheConfig   // [cache] settings
	Log      LogConfig     // [log] settings
	Warnings []string      // Warnings collected while loading (unknown keys etc.)
}

// GitHubConfig holds the issue service settings from the [github] section.
type GitHubConfig struct {
	User   string // Login, also the default owner for "-r repo"
	Token  string // API token (never logged)
	APIURL string // Base URL of the API host
	WebURL string // Base URL for browser pages
}

// DisplayConfig holds output settings from the [display] section.
type DisplayConfig struct {
	Pager         string // Pager command line; empty disables paging
	WrapWidth     int    // Column budget for wrapped text
	TruncateWidth int    // Column budget for terse issue lines
}

// CacheConfig holds HTTP cache settings from the [cache] section.
type CacheConfig struct {
	Dir string // Cache directory; empty disables caching
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// Configuration defaults.
const (
	DefaultAPIURL        = "https://github.com"
	DefaultWebURL        = "https://github.com"
	DefaultPager         = "less -FRX"
	DefaultWrapWidth     = 79
	DefaultTruncateWidth = 80
	DefaultLogLevel      = "warn"
)

// Configuration file names.
const (
	AppName            = "ghi"
	ConfigFileName     = "config.toml" // Config file name in the global config directory
	RootConfigFileName = ".ghi.toml"   // Config file name in the repository root
	CacheFileName      = "http-cache.db"
)

// GlobalConfigDir returns the global config directory under configHome (e.g. ~/.config/ghi).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// NewDefaultConfig returns a configuration with all defaults applied.
func NewDefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIURL: DefaultAPIURL,
			WebURL: DefaultWebURL,
		},
		Display: DisplayConfig{
			Pager:         DefaultPager,
			WrapWidth:     DefaultWrapWidth,
			TruncateWidth: DefaultTruncateWidth,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}
