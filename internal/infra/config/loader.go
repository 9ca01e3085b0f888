// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/ghi-cli/ghi/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Environment variables that override file settings.
const (
	EnvUser     = "GITHUB_USER"
	EnvToken    = "GITHUB_TOKEN"
	EnvGHToken  = "GH_TOKEN"
	EnvAPIURL   = "GHI_API_URL"
	EnvLogLevel = "GHI_LOG_LEVEL"
	EnvPager    = "PAGER"
)

// GitConfigSource returns the [github] settings of the user's git configuration.
type GitConfigSource func() (domain.GitHubConfig, error)

// Loader loads configuration from TOML files, git config and the environment.
// Fields are ordered to minimize memory padding.
type Loader struct {
	getenv        func(string) string
	gitConfig     GitConfigSource
	repoRoot      string // Repository root holding .ghi.toml (may be empty)
	globalConfDir string // Path to global config directory (e.g., ~/.config/ghi)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEnv sets the environment lookup used for overrides.
func WithEnv(getenv func(string) string) LoaderOption {
	return func(l *Loader) {
		l.getenv = getenv
	}
}

// WithGitConfig sets the source for github.user and github.token.
func WithGitConfig(src GitConfigSource) LoaderOption {
	return func(l *Loader) {
		l.gitConfig = src
	}
}

// NewLoader creates a new Loader reading the global config directory and process environment.
func NewLoader(repoRoot string, opts ...LoaderOption) *Loader {
	l := &Loader{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
		getenv:        os.Getenv,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// Environment and git config are ignored unless given as options.
// This is useful for testing.
func NewLoaderWithGlobalDir(repoRoot, globalConfDir string, opts ...LoaderOption) *Loader {
	l := &Loader{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
		getenv:        func(string) string { return "" },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration.
// Precedence (later wins): defaults, global file, repository file, git config, environment.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if global != nil {
		base = mergeConfigs(base, global)
	}

	repo, err := l.LoadRepo()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if repo != nil {
		base = mergeConfigs(base, repo)
	}

	if l.gitConfig != nil {
		gh, err := l.gitConfig()
		if err != nil {
			base.Warnings = append(base.Warnings, fmt.Sprintf("git config: %v", err))
		} else {
			base = mergeConfigs(base, &domain.Config{GitHub: gh})
		}
	}

	return mergeConfigs(base, l.fromEnv()), nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadRepo returns only the repository configuration (.ghi.toml at the repository root).
func (l *Loader) LoadRepo() (*domain.Config, error) {
	if l.repoRoot == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.repoRoot, domain.RootConfigFileName))
}

// fromEnv returns the overrides set in the environment.
func (l *Loader) fromEnv() *domain.Config {
	token := l.getenv(EnvToken)
	if token == "" {
		token = l.getenv(EnvGHToken)
	}
	return &domain.Config{
		GitHub: domain.GitHubConfig{
			User:   l.getenv(EnvUser),
			Token:  token,
			APIURL: l.getenv(EnvAPIURL),
		},
		Display: domain.DisplayConfig{
			Pager: l.getenv(EnvPager),
		},
		Log: domain.LogConfig{
			Level: l.getenv(EnvLogLevel),
		},
	}
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "github":
			for k, v := range m {
				switch k {
				case "user":
					res.GitHub.User = stringValue(v)
				case "token":
					res.GitHub.Token = stringValue(v)
				case "api_url":
					res.GitHub.APIURL = stringValue(v)
				case "web_url":
					res.GitHub.WebURL = stringValue(v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [github]: %s", k))
				}
			}
		case "display":
			for k, v := range m {
				switch k {
				case "pager":
					res.Display.Pager = stringValue(v)
				case "wrap_width":
					if n, ok := widthValue(v); ok {
						res.Display.WrapWidth = n
					} else {
						warnings = append(warnings, fmt.Sprintf("invalid value in [display]: %s must be a positive integer", k))
					}
				case "truncate_width":
					if n, ok := widthValue(v); ok {
						res.Display.TruncateWidth = n
					} else {
						warnings = append(warnings, fmt.Sprintf("invalid value in [display]: %s must be a positive integer", k))
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [display]: %s", k))
				}
			}
		case "cache":
			for k, v := range m {
				switch k {
				case "dir":
					res.Cache.Dir = stringValue(v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [cache]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					res.Log.Level = stringValue(v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func widthValue(v any) (int, bool) {
	n, ok := v.(int64)
	if !ok || n <= 0 {
		return 0, false
	}
	return int(n), true
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		GitHub:  base.GitHub,
		Display: base.Display,
		Cache:   base.Cache,
		Log:     base.Log,
	}

	// Base warnings first, then override warnings
	result.Warnings = append(result.Warnings, base.Warnings...)
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.GitHub.User != "" {
		result.GitHub.User = override.GitHub.User
	}
	if override.GitHub.Token != "" {
		result.GitHub.Token = override.GitHub.Token
	}
	if override.GitHub.APIURL != "" {
		result.GitHub.APIURL = override.GitHub.APIURL
	}
	if override.GitHub.WebURL != "" {
		result.GitHub.WebURL = override.GitHub.WebURL
	}
	if override.Display.Pager != "" {
		result.Display.Pager = override.Display.Pager
	}
	if override.Display.WrapWidth != 0 {
		result.Display.WrapWidth = override.Display.WrapWidth
	}
	if override.Display.TruncateWidth != 0 {
		result.Display.TruncateWidth = override.Display.TruncateWidth
	}
	if override.Cache.Dir != "" {
		result.Cache.Dir = override.Cache.Dir
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return result
}
