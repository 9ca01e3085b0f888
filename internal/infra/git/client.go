// Package git reads repository and user settings from git via go-git.
package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"

	"github.com/ghi-cli/ghi/internal/domain"
)

// DefaultRemote is the remote whose URL identifies the repository.
const DefaultRemote = "origin"

// Client provides read access to a local git repository.
type Client struct {
	repo     *git.Repository
	repoRoot string // Worktree root (directory containing .git)
}

// NewClient opens the repository containing dir, searching parent directories.
// Returns domain.ErrNoRepository when dir is not inside a git repository.
func NewClient(dir string) (*Client, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNoRepository
		}
		return nil, fmt.Errorf("open git repository: %w", err)
	}

	var root string
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}
	return &Client{repo: repo, repoRoot: root}, nil
}

// RepoRoot returns the repository root directory, or "" for bare repositories.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// RemoteURL returns the first URL of the named remote.
func (c *Client) RemoteURL(name string) (string, error) {
	remote, err := c.repo.Remote(name)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", domain.EnvironmentError(
				fmt.Sprintf("no '%s' remote found (use -r user/repo)", name), err)
		}
		return "", fmt.Errorf("read remote %s: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 || strings.TrimSpace(urls[0]) == "" {
		return "", domain.EnvironmentError(fmt.Sprintf("remote '%s' has no URL", name), nil)
	}
	return urls[0], nil
}

// GitHubSettings holds the [github] section of the user's git configuration.
type GitHubSettings struct {
	User  string
	Token string
}

// LoadGlobalGitHubSettings reads github.user and github.token from the global git config.
// A missing config file yields empty settings.
func LoadGlobalGitHubSettings() (GitHubSettings, error) {
	cfg, err := config.LoadConfig(config.GlobalScope)
	if err != nil {
		return GitHubSettings{}, fmt.Errorf("load global git config: %w", err)
	}
	return githubSettings(cfg), nil
}

// GitHubSettings reads github.user and github.token from the repository config,
// which includes values inherited from the global config.
func (c *Client) GitHubSettings() (GitHubSettings, error) {
	cfg, err := c.repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return GitHubSettings{}, fmt.Errorf("load git config: %w", err)
	}
	return githubSettings(cfg), nil
}

func githubSettings(cfg *config.Config) GitHubSettings {
	if cfg == nil || cfg.Raw == nil || !cfg.Raw.HasSection("github") {
		return GitHubSettings{}
	}
	section := cfg.Raw.Section("github")
	return GitHubSettings{
		User:  strings.TrimSpace(section.Option("user")),
		Token: strings.TrimSpace(section.Option("token")),
	}
}
