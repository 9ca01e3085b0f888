// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/format"
	"github.com/ghi-cli/ghi/internal/infra/browser"
	"github.com/ghi-cli/ghi/internal/infra/config"
	"github.com/ghi-cli/ghi/internal/infra/editor"
	"github.com/ghi-cli/ghi/internal/infra/executor"
	"github.com/ghi-cli/ghi/internal/infra/ghapi"
	"github.com/ghi-cli/ghi/internal/infra/git"
	"github.com/ghi-cli/ghi/internal/infra/httpcache"
	"github.com/ghi-cli/ghi/internal/infra/logging"
	"github.com/ghi-cli/ghi/internal/infra/pager"
	"github.com/ghi-cli/ghi/internal/usecase"
)

// Config holds the paths the container was created for.
type Config struct {
	WorkDir  string // Directory ghi was started in
	RepoRoot string // Root of the enclosing git repository ("" outside a repository)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Issues       domain.IssueService
	Resolver     domain.RepoResolver
	Editor       domain.Editor
	Browser      domain.Browser
	ConfigLoader domain.ConfigLoader
	Pager        pager.Starter

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config
	Formatter *format.Formatter

	httpClient *http.Client     // Shared with Issues; the cache wraps its transport
	cache      *httpcache.Store // Open HTTP cache (nil when disabled)

	// Configuration
	Config Config
}

// Deps holds the collaborators for NewWithDeps.
type Deps struct {
	Issues    domain.IssueService
	Resolver  domain.RepoResolver
	Editor    domain.Editor
	Browser   domain.Browser
	Pager     pager.Starter
	Logger    *slog.Logger
	AppConfig *domain.Config
}

// New creates a new Container for the working directory dir.
// dir does not have to be inside a git repository; in that case the repository
// must be given with -r and only the global configuration is read.
func New(dir string) (*Container, error) {
	cfg := Config{WorkDir: dir}

	gitClient, err := git.NewClient(dir)
	switch {
	case err == nil:
		cfg.RepoRoot = gitClient.RepoRoot()
	case errors.Is(err, domain.ErrNoRepository):
		gitClient = nil
	default:
		return nil, err
	}

	configLoader := config.NewLoader(cfg.RepoRoot, config.WithGitConfig(gitConfigSource(gitClient)))
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(appConfig.Log.Level))

	httpClient := &http.Client{Timeout: ghapi.DefaultTimeout}
	issues := ghapi.NewClient(
		ghapi.WithBaseURL(appConfig.GitHub.APIURL),
		ghapi.WithCredentials(appConfig.GitHub.User, appConfig.GitHub.Token),
		ghapi.WithHTTPClient(httpClient),
		ghapi.WithLogger(logger),
	)

	execClient := executor.NewClient()

	return &Container{
		Issues:       issues,
		Resolver:     git.NewResolver(dir, appConfig.GitHub.User, logger),
		Editor:       editor.New(execClient, editor.FromEnv(os.Getenv)),
		Browser:      browser.New(logger),
		ConfigLoader: configLoader,
		Pager:        execClient,
		Logger:       logger,
		AppConfig:    appConfig,
		Formatter:    format.New(appConfig.Display),
		httpClient:   httpClient,
		Config:       cfg,
	}, nil
}

// gitConfigSource reads github.user and github.token from git config.
// Inside a repository the repository's view of the config is used.
func gitConfigSource(gitClient *git.Client) config.GitConfigSource {
	return func() (domain.GitHubConfig, error) {
		var (
			settings git.GitHubSettings
			err      error
		)
		if gitClient != nil {
			settings, err = gitClient.GitHubSettings()
		} else {
			settings, err = git.LoadGlobalGitHubSettings()
		}
		if err != nil {
			return domain.GitHubConfig{}, err
		}
		return domain.GitHubConfig{User: settings.User, Token: settings.Token}, nil
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, deps Deps) *Container {
	appConfig := deps.AppConfig
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Container{
		Issues:    deps.Issues,
		Resolver:  deps.Resolver,
		Editor:    deps.Editor,
		Browser:   deps.Browser,
		Pager:     deps.Pager,
		Logger:    logger,
		AppConfig: appConfig,
		Formatter: format.New(appConfig.Display),
		Config:    cfg,
	}
}

// EnableCache routes GET requests of the issue service through the HTTP cache in dir.
// It is a no-op when dir is empty, when the cache is already open, or when the
// container was built without an HTTP client.
func (c *Container) EnableCache(ctx context.Context, dir string) error {
	if dir == "" || c.cache != nil || c.httpClient == nil {
		return nil
	}
	store, err := httpcache.Open(ctx, dir)
	if err != nil {
		return domain.EnvironmentError(fmt.Sprintf("failed to open cache in %s", dir), err)
	}
	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.httpClient.Transport = httpcache.NewTransport(base, store, c.Logger)
	c.cache = store
	c.Logger.Debug("http cache enabled", "path", store.Path())
	return nil
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.cache == nil {
		return nil
	}
	err := c.cache.Close()
	c.cache = nil
	return err
}

// WebURL returns the base URL for browser pages.
func (c *Container) WebURL() string {
	if c.AppConfig.GitHub.WebURL == "" {
		return domain.DefaultWebURL
	}
	return c.AppConfig.GitHub.WebURL
}

// UseCase factory methods

// ListIssuesUseCase returns a new ListIssues use case.
func (c *Container) ListIssuesUseCase() *usecase.ListIssues {
	return usecase.NewListIssues(c.Issues)
}

// ShowIssueUseCase returns a new ShowIssue use case.
func (c *Container) ShowIssueUseCase() *usecase.ShowIssue {
	return usecase.NewShowIssue(c.Issues)
}

// ListCommentsUseCase returns a new ListComments use case.
func (c *Container) ListCommentsUseCase() *usecase.ListComments {
	return usecase.NewListComments(c.Issues)
}

// SearchIssuesUseCase returns a new SearchIssues use case.
func (c *Container) SearchIssuesUseCase() *usecase.SearchIssues {
	return usecase.NewSearchIssues(c.Issues)
}

// OpenIssueUseCase returns a new OpenIssue use case.
func (c *Container) OpenIssueUseCase() *usecase.OpenIssue {
	return usecase.NewOpenIssue(c.Issues, c.Editor)
}

// CloseIssueUseCase returns a new CloseIssue use case.
func (c *Container) CloseIssueUseCase() *usecase.CloseIssue {
	return usecase.NewCloseIssue(c.Issues)
}

// ReopenIssueUseCase returns a new ReopenIssue use case.
func (c *Container) ReopenIssueUseCase() *usecase.ReopenIssue {
	return usecase.NewReopenIssue(c.Issues)
}

// EditIssueUseCase returns a new EditIssue use case.
func (c *Container) EditIssueUseCase() *usecase.EditIssue {
	return usecase.NewEditIssue(c.Issues, c.Editor)
}

// LabelIssueUseCase returns a new LabelIssue use case.
func (c *Container) LabelIssueUseCase() *usecase.LabelIssue {
	return usecase.NewLabelIssue(c.Issues)
}

// AddCommentUseCase returns a new AddComment use case.
func (c *Container) AddCommentUseCase() *usecase.AddComment {
	return usecase.NewAddComment(c.Issues, c.Editor)
}
