// Package ghapi is a client for the v2 JSON issues API.
package ghapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/infra/httpcache"
)

const (
	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 30 * time.Second

	// issuesPath is the path prefix of every issues endpoint.
	issuesPath = "/api/v2/json/issues"
)

// nullableKeys are response keys where null means an empty value.
var nullableKeys = map[string]bool{"labels": true}

// Ensure Client implements domain.IssueService.
var _ domain.IssueService = (*Client)(nil)

// Client provides typed access to the issues API.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
	login      string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API host (for enterprise installs or testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithCredentials sets the login and token sent with every request.
func WithCredentials(login, token string) Option {
	return func(c *Client) {
		c.login = login
		c.token = token
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new issues API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    domain.DefaultAPIURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns the issues of repo in a concrete state.
func (c *Client) List(ctx context.Context, repo domain.Repo, state domain.State) ([]*domain.Issue, error) {
	var issues []issue
	if err := c.get(ctx, repo, "issues", &issues, "list", state.String()); err != nil {
		return nil, err
	}
	return toDomainIssues(issues), nil
}

// Show returns a single issue.
func (c *Client) Show(ctx context.Context, repo domain.Repo, number int) (*domain.Issue, error) {
	var is issue
	if err := c.get(ctx, repo, "issue", &is, "show", strconv.Itoa(number)); err != nil {
		return nil, err
	}
	return is.toDomain(), nil
}

// Search returns the issues in state matching term.
func (c *Client) Search(ctx context.Context, repo domain.Repo, state domain.State, term string) ([]*domain.Issue, error) {
	var issues []issue
	if err := c.get(ctx, repo, "issues", &issues, "search", state.String(), term); err != nil {
		return nil, err
	}
	return toDomainIssues(issues), nil
}

// Open creates an issue.
func (c *Client) Open(ctx context.Context, repo domain.Repo, title, body string) (*domain.Issue, error) {
	form := url.Values{"title": {title}, "body": {body}}
	var is issue
	if err := c.post(ctx, repo, form, "issue", &is, "open"); err != nil {
		return nil, err
	}
	return is.toDomain(), nil
}

// Close closes an issue.
func (c *Client) Close(ctx context.Context, repo domain.Repo, number int) (*domain.Issue, error) {
	var is issue
	if err := c.post(ctx, repo, nil, "issue", &is, "close", strconv.Itoa(number)); err != nil {
		return nil, err
	}
	return is.toDomain(), nil
}

// Reopen reopens an issue.
func (c *Client) Reopen(ctx context.Context, repo domain.Repo, number int) (*domain.Issue, error) {
	var is issue
	if err := c.post(ctx, repo, nil, "issue", &is, "reopen", strconv.Itoa(number)); err != nil {
		return nil, err
	}
	return is.toDomain(), nil
}

// Edit replaces the title and body of an issue.
func (c *Client) Edit(ctx context.Context, repo domain.Repo, number int, title, body string) (*domain.Issue, error) {
	form := url.Values{"title": {title}, "body": {body}}
	var is issue
	if err := c.post(ctx, repo, form, "issue", &is, "edit", strconv.Itoa(number)); err != nil {
		return nil, err
	}
	return is.toDomain(), nil
}

// Comments returns the comments of an issue.
func (c *Client) Comments(ctx context.Context, repo domain.Repo, number int) ([]domain.Comment, error) {
	var comments []comment
	if err := c.get(ctx, repo, "comments", &comments, "comments", strconv.Itoa(number)); err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0, len(comments))
	for i := range comments {
		out = append(out, comments[i].toDomain())
	}
	return out, nil
}

// Comment adds a comment to an issue.
func (c *Client) Comment(ctx context.Context, repo domain.Repo, number int, body string) (*domain.Comment, error) {
	form := url.Values{"comment": {body}}
	var cm comment
	if err := c.post(ctx, repo, form, "comment", &cm, "comment", strconv.Itoa(number)); err != nil {
		return nil, err
	}
	out := cm.toDomain()
	return &out, nil
}

// AddLabel attaches label to an issue and returns its labels.
func (c *Client) AddLabel(ctx context.Context, repo domain.Repo, number int, label string) ([]string, error) {
	return c.label(ctx, repo, "add", number, label)
}

// RemoveLabel detaches label from an issue and returns its labels.
func (c *Client) RemoveLabel(ctx context.Context, repo domain.Repo, number int, label string) ([]string, error) {
	return c.label(ctx, repo, "remove", number, label)
}

func (c *Client) label(ctx context.Context, repo domain.Repo, command string, number int, label string) ([]string, error) {
	var labels []string
	if err := c.post(ctx, repo, nil, "labels", &labels, "label", command, label, strconv.Itoa(number)); err != nil {
		return nil, err
	}
	return labels, nil
}

// endpoint builds <base>/api/v2/json/issues/{owner}/{repo}/{action}[/{args}] with escaped segments.
func (c *Client) endpoint(repo domain.Repo, action string, args ...string) string {
	segments := append([]string{repo.Owner, repo.Name, action}, args...)
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString(issuesPath)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// auth returns the credential parameters, empty when not configured.
func (c *Client) auth() url.Values {
	v := url.Values{}
	if c.login != "" && c.token != "" {
		v.Set("login", c.login)
		v.Set("token", c.token)
	}
	return v
}

func (c *Client) get(ctx context.Context, repo domain.Repo, key string, v any, action string, args ...string) error {
	endpoint := c.endpoint(repo, action, args...)
	if query := c.auth().Encode(); query != "" {
		endpoint += "?" + query
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, key, v)
}

func (c *Client) post(ctx context.Context, repo domain.Repo, form url.Values, key string, v any, action string, args ...string) error {
	values := c.auth()
	for k, vs := range form {
		values[k] = vs
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(repo, action, args...),
		strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, key, v)
}

// do executes req and decodes the value under key into v.
func (c *Client) do(req *http.Request, key string, v any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The query carries login and token.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = httpcache.Key(req.URL)
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("api request",
		"method", req.Method,
		"url", req.URL.Path,
		"status", resp.StatusCode,
		"cached", resp.Header.Get(httpcache.HeaderCache) == "hit",
	)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	return decode(resp.StatusCode, body, key, v)
}

// decode extracts the value under key from a response payload.
// An error payload wins over the status code.
func decode(status int, body []byte, key string, v any) error {
	var payload map[string]json.RawMessage
	parseErr := json.Unmarshal(bytes.TrimSpace(body), &payload)

	if parseErr == nil {
		if raw, ok := payload["error"]; ok {
			return payloadError(raw)
		}
	}
	if status < 200 || status > 299 {
		return domain.RemoteError(fmt.Sprintf("unexpected status %d", status))
	}
	if parseErr != nil {
		return fmt.Errorf("decode response: %w", parseErr)
	}

	raw, ok := payload[key]
	if !ok {
		return domain.ErrUnexpectedResponse
	}
	if bytes.Equal(raw, []byte("null")) {
		if nullableKeys[key] {
			return nil
		}
		return domain.ErrUnexpectedResponse
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// payloadError converts {"error":[{"error":msg},...]} (or a bare string) into a remote error.
func payloadError(raw json.RawMessage) error {
	var list []errorMessage
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		messages := make([]string, 0, len(list))
		for _, m := range list {
			messages = append(messages, m.Error)
		}
		return domain.RemoteError(messages...)
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
		return domain.RemoteError(msg)
	}
	return domain.ErrUnexpectedResponse
}
