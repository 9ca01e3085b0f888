// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"slices"

	"github.com/ghi-cli/ghi/internal/domain"
)

// MockIssueService is a test double for domain.IssueService.
// Every call is recorded in Calls as "<method> <args>".
// Fields are ordered to minimize memory padding.
type MockIssueService struct {
	Issues      map[int]*domain.Issue            // Issues by number (Show, Close, Reopen, Edit)
	Lists       map[domain.State][]*domain.Issue // List results by state
	Searches    map[domain.State][]*domain.Issue // Search results by state
	CommentList map[int][]domain.Comment         // Comments by issue number
	Labels      map[int][]string                 // Labels by issue number
	ListErr     error
	ShowErr     error
	SubmitErr   error // Returned by every mutating call
	Calls       []string
	LastTitle   string
	LastBody    string
	LastComment string
	LastTerm    string
	NextNumber  int
}

// NewMockIssueService creates a new MockIssueService with initialized maps.
func NewMockIssueService() *MockIssueService {
	return &MockIssueService{
		Issues:      make(map[int]*domain.Issue),
		Lists:       make(map[domain.State][]*domain.Issue),
		Searches:    make(map[domain.State][]*domain.Issue),
		CommentList: make(map[int][]domain.Comment),
		Labels:      make(map[int][]string),
		NextNumber:  1,
	}
}

// Ensure MockIssueService implements domain.IssueService.
var _ domain.IssueService = (*MockIssueService)(nil)

func (m *MockIssueService) record(format string, args ...any) {
	m.Calls = append(m.Calls, fmt.Sprintf(format, args...))
}

func (m *MockIssueService) get(number int) (*domain.Issue, error) {
	issue, ok := m.Issues[number]
	if !ok {
		return nil, domain.RemoteError(fmt.Sprintf("issue #%d not found", number))
	}
	cp := *issue
	return &cp, nil
}

// List returns the configured issues for state.
func (m *MockIssueService) List(_ context.Context, repo domain.Repo, state domain.State) ([]*domain.Issue, error) {
	m.record("list %s %s", repo, state)
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Lists[state], nil
}

// Show returns the issue with the given number.
func (m *MockIssueService) Show(_ context.Context, repo domain.Repo, number int) (*domain.Issue, error) {
	m.record("show %s %d", repo, number)
	if m.ShowErr != nil {
		return nil, m.ShowErr
	}
	return m.get(number)
}

// Search returns the configured search results for state.
func (m *MockIssueService) Search(_ context.Context, repo domain.Repo, state domain.State, term string) ([]*domain.Issue, error) {
	m.record("search %s %s %s", repo, state, term)
	m.LastTerm = term
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Searches[state], nil
}

// Open creates an issue with the next number.
func (m *MockIssueService) Open(_ context.Context, repo domain.Repo, title, body string) (*domain.Issue, error) {
	m.record("open %s", repo)
	m.LastTitle, m.LastBody = title, body
	if m.SubmitErr != nil {
		return nil, m.SubmitErr
	}
	issue := &domain.Issue{Number: m.NextNumber, Title: title, Body: body, State: domain.StateOpen}
	m.Issues[issue.Number] = issue
	m.NextNumber++
	cp := *issue
	return &cp, nil
}

// Close marks an issue closed.
func (m *MockIssueService) Close(_ context.Context, repo domain.Repo, number int) (*domain.Issue, error) {
	m.record("close %s %d", repo, number)
	return m.setState(number, domain.StateClosed)
}

// Reopen marks an issue open.
func (m *MockIssueService) Reopen(_ context.Context, repo domain.Repo, number int) (*domain.Issue, error) {
	m.record("reopen %s %d", repo, number)
	return m.setState(number, domain.StateOpen)
}

func (m *MockIssueService) setState(number int, state domain.State) (*domain.Issue, error) {
	if m.SubmitErr != nil {
		return nil, m.SubmitErr
	}
	if _, err := m.get(number); err != nil {
		return nil, err
	}
	m.Issues[number].State = state
	return m.get(number)
}

// Edit replaces title and body.
func (m *MockIssueService) Edit(_ context.Context, repo domain.Repo, number int, title, body string) (*domain.Issue, error) {
	m.record("edit %s %d", repo, number)
	m.LastTitle, m.LastBody = title, body
	if m.SubmitErr != nil {
		return nil, m.SubmitErr
	}
	if _, err := m.get(number); err != nil {
		return nil, err
	}
	m.Issues[number].Title = title
	m.Issues[number].Body = body
	return m.get(number)
}

// Comments returns the configured comments.
func (m *MockIssueService) Comments(_ context.Context, repo domain.Repo, number int) ([]domain.Comment, error) {
	m.record("comments %s %d", repo, number)
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.CommentList[number], nil
}

// Comment appends a comment.
func (m *MockIssueService) Comment(_ context.Context, repo domain.Repo, number int, body string) (*domain.Comment, error) {
	m.record("comment %s %d", repo, number)
	m.LastComment = body
	if m.SubmitErr != nil {
		return nil, m.SubmitErr
	}
	c := domain.Comment{Body: body}
	m.CommentList[number] = append(m.CommentList[number], c)
	return &c, nil
}

// AddLabel adds label to the issue's label set.
func (m *MockIssueService) AddLabel(_ context.Context, repo domain.Repo, number int, label string) ([]string, error) {
	m.record("label add %s %s %d", repo, label, number)
	if m.SubmitErr != nil {
		return nil, m.SubmitErr
	}
	if !slices.Contains(m.Labels[number], label) {
		m.Labels[number] = append(m.Labels[number], label)
	}
	return slices.Clone(m.Labels[number]), nil
}

// RemoveLabel removes label from the issue's label set.
func (m *MockIssueService) RemoveLabel(_ context.Context, repo domain.Repo, number int, label string) ([]string, error) {
	m.record("label remove %s %s %d", repo, label, number)
	if m.SubmitErr != nil {
		return nil, m.SubmitErr
	}
	m.Labels[number] = slices.DeleteFunc(m.Labels[number], func(l string) bool { return l == label })
	return slices.Clone(m.Labels[number]), nil
}

// MockEditor is a test double for domain.Editor.
// It returns Output, or transforms the seed with Func when set.
type MockEditor struct {
	Func   func(initial string) string
	Err    error
	Output string
	Seen   string // Initial text of the last session
	Calls  int
}

// Edit records the seed and returns the configured result.
func (m *MockEditor) Edit(_ context.Context, initial string) (string, error) {
	m.Calls++
	m.Seen = initial
	if m.Err != nil {
		return "", m.Err
	}
	if m.Func != nil {
		return m.Func(initial), nil
	}
	return m.Output, nil
}

// MockBrowser is a test double for domain.Browser.
type MockBrowser struct {
	Err    error
	Opened []string
}

// Open records url.
func (m *MockBrowser) Open(url string) error {
	m.Opened = append(m.Opened, url)
	return m.Err
}

// MockResolver is a test double for domain.RepoResolver.
type MockResolver struct {
	Err    error
	Repo   domain.Repo
	Option string // Option passed to the last Resolve call
}

// Resolve returns the configured repository, or parses option when given.
func (m *MockResolver) Resolve(option string) (domain.Repo, error) {
	m.Option = option
	if m.Err != nil {
		return domain.Repo{}, m.Err
	}
	if option != "" {
		return domain.ParseRepo(option, m.Repo.Owner)
	}
	return m.Repo, nil
}
