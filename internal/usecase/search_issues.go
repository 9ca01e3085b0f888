package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ghi-cli/ghi/internal/domain"
)

// SearchIssuesInput contains the parameters for searching issues.
type SearchIssuesInput struct {
	Repo  domain.Repo  // Target repository (required)
	Term  string       // Search term (required)
	State domain.State // open or closed (default: open); all is not supported
}

// SearchIssuesOutput contains the result of a search.
// Fields are ordered to minimize memory padding.
type SearchIssuesOutput struct {
	Term   string          // Term as submitted
	Issues []*domain.Issue // Matching issues
}

// SearchIssues is the use case for searching issues.
type SearchIssues struct {
	issues domain.IssueService
}

// NewSearchIssues creates a new SearchIssues use case.
func NewSearchIssues(issues domain.IssueService) *SearchIssues {
	return &SearchIssues{issues: issues}
}

// Execute runs the search. Input is validated before any remote call.
func (uc *SearchIssues) Execute(ctx context.Context, in SearchIssuesInput) (*SearchIssuesOutput, error) {
	term := strings.TrimSpace(in.Term)
	if term == "" {
		return nil, domain.ErrEmptySearchTerm
	}
	state := in.State
	if state == "" {
		state = domain.DefaultState
	}
	if !state.IsConcrete() {
		return nil, domain.ErrSearchAllStates
	}

	issues, err := uc.issues.Search(ctx, in.Repo, state, term)
	if err != nil {
		return nil, fmt.Errorf("search issues: %w", err)
	}
	return &SearchIssuesOutput{Term: term, Issues: issues}, nil
}
