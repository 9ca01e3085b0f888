// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/ghi-cli/ghi/internal/domain"
)

// ListIssuesInput contains the parameters for listing issues.
type ListIssuesInput struct {
	Repo  domain.Repo  // Target repository (required)
	State domain.State // open or closed (default: open)
}

// ListIssuesOutput contains the result of listing issues.
type ListIssuesOutput struct {
	Issues []*domain.Issue // Issues in the requested state, in service order
}

// ListIssues is the use case for listing the issues of one state.
// Listing "all" is done by the caller, one state at a time.
type ListIssues struct {
	issues domain.IssueService
}

// NewListIssues creates a new ListIssues use case.
func NewListIssues(issues domain.IssueService) *ListIssues {
	return &ListIssues{issues: issues}
}

// Execute lists the issues in the requested state.
func (uc *ListIssues) Execute(ctx context.Context, in ListIssuesInput) (*ListIssuesOutput, error) {
	state := in.State
	if state == "" {
		state = domain.DefaultState
	}
	if !state.IsConcrete() {
		return nil, domain.UsageError(fmt.Sprintf("can not list issues in state %q", state))
	}

	issues, err := uc.issues.List(ctx, in.Repo, state)
	if err != nil {
		return nil, fmt.Errorf("list %s issues: %w", state, err)
	}
	return &ListIssuesOutput{Issues: issues}, nil
}
