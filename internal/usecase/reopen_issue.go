package usecase

import (
	"context"
	"fmt"

	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/usecase/shared"
)

// ReopenIssueInput contains the parameters for reopening an issue.
type ReopenIssueInput struct {
	Repo   domain.Repo // Target repository (required)
	Number int         // Issue number (required)
}

// ReopenIssueOutput contains the result of reopening an issue.
type ReopenIssueOutput struct {
	Issue *domain.Issue
}

// ReopenIssue is the use case for reopening a closed issue.
type ReopenIssue struct {
	issues domain.IssueService
}

// NewReopenIssue creates a new ReopenIssue use case.
func NewReopenIssue(issues domain.IssueService) *ReopenIssue {
	return &ReopenIssue{issues: issues}
}

// Execute reopens the issue.
func (uc *ReopenIssue) Execute(ctx context.Context, in ReopenIssueInput) (*ReopenIssueOutput, error) {
	if err := shared.ValidateNumber(in.Number); err != nil {
		return nil, err
	}
	issue, err := uc.issues.Reopen(ctx, in.Repo, in.Number)
	if err != nil {
		return nil, fmt.Errorf("reopen issue #%d: %w", in.Number, err)
	}
	return &ReopenIssueOutput{Issue: issue}, nil
}
