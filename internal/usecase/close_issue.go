package usecase

import (
	"context"
	"fmt"

	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/usecase/shared"
)

// CloseIssueInput contains the parameters for closing an issue.
type CloseIssueInput struct {
	Repo   domain.Repo // Target repository (required)
	Number int         // Issue number (required)
}

// CloseIssueOutput contains the result of closing an issue.
type CloseIssueOutput struct {
	Issue *domain.Issue
}

// CloseIssue is the use case for closing an issue.
type CloseIssue struct {
	issues domain.IssueService
}

// NewCloseIssue creates a new CloseIssue use case.
func NewCloseIssue(issues domain.IssueService) *CloseIssue {
	return &CloseIssue{issues: issues}
}

// Execute closes the issue.
func (uc *CloseIssue) Execute(ctx context.Context, in CloseIssueInput) (*CloseIssueOutput, error) {
	if err := shared.ValidateNumber(in.Number); err != nil {
		return nil, err
	}
	issue, err := uc.issues.Close(ctx, in.Repo, in.Number)
	if err != nil {
		return nil, fmt.Errorf("close issue #%d: %w", in.Number, err)
	}
	return &CloseIssueOutput{Issue: issue}, nil
}
