package usecase

import (
	"context"

	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/usecase/shared"
)

// ShowIssueInput contains the parameters for showing an issue.
type ShowIssueInput struct {
	Repo   domain.Repo // Target repository (required)
	Number int         // Issue number (required)
}

// ShowIssueOutput contains the result of showing an issue.
type ShowIssueOutput struct {
	Issue *domain.Issue
}

// ShowIssue is the use case for fetching a single issue.
type ShowIssue struct {
	issues domain.IssueService
}

// NewShowIssue creates a new ShowIssue use case.
func NewShowIssue(issues domain.IssueService) *ShowIssue {
	return &ShowIssue{issues: issues}
}

// Execute fetches the issue.
func (uc *ShowIssue) Execute(ctx context.Context, in ShowIssueInput) (*ShowIssueOutput, error) {
	issue, err := shared.GetIssue(ctx, uc.issues, in.Repo, in.Number)
	if err != nil {
		return nil, err
	}
	return &ShowIssueOutput{Issue: issue}, nil
}
