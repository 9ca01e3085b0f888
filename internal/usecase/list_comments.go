package usecase

import (
	"context"
	"fmt"

	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/usecase/shared"
)

// ListCommentsInput contains the parameters for listing comments.
type ListCommentsInput struct {
	Repo   domain.Repo // Target repository (required)
	Number int         // Issue number (required)
}

// ListCommentsOutput contains the result of listing comments.
type ListCommentsOutput struct {
	Comments []domain.Comment // Comments in creation order
}

// ListComments is the use case for listing the comments of an issue.
type ListComments struct {
	issues domain.IssueService
}

// NewListComments creates a new ListComments use case.
func NewListComments(issues domain.IssueService) *ListComments {
	return &ListComments{issues: issues}
}

// Execute lists the comments.
func (uc *ListComments) Execute(ctx context.Context, in ListCommentsInput) (*ListCommentsOutput, error) {
	if err := shared.ValidateNumber(in.Number); err != nil {
		return nil, err
	}
	comments, err := uc.issues.Comments(ctx, in.Repo, in.Number)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return &ListCommentsOutput{Comments: comments}, nil
}
