package usecase

import (
	"context"
	"fmt"

	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/usecase/shared"
)

// OpenIssueInput contains the parameters for opening an issue.
// Fields are ordered to minimize memory padding.
type OpenIssueInput struct {
	Repo       domain.Repo // Target repository (required)
	Message    string      // Issue text from -m; "\n" sequences are decoded
	HasMessage bool        // Message was given (skips the editor, even when empty)
}

// OpenIssueOutput contains the result of opening an issue.
type OpenIssueOutput struct {
	Issue *domain.Issue // The created issue as returned by the service
}

// OpenIssue is the use case for creating a new issue.
type OpenIssue struct {
	issues domain.IssueService
	editor domain.Editor
}

// NewOpenIssue creates a new OpenIssue use case.
func NewOpenIssue(issues domain.IssueService, editor domain.Editor) *OpenIssue {
	return &OpenIssue{issues: issues, editor: editor}
}

// Execute composes the issue text and submits it.
// The first line becomes the title and the rest the body.
func (uc *OpenIssue) Execute(ctx context.Context, in OpenIssueInput) (*OpenIssueOutput, error) {
	var text string
	if in.HasMessage {
		text = shared.DecodeMessage(in.Message)
	} else {
		edited, err := uc.editor.Edit(ctx, shared.NewIssueTemplate())
		if err != nil {
			return nil, err
		}
		text = shared.StripComments(edited)
	}

	title, body, err := shared.SplitIssueText(text, domain.ErrEmptyIssue)
	if err != nil {
		return nil, err
	}

	issue, err := uc.issues.Open(ctx, in.Repo, title, body)
	if err != nil {
		return nil, fmt.Errorf("open issue: %w", err)
	}
	return &OpenIssueOutput{Issue: issue}, nil
}
