package usecase

import (
	"context"
	"fmt"

	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/usecase/shared"
)

// EditIssueInput contains the parameters for editing an issue.
type EditIssueInput struct {
	Repo   domain.Repo // Target repository (required)
	Number int         // Issue number (required)
}

// EditIssueOutput contains the result of editing an issue.
type EditIssueOutput struct {
	Issue *domain.Issue // The updated issue as returned by the service
}

// EditIssue is the use case for editing the title and body of an issue.
type EditIssue struct {
	issues domain.IssueService
	editor domain.Editor
}

// NewEditIssue creates a new EditIssue use case.
func NewEditIssue(issues domain.IssueService, editor domain.Editor) *EditIssue {
	return &EditIssue{issues: issues, editor: editor}
}

// Execute fetches the issue, lets the user edit it and submits the result.
// Returns domain.ErrNoChanges without submitting when neither title nor body changed.
func (uc *EditIssue) Execute(ctx context.Context, in EditIssueInput) (*EditIssueOutput, error) {
	issue, err := shared.GetIssue(ctx, uc.issues, in.Repo, in.Number)
	if err != nil {
		return nil, err
	}

	edited, err := uc.editor.Edit(ctx, shared.EditIssueTemplate(issue))
	if err != nil {
		return nil, err
	}

	text := shared.StripTemplate(edited, shared.EditIssueTrailer(issue))
	title, body, err := shared.SplitIssueText(text, domain.ErrEmptyIssue)
	if err != nil {
		return nil, err
	}
	if title == issue.Title && body == issue.TrimmedBody() {
		return nil, domain.ErrNoChanges
	}

	updated, err := uc.issues.Edit(ctx, in.Repo, in.Number, title, body)
	if err != nil {
		return nil, fmt.Errorf("edit issue #%d: %w", in.Number, err)
	}
	return &EditIssueOutput{Issue: updated}, nil
}
