package usecase

import (
	"context"
	"fmt"

	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/usecase/shared"
)

// AddCommentInput contains the parameters for commenting on an issue.
type AddCommentInput struct {
	Repo   domain.Repo // Target repository (required)
	Number int         // Issue number (required)
}

// AddCommentOutput contains the result of adding a comment.
type AddCommentOutput struct {
	Comment *domain.Comment
}

// AddComment is the use case for adding a comment to an issue.
type AddComment struct {
	issues domain.IssueService
	editor domain.Editor
}

// NewAddComment creates a new AddComment use case.
func NewAddComment(issues domain.IssueService, editor domain.Editor) *AddComment {
	return &AddComment{issues: issues, editor: editor}
}

// Execute fetches the issue for the editor seed, then submits the comment.
func (uc *AddComment) Execute(ctx context.Context, in AddCommentInput) (*AddCommentOutput, error) {
	issue, err := shared.GetIssue(ctx, uc.issues, in.Repo, in.Number)
	if err != nil {
		return nil, err
	}

	edited, err := uc.editor.Edit(ctx, shared.CommentTemplate(issue))
	if err != nil {
		return nil, err
	}
	body, err := shared.ValidateMessage(shared.StripComments(edited), domain.ErrEmptyComment)
	if err != nil {
		return nil, err
	}

	comment, err := uc.issues.Comment(ctx, in.Repo, in.Number, body)
	if err != nil {
		return nil, fmt.Errorf("comment on issue #%d: %w", in.Number, err)
	}
	return &AddCommentOutput{Comment: comment}, nil
}
