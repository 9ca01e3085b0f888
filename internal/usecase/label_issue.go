package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/usecase/shared"
)

// Label commands.
const (
	LabelAdd    = "add"
	LabelRemove = "remove"
)

// LabelIssueInput contains the parameters for changing labels.
// Fields are ordered to minimize memory padding.
type LabelIssueInput struct {
	Repo    domain.Repo // Target repository (required)
	Command string      // add or remove
	Label   string      // Label name (required)
	Number  int         // Issue number (required)
}

// LabelIssueOutput contains the result of a label change.
type LabelIssueOutput struct {
	Labels []string // Labels attached after the change
}

// LabelIssue is the use case for adding or removing a label.
type LabelIssue struct {
	issues domain.IssueService
}

// NewLabelIssue creates a new LabelIssue use case.
func NewLabelIssue(issues domain.IssueService) *LabelIssue {
	return &LabelIssue{issues: issues}
}

// Execute adds or removes the label.
func (uc *LabelIssue) Execute(ctx context.Context, in LabelIssueInput) (*LabelIssueOutput, error) {
	if in.Command != LabelAdd && in.Command != LabelRemove {
		return nil, domain.ErrInvalidLabelCommand
	}
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return nil, domain.ErrLabelRequired
	}
	if err := shared.ValidateNumber(in.Number); err != nil {
		return nil, err
	}

	var (
		labels []string
		err    error
	)
	if in.Command == LabelAdd {
		labels, err = uc.issues.AddLabel(ctx, in.Repo, in.Number, label)
	} else {
		labels, err = uc.issues.RemoveLabel(ctx, in.Repo, in.Number, label)
	}
	if err != nil {
		return nil, fmt.Errorf("%s label %q: %w", in.Command, label, err)
	}
	return &LabelIssueOutput{Labels: labels}, nil
}
