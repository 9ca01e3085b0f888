package usecase

import (
	"context"
	"testing"

	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelIssue_Execute(t *testing.T) {
	tests := []struct {
		name       string
		command    string
		wantCall   string
		wantLabels []string
	}{
		{"add", LabelAdd, "label add alice/tool bug 5", []string{"ui", "bug"}},
		{"remove", LabelRemove, "label remove alice/tool ui 5", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			svc := testutil.NewMockIssueService()
			svc.Labels[5] = []string{"ui"}
			uc := NewLabelIssue(svc)
			label := "bug"
			if tt.command == LabelRemove {
				label = "ui"
			}

			// Execute
			out, err := uc.Execute(context.Background(), LabelIssueInput{
				Repo:    testRepo,
				Command: tt.command,
				Label:   label,
				Number:  5,
			})

			// Assert
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.wantLabels, out.Labels)
			assert.Equal(t, []string{tt.wantCall}, svc.Calls)
		})
	}
}

func TestLabelIssue_Execute_Validation(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		input   LabelIssueInput
	}{
		{domain.ErrInvalidLabelCommand, "unknown command", LabelIssueInput{Command: "tag", Label: "bug", Number: 5}},
		{domain.ErrInvalidLabelCommand, "missing command", LabelIssueInput{Label: "bug", Number: 5}},
		{domain.ErrLabelRequired, "missing label", LabelIssueInput{Command: LabelAdd, Number: 5}},
		{domain.ErrNumberRequired, "missing number", LabelIssueInput{Command: LabelRemove, Label: "bug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			svc := testutil.NewMockIssueService()
			uc := NewLabelIssue(svc)
			tt.input.Repo = testRepo

			// Execute
			_, err := uc.Execute(context.Background(), tt.input)

			// Assert
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, svc.Calls)
		})
	}
}
