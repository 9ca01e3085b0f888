package usecase

import (
	"context"
	"testing"

	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseIssue_Execute(t *testing.T) {
	// Setup
	svc := testutil.NewMockIssueService()
	svc.Issues[5] = &domain.Issue{Number: 5, Title: "Typo", State: domain.StateOpen}
	uc := NewCloseIssue(svc)

	// Execute
	out, err := uc.Execute(context.Background(), CloseIssueInput{Repo: testRepo, Number: 5})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.StateClosed, out.Issue.State)
	assert.Equal(t, []string{"close alice/tool 5"}, svc.Calls)
}

func TestCloseIssue_Execute_InvalidNumber(t *testing.T) {
	// Setup
	svc := testutil.NewMockIssueService()
	uc := NewCloseIssue(svc)

	// Execute
	_, err := uc.Execute(context.Background(), CloseIssueInput{Repo: testRepo})

	// Assert
	assert.ErrorIs(t, err, domain.ErrNumberRequired)
	assert.Empty(t, svc.Calls)
}

func TestCloseIssue_Execute_RemoteError(t *testing.T) {
	// Setup
	svc := testutil.NewMockIssueService()
	svc.SubmitErr = domain.RemoteError("not authorized")
	uc := NewCloseIssue(svc)

	// Execute
	_, err := uc.Execute(context.Background(), CloseIssueInput{Repo: testRepo, Number: 5})

	// Assert
	require.Error(t, err)
	assert.Equal(t, domain.KindRemote, domain.KindOf(err))
}

func TestReopenIssue_Execute(t *testing.T) {
	// Setup
	svc := testutil.NewMockIssueService()
	svc.Issues[5] = &domain.Issue{Number: 5, Title: "Typo", State: domain.StateClosed}
	uc := NewReopenIssue(svc)

	// Execute
	out, err := uc.Execute(context.Background(), ReopenIssueInput{Repo: testRepo, Number: 5})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.StateOpen, out.Issue.State)
	assert.Equal(t, []string{"reopen alice/tool 5"}, svc.Calls)
}

func TestReopenIssue_Execute_InvalidNumber(t *testing.T) {
	// Setup
	svc := testutil.NewMockIssueService()
	uc := NewReopenIssue(svc)

	// Execute
	_, err := uc.Execute(context.Background(), ReopenIssueInput{Repo: testRepo, Number: -1})

	// Assert
	assert.ErrorIs(t, err, domain.ErrNumberRequired)
	assert.Empty(t, svc.Calls)
}
