package shared

import (
	"context"
	"testing"

	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIssue(t *testing.T) {
	svc := testutil.NewMockIssueService()
	svc.Issues[2] = &domain.Issue{Number: 2, Title: "x"}
	repo := domain.Repo{Owner: "alice", Name: "tool"}

	issue, err := GetIssue(context.Background(), svc, repo, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, issue.Number)

	_, err = GetIssue(context.Background(), svc, repo, 0)
	assert.ErrorIs(t, err, domain.ErrNumberRequired)

	_, err = GetIssue(context.Background(), svc, repo, 3)
	assert.Equal(t, domain.KindRemote, domain.KindOf(err))
	assert.Contains(t, err.Error(), "get issue #3")
}
