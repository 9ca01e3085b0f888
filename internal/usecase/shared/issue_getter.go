package shared

import (
	"context"
	"fmt"

	"github.com/ghi-cli/ghi/internal/domain"
)

// ValidateNumber checks that number is a positive issue number.
func ValidateNumber(number int) error {
	if number <= 0 {
		return domain.ErrNumberRequired
	}
	return nil
}

// GetIssue validates number and fetches the issue.
// This centralizes the common pattern of:
//
//	if number <= 0 { return nil, domain.ErrNumberRequired }
//	issue, err := issues.Show(ctx, repo, number)
//	if err != nil { return nil, fmt.Errorf("get issue: %w", err) }
func GetIssue(ctx context.Context, issues domain.IssueService, repo domain.Repo, number int) (*domain.Issue, error) {
	if err := ValidateNumber(number); err != nil {
		return nil, err
	}
	issue, err := issues.Show(ctx, repo, number)
	if err != nil {
		return nil, fmt.Errorf("get issue #%d: %w", number, err)
	}
	if issue == nil {
		return nil, domain.ErrUnexpectedResponse
	}
	return issue, nil
}
