package shared

import (
	"fmt"
	"strings"

	"github.com/ghi-cli/ghi/internal/domain"
)

const issueInstructions = "# Please explain the issue.\n" +
	"# The first line will be used as the title.\n" +
	"# Lines starting with `#` will be ignored."

const editInstructions = "# Please edit the issue.\n" +
	"# The first line will be used as the title.\n" +
	"# The lines of this block will be ignored."

const commentInstructions = "# Please enter a comment.\n" +
	"# Lines starting with `#` will be ignored."

// NewIssueTemplate returns the editor seed for a new issue.
func NewIssueTemplate() string {
	return "\n" + issueInstructions
}

// EditIssueTemplate returns the editor seed for editing issue.
func EditIssueTemplate(issue *domain.Issue) string {
	var b strings.Builder
	b.WriteString(issue.Title)
	b.WriteString("\n")
	b.WriteString(issue.Body)
	b.WriteString("\n")
	b.WriteString(EditIssueTrailer(issue))
	return b.String()
}

// EditIssueTrailer returns the instruction and metadata block that EditIssueTemplate appends after the body.
func EditIssueTrailer(issue *domain.Issue) string {
	return editInstructions + "\n#\n" + metadata(issue)
}

// CommentTemplate returns the editor seed for a comment on issue.
func CommentTemplate(issue *domain.Issue) string {
	return "\n" + commentInstructions + "\n#\n" + metadata(issue)
}

// metadata renders the issue summary shown as '#' lines in editor templates.
func metadata(issue *domain.Issue) string {
	return fmt.Sprintf("#    number:  %d\n#      user:  %s\n#     votes:  %d\n#     state:  %s\n#   created:  %s",
		issue.Number, issue.User, issue.Votes, issue.State, issue.CreatedAt)
}
