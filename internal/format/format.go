// Package format renders issues and comments as plain text lines.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/ghi-cli/ghi/internal/domain"
)

// numberColumn is the width the terse issue number is right-aligned to.
const numberColumn = 5

// Formatter renders issues and comments.
// A zero width falls back to the package default.
type Formatter struct {
	WrapWidth     int // Column budget for wrapped text
	TruncateWidth int // Column budget for terse issue lines
}

// New creates a Formatter from display settings.
func New(cfg domain.DisplayConfig) *Formatter {
	return &Formatter{
		WrapWidth:     cfg.WrapWidth,
		TruncateWidth: cfg.TruncateWidth,
	}
}

func (f *Formatter) wrapWidth() int {
	if f.WrapWidth > 0 {
		return f.WrapWidth
	}
	return domain.DefaultWrapWidth
}

func (f *Formatter) truncateWidth() int {
	if f.TruncateWidth > 0 {
		return f.TruncateWidth
	}
	return domain.DefaultTruncateWidth
}

// Issue renders an issue.
// Terse output is a single right-aligned line; verbose output is the detailed block
// ending with a " " separator line.
func (f *Formatter) Issue(issue *domain.Issue, verbose bool) []string {
	if !verbose {
		return []string{f.terseLine(issue)}
	}

	title := f.Wrap(fmt.Sprintf("%d. %s", issue.Number, issue.Title))
	lines := make([]string, 0, len(title)+8)
	lines = append(lines, title...)
	lines = append(lines, Underline(title...))
	if issue.Body != "" {
		lines = append(lines, f.Wrap(issue.Body)...)
	}
	lines = append(lines,
		"    state: "+issue.State.String(),
		"     user: "+issue.User,
		"    votes: "+strconv.Itoa(issue.Votes),
		"  created: "+issue.CreatedAt.String(),
	)
	if issue.HasBeenUpdated() {
		lines = append(lines, "  updated: "+issue.UpdatedAt.String())
	}
	lines = append(lines, " comments: "+strconv.Itoa(issue.Comments), " ")
	return lines
}

func (f *Formatter) terseLine(issue *domain.Issue) string {
	number := strconv.Itoa(issue.Number)
	indent := strings.Repeat(" ", max(numberColumn-len(number), 0))
	line := indent + number + ". " + issue.Title
	// Titles are single-line in terse mode.
	line = strings.ReplaceAll(line, "\n", " ")
	return runewidth.Truncate(line, f.truncateWidth(), "")
}

// Comment renders the index-th of total comments (1-based).
func (f *Formatter) Comment(comment *domain.Comment, index, total int) []string {
	header := fmt.Sprintf("comment %d of %d by %s (%s)", index, total, comment.User, comment.DisplayTime())
	lines := []string{header, Underline(header)}
	return append(lines, f.Wrap(comment.Body)...)
}

// Wrap word-wraps text to the wrap width, hard-wrapping words that do not fit.
// Existing line breaks are preserved. The result is split into lines.
func (f *Formatter) Wrap(text string) []string {
	width := f.wrapWidth()
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		wrapped := strings.Split(wrap.String(wordwrap.String(line, width), width), "\n")
		// Indentation too wide to precede the first word is dropped, not emitted as a blank line.
		if len(wrapped) > 1 && strings.TrimSpace(wrapped[0]) == "" {
			wrapped = wrapped[1:]
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

// Underline returns a dash line as wide as the widest of lines.
func Underline(lines ...string) string {
	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return strings.Repeat("-", width)
}
