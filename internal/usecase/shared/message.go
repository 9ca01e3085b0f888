// Package shared provides shared utilities for use cases.
package shared

import (
	"strings"
)

// ValidateMessage trims whitespace from the message and validates it is not empty.
// Returns the trimmed message if valid, otherwise returns emptyErr.
func ValidateMessage(message string, emptyErr error) (string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", emptyErr
	}
	return trimmed, nil
}

// DecodeMessage turns literal "\n" sequences typed on the command line into newlines.
func DecodeMessage(message string) string {
	return strings.ReplaceAll(message, `\n`, "\n")
}

// StripComments removes every line starting with '#'.
func StripComments(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// StripTemplate removes the lines of text that repeat a '#' line of trailer.
// Other lines starting with '#', such as markdown headings, are kept.
func StripTemplate(text, trailer string) string {
	drop := make(map[string]bool)
	for _, line := range strings.Split(trailer, "\n") {
		if strings.HasPrefix(line, "#") {
			drop[line] = true
		}
	}
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if drop[strings.TrimRight(line, " \t\r")] {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// SplitIssueText splits issue text into its title (first line) and body (remaining lines, trimmed).
// Returns emptyErr when the text holds nothing but whitespace.
func SplitIssueText(text string, emptyErr error) (title, body string, err error) {
	text = strings.TrimLeft(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if strings.TrimSpace(text) == "" {
		return "", "", emptyErr
	}
	title, rest, _ := strings.Cut(text, "\n")
	return strings.TrimRight(title, " \t"), strings.TrimSpace(rest), nil
}
