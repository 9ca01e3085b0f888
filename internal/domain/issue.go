// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
)

// Issue is a snapshot of a remote issue as returned by the issue service.
// The client never mutates an Issue locally; every change goes through the service.
// Fields are ordered to minimize memory padding.
type Issue struct {
	CreatedAt Timestamp // Creation time
	UpdatedAt Timestamp // Last update time (may equal CreatedAt)
	Title     string    // Title (first line of the issue text)
	Body      string    // Body (optional)
	User      string    // Login of the reporter
	State     State     // open or closed
	Labels    []string  // Labels attached to the issue
	Number    int       // Number, unique within a repository
	Votes     int       // Vote count
	Comments  int       // Comment count
}

// HasBeenUpdated reports whether the issue carries an update time that differs from its creation time.
func (i *Issue) HasBeenUpdated() bool {
	return !i.UpdatedAt.IsZero() && !i.UpdatedAt.Equal(i.CreatedAt)
}

// TrimmedBody returns the body without surrounding whitespace.
func (i *Issue) TrimmedBody() string {
	return strings.TrimSpace(i.Body)
}

// Comment is a single comment on an issue.
// Fields are ordered to minimize memory padding.
type Comment struct {
	CreatedAt Timestamp
	UpdatedAt Timestamp
	User      string
	Body      string
}

// DisplayTime returns the update time when set, otherwise the creation time.
func (c *Comment) DisplayTime() Timestamp {
	if !c.UpdatedAt.IsZero() {
		return c.UpdatedAt
	}
	return c.CreatedAt
}
