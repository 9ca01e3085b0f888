// Package browser opens issue pages in the user's web browser.
package browser

import (
	"io"
	"log/slog"

	"github.com/pkg/browser"

	"github.com/ghi-cli/ghi/internal/domain"
)

// Ensure Launcher implements domain.Browser.
var _ domain.Browser = (*Launcher)(nil)

// Launcher implements domain.Browser.
type Launcher struct {
	open   func(url string) error
	logger *slog.Logger
}

// New creates a Launcher using the platform's default browser.
// Output of the launched helper is discarded so it does not interleave with command output.
func New(logger *slog.Logger) *Launcher {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Launcher{open: browser.OpenURL, logger: logger}
}

// Open opens url. Failures are reported as domain.ErrBrowserFailed.
func (l *Launcher) Open(url string) error {
	l.logger.Debug("opening browser", "url", url)
	if err := l.open(url); err != nil {
		l.logger.Debug("browser failed", "url", url, "error", err)
		return &domain.Error{Kind: domain.KindEnvironment, Msg: domain.ErrBrowserFailed.Msg, Err: err}
	}
	return nil
}
