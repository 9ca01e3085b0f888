// Package pager provides output sinks that write to stdout directly or through a pager.
package pager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/ghi-cli/ghi/internal/domain"
)

// Starter launches a program fed through its stdin.
type Starter interface {
	Start(ctx context.Context, cmd *domain.ExecCommand) (io.WriteCloser, func() error, error)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Open returns the sink for command output.
// Output goes through the pager command only when out is a terminal and a pager is configured;
// if the pager cannot be started, output falls back to out.
func Open(ctx context.Context, out io.Writer, command string, starter Starter, logger *slog.Logger) domain.Sink {
	if !IsTerminal(out) {
		return NewWriterSink(out)
	}
	cmd := domain.ParseCommandLine(command)
	if cmd == nil {
		return NewWriterSink(out)
	}
	stdin, wait, err := starter.Start(ctx, cmd)
	if err != nil {
		logger.Debug("pager unavailable, writing to stdout", "pager", cmd.Program, "error", err)
		return NewWriterSink(out)
	}
	return &pipeSink{w: stdin, wait: wait}
}

// WriterSink writes lines straight to a writer.
type WriterSink struct {
	w io.Writer
}

// Ensure WriterSink implements domain.Sink.
var _ domain.Sink = (*WriterSink)(nil)

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteLines writes each line followed by a newline.
func (s *WriterSink) WriteLines(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(s.w, line); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op; the writer belongs to the caller.
func (s *WriterSink) Close() error {
	return nil
}

// pipeSink feeds lines to a running pager.
type pipeSink struct {
	w      io.WriteCloser
	wait   func() error
	gone   bool // pager exited before all output was written
	closed bool
}

func (s *pipeSink) WriteLines(lines ...string) error {
	if s.gone {
		return nil
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(s.w, line); err != nil {
			if isBrokenPipe(err) {
				s.gone = true
				return nil
			}
			return err
		}
	}
	return nil
}

// Close closes the pager's input and waits for it to exit.
func (s *pipeSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.w.Close(); err != nil && !isBrokenPipe(err) {
		_ = s.wait()
		return err
	}
	if err := s.wait(); err != nil && !s.gone {
		return fmt.Errorf("pager: %w", err)
	}
	return nil
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed)
}
