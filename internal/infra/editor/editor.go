// Package editor runs the user's text editor on a temporary file.
package editor

import (
	"context"
	"fmt"
	"os"

	"github.com/ghi-cli/ghi/internal/domain"
)

// DefaultEditor is used when neither EDITOR nor VISUAL is set.
const DefaultEditor = "vi"

// Ensure Editor implements domain.Editor.
var _ domain.Editor = (*Editor)(nil)

// Editor implements domain.Editor by launching an external program.
type Editor struct {
	executor domain.CommandExecutor
	command  string // Editor command line, e.g. "code --wait"
	tempDir  string // Directory for temp files; empty uses os.TempDir
}

// New creates an Editor running command through executor.
func New(executor domain.CommandExecutor, command string) *Editor {
	return &Editor{executor: executor, command: command}
}

// NewWithTempDir creates an Editor writing its temp files into dir.
func NewWithTempDir(executor domain.CommandExecutor, command, dir string) *Editor {
	return &Editor{executor: executor, command: command, tempDir: dir}
}

// FromEnv returns the user's preferred editor from environment variables.
// It checks EDITOR, then VISUAL, and defaults to vi if neither is set.
func FromEnv(getenv func(string) string) string {
	editor := getenv("EDITOR")
	if editor == "" {
		editor = getenv("VISUAL")
	}
	if editor == "" {
		editor = DefaultEditor
	}
	return editor
}

// Edit writes initial to a temp file, opens it in the editor and returns the saved content.
func (e *Editor) Edit(ctx context.Context, initial string) (string, error) {
	tmpFile, err := os.CreateTemp(e.tempDir, "ghi-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, writeErr := tmpFile.WriteString(initial); writeErr != nil {
		_ = tmpFile.Close()
		return "", fmt.Errorf("failed to write temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return "", fmt.Errorf("failed to close temp file: %w", closeErr)
	}

	cmd := domain.ParseCommandLine(e.command, tmpPath)
	if cmd == nil {
		cmd = domain.ParseCommandLine(DefaultEditor, tmpPath)
	}
	if runErr := e.executor.ExecuteInteractive(ctx, cmd); runErr != nil {
		return "", domain.EnvironmentError(fmt.Sprintf("failed to run editor %s", cmd.Program), runErr)
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return string(edited), nil
}
