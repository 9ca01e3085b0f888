// Package executor runs external programs such as the editor and the pager.
package executor

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/ghi-cli/ghi/internal/domain"
)

// Client implements domain.CommandExecutor interface.
// Fields are ordered to minimize memory padding.
type Client struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewClient creates a new command executor client attached to the process terminal.
func NewClient() *Client {
	return &Client{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// NewClientWithIO creates a client attached to the given streams.
func NewClientWithIO(stdin io.Reader, stdout, stderr io.Writer) *Client {
	return &Client{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// ExecuteInteractive runs a command with stdin/stdout/stderr connected to the terminal.
func (c *Client) ExecuteInteractive(ctx context.Context, cmd *domain.ExecCommand) error {
	// #nosec G204 - program comes from the user's own EDITOR/PAGER setting
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	execCmd.Stdin = c.stdin
	execCmd.Stdout = c.stdout
	execCmd.Stderr = c.stderr
	return execCmd.Run()
}

// Start launches a command whose stdin is fed through the returned writer.
// The caller closes the writer and then calls wait.
func (c *Client) Start(ctx context.Context, cmd *domain.ExecCommand) (stdin io.WriteCloser, wait func() error, err error) {
	// #nosec G204 - program comes from the user's own PAGER setting
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	execCmd.Stdout = c.stdout
	execCmd.Stderr = c.stderr
	pipe, err := execCmd.StdinPipe()
	if err != nil {
		return nil, nil, err
	}
	if err := execCmd.Start(); err != nil {
		return nil, nil, err
	}
	return pipe, execCmd.Wait, nil
}
