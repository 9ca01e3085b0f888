package executor

import (
	"bytes"
	"context"
	"io"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghi-cli/ghi/internal/domain"
)

func TestClient_ExecuteInteractive(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	t.Run("connects streams", func(t *testing.T) {
		var stdout bytes.Buffer
		client := NewClientWithIO(strings.NewReader("hello"), &stdout, io.Discard)

		err := client.ExecuteInteractive(context.Background(), domain.ParseCommandLine("cat"))
		require.NoError(t, err)
		assert.Equal(t, "hello", stdout.String())
	})

	t.Run("runs in specified directory", func(t *testing.T) {
		dir := t.TempDir()
		var stdout bytes.Buffer
		client := NewClientWithIO(strings.NewReader(""), &stdout, io.Discard)

		cmd := domain.ParseCommandLine("pwd")
		cmd.Dir = dir
		require.NoError(t, client.ExecuteInteractive(context.Background(), cmd))
		assert.Contains(t, strings.TrimSpace(stdout.String()), dir)
	})

	t.Run("returns error for non-existent command", func(t *testing.T) {
		client := NewClientWithIO(strings.NewReader(""), io.Discard, io.Discard)

		err := client.ExecuteInteractive(context.Background(), domain.ParseCommandLine("nonexistent-command-xyz"))
		require.Error(t, err)
	})

	t.Run("returns error for failing command", func(t *testing.T) {
		client := NewClientWithIO(strings.NewReader(""), io.Discard, io.Discard)

		err := client.ExecuteInteractive(context.Background(), domain.ParseCommandLine("false"))
		require.Error(t, err)
	})
}

func TestClient_Start(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	var stdout bytes.Buffer
	client := NewClientWithIO(nil, &stdout, io.Discard)

	stdin, wait, err := client.Start(context.Background(), domain.ParseCommandLine("cat"))
	require.NoError(t, err)

	_, err = io.WriteString(stdin, "line one\nline two\n")
	require.NoError(t, err)
	require.NoError(t, stdin.Close())
	require.NoError(t, wait())

	assert.Equal(t, "line one\nline two\n", stdout.String())
}

func TestNewClient(t *testing.T) {
	client := NewClient()
	assert.NotNil(t, client)
}
