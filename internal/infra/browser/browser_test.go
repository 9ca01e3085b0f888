package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/infra/logging"
)

func TestLauncher_Open(t *testing.T) {
	var opened string
	l := &Launcher{
		open:   func(url string) error { opened = url; return nil },
		logger: logging.Discard(),
	}

	require.NoError(t, l.Open("https://github.com/alice/tool/issues/3"))
	assert.Equal(t, "https://github.com/alice/tool/issues/3", opened)
}

func TestLauncher_Open_Failure(t *testing.T) {
	cause := errors.New("xdg-open: not found")
	l := &Launcher{
		open:   func(string) error { return cause },
		logger: logging.Discard(),
	}

	err := l.Open("https://github.com/alice/tool/issues")

	assert.ErrorIs(t, err, domain.ErrBrowserFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "opening page in web browser failed", err.Error())
}
