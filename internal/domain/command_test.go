package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandLine(t *testing.T) {
	cmd := ParseCommandLine("code --wait", "/tmp/ghi-1.txt")
	require.NotNil(t, cmd)
	assert.Equal(t, "code", cmd.Program)
	assert.Equal(t, []string{"--wait", "/tmp/ghi-1.txt"}, cmd.Args)

	cmd = ParseCommandLine("  less  -FRX ")
	require.NotNil(t, cmd)
	assert.Equal(t, "less", cmd.Program)
	assert.Equal(t, []string{"-FRX"}, cmd.Args)

	cmd = ParseCommandLine("vi")
	require.NotNil(t, cmd)
	assert.Empty(t, cmd.Args)

	assert.Nil(t, ParseCommandLine("   "))
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultAPIURL, cfg.GitHub.APIURL)
	assert.Equal(t, DefaultWebURL, cfg.GitHub.WebURL)
	assert.Equal(t, DefaultPager, cfg.Display.Pager)
	assert.Equal(t, 79, cfg.Display.WrapWidth)
	assert.Equal(t, 80, cfg.Display.TruncateWidth)
	assert.Equal(t, "/home/u/.config/ghi", GlobalConfigDir("/home/u/.config"))
}
