package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubTerminal(t *testing.T, isTTY bool) {
	t.Helper()
	original := stdinIsTerminal
	stdinIsTerminal = func() bool { return isTTY }
	t.Cleanup(func() { stdinIsTerminal = original })
}

func TestTUICmd_Registered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"tui"})

	assert.NoError(t, err)
	assert.Equal(t, tuiCmd, cmd)
	for _, name := range []string{"output", "backend", "title", "glossary"} {
		assert.NotNil(t, tuiCmd.Flags().Lookup(name), name)
	}
}

func TestTUICmd_NotConfigured(t *testing.T) {
	SetServices(Services{})
	stubTerminal(t, true)

	_, _, err := execute(t, "tui")

	assert.EqualError(t, err, "assessment services not configured")
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	useServices(t)
	stubTerminal(t, false)

	_, _, err := execute(t, "tui")

	assert.ErrorContains(t, err, "interactive terminal")
}

func TestTUICmd_RejectsArgs(t *testing.T) {
	useServices(t)

	_, _, err := execute(t, "tui", "extra")

	assert.Error(t, err)
}
