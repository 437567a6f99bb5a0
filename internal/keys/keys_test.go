package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestShell_KeyAssignments(t *testing.T) {
	require.Equal(t, []string{"enter"}, Shell.Submit.Keys())
	require.Equal(t, []string{"tab"}, Shell.Complete.Keys())
	require.Equal(t, []string{"down", "ctrl+n"}, Shell.Next.Keys())
	require.Equal(t, []string{"up", "ctrl+p"}, Shell.Prev.Keys())
}

func TestShell_QuitMatches(t *testing.T) {
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, Shell.Quit))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, Shell.Quit))
	require.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, Shell.Quit))
}

func TestShell_HelpText(t *testing.T) {
	for _, b := range Shell.ShortHelp() {
		require.NotEmpty(t, b.Help().Key)
		require.NotEmpty(t, b.Help().Desc)
	}
	require.Len(t, Shell.FullHelp(), 2)
}
