package presentation

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/vltrn/slashroute/internal/application/command"
	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
)

func TestResolutionText(t *testing.T) {
	p := fixtureParser(t)
	_, err := p.Parse("/aur")

	var rerr *command.ResolutionError
	require.True(t, errors.As(err, &rerr))

	out := ansi.Strip(ResolutionText(rerr))
	require.Contains(t, out, "Error: Unknown command: aur")
	require.Contains(t, out, "Did you mean:")
	require.Contains(t, out, "/aurum - Finance & Treasury")
}

func TestResolutionText_NoSuggestions(t *testing.T) {
	out := ansi.Strip(ResolutionText(&command.ResolutionError{Token: "zzz", Reason: command.ReasonUnknownCommand}))
	require.Contains(t, out, "Unknown command: zzz")
	require.NotContains(t, out, "Did you mean")
}

func TestResolutionText_DanglingAlias(t *testing.T) {
	out := ansi.Strip(ResolutionText(&command.ResolutionError{
		Token:  "x",
		Target: "ghost",
		Reason: command.ReasonDanglingAlias,
	}))
	require.Contains(t, out, `alias targets missing command "ghost"`)
}

func TestCommandsText_TruncatesHeader(t *testing.T) {
	p := fixtureParser(t)
	out := CommandsText(p.List(command.ListOptions{}), 20)
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), 20, "line %q exceeds width", ansi.Strip(line))
	}
	require.Contains(t, ansi.Strip(out), "/genesis")
}

func TestStatsText_TierOrder(t *testing.T) {
	out := ansi.Strip(StatsText(command.Stats{
		ByTier: map[string]int{
			"L2-INTERNAL": 3,
			"L5-BLACK":    1,
			"CUSTOM":      2,
			"unknown":     4,
		},
	}))

	black := strings.Index(out, "L5-BLACK")
	internal := strings.Index(out, "L2-INTERNAL")
	custom := strings.Index(out, "CUSTOM")
	unknown := strings.Index(out, "unknown")
	require.True(t, black < internal, "L5 before L2")
	require.True(t, internal < custom, "known before unknown labels")
	require.True(t, custom < unknown, "unknown labels sorted alphabetically")
}

func TestWarningsText(t *testing.T) {
	require.Equal(t, "Registry is valid.\n", WarningsText(nil))

	out := ansi.Strip(WarningsText([]domaincmd.Warning{{Kind: domaincmd.WarnDanglingAlias, Key: "ghost", Alias: "x"}}))
	require.Contains(t, out, "1 warning(s):")
	require.Contains(t, out, "dangling-alias")
}

func TestExecutionText(t *testing.T) {
	out := ansi.Strip(ExecutionText(command.ExecutionResult{
		Success: true,
		Agent:   "AURUM_CFO",
		Tier:    domaincmd.TierRestricted,
		Message: "Command would be executed: AURUM_CFO - Q3 forecast",
	}, 80))
	require.Contains(t, out, "Invoking: AURUM_CFO")
	require.Contains(t, out, "Tier: L4-RESTRICTED")
	require.Contains(t, out, "Command would be executed: AURUM_CFO - Q3 forecast")
}

func TestFailureText(t *testing.T) {
	out := ansi.Strip(FailureText(command.ExecutionResult{
		Error:       "Unknown command: cf",
		Suggestions: []command.Suggestion{{Token: "cfo", ResolvesTo: "aurum", Description: "Finance & Treasury", Kind: command.SuggestionAlias}},
	}))
	require.Contains(t, out, "Error: Unknown command: cf")
	require.Contains(t, out, "/cfo - Finance & Treasury")
}
