package prompt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/vltrn/slashroute/internal/application/command"
	"github.com/vltrn/slashroute/internal/dispatch"
	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
	"github.com/vltrn/slashroute/internal/pubsub"
	"github.com/vltrn/slashroute/internal/testutil"
)

func testService(t *testing.T) *command.Service {
	t.Helper()
	catalog := testutil.NewBuilder(t).
		WithTier("tier1", domaincmd.TierRestricted,
			testutil.Command("aurum", testutil.Agent("AURUM_CFO"), testutil.Description("Finance & Treasury")),
			testutil.Command("aegis", testutil.Agent("AEGIS_CSO"), testutil.Description("Security"))).
		WithWorkflows("finance", "close-books").
		WithAlias("cfo", "aurum").
		Catalog()
	return command.NewService(command.NewParser(catalog), dispatch.NewPreviewDispatcher())
}

func newModel(t *testing.T) Model {
	return New(context.Background(), Config{Service: testService(t)})
}

func typeText(m Model, s string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

func TestPrompt_New_Defaults(t *testing.T) {
	m := newModel(t)
	require.Equal(t, 80, m.width)
	require.Empty(t, m.Suggestions())
	require.Equal(t, "/command task...", m.textInput.Placeholder)
}

func TestPrompt_TypingShowsSuggestions(t *testing.T) {
	m := typeText(newModel(t), "/a")

	// The cfo alias matches through its target and comes first.
	got := m.Suggestions()
	require.Len(t, got, 3)
	require.Equal(t, "cfo", got[0].Token)
	require.Equal(t, "aurum", got[1].Token)
	require.Equal(t, "aegis", got[2].Token)
}

func TestPrompt_AliasSuggestionFirst(t *testing.T) {
	m := typeText(newModel(t), "/cf")

	got := m.Suggestions()
	require.NotEmpty(t, got)
	require.Equal(t, "cfo", got[0].Token)
	require.Equal(t, command.SuggestionAlias, got[0].Kind)
	require.Equal(t, "aurum", got[0].ResolvesTo)
}

func TestPrompt_SuggestionsHiddenAfterSpace(t *testing.T) {
	m := typeText(newModel(t), "/aurum ")
	require.Empty(t, m.Suggestions())

	m = typeText(m, "task")
	require.Empty(t, m.Suggestions())
}

func TestPrompt_NavigateSuggestions(t *testing.T) {
	m := typeText(newModel(t), "/a")

	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	require.Equal(t, 2, m.Cursor())

	// Bottom boundary
	m, _ = press(m, tea.KeyDown)
	require.Equal(t, 2, m.Cursor())

	m, _ = press(m, tea.KeyUp)
	m, _ = press(m, tea.KeyUp)
	require.Equal(t, 0, m.Cursor())

	// Top boundary
	m, _ = press(m, tea.KeyUp)
	require.Equal(t, 0, m.Cursor())
}

func TestPrompt_TabCompletes(t *testing.T) {
	m := typeText(newModel(t), "/a")
	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyTab)

	require.Equal(t, "/aegis ", m.Value())
	require.Empty(t, m.Suggestions())
}

func TestPrompt_TabWithoutSuggestions(t *testing.T) {
	m := typeText(newModel(t), "/zzz")
	require.Empty(t, m.Suggestions())

	m, _ = press(m, tea.KeyTab)
	require.Equal(t, "/zzz", m.Value())
}

func TestPrompt_ClearInput(t *testing.T) {
	m := typeText(newModel(t), "/a")
	m, _ = press(m, tea.KeyCtrlU)

	require.Empty(t, m.Value())
	require.Empty(t, m.Suggestions())
}

func TestPrompt_SubmitExecutes(t *testing.T) {
	m := typeText(newModel(t), "/cfo Q3 forecast")
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	require.True(t, m.Running())
	require.Empty(t, m.Value())

	msg := cmd()
	exec, ok := msg.(executedMsg)
	require.True(t, ok)
	require.True(t, exec.result.Success)
	require.Equal(t, "aurum", exec.result.Command)
	require.Equal(t, "Q3 forecast", exec.result.Args)

	next, _ := m.Update(msg)
	m = next.(Model)
	require.False(t, m.Running())

	out := ansi.Strip(strings.Join(m.Scrollback(), "\n"))
	require.Contains(t, out, "> /cfo Q3 forecast")
	require.Contains(t, out, "Invoking: AURUM_CFO")
	require.Contains(t, out, "Command would be executed: AURUM_CFO - Q3 forecast")
}

func TestPrompt_SubmitUnknownShowsSuggestions(t *testing.T) {
	m := typeText(newModel(t), "/aur")
	m, cmd := press(m, tea.KeyEnter)

	next, _ := m.Update(cmd())
	m = next.(Model)

	out := ansi.Strip(strings.Join(m.Scrollback(), "\n"))
	require.Contains(t, out, "Unknown command: aur")
	require.Contains(t, out, "Did you mean:")
	require.Contains(t, out, "/aurum - Finance & Treasury")
}

func TestPrompt_SubmitEmptyIsNoop(t *testing.T) {
	m, cmd := press(newModel(t), tea.KeyEnter)
	require.Nil(t, cmd)
	require.False(t, m.Running())
}

func TestPrompt_ExitQuits(t *testing.T) {
	m := typeText(newModel(t), "exit")
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
	require.Empty(t, m.View())
}

func TestPrompt_EscQuits(t *testing.T) {
	_, cmd := press(newModel(t), tea.KeyEsc)
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestPrompt_DispatchErrorRecorded(t *testing.T) {
	m := newModel(t)
	next, _ := m.Update(executedMsg{input: "/aurum", err: errors.New("dispatch aurum: boom")})
	m = next.(Model)

	out := ansi.Strip(strings.Join(m.Scrollback(), "\n"))
	require.Contains(t, out, "Error: dispatch aurum: boom")
}

func TestPrompt_ScrollbackBounded(t *testing.T) {
	m := newModel(t)
	for i := 0; i < maxScrollback+10; i++ {
		m = m.record("line")
	}
	require.Len(t, m.Scrollback(), maxScrollback)
}

func TestPrompt_ReloadEvents(t *testing.T) {
	broker := pubsub.NewBroker[command.ReloadEvent]()
	defer broker.Close()

	m := New(context.Background(), Config{Service: testService(t), Reloads: broker})
	require.NotNil(t, m.Init())

	next, cmd := m.Update(pubsub.Event[command.ReloadEvent]{
		Type:    pubsub.ReloadedEvent,
		Payload: command.ReloadEvent{Path: "/tmp/registry.yaml", Commands: 3},
	})
	m = next.(Model)
	require.NotNil(t, cmd, "listener should be re-armed")

	next, _ = m.Update(pubsub.Event[command.ReloadEvent]{
		Type:    pubsub.ReloadFailedEvent,
		Payload: command.ReloadEvent{Path: "/tmp/registry.yaml", Err: errors.New("line 3: bad shape")},
	})
	m = next.(Model)

	out := ansi.Strip(strings.Join(m.Scrollback(), "\n"))
	require.Contains(t, out, "Registry reloaded from /tmp/registry.yaml")
	require.Contains(t, out, "keeping previous registry: line 3: bad shape")
}

func TestPrompt_View_ShowsSuggestions(t *testing.T) {
	m := typeText(newModel(t), "/cf")
	view := ansi.Strip(m.View())

	require.Contains(t, view, "> /cfo → /aurum  Finance & Treasury")
	require.Contains(t, view, "tab")
}

func TestPrompt_Program_ExecutesCommand(t *testing.T) {
	tm := teatest.NewTestModel(t, newModel(t), teatest.WithInitialTermSize(80, 24))

	tm.Type("/cfo Q3 forecast")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("AURUM_CFO"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	require.Len(t, final.Scrollback(), 2)
}
