// Package prompt provides the interactive slash-command shell: a single input
// line with live suggestions, tab completion and a scrollback of results.
package prompt

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vltrn/slashroute/internal/application/command"
	"github.com/vltrn/slashroute/internal/keys"
	"github.com/vltrn/slashroute/internal/log"
	"github.com/vltrn/slashroute/internal/presentation"
	"github.com/vltrn/slashroute/internal/pubsub"
	"github.com/vltrn/slashroute/internal/ui/styles"
)

// maxScrollback bounds the number of rendered results kept on screen.
const maxScrollback = 50

// Config defines shell configuration.
type Config struct {
	Service *command.Service
	Reloads pubsub.Subscriber[command.ReloadEvent] // optional hot-reload notifications
	Width   int                                    // wrap width (default 80)
}

// executedMsg carries the outcome of one Execute call.
type executedMsg struct {
	input  string
	result command.ExecutionResult
	err    error
}

// Model holds the shell state.
type Model struct {
	ctx         context.Context
	service     *command.Service
	reloads     *pubsub.Listener[command.ReloadEvent]
	textInput   textinput.Model
	help        help.Model
	suggestions []command.Suggestion
	cursor      int
	scrollback  []string
	width       int
	running     bool
	quitting    bool
}

// New creates a shell bound to ctx. Executions run with ctx and stop when it
// is cancelled.
func New(ctx context.Context, cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "/command task..."
	ti.Prompt = ""
	ti.Focus()

	width := cfg.Width
	if width <= 0 {
		width = presentation.DefaultWidth
	}

	m := Model{
		ctx:       ctx,
		service:   cfg.Service,
		textInput: ti,
		help:      help.New(),
		width:     width,
	}
	if cfg.Reloads != nil {
		m.reloads = pubsub.NewListener(ctx, cfg.Reloads)
	}
	return m
}

// Init starts the cursor blink and, when configured, the reload listener.
func (m Model) Init() tea.Cmd {
	if m.reloads == nil {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, m.reloads.Listen())
}

// Update handles messages for the shell.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Shell.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Shell.Next):
			if m.cursor < len(m.suggestions)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, keys.Shell.Prev):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, keys.Shell.Complete):
			return m.complete(), nil

		case key.Matches(msg, keys.Shell.Clear):
			m.textInput.SetValue("")
			return m.refreshSuggestions(), nil

		case key.Matches(msg, keys.Shell.Submit):
			return m.submit()

		default:
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m.refreshSuggestions(), cmd
		}

	case executedMsg:
		m.running = false
		m = m.record(styles.PromptStyle.Render("> ") + msg.input)
		switch {
		case msg.err != nil:
			m = m.record(styles.ErrorStyle.Render("Error: " + msg.err.Error()))
		case msg.result.Success:
			m = m.record(presentation.ExecutionText(msg.result, m.width))
		default:
			m = m.record(presentation.FailureText(msg.result))
		}
		return m, nil

	case pubsub.Event[command.ReloadEvent]:
		if msg.Type == pubsub.ReloadFailedEvent && msg.Payload.Err != nil {
			m = m.record(styles.ErrorStyle.Render("Registry reload failed, keeping previous registry: " + msg.Payload.Err.Error()))
		} else {
			m = m.record(styles.SuccessStyle.Render("Registry reloaded from " + msg.Payload.Path))
		}
		m = m.refreshSuggestions()
		return m, m.reloads.Listen()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	return m, nil
}

// submit executes the current input. "exit" and "quit" leave the shell.
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textInput.Value())
	if input == "" || m.running {
		return m, nil
	}
	if input == "exit" || input == "quit" {
		m.quitting = true
		return m, tea.Quit
	}

	m.textInput.SetValue("")
	m.suggestions = nil
	m.cursor = 0
	m.running = true

	ctx, service := m.ctx, m.service
	return m, func() tea.Msg {
		result, err := service.Execute(ctx, input)
		return executedMsg{input: input, result: result, err: err}
	}
}

// complete replaces the command token with the selected suggestion, keeping
// any arguments already typed.
func (m Model) complete() Model {
	if len(m.suggestions) == 0 {
		return m
	}
	_, args := splitToken(m.textInput.Value())
	value := "/" + m.suggestions[m.cursor].Token + " "
	if args != "" {
		value += args
	}
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
	m.suggestions = nil
	m.cursor = 0
	return m
}

// refreshSuggestions recomputes suggestions while the command token is being
// typed. Once a space follows the token the list is hidden.
func (m Model) refreshSuggestions() Model {
	token, rest := splitToken(m.textInput.Value())
	if token == "" || rest != "" || strings.HasSuffix(m.textInput.Value(), " ") {
		m.suggestions = nil
		m.cursor = 0
		return m
	}

	m.suggestions = m.service.Parser().Suggest(token)
	if m.cursor >= len(m.suggestions) {
		m.cursor = 0
	}
	log.Debug(log.CatUI, "suggestions refreshed", "token", token, "count", len(m.suggestions))
	return m
}

func (m Model) record(entry string) Model {
	m.scrollback = append(m.scrollback, strings.TrimRight(entry, "\n"))
	if over := len(m.scrollback) - maxScrollback; over > 0 {
		m.scrollback = m.scrollback[over:]
	}
	return m
}

// splitToken returns the token without its leading slash and the remainder.
func splitToken(value string) (token, rest string) {
	value = strings.TrimPrefix(strings.TrimLeft(value, " "), "/")
	token, rest, _ = strings.Cut(value, " ")
	return token, strings.TrimSpace(rest)
}

// Suggestions returns the suggestions currently shown.
func (m Model) Suggestions() []command.Suggestion {
	return m.suggestions
}

// Cursor returns the selected suggestion index.
func (m Model) Cursor() int {
	return m.cursor
}

// Value returns the current input text.
func (m Model) Value() string {
	return m.textInput.Value()
}

// Scrollback returns the rendered results, oldest first.
func (m Model) Scrollback() []string {
	return m.scrollback
}

// Running reports whether an execution is in flight.
func (m Model) Running() bool {
	return m.running
}

// View renders the scrollback, the input line and the suggestion list.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for _, entry := range m.scrollback {
		b.WriteString(entry)
		b.WriteString("\n")
	}

	m.textInput.Width = m.width - 4
	b.WriteString(styles.PromptStyle.Render("> ") + m.textInput.View())
	b.WriteString("\n")

	for i, s := range m.suggestions {
		line := "/" + s.Token
		if s.Kind == command.SuggestionAlias {
			line += " → /" + s.ResolvesTo
		}
		if s.Description != "" {
			line += "  " + s.Description
		}
		line = ansi.Truncate(line, m.width-2, "…")
		if i == m.cursor {
			b.WriteString(styles.SelectionIndicatorStyle.Render("> " + line))
		} else {
			b.WriteString(styles.MutedStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(keys.Shell))
	return b.String()
}
