package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles JSON output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// FormatCommands formats a list of commands as JSON
func (f *Formatter) FormatCommands(commands []CommandDTO) error {
	return f.encode(commands)
}

// FormatCommand formats one command as JSON
func (f *Formatter) FormatCommand(c CommandDTO) error {
	return f.encode(c)
}

// FormatParse formats a parse result (InvocationDTO or ResolutionDTO) as JSON
func (f *Formatter) FormatParse(result any) error {
	return f.encode(result)
}

// FormatSuggestions formats suggestions as JSON
func (f *Formatter) FormatSuggestions(suggestions []SuggestionDTO) error {
	return f.encode(suggestions)
}

// FormatStats formats statistics as JSON
func (f *Formatter) FormatStats(stats StatsDTO) error {
	return f.encode(stats)
}

// FormatExecution formats an execution result as JSON
func (f *Formatter) FormatExecution(result ExecutionDTO) error {
	return f.encode(result)
}

// FormatTopic formats a help topic as JSON
func (f *Formatter) FormatTopic(topic TopicDTO) error {
	return f.encode(topic)
}

// FormatWarnings formats registry warnings as JSON
func (f *Formatter) FormatWarnings(warnings []WarningDTO) error {
	return f.encode(warnings)
}
