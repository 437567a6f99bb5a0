package testutil

import (
	"strings"

	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
)

// CommandOption configures a direct command fixture.
type CommandOption func(*domaincmd.CommandSpec)

// Command creates a direct command spec. The agent defaults to the upper-cased name.
func Command(name string, opts ...CommandOption) domaincmd.CommandSpec {
	spec := domaincmd.CommandSpec{Name: name, Agent: strings.ReplaceAll(strings.ToUpper(name), "-", "_")}
	for _, opt := range opts {
		opt(&spec)
	}
	return spec
}

// Agent sets the agent name.
func Agent(agent string) CommandOption {
	return func(s *domaincmd.CommandSpec) { s.Agent = agent }
}

// Description sets the description.
func Description(desc string) CommandOption {
	return func(s *domaincmd.CommandSpec) { s.Description = desc }
}

// Domain sets the domain.
func Domain(domain string) CommandOption {
	return func(s *domaincmd.CommandSpec) { s.Domain = domain }
}

// SubAgents sets the named sub-agents.
func SubAgents(names ...string) CommandOption {
	return func(s *domaincmd.CommandSpec) { s.SubAgents = names }
}

// SubAgentTotal sets the sub-agent count.
func SubAgentTotal(n int) CommandOption {
	return func(s *domaincmd.CommandSpec) { s.SubAgentTotal = n }
}
