package presentation

import (
	"fmt"
	"strings"

	"github.com/vltrn/slashroute/internal/application/command"
	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
)

// HelpMarkdown builds the top-level help page: usage, the direct commands of
// the most restricted tier sections and the available topics.
func HelpMarkdown(stats command.Stats, common []*domaincmd.Descriptor, topics []string) string {
	var b strings.Builder

	b.WriteString("# Slash Commands\n\n")
	fmt.Fprintf(&b, "%d commands, %d aliases, %d workflow categories, %d NVIDIA backends, %d LLM providers\n\n",
		stats.TotalCommands, stats.TotalAliases, stats.Workflows, stats.NvidiaBackends, stats.LLMProviders)

	b.WriteString("## Usage\n\n")
	b.WriteString("| Syntax | Effect |\n|---|---|\n")
	b.WriteString("| `/command <task>` | Execute command |\n")
	b.WriteString("| `/workflow.name` | Execute workflow |\n")
	b.WriteString("| `/nvidia.backend <task>` | Use NVIDIA backend |\n")
	b.WriteString("| `/llm.provider <task>` | Route to LLM provider |\n")
	b.WriteString("| `/oracle.validator <task>` | Validate with oracle |\n\n")

	if len(common) > 0 {
		b.WriteString("## Common Commands\n\n")
		for _, d := range common {
			fmt.Fprintf(&b, "- `/%s <task>` %s\n", d.Key(), d.Description())
		}
		b.WriteString("\n")
	}

	if len(topics) > 0 {
		b.WriteString("## Help Topics\n\n")
		for _, t := range topics {
			fmt.Fprintf(&b, "- `help %s`\n", t)
		}
	}

	return b.String()
}

// TopicMarkdown builds the page for one help topic.
func TopicMarkdown(t command.Topic) string {
	var b strings.Builder

	if t.Clearance != "" {
		fmt.Fprintf(&b, "# %s - %s\n\n", strings.ToUpper(t.Name), t.Clearance)
	} else {
		fmt.Fprintf(&b, "# %s\n\n", strings.ToUpper(t.Name))
	}

	if len(t.Commands) == 0 {
		b.WriteString("_No commands._\n")
		return b.String()
	}

	for _, d := range t.Commands {
		fmt.Fprintf(&b, "- `/%s` - %s\n", d.Key(), d.Description())
		if line := subAgentsLine(d); line != "" {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
	}
	return b.String()
}

// InfoMarkdown builds the page for one command.
func InfoMarkdown(info command.Info) string {
	d := info.Descriptor
	var b strings.Builder

	fmt.Fprintf(&b, "# /%s\n\n%s\n\n", d.Key(), d.Description())
	b.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Agent | `%s` |\n", d.Agent())
	fmt.Fprintf(&b, "| Tier | %s |\n", d.Tier().Label())
	fmt.Fprintf(&b, "| Kind | %s |\n", d.Kind())
	if d.Domain() != "" {
		fmt.Fprintf(&b, "| Domain | %s |\n", d.Domain())
	}
	if d.Category() != "" {
		fmt.Fprintf(&b, "| Category | %s |\n", d.Category())
	}
	if line := subAgentsLine(d); line != "" {
		fmt.Fprintf(&b, "| Sub-agents | %s |\n", strings.TrimPrefix(line, "Sub-agents: "))
	}
	if len(info.Aliases) > 0 {
		aliases := make([]string, len(info.Aliases))
		for i, a := range info.Aliases {
			aliases[i] = "`/" + a + "`"
		}
		fmt.Fprintf(&b, "| Aliases | %s |\n", strings.Join(aliases, ", "))
	}
	return b.String()
}

func subAgentsLine(d *domaincmd.Descriptor) string {
	if names := d.SubAgents(); len(names) > 0 {
		return "Sub-agents: " + strings.Join(names, ", ")
	}
	if n := d.SubAgentTotal(); n > 0 {
		return fmt.Sprintf("Sub-agents: %d total", n)
	}
	return ""
}
