package presentation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vltrn/slashroute/internal/application/command"
	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
	"github.com/vltrn/slashroute/internal/ui/styles"
)

// ResolutionText renders an unresolved command and its suggestions.
func ResolutionText(err *command.ResolutionError) string {
	note := ""
	if err.Reason == command.ReasonDanglingAlias {
		note = fmt.Sprintf(" (alias targets missing command %q)", err.Target)
	}
	return failureText(err.Error(), note, err.Suggestions)
}

// FailureText renders an execution that did not resolve.
func FailureText(r command.ExecutionResult) string {
	return failureText(r.Error, "", r.Suggestions)
}

func failureText(msg, note string, suggestions []command.Suggestion) string {
	var b strings.Builder
	b.WriteString(styles.ErrorStyle.Render("Error: " + msg))
	if note != "" {
		b.WriteString(styles.MutedStyle.Render(note))
	}
	b.WriteString("\n")

	if len(suggestions) > 0 {
		b.WriteString(styles.MutedStyle.Render("\nDid you mean:") + "\n")
		for _, s := range suggestions {
			b.WriteString("  " + styles.CommandStyle.Render("/"+s.Token) + styles.MutedStyle.Render(" - "+s.Description) + "\n")
		}
	}
	return b.String()
}

// ExecutionText renders the banner for a dispatched command.
func ExecutionText(r command.ExecutionResult, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.TierColor(r.Tier)).
		Padding(0, 1).
		Width(min(width-2, 60))

	body := styles.HeaderStyle.Render("Invoking: "+r.Agent) + "\n" + styles.MutedStyle.Render("Tier: ") + styles.TierStyle(r.Tier).Render(r.Tier.Label())
	out := box.Render(body) + "\n"
	if r.Message != "" {
		out += wordwrap.String(r.Message, width) + "\n"
	}
	return out
}

// CommandsText renders a command listing, one command per line with the
// description wrapped and indented beneath.
func CommandsText(ds []*domaincmd.Descriptor, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	var b strings.Builder
	for _, d := range ds {
		head := styles.CommandStyle.Render("/"+d.Key()) + " " +
			styles.TierStyle(d.Tier()).Render("["+d.Tier().Label()+"]") + " " +
			styles.MutedStyle.Render(d.Agent())
		b.WriteString(ansi.Truncate(head, width, "…") + "\n")
		if d.Description() != "" {
			b.WriteString(styles.DescriptionStyle.Render(indent.String(wordwrap.String(d.Description(), width-4), 4)) + "\n")
		}
	}
	return b.String()
}

// StatsText renders statistics with the tier histogram ordered by rank,
// most restricted first, then unknown labels alphabetically.
func StatsText(s command.Stats) string {
	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render("Registry statistics") + "\n")
	fmt.Fprintf(&b, "  Commands:           %d\n", s.TotalCommands)
	fmt.Fprintf(&b, "  Aliases:            %d\n", s.TotalAliases)
	fmt.Fprintf(&b, "  Tier sections:      %d\n", s.Tiers)
	fmt.Fprintf(&b, "  Workflow categories: %d\n", s.Workflows)
	fmt.Fprintf(&b, "  NVIDIA backends:    %d\n", s.NvidiaBackends)
	fmt.Fprintf(&b, "  LLM providers:      %d\n", s.LLMProviders)
	fmt.Fprintf(&b, "  Oracle validators:  %d\n", s.OracleValidators)
	if s.Warnings > 0 {
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("  Warnings:           %d", s.Warnings)) + "\n")
	}

	b.WriteString(styles.HeaderStyle.Render("By tier") + "\n")
	for _, label := range tierLabels(s.ByTier) {
		fmt.Fprintf(&b, "  %-18s %d\n", label, s.ByTier[label])
	}
	return b.String()
}

func tierLabels(byTier map[string]int) []string {
	labels := make([]string, 0, len(byTier))
	for label := range byTier {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ri, rj := domaincmd.Tier(labels[i]).Rank(), domaincmd.Tier(labels[j]).Rank()
		if ri != rj {
			return ri > rj
		}
		return labels[i] < labels[j]
	})
	return labels
}

// WarningsText renders registry construction warnings.
func WarningsText(ws []domaincmd.Warning) string {
	if len(ws) == 0 {
		return "Registry is valid.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d warning(s):\n", len(ws))
	for _, w := range ws {
		b.WriteString("  " + styles.ErrorStyle.Render(string(w.Kind)) + " " + w.String() + "\n")
	}
	return b.String()
}
