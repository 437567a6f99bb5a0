package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vltrn/slashroute/internal/application/command"
	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
	"github.com/vltrn/slashroute/internal/presentation"
)

var (
	listTier   string
	listDomain string
	listSearch string
)

var commandsListCmd = &cobra.Command{
	Use:   "commands:list",
	Short: "List compiled commands",
	Long: `List every compiled command in registry order.

Filters are conjunctive. --tier matches the clearance label exactly, --domain
matches the command's domain or workflow category, and --search matches the
key or (case-insensitively) the description.

Examples:
  slashroute commands:list
  slashroute commands:list --tier L5-BLACK
  slashroute commands:list --domain finance
  slashroute commands:list --search oracle --json | jq '.[].agent'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		ds := rt.parser().List(command.ListOptions{
			Tier:   domaincmd.Tier(listTier),
			Domain: listDomain,
			Search: listSearch,
		})
		if jsonFlag {
			return presentation.NewFormatter(cmd.OutOrStdout()).FormatCommands(presentation.FromDescriptors(ds))
		}
		fmt.Fprint(cmd.OutOrStdout(), presentation.CommandsText(ds, rt.cfg.UI.Width))
		return nil
	},
}

var commandsInfoCmd = &cobra.Command{
	Use:   "commands:info <command>",
	Short: "Show one command, resolving aliases",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		token := strings.TrimPrefix(args[0], "/")
		info, err := rt.parser().Info(token)
		if errors.Is(err, domaincmd.ErrNotFound) {
			return fmt.Errorf("command %q: %w", token, err)
		}
		if err != nil {
			return err
		}

		if jsonFlag {
			return presentation.NewFormatter(cmd.OutOrStdout()).FormatCommand(presentation.FromInfo(info))
		}
		return renderMarkdown(cmd, rt, presentation.InfoMarkdown(info))
	},
}

var commandsStatsCmd = &cobra.Command{
	Use:   "commands:stats",
	Short: "Show registry statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		stats := rt.parser().Stats()
		if jsonFlag {
			return presentation.NewFormatter(cmd.OutOrStdout()).FormatStats(presentation.FromStats(stats))
		}
		fmt.Fprint(cmd.OutOrStdout(), presentation.StatsText(stats))
		return nil
	},
}

var commandsSuggestCmd = &cobra.Command{
	Use:   "commands:suggest [partial]",
	Short: "Suggest completions for a partial command token",
	Long: `Suggest up to five completions for a partial token. Aliases whose token or
target starts with the partial come first, then command keys.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		partial := ""
		if len(args) == 1 {
			partial = strings.TrimPrefix(args[0], "/")
		}
		suggestions := rt.parser().Suggest(partial)

		if jsonFlag {
			return presentation.NewFormatter(cmd.OutOrStdout()).FormatSuggestions(presentation.FromSuggestions(suggestions))
		}
		out := cmd.OutOrStdout()
		for _, s := range suggestions {
			if s.Kind == command.SuggestionAlias {
				fmt.Fprintf(out, "/%s -> /%s  %s\n", s.Token, s.ResolvesTo, s.Description)
				continue
			}
			fmt.Fprintf(out, "/%s  %s\n", s.Token, s.Description)
		}
		return nil
	},
}

var commandsParseCmd = &cobra.Command{
	Use:   "commands:parse <input...>",
	Short: "Parse input without dispatching it",
	Long: `Parse input the way execution would and print the resolved invocation,
or the resolution error with suggestions.

Examples:
  slashroute commands:parse /g analyze Q4
  slashroute commands:parse --json /cfo forecast`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		inv, err := rt.service.Parse(cmd.Context(), strings.Join(args, " "))
		var rerr *command.ResolutionError
		if err != nil && !errors.As(err, &rerr) {
			return err
		}

		out := cmd.OutOrStdout()
		if rerr != nil {
			if jsonFlag {
				if err := presentation.NewFormatter(out).FormatParse(presentation.FromResolutionError(rerr)); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.ErrOrStderr(), presentation.ResolutionText(rerr))
			}
			return errUnresolved
		}

		if jsonFlag {
			return presentation.NewFormatter(out).FormatParse(presentation.FromInvocation(inv))
		}
		fmt.Fprintf(out, "command:  %s\n", inv.Command)
		fmt.Fprintf(out, "typed:    %s\n", inv.OriginalCommand)
		fmt.Fprintf(out, "agent:    %s\n", inv.Agent)
		fmt.Fprintf(out, "tier:     %s\n", inv.Tier.Label())
		fmt.Fprintf(out, "args:     %s\n", inv.Args)
		return nil
	},
}

var commandsTopicCmd = &cobra.Command{
	Use:   "commands:topic [topic]",
	Short: "Show the help page for a tier or derived section",
	Long: `Show the help page for a tier key (tier0, tier1, ...) or one of the derived
sections (workflows, nvidia, llm, oracle). Without a topic, the main help page
is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		if len(args) == 0 {
			return printHelp(cmd, rt)
		}

		topic, err := rt.parser().Topic(args[0])
		if errors.Is(err, command.ErrUnknownTopic) {
			return fmt.Errorf("%w: %q (available: %s)", err, args[0], strings.Join(rt.parser().Topics(), ", "))
		}
		if err != nil {
			return err
		}

		if jsonFlag {
			return presentation.NewFormatter(cmd.OutOrStdout()).FormatTopic(presentation.FromTopic(topic))
		}
		return renderMarkdown(cmd, rt, presentation.TopicMarkdown(topic))
	},
}

func renderMarkdown(cmd *cobra.Command, rt *runtime, md string) error {
	r, err := rt.renderer()
	if err != nil {
		return err
	}
	rendered, err := r.Render(md)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

func init() {
	commandsListCmd.Flags().StringVarP(&listTier, "tier", "t", "", "Filter by clearance label (e.g., L4-RESTRICTED)")
	commandsListCmd.Flags().StringVarP(&listDomain, "domain", "d", "", "Filter by domain or workflow category")
	commandsListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by key or description substring")

	rootCmd.AddCommand(commandsListCmd)
	rootCmd.AddCommand(commandsInfoCmd)
	rootCmd.AddCommand(commandsStatsCmd)
	rootCmd.AddCommand(commandsSuggestCmd)
	rootCmd.AddCommand(commandsParseCmd)
	rootCmd.AddCommand(commandsTopicCmd)
}
