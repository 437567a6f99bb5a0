package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vltrn/slashroute/internal/application/command"
	"github.com/vltrn/slashroute/internal/flags"
	"github.com/vltrn/slashroute/internal/log"
	"github.com/vltrn/slashroute/internal/ui/prompt"
)

var watchFlag bool

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive slash-command prompt with live suggestions",
	Long: `Start an interactive prompt. Suggestions update as you type the command
token; Tab completes the selected suggestion and Enter executes the input.
Type exit or press Esc to leave.

With --watch (or registry.watch.enabled / the hot-reload flag), edits to the
registry file are picked up without restarting. A registry that fails to load
is reported and the previous one stays active.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Reload the registry file when it changes")
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	promptCfg := prompt.Config{Service: rt.service, Width: rt.cfg.UI.Width}

	watch := watchFlag || rt.flags.EnabledOr(flags.FlagHotReload, rt.cfg.Registry.Watch.Enabled)
	if watch {
		reloader, err := command.NewReloader(rt.service, rt.loader,
			command.WithDebounce(rt.cfg.Registry.Watch.Debounce),
			command.WithReloadTracer(rt.tracing.Tracer()))
		switch {
		case errors.Is(err, command.ErrNoRegistryFile):
			log.Warn(log.CatWatcher, "Hot reload skipped for built-in registry")
		case err != nil:
			return fmt.Errorf("creating reloader: %w", err)
		default:
			if err := reloader.Start(ctx); err != nil {
				return fmt.Errorf("starting reloader: %w", err)
			}
			defer func() { _ = reloader.Stop() }()
			promptCfg.Reloads = reloader
		}
	}

	p := tea.NewProgram(prompt.New(ctx, promptCfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running shell: %w", err)
	}
	return nil
}
