package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vltrn/slashroute/internal/application/command"
	"github.com/vltrn/slashroute/internal/config"
	"github.com/vltrn/slashroute/internal/dispatch"
	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
	"github.com/vltrn/slashroute/internal/flags"
	"github.com/vltrn/slashroute/internal/log"
	"github.com/vltrn/slashroute/internal/presentation"
	"github.com/vltrn/slashroute/internal/tracing"
)

func init() {
	// Query the terminal background before any Bubble Tea program starts so
	// the OSC 11 response cannot race the shell's input loop.
	_ = lipgloss.HasDarkBackground()
}

// errUnresolved is returned after a command that did not resolve has been
// reported to the user.
var errUnresolved = errors.New("command did not resolve")

var (
	version      = "dev"
	cfgFile      string
	registryFlag string
	strictFlag   bool
	debugFlag    bool
	jsonFlag     bool
	cfg          config.Config
)

var rootCmd = &cobra.Command{
	Use:   "slashroute [/command task...]",
	Short: "Resolve and dispatch slash commands against an agent registry",
	Long: `Resolve slash commands against a registry of tiered agents, workflows,
NVIDIA backends, LLM providers and oracle validators.

With arguments, the input is parsed and handed to the dispatcher.
Without arguments, the registry help page is shown.

Examples:
  slashroute /genesis analyze Q4
  slashroute /cfo prepare forecast
  slashroute /workflow.close-books
  slashroute --json /llm.claude summarize`,
	Version:           version,
	Args:              cobra.ArbitraryArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initLogging,
	RunE:              runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/slashroute/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&registryFlag, "registry", "r", "",
		"path to a registry YAML file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false,
		"reject registries with key collisions or dangling aliases")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write debug logs (also SLASHROUTE_DEBUG)")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false,
		"print machine-readable JSON")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("registry.strict", defaults.Registry.Strict)
	viper.SetDefault("registry.watch.enabled", defaults.Registry.Watch.Enabled)
	viper.SetDefault("registry.watch.debounce", defaults.Registry.Watch.Debounce)
	viper.SetDefault("suggestions.cache", defaults.Suggestions.Cache)
	viper.SetDefault("suggestions.cache_ttl", defaults.Suggestions.CacheTTL)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("ui.width", defaults.UI.Width)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .slashroute/config.yaml (current directory)
		// 2. ~/.config/slashroute/config.yaml (user config)
		if _, err := os.Stat(".slashroute/config.yaml"); err == nil {
			viper.SetConfigFile(".slashroute/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "slashroute"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the user default
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			home, _ := os.UserHomeDir()
			defaultPath := filepath.Join(home, ".config", "slashroute", "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	cfg = config.Config{}
	_ = viper.Unmarshal(&cfg)
}

// initLogging enables the debug log when requested via flag or environment.
func initLogging(cmd *cobra.Command, _ []string) error {
	if os.Getenv("SLASHROUTE_DEBUG") == "" && !debugFlag {
		return nil
	}
	logPath := os.Getenv("SLASHROUTE_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}

	var cleanup func()
	var err error
	if cmd.Name() == "shell" {
		cleanup, err = log.InitWithTeaLog(logPath, "slashroute")
	} else {
		cleanup, err = log.Init(logPath)
	}
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	cobra.OnFinalize(cleanup)

	log.Info(log.CatConfig, "slashroute starting", "debug", true, "logPath", logPath, "config", viper.ConfigFileUsed())
	return nil
}

// runtime bundles the objects every subcommand needs.
type runtime struct {
	cfg     config.Config
	flags   *flags.Registry
	loader  command.Loader
	service *command.Service
	tracing *tracing.Provider
}

// newRuntime validates the configuration, resolves and compiles the
// registry, and wires the service to the preview dispatcher.
func newRuntime() (*runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	fl := flags.New(cfg.Flags)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	configured := cfg.Registry.Path
	if registryFlag != "" {
		configured = registryFlag
	}

	loader := command.Loader{
		Path:   command.ResolveRegistryPath(configured, workDir),
		Strict: strictFlag || fl.EnabledOr(flags.FlagStrictRegistry, cfg.Registry.Strict),
	}
	if fl.EnabledOr(flags.FlagSuggestionCache, cfg.Suggestions.Cache) {
		loader.ParserOptions = append(loader.ParserOptions, command.WithSuggestionCache(cfg.Suggestions.CacheTTL))
	}

	tp, err := tracing.NewProvider(tracing.FromConfig(cfg.Tracing))
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}

	parser, err := loader.Load()
	if err != nil {
		_ = tp.Shutdown(context.Background())
		return nil, err
	}

	service := command.NewService(parser, dispatch.NewPreviewDispatcher(),
		command.WithTracer(tp.Tracer()))

	return &runtime{cfg: cfg, flags: fl, loader: loader, service: service, tracing: tp}, nil
}

// Close flushes pending spans.
func (r *runtime) Close() {
	if err := r.tracing.Shutdown(context.Background()); err != nil {
		log.ErrorErr(log.CatConfig, "Tracing shutdown failed", err)
	}
}

func (r *runtime) parser() *command.Parser {
	return r.service.Parser()
}

func (r *runtime) renderer() (*presentation.Renderer, error) {
	return presentation.NewRenderer(r.cfg.UI.Width, r.cfg.UI.MarkdownStyle)
}

func runRoot(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	if len(args) == 0 {
		return printHelp(cmd, rt)
	}

	input := strings.Join(args, " ")
	result, err := rt.service.Execute(cmd.Context(), input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonFlag {
		if err := presentation.NewFormatter(out).FormatExecution(presentation.FromExecution(result)); err != nil {
			return err
		}
	} else if result.Success {
		fmt.Fprint(out, presentation.ExecutionText(result, rt.cfg.UI.Width))
	} else {
		fmt.Fprint(cmd.ErrOrStderr(), presentation.FailureText(result))
	}

	if !result.Success {
		return errUnresolved
	}
	return nil
}

// printHelp renders the registry help page with the commands of the first
// two tier sections.
func printHelp(cmd *cobra.Command, rt *runtime) error {
	p := rt.parser()
	topics := p.Topics()

	tierKeys := p.Catalog().TierKeys()
	var common []*domaincmd.Descriptor
	for _, key := range tierKeys[:min(2, len(tierKeys))] {
		topic, err := p.Topic(key)
		if err != nil {
			return err
		}
		common = append(common, topic.Commands...)
	}

	r, err := rt.renderer()
	if err != nil {
		return err
	}
	rendered, err := r.Render(presentation.HelpMarkdown(p.Stats(), common, topics))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errUnresolved) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
