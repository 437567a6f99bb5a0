package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vltrn/slashroute/internal/application/command"
	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
	"github.com/vltrn/slashroute/internal/log"
	"github.com/vltrn/slashroute/internal/presentation"
	"github.com/vltrn/slashroute/internal/registrydata"
)

// errRegistryInvalid is returned by registry:validate when warnings were found
// in strict mode.
var errRegistryInvalid = errors.New("registry has warnings")

var registryValidateCmd = &cobra.Command{
	Use:   "registry:validate [path]",
	Short: "Compile a registry and report collisions and dangling aliases",
	Long: `Compile a registry file (or the configured/built-in registry) and print
every construction warning. With --strict, any warning fails the command.

Examples:
  slashroute registry:validate
  slashroute registry:validate ./registry.yaml --strict
  slashroute registry:validate --json | jq '.[].kind'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		path := cfg.Registry.Path
		if registryFlag != "" {
			path = registryFlag
		}
		if len(args) == 1 {
			path = args[0]
		} else {
			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			path = command.ResolveRegistryPath(path, workDir)
		}

		reg, err := command.LoadRegistry(path)
		if err != nil {
			return err
		}
		// Compile leniently so every warning is reported, then apply strictness.
		catalog, err := domaincmd.Compile(reg)
		if err != nil {
			return fmt.Errorf("compile registry: %w", err)
		}
		warnings := catalog.Warnings()

		out := cmd.OutOrStdout()
		if jsonFlag {
			if err := presentation.NewFormatter(out).FormatWarnings(presentation.FromWarnings(warnings)); err != nil {
				return err
			}
		} else {
			fmt.Fprint(out, presentation.WarningsText(warnings))
		}

		if len(warnings) > 0 && (strictFlag || cfg.Registry.Strict) {
			return fmt.Errorf("%w: %d", errRegistryInvalid, len(warnings))
		}
		return nil
	},
}

var registryAliasCmd = &cobra.Command{
	Use:   "registry:alias <alias> <command>",
	Short: "Add or replace an alias in the registry file",
	Long: `Write alias -> command into the aliases section of the registry file,
keeping the file's comments and ordering. When no registry file exists yet,
the built-in registry is copied to .slashroute/registry.yaml first.

The target must resolve to an existing command unless --force is given.

Examples:
  slashroute registry:alias fin aurum
  slashroute registry:alias /ship workflow.release --force`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		alias := strings.TrimPrefix(args[0], "/")
		target := strings.TrimPrefix(args[1], "/")

		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		configured := cfg.Registry.Path
		if registryFlag != "" {
			configured = registryFlag
		}
		path := command.ResolveRegistryPath(configured, workDir)
		if path == "" {
			path = command.ProjectRegistryPath(workDir)
		}
		if err := ensureRegistryFile(path); err != nil {
			return err
		}

		if !aliasForce {
			reg, err := command.LoadRegistryFile(path)
			if err != nil {
				return err
			}
			catalog, err := domaincmd.Compile(reg)
			if err != nil {
				return fmt.Errorf("compile registry: %w", err)
			}
			if _, ok := catalog.Lookup(target); !ok {
				return fmt.Errorf("alias target %q: %w (use --force to write it anyway)", target, domaincmd.ErrNotFound)
			}
		}

		if err := command.SaveAlias(path, alias, target); err != nil {
			return err
		}
		log.Info(log.CatRegistry, "Saved alias", "alias", alias, "target", target, "path", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Saved /%s -> /%s in %s\n", alias, target, path)
		return nil
	},
}

var registryInitCmd = &cobra.Command{
	Use:   "registry:init [path]",
	Short: "Write the built-in registry to a file for editing",
	Long: `Write the built-in registry to path (default .slashroute/registry.yaml).
An existing file is left untouched unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			path = command.ProjectRegistryPath(workDir)
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := writeBuiltinRegistry(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote built-in registry to %s\n", path)
		return nil
	},
}

var (
	aliasForce bool
	initForce  bool
)

// ensureRegistryFile seeds path with the built-in registry when it does not exist.
func ensureRegistryFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking registry file: %w", err)
	}
	return writeBuiltinRegistry(path)
}

func writeBuiltinRegistry(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating registry directory: %w", err)
	}
	if err := os.WriteFile(path, registrydata.Default(), 0o600); err != nil {
		return fmt.Errorf("writing registry file: %w", err)
	}
	log.Info(log.CatRegistry, "Wrote built-in registry", "path", path)
	return nil
}

func init() {
	registryAliasCmd.Flags().BoolVar(&aliasForce, "force", false, "Write the alias even if the target does not exist")
	registryInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")

	rootCmd.AddCommand(registryValidateCmd)
	rootCmd.AddCommand(registryAliasCmd)
	rootCmd.AddCommand(registryInitCmd)
}
