package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domgen/internal/config"
	"github.com/vango-dev/domgen/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	set        map[string]string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "domgen",
		Short: "Lower UI-tree literals into Go construction code",
		Long: `domgen compiles parsed markup literals into Go code that builds
DOM nodes through a small runtime package.

Each input document carries a Go source file with placeholder calls and
the literals that replace them. Static subtrees can be hoisted into
package-level templates that are cloned at run time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flags.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to domgen.json (default: nearest in parent directories)")
	pf.StringToStringVar(&flags.set, "set", nil, "Override options, e.g. --set templateMode=true")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		initCmd(),
		buildCmd(flags),
		checkCmd(flags),
		serveCmd(flags),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig resolves domgen.json, applies --set overrides and validates the
// result. Without a domgen.json the defaults are used.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.LoadFile(flags.configPath)
	} else {
		cfg, err = config.LoadFromWorkingDir()
		if errors.HasCode(err, "E141") {
			cfg, err = config.New(), nil
		}
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Apply(flags.set); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Println(errors.Success(fmt.Sprintf(format, args...)))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Println(errors.Warning(fmt.Sprintf(format, args...)))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errors.Failure(fmt.Sprintf(format, args...)))
}

// printErr prints one indented line per error, or the full report with
// source context when verbose.
func printErr(err error, verbose bool) {
	if verbose {
		errors.Fprint(os.Stderr, err)
		return
	}
	for _, line := range errors.Compact(err) {
		fmt.Fprintf(os.Stderr, "    %s\n", line)
	}
}
