// logemit emits log records through a configured logging setup. It is
// mainly useful for trying out configuration files and templates from
// the shell.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treelabs/toolbelt/config"
	"github.com/treelabs/toolbelt/core"
	"github.com/treelabs/toolbelt/logger"
)

// Build information - set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type emitFlags struct {
	ConfigPath string
	Logger     string
	Level      string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var flags emitFlags

	rootCmd := &cobra.Command{
		Use:   "logemit [message...]",
		Short: "Emit a log record through a configured logging setup",
		Long: `logemit loads a logging configuration (YAML file plus environment
overrides), emits the given message through the named logger at the
requested severity, and shuts the setup down again.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(flags, args)
		},
	}

	rootCmd.Flags().StringVarP(&flags.ConfigPath, "config", "c", "", "path to a YAML configuration file")
	rootCmd.Flags().StringVarP(&flags.Logger, "logger", "l", "", "dotted logger name (default: the root logger)")
	rootCmd.Flags().StringVar(&flags.Level, "level", "info", "severity to emit at: debug, info, warning, error, critical")

	rootCmd.AddCommand(newVersionCommand())

	return rootCmd.Execute()
}

func runEmit(flags emitFlags, args []string) error {
	level, ok := core.ParseLevel(flags.Level)
	if !ok || level == core.LevelNotSet {
		return fmt.Errorf("unknown level %q", flags.Level)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}

	reg := logger.NewRegistry()
	if err := cfg.Apply(reg); err != nil {
		return err
	}
	defer reg.Close()

	l := reg.Root()
	if flags.Logger != "" {
		if l, err = reg.Get(flags.Logger); err != nil {
			return err
		}
	}

	message := strings.Join(args, " ")
	if message == "" {
		message = "logemit test record"
	}
	l.Log(level, "%s", message)

	return nil
}

func newVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Println(version)
				return
			}

			fmt.Printf("logemit %s\n", version)
			fmt.Printf("  Commit:     %s\n", commit)
			fmt.Printf("  Built:      %s\n", date)
			fmt.Printf("  Go version: %s\n", runtime.Version())
			fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print only the version number")

	return cmd
}
