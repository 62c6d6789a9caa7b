// Package main provides an interactive simulator that drives the demo extension through the
// host lifecycle on an in-memory host.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

type options struct {
	manifest  string
	logLevel  string
	logFormat string
	debug     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr,
			"%sError: %v%s\n",
			colorRed, err, colorReset)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "stylish-sim",
		Short: "Interactive host simulator for stylish extensions",
		Long: `stylish-sim loads the demo extension, optionally adds the commands of a
YAML or HCL manifest, and attaches everything to an in-memory host.

Type "help" at the prompt for the list of host actions.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&opts.manifest, "manifest", "", "YAML or HCL command manifest to load")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Trace registration and dispatch")
	return cmd
}

func run(opts *options, out, errOut io.Writer) error {
	logger := newLogger(opts.logLevel, opts.logFormat, errOut)
	slog.SetDefault(logger)

	sess, err := newSession(opts, logger, out)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          colorCyan + "host> " + colorReset,
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdout:          out,
		Stderr:          errOut,
	})
	if err != nil {
		return fmt.Errorf(
			"failed to create readline: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(out, "%s%sstylish host simulator%s\n",
		colorBold, colorYellow, colorReset)
	sess.printHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				fmt.Fprintf(out,
					"%sGoodbye!%s\n",
					colorGreen, colorReset)
				return nil
			}
			return fmt.Errorf(
				"failed to read input: %w", err)
		}

		quit, err := sess.execute(line)
		if err != nil {
			fmt.Fprintf(errOut,
				"%sError: %v%s\n",
				colorRed, err, colorReset)
		}
		if quit {
			fmt.Fprintf(out,
				"%sGoodbye!%s\n",
				colorGreen, colorReset)
			return nil
		}
	}
}

// newLogger creates a logger for the given level and format names. Unknown levels fall back
// to info, unknown formats to text.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}
	return slog.New(handler)
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("startup"),
		readline.PcItem("worldload"),
		readline.PcItem("use"),
		readline.PcItem("run"),
		readline.PcItem("status"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}
