// Package main is the offcode command: a terminal assistant that lets a
// language model read, write and run code inside a sandboxed directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/offcode/internal/ui"
)

var opts options

var rootCmd = &cobra.Command{
	Use:   "offcode",
	Short: "Local coding assistant driven by tool calls in model output",
	Long: `offcode sends your request to a language model, extracts tool calls such as
[TOOL: read_file(file_path='main.go')] from its replies, runs them inside the
sandbox root and feeds the results back until the task is done.

Run without --prompt to start an interactive session.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return run(ctx, cmd, opts, environment{
			in:       os.Stdin,
			out:      os.Stdout,
			renderer: ui.NewGlamourRenderer(),
			getenv:   os.Getenv,
		})
	},
}

func init() {
	bindFlags(rootCmd, &opts)
}

func bindFlags(cmd *cobra.Command, o *options) {
	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "config file (default ~/.config/offcode/config.yaml)")
	f.StringVar(&o.root, "root", "", "sandbox root directory (default: current directory)")
	f.StringVarP(&o.prompt, "prompt", "p", "", "run a single request and exit")
	f.StringSliceVarP(&o.files, "files", "f", nil, "files to add to the context")
	f.BoolVarP(&o.autoConfirm, "auto-confirm", "y", false, "execute tool calls without asking")
	f.IntVar(&o.maxIterations, "max-iterations", 0, "autonomous iterations per request")
	f.StringVar(&o.provider, "provider", "", "completion backend: openai or gemini")
	f.StringVarP(&o.model, "model", "m", "", "model name")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
	f.StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile on exit")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
