// Package cmd implements the fmthook command line.
package cmd

import (
	"context"
	"io"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/BabakBar/fmthook/internal/config"
)

// Version is set at build time.
var Version = "dev" //nolint:gochecknoglobals

func rootCmd() *cobra.Command {
	opts := new(options)

	root := &cobra.Command{ //nolint:exhaustruct
		Use:   "fmthook",
		Short: "Format Markdown files after they are saved",
		Long: "fmthook is a post-save hook. It tags untagged Markdown code fences with an\n" +
			"inferred language, collapses runs of blank lines and ends files with a\n" +
			"single newline.",
		Example: `  # As an editor or agent hook, reading the event from stdin
  fmthook hook

  # Format files or whole directories
  fmthook fmt README.md docs/

  # Fail when something would change
  fmthook fmt --check .`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},

		DisableAutoGenTag: true,
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"configuration file (default ./"+config.ProjectConfigFileName+")")
	root.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", config.DefaultLogLevel,
		"log level: debug, info, warn or error")

	root.AddCommand(
		hookCmd(opts),
		fmtCmd(opts),
		listCmd(opts),
		lintCmd(opts),
		watchCmd(opts),
		configCmd(opts),
	)

	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := rootCmd()

	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := fang.Execute(ctx, root, fang.WithVersion(Version), fang.WithoutManpage())
	if err != nil {
		return 1
	}

	return 0
}
