package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BabakBar/fmthook/internal/config"
)

func configCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "config",
		Short: "Show or create the fmthook configuration",

		DisableAutoGenTag: true,
	}

	show := &cobra.Command{ //nolint:exhaustruct
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := opts.cfg.YAML()
			if err != nil {
				return err
			}

			if file := opts.cfg.ConfigFile(); file != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", file)
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err //nolint:wrapcheck
		},

		DisableAutoGenTag: true,
	}

	initCmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "init [dir]",
		Short: "Write a default " + config.ProjectConfigFileName,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			if _, err := os.Stat(dir); err != nil {
				return err //nolint:wrapcheck
			}

			path, err := config.WriteDefault(dir)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)

			return nil
		},

		DisableAutoGenTag: true,
	}

	cmd.AddCommand(show, initCmd)

	return cmd
}
