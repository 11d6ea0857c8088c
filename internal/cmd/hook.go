package cmd

import (
	_ "embed"
	"errors"

	"github.com/spf13/cobra"

	"github.com/BabakBar/fmthook/internal/hook"
	"github.com/BabakBar/fmthook/internal/log"
)

//go:embed help/hook.md
var hookHelp string

func hookCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "hook",
		Short: "Handle a post-save event read from stdin",
		Long:  hookHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := hook.ReadInput(cmd.InOrStdin())
			if err != nil {
				return err
			}

			path, err := input.FilePath()
			if errors.Is(err, hook.ErrNoPath) {
				opts.logger.Debug("Nothing to format", log.Tool, input.ToolName)

				return nil
			}

			if err != nil {
				return err
			}

			d, err := opts.dispatcher()
			if err != nil {
				return err
			}

			d.HandleAndReport(path)

			return nil
		},

		DisableAutoGenTag: true,
	}

	return cmd
}
