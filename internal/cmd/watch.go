package cmd

import (
	"github.com/spf13/cobra"

	"github.com/BabakBar/fmthook/internal/log"
	"github.com/BabakBar/fmthook/internal/watch"
)

func watchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "watch [dir...]",
		Short: "Format Markdown files whenever they are saved",
		Long: "Watch directories recursively and run the hook on every file that is\n" +
			"written. Stops on interrupt.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			d, err := opts.dispatcher()
			if err != nil {
				return err
			}

			w, err := watch.New(func(path string) { d.HandleAndReport(path) },
				watch.WithDebounce(opts.cfg.Watch.Debounce),
				watch.WithLogger(opts.logger))
			if err != nil {
				return err
			}

			for _, dir := range args {
				if err := w.Add(dir); err != nil {
					return err
				}

				opts.logger.Info("Watching for changes", log.Dir, dir)
			}

			return w.Run(cmd.Context())
		},

		DisableAutoGenTag: true,
	}

	return cmd
}
