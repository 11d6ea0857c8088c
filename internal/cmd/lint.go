package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/BabakBar/fmthook/internal/codeblock"
)

var errUntagged = errors.New("fenced code blocks without a language")

func lintCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "lint [path...]",
		Short: "Report fenced code blocks that have no language",
		Long: "Report fenced code blocks without a language, as a CommonMark parser sees\n" +
			"them. This also catches blocks that fmthook fmt does not rewrite, such as\n" +
			"fences indented with tabs or nested deeper in lists.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			files, err := markdownFiles(opts.cfg, args)
			if err != nil {
				return err
			}

			return lintRun(cmd.OutOrStdout(), files)
		},

		DisableAutoGenTag: true,
	}

	return cmd
}

func lintRun(out io.Writer, files []string) error {
	var count int

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return err //nolint:wrapcheck
		}

		blocks, err := codeblock.Scan(src)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}

		for _, b := range blocks.Untagged() {
			count++

			_, _ = lipgloss.Fprintf(out, "%s:%d: %s (inferred %s)\n",
				file, b.StartLine, warnStyle.Render("code block has no language"), b.Inferred())
		}
	}

	if count > 0 {
		return fmt.Errorf("%w: %d found", errUntagged, count)
	}

	return nil
}
