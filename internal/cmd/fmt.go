package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/BabakBar/fmthook/internal/fence"
	"github.com/BabakBar/fmthook/internal/hook"
)

//go:embed help/fmt.md
var fmtHelp string

var (
	errWouldReformat = errors.New("some files are not formatted")

	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) //nolint:gochecknoglobals
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) //nolint:gochecknoglobals
)

func fmtCmd(opts *options) *cobra.Command {
	var check bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "fmt [flags] [path...]",
		Aliases: []string{"f"},
		Short:   "Normalize Markdown files",
		Long:    fmtHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && args[0] == "-" {
				return fmtStdin(cmd.InOrStdin(), cmd.OutOrStdout(), check)
			}

			if len(args) == 0 {
				args = []string{"."}
			}

			return fmtRun(cmd.OutOrStdout(), opts, args, check)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVar(&check, "check", false, "list files that would change instead of rewriting them")

	return cmd
}

func fmtStdin(in io.Reader, out io.Writer, check bool) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	if check {
		if fence.Changed(string(src)) {
			return errWouldReformat
		}

		return nil
	}

	_, err = io.WriteString(out, fence.Normalize(string(src)))

	return err //nolint:wrapcheck
}

func fmtRun(out io.Writer, opts *options, paths []string, check bool) error {
	files, err := markdownFiles(opts.cfg, paths)
	if err != nil {
		return err
	}

	var extra []hook.Option
	if check {
		extra = append(extra, hook.WithCheck())
	}

	d, err := opts.dispatcher(extra...)
	if err != nil {
		return err
	}

	var dirty, failures int

	for _, file := range files {
		r := d.Handle(file)

		switch r.Status {
		case hook.StatusNeedsFormat:
			dirty++

			_, _ = lipgloss.Fprintln(out, warnStyle.Render("would reformat")+" "+file)
		case hook.StatusFailed:
			failures++

			d.Report(r)
		default:
			d.Report(r)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d file(s) failed", failures)
	}

	if dirty > 0 {
		return fmt.Errorf("%w: %d file(s) would be reformatted", errWouldReformat, dirty)
	}

	if check {
		_, _ = lipgloss.Fprintln(out, okStyle.Render("ok")+fmt.Sprintf(" %d file(s) checked", len(files)))
	}

	return nil
}
