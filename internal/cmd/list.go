package cmd

import (
	"fmt"
	"io"

	"github.com/gobwas/glob"
	"github.com/rodaine/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/BabakBar/fmthook/internal/codeblock"
)

func listCmd(_ *options) *cobra.Command {
	var langs []string

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] [filename]",
		Aliases: []string{"ls"},
		Short:   "List the fenced code blocks of a Markdown document",
		Long: "List the fenced code blocks of a Markdown document as a CommonMark parser\n" +
			"sees them, with the language fmthook would give untagged blocks.\n" +
			"Reads stdin when no filename is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(source(args), cmd.InOrStdin())
			if err != nil {
				return err
			}

			filter, err := langFilter(langs)
			if err != nil {
				return err
			}

			return listRun(cmd.OutOrStdout(), src, filter)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringSliceVar(&langs, "lang", nil,
		"only list blocks whose language (declared or inferred) matches one of these glob patterns")

	return cmd
}

// effectiveLang is the declared language, or the inferred one for untagged blocks.
func effectiveLang(b *codeblock.Block) string {
	if b.Tagged() {
		return b.Lang
	}

	return string(b.Inferred())
}

func langFilter(patterns []string) (func(*codeblock.Block) bool, error) {
	if len(patterns) == 0 {
		return func(*codeblock.Block) bool { return true }, nil
	}

	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("lang pattern %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	return func(b *codeblock.Block) bool {
		lang := effectiveLang(b)

		return lo.SomeBy(globs, func(g glob.Glob) bool { return g.Match(lang) })
	}, nil
}

func listRun(out io.Writer, src []byte, filter func(*codeblock.Block) bool) error {
	blocks, err := codeblock.Scan(src)
	if err != nil {
		return err
	}

	tbl := table.New("Lines", "Lang", "Inferred", "Meta").WithWriter(out)

	for _, b := range lo.Filter(blocks, func(b *codeblock.Block, _ int) bool { return filter(b) }) {
		lang, inferred := b.Lang, "-"
		if !b.Tagged() {
			lang, inferred = "-", string(b.Inferred())
		}

		meta := b.Meta.String()
		if meta == "" {
			meta = "-"
		}

		tbl.AddRow(fmt.Sprintf("%d-%d", b.StartLine, b.EndLine), lang, inferred, meta)
	}

	tbl.Print()

	return nil
}
