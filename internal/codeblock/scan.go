// Package codeblock lists the fenced code blocks of a Markdown document as a
// CommonMark parser sees them.
package codeblock

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Scan parses a Markdown document and returns all fenced code blocks in
// document order. The source is not modified.
func Scan(source []byte) (Blocks, error) {
	root := goldmark.DefaultParser().Parse(text.NewReader(source)).OwnerDocument()

	var blocks Blocks

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := node.(*ast.FencedCodeBlock)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}

		block, err := extractBlock(fcb, source)
		if err != nil {
			return ast.WalkStop, err
		}

		blocks = append(blocks, block)

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

func extractBlock(fcb *ast.FencedCodeBlock, source []byte) (*Block, error) {
	var (
		lang string
		meta Meta
		err  error
	)

	if fcb.Info != nil {
		lang, meta, err = parseInfo(fcb.Info.Segment.Value(source))
		if err != nil {
			return nil, err
		}
	}

	block := &Block{Lang: lang, Meta: meta, Code: extractCode(fcb, source)}
	block.StartLine, block.EndLine = extractLines(fcb, source)

	return block, nil
}

func extractLines(fcb *ast.FencedCodeBlock, source []byte) (int, int) {
	var startLine, endLine int

	lines := fcb.Lines()

	if fcb.Info != nil {
		startLine = lineAt(source, fcb.Info.Segment.Start)
	} else if lines.Len() > 0 {
		startLine = lineAt(source, lines.At(0).Start) - 1
	}

	if lines.Len() > 0 {
		endLine = lineAt(source, lines.At(lines.Len()-1).Stop)
	} else if startLine > 0 {
		endLine = startLine + 1
	}

	return startLine, endLine
}

func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}

	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

func extractCode(fcb *ast.FencedCodeBlock, source []byte) []byte {
	lines := fcb.Lines()
	code := make([][]byte, 0, lines.Len())

	for i := range lines.Len() {
		seg := lines.At(i)
		code = append(code, seg.Value(source))
	}

	return bytes.Join(code, nil)
}
