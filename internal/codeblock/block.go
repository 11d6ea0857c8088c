package codeblock

import (
	"github.com/BabakBar/fmthook/internal/fence"
)

// Block is a fenced code block as a CommonMark parser sees it.
type Block struct {
	Lang      string
	Meta      Meta
	Code      []byte
	StartLine int
	EndLine   int
}

// Tagged reports whether the block declares a language.
func (b *Block) Tagged() bool {
	return len(b.Lang) != 0
}

// Inferred returns the language fmthook would tag an untagged block with.
func (b *Block) Inferred() fence.Lang {
	return fence.Classify(string(b.Code))
}

type Blocks []*Block

// Untagged returns the blocks without a language.
func (bs Blocks) Untagged() Blocks {
	var res Blocks

	for _, b := range bs {
		if !b.Tagged() {
			res = append(res, b)
		}
	}

	return res
}
