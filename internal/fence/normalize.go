// Package fence tags untagged Markdown code fences with an inferred language
// and tidies blank lines.
package fence

import (
	"regexp"
	"strings"
	"unicode"
)

var reBlankRun = regexp.MustCompile(`\n{3,}`)

// Normalize returns doc with every untagged fenced block tagged by [Classify],
// runs of blank lines collapsed to one, and exactly one trailing newline.
// Tagged blocks and all other text are left as they are.
//
// Normalize is idempotent.
func Normalize(doc string) string {
	doc = tag(doc)
	doc = reBlankRun.ReplaceAllString(doc, "\n\n")

	return strings.TrimRightFunc(doc, unicode.IsSpace) + "\n"
}

// Changed reports whether [Normalize] would modify doc.
func Changed(doc string) bool {
	return Normalize(doc) != doc
}

func tag(doc string) string {
	ls := lines(doc)

	for _, block := range find(ls) {
		if block.Tagged() {
			continue
		}

		eol := "\n"
		if strings.HasSuffix(block.Info, "\r") {
			eol = "\r\n"
		}

		ls[block.Open] = block.Indent + block.Ticks + string(Classify(block.Body)) + eol
	}

	return strings.Join(ls, "")
}
