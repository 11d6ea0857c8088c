package fence

import (
	"strings"
)

// Block is a fenced code region found by [Find].
type Block struct {
	Indent string
	Ticks  string
	Info   string
	Body   string
	Open   int
	Close  int
}

// Tagged reports whether the block declares a language.
func (b *Block) Tagged() bool {
	return len(strings.TrimSpace(b.Info)) != 0
}

const (
	tick      = '`'
	minTicks  = 3
	maxIndent = 3
)

// opener parses a fence opening line (without its line terminator).
func opener(line string) (indent, ticks, info string, ok bool) {
	i := 0
	for i < len(line) && i < maxIndent && line[i] == ' ' {
		i++
	}

	j := i
	for j < len(line) && line[j] == tick {
		j++
	}

	if j-i < minTicks {
		return "", "", "", false
	}

	return line[:i], line[i:j], line[j:], true
}

// closer parses a closing fence line: indentation and a backtick run
// followed by nothing but whitespace. It returns indent+ticks.
func closer(line string) (string, bool) {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}

	j := i
	for j < len(line) && line[j] == tick {
		j++
	}

	if j-i < minTicks || i > maxIndent || len(strings.TrimSpace(line[j:])) != 0 {
		return "", false
	}

	return line[:j], true
}

// lines splits doc after every newline. The final element holds whatever
// follows the last newline and may be empty.
func lines(doc string) []string {
	return strings.SplitAfter(doc, "\n")
}

func content(line string) string {
	return strings.TrimSuffix(line, "\n")
}

// closers maps every opening line to the index of the first later line that
// closes it, in a single backward pass.
func closers(ls []string) map[int]int {
	res := make(map[int]int)
	next := make(map[string]int)

	for i := len(ls) - 1; i >= 0; i-- {
		line := content(ls[i])

		if indent, ticks, _, ok := opener(line); ok {
			if j, found := next[indent+ticks]; found {
				res[i] = j
			}
		}

		if key, ok := closer(line); ok {
			next[key] = i
		}
	}

	return res
}

// find walks ls top to bottom and returns non-overlapping blocks.
func find(ls []string) []Block {
	var blocks []Block

	closeAt := closers(ls)

	for i := 0; i < len(ls); i++ {
		j, ok := closeAt[i]
		if !ok {
			continue
		}

		indent, ticks, info, _ := opener(content(ls[i]))

		blocks = append(blocks, Block{
			Indent: indent,
			Ticks:  ticks,
			Info:   info,
			Body:   strings.Join(ls[i+1:j], ""),
			Open:   i,
			Close:  j,
		})
		i = j
	}

	return blocks
}

// Find returns the fenced blocks of doc in document order. Line indexes are
// zero based. An opening fence without a matching close is not a block.
func Find(doc string) []Block {
	return find(lines(doc))
}
