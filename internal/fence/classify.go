package fence

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Lang is a language tag written after an opening fence.
type Lang string

const (
	JSON       Lang = "json"
	JavaScript Lang = "javascript"
	Python     Lang = "python"
	Bash       Lang = "bash"
	Text       Lang = "text"
)

var (
	reScript = regexp.MustCompile(`\b(?:function|const|let|var|import|export)\b`)
	rePython = regexp.MustCompile(`\b(?:def|import|from|class)\b`)
	reShell  = regexp.MustCompile(`\b(?:bun|npm|git|ls|cd)\b`)
)

type rule struct {
	match func(code string) bool
	lang  func(code string) Lang
}

func always(lang Lang) func(string) Lang {
	return func(string) Lang { return lang }
}

// rules are checked in order; the first match decides.
var rules = []rule{ //nolint:gochecknoglobals
	{looksStructured, structured},
	{reScript.MatchString, always(JavaScript)},
	{rePython.MatchString, always(Python)},
	{reShell.MatchString, always(Bash)},
}

func looksStructured(code string) bool {
	return strings.HasPrefix(code, "{") || strings.HasPrefix(code, "[")
}

// structured tags bracketed code that is valid JSON as JSON, and anything
// else that starts with a bracket as JavaScript.
func structured(code string) Lang {
	if json.Valid([]byte(code)) {
		return JSON
	}

	return JavaScript
}

// Classify infers the language of a fenced block body.
func Classify(code string) Lang {
	code = strings.TrimSpace(code)

	for _, r := range rules {
		if r.match(code) {
			return r.lang(code)
		}
	}

	return Text
}
