package codeblock

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/shlex"
)

// Meta holds key-value metadata parsed from the info string after the language.
type Meta map[string]interface{}

// Get returns the metadata value for the given key as a string.
func (m Meta) Get(name string) string {
	if m == nil {
		return ""
	}

	value, has := m[name]
	if !has {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

// String renders the metadata as sorted key=value pairs.
func (m Meta) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + m.Get(k)
	}

	return strings.Join(pairs, " ")
}

var (
	reJSON     = regexp.MustCompile(`^\s*{\s*["}]`)
	reBrackets = regexp.MustCompile(`^\s*{(.*)}$`)
	reInfo     = regexp.MustCompile(`^\s*(\S+)\s*(.*?)\s*$`)
)

func parseMeta(input []byte) (Meta, error) {
	if len(input) == 0 {
		return Meta{}, nil
	}

	if reJSON.Match(input) {
		var meta Meta

		if err := json.Unmarshal(input, &meta); err != nil {
			return nil, fmt.Errorf("meta: %w", err)
		}

		return meta, nil
	}

	if subs := reBrackets.FindSubmatch(input); subs != nil {
		input = subs[1]
	}

	words, err := shlex.Split(string(input))
	if err != nil {
		return nil, fmt.Errorf("meta: %w", err)
	}

	meta := make(Meta)

	for _, word := range words {
		if key, value, found := strings.Cut(word, "="); found {
			meta[key] = value
		}
	}

	return meta, nil
}

// parseInfo splits an info string into its language word and metadata.
func parseInfo(info []byte) (string, Meta, error) {
	all := reInfo.FindSubmatch(info)
	if all == nil {
		return "", nil, nil
	}

	meta, err := parseMeta(all[2])
	if err != nil {
		return "", nil, err
	}

	return string(all[1]), meta, nil
}
