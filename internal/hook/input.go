// Package hook handles a single post-save hook event: it decides whether the
// saved file is formatted and rewrites it when it is.
package hook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNoPath is returned by [Input.FilePath] when the payload names no file.
var ErrNoPath = errors.New("hook payload has no file path")

// Input is the JSON payload an editor or agent pipes to the hook on stdin.
type Input struct {
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
}

type toolInput struct {
	FilePath string `json:"file_path"`
	Path     string `json:"path"`
}

// FilePath returns tool_input.file_path, falling back to tool_input.path.
func (in *Input) FilePath() (string, error) {
	if len(in.ToolInput) == 0 {
		return "", ErrNoPath
	}

	var ti toolInput
	if err := json.Unmarshal(in.ToolInput, &ti); err != nil {
		return "", fmt.Errorf("parsing tool_input: %w", err)
	}

	switch {
	case ti.FilePath != "":
		return ti.FilePath, nil
	case ti.Path != "":
		return ti.Path, nil
	default:
		return "", ErrNoPath
	}
}

// ReadInput reads and parses an Input from r.
func ReadInput(r io.Reader) (Input, error) {
	var input Input

	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return Input{}, fmt.Errorf("parsing hook input: %w", err)
	}

	return input, nil
}
