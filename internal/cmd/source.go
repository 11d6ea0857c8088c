package cmd

import (
	"fmt"
	"io"
	"os"
)

const stdinName = "-"

// source returns the filename argument, or "-" for stdin.
func source(args []string) string {
	if len(args) == 0 {
		return stdinName
	}

	return args[0]
}

func readSource(name string, stdin io.Reader) ([]byte, error) {
	if name == stdinName {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return src, nil
	}

	return os.ReadFile(name) //nolint:wrapcheck
}
