package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const untagged = "# Doc\n\n\n\n```\n{\"a\": 1}\n```\n\n```\nhello world\n```\n\n\n"

const tagged = "# Doc\n\n```json\n{\"a\": 1}\n```\n\n```text\nhello world\n```\n"

type result struct {
	code   int
	stdout string
	stderr string
}

// run executes the command line inside dir.
func run(t *testing.T, dir, stdin string, args ...string) result {
	t.Helper()
	t.Chdir(dir)

	var stdout, stderr bytes.Buffer

	code := Execute(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func write(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func read(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestHook(t *testing.T) {
	dir := t.TempDir()
	path := write(t, filepath.Join(dir, "README.md"), untagged)

	payload := `{"tool_name":"Write","tool_input":{"file_path":"` + path + `"}}`

	res := run(t, dir, payload, "hook")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, tagged, read(t, path))
	assert.Contains(t, res.stderr, "Formatted Markdown file")
}

func TestHookSkipsAndIgnores(t *testing.T) {
	dir := t.TempDir()
	lock := write(t, filepath.Join(dir, "package-lock.json"), "{\n\n\n\n}")

	payloads := []string{
		`{"tool_name":"Write","tool_input":{"file_path":"` + lock + `"}}`,
		`{"tool_name":"Write","tool_input":{"file_path":"` + filepath.Join(dir, "gone.md") + `"}}`,
		`{"tool_name":"Write","tool_input":{}}`,
	}

	for _, payload := range payloads {
		res := run(t, dir, payload, "hook")
		assert.Equal(t, 0, res.code, payload)
	}

	assert.Equal(t, "{\n\n\n\n}", read(t, lock))
}

func TestHookBadPayload(t *testing.T) {
	res := run(t, t.TempDir(), "not json", "hook")
	assert.Equal(t, 1, res.code)
}

func TestFmt(t *testing.T) {
	dir := t.TempDir()
	a := write(t, filepath.Join(dir, "a.md"), untagged)
	b := write(t, filepath.Join(dir, "docs", "b.mdx"), untagged)
	hidden := write(t, filepath.Join(dir, ".cache", "c.md"), untagged)
	other := write(t, filepath.Join(dir, "notes.txt"), untagged)

	res := run(t, dir, "", "fmt")
	assert.Equal(t, 0, res.code, res.stderr)

	assert.Equal(t, tagged, read(t, a))
	assert.Equal(t, tagged, read(t, b))
	assert.Equal(t, untagged, read(t, hidden))
	assert.Equal(t, untagged, read(t, other))
}

func TestFmtCheck(t *testing.T) {
	dir := t.TempDir()
	dirty := write(t, filepath.Join(dir, "dirty.md"), untagged)
	write(t, filepath.Join(dir, "clean.md"), tagged)

	res := run(t, dir, "", "fmt", "--check", ".")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "would reformat")
	assert.Contains(t, res.stdout, "dirty.md")
	assert.NotContains(t, res.stdout, "clean.md")
	assert.Equal(t, untagged, read(t, dirty))

	res = run(t, dir, "", "fmt", "--check", "clean.md")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "1 file(s) checked")
}

func TestFmtStdin(t *testing.T) {
	res := run(t, t.TempDir(), untagged, "fmt", "-")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, tagged, res.stdout)

	res = run(t, t.TempDir(), untagged, "fmt", "--check", "-")
	assert.Equal(t, 1, res.code)

	res = run(t, t.TempDir(), tagged, "fmt", "--check", "-")
	assert.Equal(t, 0, res.code)
}

func TestFmtMissingPath(t *testing.T) {
	res := run(t, t.TempDir(), "", "fmt", "nope.md")
	assert.Equal(t, 1, res.code)
}

func TestList(t *testing.T) {
	doc := "```go file=main.go\npackage main\n```\n\n```\ngit status\n```\n"

	res := run(t, t.TempDir(), doc, "list")
	require.Equal(t, 0, res.code, res.stderr)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Inferred")
	assert.Contains(t, lines[1], "go")
	assert.Contains(t, lines[1], "file=main.go")
	assert.Contains(t, lines[2], "bash")

	res = run(t, t.TempDir(), doc, "list", "--lang", "ba*")
	require.Equal(t, 0, res.code, res.stderr)
	assert.NotContains(t, res.stdout, "main.go")
	assert.Contains(t, res.stdout, "bash")
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	path := write(t, filepath.Join(dir, "doc.md"), untagged)

	res := run(t, dir, "", "lint", "doc.md")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "doc.md:5:")
	assert.Contains(t, res.stdout, "inferred json")

	write(t, path, tagged)

	res = run(t, dir, "", "lint")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, res.stdout)
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()

	res := run(t, dir, "", "config", "init")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, ".fmthook.yaml")

	write(t, filepath.Join(dir, ".fmthook.yaml"), "markdown_extensions: [.markdown]\n")

	res = run(t, dir, "", "config", "show")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, ".markdown")
	assert.Contains(t, res.stdout, "package-lock.json")

	path := write(t, filepath.Join(dir, "x.md"), untagged)
	res = run(t, dir, "", "fmt", "x.md")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, untagged, read(t, path))
}

func TestLogLevelFlag(t *testing.T) {
	res := run(t, t.TempDir(), "", "--log-level", "loud", "fmt")
	assert.Equal(t, 1, res.code)
}
