package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bartekus/lintbridge/internal/linter"
)

// fakeLinter is a linter domain stand-in: it drains the request and prints
// response.json from the project root.
const fakeLinter = "cat > /dev/null\ncat response.json\n"

// newProject lays out a TypeScript project whose linter replies with failures
// and makes it the working directory for the rest of the test.
func newProject(t *testing.T, failureCount int, failures ...linter.Failure) string {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	if failures == nil {
		failures = []linter.Failure{}
	}
	output, err := json.Marshal(failures)
	require.NoError(t, err)
	resp, err := json.Marshal(linter.Response{Output: string(output), FailureCount: float64(failureCount)})
	require.NoError(t, err)

	write("tsconfig.json", "{}")
	write("tslint.json", `{"rules":{"semicolon":[true,"always"]}}`)
	write("src/a.ts", "let a = 1\n")
	write("fake-tslint.sh", fakeLinter)
	write("response.json", string(resp))
	write(".lintbridge.yaml", "tslint:\n  linter: [sh, fake-tslint.sh]\n")

	t.Chdir(dir)
	return dir
}

// execute runs the CLI and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
