package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palinview/internal/config"
	"palinview/internal/palindrome"
	"palinview/internal/report"
)

// run executes palinctl against a config path that does not exist, so
// every run starts from defaults.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("PALINVIEW_SEED", "")

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	if !hasFlag(args, "--config") {
		args = append([]string{"--config", filepath.Join(t.TempDir(), "absent.toml")}, args...)
	}
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if a == name || strings.HasPrefix(a, name+"=") {
			return true
		}
	}
	return false
}

func TestCheckText(t *testing.T) {
	tests := []struct {
		args    []string
		display string
		verdict string
	}{
		{[]string{"Taco", "cat"}, "TACOCAT", "[palindrome]"},
		{[]string{"Hello World"}, "HELLOWORLD", "[not_palindrome]"},
		{[]string{"a"}, "A", "[indeterminate]"},
		{[]string{"!!!"}, "(nothing to show)", "[indeterminate]"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := run(t, "", append([]string{"check"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.display)
			assert.Contains(t, out, tt.verdict)
		})
	}
}

func TestCheckJSON(t *testing.T) {
	out, _, err := run(t, "", "check", "--json", "A man a plan a canal Panama")
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, report.Version, r.Version)
	assert.Equal(t, palindrome.Palindrome, r.Verdict)
	assert.Equal(t, "amanaplanacanalpanama", r.Comparison)
	assert.Equal(t, uint64(1), r.Epoch)
	assert.Len(t, r.Letters, len(r.Display))
}

func TestCheckStdin(t *testing.T) {
	out, _, err := run(t, "racecar\nHello\n", "check", "--json")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var got []report.Report
	for dec.More() {
		var r report.Report
		require.NoError(t, dec.Decode(&r))
		got = append(got, r)
	}
	require.Len(t, got, 2)
	assert.Equal(t, palindrome.Palindrome, got[0].Verdict)
	assert.Equal(t, palindrome.NotPalindrome, got[1].Verdict)
	assert.Equal(t, uint64(2), got[1].Epoch)
}

func TestCheckLongLines(t *testing.T) {
	half := strings.Repeat("ab", 50*1024)
	long := half + reverse(half)

	out, _, err := run(t, long+"\n", "check", "--json")
	require.NoError(t, err)
	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, palindrome.Palindrome, r.Verdict)
	assert.Len(t, r.Input, 200*1024)

	out, _, err = run(t, long+"\n:quit\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "[palindrome]")
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func TestExampleSeeded(t *testing.T) {
	first, _, err := run(t, "", "example", "--count", "8", "--seed", "42")
	require.NoError(t, err)
	second, _, err := run(t, "", "example", "-n", "8", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	lines := strings.Split(strings.TrimSpace(first), "\n")
	require.Len(t, lines, 8)
	for i, line := range lines {
		assert.Equal(t, palindrome.Palindrome, palindrome.Check(line), line)
		if i > 0 {
			assert.NotEqual(t, lines[i-1], line, "repeat at %d", i)
		}
	}
}

func TestExampleRejectsZeroCount(t *testing.T) {
	_, _, err := run(t, "", "example", "--count", "0")
	assert.Error(t, err)
}

func TestRepl(t *testing.T) {
	in := "racecar\n\nracecar\n:example\n:quit\nnever read\n"
	out, _, err := run(t, in, "repl")
	require.NoError(t, err)

	assert.Contains(t, out, "epoch=1 active=true\nRACECAR")
	assert.Contains(t, out, "epoch=1 active=false\n(nothing to show)")
	assert.Contains(t, out, "epoch=2 active=true\nRACECAR")
	assert.Contains(t, out, "epoch=3 active=true")
	assert.NotContains(t, out, "NEVERREAD")
}

func TestMetricsFlag(t *testing.T) {
	out, _, err := run(t, "aa\nab\n", "--metrics", "check")
	require.NoError(t, err)

	assert.Contains(t, out, "# TYPE palinview_checks_total counter")
	assert.Contains(t, out, "palinview_checks_total 2")
	assert.Contains(t, out, `palinview_verdicts_total{verdict="palindrome"} 1`)
	assert.Contains(t, out, `palinview_verdicts_total{verdict="not_palindrome"} 1`)
	assert.Contains(t, out, "palinview_animation_epoch 2")
}

func TestMetricsJSON(t *testing.T) {
	out, _, err := run(t, "", "--metrics", "--metrics-format", "json", "example", "-n", "3")
	require.NoError(t, err)

	lines := strings.SplitN(out, "\n", 4)
	require.Len(t, lines, 4)
	var snap map[string]int64
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &snap))
	assert.Equal(t, int64(3), snap["palinview_examples_total"])
	assert.Equal(t, int64(0), snap["palinview_checks_total"])

	_, _, err = run(t, "", "--metrics-format", "xml", "check", "x")
	assert.Error(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := run(t, "", "-v", "check", "level")
	require.NoError(t, err)
	assert.NotContains(t, out, "verdict changed")
	assert.Contains(t, errOut, "verdict changed")

	_, quiet, err := run(t, "", "check", "level")
	require.NoError(t, err)
	assert.Empty(t, quiet)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palinview.yaml")

	out, _, err := run(t, "", "config", "init", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	require.FileExists(t, path)

	_, _, err = run(t, "", "config", "init", "--path", path)
	assert.Error(t, err, "existing file needs --force")

	_, _, err = run(t, "", "config", "init", "--path", path, "--force")
	require.NoError(t, err)

	out, _, err = run(t, "", "--config", path, "config", "show", "--format", "json")
	require.NoError(t, err)
	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, config.DefaultConfig().Window.Title, cfg.Window.Title)

	out, _, err = run(t, "", "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[window]")

	_, _, err = run(t, "", "--config", path, "config", "show", "--format", "ini")
	assert.Error(t, err)
}

func TestConfigInitReplacesBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palinview.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o600))

	_, _, err := run(t, "", "--config", path, "check", "x")
	assert.Error(t, err)

	_, _, err = run(t, "", "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	_, _, err = run(t, "", "--config", path, "check", "x")
	assert.NoError(t, err)
}
