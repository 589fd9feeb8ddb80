package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

type testHome struct {
	dir   string
	state string
	clip  string
}

func newTestHome(t *testing.T) testHome {
	t.Helper()

	dir := t.TempDir()
	return testHome{
		dir:   dir,
		state: filepath.Join(dir, "state.json"),
		clip:  filepath.Join(dir, "clipboard.txt"),
	}
}

func (h testHome) args(args ...string) []string {
	return append([]string{
		"--state", h.state,
		"--config", filepath.Join(h.dir, "config.yaml"),
		"--env-file", filepath.Join(h.dir, ".env"),
		"--clipboard-file", h.clip,
	}, args...)
}

func (h testHome) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(h.args(args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func (h testHome) mustRun(t *testing.T, args ...string) string {
	t.Helper()

	stdout, stderr, err := h.run(t, args...)
	require.NoError(t, err, "stderr: %s", stderr)
	return stdout
}

var hexLine = regexp.MustCompile(`^[1-5]  #[0-9A-F]{6}`)

func paletteLines(t *testing.T, out string) []string {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5, out)
	return lines
}

func TestRootWithoutTerminalGenerates(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	for _, line := range paletteLines(t, home.mustRun(t)) {
		require.Regexp(t, hexLine, line)
	}

	_, err := os.Stat(home.state)
	require.NoError(t, err, "state is saved after generating")
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	t.Parallel()

	first := newTestHome(t).mustRun(t, "generate", "--seed", "99")
	second := newTestHome(t).mustRun(t, "generate", "--seed", "99")
	require.Equal(t, first, second)

	other := newTestHome(t).mustRun(t, "generate", "--seed", "100")
	require.NotEqual(t, first, other)
}

func TestGenerateWithLocksKeepsColors(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	before := paletteLines(t, home.mustRun(t, "generate", "--seed", "1"))
	after := paletteLines(t, home.mustRun(t, "generate", "--seed", "2", "--lock", "2,4"))

	require.Equal(t, before[1]+"  [locked]", after[1])
	require.Equal(t, before[3]+"  [locked]", after[3])
	require.NotEqual(t, before[0], after[0])
}

func TestGenerateFormatAndCount(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	out := home.mustRun(t, "generate", "--format", "rgb", "--count", "3")
	for _, line := range paletteLines(t, out) {
		require.Regexp(t, `^[1-5]  rgb\(\d+,\d+,\d+\)$`, line)
	}

	history := strings.Split(strings.TrimSpace(home.mustRun(t, "history")), "\n")
	require.Len(t, history, 3)

	_, _, err := home.run(t, "generate", "--count", "0")
	require.Error(t, err)
}

func TestGenerateJSON(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	out := home.mustRun(t, "generate", "--mode", "triadic", "--json")

	var doc struct {
		Palette []struct {
			Hex string `json:"hex"`
		} `json:"palette"`
		Mode      string `json:"mode"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Palette, 5)
	require.Equal(t, "triadic", doc.Mode)
	require.NotEmpty(t, doc.Timestamp)

	history := strings.Split(strings.TrimSpace(home.mustRun(t, "history", "list")), "\n")
	require.Len(t, history, 1, "a mode change counts as the requested generation")
}

func TestGenerateRejectsBadFlags(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)

	_, _, err := home.run(t, "generate", "--mode", "neon")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to generate: parsing --mode")

	_, _, err = home.run(t, "generate", "--lock", "6")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Slots are numbered 1 to 5.")
}

func TestModeCommand(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	require.Contains(t, home.mustRun(t, "mode"), "* complementary")

	paletteLines(t, home.mustRun(t, "mode", "tetradic"))
	require.Contains(t, home.mustRun(t, "mode"), "* tetradic")

	_, _, err := home.run(t, "mode", "square")
	require.Error(t, err)
}

func TestFormatCommand(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	home.mustRun(t, "generate")
	require.Equal(t, "hex\n", home.mustRun(t, "format"))

	for _, line := range paletteLines(t, home.mustRun(t, "format", "hsl")) {
		require.Regexp(t, `^[1-5]  hsl\(\d+,\d+%,\d+%\)$`, line)
	}
	require.Equal(t, "hsl\n", home.mustRun(t, "format"))
}

func TestLockCommand(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	lines := paletteLines(t, home.mustRun(t, "lock", "1", "5"))
	require.True(t, strings.HasSuffix(lines[0], "[locked]"))
	require.True(t, strings.HasSuffix(lines[4], "[locked]"))
	require.False(t, strings.HasSuffix(lines[2], "[locked]"))

	lines = paletteLines(t, home.mustRun(t, "lock", "1"))
	require.False(t, strings.HasSuffix(lines[0], "[locked]"))

	_, _, err := home.run(t, "lock", "9")
	require.Error(t, err)

	_, _, err = home.run(t, "lock", "two")
	require.Error(t, err)
}

func TestExportCommandCopies(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	home.mustRun(t, "generate")

	stdout, stderr, err := home.run(t, "export", "css", "--copy")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, ":root {\n  --color-1: #"))
	require.Contains(t, stderr, "Copied to clipboard!")

	clip, err := os.ReadFile(home.clip)
	require.NoError(t, err)
	require.Equal(t, strings.TrimSuffix(stdout, "\n"), string(clip))

	tailwind := home.mustRun(t, "export", "tailwind")
	require.Contains(t, tailwind, "'palette-5': '#")

	_, _, err = home.run(t, "export", "scss")
	require.Error(t, err)
}

func TestExportCommandPublishesToRepository(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	repoDir := filepath.Join(home.dir, "tokens")
	home.mustRun(t, "generate", "--seed", "3")

	_, _, err := home.run(t, "export", "css", "--repo", repoDir)
	require.Error(t, err, "repository must exist without --init")

	_, stderr, err := home.run(t, "export", "css", "--repo", repoDir, "--init", "--diff")
	require.NoError(t, err)
	require.Contains(t, stderr, "committed")
	require.Contains(t, stderr, "+++ b/palette.css")

	repo, err := git.PlainOpen(repoDir)
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)
	obj, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(obj.Message, "palette(complementary): #"))

	for _, name := range []string{"palette.css", "tailwind.palette.js", "palette.json"} {
		_, err := os.Stat(filepath.Join(repoDir, name))
		require.NoError(t, err, name)
	}
}

func TestExportRepublishSkipsUnchangedPalette(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	repoDir := filepath.Join(home.dir, "tokens")
	home.mustRun(t, "generate", "--seed", "3")

	_, stderr, err := home.run(t, "export", "css", "--repo", repoDir, "--init")
	require.NoError(t, err)
	require.Contains(t, stderr, "committed")

	_, stderr, err = home.run(t, "export", "css", "--repo", repoDir, "--diff")
	require.NoError(t, err)
	require.Contains(t, stderr, "already holds this palette")
	require.NotContains(t, stderr, "timestamp")

	repo, err := git.PlainOpen(repoDir)
	require.NoError(t, err)
	iter, err := repo.Log(&git.LogOptions{})
	require.NoError(t, err)
	commits := 0
	require.NoError(t, iter.ForEach(func(*object.Commit) error {
		commits++
		return nil
	}))
	require.Equal(t, 1, commits)

	home.mustRun(t, "generate")
	_, stderr, err = home.run(t, "export", "css", "--repo", repoDir)
	require.NoError(t, err)
	require.Contains(t, stderr, "committed")
}

func TestExportSubdir(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	repoDir := filepath.Join(home.dir, "tokens")
	home.mustRun(t, "generate", "--seed", "3")

	_, _, err := home.run(t, "export", "json", "--repo", repoDir, "--init", "--subdir", "design")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(repoDir, "design", "palette.json"))
	require.NoError(t, err)

	_, _, err = home.run(t, "export", "json", "--repo", repoDir, "--subdir", "../outside")
	require.Error(t, err)
	require.Contains(t, err.Error(), "relative --subdir")
}

func TestHistoryCommands(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	require.Equal(t, "No palettes yet\n", home.mustRun(t, "history"))

	home.mustRun(t, "generate", "-n", "3")
	entries := strings.Split(strings.TrimSpace(home.mustRun(t, "history", "list")), "\n")
	require.Len(t, entries, 3)

	second := strings.Fields(entries[1])[1:]
	lines := paletteLines(t, home.mustRun(t, "history", "load", "2"))
	for i, line := range lines {
		require.Contains(t, line, second[i])
	}

	_, _, err := home.run(t, "history", "load", "11")
	require.Error(t, err)

	_, _, err = home.run(t, "history", "clear")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--yes")

	require.Equal(t, "History cleared\n", home.mustRun(t, "history", "clear", "--yes"))
	require.Equal(t, "No palettes yet\n", home.mustRun(t, "history"))
}

func TestInfoAndLanguage(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	out := home.mustRun(t, "info")
	require.Contains(t, out, "Mode: Complementary")
	require.Regexp(t, `Contrast: (Very dark|Dark|Balanced|Light)`, out)
	require.Regexp(t, `Temperature: (Warm|Cool)`, out)

	require.Equal(t, "Français (fr)\n", home.mustRun(t, "lang", "fr-CA"))
	out = home.mustRun(t, "info")
	require.Contains(t, out, "Mode: Complémentaire")
	require.Contains(t, out, "Contraste:")

	require.Equal(t, "English (en)\n", home.mustRun(t, "lang", "ja"))
}

func TestCopyCommand(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	lines := paletteLines(t, home.mustRun(t, "generate"))

	stdout, stderr, err := home.run(t, "copy", "3")
	require.NoError(t, err)
	require.Equal(t, strings.Fields(lines[2])[1]+"\n", stdout)
	require.Contains(t, stderr, "Copied to clipboard!")

	clip, err := os.ReadFile(home.clip)
	require.NoError(t, err)
	require.Equal(t, strings.TrimSpace(stdout), string(clip))

	_, _, err = home.run(t, "copy", "0")
	require.Error(t, err)
}

func TestInvalidConfigurationFails(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home.dir, "config.yaml"), []byte("default_mode: neon\n"), 0o644))

	_, _, err := home.run(t, "generate")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to start: loading configuration")
}

func TestCorruptStateStartsFresh(t *testing.T) {
	t.Parallel()

	home := newTestHome(t)
	require.NoError(t, os.WriteFile(home.state, []byte("{not json"), 0o644))

	paletteLines(t, home.mustRun(t, "generate"))
	history := strings.Split(strings.TrimSpace(home.mustRun(t, "history")), "\n")
	require.Len(t, history, 1)
}

func TestCommandErrorFormat(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := newCommandError("export", "css", cause, "Try again.")
	require.Equal(t, "Failed to export: css\n\nError: boom\n\nSuggestion: Try again.", err.Error())
	require.ErrorIs(t, err, cause)
}
