package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/linemark/internal/domain"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	logger := zerolog.New(io.Discard)
	cmd := newRootCmd(&logger)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCLI_PositionalFile(t *testing.T) {
	path := writeInput(t, "Hello World\n\nALLCAPS\n")

	out, err := runCLI(t, path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], " - Hello World[2]"))
	assert.True(t, strings.HasSuffix(lines[1], " - ALLCAPS[7]"))
}

func TestCLI_RevisionFlag(t *testing.T) {
	path := writeInput(t, "A\n\nB\n")

	out, err := runCLI(t, "--file", path, "--revision", "1")
	require.NoError(t, err)

	want := strings.Join([]string{
		"00000000-0000-0000-0000-000000000000 - A[1]",
		"00000000-0000-0000-0000-000000000000 - [0]",
		"00000000-0000-0000-0000-000000000000 - B[1]",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestCLI_EnvFile(t *testing.T) {
	path := writeInput(t, "xY\n")
	t.Setenv("LINEMARK_FILE", path)

	out, err := runCLI(t)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), " - xY[1]"))
}

func TestCLI_ConfigFile(t *testing.T) {
	path := writeInput(t, "Q\n   \n")
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	content := "file = " + `"` + filepath.ToSlash(path) + `"` + "\nrevision = 2\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	out, err := runCLI(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 2)
}

func TestCLI_MissingFile(t *testing.T) {
	out, err := runCLI(t, filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, domain.ErrFileNotFound), "got %v", err)
	assert.Empty(t, out)
}

func TestCLI_InvalidRevision(t *testing.T) {
	path := writeInput(t, "x\n")
	_, err := runCLI(t, path, "--revision", "5")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
