package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/KimNorgaard/go-dd/internal/testutil"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := testutil.ReadTestData(name)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Check(t *testing.T) {
	path := writeFixture(t, "chart.dd")

	code, stdout, stderr := runCmd(t, "-check", path)
	require.Equal(t, exitOK, code, stderr)
	require.Equal(t, path+": Camellia - Exit This Earth's Atomosphere [Expert] (4 notes, 6 events)\n", stdout)

	code, stdout, _ = runCmd(t, "-check", "-events=drop", path)
	require.Equal(t, exitOK, code)
	require.Contains(t, stdout, "(4 notes, 5 events)")
}

func TestRun_Stdout(t *testing.T) {
	path := writeFixture(t, "legacy.dd")

	code, stdout, stderr := runCmd(t, path)
	require.Equal(t, exitOK, code, stderr)
	require.Contains(t, stdout, "[Metadata]\nArtist: Kobaryo\n")
	require.Contains(t, stdout, "[HitObjects]\n500,0,0,0\n750,3,1,1000\n\n[Events]\n")
}

func TestRun_Write(t *testing.T) {
	path := writeFixture(t, "chart.dd")

	code, stdout, stderr := runCmd(t, "-w", "-log-level=info", path)
	require.Equal(t, exitOK, code, stderr)
	require.Empty(t, stdout)
	require.Contains(t, stderr, `msg="rewrote file"`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "Health: 4.0\n")
	require.Contains(t, string(data), "9,20000,sparkle\n", "unknown events are preserved by default")

	code, _, _ = runCmd(t, "-w", path)
	require.Equal(t, exitOK, code)
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, string(data), string(again))
}

func TestRun_Failures(t *testing.T) {
	good := writeFixture(t, "chart.dd")
	bad := filepath.Join(t.TempDir(), "bad.dd")
	require.NoError(t, os.WriteFile(bad, []byte("[Metadata]\nArtist: A\n"), 0o644))

	code, stdout, stderr := runCmd(t, "-check", bad, good)
	require.Equal(t, exitFail, code)
	require.Equal(t, bad+`: dd: section [Metadata]: missing required key "Title"`+"\n", stderr)
	require.Contains(t, stdout, good+": ")

	code, _, stderr = runCmd(t, "-events=reject", good)
	require.Equal(t, exitFail, code)
	require.Contains(t, stderr, "unknown event type 9")
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCmd(t)
	require.Equal(t, exitUsage, code)
	require.Contains(t, stderr, "usage: ddfmt")

	code, _, stderr = runCmd(t, "-events=keep", "x.dd")
	require.Equal(t, exitUsage, code)
	require.Contains(t, stderr, "invalid config")

	code, _, _ = runCmd(t, "-nope")
	require.Equal(t, exitUsage, code)
}

func TestRun_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "ddfmt.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("check: true\nunknown_events: drop\n"), 0o644))
	t.Setenv("DDFMT_CONFIG", cfg)

	path := writeFixture(t, "chart.dd")
	code, stdout, stderr := runCmd(t, path)
	require.Equal(t, exitOK, code, stderr)
	require.Contains(t, stdout, "(4 notes, 5 events)")
}
