package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	config   string
	audioDir string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	audioDir := filepath.Join(dir, "audio")
	body := fmt.Sprintf(`
reminder:
  backend: file
  file_path: %s
audio:
  dir: %s
  retention: 1h
metrics:
  enabled: false
`, filepath.Join(dir, "reminders.json"), audioDir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return fixture{config: path, audioDir: audioDir}
}

func run(t *testing.T, f fixture, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", f.config}, args...))
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestHandle(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "Hi there! How can I help you today?\n", run(t, f, "handle", "hello"))
	assert.Equal(t, "Goodbye! Have a great day!\n", run(t, f, "handle", "bye", "for", "now"))
}

func TestReminders(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "No reminders.\n", run(t, f, "reminders", "list"))

	assert.Equal(t, "Reminder set successfully: call mom\n", run(t, f, "handle", "remind", "me", "to", "call", "mom"))
	list := run(t, f, "reminders", "list")
	assert.True(t, strings.HasSuffix(list, "  call mom\n"), list)

	assert.Equal(t, "All reminders cleared\n", run(t, f, "reminders", "clear"))
	assert.Equal(t, "No reminders.\n", run(t, f, "reminders", "list"))
}

func TestSweep(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(f.audioDir, 0o755))

	old := time.Now().Add(-2 * time.Hour).Unix()
	fresh := time.Now().Unix()
	for _, name := range []string{
		fmt.Sprintf("%d.000000-aaaaaaaa.mp3", old),
		fmt.Sprintf("%d.000000-bbbbbbbb.mp3", fresh),
		"garbage.mp3",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(f.audioDir, name), []byte("x"), 0o644))
	}

	assert.Equal(t, "deleted=1 skipped=1 kept=1\n", run(t, f, "sweep"))
}

func TestHandle_RequiresText(t *testing.T) {
	f := newFixture(t)
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", f.config, "handle"})
	assert.Error(t, cmd.Execute())
}

func TestSpeak_NotConfigured(t *testing.T) {
	f := newFixture(t)
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", f.config, "speak", "hello"})
	assert.Error(t, cmd.Execute())
}
