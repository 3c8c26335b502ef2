package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-portfolio/content"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the watcher goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func withConfigFile(t *testing.T, path string) {
	t.Helper()
	prev := configFile
	configFile = path
	t.Cleanup(func() { configFile = prev })
}

func writeContent(t *testing.T, path string) content.Data {
	t.Helper()
	data, err := content.Default()
	require.NoError(t, err)
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return data
}

func TestShowContent(t *testing.T) {
	data, err := content.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	showContent(termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii)), data)
	out := buf.String()

	assert.NotContains(t, out, "\x1b[", "the ascii profile drops colour")
	assert.True(t, strings.HasPrefix(out, data.Profile.Name))
	for _, want := range []string{"SKILLS", "EXPERIENCE", "PROJECTS", "ACHIEVEMENTS", data.Projects[0].Title, data.Projects[0].TechLine(), data.Achievements[0].Year} {
		assert.Contains(t, out, want)
	}
}

func TestValidateContent(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "portfolio.json")
	data := writeContent(t, good)

	var buf bytes.Buffer
	require.NoError(t, validateContent(good, &buf))
	assert.Contains(t, buf.String(), "ok (")
	assert.Contains(t, buf.String(), "4 links")
	assert.Len(t, data.Links, 4)

	bad := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("profile: [unclosed"), 0o600))
	assert.Error(t, validateContent(bad, &buf))

	assert.Error(t, validateContent(filepath.Join(dir, "missing.json"), &buf))
}

func TestWatchContentReportsChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	writeContent(t, path)

	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- watchContent(ctx, path, out)
	}()

	require.Eventually(t, func() bool { return strings.Contains(out.String(), ": ok (") }, 5*time.Second, 20*time.Millisecond)

	// The watcher may only be registered after the first report, so keep saving until it notices.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("{"), 0o600)
		return strings.Contains(out.String(), "invalid")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestLoadSessionFlags(t *testing.T) {
	dir := t.TempDir()
	withConfigFile(t, filepath.Join(dir, "missing.toml"))
	contentPath := filepath.Join(dir, "portfolio.json")
	data := writeContent(t, contentPath)

	tests := []struct {
		name    string
		args    []string
		section string
		muted   bool
		wantErr bool
	}{
		{name: "defaults", args: nil, section: "", muted: true},
		{name: "overrides", args: []string{"--section", "projects", "--muted=false", "--content", contentPath}, section: "projects", muted: false},
		{name: "missing content", args: []string{"--content", filepath.Join(dir, "nope.json")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &cobra.Command{Use: "test"}
			addSessionFlags(c)
			require.NoError(t, c.ParseFlags(tt.args))

			var buf bytes.Buffer
			cfg, got, err := loadSession(c, &buf)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.section, cfg.StartSection)
			assert.Equal(t, tt.muted, cfg.Audio.Muted)
			assert.Equal(t, data.Profile, got.Profile)
		})
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	withConfigFile(t, path)

	var buf bytes.Buffer
	configInitCmd.SetOut(&buf)
	t.Cleanup(func() { configInitCmd.SetOut(nil) })

	require.NoError(t, runConfigInit(configInitCmd, nil))
	assert.Contains(t, buf.String(), path)
	assert.FileExists(t, path)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Audio.Muted)

	assert.Error(t, runConfigInit(configInitCmd, nil), "an existing file is not overwritten")
}
