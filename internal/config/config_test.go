package config

import (
	"testing"
	"time"

	"github.com/AvengeMedia/artspace/internal/errdefs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/home/user/.config/artspace/config.yaml"

func newTestLoader(env map[string]string) (*Loader, afero.Fs) {
	fsys := afero.NewMemMapFs()
	l := NewLoader(fsys)
	l.getenv = func(key string) string { return env[key] }
	return l, fsys
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	l, _ := newTestLoader(nil)

	cfg, err := l.Load(testPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	l, fsys := newTestLoader(nil)
	require.NoError(t, afero.WriteFile(fsys, testPath, []byte(`description_mode: inline
image_width: 64
mouse: false
`), 0644))

	cfg, err := l.Load(testPath)
	require.NoError(t, err)
	assert.Equal(t, DescriptionInline, cfg.DescriptionMode)
	assert.Equal(t, 64, cfg.ImageWidth)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, 0.6, cfg.ImageAlpha)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	l, fsys := newTestLoader(map[string]string{
		EnvDescriptionMode: "INLINE",
		EnvLogLevel:        "debug",
	})
	require.NoError(t, afero.WriteFile(fsys, testPath, []byte("description_mode: tooltip\n"), 0644))

	cfg, err := l.Load(testPath)
	require.NoError(t, err)
	assert.Equal(t, DescriptionInline, cfg.DescriptionMode)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantContains string
	}{
		{"bad yaml", "image_width: [", "failed to parse"},
		{"bad mode", "description_mode: popup\n", "description_mode"},
		{"too narrow", "image_width: 2\n", "image_width"},
		{"too wide", "image_width: 500\n", "image_width"},
		{"bad alpha", "image_alpha: 1.5\n", "image_alpha"},
		{"bad level", "log_level: loud\n", "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, fsys := newTestLoader(nil)
			require.NoError(t, afero.WriteFile(fsys, testPath, []byte(tt.content), 0644))

			_, err := l.Load(testPath)
			require.Error(t, err)
			assert.True(t, errdefs.IsType(err, errdefs.ErrTypeConfig))
			assert.Contains(t, err.Error(), tt.wantContains)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	l, fsys := newTestLoader(nil)

	cfg := Default()
	cfg.DescriptionMode = DescriptionInline
	cfg.ImageWidth = 32
	require.NoError(t, l.Save(testPath, cfg))

	exists, err := afero.Exists(fsys, testPath)
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := l.Load(testPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveRejectsInvalid(t *testing.T) {
	l, fsys := newTestLoader(nil)

	cfg := Default()
	cfg.ImageWidth = 0
	err := l.Save(testPath, cfg)
	require.Error(t, err)

	exists, _ := afero.Exists(fsys, testPath)
	assert.False(t, exists)
}

func TestBackup(t *testing.T) {
	l, fsys := newTestLoader(nil)
	l.now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }

	_, err := l.Backup(testPath)
	require.Error(t, err)

	original := []byte("image_width: 64\n")
	require.NoError(t, afero.WriteFile(fsys, testPath, original, 0644))

	backupPath, err := l.Backup(testPath)
	require.NoError(t, err)
	assert.Equal(t, testPath+".backup.2025-03-04_05-06-07", backupPath)

	data, err := afero.ReadFile(fsys, backupPath)
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/artspace/config.yaml", DefaultPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")
	assert.Equal(t, "/home/someone/.config/artspace/config.yaml", DefaultPath())

	t.Setenv("XDG_STATE_HOME", "")
	assert.Equal(t, "/home/someone/.local/state/artspace/artspace.log", LogPath())
}
