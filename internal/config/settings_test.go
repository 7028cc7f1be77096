package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParseRCFile(t *testing.T) {
	s := Default()
	err := s.parse(strings.NewReader(`
# window
width = 800
Height=600
log_level = DEBUG
sound = false
palette = rainbow
unknown = ignored
not a pair
multiplier = 37
modulus = 120
`))
	require.NoError(t, err)
	assert.Equal(t, 800, s.Width)
	assert.Equal(t, 600, s.Height)
	assert.Equal(t, "debug", s.LogLevel)
	assert.False(t, s.Sound)
	assert.Equal(t, PaletteRainbow, s.Palette)
	assert.Equal(t, 37, s.Multiplier)
	assert.Equal(t, 120, s.Modulus)
	assert.NoError(t, s.Validate())
}

func TestParseRCFileBadNumber(t *testing.T) {
	s := Default()
	err := s.parse(strings.NewReader("width = wide\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CIRCLES_WIDTH":   "1280",
		"CIRCLES_PALETTE": "rainbow",
		"CIRCLES_SOUND":   "0",
	}
	s := Default()
	err := s.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	require.NoError(t, err)
	assert.Equal(t, 1280, s.Width)
	assert.Equal(t, PaletteRainbow, s.Palette)
	assert.False(t, s.Sound)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		field  string
	}{
		{"narrow window", func(s *Settings) { s.Width = 100 }, "width"},
		{"short window", func(s *Settings) { s.Height = 10 }, "height"},
		{"bad level", func(s *Settings) { s.LogLevel = "loud" }, "loglevel"},
		{"bad palette", func(s *Settings) { s.Palette = "sepia" }, "palette"},
		{"small multiplier", func(s *Settings) { s.Multiplier = 1 }, "multiplier"},
		{"small modulus", func(s *Settings) { s.Modulus = 2 }, "modulus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rc")
	require.NoError(t, os.WriteFile(path, []byte("height = 900\nexport_dir = out\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 900, s.Height)
	assert.Equal(t, "out", s.ExportDir)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rc")
	require.NoError(t, os.WriteFile(path, []byte("palette = neon\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette")
}

func TestExportPath(t *testing.T) {
	s := Default()
	p, err := s.ExportPath("a.png")
	require.NoError(t, err)
	assert.Equal(t, "a.png", p)

	s.ExportDir = filepath.Join(t.TempDir(), "exports")
	p, err = s.ExportPath("a.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.ExportDir, "a.png"), p)
	assert.DirExists(t, s.ExportDir)
}
