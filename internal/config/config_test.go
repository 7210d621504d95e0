package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aerotools/avlout/pkg/avlout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, avlout.SessionFormats(), cfg.Formats())
	assert.NotContains(t, cfg.Formats(), avlout.FormatEigenvalues)
	assert.NotContains(t, cfg.Formats(), avlout.FormatSystemMatrix)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlout.yaml")
	content := `log_level: debug
pretty: true
concurrency: 4
strictness:
  FS: lenient
  vm: strict
outputs:
  - Totals
  - stripforces
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Pretty)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, []avlout.Format{avlout.FormatTotals, avlout.FormatStripForces}, cfg.Formats())

	opts := cfg.Options(zap.NewNop())
	assert.Equal(t, 4, opts.Concurrency)
	assert.Equal(t, avlout.Lenient, opts.StrictnessFor(avlout.FormatStripForces))
	assert.Equal(t, avlout.Strict, opts.StrictnessFor(avlout.FormatStripShearMoments))
	assert.Equal(t, avlout.Strict, opts.StrictnessFor(avlout.FormatTotals))
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "log_level: loud\n"},
		{"unknown extension", "strictness:\n  xyz: lenient\n"},
		{"bad strictness", "strictness:\n  ft: sloppy\n"},
		{"bad output", "outputs: [Drag]\n"},
		{"negative concurrency", "concurrency: -1\n"},
		{"not yaml", "log_level: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "avlout.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlout.yaml")
	cfg := DefaultConfig()
	cfg.Pretty = true
	cfg.Strictness["fe"] = "lenient"
	cfg.Outputs = []string{"ElementForces"}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "error"
	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.WarnLevel))
	assert.True(t, logger.Core().Enabled(zap.ErrorLevel))
}
