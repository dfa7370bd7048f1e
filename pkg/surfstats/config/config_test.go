package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Report.SigFigs)
	assert.Equal(t, 20.0, cfg.Report.ColumnWidth)
	assert.Equal(t, ".", cfg.Report.OutputDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "", cfg.Plot.Dir)
	assert.Equal(t, 480, cfg.Plot.Width)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SURFSTATS_REPORT_SIG_FIGS", "4")
	t.Setenv("SURFSTATS_LOGGING_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Report.SigFigs)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFileOverlay(t *testing.T) {
	t.Setenv("SURFSTATS_REPORT_SIG_FIGS", "4")
	path := filepath.Join(t.TempDir(), "surfstats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  column_width: 25\nplot:\n  dir: plots\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25.0, cfg.Report.ColumnWidth)
	assert.Equal(t, "plots", cfg.Plot.Dir)
	// keys absent from the file keep their env value
	assert.Equal(t, 4, cfg.Report.SigFigs)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"sig figs", map[string]string{"SURFSTATS_REPORT_SIG_FIGS": "0"}},
		{"width", map[string]string{"SURFSTATS_REPORT_COLUMN_WIDTH": "-1"}},
		{"level", map[string]string{"SURFSTATS_LOGGING_LEVEL": "loud"}},
		{"format", map[string]string{"SURFSTATS_LOGGING_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load("")
			require.NoError(t, err)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadUnparsable(t *testing.T) {
	t.Setenv("SURFSTATS_REPORT_SIG_FIGS", "three")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadDefersValidation(t *testing.T) {
	t.Setenv("SURFSTATS_REPORT_SIG_FIGS", "0")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Report.SigFigs)

	cfg.Report.SigFigs = 3
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(LoggingConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", "file", "a.csv")

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "a.csv", rec["file"])

	_, err = NewLogger(LoggingConfig{Level: "info", Format: "xml"}, &buf)
	assert.Error(t, err)
}
