package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lineagg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, ""+
		"timeout: 5s\n"+
		"format: json\n"+
		"report: out/report.json\n"+
		"reject_negative: true\n"+
		"no_color: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "out/report.json", cfg.Report)
	assert.True(t, cfg.RejectNegative)
	assert.True(t, cfg.NoColor)
	assert.False(t, cfg.Verbose)
}

func TestLoad_KeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Load(writeConfig(t, "verbose: true\n"))
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
	assert.True(t, cfg.Verbose)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "bad format", content: "format: xml\n", want: "format must be one of [text json]"},
		{name: "negative timeout", content: "timeout: -1s\n", want: "timeout must not be negative"},
		{name: "not yaml", content: "format: [\n", want: "parse config"},
		{name: "bad duration", content: "timeout: soon\n", want: "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_RequiresPath(t *testing.T) {
	_, err := Load("")
	assert.EqualError(t, err, "config path is required")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestApplyEnv_Overrides(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvTimeout:        "250ms",
		EnvFormat:         " JSON ",
		EnvReport:         "r.json",
		EnvNoColor:        "1",
		EnvRejectNegative: "true",
		EnvVerbose:        "false",
	}))
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "r.json", cfg.Report)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.RejectNegative)
	assert.False(t, cfg.Verbose)
	require.NoError(t, cfg.Validate())
}

func TestApplyEnv_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvTimeout: "later",
		EnvVerbose: "maybe",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvTimeout)
	assert.Contains(t, err.Error(), EnvVerbose)
}

func TestApplyEnv_IgnoresUnset(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envMap(nil)))
	assert.Equal(t, Default(), cfg)
}
