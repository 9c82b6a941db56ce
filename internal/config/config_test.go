package config

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envMu sync.Mutex

var keys = []string{
	"APP_ENV", "ROSTER_PATH", "OUTPUT_PATH", "OUTPUT_FORMAT", "LOG_LEVEL", "LOG_FORMAT",
	"METRICS_TEXTFILE", "DISTRICT_PRIORITY", "QUOTA_RESERVATION", "STRICT_INPUT",
}

// withEnv clears every config key, then applies kv for the test's duration.
func withEnv(t *testing.T, kv map[string]string) {
	t.Helper()

	envMu.Lock()
	t.Cleanup(envMu.Unlock)

	prev := map[string]*string{}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			tmp := old
			prev[k] = &tmp
		} else {
			prev[k] = nil
		}
		_ = os.Unsetenv(k)
	}
	for k, v := range kv {
		_ = os.Setenv(k, v)
	}

	t.Cleanup(func() {
		for k, old := range prev {
			if old == nil {
				_ = os.Unsetenv(k)
			} else {
				_ = os.Setenv(k, *old)
			}
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	withEnv(t, nil)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, StdStream, cfg.RosterPath)
	assert.Equal(t, StdStream, cfg.OutputPath)
	assert.Equal(t, FormatJSON, cfg.OutputFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.MetricsTextfile)
	assert.True(t, cfg.StrictInput)
	assert.Nil(t, cfg.DistrictPriority)
	assert.Nil(t, cfg.QuotaReservation)
}

func TestLoad_FromEnv(t *testing.T) {
	withEnv(t, map[string]string{
		"ROSTER_PATH":       "roster.json",
		"OUTPUT_FORMAT":     "TABLE",
		"METRICS_TEXTFILE":  "/tmp/admission.prom",
		"DISTRICT_PRIORITY": "yes",
		"QUOTA_RESERVATION": "off",
		"STRICT_INPUT":      "0",
	})

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "roster.json", cfg.RosterPath)
	assert.Equal(t, FormatTable, cfg.OutputFormat)
	assert.Equal(t, "/tmp/admission.prom", cfg.MetricsTextfile)
	require.NotNil(t, cfg.DistrictPriority)
	assert.True(t, *cfg.DistrictPriority)
	require.NotNil(t, cfg.QuotaReservation)
	assert.False(t, *cfg.QuotaReservation)
	assert.False(t, cfg.StrictInput)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	withEnv(t, map[string]string{
		"ROSTER_PATH":       "env.json",
		"DISTRICT_PRIORITY": "true",
	})

	cfg, err := Load([]string{"-in", "flag.json", "-format", "table", "-district=false", "-quota", "-strict=false",
		"-log-level", "debug", "-log-format", "json"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "flag.json", cfg.RosterPath)
	assert.Equal(t, FormatTable, cfg.OutputFormat)
	require.NotNil(t, cfg.DistrictPriority)
	assert.False(t, *cfg.DistrictPriority)
	require.NotNil(t, cfg.QuotaReservation)
	assert.True(t, *cfg.QuotaReservation)
	assert.False(t, cfg.StrictInput)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"invalid strict env", map[string]string{"STRICT_INPUT": "maybe"}, nil},
		{"invalid district env", map[string]string{"DISTRICT_PRIORITY": "sometimes"}, nil},
		{"invalid quota flag", nil, []string{"-quota=perhaps"}},
		{"unknown format", map[string]string{"OUTPUT_FORMAT": "xml"}, nil},
		{"unknown flag", nil, []string{"-bogus"}},
		{"empty roster path", nil, []string{"-in", " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEnv(t, tt.env)
			_, err := Load(tt.args)
			assert.Error(t, err)
		})
	}
}
