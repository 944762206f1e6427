package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testViper(values map[string]any) *viper.Viper {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(testViper(nil))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, SourceEmbedded, cfg.DataSource)
	assert.Equal(t, []string{"racefinder.app", "www.racefinder.app"}, cfg.TLSDomains)

	base := cfg.BaseFilter()
	assert.Equal(t, 6, base.WindowMonths)
	assert.Equal(t, []string{"CA", "OR", "WA"}, base.States)
	assert.False(t, cfg.HasPostgres())
}

func TestLoadBaseFilterOverride(t *testing.T) {
	cfg, err := load(testViper(map[string]any{
		"RACE_WINDOW_MONTHS": "12",
		"RACE_STATES":        " NY, NJ ,,CT",
	}))
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.WindowMonths)
	assert.Equal(t, []string{"NY", "NJ", "CT"}, cfg.States)
}

func TestLoadDisabledBaseFilter(t *testing.T) {
	cfg, err := load(testViper(map[string]any{
		"RACE_WINDOW_MONTHS": 0,
		"RACE_STATES":        "",
	}))
	require.NoError(t, err)

	assert.Zero(t, cfg.BaseFilter().WindowMonths)
	assert.Empty(t, cfg.BaseFilter().States)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		wantErr bool
	}{
		{"file without path", map[string]any{"DATA_SOURCE": "file"}, true},
		{"file with path", map[string]any{"DATA_SOURCE": "file", "DATA_FILE": "races.json"}, false},
		{"postgres without credentials", map[string]any{"DATA_SOURCE": "postgres"}, true},
		{"postgres with url", map[string]any{"DATA_SOURCE": "Postgres", "DATABASE_URL": "postgres://x"}, false},
		{"unknown source", map[string]any{"DATA_SOURCE": "s3"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(testViper(tt.values))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPass: "p", DBHost: "h", DBPort: "5432", DBName: "d", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", cfg.PostgresDSN())

	cfg.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", cfg.PostgresDSN())
}
