package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-forms/config"
	"github.com/km-arc/go-forms/forms"
)

var keys = []string{
	"APP_NAME", "APP_ENV", "APP_DEBUG", "APP_PORT",
	"FORMS_DATE_ORDER", "FORMS_YEAR_MESSAGES_ON_YEAR", "FORMS_DAY_ATTRIBUTION",
}

// clearEnv blanks every key for the test. t.Setenv restores the previous
// values afterwards; env files only fill keys that are unset, so each key is
// unset again after being registered.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "GoForms", cfg.App.Name)
	assert.Equal(t, "local", cfg.App.Env)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, forms.DMY, cfg.Forms.Order())
	assert.False(t, cfg.Forms.YearMessagesOnYear)
	assert.True(t, cfg.Forms.DayAttribution)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"APP_NAME=Profiles\n"+
			"APP_ENV=production\n"+
			"APP_DEBUG=false\n"+
			"FORMS_DATE_ORDER=MDY\n"+
			"FORMS_YEAR_MESSAGES_ON_YEAR=true\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Profiles", cfg.App.Name)
	assert.Equal(t, "production", cfg.App.Env)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, forms.MDY, cfg.Forms.Order())
	assert.True(t, cfg.Forms.YearMessagesOnYear)
}

func TestLoad_ProcessEnvWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("FORMS_DATE_ORDER", "ymd")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FORMS_DATE_ORDER=mdy\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, forms.YMD, cfg.Forms.Order())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"APP_ENV", "staging"},
		{"APP_PORT", "http"},
		{"FORMS_DATE_ORDER", "ydm"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestValidate_DateOrder(t *testing.T) {
	tests := []struct {
		order string
		ok    bool
	}{
		{"dmy", true},
		{"YMD", true},
		{"mdy", true},
		{"", false},
		{"myd", false},
	}
	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			cfg := &config.Config{
				App:   config.AppConfig{Name: "x", Env: "testing", Port: "8000"},
				Forms: config.FormsConfig{DateOrder: tt.order},
			}
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, config.ErrInvalid)
			}
		})
	}
}
