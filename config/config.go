package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/km-arc/go-forms/forms"
)

// ErrInvalid is returned, wrapped, when loaded values fail validation.
var ErrInvalid = errors.New("invalid configuration")

// Config is the central typed configuration struct.
type Config struct {
	App   AppConfig
	Forms FormsConfig
}

type AppConfig struct {
	Name  string `validate:"required"`
	Env   string `validate:"oneof=local production testing"`
	Debug bool
	Port  string `validate:"required,numeric"`
}

// FormsConfig holds defaults applied to every DateField the application
// builds.
type FormsConfig struct {
	// DateOrder is the sub-field display order: dmy, ymd or mdy.
	DateOrder string `validate:"dateorder"`
	// YearMessagesOnYear sends "[_Year]" messages to the year sub-field
	// instead of the month sub-field.
	YearMessagesOnYear bool
	// DayAttribution enables the "[_Day] Day invalid" message.
	DayAttribution bool
}

// Order returns the parsed DateOrder, DMY when unset.
func (f FormsConfig) Order() forms.Order {
	o, err := forms.ParseOrder(f.DateOrder)
	if err != nil {
		return forms.DMY
	}
	return o
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("dateorder", validateDateOrder); err != nil {
		panic(fmt.Sprintf("config: register dateorder: %v", err))
	}
	return v
}

func validateDateOrder(fl validator.FieldLevel) bool {
	_, err := forms.ParseOrder(fl.Field().String())
	return err == nil
}

// Load reads the env files (".env" when none are given) and builds a
// validated Config from the environment. Missing files are skipped and
// variables already set in the process win over file values.
//
//	cfg, err := config.Load()
func Load(envFiles ...string) (*Config, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "GoForms"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", true),
			Port:  env("APP_PORT", "8000"),
		},
		Forms: FormsConfig{
			DateOrder:          env("FORMS_DATE_ORDER", "dmy"),
			YearMessagesOnYear: envBool("FORMS_YEAR_MESSAGES_ON_YEAR", false),
			DayAttribution:     envBool("FORMS_DAY_ATTRIBUTION", true),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags of every section.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w: %w", ErrInvalid, err)
	}
	return nil
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
