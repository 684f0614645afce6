// Package config loads CLI settings from a YAML file and the environment.
// Flags are applied on top by the command layer.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvTimeout        = "LINEAGG_TIMEOUT"
	EnvFormat         = "LINEAGG_FORMAT"
	EnvReport         = "LINEAGG_REPORT"
	EnvNoColor        = "LINEAGG_NO_COLOR"
	EnvRejectNegative = "LINEAGG_REJECT_NEGATIVE"
	EnvVerbose        = "LINEAGG_VERBOSE"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds run settings. Zero Timeout means no deadline.
type Config struct {
	Timeout        time.Duration `yaml:"timeout" validate:"min=0"`
	Format         string        `yaml:"format" validate:"oneof=text json"`
	Report         string        `yaml:"report"`
	NoColor        bool          `yaml:"no_color"`
	RejectNegative bool          `yaml:"reject_negative"`
	Verbose        bool          `yaml:"verbose"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{Format: FormatText}
}

// Load reads a YAML config from disk over the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("config path is required")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
// Pass os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var problems []string

	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", EnvTimeout, err))
		} else {
			c.Timeout = d
		}
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		c.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvReport); ok {
		c.Report = v
	}
	for name, dst := range map[string]*bool{
		EnvNoColor:        &c.NoColor,
		EnvRejectNegative: &c.RejectNegative,
		EnvVerbose:        &c.Verbose,
	} {
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %q is not a boolean", name, v))
			continue
		}
		*dst = b
	}

	if len(problems) > 0 {
		return fmt.Errorf("environment config invalid: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Validate checks field constraints and reports every violation at once.
func (c Config) Validate() error {
	err := newValidator().Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, describe(fe))
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("%s must not be negative", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}
