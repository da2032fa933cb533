// Package config loads runtime settings for the CLI and the web service.
//
// Settings are layered: built-in defaults, then an optional YAML file, then
// DADA_POEM_* environment variables. Command-line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "DADA_POEM_"

// Config holds all settings.
type Config struct {
	Addr           string        `yaml:"addr"`
	Lines          int           `yaml:"lines"`
	ModelDir       string        `yaml:"model_dir"`
	OCRLanguages   []string      `yaml:"ocr_languages"`
	TessdataPrefix string        `yaml:"tessdata_prefix"`
	Preprocess     bool          `yaml:"preprocess"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	LogLevel       string        `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Addr:           ":8080",
		Lines:          6,
		ModelDir:       "models",
		OCRLanguages:   []string{"eng"},
		Preprocess:     true,
		MaxUploadBytes: 10 << 20,
		AllowedOrigins: []string{"*"},
		RequestTimeout: 60 * time.Second,
		LogLevel:       "info",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return "", false
		}
		return strings.TrimSpace(v), true
	}

	if port, ok := lookup("PORT"); ok && strings.TrimSpace(port) != "" {
		c.Addr = ":" + strings.TrimSpace(port)
	}
	if v, ok := get("ADDR"); ok && v != "" {
		c.Addr = v
	}
	if v, ok := get("MODEL_DIR"); ok {
		c.ModelDir = v
	}
	if v, ok := get("TESSDATA_PREFIX"); ok {
		c.TessdataPrefix = v
	}
	if v, ok := get("LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := get("OCR_LANGUAGES"); ok {
		c.OCRLanguages = splitList(v, ",+")
	}
	if v, ok := get("ALLOWED_ORIGINS"); ok {
		c.AllowedOrigins = splitList(v, ",")
	}
	if v, ok := get("LINES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sLINES %q: %w", EnvPrefix, v, err)
		}
		c.Lines = n
	}
	if v, ok := get("PREPROCESS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sPREPROCESS %q: %w", EnvPrefix, v, err)
		}
		c.Preprocess = b
	}
	if v, ok := get("MAX_UPLOAD_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %sMAX_UPLOAD_BYTES %q: %w", EnvPrefix, v, err)
		}
		c.MaxUploadBytes = n
	}
	if v, ok := get("REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %sREQUEST_TIMEOUT %q: %w", EnvPrefix, v, err)
		}
		c.RequestTimeout = d
	}
	return nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Lines < 1 {
		errs = append(errs, fmt.Errorf("lines must be at least 1, got %d", c.Lines))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("max_upload_bytes must be positive, got %d", c.MaxUploadBytes))
	}
	if len(c.OCRLanguages) == 0 {
		errs = append(errs, errors.New("at least one OCR language is required"))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("request_timeout must not be negative, got %s", c.RequestTimeout))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Level returns the parsed log level, or info if it does not parse.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func splitList(s, seps string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return strings.ContainsRune(seps, r) })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
