// Package config loads the settings of the soyutil command from YAML and
// from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/npillmayer/schuko/tracing"
	"github.com/splix/soyutils-requirejs/bidi"
	"github.com/splix/soyutils-requirejs/wordbreak"
	"gopkg.in/yaml.v3"
)

// Config is the file representation of the settings.
type Config struct {
	Bidi struct {
		// Context is the context direction of formatters: ltr, rtl or unknown.
		// If it is "locale", the direction of Locale is used.
		Context string `yaml:"context"`
		Locale  string `yaml:"locale"`
		// Classifier selects the char classes: practical or ucd.
		Classifier string `yaml:"classifier"`
	} `yaml:"bidi"`
	WordBreak struct {
		Target   string `yaml:"target"`
		MaxChars int    `yaml:"max_chars"`
	} `yaml:"wordbreak"`
	Trace string `yaml:"trace"`
}

// Settings are the resolved, typed settings.
type Settings struct {
	Context    bidi.Direction
	Classifier bidi.Classifier
	Target     wordbreak.Target
	MaxChars   int
	TraceLevel tracing.TraceLevel
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// Load loads the configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Bidi.Context == "" {
		cfg.Bidi.Context = "ltr"
	}
	if cfg.Bidi.Locale == "" {
		cfg.Bidi.Locale = bidi.DefaultLocale
	}
	if cfg.Bidi.Classifier == "" {
		cfg.Bidi.Classifier = "practical"
	}
	if cfg.WordBreak.Target == "" {
		cfg.WordBreak.Target = wordbreak.Generic.String()
	}
	if cfg.WordBreak.MaxChars <= 0 {
		cfg.WordBreak.MaxChars = 10
	}
	if cfg.Trace == "" {
		cfg.Trace = "Error"
	}
}

// Environment variables overriding settings of the configuration file.
const (
	EnvContext    = "SOYUTIL_CONTEXT"
	EnvLocale     = "SOYUTIL_LOCALE"
	EnvClassifier = "SOYUTIL_CLASSIFIER"
	EnvTarget     = "SOYUTIL_WBR_TARGET"
	EnvMaxChars   = "SOYUTIL_WBR_MAX_CHARS"
	EnvTrace      = "SOYUTIL_TRACE"
)

// ApplyEnv overrides settings from environment variables. Variables missing
// from the process environment are looked up in envFiles, which are in
// dotenv format. Without envFiles, a .env file in the current directory is
// read, if present.
func (cfg *Config) ApplyEnv(envFiles ...string) error {
	dotenv, err := godotenv.Read(envFiles...)
	if err != nil {
		if len(envFiles) > 0 {
			return fmt.Errorf("reading env file: %w", err)
		}
		dotenv = nil // best effort for .env
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(dotenv[key])
	}
	for key, setting := range map[string]*string{
		EnvContext:    &cfg.Bidi.Context,
		EnvLocale:     &cfg.Bidi.Locale,
		EnvClassifier: &cfg.Bidi.Classifier,
		EnvTarget:     &cfg.WordBreak.Target,
		EnvTrace:      &cfg.Trace,
	} {
		if v := lookup(key); v != "" {
			*setting = v
		}
	}
	if v := lookup(EnvMaxChars); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxChars, err)
		}
		if n > 0 {
			cfg.WordBreak.MaxChars = n
		}
	}
	return nil
}

// Resolve validates the configuration and converts it to typed settings.
func (cfg *Config) Resolve() (*Settings, error) {
	s := &Settings{MaxChars: cfg.WordBreak.MaxChars}
	var err error
	if strings.EqualFold(cfg.Bidi.Context, "locale") {
		s.Context = bidi.LocaleDirection(cfg.Bidi.Locale)
	} else if s.Context, err = bidi.ParseDirection(cfg.Bidi.Context); err != nil {
		return nil, fmt.Errorf("bidi context: %w", err)
	}
	switch strings.ToLower(cfg.Bidi.Classifier) {
	case "practical":
		s.Classifier = bidi.Practical
	case "ucd":
		s.Classifier = bidi.UCD
	default:
		return nil, fmt.Errorf("bidi classifier: unknown classifier %q", cfg.Bidi.Classifier)
	}
	if s.Target, err = wordbreak.ParseTarget(cfg.WordBreak.Target); err != nil {
		return nil, fmt.Errorf("wordbreak: %w", err)
	}
	if s.TraceLevel, err = ParseTraceLevel(cfg.Trace); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseTraceLevel converts a level name (Debug, Info, Error or their
// initials) to a trace level.
func ParseTraceLevel(l string) (tracing.TraceLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(l)) {
	case "D", "DEBUG":
		return tracing.LevelDebug, nil
	case "I", "INFO":
		return tracing.LevelInfo, nil
	case "E", "ERROR", "":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", l)
}
