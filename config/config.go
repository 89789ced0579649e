package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Course Compass specifics
	Storage StorageConfig
	Advisor AdvisorConfig
	Session SessionConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig points at the generated profile files and the CSV ledgers.
type StorageConfig struct {
	ProfileDir string
	LogsDir    string
}

type AdvisorConfig struct {
	Temperature float64
}

type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `mapstructure:"providers"`
	FallbackEnabled bool             `mapstructure:"fallback_enabled"`
	MaxTotalTimeout time.Duration    `mapstructure:"max_total_timeout"` // bound for one model call, fallbacks included
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `mapstructure:"name"`
	Enabled  bool   `mapstructure:"enabled"`
	Priority int    `mapstructure:"priority"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Model    string `mapstructure:"model"`
	Timeout  string `mapstructure:"timeout"`
}

// Default provider used when only OPENAI_API_KEY is set.
const (
	DefaultProviderName  = "openai"
	DefaultProviderModel = "gpt-4o-mini"
	OpenAIAPIKeyEnv      = "OPENAI_API_KEY"
)

var ErrNoProviders = errors.New("no LLM providers configured")

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Course Compass specifics
	cfg.Storage.ProfileDir = v.GetString("storage.profile_dir")
	cfg.Storage.LogsDir = v.GetString("storage.logs_dir")
	cfg.Advisor.Temperature = v.GetFloat64("advisor.temperature")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.MaxTotalTimeout = v.GetDuration("llm.max_total_timeout")
	if v.IsSet("llm.providers") {
		if err := v.UnmarshalKey("llm.providers", &cfg.LLM.Providers); err != nil {
			return nil, fmt.Errorf("invalid llm.providers: %w", err)
		}
	}
	for i := range cfg.LLM.Providers {
		cfg.LLM.Providers[i].APIKey = expandEnvVar(v, cfg.LLM.Providers[i].APIKey)
	}

	if len(cfg.LLM.Providers) == 0 {
		if key := lookupEnv(v, OpenAIAPIKeyEnv); key != "" {
			cfg.LLM.Providers = []ProviderConfig{{
				Name:     DefaultProviderName,
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    DefaultProviderModel,
			}}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 7860)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", false)

	v.SetDefault("storage.profile_dir", "me")
	v.SetDefault("storage.logs_dir", "logs")
	v.SetDefault("advisor.temperature", 0.2)
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.max_sessions", 1000)

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", false)
	v.SetDefault("llm.max_total_timeout", "30s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	return lookupEnv(v, value[2:len(value)-1])
}

func lookupEnv(v *viper.Viper, name string) string {
	// viper first (handles both env and config), then the raw environment
	if val := v.GetString(strings.ToLower(name)); val != "" {
		return val
	}
	return os.Getenv(name)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("%w: add llm.providers to config.yaml or set %s", ErrNoProviders, OpenAIAPIKeyEnv)
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return errors.New("no enabled LLM providers")
	}
	if cfg.MaxTotalTimeout < 0 {
		return errors.New("llm.max_total_timeout must not be negative")
	}

	return nil
}
