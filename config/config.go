package config

import (
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

	// LLM Provider Abstraction
	LLM LLMConfig

	// Activity collaborators
	ActivityService ActivityServiceConfig
	Catalog         CatalogConfig

	// Conversational agent
	Agent     AgentConfig
	RateLimit RateLimitConfig
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

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	RetryMaxDelay   string           `yaml:"retry_max_delay"`
	BackoffFactor   float64          `yaml:"backoff_factor"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name           string `yaml:"name"`
	Enabled        bool   `yaml:"enabled"`
	Priority       int    `yaml:"priority"`
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url,omitempty"`
	Model          string `yaml:"model"`
	EmbeddingModel string `yaml:"embedding_model,omitempty"`
	APIVersion     string `yaml:"api_version,omitempty"` // azure only
	Timeout        string `yaml:"timeout"`
}

// ActivityServiceConfig points at the Activity CRUD HTTP service.
type ActivityServiceConfig struct {
	URL     string
	Timeout time.Duration
}

// CatalogConfig configures the local SQLite activity catalog.
type CatalogConfig struct {
	Path     string
	SeedFile string // optional JSON array imported at startup
}

// AgentConfig tunes the intent routing pipeline.
type AgentConfig struct {
	MatchThreshold   int
	LLMTimeout       time.Duration
	MaxFollowUpDepth int
	HistoryWindow    int
	SpellCheck       bool
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.RetryMaxDelay = viper.GetString("llm.retry_max_delay")
	cfg.LLM.BackoffFactor = viper.GetFloat64("llm.backoff_factor")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Providers = loadProviders()

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Activity collaborators
	cfg.ActivityService.URL = viper.GetString("activity_service.url")
	if u := viper.GetString("activity_service_url"); u != "" {
		cfg.ActivityService.URL = u
	}
	cfg.ActivityService.Timeout = viper.GetDuration("activity_service.timeout")
	cfg.Catalog.Path = viper.GetString("catalog.path")
	cfg.Catalog.SeedFile = viper.GetString("catalog.seed_file")

	// Agent
	cfg.Agent.MatchThreshold = viper.GetInt("agent.match_threshold")
	cfg.Agent.LLMTimeout = viper.GetDuration("agent.llm_timeout")
	cfg.Agent.MaxFollowUpDepth = viper.GetInt("agent.max_follow_up_depth")
	cfg.Agent.HistoryWindow = viper.GetInt("agent.history_window")
	cfg.Agent.SpellCheck = viper.GetBool("agent.spell_check")
	if cfg.Agent.MatchThreshold < 0 || cfg.Agent.MatchThreshold > 100 {
		return nil, fmt.Errorf("agent.match_threshold must be within 0..100, got %d", cfg.Agent.MatchThreshold)
	}

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.retry_max_delay", "10s")
	viper.SetDefault("llm.backoff_factor", 2.0)
	viper.SetDefault("llm.max_total_timeout", "60s")

	viper.SetDefault("activity_service.url", "http://localhost:8000/activities")
	viper.SetDefault("activity_service.timeout", "10s")
	viper.SetDefault("catalog.path", "data/catalog.db")

	viper.SetDefault("agent.match_threshold", 85)
	viper.SetDefault("agent.llm_timeout", "10s")
	viper.SetDefault("agent.max_follow_up_depth", 1)
	viper.SetDefault("agent.history_window", 6)
	viper.SetDefault("agent.spell_check", true)

	viper.SetDefault("rate_limit.per_min", 30)
}

func loadProviders() []ProviderConfig {
	if !viper.IsSet("llm.providers") {
		return nil
	}
	providersList, ok := viper.Get("llm.providers").([]interface{})
	if !ok {
		return nil
	}

	var providers []ProviderConfig
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:           getStringFromMap(providerMap, "name"),
			Enabled:        getBoolFromMap(providerMap, "enabled"),
			Priority:       getIntFromMap(providerMap, "priority"),
			APIKey:         expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:        expandEnvVar(getStringFromMap(providerMap, "base_url")),
			Model:          getStringFromMap(providerMap, "model"),
			EmbeddingModel: getStringFromMap(providerMap, "embedding_model"),
			APIVersion:     getStringFromMap(providerMap, "api_version"),
			Timeout:        getStringFromMap(providerMap, "timeout"),
		})
	}
	return providers
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
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
		return fmt.Errorf("no enabled LLM providers")
	}
	return nil
}

// Durations parses the retry and timeout strings of the LLM section.
func (c LLMConfig) Durations() (retryDelay, retryMaxDelay, maxTotal time.Duration, err error) {
	parse := func(field, v string) (time.Duration, error) {
		if v == "" {
			return 0, nil
		}
		d, perr := time.ParseDuration(v)
		if perr != nil {
			return 0, fmt.Errorf("llm.%s: %w", field, perr)
		}
		return d, nil
	}
	if retryDelay, err = parse("retry_delay", c.RetryDelay); err != nil {
		return
	}
	if retryMaxDelay, err = parse("retry_max_delay", c.RetryMaxDelay); err != nil {
		return
	}
	maxTotal, err = parse("max_total_timeout", c.MaxTotalTimeout)
	return
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
