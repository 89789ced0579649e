package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"course-compass/config"
	"course-compass/pkg/gemini"
	"course-compass/pkg/log"
	"course-compass/pkg/openai"
)

// Provider names accepted in llm.providers[].name.
const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
	ProviderGemini   = "gemini"
)

// Default endpoints for the OpenAI-compatible vendors.
const (
	deepSeekBaseURL = "https://api.deepseek.com/v1"
	qwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Skips providers that fail to initialize instead of failing the entire service.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabled {
		provider, err := createProvider(ctx, p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "pkg.llmprovider.InitializeProviders: %s", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	if len(initErrors) > 0 {
		l.Warnf(ctx, "pkg.llmprovider.InitializeProviders: %d provider(s) failed to initialize, continuing with %d",
			len(initErrors), len(providers))
	}

	return providers, nil
}

// CallTimeout is the longest one model call can take. It is MaxTotalTimeout
// when set; otherwise the per-provider timeouts of the enabled chain added
// up, or only the first provider's when fallback is off.
func CallTimeout(cfg *config.LLMConfig) time.Duration {
	if cfg.MaxTotalTimeout > 0 {
		return cfg.MaxTotalTimeout
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})
	if !cfg.FallbackEnabled && len(enabled) > 1 {
		enabled = enabled[:1]
	}

	var total time.Duration
	for _, p := range enabled {
		total += providerTimeout(p)
	}
	return total
}

func providerTimeout(p config.ProviderConfig) time.Duration {
	if d, err := time.ParseDuration(p.Timeout); err == nil && p.Timeout != "" {
		return d
	}
	if strings.ToLower(p.Name) == ProviderGemini {
		return gemini.DefaultTimeout
	}
	return openai.DefaultTimeout
}

func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	httpClient, err := newHTTPClient(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("provider %s: %w", cfg.Name, err)
	}

	switch strings.ToLower(cfg.Name) {
	case ProviderOpenAI:
		return newOpenAICompatible(ProviderOpenAI, cfg, "", httpClient)

	case ProviderDeepSeek:
		return newOpenAICompatible(ProviderDeepSeek, cfg, deepSeekBaseURL, httpClient)

	case ProviderQwen, "alibaba":
		return newOpenAICompatible(ProviderQwen, cfg, qwenBaseURL, httpClient)

	case ProviderGemini:
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func newOpenAICompatible(name string, cfg config.ProviderConfig, defaultBaseURL string, httpClient *http.Client) (Provider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client, err := openai.New(openai.Config{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    baseURL,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", name, err)
	}
	return NewOpenAIAdapter(name, client), nil
}

// newHTTPClient returns nil when no timeout is configured so the client
// packages apply their own default.
func newHTTPClient(timeout string) (*http.Client, error) {
	if timeout == "" {
		return nil, nil
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", timeout, err)
	}
	return &http.Client{Timeout: d}, nil
}
