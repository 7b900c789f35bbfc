package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"task-management/config"
	"task-management/pkg/gemini"
	"task-management/pkg/log"
	"task-management/pkg/openai"
)

// Base URLs of OpenAI-compatible vendors.
const (
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped instead of failing the entire service.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "llmprovider.InitializeProviders skip %s: %v", p.Name, err)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	if len(initErrors) > 0 {
		l.Warnf(ctx, "%d provider(s) failed to initialize, continuing with %d", len(initErrors), len(providers))
	}

	return providers, nil
}

// NewManagerConfig converts config.LLMConfig durations into a manager Config.
func NewManagerConfig(cfg *config.LLMConfig) *Config {
	retryDelay, _ := time.ParseDuration(cfg.RetryDelay)
	maxDelay, _ := time.ParseDuration(cfg.MaxRetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.MaxTotalTimeout)
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   attempts,
		RetryDelay:      retryDelay,
		MaxRetryDelay:   maxDelay,
		MaxTotalTimeout: maxTotal,
	}
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	var httpClient *http.Client
	if cfg.Timeout != "" {
		timeout, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: invalid timeout %q: %w", cfg.Name, cfg.Timeout, err)
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	switch cfg.Name {
	case "openai", "deepseek", "qwen", "alibaba":
		oc := openai.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		}
		switch cfg.Name {
		case "deepseek":
			oc.ResponseFormat = openai.FormatJSONObject
			if oc.BaseURL == "" {
				oc.BaseURL = DeepSeekBaseURL
			}
		case "qwen", "alibaba":
			oc.ResponseFormat = openai.FormatJSONObject
			if oc.BaseURL == "" {
				oc.BaseURL = QwenBaseURL
			}
		}
		client, err := openai.New(oc)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewOpenAIAdapter(cfg.Name, client), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
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
