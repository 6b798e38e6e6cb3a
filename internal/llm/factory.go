package llm

import (
	"fmt"

	"github.com/openai/openai-go/option"
	"github.com/sant0-9/promptgen/internal/config"
)

// NewProvider creates a provider from config. A missing API key is not an
// error here; the endpoint rejects the call when it is made.
func NewProvider(cfg *config.Config, opts ...option.RequestOption) (Provider, error) {
	info := config.GetProvider(cfg.Provider)
	if info == nil {
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}

	baseURL := info.BaseURL
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	if baseURL == "" {
		return nil, fmt.Errorf("%s provider requires base_url", info.ID)
	}

	return newCompatibleProvider(info.ID, cfg.APIKey, baseURL, "", opts...), nil
}
