package config

// ProviderInfo describes a chat-completions endpoint speaking the OpenAI wire
// format.
type ProviderInfo struct {
	ID          string
	Name        string
	Description string
	BaseURL     string
	NeedsAPIKey bool
	SignupURL   string
}

var Providers = []ProviderInfo{
	{
		ID:          "openai",
		Name:        "OpenAI",
		Description: "GPT-3.5 and GPT-4",
		BaseURL:     "https://api.openai.com/v1/",
		NeedsAPIKey: true,
		SignupURL:   "https://platform.openai.com/api-keys",
	},
	{
		ID:          "openrouter",
		Name:        "OpenRouter",
		Description: "Access all models",
		BaseURL:     "https://openrouter.ai/api/v1/",
		NeedsAPIKey: true,
		SignupURL:   "https://openrouter.ai/keys",
	},
	{
		ID:          "groq",
		Name:        "Groq",
		Description: "Very fast, cheap",
		BaseURL:     "https://api.groq.com/openai/v1/",
		NeedsAPIKey: true,
		SignupURL:   "https://console.groq.com/keys",
	},
	{
		ID:          "ollama",
		Name:        "Ollama",
		Description: "Local, free, private",
		BaseURL:     "http://localhost:11434/v1/",
		NeedsAPIKey: false,
	},
	{
		ID:          "custom",
		Name:        "Custom",
		Description: "Any OpenAI-compatible endpoint (set base_url)",
		NeedsAPIKey: false,
	},
}

func GetProvider(id string) *ProviderInfo {
	for _, p := range Providers {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
