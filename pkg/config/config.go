// Package config resolves advisor credentials and provider selection from
// the environment and an optional ~/.config/systune/config.yaml file.
// Environment variables win over file values, flag overrides win over both.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/systune/systune/pkg/llm"
)

// Settings is the resolved advisor configuration for one run.
type Settings struct {
	Provider llm.Provider
	Model    string
	APIKey   string
}

// Load resolves the advisor settings. providerOverride and modelOverride
// come from the command line and take precedence when non-empty.
func Load(providerOverride, modelOverride string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "systune"))
	}

	// A missing config file is fine; the environment alone is enough.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.BindEnv("provider", "LLM_PROVIDER")
	v.BindEnv("openai_api_key", "OPENAI_API_KEY")
	v.BindEnv("anthropic_api_key", "ANTHROPIC_API_KEY")
	v.BindEnv("openai_model", "OPENAI_MODEL")
	v.BindEnv("claude_model", "CLAUDE_MODEL")
	v.SetDefault("provider", string(llm.ProviderOpenAI))

	provider := llm.Provider(strings.ToLower(v.GetString("provider")))
	if providerOverride != "" {
		provider = llm.Provider(strings.ToLower(providerOverride))
	}

	s := &Settings{Provider: provider, Model: modelOverride}

	switch provider {
	case llm.ProviderOpenAI:
		s.APIKey = v.GetString("openai_api_key")
		if s.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set (environment or openai_api_key in ~/.config/systune/config.yaml)")
		}
		if s.Model == "" {
			s.Model = v.GetString("openai_model")
		}

	case llm.ProviderClaude:
		s.APIKey = v.GetString("anthropic_api_key")
		if s.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY not set (environment or anthropic_api_key in ~/.config/systune/config.yaml)")
		}
		if s.Model == "" {
			s.Model = v.GetString("claude_model")
		}

	default:
		return nil, fmt.Errorf("unsupported provider: %s (supported: openai, claude)", provider)
	}

	return s, nil
}

// NewClient builds the LLM client for the resolved settings.
func (s *Settings) NewClient() (llm.LLM, error) {
	return llm.Create(s.Provider, s.APIKey, s.Model)
}
