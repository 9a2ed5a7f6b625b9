package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"sona/src/persona"
)

// Settings is the injected configuration surface: category allow-list,
// context map, storage paths and default generation parameters. Loaded
// once at startup; accessors hand out copies so the loaded values stay
// immutable.
type Settings struct {
	PersonasDir string              `toml:"personas_dir"`
	HistoryDB   string              `toml:"history_db"`
	Categories  []string            `toml:"categories"`
	Contexts    map[string][]string `toml:"contexts"`
	LLM         LLMDefaults         `toml:"llm"`
}

// LLMDefaults are generation parameters stamped onto new personas.
// The core passes them through without interpreting them.
type LLMDefaults struct {
	Provider    string  `toml:"provider"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
}

// defaultCategories is the built-in allow-list, overridable in config.toml
func defaultCategories() []string {
	return []string{
		"demographics",
		"professional",
		"personality",
		"communication_style",
		"values_beliefs",
		"behavioral_traits",
		"capabilities",
		"background",
		"relationships",
		"preferences",
	}
}

// defaultContexts maps a situation name to the categories relevant to it
func defaultContexts() map[string][]string {
	return map[string][]string{
		"professional":     {"professional", "communication_style", "capabilities"},
		"medical":          {"demographics", "background", "preferences"},
		"emergency":        {"behavioral_traits", "capabilities", "communication_style"},
		"social":           {"personality", "preferences", "relationships"},
		"voting":           {"demographics", "values_beliefs", "background"},
		"parenting":        {"values_beliefs", "behavioral_traits", "background"},
		"teaching":         {"communication_style", "behavioral_traits", "capabilities"},
		"customer_service": {"communication_style", "behavioral_traits", "professional"},
	}
}

// Load reads config.toml from the config directory, falling back to
// defaults when the file or individual keys are absent
func Load() (*Settings, error) {
	settings := &Settings{
		PersonasDir: DefaultPersonasDir(),
		HistoryDB:   DefaultHistoryPath(),
		Categories:  defaultCategories(),
		Contexts:    defaultContexts(),
		LLM: LLMDefaults{
			Provider:    "openai",
			Temperature: 0.7,
			MaxTokens:   2000,
		},
	}

	configPath := filepath.Join(ConfigDir(), "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if _, err := toml.Decode(string(data), settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Allowlist returns a copy of the configured category allow-list
func (s *Settings) Allowlist() persona.Allowlist {
	out := make(persona.Allowlist, len(s.Categories))
	copy(out, s.Categories)
	return out
}

// ContextMap returns a copy of the context-to-category mapping
func (s *Settings) ContextMap() map[string][]string {
	out := make(map[string][]string, len(s.Contexts))
	for ctx, categories := range s.Contexts {
		cs := make([]string, len(categories))
		copy(cs, categories)
		out[ctx] = cs
	}
	return out
}

// DefaultLLMConfig returns the configured generation defaults as a
// persona llm_config object
func (s *Settings) DefaultLLMConfig() *persona.Object {
	return persona.NewObject().
		Set("provider", s.LLM.Provider).
		Set("temperature", s.LLM.Temperature).
		Set("max_tokens", float64(s.LLM.MaxTokens))
}
