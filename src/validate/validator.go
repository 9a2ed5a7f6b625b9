// Package validate checks persona documents against the configured
// category allow-list. Validation is structural only: category names and
// required identity fields are checked, trait values never are.
package validate

import (
	"fmt"

	"sona/src/persona"
)

// Validator holds the allow-list validation runs against
type Validator struct {
	allowed persona.Allowlist
}

// New creates a validator for the given allow-list
func New(allowed persona.Allowlist) *Validator {
	return &Validator{allowed: allowed}
}

// Allowed returns the allow-list this validator was built with
func (v *Validator) Allowed() persona.Allowlist {
	out := make(persona.Allowlist, len(v.allowed))
	copy(out, v.allowed)
	return out
}

// Categories checks every trait category against the allow-list.
// It always returns a result pair: ok and the offending names, never an
// error.
func (v *Validator) Categories(p *persona.Persona) (bool, []string) {
	invalid := []string{}
	for _, category := range p.Traits.Keys() {
		if !v.allowed.Contains(category) {
			invalid = append(invalid, category)
		}
	}
	return len(invalid) == 0, invalid
}

// Structure validates the overall document shape: required identity
// fields present and llm_config values in range. Returns ok and a list
// of human-readable problems.
func (v *Validator) Structure(p *persona.Persona) (bool, []string) {
	errs := []string{}

	if p.ID == "" {
		errs = append(errs, "persona_id must be a non-empty string")
	}
	if p.Name == "" {
		errs = append(errs, "name must be a non-empty string")
	}

	for _, category := range p.Traits.Keys() {
		if !v.allowed.Contains(category) {
			errs = append(errs, fmt.Sprintf("invalid trait category: %s", category))
		}
	}

	if p.LLMConfig != nil {
		errs = append(errs, validateLLMConfig(p.LLMConfig)...)
	}

	return len(errs) == 0, errs
}

// TraitBlock validates a single block before it is attached to a persona
func (v *Validator) TraitBlock(category string, traits *persona.Object) (bool, []string) {
	errs := []string{}

	if !v.allowed.Contains(category) {
		errs = append(errs, fmt.Sprintf("invalid category: %s", category))
	}
	if traits == nil || traits.Len() == 0 {
		errs = append(errs, "trait block cannot be empty")
	} else {
		for _, key := range traits.Keys() {
			if key == "" {
				errs = append(errs, "trait key cannot be empty")
			}
		}
	}

	return len(errs) == 0, errs
}

var validProviders = []string{"openai", "anthropic", "google", "azure", "local"}

func validateLLMConfig(cfg *persona.Object) []string {
	errs := []string{}

	if v, ok := cfg.Get("provider"); ok {
		provider, isString := v.(string)
		if !isString {
			errs = append(errs, "provider must be a string")
		} else {
			known := false
			for _, p := range validProviders {
				if p == provider {
					known = true
					break
				}
			}
			if !known {
				errs = append(errs, fmt.Sprintf("invalid LLM provider: %s", provider))
			}
		}
	}

	if v, ok := cfg.Get("temperature"); ok {
		temp, isNumber := v.(float64)
		if !isNumber {
			errs = append(errs, "temperature must be a number")
		} else if temp < 0 || temp > 2 {
			errs = append(errs, "temperature must be between 0 and 2")
		}
	}

	if v, ok := cfg.Get("max_tokens"); ok {
		tokens, isNumber := v.(float64)
		if !isNumber || tokens != float64(int(tokens)) {
			errs = append(errs, "max_tokens must be an integer")
		} else if tokens < 1 || tokens > 100000 {
			errs = append(errs, "max_tokens must be between 1 and 100000")
		}
	}

	return errs
}
