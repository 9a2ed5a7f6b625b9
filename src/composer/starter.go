package composer

import (
	"strings"

	"sona/src/persona"
)

// ConversationStarter produces a short opening line appropriate to the
// persona and context
func (c *Composer) ConversationStarter(p *persona.Persona, context string) string {
	var starters []string

	if p != nil && p.Name != "" {
		starters = append(starters, "Hello! I'm "+p.Name+".")
	}

	switch {
	case context == "professional" && hasCategory(p, "professional"):
		block, _ := p.Traits.Get("professional")
		if role, ok := block.Get("role"); ok {
			if roleStr, isString := role.(string); isString {
				starters = append(starters, "As a "+roleStr+", I'm here to help.")
				break
			}
		}
		starters = append(starters, "How can I help you today?")
	case context == "teaching" && hasCategory(p, "communication_style"):
		starters = append(starters, "I'm here to help you learn. What would you like to know?")
	case context == "customer_service":
		starters = append(starters, "How may I assist you today?")
	default:
		starters = append(starters, "How can I help you today?")
	}

	return strings.Join(starters, " ")
}

// keyTraitCategories is the priority order for trait extraction
var keyTraitCategories = []string{"professional", "personality", "communication_style", "values_beliefs"}

// KeyTraits extracts up to max short trait descriptions from the
// highest-priority categories, skipping non-scalar values
func KeyTraits(p *persona.Persona, max int) []string {
	keyTraits := []string{}

	for _, category := range keyTraitCategories {
		block, ok := p.Traits.Get(category)
		if !ok {
			continue
		}
		taken := 0
		for _, key := range block.Keys() {
			if taken >= 2 {
				break
			}
			v, _ := block.Get(key)
			switch v.(type) {
			case string, float64:
				keyTraits = append(keyTraits, strings.ReplaceAll(key, "_", " ")+": "+inlineValue(v))
				taken++
				if len(keyTraits) >= max {
					return keyTraits
				}
			}
		}
	}

	return keyTraits
}

func hasCategory(p *persona.Persona, category string) bool {
	if p == nil {
		return false
	}
	_, ok := p.Traits.Get(category)
	return ok
}
