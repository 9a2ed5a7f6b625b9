// Package composer renders persona documents into natural-language
// system prompts, optionally narrowed to a situational context.
// Rendering is a pure read: the input persona is never mutated.
package composer

import (
	"strconv"
	"strings"

	"sona/src/persona"
)

// fallbackPrompt is returned when there is nothing to render
const fallbackPrompt = "You are a helpful assistant."

// closingInstruction anchors the persona across the whole conversation
const closingInstruction = "Maintain these characteristics consistently in all your responses."

// ContextMap maps a context name to the category names relevant to it.
// Global, read-only configuration; not part of any persona.
type ContextMap map[string][]string

// Composer builds system prompts using a configured context map
type Composer struct {
	contexts ContextMap
}

// New creates a composer with the given context-to-category mapping
func New(contexts ContextMap) *Composer {
	return &Composer{contexts: contexts}
}

// SystemPrompt renders the persona into a system prompt. When context
// names a known situation, only the categories mapped to it are
// rendered; an unknown or empty context renders everything. Blocks
// appear in the order categories were added to the persona.
func (c *Composer) SystemPrompt(p *persona.Persona, context string) string {
	if p == nil {
		return fallbackPrompt
	}

	var parts []string

	if p.Name != "" {
		parts = append(parts, "You are "+p.Name)
	}
	if p.Description != "" {
		parts = append(parts, "\n"+p.Description)
	}

	working := p.Traits
	if context != "" {
		working = c.FilterByContext(p.Traits, context)
	}

	if working.Len() > 0 {
		parts = append(parts, "\n")
		for _, category := range working.Keys() {
			block, _ := working.Get(category)
			parts = append(parts, FormatTraitBlock(category, block))
		}
	}

	if len(parts) == 0 {
		return fallbackPrompt
	}

	parts = append(parts, "\n"+closingInstruction)
	return strings.Join(parts, "\n")
}

// FilterByContext returns the trait categories relevant to a context,
// preserving the persona's own category order. An unrecognized context
// applies no filtering and returns the input as-is.
func (c *Composer) FilterByContext(traits *persona.TraitMap, context string) *persona.TraitMap {
	relevant, known := c.contexts[context]
	if !known {
		return traits
	}

	relevantSet := make(map[string]bool, len(relevant))
	for _, category := range relevant {
		relevantSet[category] = true
	}

	filtered := persona.NewTraitMap()
	for _, category := range traits.Keys() {
		if relevantSet[category] {
			block, _ := traits.Get(category)
			filtered.Set(category, block)
		}
	}
	return filtered
}

// FormatTraitBlock renders one category as a labeled text block: a
// title-cased header, then one line per trait in insertion order.
// Sequences are comma-joined and nested mappings become indented
// sub-lists. An empty block renders as a header with no body lines.
func FormatTraitBlock(category string, traits *persona.Object) string {
	lines := []string{"\n" + TitleCase(category) + ":"}

	for _, key := range traits.Keys() {
		v, _ := traits.Get(key)
		formattedKey := TitleCase(key)

		switch t := v.(type) {
		case *persona.Object:
			lines = append(lines, "- "+formattedKey+":")
			for _, subKey := range t.Keys() {
				subValue, _ := t.Get(subKey)
				lines = append(lines, "  - "+TitleCase(subKey)+": "+inlineValue(subValue))
			}
		default:
			lines = append(lines, "- "+formattedKey+": "+inlineValue(v))
		}
	}

	return strings.Join(lines, "\n")
}

// TitleCase turns a snake_case identifier into a human-readable label:
// underscores become spaces and each word is capitalized
func TitleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// inlineValue flattens any trait value to a single readable line
func inlineValue(v persona.Value) string {
	switch t := v.(type) {
	case nil:
		return "none"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []persona.Value:
		elems := make([]string, len(t))
		for i, e := range t {
			elems[i] = inlineValue(e)
		}
		return strings.Join(elems, ", ")
	case *persona.Object:
		pairs := make([]string, 0, t.Len())
		for _, k := range t.Keys() {
			sub, _ := t.Get(k)
			pairs = append(pairs, k+": "+inlineValue(sub))
		}
		return strings.Join(pairs, ", ")
	default:
		return ""
	}
}
