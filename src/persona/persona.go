// Package persona defines the persona document and its pure structural
// operations. Trait content is opaque by design: only category names are
// ever validated, never the values inside a block.
package persona

import (
	"encoding/json"
	"time"

	serrors "sona/src/errors"
)

const documentVersion = "1.0.0"

// Allowlist is the set of trait category names a persona may use.
// It is loaded once from configuration and treated as immutable.
type Allowlist []string

// Contains reports whether name is a permitted category
func (a Allowlist) Contains(name string) bool {
	for _, c := range a {
		if c == name {
			return true
		}
	}
	return false
}

// Metadata carries bookkeeping timestamps, never interpreted by the core
type Metadata struct {
	CreatedAt      string `json:"created_at,omitempty"`
	ModifiedAt     string `json:"modified_at,omitempty"`
	Version        string `json:"version,omitempty"`
	TemplateSource string `json:"template_source,omitempty"`
}

// Persona is the aggregate root: an identity described through named
// trait categories, serialized as one JSON document per persona_id.
type Persona struct {
	ID          string    `json:"persona_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Traits      *TraitMap `json:"personality_traits"`
	LLMConfig   *Object   `json:"llm_config,omitempty"`
	Metadata    *Metadata `json:"metadata,omitempty"`
}

// New creates an empty persona with the given identity and no traits
func New(id, name string) (*Persona, error) {
	if id == "" {
		return nil, &serrors.ValidationError{Field: "persona_id", Message: "must be a non-empty string"}
	}
	if name == "" {
		return nil, &serrors.ValidationError{Field: "name", Message: "must be a non-empty string"}
	}
	now := timestamp()
	return &Persona{
		ID:     id,
		Name:   name,
		Traits: NewTraitMap(),
		Metadata: &Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			Version:    documentVersion,
		},
	}, nil
}

// AddTraitBlock sets the trait block for a category, overwriting any
// existing block. The category must be in the allow-list; the block
// contents are not inspected.
func (p *Persona) AddTraitBlock(category string, traits *Object, allowed Allowlist) error {
	if !allowed.Contains(category) {
		return serrors.NewCategoryError(category, allowed)
	}
	if p.Traits == nil {
		p.Traits = NewTraitMap()
	}
	p.Traits.Set(category, traits)
	p.Touch()
	return nil
}

// RemoveTraitBlock removes the trait block for a category. Removing an
// absent category is a no-op, not an error.
func (p *Persona) RemoveTraitBlock(category string) {
	if p.Traits != nil && p.Traits.Delete(category) {
		p.Touch()
	}
}

// Categories returns the category names currently present, in the order
// they were added
func (p *Persona) Categories() []string {
	return p.Traits.Keys()
}

// Clone returns a deep copy with a new identity and fresh metadata
func (p *Persona) Clone(newID, newName string) *Persona {
	out := p.deepCopy()
	out.ID = newID
	out.Name = newName
	now := timestamp()
	if out.Metadata == nil {
		out.Metadata = &Metadata{Version: documentVersion}
	}
	out.Metadata.CreatedAt = now
	out.Metadata.ModifiedAt = now
	return out
}

// Merge overlays one persona's traits onto a base, key-by-key within
// shared categories, and returns a new persona. The overlay wins on
// conflicts; neither input is mutated.
func Merge(base, overlay *Persona) *Persona {
	merged := base.deepCopy()
	if merged.Traits == nil {
		merged.Traits = NewTraitMap()
	}
	if overlay.Traits != nil {
		for _, category := range overlay.Traits.Keys() {
			src, _ := overlay.Traits.Get(category)
			if dst, ok := merged.Traits.Get(category); ok {
				for _, k := range src.Keys() {
					v, _ := src.Get(k)
					dst.Set(k, cloneValue(v))
				}
			} else {
				merged.Traits.Set(category, src.Clone())
			}
		}
	}
	merged.Touch()
	return merged
}

// Touch refreshes the modified timestamp
func (p *Persona) Touch() {
	if p.Metadata == nil {
		p.Metadata = &Metadata{Version: documentVersion, CreatedAt: timestamp()}
	}
	p.Metadata.ModifiedAt = timestamp()
}

func (p *Persona) deepCopy() *Persona {
	out := *p
	out.Traits = p.Traits.Clone()
	out.LLMConfig = p.LLMConfig.Clone()
	if p.Metadata != nil {
		md := *p.Metadata
		out.Metadata = &md
	}
	return &out
}

// FromJSON parses a persona document. It enforces only document shape;
// category validation is a separate concern.
func FromJSON(data []byte) (*Persona, error) {
	var p Persona
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p.Traits == nil {
		p.Traits = NewTraitMap()
	}
	return &p, nil
}

// ToJSON serializes the persona with indentation for human readability
func (p *Persona) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
