// Package templates ships a static catalog of pre-built persona
// documents usable as seeds. The documents live as embedded JSON so the
// catalog round-trips through the same codec as stored personas.
package templates

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	serrors "sona/src/errors"
	"sona/src/persona"
)

// Info describes one catalog entry
type Info struct {
	ID          string `json:"template_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type entry struct {
	info Info
	doc  string
}

// Catalog lists every available template
func Catalog() []Info {
	infos := make([]Info, len(catalog))
	for i, e := range catalog {
		infos[i] = e.info
	}
	return infos
}

// Get returns a fresh copy of the template persona
func Get(templateID string) (*persona.Persona, error) {
	for _, e := range catalog {
		if e.info.ID == templateID {
			p, err := persona.FromJSON([]byte(e.doc))
			if err != nil {
				return nil, fmt.Errorf("template %s: %w", templateID, err)
			}
			return p, nil
		}
	}
	return nil, serrors.WrapWithContext(serrors.ErrTemplateNotFound, "%q", templateID)
}

// Apply instantiates a template, overlaying optional customizations.
// Identity fields and llm_config entries are replaced; customized trait
// blocks are merged key-by-key into the template's blocks. When no
// persona_id customization is given, a fresh uuid-suffixed id is
// assigned so instances never collide with the template itself.
func Apply(templateID string, customizations *persona.Object) (*persona.Persona, error) {
	p, err := Get(templateID)
	if err != nil {
		return nil, err
	}

	customID := false
	if customizations != nil {
		if v, ok := customizations.Get("persona_id"); ok {
			if s, isString := v.(string); isString && s != "" {
				p.ID = s
				customID = true
			}
		}
		if v, ok := customizations.Get("name"); ok {
			if s, isString := v.(string); isString {
				p.Name = s
			}
		}
		if v, ok := customizations.Get("description"); ok {
			if s, isString := v.(string); isString {
				p.Description = s
			}
		}
		if v, ok := customizations.Get("category"); ok {
			if s, isString := v.(string); isString {
				p.Category = s
			}
		}
		if v, ok := customizations.Get("personality_traits"); ok {
			if traits, isObject := v.(*persona.Object); isObject {
				for _, category := range traits.Keys() {
					blockValue, _ := traits.Get(category)
					block, isObject := blockValue.(*persona.Object)
					if !isObject {
						continue
					}
					dst, ok := p.Traits.Get(category)
					if !ok {
						dst = persona.NewObject()
						p.Traits.Set(category, dst)
					}
					for _, k := range block.Keys() {
						bv, _ := block.Get(k)
						dst.Set(k, bv)
					}
				}
			}
		}
		if v, ok := customizations.Get("llm_config"); ok {
			if cfg, isObject := v.(*persona.Object); isObject {
				if p.LLMConfig == nil {
					p.LLMConfig = persona.NewObject()
				}
				for _, k := range cfg.Keys() {
					cv, _ := cfg.Get(k)
					p.LLMConfig.Set(k, cv)
				}
			}
		}
	}

	if !customID {
		suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		p.ID = templateID + "_" + suffix
	}

	p.Touch()
	p.Metadata.TemplateSource = templateID
	p.Metadata.CreatedAt = p.Metadata.ModifiedAt
	return p, nil
}
