package store

import (
	"strings"

	"sona/src/composer"
	serrors "sona/src/errors"
	"sona/src/persona"
)

// Format identifies an export/import encoding
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

// ParseFormat maps a user-supplied format name to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", serrors.WrapWithContext(serrors.ErrUnsupportedFormat, "%q", s)
}

// Export renders the persona document in the given format. All formats
// are translations of the same document; none mutates the persona.
func Export(p *persona.Persona, format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := p.ToJSON()
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatMarkdown:
		return exportMarkdown(p), nil
	case FormatYAML:
		return exportYAML(p)
	}
	return "", serrors.WrapWithContext(serrors.ErrUnsupportedFormat, "%q", string(format))
}

// Import parses a persona document and re-runs category validation,
// since imported categories are not guaranteed to satisfy the
// allow-list
func Import(data []byte, format Format, allowed persona.Allowlist) (*persona.Persona, error) {
	var p *persona.Persona
	var err error

	switch format {
	case FormatJSON:
		p, err = persona.FromJSON(data)
	case FormatYAML:
		p, err = importYAML(data)
	default:
		return nil, serrors.WrapWithContext(serrors.ErrUnsupportedFormat, "%q", string(format))
	}
	if err != nil {
		return nil, serrors.WrapWithContext(serrors.ErrCorruptData, "%v", err)
	}

	if p.ID == "" || p.Name == "" {
		return nil, serrors.WrapWithContext(serrors.ErrCorruptData, "missing persona_id or name")
	}

	for _, category := range p.Traits.Keys() {
		if !allowed.Contains(category) {
			return nil, serrors.NewCategoryError(category, allowed)
		}
	}

	return p, nil
}

// exportMarkdown renders the document as nested headers and lists,
// reusing the prompt formatter's label and value rules
func exportMarkdown(p *persona.Persona) string {
	var lines []string

	lines = append(lines, "# "+p.Name, "")

	if p.Description != "" {
		lines = append(lines, "**Description:** "+p.Description, "")
	}
	if p.Category != "" {
		lines = append(lines, "**Category:** "+p.Category, "")
	}

	if p.Traits.Len() > 0 {
		lines = append(lines, "## Personality Traits", "")
		for _, category := range p.Traits.Keys() {
			block, _ := p.Traits.Get(category)
			lines = append(lines, "### "+composer.TitleCase(category))
			for _, body := range strings.Split(composer.FormatTraitBlock(category, block), "\n")[2:] {
				lines = append(lines, body)
			}
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}
