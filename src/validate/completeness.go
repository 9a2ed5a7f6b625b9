package validate

import "sona/src/persona"

// completeTraitCount is the trait total treated as a fully fleshed-out
// persona when scoring
const completeTraitCount = 20

// Report summarizes how complete a persona is. Purely advisory: a
// missing category is never an error.
type Report struct {
	TotalCategories   int      `json:"total_categories"`
	FilledCategories  int      `json:"filled_categories"`
	MissingCategories []string `json:"missing_categories"`
	TotalTraits       int      `json:"total_traits"`
	CompletenessScore float64  `json:"completeness_score"`
}

// Completeness returns the allow-list categories absent from the persona
func (v *Validator) Completeness(p *persona.Persona) []string {
	missing := []string{}
	for _, category := range v.allowed {
		if _, ok := p.Traits.Get(category); !ok {
			missing = append(missing, category)
		}
	}
	return missing
}

// CompletenessReport scores the persona against the full allow-list:
// half the score from category coverage, half from total trait count
func (v *Validator) CompletenessReport(p *persona.Persona) Report {
	report := Report{
		TotalCategories:   len(v.allowed),
		MissingCategories: v.Completeness(p),
	}
	report.FilledCategories = report.TotalCategories - len(report.MissingCategories)

	for _, category := range p.Traits.Keys() {
		if block, ok := p.Traits.Get(category); ok {
			report.TotalTraits += block.Len()
		}
	}

	categoryScore := float64(report.FilledCategories) / float64(report.TotalCategories) * 50
	traitRatio := float64(report.TotalTraits) / completeTraitCount
	if traitRatio > 1 {
		traitRatio = 1
	}
	score := categoryScore + traitRatio*50
	// Round to one decimal place
	report.CompletenessScore = float64(int(score*10+0.5)) / 10
	return report
}

// SuggestTraits produces human-facing hints about categories worth adding
func (v *Validator) SuggestTraits(p *persona.Persona) []string {
	suggestions := []string{}

	if p.Traits.Len() == 0 {
		return []string{"Add personality_traits to define the persona's characteristics"}
	}

	has := func(category string) bool {
		_, ok := p.Traits.Get(category)
		return ok
	}

	if !has("professional") && p.Category == "professional" {
		suggestions = append(suggestions, "Add 'professional' traits to define occupation and skills")
	}
	if !has("communication_style") {
		suggestions = append(suggestions, "Add 'communication_style' to define how the persona speaks")
	}
	if !has("personality") {
		suggestions = append(suggestions, "Add 'personality' traits to define temperament and social style")
	}
	if !has("values_beliefs") && (p.Category == "political" || p.Category == "social") {
		suggestions = append(suggestions, "Add 'values_beliefs' for political or social personas")
	}
	if !has("demographics") {
		suggestions = append(suggestions, "Consider adding 'demographics' for age, location, etc.")
	}

	return suggestions
}
