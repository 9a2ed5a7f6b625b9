package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sona/src/persona"
)

var testAllowlist = persona.Allowlist{
	"demographics", "professional", "personality", "communication_style",
	"values_beliefs", "behavioral_traits", "capabilities", "background",
	"relationships", "preferences",
}

func testPersona(t *testing.T) *persona.Persona {
	t.Helper()
	p, err := persona.New("test_id", "Test Persona")
	require.NoError(t, err)
	return p
}

func TestCategoriesAllValid(t *testing.T) {
	p := testPersona(t)
	p.Traits.Set("professional", persona.NewObject().Set("role", "Teacher"))
	p.Traits.Set("personality", persona.NewObject().Set("temperament", "warm"))

	ok, invalid := New(testAllowlist).Categories(p)
	assert.True(t, ok)
	assert.Empty(t, invalid)
}

func TestCategoriesFlagsOffListNames(t *testing.T) {
	p := testPersona(t)
	p.Traits.Set("professional", persona.NewObject())
	// Bypass AddTraitBlock to simulate a hand-edited document
	p.Traits.Set("astrology", persona.NewObject().Set("sign", "leo"))

	ok, invalid := New(testAllowlist).Categories(p)
	assert.False(t, ok)
	assert.Equal(t, []string{"astrology"}, invalid)
}

func TestCategoriesEmptyTraitMapIsValid(t *testing.T) {
	ok, invalid := New(testAllowlist).Categories(testPersona(t))
	assert.True(t, ok)
	assert.Empty(t, invalid)
}

func TestCategoriesNeverInspectsValues(t *testing.T) {
	p := testPersona(t)
	// Arbitrary nested content is accepted by design
	p.Traits.Set("preferences", persona.NewObject().
		Set("weird", persona.NewObject().Set("deeply", []persona.Value{nil, 3.5, false})).
		Set("empty", persona.NewObject()))

	ok, invalid := New(testAllowlist).Categories(p)
	assert.True(t, ok)
	assert.Empty(t, invalid)
}

func TestStructureRequiresIdentity(t *testing.T) {
	v := New(testAllowlist)

	p := &persona.Persona{Traits: persona.NewTraitMap()}
	ok, errs := v.Structure(p)
	assert.False(t, ok)
	assert.Len(t, errs, 2)

	p.ID = "id"
	p.Name = "Name"
	ok, errs = v.Structure(p)
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestStructureChecksLLMConfig(t *testing.T) {
	v := New(testAllowlist)

	p := testPersona(t)
	p.LLMConfig = persona.NewObject().
		Set("provider", "openai").
		Set("temperature", 0.7).
		Set("max_tokens", 2000.0)
	ok, errs := v.Structure(p)
	assert.True(t, ok, "errors: %v", errs)

	p.LLMConfig = persona.NewObject().Set("temperature", 3.0)
	ok, errs = v.Structure(p)
	assert.False(t, ok)
	assert.Contains(t, errs, "temperature must be between 0 and 2")

	p.LLMConfig = persona.NewObject().Set("provider", "carrier-pigeon")
	ok, errs = v.Structure(p)
	assert.False(t, ok)
	assert.Contains(t, errs, "invalid LLM provider: carrier-pigeon")

	p.LLMConfig = persona.NewObject().Set("max_tokens", 0.0)
	ok, errs = v.Structure(p)
	assert.False(t, ok)
	assert.Contains(t, errs, "max_tokens must be between 1 and 100000")
}

func TestTraitBlock(t *testing.T) {
	v := New(testAllowlist)

	ok, _ := v.TraitBlock("professional", persona.NewObject().Set("role", "Teacher"))
	assert.True(t, ok)

	ok, errs := v.TraitBlock("astrology", persona.NewObject().Set("sign", "leo"))
	assert.False(t, ok)
	assert.Contains(t, errs, "invalid category: astrology")

	ok, errs = v.TraitBlock("professional", persona.NewObject())
	assert.False(t, ok)
	assert.Contains(t, errs, "trait block cannot be empty")
}

func TestCompleteness(t *testing.T) {
	v := New(testAllowlist)
	p := testPersona(t)
	p.Traits.Set("professional", persona.NewObject().Set("role", "Teacher"))

	missing := v.Completeness(p)
	assert.Len(t, missing, len(testAllowlist)-1)
	assert.NotContains(t, missing, "professional")
	assert.Contains(t, missing, "personality")
}

func TestCompletenessReport(t *testing.T) {
	v := New(testAllowlist)
	p := testPersona(t)

	report := v.CompletenessReport(p)
	assert.Equal(t, 0, report.FilledCategories)
	assert.Equal(t, 0.0, report.CompletenessScore)
	assert.Len(t, report.MissingCategories, len(testAllowlist))

	p.Traits.Set("professional", persona.NewObject().Set("role", "Teacher").Set("experience", "15 years"))
	report = v.CompletenessReport(p)
	assert.Equal(t, 1, report.FilledCategories)
	assert.Equal(t, 2, report.TotalTraits)
	assert.Greater(t, report.CompletenessScore, 0.0)
	assert.Less(t, report.CompletenessScore, 100.0)
}

func TestSuggestTraits(t *testing.T) {
	v := New(testAllowlist)

	p := testPersona(t)
	suggestions := v.SuggestTraits(p)
	assert.Equal(t, []string{"Add personality_traits to define the persona's characteristics"}, suggestions)

	p.Category = "professional"
	p.Traits.Set("background", persona.NewObject().Set("origin", "somewhere"))
	suggestions = v.SuggestTraits(p)
	assert.Contains(t, suggestions, "Add 'professional' traits to define occupation and skills")
	assert.Contains(t, suggestions, "Add 'communication_style' to define how the persona speaks")
}
