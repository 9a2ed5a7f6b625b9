package persona

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "sona/src/errors"
)

var testAllowlist = Allowlist{
	"demographics", "professional", "personality", "communication_style",
	"values_beliefs", "behavioral_traits", "capabilities", "background",
	"relationships", "preferences",
}

func TestNew(t *testing.T) {
	p, err := New("test_id", "Test Persona")
	require.NoError(t, err)

	assert.Equal(t, "test_id", p.ID)
	assert.Equal(t, "Test Persona", p.Name)
	assert.Equal(t, 0, p.Traits.Len())
	require.NotNil(t, p.Metadata)
	assert.NotEmpty(t, p.Metadata.CreatedAt)
	assert.Equal(t, "1.0.0", p.Metadata.Version)
}

func TestNewRequiresIdentity(t *testing.T) {
	_, err := New("", "Name")
	require.Error(t, err)
	assert.True(t, errors.Is(err, serrors.ErrMissingRequired))

	_, err = New("id", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, serrors.ErrMissingRequired))
}

func TestAddTraitBlock(t *testing.T) {
	p, err := New("p1", "Test")
	require.NoError(t, err)

	traits := NewObject().Set("role", "Teacher").Set("experience", "15 years")
	require.NoError(t, p.AddTraitBlock("professional", traits, testAllowlist))

	block, ok := p.Traits.Get("professional")
	require.True(t, ok)
	role, _ := block.Get("role")
	assert.Equal(t, "Teacher", role)
}

func TestAddTraitBlockOverwrites(t *testing.T) {
	p, _ := New("p1", "Test")

	require.NoError(t, p.AddTraitBlock("professional", NewObject().Set("role", "Teacher"), testAllowlist))
	require.NoError(t, p.AddTraitBlock("professional", NewObject().Set("role", "Chef"), testAllowlist))

	block, _ := p.Traits.Get("professional")
	role, _ := block.Get("role")
	assert.Equal(t, "Chef", role)
	assert.Equal(t, 1, p.Traits.Len())
}

func TestAddTraitBlockInvalidCategory(t *testing.T) {
	p, _ := New("p1", "Test")

	err := p.AddTraitBlock("astrology", NewObject().Set("sign", "leo"), testAllowlist)
	require.Error(t, err)
	assert.True(t, serrors.IsInvalidCategory(err))

	var catErr *serrors.CategoryError
	require.True(t, errors.As(err, &catErr))
	assert.Equal(t, "astrology", catErr.Category)
	assert.Equal(t, 0, p.Traits.Len())
}

func TestAddThenRemoveRestoresPriorState(t *testing.T) {
	p, _ := New("p1", "Test")
	require.NoError(t, p.AddTraitBlock("personality", NewObject().Set("temperament", "warm"), testAllowlist))

	before := p.Traits.Keys()

	require.NoError(t, p.AddTraitBlock("professional", NewObject().Set("role", "Teacher"), testAllowlist))
	p.RemoveTraitBlock("professional")

	assert.Equal(t, before, p.Traits.Keys())
	_, ok := p.Traits.Get("professional")
	assert.False(t, ok)
}

func TestRemoveAbsentCategoryIsNoop(t *testing.T) {
	p, _ := New("p1", "Test")
	// Must not panic or error
	p.RemoveTraitBlock("professional")
	assert.Equal(t, 0, p.Traits.Len())
}

func TestCategoriesInsertionOrder(t *testing.T) {
	p, _ := New("p1", "Test")
	require.NoError(t, p.AddTraitBlock("personality", NewObject(), testAllowlist))
	require.NoError(t, p.AddTraitBlock("background", NewObject(), testAllowlist))
	require.NoError(t, p.AddTraitBlock("demographics", NewObject(), testAllowlist))

	assert.Equal(t, []string{"personality", "background", "demographics"}, p.Categories())
}

func TestMergeOverlayWins(t *testing.T) {
	base, _ := New("base", "Base")
	base.AddTraitBlock("professional", NewObject().Set("role", "Teacher").Set("experience", "15 years"), testAllowlist)
	base.AddTraitBlock("personality", NewObject().Set("temperament", "calm"), testAllowlist)

	overlay, _ := New("overlay", "Overlay")
	overlay.AddTraitBlock("professional", NewObject().Set("role", "Professor"), testAllowlist)
	overlay.AddTraitBlock("capabilities", NewObject().Set("research", "expert"), testAllowlist)

	merged := Merge(base, overlay)

	block, _ := merged.Traits.Get("professional")
	role, _ := block.Get("role")
	assert.Equal(t, "Professor", role)

	// Non-conflicting base keys survive
	exp, _ := block.Get("experience")
	assert.Equal(t, "15 years", exp)

	_, ok := merged.Traits.Get("capabilities")
	assert.True(t, ok)

	// Inputs are not mutated
	baseBlock, _ := base.Traits.Get("professional")
	baseRole, _ := baseBlock.Get("role")
	assert.Equal(t, "Teacher", baseRole)
}

func TestClone(t *testing.T) {
	p, _ := New("orig", "Original")
	p.AddTraitBlock("personality", NewObject().Set("temperament", "warm"), testAllowlist)

	clone := p.Clone("copy", "Copy")

	assert.Equal(t, "copy", clone.ID)
	assert.Equal(t, "Copy", clone.Name)
	assert.Equal(t, p.Traits.Keys(), clone.Traits.Keys())

	// Deep copy: mutating the clone leaves the original alone
	block, _ := clone.Traits.Get("personality")
	block.Set("temperament", "cold")
	origBlock, _ := p.Traits.Get("personality")
	v, _ := origBlock.Get("temperament")
	assert.Equal(t, "warm", v)
}

func TestPersonaJSONRoundTrip(t *testing.T) {
	p, _ := New("p1", "Test")
	p.Description = "A test persona"
	p.Category = "general"
	p.AddTraitBlock("professional", NewObject().
		Set("role", "Teacher").
		Set("subjects", []Value{"Math", "Physics"}), testAllowlist)
	p.LLMConfig = NewObject().Set("provider", "openai").Set("temperature", 0.7)

	data, err := p.ToJSON()
	require.NoError(t, err)

	loaded, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}
