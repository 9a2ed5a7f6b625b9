package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sona/src/persona"
)

func TestConversationStarterProfessional(t *testing.T) {
	c := New(testContexts)
	p := teachingPersona(t)

	starter := c.ConversationStarter(p, "professional")
	assert.Equal(t, "Hello! I'm Ms. Johnson. As a Teacher, I'm here to help.", starter)
}

func TestConversationStarterTeaching(t *testing.T) {
	c := New(testContexts)
	p := teachingPersona(t)
	require.NoError(t, p.AddTraitBlock("communication_style",
		persona.NewObject().Set("tone", "patient"), testAllowlist))

	starter := c.ConversationStarter(p, "teaching")
	assert.Contains(t, starter, "Hello! I'm Ms. Johnson.")
	assert.Contains(t, starter, "What would you like to know?")
}

func TestConversationStarterCustomerService(t *testing.T) {
	c := New(testContexts)
	starter := c.ConversationStarter(teachingPersona(t), "customer_service")
	assert.Contains(t, starter, "How may I assist you today?")
}

func TestConversationStarterFallback(t *testing.T) {
	c := New(testContexts)

	starter := c.ConversationStarter(teachingPersona(t), "")
	assert.Equal(t, "Hello! I'm Ms. Johnson. How can I help you today?", starter)

	starter = c.ConversationStarter(nil, "")
	assert.Equal(t, "How can I help you today?", starter)
}

func TestKeyTraitsPriorityOrder(t *testing.T) {
	p, err := persona.New("k1", "Key")
	require.NoError(t, err)
	// Inserted out of priority order on purpose
	require.NoError(t, p.AddTraitBlock("personality",
		persona.NewObject().Set("temperament", "warm"), testAllowlist))
	require.NoError(t, p.AddTraitBlock("professional",
		persona.NewObject().Set("role", "Teacher").Set("experience", "15 years"), testAllowlist))

	traits := KeyTraits(p, 10)
	assert.Equal(t, []string{
		"role: Teacher",
		"experience: 15 years",
		"temperament: warm",
	}, traits)
}

func TestKeyTraitsRespectsMax(t *testing.T) {
	p, err := persona.New("k1", "Key")
	require.NoError(t, err)
	require.NoError(t, p.AddTraitBlock("professional",
		persona.NewObject().Set("role", "Teacher").Set("experience", "15 years"), testAllowlist))

	traits := KeyTraits(p, 1)
	assert.Equal(t, []string{"role: Teacher"}, traits)
}

func TestKeyTraitsSkipsNonScalars(t *testing.T) {
	p, err := persona.New("k1", "Key")
	require.NoError(t, err)
	require.NoError(t, p.AddTraitBlock("professional", persona.NewObject().
		Set("subjects", []persona.Value{"Math"}).
		Set("details", persona.NewObject().Set("x", "y")).
		Set("role", "Teacher"), testAllowlist))

	traits := KeyTraits(p, 10)
	assert.Equal(t, []string{"role: Teacher"}, traits)
}

func TestKeyTraitsHumanizesKeys(t *testing.T) {
	p, err := persona.New("k1", "Key")
	require.NoError(t, err)
	require.NoError(t, p.AddTraitBlock("communication_style",
		persona.NewObject().Set("speaking_pace", "measured"), testAllowlist))

	traits := KeyTraits(p, 10)
	assert.Equal(t, []string{"speaking pace: measured"}, traits)
}
