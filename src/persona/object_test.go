package persona

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPreservesInsertionOrder(t *testing.T) {
	obj := NewObject().
		Set("zeta", "last alphabetically, first inserted").
		Set("alpha", 1.0).
		Set("mid", true)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

	// Overwriting must not move the key
	obj.Set("alpha", 2.0)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())
}

func TestObjectJSONRoundTrip(t *testing.T) {
	in := `{"b":1,"a":["x",true,null],"c":{"z":"deep","y":2.5}}`

	obj := NewObject()
	require.NoError(t, json.Unmarshal([]byte(in), obj))

	assert.Equal(t, []string{"b", "a", "c"}, obj.Keys())

	nested, ok := obj.Get("c")
	require.True(t, ok)
	nestedObj, ok := nested.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "y"}, nestedObj.Keys())

	out, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestObjectScalarTypes(t *testing.T) {
	obj := NewObject()
	require.NoError(t, json.Unmarshal([]byte(`{"s":"str","n":3.5,"i":42,"b":false,"nil":null}`), obj))

	v, _ := obj.Get("s")
	assert.Equal(t, "str", v)
	v, _ = obj.Get("n")
	assert.Equal(t, 3.5, v)
	v, _ = obj.Get("i")
	assert.Equal(t, 42.0, v)
	v, _ = obj.Get("b")
	assert.Equal(t, false, v)
	v, ok := obj.Get("nil")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestObjectDelete(t *testing.T) {
	obj := NewObject().Set("a", 1.0).Set("b", 2.0).Set("c", 3.0)

	assert.True(t, obj.Delete("b"))
	assert.Equal(t, []string{"a", "c"}, obj.Keys())
	assert.False(t, obj.Delete("b"))
	assert.Equal(t, 2, obj.Len())
}

func TestObjectCloneIsDeep(t *testing.T) {
	inner := NewObject().Set("k", "v")
	obj := NewObject().Set("nested", inner).Set("list", []Value{"a", "b"})

	clone := obj.Clone()

	inner.Set("k", "changed")
	got, _ := clone.Get("nested")
	v, _ := got.(*Object).Get("k")
	assert.Equal(t, "v", v)
}

func TestObjectRejectsNonObject(t *testing.T) {
	obj := NewObject()
	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), obj))
	assert.Error(t, json.Unmarshal([]byte(`"scalar"`), obj))
}

func TestTraitMapRejectsScalarBlocks(t *testing.T) {
	m := NewTraitMap()
	err := json.Unmarshal([]byte(`{"professional":"not a block"}`), m)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "professional")
}

func TestTraitMapRoundTrip(t *testing.T) {
	in := `{"professional":{"role":"Teacher"},"personality":{"temperament":"warm"}}`

	m := NewTraitMap()
	require.NoError(t, json.Unmarshal([]byte(in), m))
	assert.Equal(t, []string{"professional", "personality"}, m.Keys())

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}
