package persona

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TraitMap maps category names to trait blocks, preserving the order in
// which categories were added. Block contents are opaque Objects.
type TraitMap struct {
	keys   []string
	blocks map[string]*Object
}

// NewTraitMap creates an empty trait map
func NewTraitMap() *TraitMap {
	return &TraitMap{blocks: make(map[string]*Object)}
}

// Set stores a trait block, overwriting any existing block for the category
func (m *TraitMap) Set(category string, traits *Object) {
	if _, exists := m.blocks[category]; !exists {
		m.keys = append(m.keys, category)
	}
	m.blocks[category] = traits
}

// Get returns the trait block for a category
func (m *TraitMap) Get(category string) (*Object, bool) {
	b, ok := m.blocks[category]
	return b, ok
}

// Delete removes a category and reports whether it was present
func (m *TraitMap) Delete(category string) bool {
	if _, ok := m.blocks[category]; !ok {
		return false
	}
	delete(m.blocks, category)
	for i, k := range m.keys {
		if k == category {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns category names in insertion order
func (m *TraitMap) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of categories
func (m *TraitMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Clone returns a deep copy
func (m *TraitMap) Clone() *TraitMap {
	if m == nil {
		return nil
	}
	out := NewTraitMap()
	for _, k := range m.keys {
		out.Set(k, m.blocks[k].Clone())
	}
	return out
}

// MarshalJSON emits categories in insertion order
func (m *TraitMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.blocks[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object whose values must themselves be objects
func (m *TraitMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("personality_traits must be an object, got %v", tok)
	}
	parsed := NewTraitMap()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		category, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected category name, got %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return err
		}
		block, ok := v.(*Object)
		if !ok {
			return fmt.Errorf("trait category %q must contain an object", category)
		}
		parsed.Set(category, block)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return err
	}
	*m = *parsed
	return nil
}
