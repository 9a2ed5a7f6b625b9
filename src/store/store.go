// Package store persists persona documents as one JSON file per
// persona_id in a configured directory. There is no locking: concurrent
// writers to the same id race and the last completed rename wins. The
// temp-write-then-rename keeps readers from ever observing a torn file;
// any stronger isolation is the embedder's responsibility.
package store

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	serrors "sona/src/errors"
	"sona/src/persona"
)

// Store is file-backed CRUD over persona documents
type Store struct {
	dir string
}

// New creates a store rooted at the given directory. The directory is
// created lazily on first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory this store reads and writes
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// checkID rejects empty ids and ids that would escape the store
// directory when used as a filename
func checkID(id string) error {
	if id == "" {
		return &serrors.ValidationError{Field: "persona_id", Message: "must be a non-empty string"}
	}
	if filepath.Base(id) != id || id == "." || id == ".." {
		return &serrors.ValidationError{Field: "persona_id", Value: id, Message: "must not contain path separators"}
	}
	return nil
}

// Save writes the persona atomically to {dir}/{persona_id}.json,
// overwriting any existing document, and returns the file path. The
// modified timestamp is refreshed before writing.
func (s *Store) Save(p *persona.Persona) (string, error) {
	if err := checkID(p.ID); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", serrors.NewStoreError("save", s.dir, err)
	}

	p.Touch()

	data, err := p.ToJSON()
	if err != nil {
		return "", serrors.NewStoreError("save", s.path(p.ID), err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+p.ID+"-*.tmp")
	if err != nil {
		return "", serrors.NewStoreError("save", s.dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", serrors.NewStoreError("save", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", serrors.NewStoreError("save", tmpName, err)
	}

	path := s.path(p.ID)
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", serrors.NewStoreError("save", path, err)
	}

	return path, nil
}

// Load reads and parses the document for an id
func (s *Store) Load(id string) (*persona.Persona, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	path := s.path(id)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serrors.NewStoreError("load", path, serrors.ErrPersonaNotFound)
		}
		return nil, serrors.NewStoreError("load", path, err)
	}

	return parseDocument(path, data)
}

// parseDocument maps unparseable or structurally incomplete documents
// to ErrCorruptData
func parseDocument(path string, data []byte) (*persona.Persona, error) {
	p, err := persona.FromJSON(data)
	if err != nil {
		return nil, serrors.NewStoreError("load", path, serrors.WrapWithContext(serrors.ErrCorruptData, "%v", err))
	}
	if p.ID == "" || p.Name == "" {
		return nil, serrors.NewStoreError("load", path, serrors.WrapWithContext(serrors.ErrCorruptData, "missing persona_id or name"))
	}
	return p, nil
}

// Delete removes the backing file. Returns whether a file was actually
// removed; deleting a nonexistent persona is not an error.
func (s *Store) Delete(id string) (bool, error) {
	if err := checkID(id); err != nil {
		return false, err
	}

	path := s.path(id)
	err := os.Remove(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, serrors.NewStoreError("delete", path, err)
	}
	return true, nil
}

// Summary is the listing view of a stored persona
type Summary struct {
	ID          string `json:"persona_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	TraitCount  int    `json:"trait_count"`
	ModifiedAt  string `json:"modified_at"`
}

// List returns summaries for every readable document in the directory,
// newest-modified first. Files that fail to parse are skipped; the
// listing is best-effort, not atomic across files.
func (s *Store) List() ([]Summary, error) {
	personas, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(personas))
	for _, p := range personas {
		summary := Summary{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			TraitCount:  p.Traits.Len(),
		}
		if p.Metadata != nil {
			summary.ModifiedAt = p.Metadata.ModifiedAt
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].ModifiedAt > summaries[j].ModifiedAt
	})
	return summaries, nil
}

// LoadAll returns every parseable persona in the directory
func (s *Store) LoadAll() ([]*persona.Persona, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*persona.Persona{}, nil
		}
		return nil, serrors.NewStoreError("list", s.dir, err)
	}

	personas := []*persona.Persona{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		p, err := parseDocument(path, data)
		if err != nil {
			continue
		}
		personas = append(personas, p)
	}
	return personas, nil
}

// Search returns personas whose name, description or any flattened trait
// value contains the query, case-insensitively
func (s *Store) Search(query string) ([]*persona.Persona, error) {
	personas, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := []*persona.Persona{}
	for _, p := range personas {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(flattenTraits(p.Traits)), needle) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// flattenTraits joins every trait key and value into one searchable string
func flattenTraits(traits *persona.TraitMap) string {
	var b strings.Builder
	for _, category := range traits.Keys() {
		block, _ := traits.Get(category)
		b.WriteString(category)
		b.WriteByte(' ')
		flattenObject(&b, block)
	}
	return b.String()
}

func flattenObject(b *strings.Builder, obj *persona.Object) {
	for _, key := range obj.Keys() {
		v, _ := obj.Get(key)
		b.WriteString(key)
		b.WriteByte(' ')
		flattenValue(b, v)
	}
}

func flattenValue(b *strings.Builder, v persona.Value) {
	switch t := v.(type) {
	case nil:
	case string:
		b.WriteString(t)
		b.WriteByte(' ')
	case bool:
		b.WriteString(strconv.FormatBool(t))
		b.WriteByte(' ')
	case float64:
		b.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
		b.WriteByte(' ')
	case []persona.Value:
		for _, e := range t {
			flattenValue(b, e)
		}
	case *persona.Object:
		flattenObject(b, t)
	}
}
