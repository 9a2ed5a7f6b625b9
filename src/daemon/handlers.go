package daemon

import (
	"encoding/json"
	"log"

	"sona/src/persona"
	"sona/src/store"
	"sona/src/templates"
)

// routeMethod routes JSON-RPC methods to their handlers
func (s *Server) routeMethod(method string, params json.RawMessage) (interface{}, error) {
	switch method {
	case "persona.create":
		return s.handleCreate(params)
	case "persona.get":
		return s.handleGet(params)
	case "persona.list":
		return s.handleList(params)
	case "persona.update":
		return s.handleUpdate(params)
	case "persona.traits.add":
		return s.handleTraitsAdd(params)
	case "persona.traits.remove":
		return s.handleTraitsRemove(params)
	case "persona.delete":
		return s.handleDelete(params)
	case "persona.generate":
		return s.handleGenerate(params)
	case "persona.validate":
		return s.handleValidate(params)
	case "persona.completeness":
		return s.handleCompleteness(params)
	case "persona.search":
		return s.handleSearch(params)
	case "persona.export":
		return s.handleExport(params)
	case "persona.import":
		return s.handleImport(params)
	case "persona.merge":
		return s.handleMerge(params)
	case "persona.clone":
		return s.handleClone(params)
	case "template.list":
		return s.handleTemplateList(params)
	case "template.apply":
		return s.handleTemplateApply(params)
	case "status.get":
		return s.handleStatus(params)
	default:
		return nil, &RPCError{Code: -32601, Message: "Method not found"}
	}
}

func invalidParams(err error) *RPCError {
	return &RPCError{Code: -32602, Message: "Invalid params", Data: err.Error()}
}

func (s *Server) handleCreate(params json.RawMessage) (interface{}, error) {
	var p struct {
		Persona json.RawMessage `json:"persona"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}

	doc, err := persona.FromJSON(p.Persona)
	if err != nil {
		return nil, invalidParams(err)
	}

	if ok, errs := s.validator.Structure(doc); !ok {
		return nil, &RPCError{Code: -32602, Message: "Invalid persona", Data: errs}
	}

	if doc.LLMConfig == nil {
		doc.LLMConfig = s.settings.DefaultLLMConfig()
	}

	path, err := s.store.Save(doc)
	if err != nil {
		return nil, err
	}

	return map[string]string{"persona_id": doc.ID, "path": path}, nil
}

func (s *Server) handleGet(params json.RawMessage) (interface{}, error) {
	var p struct {
		PersonaID string `json:"persona_id"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}
	return s.store.Load(p.PersonaID)
}

func (s *Server) handleList(json.RawMessage) (interface{}, error) {
	return s.store.List()
}

// UpdateParams applies trait mutations to a stored persona
type UpdateParams struct {
	PersonaID   string                     `json:"persona_id"`
	Name        string                     `json:"name,omitempty"`
	Description string                     `json:"description,omitempty"`
	SetTraits   map[string]json.RawMessage `json:"set_traits,omitempty"`
	Remove      []string                   `json:"remove_categories,omitempty"`
}

func (s *Server) handleUpdate(params json.RawMessage) (interface{}, error) {
	var p UpdateParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}

	doc, err := s.store.Load(p.PersonaID)
	if err != nil {
		return nil, err
	}

	if p.Name != "" {
		doc.Name = p.Name
	}
	if p.Description != "" {
		doc.Description = p.Description
	}

	allowed := s.validator.Allowed()
	for category, raw := range p.SetTraits {
		traits := persona.NewObject()
		if err := json.Unmarshal(raw, traits); err != nil {
			return nil, invalidParams(err)
		}
		if err := doc.AddTraitBlock(category, traits, allowed); err != nil {
			return nil, err
		}
	}
	for _, category := range p.Remove {
		doc.RemoveTraitBlock(category)
	}

	if ok, errs := s.validator.Structure(doc); !ok {
		return nil, &RPCError{Code: -32602, Message: "Invalid persona", Data: errs}
	}

	if _, err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Server) handleTraitsAdd(params json.RawMessage) (interface{}, error) {
	var p struct {
		PersonaID string          `json:"persona_id"`
		Category  string          `json:"category"`
		Traits    json.RawMessage `json:"traits"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}

	doc, err := s.store.Load(p.PersonaID)
	if err != nil {
		return nil, err
	}

	traits := persona.NewObject()
	if err := json.Unmarshal(p.Traits, traits); err != nil {
		return nil, invalidParams(err)
	}
	if err := doc.AddTraitBlock(p.Category, traits, s.validator.Allowed()); err != nil {
		return nil, err
	}

	if _, err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Server) handleTraitsRemove(params json.RawMessage) (interface{}, error) {
	var p struct {
		PersonaID string `json:"persona_id"`
		Category  string `json:"category"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}

	doc, err := s.store.Load(p.PersonaID)
	if err != nil {
		return nil, err
	}

	doc.RemoveTraitBlock(p.Category)

	if _, err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Server) handleDelete(params json.RawMessage) (interface{}, error) {
	var p struct {
		PersonaID string `json:"persona_id"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}

	deleted, err := s.store.Delete(p.PersonaID)
	if err != nil {
		return nil, err
	}
	return map[string]bool{"deleted": deleted}, nil
}

func (s *Server) handleGenerate(params json.RawMessage) (interface{}, error) {
	var p struct {
		PersonaID string `json:"persona_id"`
		Context   string `json:"context,omitempty"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}

	doc, err := s.store.Load(p.PersonaID)
	if err != nil {
		return nil, err
	}

	prompt := s.composer.SystemPrompt(doc, p.Context)

	if s.history != nil {
		// Rendering succeeded; history is best-effort
		if err := s.history.Record(doc.ID, p.Context, prompt); err != nil {
			log.Printf("Warning: failed to record render: %v", err)
		}
	}

	return map[string]string{"persona_id": doc.ID, "context": p.Context, "prompt": prompt}, nil
}

func (s *Server) handleValidate(params json.RawMessage) (interface{}, error) {
	var p struct {
		Persona json.RawMessage `json:"persona"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}

	doc, err := persona.FromJSON(p.Persona)
	if err != nil {
		return nil, invalidParams(err)
	}

	categoriesOK, invalid := s.validator.Categories(doc)
	structureOK, errs := s.validator.Structure(doc)

	return map[string]interface{}{
		"valid":              categoriesOK && structureOK,
		"invalid_categories": invalid,
		"errors":             errs,
	}, nil
}

func (s *Server) handleCompleteness(params json.RawMessage) (interface{}, error) {
	var p struct {
		PersonaID string `json:"persona_id"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}

	doc, err := s.store.Load(p.PersonaID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"completeness": s.validator.CompletenessReport(doc),
		"suggestions":  s.validator.SuggestTraits(doc),
	}, nil
}

func (s *Server) handleSearch(params json.RawMessage) (interface{}, error) {
	var p struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}
	return s.store.Search(p.Query)
}

func (s *Server) handleExport(params json.RawMessage) (interface{}, error) {
	var p struct {
		PersonaID string `json:"persona_id"`
		Format    string `json:"format"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}

	format, err := store.ParseFormat(p.Format)
	if err != nil {
		return nil, invalidParams(err)
	}

	doc, err := s.store.Load(p.PersonaID)
	if err != nil {
		return nil, err
	}

	content, err := store.Export(doc, format)
	if err != nil {
		return nil, err
	}
	return map[string]string{"persona_id": doc.ID, "format": string(format), "content": content}, nil
}

func (s *Server) handleImport(params json.RawMessage) (interface{}, error) {
	var p struct {
		Content string `json:"content"`
		Format  string `json:"format"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}

	format, err := store.ParseFormat(p.Format)
	if err != nil {
		return nil, invalidParams(err)
	}

	doc, err := store.Import([]byte(p.Content), format, s.validator.Allowed())
	if err != nil {
		return nil, err
	}

	path, err := s.store.Save(doc)
	if err != nil {
		return nil, err
	}
	return map[string]string{"persona_id": doc.ID, "path": path}, nil
}

func (s *Server) handleMerge(params json.RawMessage) (interface{}, error) {
	var p struct {
		BaseID    string `json:"base_id"`
		OverlayID string `json:"overlay_id"`
		NewID     string `json:"new_id"`
		NewName   string `json:"new_name"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}

	base, err := s.store.Load(p.BaseID)
	if err != nil {
		return nil, err
	}
	overlay, err := s.store.Load(p.OverlayID)
	if err != nil {
		return nil, err
	}

	merged := persona.Merge(base, overlay)
	if p.NewID != "" {
		merged.ID = p.NewID
	}
	if p.NewName != "" {
		merged.Name = p.NewName
	}

	if _, err := s.store.Save(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *Server) handleClone(params json.RawMessage) (interface{}, error) {
	var p struct {
		PersonaID string `json:"persona_id"`
		NewID     string `json:"new_id"`
		NewName   string `json:"new_name"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}

	doc, err := s.store.Load(p.PersonaID)
	if err != nil {
		return nil, err
	}

	cloned := doc.Clone(p.NewID, p.NewName)
	if _, err := s.store.Save(cloned); err != nil {
		return nil, err
	}
	return cloned, nil
}

func (s *Server) handleTemplateList(json.RawMessage) (interface{}, error) {
	return templates.Catalog(), nil
}

func (s *Server) handleTemplateApply(params json.RawMessage) (interface{}, error) {
	var p struct {
		TemplateID     string          `json:"template_id"`
		Customizations json.RawMessage `json:"customizations,omitempty"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams(err)
	}

	var custom *persona.Object
	if len(p.Customizations) > 0 {
		custom = persona.NewObject()
		if err := json.Unmarshal(p.Customizations, custom); err != nil {
			return nil, invalidParams(err)
		}
	}

	doc, err := templates.Apply(p.TemplateID, custom)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Server) handleStatus(json.RawMessage) (interface{}, error) {
	summaries, err := s.store.List()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"personas_directory": s.store.Dir(),
		"persona_count":      len(summaries),
		"categories":         s.validator.Allowed(),
	}, nil
}
