package registry

// FunctionDef is one catalog entry in the shape chat-completion
// providers expect for function calling.
type FunctionDef struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters"`
}

// ExportFunctions renders the catalog for an LLM collaborator, in
// registration order, one "function" tool per registered operation.
func (r *Registry) ExportFunctions() []map[string]any {
	entries := r.List()
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]any{
			"type": "function",
			"function": FunctionDef{
				Name:        e.Name,
				Description: e.Description,
				Parameters:  e.Schema.JSONSchema(),
			},
		})
	}
	return out
}

// Catalog returns name, description and parameter schema per operation,
// the neutral form used by the HTTP surface.
func (r *Registry) Catalog() []FunctionDef {
	entries := r.List()
	out := make([]FunctionDef, 0, len(entries))
	for _, e := range entries {
		out = append(out, FunctionDef{
			Name:        e.Name,
			Description: e.Description,
			Parameters:  e.Schema.JSONSchema(),
		})
	}
	return out
}
