package schema

// JSONSchema renders the schema as a JSON-schema object map, the shape
// function-calling LLM providers expect for tool parameters.
func (s *Schema) JSONSchema() map[string]any {
	properties := make(map[string]any, len(s.fields))
	required := make([]string, 0)
	for _, f := range s.fields {
		prop := map[string]any{"type": jsonType(f.Type)}
		if f.Type == TypeStringList {
			prop["items"] = map[string]any{"type": "string"}
		}
		if f.Type == TypeIntList {
			prop["items"] = map[string]any{"type": "integer"}
		}
		if f.Type == TypeObjectList {
			prop["items"] = map[string]any{"type": "object"}
		}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		if f.Default != nil {
			prop["default"] = f.Default
		}
		if len(f.Enum) > 0 {
			prop["enum"] = f.Enum
		}
		if f.MinNumber != nil {
			prop["minimum"] = *f.MinNumber
		}
		if f.MinInt != nil {
			prop["minimum"] = *f.MinInt
		}
		properties[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func jsonType(t Type) string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeInt:
		return "integer"
	case TypeBool:
		return "boolean"
	case TypeStringList, TypeIntList, TypeObjectList:
		return "array"
	default:
		return "string"
	}
}
