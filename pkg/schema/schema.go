package schema

import (
	"fmt"
	"regexp"
)

// Type is the semantic type of a field.
type Type string

const (
	TypeString     Type = "string"
	TypeNumber     Type = "number"
	TypeInt        Type = "integer"
	TypeBool       Type = "boolean"
	TypeStringList Type = "string_list"
	TypeIntList    Type = "integer_list"
	// TypeObjectList holds a list of free-form objects; shape is enforced
	// by the field's Check constraint.
	TypeObjectList Type = "object_list"
)

// FieldSpec declares one named input field with its type, default and
// constraints. A field with a default is optional by construction.
type FieldSpec struct {
	Name        string
	Type        Type
	Description string
	Required    bool
	// Default is applied when the field is absent. nil means no default.
	Default any

	// Declarative constraints, checked after coercion.
	NonEmpty  bool
	MinNumber *float64
	MinInt    *int64
	Enum      []string
	// EntityID requires the string to parse as shard.realm.num.
	EntityID bool
	// Check is the escape hatch for constraints the declarative set
	// cannot express. It receives the coerced value.
	Check func(v any) error
}

// Schema is an immutable ordered set of field specs for one operation.
type Schema struct {
	op     string
	fields []FieldSpec
	index  map[string]int
}

var nameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Define builds a schema, rejecting malformed operation names, duplicate
// or malformed field names, and self-contradictory specs (a required
// field with a default, or a default violating its own constraints).
func Define(op string, fields ...FieldSpec) (*Schema, error) {
	if !nameRe.MatchString(op) {
		return nil, fmt.Errorf("malformed operation name %q", op)
	}
	s := &Schema{op: op, fields: fields, index: make(map[string]int, len(fields))}
	for i, f := range fields {
		if !nameRe.MatchString(f.Name) {
			return nil, fmt.Errorf("%s: malformed field name %q", op, f.Name)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate field %q", op, f.Name)
		}
		s.index[f.Name] = i
		if f.Required && f.Default != nil {
			return nil, fmt.Errorf("%s: field %q is required but has a default", op, f.Name)
		}
		if f.Default != nil {
			coerced, err := coerce(f.Type, f.Default)
			if err != nil {
				return nil, fmt.Errorf("%s: default for field %q: %w", op, f.Name, err)
			}
			if err := checkConstraints(f, coerced); err != nil {
				return nil, fmt.Errorf("%s: default for field %q violates its own constraint: %w", op, f.Name, err)
			}
		}
	}
	return s, nil
}

// MustDefine is Define for startup registration, where a malformed
// schema is fatal.
func MustDefine(op string, fields ...FieldSpec) *Schema {
	s, err := Define(op, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Operation returns the operation name the schema was defined for.
func (s *Schema) Operation() string {
	return s.op
}

// Fields returns the specs in declaration order. Callers must not
// mutate the returned slice.
func (s *Schema) Fields() []FieldSpec {
	return s.fields
}
