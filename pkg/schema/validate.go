package schema

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
)

// FieldError reports a validation failure for one field (or, for
// unknown-key rejections, the offending key set).
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// Validate checks raw arguments against the schema and returns fully
// populated values with defaults applied. It is pure: raw is never
// mutated and no state is touched.
//
// Rules run in order: unknown keys, then per declared field missing
// required, type coercion, constraints; defaults fill the rest.
func (s *Schema) Validate(raw map[string]any) (Values, error) {
	var unknown []string
	for k := range raw {
		if _, ok := s.index[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &FieldError{Reason: "unknown fields: " + strings.Join(unknown, ", ")}
	}

	out := make(Values, len(s.fields))
	for _, f := range s.fields {
		v, present := raw[f.Name]
		if !present || v == nil {
			if f.Required {
				return nil, &FieldError{Field: f.Name, Reason: "required"}
			}
			if f.Default != nil {
				coerced, err := coerce(f.Type, f.Default)
				if err != nil {
					return nil, &FieldError{Field: f.Name, Reason: err.Error()}
				}
				out[f.Name] = coerced
			}
			continue
		}
		coerced, err := coerce(f.Type, v)
		if err != nil {
			return nil, &FieldError{Field: f.Name, Reason: err.Error()}
		}
		if err := checkConstraints(f, coerced); err != nil {
			return nil, &FieldError{Field: f.Name, Reason: err.Error()}
		}
		out[f.Name] = coerced
	}
	return out, nil
}

// coerce converts v to the canonical Go representation of t. Coercion is
// deliberately weak for scalars (JSON numbers arrive as float64, ints as
// strings from some callers) but never crosses kinds silently: booleans
// do not become numbers and objects do not become strings.
func coerce(t Type, v any) (any, error) {
	switch t {
	case TypeString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return s, nil
	case TypeNumber:
		if _, isBool := v.(bool); isBool {
			return nil, fmt.Errorf("expected number, got bool")
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("expected number, got %T", v)
		}
		return f, nil
	case TypeInt:
		if _, isBool := v.(bool); isBool {
			return nil, fmt.Errorf("expected integer, got bool")
		}
		if f, isFloat := v.(float64); isFloat {
			if f != math.Trunc(f) {
				return nil, fmt.Errorf("expected integer, got fractional number %g", f)
			}
			return int64(f), nil
		}
		n, err := cast.ToInt64E(v)
		if err != nil {
			return nil, fmt.Errorf("expected integer, got %T", v)
		}
		return n, nil
	case TypeBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected boolean, got %T", v)
		}
		return b, nil
	case TypeStringList:
		items, err := toList(v)
		if err != nil {
			return nil, err
		}
		out := make([]string, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string at index %d, got %T", i, item)
			}
			out[i] = s
		}
		return out, nil
	case TypeIntList:
		items, err := toList(v)
		if err != nil {
			return nil, err
		}
		out := make([]int64, len(items))
		for i, item := range items {
			coerced, err := coerce(TypeInt, item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %s", i, err.Error())
			}
			out[i] = coerced.(int64)
		}
		return out, nil
	case TypeObjectList:
		items, err := toList(v)
		if err != nil {
			return nil, err
		}
		out := make([]map[string]any, len(items))
		for i, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("expected object at index %d, got %T", i, item)
			}
			out[i] = m
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported type %q", t)
	}
}

func toList(v any) ([]any, error) {
	switch items := v.(type) {
	case []any:
		return items, nil
	case []string:
		out := make([]any, len(items))
		for i, s := range items {
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected list, got %T", v)
	}
}

func checkConstraints(f FieldSpec, v any) error {
	if f.NonEmpty {
		switch val := v.(type) {
		case string:
			if strings.TrimSpace(val) == "" {
				return fmt.Errorf("must not be empty")
			}
		case []string:
			if len(val) == 0 {
				return fmt.Errorf("must not be empty")
			}
		case []int64:
			if len(val) == 0 {
				return fmt.Errorf("must not be empty")
			}
		case []map[string]any:
			if len(val) == 0 {
				return fmt.Errorf("must not be empty")
			}
		}
	}
	if f.MinNumber != nil {
		if val, ok := v.(float64); ok && val < *f.MinNumber {
			return fmt.Errorf("must be >= %g", *f.MinNumber)
		}
	}
	if f.MinInt != nil {
		if val, ok := v.(int64); ok && val < *f.MinInt {
			return fmt.Errorf("must be >= %d", *f.MinInt)
		}
	}
	if len(f.Enum) > 0 {
		val, ok := v.(string)
		if ok {
			found := false
			for _, e := range f.Enum {
				if e == val {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("must be one of %s", strings.Join(f.Enum, ", "))
			}
		}
	}
	if f.EntityID {
		if val, ok := v.(string); ok && !ledger.IsValidEntityID(val) {
			return fmt.Errorf("must be a shard.realm.num id like 0.0.12345")
		}
	}
	if f.Check != nil {
		if err := f.Check(v); err != nil {
			return err
		}
	}
	return nil
}
