package schema

// Values is a validated, fully populated argument bundle. Getters assume
// Validate already ran; an absent optional field yields the zero value.
type Values map[string]any

func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

func (v Values) Int(name string) int64 {
	n, _ := v[name].(int64)
	return n
}

func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

func (v Values) Strings(name string) []string {
	s, _ := v[name].([]string)
	return s
}

func (v Values) Ints(name string) []int64 {
	n, _ := v[name].([]int64)
	return n
}

func (v Values) Objects(name string) []map[string]any {
	o, _ := v[name].([]map[string]any)
	return o
}
