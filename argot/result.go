package argot

import "time"

// Result is the typed output record of one parse: one slot per schema
// field, keyed by canonical argument name. A slot holds either a value
// bound from input, the field's materialized default, or nothing. Seen
// reports only values bound from input.
type Result struct {
	schema *Schema
	vals   map[string]value
	set    map[string]bool
}

func newResult(s *Schema) *Result {
	return &Result{
		schema: s,
		vals:   make(map[string]value, len(s.fields)),
		set:    make(map[string]bool, len(s.fields)),
	}
}

// Schema returns the schema this result was parsed against.
func (r *Result) Schema() *Schema { return r.schema }

// Seen reports whether the named argument was bound from input, as opposed
// to holding a default or nothing.
func (r *Result) Seen(name string) bool { return r.set[name] }

// GetString returns a string or enum value. The bool is false when the
// argument was neither provided nor defaulted.
func (r *Result) GetString(name string) (string, bool) {
	v, ok := r.vals[name]
	return v.str, ok
}

// GetInt returns an integer value.
func (r *Result) GetInt(name string) (int64, bool) {
	v, ok := r.vals[name]
	return v.i, ok
}

// GetUint returns an unsigned integer value.
func (r *Result) GetUint(name string) (uint64, bool) {
	v, ok := r.vals[name]
	return v.u, ok
}

// GetFloat returns a float value.
func (r *Result) GetFloat(name string) (float64, bool) {
	v, ok := r.vals[name]
	return v.f, ok
}

// GetBool returns a boolean value.
func (r *Result) GetBool(name string) (bool, bool) {
	v, ok := r.vals[name]
	return v.b, ok
}

// GetDuration returns a duration value.
func (r *Result) GetDuration(name string) (time.Duration, bool) {
	v, ok := r.vals[name]
	return v.d, ok
}

// GetCustom returns the value produced by a custom type's from-string
// initializer.
func (r *Result) GetCustom(name string) (any, bool) {
	v, ok := r.vals[name]
	return v.any, ok
}

// GetStrings returns the raw string values collected by a variadic
// positional, in arrival order.
func (r *Result) GetStrings(name string) ([]string, bool) {
	v, ok := r.vals[name]
	if !ok || v.items == nil {
		return nil, ok && v.items != nil
	}
	out := make([]string, len(v.items))
	for i, it := range v.items {
		out[i] = it.str
	}
	return out, true
}

// GetInts returns the parsed integer values collected by a variadic
// positional declared with an integer type.
func (r *Result) GetInts(name string) ([]int64, bool) {
	v, ok := r.vals[name]
	if !ok || v.items == nil {
		return nil, false
	}
	out := make([]int64, len(v.items))
	for i, it := range v.items {
		out[i] = it.i
	}
	return out, true
}

// MustGetString returns the value or the given fallback when unset.
func (r *Result) MustGetString(name, fallback string) string {
	if v, ok := r.GetString(name); ok {
		return v
	}
	return fallback
}

// MustGetInt returns the value or the given fallback when unset.
func (r *Result) MustGetInt(name string, fallback int64) int64 {
	if v, ok := r.GetInt(name); ok {
		return v
	}
	return fallback
}

// MustGetUint returns the value or the given fallback when unset.
func (r *Result) MustGetUint(name string, fallback uint64) uint64 {
	if v, ok := r.GetUint(name); ok {
		return v
	}
	return fallback
}

// MustGetBool returns the value or the given fallback when unset.
func (r *Result) MustGetBool(name string, fallback bool) bool {
	if v, ok := r.GetBool(name); ok {
		return v
	}
	return fallback
}

// MustGetFloat returns the value or the given fallback when unset.
func (r *Result) MustGetFloat(name string, fallback float64) float64 {
	if v, ok := r.GetFloat(name); ok {
		return v
	}
	return fallback
}

// MustGetDuration returns the value or the given fallback when unset.
func (r *Result) MustGetDuration(name string, fallback time.Duration) time.Duration {
	if v, ok := r.GetDuration(name); ok {
		return v
	}
	return fallback
}

// bind stores a value parsed from input and marks the slot as seen.
func (r *Result) bind(name string, v value) {
	r.vals[name] = v
	r.set[name] = true
}

// bindItem appends one collected value to a variadic slot.
func (r *Result) bindItem(name string, v value) {
	cur := r.vals[name]
	cur.items = append(cur.items, v)
	r.vals[name] = cur
	r.set[name] = true
}
