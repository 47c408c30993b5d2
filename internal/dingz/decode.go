package dingz

import (
	"fmt"
)

// DecodeError is returned when a raw JSON value doesn't match the shape
// the target schema type expects. The raw value is kept on the error so
// it can be logged at the decode boundary.
type DecodeError struct {
	Type string
	Raw  any
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeFunc converts a raw JSON object into a schema type.
type DecodeFunc[T any] func(raw map[string]any) (T, error)

// ListFromJSON decodes a raw JSON array entry by entry. A null entry
// becomes a nil slot in the result (the device reports unconfigured
// channels as null), any other entry must decode fully.
func ListFromJSON[T any](typ string, raw []any, decode DecodeFunc[T]) ([]*T, error) {
	result := make([]*T, len(raw))
	for i, entry := range raw {
		if entry == nil {
			continue
		}
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, &DecodeError{Type: typ, Raw: entry, Err: fmt.Errorf("entry %d: expected object, got %T", i, entry)}
		}
		v, err := decode(m)
		if err != nil {
			return nil, err
		}
		result[i] = &v
	}
	return result, nil
}

// OptionalFromJSON decodes a value that the firmware may report as null
// or omit entirely; both mean "absent" and yield nil without error.
func OptionalFromJSON[T any](typ string, raw any, decode DecodeFunc[T]) (*T, error) {
	if raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &DecodeError{Type: typ, Raw: raw, Err: fmt.Errorf("expected object, got %T", raw)}
	}
	v, err := decode(m)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// obj extracts typed fields from a raw JSON object, remembering the first
// mismatch it hits. Accessors called after a failure return zero values,
// so a decode function can read all its fields and check Err once.
type obj struct {
	typ string
	raw map[string]any
	err error
}

func newObj(typ string, raw map[string]any) *obj {
	return &obj{typ: typ, raw: raw}
}

// Err returns the accumulated failure as a DecodeError, or nil.
func (o *obj) Err() error {
	if o.err == nil {
		return nil
	}
	return &DecodeError{Type: o.typ, Raw: o.raw, Err: o.err}
}

func (o *obj) failf(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf(format, args...)
	}
}

func (o *obj) required(key string) any {
	v, ok := o.raw[key]
	if !ok {
		o.failf("missing field %q", key)
		return nil
	}
	return v
}

func (o *obj) Bool(key string) bool {
	b, ok := o.required(key).(bool)
	if !ok {
		o.failf("field %q: expected bool, got %T", key, o.raw[key])
	}
	return b
}

func (o *obj) String(key string) string {
	s, ok := o.required(key).(string)
	if !ok {
		o.failf("field %q: expected string, got %T", key, o.raw[key])
	}
	return s
}

// Float reads a required JSON number (encoding/json decodes all numbers
// as float64).
func (o *obj) Float(key string) float64 {
	f, ok := o.required(key).(float64)
	if !ok {
		o.failf("field %q: expected number, got %T", key, o.raw[key])
	}
	return f
}

func (o *obj) Int(key string) int {
	return int(o.Float(key))
}

func (o *obj) Int64(key string) int64 {
	return int64(o.Float(key))
}

// optional returns the raw value for key, or nil when the key is missing
// or null. The device omits some fields on firmware that doesn't support
// them and nulls others on sensor failure; both decode to absent.
func (o *obj) optional(key string) any {
	v, ok := o.raw[key]
	if !ok || v == nil {
		return nil
	}
	return v
}

func (o *obj) OptBool(key string) *bool {
	v := o.optional(key)
	if v == nil {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		o.failf("field %q: expected bool, got %T", key, v)
		return nil
	}
	return &b
}

func (o *obj) OptString(key string) *string {
	v := o.optional(key)
	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		o.failf("field %q: expected string, got %T", key, v)
		return nil
	}
	return &s
}

func (o *obj) OptFloat(key string) *float64 {
	v := o.optional(key)
	if v == nil {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		o.failf("field %q: expected number, got %T", key, v)
		return nil
	}
	return &f
}

func (o *obj) OptInt(key string) *int {
	f := o.OptFloat(key)
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}

// Object reads a required nested JSON object.
func (o *obj) Object(key string) map[string]any {
	m, ok := o.required(key).(map[string]any)
	if !ok {
		o.failf("field %q: expected object, got %T", key, o.raw[key])
	}
	return m
}

// List reads a required JSON array.
func (o *obj) List(key string) []any {
	l, ok := o.required(key).([]any)
	if !ok {
		o.failf("field %q: expected array, got %T", key, o.raw[key])
	}
	return l
}

// OptList reads an array that may be missing or null.
func (o *obj) OptList(key string) []any {
	v := o.optional(key)
	if v == nil {
		return nil
	}
	l, ok := v.([]any)
	if !ok {
		o.failf("field %q: expected array, got %T", key, v)
		return nil
	}
	return l
}

// objectField decodes a required nested object through the given decoder.
// A failure inside the nested decode is propagated unmodified so the
// caller logs it exactly once.
func objectField[T any](o *obj, key string, decode DecodeFunc[T]) (T, error) {
	var zero T
	m := o.Object(key)
	if err := o.Err(); err != nil {
		return zero, err
	}
	return decode(m)
}

func listField[T any](o *obj, key string, typ string, decode DecodeFunc[T]) ([]*T, error) {
	l := o.List(key)
	if err := o.Err(); err != nil {
		return nil, err
	}
	return ListFromJSON(typ, l, decode)
}

func optionalField[T any](o *obj, key string, typ string, decode DecodeFunc[T]) (*T, error) {
	return OptionalFromJSON(typ, o.optional(key), decode)
}
