package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind is the type a schema field is coerced to.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindTime
)

// Field describes one input field. Build it with String, Int, Float or Time.
type Field struct {
	name     string
	kind     Kind
	required bool
	min, max *float64
	rangeMsg string
	def      interface{}
}

func String(name string) *Field { return &Field{name: name, kind: KindString} }
func Int(name string) *Field    { return &Field{name: name, kind: KindInt} }
func Float(name string) *Field  { return &Field{name: name, kind: KindFloat} }

// Time accepts RFC3339 timestamps.
func Time(name string) *Field { return &Field{name: name, kind: KindTime} }

func (f *Field) Required() *Field {
	f.required = true
	return f
}

// NonNegative rejects values below zero with "<field> must not be negative".
func (f *Field) NonNegative() *Field {
	zero := 0.0
	f.min = &zero
	return f
}

// Min sets an inclusive lower bound.
func (f *Field) Min(v float64) *Field {
	f.min = &v
	return f
}

// Between sets inclusive bounds; msg replaces the generic range message.
func (f *Field) Between(lo, hi float64, msg string) *Field {
	f.min, f.max = &lo, &hi
	f.rangeMsg = msg
	return f
}

// Default is used when an optional field is absent.
func (f *Field) Default(v interface{}) *Field {
	f.def = v
	return f
}

// Schema validates and coerces a decoded JSON object.
type Schema struct {
	fields []*Field
}

func NewSchema(fields ...*Field) *Schema {
	return &Schema{fields: fields}
}

// SchemaError lists every problem found, in field order.
type SchemaError struct {
	Errors []string
}

func (e *SchemaError) Error() string {
	return "Validation failed: " + strings.Join(e.Errors, "; ")
}

// Values holds coerced input keyed by field name.
type Values map[string]interface{}

func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v Values) Int(name string) int {
	i, _ := v[name].(int)
	return i
}

func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

func (v Values) Time(name string) time.Time {
	t, _ := v[name].(time.Time)
	return t
}

// Validate checks required fields first and reports all of the missing ones.
// Only when none are missing are the values coerced and bounds checked.
func (s *Schema) Validate(input map[string]interface{}) (Values, error) {
	var missing []string
	for _, f := range s.fields {
		if f.required && f.isBlank(input[f.name]) {
			missing = append(missing, f.name+" is required")
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Errors: missing}
	}

	values := make(Values, len(s.fields))
	var problems []string
	for _, f := range s.fields {
		raw, present := input[f.name]
		if !present || f.isBlank(raw) {
			if f.def != nil {
				values[f.name] = f.def
			} else {
				values[f.name] = zeroOf(f.kind)
			}
			continue
		}

		val, msg := f.coerce(raw)
		if msg != "" {
			problems = append(problems, msg)
			continue
		}
		if msg := f.checkBounds(val); msg != "" {
			problems = append(problems, msg)
			continue
		}
		values[f.name] = val
	}
	if len(problems) > 0 {
		return nil, &SchemaError{Errors: problems}
	}
	return values, nil
}

func (f *Field) coerce(raw interface{}) (interface{}, string) {
	switch f.kind {
	case KindString:
		switch raw.(type) {
		case string, float64, json.Number:
			return strings.TrimSpace(stringify(raw)), ""
		default:
			return nil, f.name + " must be a string"
		}
	case KindInt:
		n, ok := toNumber(raw)
		if !ok {
			return nil, f.name + " must be a whole number"
		}
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			return nil, f.name + " must be a whole number"
		}
		return int(n), ""
	case KindFloat:
		n, ok := toNumber(raw)
		if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, f.name + " must be a number"
		}
		return n, ""
	case KindTime:
		s, ok := raw.(string)
		if !ok {
			return nil, f.name + " must be an RFC3339 timestamp"
		}
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
		if err != nil {
			return nil, f.name + " must be an RFC3339 timestamp"
		}
		return t, ""
	}
	return nil, fmt.Sprintf("%s has an unsupported type", f.name)
}

func (f *Field) checkBounds(val interface{}) string {
	if f.min == nil && f.max == nil {
		return ""
	}

	var n float64
	switch x := val.(type) {
	case int:
		n = float64(x)
	case float64:
		n = x
	default:
		return ""
	}

	low := f.min != nil && n < *f.min
	high := f.max != nil && n > *f.max
	if !low && !high {
		return ""
	}
	if f.rangeMsg != "" {
		return f.rangeMsg
	}
	if low && *f.min == 0 {
		return f.name + " must not be negative"
	}
	if low {
		return fmt.Sprintf("%s must be at least %s", f.name, formatBound(*f.min))
	}
	return fmt.Sprintf("%s must be at most %s", f.name, formatBound(*f.max))
}

// isBlank reports a missing value. For string fields false, [] and {} count as missing too.
func (f *Field) isBlank(raw interface{}) bool {
	switch x := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	}
	if f.kind != KindString {
		return false
	}
	switch x := raw.(type) {
	case bool:
		return !x
	case []interface{}:
		return len(x) == 0
	case map[string]interface{}:
		return len(x) == 0
	}
	return false
}

func toNumber(raw interface{}) (float64, bool) {
	switch x := raw.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func stringify(raw interface{}) string {
	switch x := raw.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func zeroOf(kind Kind) interface{} {
	switch kind {
	case KindInt:
		return 0
	case KindFloat:
		return 0.0
	case KindTime:
		return time.Time{}
	default:
		return ""
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
