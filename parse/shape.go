// Package parse converts untyped values, such as flattened request argument
// maps, into typed values following a declared shape. Shapes form an
// explicit descriptor table: each target type registers its field list once
// and the parser dispatches on the shape kind. Parsing is pure and safe to
// call from any number of goroutines.
package parse

import "fmt"

// Kind enumerates the shapes the parser understands.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindList
	KindOptional
	KindObject
	KindAny
)

// String returns the kind's name for error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindOptional:
		return "optional"
	case KindObject:
		return "object"
	default:
		return "any"
	}
}

// Shape describes the target of a parse. Build shapes with the
// constructors below; the zero value is not a valid shape.
type Shape struct {
	kind   Kind
	elem   *Shape
	name   string
	fields []Field
	build  func(Values) any
}

// Kind returns the shape's kind.
func (s Shape) Kind() Kind { return s.kind }

// Name returns the object name, or the kind name for non-objects.
func (s Shape) Name() string {
	if s.kind == KindObject {
		return s.name
	}
	return s.kind.String()
}

// Field declares one object field: its key in the raw mapping, its shape
// and, for optional fields, the default used when the key is absent.
type Field struct {
	Name     string
	Shape    Shape
	Default  any
	Required bool
}

// String declares a string shape.
func String() Shape { return Shape{kind: KindString} }

// Int declares an integer shape.
func Int() Shape { return Shape{kind: KindInt} }

// Float declares a floating-point shape.
func Float() Shape { return Shape{kind: KindFloat} }

// Bool declares a boolean shape.
func Bool() Shape { return Shape{kind: KindBool} }

// Any declares an unannotated shape: the raw value passes through unchanged
// in non-strict mode and fails in strict mode.
func Any() Shape { return Shape{kind: KindAny} }

// List declares a sequence shape. Every element is parsed as elem; the
// parse fails atomically if any element fails.
func List(elem Shape) Shape {
	return Shape{kind: KindList, elem: &elem}
}

// Optional declares a nullable shape: nil passes through, anything else is
// parsed as elem.
func Optional(elem Shape) Shape {
	return Shape{kind: KindOptional, elem: &elem}
}

// Object declares a structural shape built from a string-keyed mapping.
// Fields are resolved in declaration order. If build is non-nil it is
// invoked with the parsed field values to construct the final value;
// otherwise Parse returns the Values map itself.
func Object(name string, build func(Values) any, fields ...Field) Shape {
	return Shape{kind: KindObject, name: name, fields: fields, build: build}
}

// Req declares a required field; parsing fails if the key is absent.
func Req(name string, shape Shape) Field {
	return Field{Name: name, Shape: shape, Required: true}
}

// Opt declares an optional field with a default.
func Opt(name string, shape Shape, def any) Field {
	return Field{Name: name, Shape: shape, Default: def}
}

// Values holds the parsed fields of an object shape, keyed by field name.
type Values map[string]any

// Str returns the named field as a string.
func (v Values) Str(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns the named field as an int.
func (v Values) Int(name string) int {
	switch n := v[name].(type) {
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}

// Float returns the named field as a float64.
func (v Values) Float(name string) float64 {
	switch n := v[name].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

// Bool returns the named field as a bool.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Error is returned when a value cannot be coerced into its declared
// shape. The message is safe to show to API clients.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}
