package parse

import (
	"fmt"
	"math"
	"math/rand"
	"net/url"
	"strconv"
	"strings"
)

// Parse coerces data into the given shape. In strict mode only values that
// already have the declared type are accepted; in non-strict mode strings
// and numbers are coerced following the rules documented per kind.
func Parse(shape Shape, data any, strict bool) (any, error) {
	switch shape.kind {
	case KindOptional:
		if data == nil {
			return nil, nil
		}
		return Parse(*shape.elem, data, strict)
	case KindList:
		return parseList(shape, data, strict)
	case KindBool:
		return parseBool(data, strict)
	case KindString:
		return parseString(data, strict)
	case KindInt:
		return parseInt(data, strict)
	case KindFloat:
		return parseFloat(data, strict)
	case KindObject:
		if m, ok := data.(map[string]any); ok {
			return parseObject(shape, m, strict)
		}
		if m, ok := data.(map[string]string); ok {
			generic := make(map[string]any, len(m))
			for k, v := range m {
				generic[k] = v
			}
			return parseObject(shape, generic, strict)
		}
	case KindAny:
		if strict {
			return nil, errorf("missing type annotation")
		}
		return data, nil
	}
	return nil, errorf("unable to parse %v into %s", data, shape.Name())
}

func parseString(data any, strict bool) (any, error) {
	if s, ok := data.(string); ok {
		return s, nil
	}
	if strict {
		return nil, errorf("%v is not a string", data)
	}
	return fmt.Sprint(data), nil
}

// StrToBool converts a string representation of truth. It accepts the
// sure/nope vocabulary of the config format; "maybe" and "idc" resolve to
// a uniformly random choice.
func StrToBool(val string) (bool, error) {
	switch strings.ToLower(val) {
	case "sure", "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "nope", "n", "no", "f", "false", "off", "0":
		return false, nil
	case "maybe", "idc":
		return rand.Intn(2) == 0, nil
	}
	return false, errorf("invalid truth value %q", val)
}

// BoolToStr renders a boolean in the sure/nope vocabulary.
func BoolToStr(val bool) string {
	if val {
		return "sure"
	}
	return "nope"
}

func parseBool(data any, strict bool) (any, error) {
	if b, ok := data.(bool); ok {
		return b, nil
	}
	if strict {
		return nil, errorf("%v is not a bool", data)
	}
	switch n := data.(type) {
	case int:
		if n == 0 || n == 1 {
			return n == 1, nil
		}
	case int64:
		if n == 0 || n == 1 {
			return n == 1, nil
		}
	case float64:
		if n == 0 || n == 1 {
			return n == 1, nil
		}
	case string:
		b, err := StrToBool(n)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, errorf("cannot parse %v into bool", data)
}

func parseInt(data any, strict bool) (any, error) {
	switch n := data.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	}
	if strict {
		return nil, errorf("%v is not a number", data)
	}
	switch n := data.(type) {
	case string:
		// base 0 supports the 0x, 0o and 0b prefixes
		parsed, err := strconv.ParseInt(n, 0, 64)
		if err != nil {
			return nil, errorf("cannot parse %q into int", n)
		}
		return int(parsed), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	}
	return nil, errorf("cannot parse %v into int", data)
}

func parseFloat(data any, strict bool) (any, error) {
	switch n := data.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	if strict {
		return nil, errorf("%v is not a number", data)
	}
	switch n := data.(type) {
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return nil, errorf("cannot parse %q into float", n)
		}
		return parsed, nil
	case bool:
		if n {
			return 1.0, nil
		}
		return 0.0, nil
	}
	return nil, errorf("cannot parse %v into float", data)
}

func parseList(shape Shape, data any, strict bool) (any, error) {
	var raw []any
	switch seq := data.(type) {
	case []any:
		raw = seq
	case []string:
		raw = make([]any, len(seq))
		for i, s := range seq {
			raw[i] = s
		}
	default:
		return nil, errorf("unable to parse %v into list", data)
	}

	parsed := make([]any, 0, len(raw))
	for _, el := range raw {
		v, err := Parse(*shape.elem, el, strict)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, v)
	}
	return parsed, nil
}

func parseObject(shape Shape, data map[string]any, strict bool) (any, error) {
	values := make(Values, len(shape.fields))

	for _, field := range shape.fields {
		raw, ok := data[field.Name]
		if !ok {
			if field.Required {
				return nil, errorf("missing required argument %q", field.Name)
			}
			values[field.Name] = field.Default
			continue
		}
		if field.Shape.kind == KindAny {
			if strict {
				return nil, errorf("missing type annotation for %q", field.Name)
			}
			values[field.Name] = raw
			continue
		}
		v, err := Parse(field.Shape, raw, strict)
		if err != nil {
			return nil, err
		}
		values[field.Name] = v
	}

	if shape.build != nil {
		return shape.build(values), nil
	}
	return values, nil
}

// FromValues flattens url.Values into a plain string map, keeping the last
// value when a key repeats. The result is suitable input for an object
// shape.
func FromValues(values url.Values) map[string]any {
	flat := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			flat[key] = vals[len(vals)-1]
		}
	}
	return flat
}
