package validator

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/rulekit/pkg/lookup"
)

// requireParameterCount fails when params holds fewer than n entries.
func requireParameterCount(n int, params []any, rule Name) error {
	if len(params) < n {
		return &ArityError{Rule: rule, Required: n, Given: len(params)}
	}
	return nil
}

// requireConnection fails when conn is nil or wraps a nil pointer.
func requireConnection(rule Name, attribute string, conn lookup.Connection) error {
	if conn == nil {
		return &EnvironmentError{Rule: rule, Attribute: attribute}
	}
	if v := reflect.ValueOf(conn); v.Kind() == reflect.Pointer && v.IsNil() {
		return &EnvironmentError{Rule: rule, Attribute: attribute}
	}
	return nil
}

// requireNumber returns params[i] as a float64 or a TypeContractError.
func requireNumber(rule Name, params []any, i int) (float64, error) {
	f, ok := toFloat(params[i])
	if !ok {
		return 0, &TypeContractError{Rule: rule, Index: i, Want: "numeric", Got: params[i]}
	}
	return f, nil
}

// size is the rune count of a string, the value of a number or the length
// of a collection. Anything else has size zero.
func size(_ string, value any) float64 {
	if f, ok := toFloat(value); ok {
		return f
	}
	v := indirect(value)
	if !v.IsValid() {
		return 0
	}
	switch v.Kind() {
	case reflect.String:
		return float64(utf8.RuneCountInString(v.String()))
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return float64(v.Len())
	default:
		return 0
	}
}

// isEmpty reports absent values, the empty string and empty collections.
func isEmpty(value any) bool {
	v := indirect(value)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.String:
		return v.Len() == 0
	case reflect.Slice, reflect.Map:
		return v.IsNil() || v.Len() == 0
	case reflect.Array:
		return v.Len() == 0
	default:
		return false
	}
}

// indirect follows pointers and interfaces. A nil pointer yields the zero Value.
func indirect(value any) reflect.Value {
	v := reflect.ValueOf(value)
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// toFloat converts any Go numeric kind. Strings and booleans are not numbers.
func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}

	v := indirect(value)
	if !v.IsValid() {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

var (
	// decimalRegex is a plain decimal literal: optional sign, digits with an
	// optional fraction, optional exponent. No digit separators, no hex floats.
	decimalRegex = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

	// radixRegex is an unsigned 0x, 0o or 0b integer literal.
	radixRegex = regexp.MustCompile(`^0(?:[xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// parseFloat accepts numbers and numeric strings, rejecting NaN and infinities.
// Strings are trimmed and must be a decimal literal or an unsigned 0x, 0o
// or 0b integer.
func parseFloat(value any) (float64, bool) {
	if f, ok := toFloat(value); ok {
		return f, isFinite(f)
	}
	s, ok := asString(value)
	if !ok {
		return 0, false
	}
	s = strings.TrimSpace(s)

	switch {
	case decimalRegex.MatchString(s):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, isFinite(f)
	case radixRegex.MatchString(s):
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	default:
		return 0, false
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// asString unwraps strings and named string types.
func asString(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	v := indirect(value)
	if !v.IsValid() || v.Kind() != reflect.String {
		return "", false
	}
	return v.String(), true
}

// scalarString renders strings and numbers the way they are written in
// source: integers without exponent, floats in shortest form.
// Other values report false.
func scalarString(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	v := indirect(value)
	if !v.IsValid() {
		return "", false
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if !isFinite(f) {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	default:
		return "", false
	}
}

// equal compares numbers by value. Other values must share a dynamic type
// and be deeply equal, so composites holding slices never panic.
func equal(a, b any) bool {
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum || bNum {
		return aNum && bNum && fa == fb
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}
