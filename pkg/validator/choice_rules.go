package validator

import "reflect"

// In passes when value equals one of params. An empty list never matches.
func In(_ string, value any, params []any) (bool, error) {
	for _, p := range params {
		if equal(value, p) {
			return true, nil
		}
	}
	return false, nil
}

// Boolean passes for true, false, 0, 1, "0" and "1".
func Boolean(_ string, value any, _ []any) (bool, error) {
	return booleanLiterals.contains(value), nil
}

// Accepted passes for true, "true", "on", "yes", 1 and "1".
func Accepted(_ string, value any, _ []any) (bool, error) {
	return acceptedLiterals.contains(value), nil
}

// Array passes for slices and arrays.
func Array(_ string, value any, _ []any) (bool, error) {
	v := indirect(value)
	if !v.IsValid() {
		return false, nil
	}
	k := v.Kind()
	return k == reflect.Slice || k == reflect.Array, nil
}
