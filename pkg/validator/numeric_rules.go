package validator

import (
	"math"
	"unicode/utf8"
)

// Numeric passes for finite numbers and strings that parse as one.
func Numeric(_ string, value any, _ []any) (bool, error) {
	_, ok := parseFloat(value)
	return ok, nil
}

// Integer passes when the numeric value has no fractional part.
// "42" and 42.0 pass; "4.2" and true do not.
func Integer(_ string, value any, _ []any) (bool, error) {
	f, ok := parseFloat(value)
	if !ok {
		return false, nil
	}
	return f == math.Trunc(f), nil
}

// Digits passes when value is made of digits only and has exactly params[0] of them.
func Digits(_ string, value any, params []any) (bool, error) {
	if err := requireParameterCount(1, params, RuleDigits); err != nil {
		return false, err
	}
	want, err := requireNumber(RuleDigits, params, 0)
	if err != nil {
		return false, err
	}

	s, ok := digitString(value)
	if !ok {
		return false, nil
	}
	return float64(utf8.RuneCountInString(s)) == want, nil
}

// DigitsBetween passes when value is made of digits only and its length is
// within [params[0], params[1]].
func DigitsBetween(_ string, value any, params []any) (bool, error) {
	if err := requireParameterCount(2, params, RuleDigitsBetween); err != nil {
		return false, err
	}
	min, err := requireNumber(RuleDigitsBetween, params, 0)
	if err != nil {
		return false, err
	}
	max, err := requireNumber(RuleDigitsBetween, params, 1)
	if err != nil {
		return false, err
	}

	s, ok := digitString(value)
	if !ok {
		return false, nil
	}
	n := float64(utf8.RuneCountInString(s))
	return n >= min && n <= max, nil
}

// digitString renders value and reports whether it contains only 0-9.
func digitString(value any) (string, bool) {
	s, ok := scalarString(value)
	if !ok {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", false
		}
	}
	return s, true
}
