package validator

import "reflect"

// literalSet enumerates the accepted representations for a rule, split by
// kind so that true never matches "true" unless both are listed.
type literalSet struct {
	bools   []bool
	numbers []float64
	strings []string
}

var (
	// booleanLiterals: true, false, 0, 1, "0", "1".
	booleanLiterals = literalSet{
		bools:   []bool{true, false},
		numbers: []float64{0, 1},
		strings: []string{"0", "1"},
	}

	// acceptedLiterals: true, "true", "on", "yes", 1, "1".
	acceptedLiterals = literalSet{
		bools:   []bool{true},
		numbers: []float64{1},
		strings: []string{"true", "on", "yes", "1"},
	}
)

func (s literalSet) contains(value any) bool {
	if f, ok := toFloat(value); ok {
		for _, n := range s.numbers {
			if f == n {
				return true
			}
		}
		return false
	}

	v := indirect(value)
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Bool:
		for _, b := range s.bools {
			if v.Bool() == b {
				return true
			}
		}
	case reflect.String:
		for _, str := range s.strings {
			if v.String() == str {
				return true
			}
		}
	}
	return false
}
