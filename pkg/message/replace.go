package message

import (
	"fmt"
	"strings"
)

// Replacer substitutes a rule's parameters into a message template.
// Only the first occurrence of each token is replaced.
type Replacer func(message, attribute, rule string, params []any) string

// Placeholder tokens understood by the replacers.
const (
	TokenMin    = ":min"
	TokenMax    = ":max"
	TokenDigits = ":digits"
)

var replacers = map[string]Replacer{
	"min":           ReplaceMin,
	"max":           ReplaceMax,
	"digits":        ReplaceDigits,
	"digitsBetween": ReplaceDigitsBetween,
}

// ReplacerFor returns the replacer registered for rule. Rules without
// parameters have none.
func ReplacerFor(rule string) (Replacer, bool) {
	r, ok := replacers[rule]
	return r, ok
}

// ReplaceMin binds :min to params[0].
func ReplaceMin(message, _, _ string, params []any) string {
	return replaceFirst(message, TokenMin, params, 0)
}

// ReplaceMax binds :max to params[0].
func ReplaceMax(message, _, _ string, params []any) string {
	return replaceFirst(message, TokenMax, params, 0)
}

// ReplaceDigits binds :digits to params[0].
func ReplaceDigits(message, _, _ string, params []any) string {
	return replaceFirst(message, TokenDigits, params, 0)
}

// ReplaceDigitsBetween binds :min to params[0], then :max to params[1].
func ReplaceDigitsBetween(message, _, _ string, params []any) string {
	message = replaceFirst(message, TokenMin, params, 0)
	return replaceFirst(message, TokenMax, params, 1)
}

// replaceFirst leaves message untouched when the token or the parameter is missing.
func replaceFirst(message, token string, params []any, i int) string {
	if i >= len(params) {
		return message
	}
	return strings.Replace(message, token, fmt.Sprint(params[i]), 1)
}
