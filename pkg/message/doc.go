// Package message turns validation rule parameters into readable messages.
//
// Replacers perform positional placeholder substitution for the rules that
// take parameters:
//
//	ReplaceMin            :min    <- params[0]
//	ReplaceMax            :max    <- params[0]
//	ReplaceDigits         :digits <- params[0]
//	ReplaceDigitsBetween  :min    <- params[0], then :max <- params[1]
//
// Each token is replaced once, at its first occurrence. A token missing
// from the template, or a parameter missing from the list, leaves the
// message unchanged; templates are never validated.
//
// Catalog holds one template per rule and Catalog.Format combines the rule
// replacer with :attribute substitution:
//
//	msg := message.DefaultCatalog().Format("password", "min", []any{8})
//	// "The password must be at least 8."
package message
