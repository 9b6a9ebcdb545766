package message

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"

	"gopkg.in/yaml.v3"
)

// TokenAttribute is replaced with the attribute name by Catalog.Format.
const TokenAttribute = ":attribute"

// Catalog maps rule names to message templates.
type Catalog map[string]string

var defaults = Catalog{
	"required":      "The :attribute field is required.",
	"min":           "The :attribute must be at least :min.",
	"max":           "The :attribute may not be greater than :max.",
	"exists":        "The selected :attribute is invalid.",
	"numeric":       "The :attribute must be a number.",
	"array":         "The :attribute must be an array.",
	"in":            "The selected :attribute is invalid.",
	"boolean":       "The :attribute field must be true or false.",
	"url":           "The :attribute format is invalid.",
	"digits":        "The :attribute must be :digits digits.",
	"digitsBetween": "The :attribute must be between :min and :max digits.",
	"integer":       "The :attribute must be an integer.",
	"accepted":      "The :attribute must be accepted.",
	"alpha":         "The :attribute may only contain letters.",
	"alphaNum":      "The :attribute may only contain letters and numbers.",
	"regex":         "The :attribute format is invalid.",
	"date":          "The :attribute is not a valid date.",
	"email":         "The :attribute must be a valid email address.",
}

// fallback is used for rules that have no template.
const fallback = "The :attribute field is invalid."

// DefaultCatalog returns a copy of the built-in English templates.
func DefaultCatalog() Catalog {
	return maps.Clone(defaults)
}

// LoadCatalog reads a flat YAML mapping of rule name to template and
// overlays it on the defaults.
//
//	min: "Too short: :attribute needs :min characters."
//	required: ":attribute is mandatory."
func LoadCatalog(r io.Reader) (Catalog, error) {
	var overrides map[string]string
	if err := yaml.NewDecoder(r).Decode(&overrides); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultCatalog(), nil
		}
		return nil, errors.Join(ErrInvalidCatalog, err)
	}

	c := DefaultCatalog()
	for rule, tpl := range overrides {
		if strings.TrimSpace(tpl) == "" {
			return nil, fmt.Errorf("%w: empty template for rule %q", ErrInvalidCatalog, rule)
		}
		c[rule] = tpl
	}
	return c, nil
}

// Template returns the template registered for rule, or a generic one.
func (c Catalog) Template(rule string) string {
	if tpl, ok := c[rule]; ok {
		return tpl
	}
	return fallback
}

// Format builds the final message for a failed rule: the rule's replacer
// runs first, then every :attribute token is replaced with attribute.
func (c Catalog) Format(attribute, rule string, params []any) string {
	msg := c.Template(rule)
	if r, ok := ReplacerFor(rule); ok {
		msg = r(msg, attribute, rule, params)
	}
	return strings.ReplaceAll(msg, TokenAttribute, attribute)
}
