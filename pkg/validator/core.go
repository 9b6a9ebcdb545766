package validator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/async"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/lookup"
)

// ValidationError describes one failed rule with translation support.
type ValidationError struct {
	Field             string
	Rule              Name
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors collects failed rules. It implements error.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field, in rule order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields returns the failing fields in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

// IsValidationError reports whether err carries ValidationErrors, as opposed
// to a rule usage error or a lookup failure.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// Check is one rule applied to one attribute.
type Check struct {
	Attribute string
	Value     any
	Rule      Name
	Params    []any
}

// Validate runs every check and waits for all of them.
//
// It returns the first usage error as soon as it is found, the first lookup
// failure (unchanged) once all checks complete, ValidationErrors for the
// failed checks, or nil. Lookups already started when a usage error is found
// keep running to completion in the background.
func (r *Registry) Validate(ctx context.Context, conn lookup.Connection, checks ...Check) error {
	futures := make([]*async.Future[bool], len(checks))
	for i, c := range checks {
		f, err := r.Evaluate(ctx, c.Rule, Invocation{
			Attribute: c.Attribute,
			Value:     c.Value,
			Params:    c.Params,
			Conn:      conn,
		})
		if err != nil {
			return err
		}
		futures[i] = f
	}

	results, err := async.WaitAll(ctx, futures...)
	if err != nil {
		r.logLookupFailure(ctx, checks, futures, err)
		return err
	}

	var errs ValidationErrors
	for i, passed := range results {
		if !passed {
			errs.Add(r.failure(checks[i]))
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// logLookupFailure reports the first check whose future failed. WaitAll
// returns the first error in slice order, so that check is the culprit.
func (r *Registry) logLookupFailure(ctx context.Context, checks []Check, futures []*async.Future[bool], err error) {
	attrs := []any{logger.Component("validator"), logger.Error(err)}
	for i, f := range futures {
		if !f.IsComplete() {
			continue
		}
		if _, ferr := f.Await(); ferr == nil {
			continue
		}
		c := checks[i]
		attrs = append(attrs, logger.Rule(string(c.Rule)), logger.Attribute(c.Attribute))
		if len(c.Params) > 0 {
			if collection, ok := c.Params[0].(string); ok {
				attrs = append(attrs, logger.Collection(collection))
			}
		}
		break
	}
	r.logger.DebugContext(ctx, "lookup failed", attrs...)
}

// Message renders the catalog message for a failed check.
func (r *Registry) Message(c Check) string {
	return r.catalog.Format(c.Attribute, string(c.Rule), c.Params)
}

func (r *Registry) failure(c Check) ValidationError {
	values := map[string]any{"field": c.Attribute}
	switch c.Rule {
	case RuleMin:
		values["min"] = c.Params[0]
	case RuleMax:
		values["max"] = c.Params[0]
	case RuleDigits:
		values["digits"] = c.Params[0]
	case RuleDigitsBetween:
		values["min"] = c.Params[0]
		values["max"] = c.Params[1]
	default:
		if len(c.Params) > 0 {
			values["params"] = c.Params
		}
	}

	return ValidationError{
		Field:             c.Attribute,
		Rule:              c.Rule,
		Message:           r.Message(c),
		TranslationKey:    "validation." + string(c.Rule),
		TranslationValues: values,
	}
}
