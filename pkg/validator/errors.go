package validator

import (
	"errors"
	"fmt"
)

// Rule usage errors. They report a misconfigured rule, never a failed
// validation, and are matched with errors.Is.
var (
	ErrArity        = errors.New("validator: not enough rule parameters")
	ErrTypeContract = errors.New("validator: rule parameter has the wrong type")
	ErrEnvironment  = errors.New("validator: rule requires a lookup connection")
	ErrUnknownRule  = errors.New("validator: unknown rule")
)

// ArityError is returned when a rule receives fewer parameters than it needs.
type ArityError struct {
	Rule     Name
	Required int
	Given    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("validation rule %s requires at least %d parameters, got %d", e.Rule, e.Required, e.Given)
}

func (e *ArityError) Is(target error) bool { return target == ErrArity }

// TypeContractError is returned when a rule parameter has the wrong shape.
type TypeContractError struct {
	Rule  Name
	Index int
	Want  string
	Got   any
}

func (e *TypeContractError) Error() string {
	return fmt.Sprintf("validation rule %s requires %s parameter at position %d, got %T", e.Rule, e.Want, e.Index, e.Got)
}

func (e *TypeContractError) Is(target error) bool { return target == ErrTypeContract }

// EnvironmentError is returned when a rule that needs a lookup connection
// is evaluated without one.
type EnvironmentError struct {
	Rule      Name
	Attribute string
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("validation rule %s on %q requires a lookup connection", e.Rule, e.Attribute)
}

func (e *EnvironmentError) Is(target error) bool { return target == ErrEnvironment }

// UnknownRuleError is returned for names outside the rule catalogue.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("validation rule %q is not defined", e.Name)
}

func (e *UnknownRuleError) Is(target error) bool { return target == ErrUnknownRule }
