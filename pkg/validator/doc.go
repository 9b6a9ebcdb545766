// Package validator evaluates named validation rules against attribute
// values.
//
// Every rule shares one contract: an attribute name, a value and an ordered
// parameter list. Synchronous rules are plain functions returning
// (bool, error); the "exists" rule consults a lookup.Connection and returns
// a future. The Registry maps Name values to these functions and exposes a
// single entry point, Evaluate, which always yields an *async.Future[bool]
// (already resolved for synchronous rules).
//
// # Rules
//
//	required       value present and not empty
//	min:n          size(value) >= n
//	max:n          size(value) <= n
//	exists:c,col   a record in collection c has col == value (deferred)
//	numeric        finite number or numeric string
//	array          slice or array
//	in:a,b,...     value equals one of the parameters
//	boolean        true, false, 0, 1, "0", "1"
//	url            http/https/ftp URL with a domain or public IPv4 host
//	digits:n       only digits, exactly n of them
//	digitsBetween:a,b  only digits, between a and b of them
//	integer        numeric value without fractional part
//	accepted       true, "true", "on", "yes", 1, "1"
//	alpha          ASCII letters
//	alphaNum       ASCII letters and digits
//	regex:p        matches regexp p (unanchored)
//	date           time.Time, date string or epoch milliseconds
//	email          bare email address
//
// Size is the rune count of a string, the value of a number or the length
// of a slice, array or map.
//
// # Errors
//
// Rule usage mistakes are returned as errors and never folded into a false
// result: ArityError (too few parameters), TypeContractError (wrong
// parameter type), EnvironmentError (exists without a connection) and
// UnknownRuleError. All are matched with errors.Is against ErrArity,
// ErrTypeContract, ErrEnvironment and ErrUnknownRule. They are returned
// before any lookup starts. A lookup that fails rejects the future with the
// store's own error.
//
// # Usage
//
//	reg := validator.New()
//
//	f, err := reg.Evaluate(ctx, validator.RuleMin, validator.Invocation{
//		Attribute: "name",
//		Value:     "abcde",
//		Params:    []any{5},
//	})
//	if err != nil {
//		return err // misconfigured rule
//	}
//	ok, err := f.Await()
//
// Validate runs a batch of checks, waits for all of them and returns
// ValidationErrors with messages from the message catalog:
//
//	err := reg.Validate(ctx, store,
//		validator.Check{Attribute: "email", Value: email, Rule: validator.RuleEmail},
//		validator.Check{Attribute: "email", Value: email, Rule: validator.RuleExists, Params: []any{"users", "email"}},
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		// errs.Get("email")
//	}
package validator
