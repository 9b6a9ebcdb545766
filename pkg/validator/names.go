package validator

// Name identifies a rule in the registry.
type Name string

const (
	RuleRequired      Name = "required"
	RuleMin           Name = "min"
	RuleMax           Name = "max"
	RuleExists        Name = "exists"
	RuleNumeric       Name = "numeric"
	RuleArray         Name = "array"
	RuleIn            Name = "in"
	RuleBoolean       Name = "boolean"
	RuleURL           Name = "url"
	RuleDigits        Name = "digits"
	RuleDigitsBetween Name = "digitsBetween"
	RuleInteger       Name = "integer"
	RuleAccepted      Name = "accepted"
	RuleAlpha         Name = "alpha"
	RuleAlphaNum      Name = "alphaNum"
	RuleRegex         Name = "regex"
	RuleDate          Name = "date"
	RuleEmail         Name = "email"
)

// aliases lets callers use snake_case names.
var aliases = map[string]Name{
	"digits_between": RuleDigitsBetween,
	"alpha_num":      RuleAlphaNum,
}

func (n Name) String() string { return string(n) }

// ParseName resolves a rule name, accepting the snake_case aliases.
// Unknown names produce an UnknownRuleError.
func ParseName(s string) (Name, error) {
	if n, ok := aliases[s]; ok {
		return n, nil
	}
	n := Name(s)
	if _, ok := builtinRules[n]; ok {
		return n, nil
	}
	return "", &UnknownRuleError{Name: s}
}
