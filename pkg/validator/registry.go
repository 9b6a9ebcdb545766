package validator

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/rulekit/pkg/async"
	"github.com/dmitrymomot/rulekit/pkg/lookup"
	"github.com/dmitrymomot/rulekit/pkg/message"
)

// CheckFunc is a synchronous rule. It never sees the lookup connection.
type CheckFunc func(attribute string, value any, params []any) (bool, error)

// LookupFunc is a rule that consults a lookup connection and completes later.
type LookupFunc func(ctx context.Context, conn lookup.Connection, attribute string, value any, params []any) (*async.Future[bool], error)

// rule holds exactly one of check or lookup.
type rule struct {
	check  CheckFunc
	lookup LookupFunc
}

var builtinRules = map[Name]rule{
	RuleRequired:      {check: Required},
	RuleMin:           {check: Min},
	RuleMax:           {check: Max},
	RuleExists:        {lookup: Exists},
	RuleNumeric:       {check: Numeric},
	RuleArray:         {check: Array},
	RuleIn:            {check: In},
	RuleBoolean:       {check: Boolean},
	RuleURL:           {check: URL},
	RuleDigits:        {check: Digits},
	RuleDigitsBetween: {check: DigitsBetween},
	RuleInteger:       {check: Integer},
	RuleAccepted:      {check: Accepted},
	RuleAlpha:         {check: Alpha},
	RuleAlphaNum:      {check: AlphaNum},
	RuleRegex:         {check: Regex},
	RuleDate:          {check: Date},
	RuleEmail:         {check: Email},
}

// Invocation carries one rule evaluation. Conn is only handed to rules that
// perform lookups.
type Invocation struct {
	Attribute string
	Value     any
	Params    []any
	Conn      lookup.Connection
}

// Registry dispatches rule names to their implementations. It is immutable
// after New and safe for concurrent use.
type Registry struct {
	rules   map[Name]rule
	catalog message.Catalog
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithCatalog replaces the default message catalog used by Validate.
func WithCatalog(c message.Catalog) Option {
	return func(r *Registry) {
		if c != nil {
			r.catalog = maps.Clone(c)
		}
	}
}

// WithLogger sets the logger used to report lookup failures at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// New builds a registry with the built-in rule table.
func New(opts ...Option) *Registry {
	r := &Registry{
		rules:   maps.Clone(builtinRules),
		catalog: message.DefaultCatalog(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Has reports whether name is a registered rule.
func (r *Registry) Has(name Name) bool {
	_, ok := r.rules[name]
	return ok
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []Name {
	return slices.Sorted(maps.Keys(r.rules))
}

// Evaluate runs one rule. Synchronous rules return an already completed
// future. Usage errors (unknown rule, arity, parameter type, missing
// connection) are returned directly and no future is created.
func (r *Registry) Evaluate(ctx context.Context, name Name, inv Invocation) (*async.Future[bool], error) {
	rl, ok := r.rules[name]
	if !ok {
		return nil, &UnknownRuleError{Name: string(name)}
	}

	if rl.lookup != nil {
		return rl.lookup(ctx, inv.Conn, inv.Attribute, inv.Value, inv.Params)
	}

	passed, err := rl.check(inv.Attribute, inv.Value, inv.Params)
	if err != nil {
		return nil, err
	}
	return async.Resolved(passed), nil
}
