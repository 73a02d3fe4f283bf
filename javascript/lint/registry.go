package lint

import (
	"github.com/input-output-hk/catalyst-jslint/errors"
)

// TagRecommended marks rules enabled by default.
const TagRecommended = "recommended"

// Registry holds rules keyed by code, preserving registration order.
// Registration is not safe for concurrent use; reads after setup are.
type Registry struct {
	rules  []Rule
	byCode map[string]Rule
}

// NewRegistry creates a registry holding rules.
// It fails if two rules share a code.
func NewRegistry(rules ...Rule) (*Registry, error) {
	r := &Registry{byCode: make(map[string]Rule)}
	for _, rule := range rules {
		if err := r.Register(rule); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds rule to the registry.
func (r *Registry) Register(rule Rule) error {
	if rule == nil || rule.Code() == "" {
		return errors.New(errors.CodeInvalidInput, "rule must have a code")
	}
	if _, exists := r.byCode[rule.Code()]; exists {
		return errors.Newf(errors.CodeAlreadyExists, "rule %q is already registered", rule.Code())
	}
	r.rules = append(r.rules, rule)
	r.byCode[rule.Code()] = rule
	return nil
}

// Get returns the rule registered under code.
//
//nolint:ireturn // rules are interface values
func (r *Registry) Get(code string) (Rule, bool) {
	rule, ok := r.byCode[code]
	return rule, ok
}

// All returns every rule in registration order.
func (r *Registry) All() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

// WithTag returns the rules carrying tag in registration order.
func (r *Registry) WithTag(tag string) []Rule {
	var out []Rule
	for _, rule := range r.rules {
		if HasTag(rule, tag) {
			out = append(out, rule)
		}
	}
	return out
}

// Selection describes which rules to run.
type Selection struct {
	// Tags enables every rule carrying any of these tags.
	Tags []string
	// Include enables the listed rule codes regardless of tags.
	Include []string
	// Exclude disables the listed rule codes; it wins over Tags and Include.
	Exclude []string
}

// Select resolves sel into a rule list in registration order.
// Unknown codes in Include or Exclude are reported as errors.
func (r *Registry) Select(sel Selection) ([]Rule, error) {
	enabled := make(map[string]bool)

	for _, tag := range sel.Tags {
		for _, rule := range r.WithTag(tag) {
			enabled[rule.Code()] = true
		}
	}
	for _, code := range sel.Include {
		if _, ok := r.Get(code); !ok {
			return nil, errors.Newf(errors.CodeNotFound, "unknown rule %q", code).
				WithContext("field", "include")
		}
		enabled[code] = true
	}
	for _, code := range sel.Exclude {
		if _, ok := r.Get(code); !ok {
			return nil, errors.Newf(errors.CodeNotFound, "unknown rule %q", code).
				WithContext("field", "exclude")
		}
		delete(enabled, code)
	}

	var out []Rule
	for _, rule := range r.rules {
		if enabled[rule.Code()] {
			out = append(out, rule)
		}
	}
	return out, nil
}
