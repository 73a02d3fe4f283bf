package correctness

import (
	"github.com/input-output-hk/catalyst-jslint/javascript/lint"
)

// All returns every correctness rule in registration order.
func All() []lint.Rule {
	return []lint.Rule{
		NewNoPrototypeBuiltinsRule(),
	}
}

// Recommended builds the default registry holding every correctness rule.
// Rules tagged lint.TagRecommended are enabled by the default configuration.
func Recommended() (*lint.Registry, error) {
	return lint.NewRegistry(All()...)
}
