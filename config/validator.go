package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/input-output-hk/catalyst-jslint/errors"
)

// IsCompatible checks if a configuration version is accepted by this package.
// Uses the tilde constraint SupportedVersionConstraint, so 0.1.x is
// compatible while 0.2.0 and 1.0.0 are not.
//
// Returns false (with no error) if versions are incompatible.
// Returns an error if the version string is invalid.
func IsCompatible(version string) (bool, error) {
	constraint, err := semver.NewConstraint(SupportedVersionConstraint)
	if err != nil {
		return false, fmt.Errorf("invalid supported version constraint: %w", err)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("invalid version %q: %w", version, err)
	}

	return constraint.Check(v), nil
}

// Validate checks the fields CUE cannot judge on its own: version
// compatibility, known format and severity names, and the forbidden call
// declarations.
// Every problem found is reported in a single error.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New(errors.CodeInvalidInput, "configuration is nil")
	}

	var validationErrors []string

	ok, err := IsCompatible(c.Version)
	switch {
	case err != nil:
		validationErrors = append(validationErrors, err.Error())
	case !ok:
		validationErrors = append(validationErrors,
			fmt.Sprintf("version %s is not supported (supported: %s)", c.Version, SupportedVersionConstraint))
	}

	if _, err := c.ReportFormat(); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}
	if _, err := c.DiagnosticSeverity(); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}
	if c.MaxFileSize < 0 {
		validationErrors = append(validationErrors,
			fmt.Sprintf("maxFileSize must not be negative, got %d", c.MaxFileSize))
	}
	validationErrors = append(validationErrors, c.validateForbiddenCalls()...)

	if len(validationErrors) > 0 {
		return errors.New(
			errors.CodeInvalidConfig,
			fmt.Sprintf("configuration validation failed: %s", strings.Join(validationErrors, "; ")),
		)
	}

	return nil
}

func (c *Config) validateForbiddenCalls() []string {
	var problems []string
	seen := make(map[string]bool)
	for i, fc := range c.ForbiddenCalls {
		if fc.Code == "" {
			problems = append(problems, fmt.Sprintf("forbiddenCalls[%d]: code is required", i))
		} else if seen[fc.Code] {
			problems = append(problems, fmt.Sprintf("forbiddenCalls[%d]: duplicate code %q", i, fc.Code))
		}
		seen[fc.Code] = true

		if _, err := regexp.Compile(fc.Pattern); err != nil {
			problems = append(problems, fmt.Sprintf("forbiddenCalls[%d]: invalid pattern: %v", i, err))
		}
	}
	return problems
}
