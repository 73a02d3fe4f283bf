// Package config provides parsing, validation, and convenient access to jslint
// configurations defined in CUE format.
//
// A configuration selects which rules run, how findings are reported and the
// severity they carry:
//
//	version:  "0.1.0"
//	tags:     ["recommended"]
//	include:  []
//	exclude:  []
//	format:   "text"
//	severity: "error"
//	forbiddenCalls: [{code: "no-console-log", pattern: "^console\\.log$"}]
//	maxFileSize: 0
//
// # Basic Usage
//
//	ctx := context.Background()
//	fs := billy.NewBaseOSFS()
//
//	// Load the configuration (validates by default). A missing file
//	// yields the default configuration.
//	cfg, err := config.Load(ctx, fs, config.DefaultPath)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rules, err := registry.Select(cfg.Selection())
//
// # Advanced Usage
//
// Skip validation during loading:
//
//	opts := config.LoadOptions{SkipValidation: true}
//	cfg, err := config.LoadWithOptions(ctx, fs, "jslint.cue", opts)
package config

import (
	"context"
	"fmt"
	"regexp"

	"github.com/input-output-hk/catalyst-jslint/errors"
	"github.com/input-output-hk/catalyst-jslint/fs"
	"github.com/input-output-hk/catalyst-jslint/javascript/lint"
)

// SupportedVersion defines the configuration version this package writes by default.
const SupportedVersion = "0.1.0"

// SupportedVersionConstraint is the range of configuration versions this
// package accepts. For 0.x versions only patch releases are compatible.
const SupportedVersionConstraint = "~0.1"

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "jslint.cue"

// TagCustom marks the rules declared under forbiddenCalls.
const TagCustom = "custom"

// ForbiddenCall declares a rule reporting calls whose dotted callee path
// matches Pattern.
type ForbiddenCall struct {
	Code        string `json:"code"`
	Pattern     string `json:"pattern"`
	Description string `json:"description,omitempty"`
}

// Config is a decoded jslint configuration.
type Config struct {
	// Version is the configuration format version.
	Version string `json:"version"`
	// Tags enables every rule carrying one of these tags.
	Tags []string `json:"tags"`
	// Include enables rules by code regardless of tags.
	Include []string `json:"include"`
	// Exclude disables rules by code.
	Exclude []string `json:"exclude"`
	// Format is the report format name.
	Format string `json:"format"`
	// Severity is the severity name attached to every diagnostic.
	Severity string `json:"severity"`
	// ForbiddenCalls are project rules enabled alongside the selected ones.
	ForbiddenCalls []ForbiddenCall `json:"forbiddenCalls"`
	// MaxFileSize is the largest source accepted, in bytes. Zero means the
	// parser default.
	MaxFileSize int `json:"maxFileSize"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:  SupportedVersion,
		Tags:     []string{lint.TagRecommended},
		Include:  []string{},
		Exclude:  []string{},
		Format:   lint.FormatText.String(),
		Severity: lint.SeverityError.String(),

		ForbiddenCalls: []ForbiddenCall{},
	}
}

// Selection converts the configuration into a registry selection.
// Rules declared under forbiddenCalls are always included unless excluded.
func (c *Config) Selection() lint.Selection {
	include := append([]string(nil), c.Include...)
	for _, fc := range c.ForbiddenCalls {
		include = append(include, fc.Code)
	}
	return lint.Selection{
		Tags:    append([]string(nil), c.Tags...),
		Include: include,
		Exclude: append([]string(nil), c.Exclude...),
	}
}

// CustomRules builds the rules declared under forbiddenCalls, in order.
// They still have to be registered before Selection can name them.
func (c *Config) CustomRules() ([]lint.Rule, error) {
	rules := make([]lint.Rule, 0, len(c.ForbiddenCalls))
	for _, fc := range c.ForbiddenCalls {
		if _, err := regexp.Compile(fc.Pattern); err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "invalid forbidden call pattern",
				map[string]interface{}{"code": fc.Code})
		}
		description := fc.Description
		if description == "" {
			description = fmt.Sprintf("Disallows calls matching %s", fc.Pattern)
		}
		rules = append(rules, lint.ForbidCalleeRule(fc.Code, description, fc.Pattern, []string{TagCustom}))
	}
	return rules, nil
}

// ReportFormat returns the configured report format.
func (c *Config) ReportFormat() (lint.Format, error) {
	return lint.ParseFormat(c.Format)
}

// DiagnosticSeverity returns the configured diagnostic severity.
func (c *Config) DiagnosticSeverity() (lint.Severity, error) {
	return lint.ParseSeverity(c.Severity)
}

// LoadOptions configures the behavior of configuration loading operations.
type LoadOptions struct {
	// SkipValidation disables schema and version validation after loading.
	// Schema defaults are still applied.
	SkipValidation bool

	// Required makes a missing file an error instead of yielding Default.
	// Set it when the path was given explicitly.
	Required bool
}

// Load loads and validates the configuration at path.
// A missing file is not an error: Default is returned instead. Use
// LoadWithOptions with Required set to reject a missing file.
//
// Parameters:
//   - ctx: Context for cancellation and deadlines
//   - filesystem: Filesystem abstraction to read configuration from
//   - path: Path to the configuration file (e.g., "jslint.cue")
func Load(ctx context.Context, filesystem fs.ReadFS, path string) (*Config, error) {
	return load(ctx, filesystem, path, LoadOptions{})
}

// LoadWithOptions loads a configuration with custom options.
func LoadWithOptions(ctx context.Context, filesystem fs.ReadFS, path string, opts LoadOptions) (*Config, error) {
	return load(ctx, filesystem, path, opts)
}
