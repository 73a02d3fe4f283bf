package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-jslint/errors"
	"github.com/input-output-hk/catalyst-jslint/fs/billy"
	"github.com/input-output-hk/catalyst-jslint/javascript/lint"
	"github.com/input-output-hk/catalyst-jslint/javascript/parser"
)

// setupTestFS creates a memory filesystem and loads test fixtures.
// Accepts a list of fixture filenames to load from testdata directory.
func setupTestFS(t *testing.T, fixtures ...string) *billy.FS {
	t.Helper()
	fs := billy.NewInMemoryFS()

	for _, fixture := range fixtures {
		data, err := os.ReadFile(filepath.Join("testdata", fixture))
		require.NoError(t, err, "reading fixture %s", fixture)
		require.NoError(t, fs.WriteFile(fixture, data, 0o644))
	}

	return fs
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, SupportedVersion, cfg.Version)
	assert.Equal(t, []string{lint.TagRecommended}, cfg.Tags)
	assert.Empty(t, cfg.Include)
	assert.Empty(t, cfg.Exclude)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "error", cfg.Severity)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		cfg, err := Load(ctx, setupTestFS(t, "valid.cue"), "valid.cue")
		require.NoError(t, err)

		assert.Equal(t, "0.1.0", cfg.Version)
		assert.Equal(t, []string{"recommended"}, cfg.Tags)
		assert.Equal(t, []string{"no-prototype-builtins"}, cfg.Exclude)

		format, err := cfg.ReportFormat()
		require.NoError(t, err)
		assert.Equal(t, lint.FormatJSON, format)

		severity, err := cfg.DiagnosticSeverity()
		require.NoError(t, err)
		assert.Equal(t, lint.SeverityWarning, severity)
	})

	t.Run("fills defaults", func(t *testing.T) {
		cfg, err := Load(ctx, setupTestFS(t, "partial.cue"), "partial.cue")
		require.NoError(t, err)

		assert.Equal(t, "sarif", cfg.Format)
		assert.Equal(t, SupportedVersion, cfg.Version)
		assert.Equal(t, []string{"recommended"}, cfg.Tags)
		assert.Equal(t, "error", cfg.Severity)
		assert.Empty(t, cfg.ForbiddenCalls)
		assert.Equal(t, 0, cfg.MaxFileSize)
	})

	t.Run("forbidden calls", func(t *testing.T) {
		cfg, err := Load(ctx, setupTestFS(t, "forbidden-calls.cue"), "forbidden-calls.cue")
		require.NoError(t, err)

		assert.Equal(t, []ForbiddenCall{
			{Code: "no-console-log", Pattern: `^console\.log$`, Description: "Disallows console.log"},
			{Code: "no-eval", Pattern: "^eval$"},
		}, cfg.ForbiddenCalls)
		assert.Equal(t, 65536, cfg.MaxFileSize)
	})

	t.Run("patch version", func(t *testing.T) {
		cfg, err := Load(ctx, setupTestFS(t, "patch-version.cue"), "patch-version.cue")
		require.NoError(t, err)
		assert.Equal(t, "0.1.7", cfg.Version)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(ctx, setupTestFS(t), DefaultPath)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing required file", func(t *testing.T) {
		_, err := LoadWithOptions(ctx, setupTestFS(t), "typo.cue", LoadOptions{Required: true})
		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
		assert.Contains(t, err.Error(), "path=typo.cue")
	})
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		code    errors.ErrorCode
	}{
		{"unsupported version", "future-version.cue", errors.CodeInvalidConfig},
		{"unknown field", "unknown-field.cue", errors.CodeSchemaFailed},
		{"unknown format", "bad-format.cue", errors.CodeSchemaFailed},
		{"malformed version", "bad-version.cue", errors.CodeSchemaFailed},
		{"syntax error", "syntax-error.cue", errors.CodeConfigLoadFailed},
		{"invalid pattern", "bad-pattern.cue", errors.CodeInvalidConfig},
		{"negative max file size", "negative-size.cue", errors.CodeSchemaFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), setupTestFS(t, tt.fixture), tt.fixture)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err), err.Error())
			assert.Contains(t, err.Error(), "path="+tt.fixture)
		})
	}
}

func TestLoadWithOptionsSkipValidation(t *testing.T) {
	cfg, err := LoadWithOptions(context.Background(), setupTestFS(t, "future-version.cue"), "future-version.cue",
		LoadOptions{SkipValidation: true})
	require.NoError(t, err)

	assert.Equal(t, "0.2.0", cfg.Version)
	assert.Error(t, cfg.Validate())
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, setupTestFS(t, "valid.cue"), "valid.cue")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		version  string
		expected bool
		wantErr  bool
	}{
		{"0.1.0", true, false},
		{"0.1.9", true, false},
		{"0.2.0", false, false},
		{"1.0.0", false, false},
		{"0.0.9", false, false},
		{"not-a-version", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			ok, err := IsCompatible(tt.version)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("collects every problem", func(t *testing.T) {
		cfg := &Config{Version: "2.0.0", Format: "xml", Severity: "fatal"}

		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.CodeInvalidConfig))
		assert.Contains(t, err.Error(), "version 2.0.0 is not supported")
		assert.Contains(t, err.Error(), "unsupported format: xml")
		assert.Contains(t, err.Error(), `unknown severity "fatal"`)
	})

	t.Run("forbidden calls", func(t *testing.T) {
		cfg := Default()
		cfg.ForbiddenCalls = []ForbiddenCall{
			{Code: "", Pattern: "^a$"},
			{Code: "dup", Pattern: "^b$"},
			{Code: "dup", Pattern: "("},
		}
		cfg.MaxFileSize = -5

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "forbiddenCalls[0]: code is required")
		assert.Contains(t, err.Error(), `forbiddenCalls[2]: duplicate code "dup"`)
		assert.Contains(t, err.Error(), "forbiddenCalls[2]: invalid pattern")
		assert.Contains(t, err.Error(), "maxFileSize must not be negative")
	})

	t.Run("nil", func(t *testing.T) {
		var cfg *Config
		assert.True(t, errors.HasCode(cfg.Validate(), errors.CodeInvalidInput))
	})
}

func TestSelection(t *testing.T) {
	cfg := &Config{
		Tags:           []string{"recommended"},
		Include:        []string{"a"},
		Exclude:        []string{"b"},
		ForbiddenCalls: []ForbiddenCall{{Code: "no-eval", Pattern: "^eval$"}},
	}

	sel := cfg.Selection()
	assert.Equal(t, lint.Selection{
		Tags:    []string{"recommended"},
		Include: []string{"a", "no-eval"},
		Exclude: []string{"b"},
	}, sel)

	sel.Tags[0] = "changed"
	assert.Equal(t, "recommended", cfg.Tags[0])
}

func TestCustomRules(t *testing.T) {
	t.Run("builds forbid rules", func(t *testing.T) {
		cfg := Default()
		cfg.ForbiddenCalls = []ForbiddenCall{
			{Code: "no-console-log", Pattern: `^console\.log$`, Description: "Disallows console.log"},
			{Code: "no-eval", Pattern: "^eval$"},
		}

		rules, err := cfg.CustomRules()
		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, "no-console-log", rules[0].Code())
		assert.Equal(t, "Disallows console.log", rules[0].Description())
		assert.Equal(t, "Disallows calls matching ^eval$", rules[1].Description())
		assert.Equal(t, []string{TagCustom}, rules[1].Tags())

		program, err := parser.ParseString("console.log(1);\nlogger.console.log(2);\neval(x);\n")
		require.NoError(t, err)
		linter := lint.New(lint.WithRules(rules...))
		diags := linter.LintProgram("a.js", program)

		require.Len(t, diags, 2)
		assert.Equal(t, "no-console-log", diags[0].Code)
		assert.Equal(t, "Call to console.log is forbidden", diags[0].Message)
		assert.Equal(t, "no-eval", diags[1].Code)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		cfg := Default()
		cfg.ForbiddenCalls = []ForbiddenCall{{Code: "broken", Pattern: "("}}

		_, err := cfg.CustomRules()
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.CodeInvalidConfig))
	})
}
