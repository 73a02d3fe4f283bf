package config

import (
	"context"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/input-output-hk/catalyst-jslint/errors"
	"github.com/input-output-hk/catalyst-jslint/fs"
)

// load loads a configuration from the specified path.
//
// The function performs the following steps:
//  1. Returns Default when the file does not exist, or NOT_FOUND when
//     opts.Required is set
//  2. Compiles the file and unifies it with the embedded #Config schema
//  3. Validates the result (unless SkipValidation is set)
//  4. Decodes the CUE value into a Config
//  5. Checks the declared version (unless SkipValidation is set)
//
// All errors are wrapped with context using the errors package.
func load(ctx context.Context, filesystem fs.ReadFS, path string, opts LoadOptions) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "configuration loading cancelled")
	}

	exists, err := filesystem.Exists(path)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeIO, "failed to check configuration file",
			map[string]interface{}{"path": path})
	}
	if !exists {
		if opts.Required {
			return nil, errors.New(errors.CodeNotFound, "configuration file not found").
				WithContext("path", path)
		}
		return Default(), nil
	}

	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeConfigLoadFailed, "failed to read configuration",
			map[string]interface{}{"path": path})
	}

	value, err := compile(data, path)
	if err != nil {
		return nil, err
	}

	if !opts.SkipValidation {
		if err := value.Validate(cue.Concrete(true)); err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeSchemaFailed, "configuration does not match schema",
				map[string]interface{}{"path": path})
		}
	}

	cfg := &Config{}
	if err := value.Decode(cfg); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeConfigDecodeFailed, "failed to decode configuration",
			map[string]interface{}{"path": path})
	}

	if !opts.SkipValidation {
		if err := cfg.Validate(); err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "invalid configuration",
				map[string]interface{}{"path": path})
		}
	}

	return cfg, nil
}

// compile parses the user file and unifies it with the schema definition so
// that defaults are filled in and unknown fields are rejected.
func compile(data []byte, path string) (cue.Value, error) {
	cctx := cuecontext.New()

	schema := cctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return cue.Value{}, errors.Wrap(err, errors.CodeInternal, "failed to compile configuration schema")
	}
	def := schema.LookupPath(cue.ParsePath(schemaDefinition))
	if err := def.Err(); err != nil {
		return cue.Value{}, errors.Wrap(err, errors.CodeInternal, "configuration schema has no definition")
	}

	user := cctx.CompileBytes(data, cue.Filename(path))
	if err := user.Err(); err != nil {
		return cue.Value{}, errors.WrapWithContext(err, errors.CodeConfigLoadFailed, "failed to parse configuration",
			map[string]interface{}{"path": path})
	}

	return def.Unify(user), nil
}
