package config

import _ "embed"

// schemaSource contains the CUE definition user configurations are
// validated against.
//
//go:embed schema.cue
var schemaSource []byte

// schemaDefinition is the path of the configuration definition in schemaSource.
const schemaDefinition = "#Config"
