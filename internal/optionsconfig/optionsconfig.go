// Package optionsconfig defines ParserOptions, the tunable surface this
// module exposes to embedders (schema validation toggle, schema override
// path, memoization toggle, existence-check batch size, enum strictness),
// loadable from a TOML file via github.com/pelletier/go-toml/v2, the
// configuration library this codebase's reference corpus uses for
// structured settings files.
package optionsconfig

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ParserOptions tunes parsing and memoization behavior without touching
// call sites.
type ParserOptions struct {
	// ValidateSCORM2004Schema enables the optional schema-validation gate
	// for SCORM 2004 manifests. Defaults to false (skip).
	ValidateSCORM2004Schema bool `toml:"validate_scorm2004_schema"`

	// SCORM2004SchemaPath, when non-empty, overrides the built-in default
	// JSON Schema used for SCORM 2004 manifest-shape validation.
	SCORM2004SchemaPath string `toml:"scorm2004_schema_path"`

	// MemoizeParses enables the xxhash-keyed idempotence memo in the
	// dispatcher, trading a bounded amount of memory for skipping
	// redundant reparses of byte-identical packages.
	MemoizeParses bool `toml:"memoize_parses"`

	// MemoCapacity bounds the number of distinct package digests the
	// dispatcher's memo retains before evicting the oldest entry.
	MemoCapacity int `toml:"memo_capacity"`

	// MaxResourceBatch bounds how many file paths go into a single
	// exists_batch call while populating resource file-existence flags.
	// A large package's resource list is chunked into calls of at most
	// this size instead of one unbounded call. Zero or negative means
	// unbounded (one call covers every path).
	MaxResourceBatch int `toml:"max_resource_batch"`

	// StrictEnumValidation turns an unrecognized enum value (yes/no,
	// scormtype, ...) that would otherwise be recovered as a warning into
	// a hard parse failure. Defaults to false: lenient recovery.
	StrictEnumValidation bool `toml:"strict_enum_validation"`
}

// Default returns the baseline ParserOptions: no schema validation, no
// memoization, existence checks batched 200 paths at a time, lenient enum
// recovery.
func Default() ParserOptions {
	return ParserOptions{MemoCapacity: 128, MaxResourceBatch: 200}
}

// Load reads a TOML file at path into a ParserOptions, starting from
// Default() so unset fields keep their defaults.
func Load(path string) (ParserOptions, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return ParserOptions{}, err
	}
	return opts, nil
}
