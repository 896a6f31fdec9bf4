package pricing

import (
	"errors"
	"fmt"
)

// Error classes raised while cooking pricing files. None of them are
// recoverable; the first one aborts the run.
var (
	// ErrMissingFile means an expected input file does not exist or cannot be read.
	ErrMissingFile = errors.New("missing pricing file")

	// ErrMalformedJSON means a file's content does not parse as JSON.
	ErrMalformedJSON = errors.New("malformed pricing JSON")

	// ErrKeyLookup means a raw vendor token is absent from its lookup table.
	ErrKeyLookup = errors.New("unknown pricing token")

	// ErrSchemaShape means a required field is missing from a parsed document.
	ErrSchemaShape = errors.New("unexpected pricing schema")
)

// LookupError reports a token that has no entry in the named table.
type LookupError struct {
	Table string
	Key   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q not found in %s table", ErrKeyLookup, e.Key, e.Table)
}

func (e *LookupError) Unwrap() error { return ErrKeyLookup }

// ShapeError reports a required field missing at Path (dotted, e.g. "config.regions").
type ShapeError struct {
	Path string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrSchemaShape, e.Path)
}

func (e *ShapeError) Unwrap() error { return ErrSchemaShape }
