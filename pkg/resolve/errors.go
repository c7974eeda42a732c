package resolve

import "errors"

// Error kinds inspected by transport callers. Anything else coming out of
// this package wraps gamedata.ErrUnavailable or is a programming error.
var (
	// ErrMissingQuery flags an empty or blank query string.
	ErrMissingQuery = errors.New("missing query")

	// ErrInvalidCategory flags a tip category outside the known set. The
	// wrapped message lists the valid options.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrNoResult flags a lookup whose table or filter yielded nothing to
	// return. Fuzzy lookups only produce it when a table is empty.
	ErrNoResult = errors.New("no result")
)
