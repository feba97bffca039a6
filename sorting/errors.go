package sorting

import "errors"

// ErrUnknownAlgorithm is returned by Parse, Lookup and Run for a name that
// is not one of the six engines.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
