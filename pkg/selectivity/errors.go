package selectivity

import "github.com/pkg/errors"

// ErrNotImplemented is returned by selectivity variants that are declared but have no closed form yet.
var ErrNotImplemented = errors.New("selectivity model not implemented")
