package curve

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-stockcurves/pkg/selectivity"
)

var (
	ErrUnknownVariant = errors.New("unknown model variant")
	ErrParamCount     = errors.New("wrong number of parameters")
	ErrNoConversion   = errors.New("no conversion between variants")
	// ErrNotImplemented is the selectivity sentinel so errors.Is matches at either layer.
	ErrNotImplemented = selectivity.ErrNotImplemented
)
