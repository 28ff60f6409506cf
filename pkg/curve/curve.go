package curve

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-stockcurves/pkg/growth"
	"github.com/askiada/go-stockcurves/pkg/numeric"
	"github.com/askiada/go-stockcurves/pkg/recruitment"
	"github.com/askiada/go-stockcurves/pkg/selectivity"
)

// Curve is a variant bound to a checked parameter vector.
type Curve[T numeric.Float] struct {
	info   Info
	params []T
	fn     func(p []T, x T) T
}

// New binds params to variant v, which may also be an alias. The number of parameters must match
// Info.Params and the variant must be implemented.
func New[T numeric.Float](v Variant, params ...T) (*Curve[T], error) {
	info, err := lookup(string(v))
	if err != nil {
		return nil, err
	}
	if !info.Implemented {
		return nil, errors.Wrapf(ErrNotImplemented, "%s", info.Variant)
	}
	if len(params) != len(info.Params) {
		return nil, errors.Wrapf(ErrParamCount, "%s takes %d parameters %v, got %d", info.Variant, len(info.Params), info.Params, len(params))
	}

	return &Curve[T]{
		info:   info,
		params: append([]T(nil), params...),
		fn:     evaluator[T](info.Variant),
	}, nil
}

// Evaluate is New followed by one Eval.
func Evaluate[T numeric.Float](v Variant, params []T, x T) (T, error) {
	c, err := New(v, params...)
	if err != nil {
		return numeric.NaN[T](), err
	}

	return c.Eval(x), nil
}

// Eval returns the curve value at x.
func (c *Curve[T]) Eval(x T) T {
	return c.fn(c.params, x)
}

// Variant returns the canonical variant of the curve.
func (c *Curve[T]) Variant() Variant {
	return c.info.Variant
}

// Info describes the variant of the curve.
func (c *Curve[T]) Info() Info {
	return c.info.clone()
}

// Params returns a copy of the parameter vector.
func (c *Curve[T]) Params() []T {
	return append([]T(nil), c.params...)
}

// evaluator returns the formula of an implemented variant, reading parameters in Info.Params order.
func evaluator[T numeric.Float](v Variant) func(p []T, x T) T {
	switch v {
	case Logistic:
		return func(p []T, x T) T { return growth.Logistic(p[0], x, p[1], p[2]) }
	case HarvestedLogistic:
		return func(p []T, x T) T { return growth.HarvestedLogistic(p[0], x, p[1], p[2], p[3]) }
	case VonBertalanffy:
		return func(p []T, x T) T { return growth.Bertalanffy(p[0], p[1], x, p[2]) }
	case VonBertalanffyUpdate:
		return func(p []T, x T) T { return growth.BertalanffyUpdate(p[0], p[1], p[2], x, p[3]) }
	case Gompertz:
		return func(p []T, x T) T { return growth.Gompertz(p[0], p[1], x, p[2]) }
	case Richards:
		return func(p []T, x T) T { return growth.Richards(p[0], p[1], x, p[2], p[3]) }
	case Schnute:
		return func(p []T, x T) T { return growth.Schnute(x, p[0], p[1], p[2], p[3]) }

	case Ricker:
		return func(p []T, x T) T { return recruitment.Ricker(p[0], p[1], x) }
	case RickerAlt:
		return func(p []T, x T) T { return recruitment.RickerAlt(p[0], p[1], p[2], x) }
	case BevertonHolt:
		return func(p []T, x T) T { return recruitment.BevertonHolt(p[0], p[1], x) }
	case BevertonHoltAlt:
		return func(p []T, x T) T { return recruitment.BevertonHoltAlt(p[0], p[1], p[2], x) }
	case BevertonHoltDep:
		return func(p []T, x T) T { return recruitment.BevertonHoltDep(p[0], p[1], p[2], x) }
	case Shepherd:
		return func(p []T, x T) T { return recruitment.Shepherd(p[0], p[1], p[2], x) }
	case Deriso:
		return func(p []T, x T) T { return recruitment.Deriso(p[0], p[1], p[2], x) }

	case LogisticSelectivity:
		return func(p []T, x T) T { return selectivity.Logistic(p[0], p[1], x) }
	case DoubleLogisticSelectivity:
		return func(p []T, x T) T { return selectivity.DoubleLogistic(p[0], p[1], p[2], p[3], x) }
	case NormalSelectivity:
		return func(p []T, x T) T { return selectivity.Normal(p[0], p[1], x) }
	case DoubleNormalSelectivity:
		return func(p []T, x T) T { return selectivity.DoubleNormal(p[0], p[1], p[2], p[3], x) }
	case ExponentialLogisticSelectivity:
		return func(p []T, x T) T { return selectivity.ExponentialLogistic(p[0], p[1], p[2], x) }
	case SizeLogisticSelectivity:
		return func(p []T, x T) T { return selectivity.SizeLogistic(p[0], p[1], x) }
	case SizeDoubleLogisticSelectivity:
		return func(p []T, x T) T { return selectivity.SizeDoubleLogistic(p[0], p[1], p[2], p[3], x) }
	case SizeNormalSelectivity:
		return func(p []T, x T) T { return selectivity.SizeNormal(p[0], p[1], x) }
	case SizeDoubleNormalSelectivity:
		return func(p []T, x T) T { return selectivity.SizeDoubleNormal(p[0], p[1], p[2], p[3], x) }
	case SizeExponentialLogisticSelectivity:
		return func(p []T, x T) T { return selectivity.SizeExponentialLogistic(p[0], p[1], p[2], x) }
	}

	// the catalog only marks variants listed above as implemented
	panic("curve: no evaluator for " + string(v))
}
