package curve

import (
	"sort"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-stockcurves/pkg/growth"
	"github.com/askiada/go-stockcurves/pkg/numeric"
	"github.com/askiada/go-stockcurves/pkg/recruitment"
)

const mappingAttribute = "mapping"

// Conversion is one exact reparameterization edge.
type Conversion struct {
	From    Variant
	To      Variant
	Mapping string
}

var conversions = []Conversion{
	{From: HarvestedLogistic, To: Logistic, Mapping: "P0' = P0, k' = k-c, K' = K*(1-c/k)"},
	{From: Logistic, To: Richards, Mapping: "alpha = K, beta = (K-P0)/P0, m = 1"},
	{From: VonBertalanffy, To: Richards, Mapping: "alpha = Linf, beta = -e^(k*a0), m = -1"},
	{From: Richards, To: Schnute, Mapping: "r0 = alpha^-m, beta' = beta*alpha^-m, k' = -k, m' = -1/m"},

	{From: RickerAlt, To: Ricker, Mapping: "alpha = e^A/phi0, beta = A/(phi0*R0)"},
	{From: BevertonHoltAlt, To: BevertonHolt, Mapping: "alpha = 4*R0*h/(5h-1), beta = phi0*R0*(1-h)/(5h-1)"},
	{From: BevertonHolt, To: BevertonHoltDep, Mapping: "c = 1"},
	{From: BevertonHoltDep, To: BevertonHolt, Mapping: "requires c = 1"},
	{From: BevertonHolt, To: Shepherd, Mapping: "alpha' = alpha/beta, c = 1"},
	{From: Shepherd, To: BevertonHolt, Mapping: "requires c = 1, alpha' = alpha*beta"},
	{From: BevertonHolt, To: Deriso, Mapping: "alpha' = alpha/beta, beta' = 1/beta, c = -1"},
	{From: Deriso, To: BevertonHolt, Mapping: "requires c = -1, alpha' = alpha/beta, beta' = 1/beta"},
}

func variantHash(v Variant) Variant {
	return v
}

// conversionGraph is read-only once built.
var conversionGraph = newConversionGraph()

func newConversionGraph() graph.Graph[Variant, Variant] {
	g := graph.New(variantHash, graph.Directed())
	for _, info := range catalog {
		err := g.AddVertex(info.Variant, graph.VertexAttribute("family", string(info.Family)))
		if err != nil {
			panic(errors.Wrapf(err, "unable to add variant %s", info.Variant))
		}
	}
	for _, c := range conversions {
		err := g.AddEdge(c.From, c.To, graph.EdgeAttribute(mappingAttribute, c.Mapping))
		if err != nil {
			panic(errors.Wrapf(err, "unable to add conversion from %s to %s", c.From, c.To))
		}
	}

	return g
}

// Conversions lists every reparameterization edge, sorted by source then target.
func Conversions() ([]Conversion, error) {
	edges, err := conversionGraph.Edges()
	if err != nil {
		return nil, errors.Wrap(err, "unable to list conversions")
	}

	out := make([]Conversion, len(edges))
	for i, e := range edges {
		out[i] = Conversion{From: e.Source, To: e.Target, Mapping: e.Properties.Attributes[mappingAttribute]}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out, nil
}

// ConversionPath returns the chain of variants Convert walks from one variant to another.
func ConversionPath(from, to Variant) ([]Variant, error) {
	_, path, err := conversionPath(from, to)

	return path, err
}

// conversionPath also returns the resolved source so callers never look it up twice.
func conversionPath(from, to Variant) (Info, []Variant, error) {
	src, err := lookup(string(from))
	if err != nil {
		return Info{}, nil, err
	}
	dst, err := lookup(string(to))
	if err != nil {
		return Info{}, nil, err
	}
	if src.Variant == dst.Variant {
		return src, []Variant{src.Variant}, nil
	}

	path, err := graph.ShortestPath(conversionGraph, src.Variant, dst.Variant)
	if err != nil {
		return Info{}, nil, errors.Wrapf(ErrNoConversion, "%s to %s: %v", src.Variant, dst.Variant, err)
	}

	return src, path, nil
}

// Convert maps a parameter vector of one variant onto an equivalent vector of another, composing
// exact conversions along ConversionPath. Conversions that only hold for a fixed exponent fail with
// ErrNoConversion when params use another one. Out-of-domain values are not rejected and come back
// as NaN or an infinity.
func Convert[T numeric.Float](from, to Variant, params []T) ([]T, error) {
	src, path, err := conversionPath(from, to)
	if err != nil {
		return nil, err
	}
	if len(params) != len(src.Params) {
		return nil, errors.Wrapf(ErrParamCount, "%s takes %d parameters, got %d", src.Variant, len(src.Params), len(params))
	}

	out := append([]T(nil), params...)
	for i := 1; i < len(path); i++ {
		out, err = convertStep(path[i-1], path[i], out)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func convertStep[T numeric.Float](from, to Variant, p []T) ([]T, error) {
	switch {
	case from == HarvestedLogistic && to == Logistic:
		k, capacity := growth.HarvestedLogisticParams(p[1], p[2], p[3])
		return []T{p[0], k, capacity}, nil
	case from == Logistic && to == Richards:
		return []T{p[2], (p[2] - p[0]) / p[0], p[1], 1}, nil
	case from == VonBertalanffy && to == Richards:
		return []T{p[0], -numeric.Exp(p[2] * p[1]), p[2], -1}, nil
	case from == Richards && to == Schnute:
		am := numeric.Pow(p[0], -p[3])
		return []T{am, p[1] * am, -p[2], -1 / p[3]}, nil

	case from == RickerAlt && to == Ricker:
		alpha, beta := recruitment.RickerFromAlt(p[0], p[1], p[2])
		return []T{alpha, beta}, nil
	case from == BevertonHoltAlt && to == BevertonHolt:
		alpha, beta := recruitment.BevertonHoltFromSteepness(p[0], p[1], p[2])
		return []T{alpha, beta}, nil
	case from == BevertonHolt && to == BevertonHoltDep:
		return []T{p[0], p[1], 1}, nil
	case from == BevertonHoltDep && to == BevertonHolt:
		if p[2] != 1 {
			return nil, exponentMismatch(from, to, "c", p[2], 1)
		}
		return []T{p[0], p[1]}, nil
	case from == BevertonHolt && to == Shepherd:
		return []T{p[0] / p[1], p[1], 1}, nil
	case from == Shepherd && to == BevertonHolt:
		if p[2] != 1 {
			return nil, exponentMismatch(from, to, "c", p[2], 1)
		}
		return []T{p[0] * p[1], p[1]}, nil
	case from == BevertonHolt && to == Deriso:
		return []T{p[0] / p[1], 1 / p[1], -1}, nil
	case from == Deriso && to == BevertonHolt:
		if p[2] != -1 {
			return nil, exponentMismatch(from, to, "c", p[2], -1)
		}
		return []T{p[0] / p[1], 1 / p[1]}, nil
	}

	return nil, errors.Wrapf(ErrNoConversion, "%s to %s", from, to)
}

func exponentMismatch[T numeric.Float](from, to Variant, name string, got T, want float64) error {
	return errors.Wrapf(ErrNoConversion, "%s to %s needs %s = %g, got %g", from, to, name, want, float64(got))
}
