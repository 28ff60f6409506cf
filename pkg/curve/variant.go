package curve

import (
	"github.com/pkg/errors"
)

// Family groups variants modelling the same biological process.
type Family string

const (
	FamilyGrowth      Family = "growth"
	FamilyRecruitment Family = "recruitment"
	FamilySelectivity Family = "selectivity"
)

// Basis is what the independent variable of a variant measures.
type Basis string

const (
	BasisTime  Basis = "time"
	BasisAge   Basis = "age"
	BasisSize  Basis = "size"
	BasisStock Basis = "stock"
)

// Variant names one closed-form model.
type Variant string

// Growth.
const (
	Logistic             Variant = "Logistic"
	HarvestedLogistic    Variant = "HarvestedLogistic"
	VonBertalanffy       Variant = "VonBertalanffy"
	VonBertalanffyUpdate Variant = "VonBertalanffyUpdate"
	Gompertz             Variant = "Gompertz"
	Richards             Variant = "Richards"
	Schnute              Variant = "Schnute"
)

// Recruitment.
const (
	Ricker          Variant = "Ricker"
	RickerAlt       Variant = "RickerAlt"
	BevertonHolt    Variant = "BevertonHolt"
	BevertonHoltAlt Variant = "BevertonHoltAlt"
	BevertonHoltDep Variant = "BevertonHoltDep"
	Shepherd        Variant = "Shepherd"
	Deriso          Variant = "Deriso"
)

// Selectivity.
const (
	LogisticSelectivity                Variant = "LogisticSelectivity"
	DoubleLogisticSelectivity          Variant = "DoubleLogisticSelectivity"
	NormalSelectivity                  Variant = "NormalSelectivity"
	DoubleNormalSelectivity            Variant = "DoubleNormalSelectivity"
	ExponentialLogisticSelectivity     Variant = "ExponentialLogisticSelectivity"
	CubicSplineSelectivity             Variant = "CubicSplineSelectivity"
	NonParametricSelectivity           Variant = "NonParametricSelectivity"
	SizeLogisticSelectivity            Variant = "SizeLogisticSelectivity"
	SizeDoubleLogisticSelectivity      Variant = "SizeDoubleLogisticSelectivity"
	SizeNormalSelectivity              Variant = "SizeNormalSelectivity"
	SizeDoubleNormalSelectivity        Variant = "SizeDoubleNormalSelectivity"
	SizeExponentialLogisticSelectivity Variant = "SizeExponentialLogisticSelectivity"
	SizeCubicSplineSelectivity         Variant = "SizeCubicSplineSelectivity"
	SizeNonParametricSelectivity       Variant = "SizeNonParametricSelectivity"
)

// Info describes a variant.
type Info struct {
	Variant Variant
	Family  Family
	Basis   Basis

	// Params are the parameter names in the order New expects them. The independent variable is not
	// part of it.
	Params      []string
	Aliases     []string
	Implemented bool
}

func (i Info) clone() Info {
	i.Params = append([]string(nil), i.Params...)
	i.Aliases = append([]string(nil), i.Aliases...)

	return i
}

var catalog = []Info{
	{Variant: Logistic, Family: FamilyGrowth, Basis: BasisTime, Params: []string{"P0", "k", "K"}, Implemented: true},
	{Variant: HarvestedLogistic, Family: FamilyGrowth, Basis: BasisTime, Params: []string{"P0", "k", "K", "c"}, Implemented: true},
	{Variant: VonBertalanffy, Family: FamilyGrowth, Basis: BasisAge, Params: []string{"Linf", "a0", "k"}, Aliases: []string{"Bertalanffy"}, Implemented: true},
	{Variant: VonBertalanffyUpdate, Family: FamilyGrowth, Basis: BasisAge, Params: []string{"Linf", "L_prev", "a_prev", "k"}, Aliases: []string{"Bertalanffy_update", "BertalanffyUpdate"}, Implemented: true},
	{Variant: Gompertz, Family: FamilyGrowth, Basis: BasisTime, Params: []string{"alpha", "beta", "k"}, Implemented: true},
	{Variant: Richards, Family: FamilyGrowth, Basis: BasisAge, Params: []string{"alpha", "beta", "k", "m"}, Aliases: []string{"Richard"}, Implemented: true},
	{Variant: Schnute, Family: FamilyGrowth, Basis: BasisAge, Params: []string{"r0", "beta", "k", "m"}, Implemented: true},

	{Variant: Ricker, Family: FamilyRecruitment, Basis: BasisStock, Params: []string{"alpha", "beta"}, Implemented: true},
	{Variant: RickerAlt, Family: FamilyRecruitment, Basis: BasisStock, Params: []string{"R0", "phi0", "A"}, Aliases: []string{"Ricker_alt"}, Implemented: true},
	{Variant: BevertonHolt, Family: FamilyRecruitment, Basis: BasisStock, Params: []string{"alpha", "beta"}, Implemented: true},
	{Variant: BevertonHoltAlt, Family: FamilyRecruitment, Basis: BasisStock, Params: []string{"R0", "phi0", "h"}, Aliases: []string{"BevertonHolt_alt"}, Implemented: true},
	{Variant: BevertonHoltDep, Family: FamilyRecruitment, Basis: BasisStock, Params: []string{"alpha", "beta", "c"}, Aliases: []string{"BevertonHolt_dep"}, Implemented: true},
	{Variant: Shepherd, Family: FamilyRecruitment, Basis: BasisStock, Params: []string{"alpha", "beta", "c"}, Aliases: []string{"Shepard"}, Implemented: true},
	{Variant: Deriso, Family: FamilyRecruitment, Basis: BasisStock, Params: []string{"alpha", "beta", "c"}, Aliases: []string{"DiRiso"}, Implemented: true},

	{Variant: LogisticSelectivity, Family: FamilySelectivity, Basis: BasisAge, Params: []string{"a50", "s"}, Implemented: true},
	{Variant: DoubleLogisticSelectivity, Family: FamilySelectivity, Basis: BasisAge, Params: []string{"alpha_asc", "beta_asc", "alpha_desc", "beta_desc"}, Implemented: true},
	{Variant: NormalSelectivity, Family: FamilySelectivity, Basis: BasisAge, Params: []string{"mu", "sigma"}, Implemented: true},
	{Variant: DoubleNormalSelectivity, Family: FamilySelectivity, Basis: BasisAge, Params: []string{"peak", "top", "sigma_asc", "sigma_desc"}, Implemented: true},
	{Variant: ExponentialLogisticSelectivity, Family: FamilySelectivity, Basis: BasisAge, Params: []string{"alpha", "beta", "gamma"}, Implemented: true},
	{Variant: CubicSplineSelectivity, Family: FamilySelectivity, Basis: BasisAge},
	{Variant: NonParametricSelectivity, Family: FamilySelectivity, Basis: BasisAge},
	{Variant: SizeLogisticSelectivity, Family: FamilySelectivity, Basis: BasisSize, Params: []string{"l50", "s"}, Implemented: true},
	{Variant: SizeDoubleLogisticSelectivity, Family: FamilySelectivity, Basis: BasisSize, Params: []string{"alpha_asc", "beta_asc", "alpha_desc", "beta_desc"}, Implemented: true},
	{Variant: SizeNormalSelectivity, Family: FamilySelectivity, Basis: BasisSize, Params: []string{"mu", "sigma"}, Implemented: true},
	{Variant: SizeDoubleNormalSelectivity, Family: FamilySelectivity, Basis: BasisSize, Params: []string{"peak", "top", "sigma_asc", "sigma_desc"}, Implemented: true},
	{Variant: SizeExponentialLogisticSelectivity, Family: FamilySelectivity, Basis: BasisSize, Params: []string{"alpha", "beta", "gamma"}, Implemented: true},
	{Variant: SizeCubicSplineSelectivity, Family: FamilySelectivity, Basis: BasisSize},
	{Variant: SizeNonParametricSelectivity, Family: FamilySelectivity, Basis: BasisSize},
}

// byName maps canonical names and aliases to their catalog index.
var byName = func() map[string]int {
	m := make(map[string]int, 2*len(catalog))
	for i, info := range catalog {
		m[string(info.Variant)] = i
		for _, alias := range info.Aliases {
			m[alias] = i
		}
	}

	return m
}()

func lookup(name string) (Info, error) {
	i, ok := byName[name]
	if !ok {
		return Info{}, errors.Wrapf(ErrUnknownVariant, "%q", name)
	}

	return catalog[i], nil
}

// Lookup resolves a canonical name or a historical alias to its canonical variant.
func Lookup(name string) (Variant, error) {
	info, err := lookup(name)
	if err != nil {
		return "", err
	}

	return info.Variant, nil
}

// Describe returns the description of a variant or one of its aliases.
func Describe(v Variant) (Info, error) {
	info, err := lookup(string(v))
	if err != nil {
		return Info{}, err
	}

	return info.clone(), nil
}

// Variants lists the variants of a family in a stable order. An empty family lists all of them.
func Variants(family Family) []Info {
	var out []Info
	for _, info := range catalog {
		if family != "" && info.Family != family {
			continue
		}
		out = append(out, info.clone())
	}

	return out
}
