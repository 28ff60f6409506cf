package growth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-stockcurves/internal/testutil"
)

func TestLogistic(t *testing.T) {
	tcs := map[string]struct {
		p0, t, k, capacity float64
		want               float64
	}{
		"initial size":      {p0: 10, t: 0, k: 0.5, capacity: 100, want: 10},
		"at capacity":       {p0: 100, t: 7, k: 0.5, capacity: 100, want: 100},
		"carrying capacity": {p0: 10, t: 200, k: 0.5, capacity: 100, want: 100},
		"zero population":   {p0: 0, t: 1, k: 0.5, capacity: 100, want: 0},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			testutil.Close(t, tc.want, Logistic(tc.p0, tc.t, tc.k, tc.capacity), 1e-12)
		})
	}
}

func TestLogisticMonotone(t *testing.T) {
	prev := Logistic(5.0, 0, 0.3, 50)
	for _, x := range testutil.Range(0.1, 40.0, 100) {
		got := Logistic(5.0, x, 0.3, 50)
		assert.GreaterOrEqual(t, got, prev)
		assert.LessOrEqual(t, got, 50.0)
		prev = got
	}
}

func TestHarvestedLogistic(t *testing.T) {
	t.Run("no harvest is logistic", func(t *testing.T) {
		for _, x := range testutil.Range(0.0, 30.0, 31) {
			assert.Equal(t, Logistic(12.0, x, 0.4, 90), HarvestedLogistic(12.0, x, 0.4, 90, 0))
		}
	})
	t.Run("harvested equilibrium", func(t *testing.T) {
		testutil.Close(t, 80.0, HarvestedLogistic(10.0, 1000, 0.5, 100, 0.1), 1e-12)
	})
	t.Run("initial size kept", func(t *testing.T) {
		testutil.Close(t, 10.0, HarvestedLogistic(10.0, 0, 0.5, 100, 0.1), 1e-12)
	})
	t.Run("harvest equal to rate", func(t *testing.T) {
		assert.True(t, math.IsNaN(HarvestedLogistic(10.0, 3, 0.5, 100, 0.5)))
	})
}

func TestBertalanffy(t *testing.T) {
	assert.Equal(t, 0.0, Bertalanffy(60.0, -0.5, -0.5, 0.2))
	testutil.Close(t, 60.0, Bertalanffy(60.0, -0.5, 300, 0.2), 1e-12)
	testutil.Close(t, 60*(1-math.Exp(-0.2*5.5)), Bertalanffy(60.0, -0.5, 5, 0.2), 1e-15)
}

func TestBertalanffyUpdate(t *testing.T) {
	const (
		linf = 85.0
		k    = 0.15
		a0   = -0.7
	)

	t.Run("from zero size is classic form", func(t *testing.T) {
		for _, a := range testutil.Range(0.0, 25.0, 51) {
			testutil.Close(t, Bertalanffy(linf, a0, a, k), BertalanffyUpdate(linf, 0, a0, a, k), 1e-12)
		}
	})

	t.Run("chained updates compose", func(t *testing.T) {
		tcs := map[string]struct {
			l0, a0, a1, a2 float64
		}{
			"forward":    {l0: 12, a0: 1, a1: 3.5, a2: 9},
			"same age":   {l0: 30, a0: 4, a1: 4, a2: 4},
			"above linf": {l0: 100, a0: 2, a1: 5, a2: 6},
			"backwards":  {l0: 40, a0: 6, a1: 4, a2: 2},
			"fractional": {l0: 0.5, a0: 0.1, a1: 0.35, a2: 0.9},
		}
		for name, tc := range tcs {
			t.Run(name, func(t *testing.T) {
				l1 := BertalanffyUpdate(linf, tc.l0, tc.a0, tc.a1, k)
				chained := BertalanffyUpdate(linf, l1, tc.a1, tc.a2, k)
				direct := BertalanffyUpdate(linf, tc.l0, tc.a0, tc.a2, k)
				testutil.Close(t, direct, chained, 1e-12)
			})
		}
	})
}

func TestGompertz(t *testing.T) {
	testutil.Close(t, 40*math.Exp(-3), Gompertz(40.0, 3, 0, 0.25), 1e-15)
	testutil.Close(t, 40.0, Gompertz(40.0, 3, 500, 0.25), 1e-12)
}

func TestRichards(t *testing.T) {
	t.Run("m equal one is logistic", func(t *testing.T) {
		const p0, k, capacity = 8.0, 0.35, 70.0
		for _, x := range testutil.Range(0.0, 30.0, 61) {
			want := Logistic(p0, x, k, capacity)
			testutil.Close(t, want, Richards(capacity, (capacity-p0)/p0, x, k, 1), 1e-12)
		}
	})

	t.Run("m equal minus one is bertalanffy", func(t *testing.T) {
		const linf, a0, k = 55.0, -1.2, 0.3
		for _, a := range testutil.Range(0.0, 20.0, 41) {
			want := Bertalanffy(linf, a0, a, k)
			testutil.Close(t, want, Richards(linf, -math.Exp(k*a0), a, k, -1), 1e-9)
		}
	})

	t.Run("negative base with fractional power", func(t *testing.T) {
		assert.True(t, math.IsNaN(Richards(10.0, -2, 1, 0, 2)))
	})

	t.Run("alias", func(t *testing.T) {
		assert.Equal(t, Richards(10.0, 2, 3, 0.4, 1.5), Richard(10.0, 2, 3, 0.4, 1.5))
	})
}

func TestSchnute(t *testing.T) {
	assert.Equal(t, 1.0, Schnute(3.0, 1, 0, 0.2, 4))
	testutil.Close(t, 9.0, Schnute(0.0, 1, 2, 0.2, 2), 1e-15)
	assert.True(t, math.IsNaN(Schnute(0.0, -4, 1, 0.2, 0.5)))

	t.Run("rewritten richards", func(t *testing.T) {
		const alpha, beta, k, m = 30.0, 4.0, 0.6, 2.5
		am := math.Pow(alpha, -m)
		for _, x := range testutil.Range(0.0, 15.0, 31) {
			testutil.Close(t, Richards(alpha, beta, x, k, m), Schnute(x, am, beta*am, -k, -1/m), 1e-9)
		}
	})
}

func TestFloat32(t *testing.T) {
	testutil.Close(t, float32(10), Logistic(float32(10), 0, 0.5, 100), 1e-6)
	testutil.Close(t, float32(0.5)*60, BertalanffyUpdate(float32(60), 0, 0, float32(math.Ln2)/0.2, 0.2), 1e-5)
	testutil.Close(t, float32(20), Richards(float32(20), 0, 1, 1, 3), 1e-6)
}
