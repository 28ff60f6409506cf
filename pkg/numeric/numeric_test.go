package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type celsius float64

func TestExpLog(t *testing.T) {
	assert.Equal(t, 1.0, Exp(0.0))
	assert.Equal(t, float32(1), Exp(float32(0)))
	assert.InDelta(t, math.E, Exp(1.0), 1e-15)
	assert.InDelta(t, 2.0, Log(Exp(2.0)), 1e-15)
	assert.True(t, math.IsInf(Log(0.0), -1))
	assert.True(t, math.IsNaN(Log(-1.0)))
}

func TestPow(t *testing.T) {
	tcs := map[string]struct {
		x, y float64
		want float64
		nan  bool
	}{
		"square":              {x: 3, y: 2, want: 9},
		"root":                {x: 16, y: 0.5, want: 4},
		"negative integral":   {x: -2, y: 3, want: -8},
		"negative fractional": {x: -2, y: 0.5, nan: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := Pow(tc.x, tc.y)
			if tc.nan {
				assert.True(t, math.IsNaN(got))
				return
			}
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestDerivedType(t *testing.T) {
	var c celsius = 4
	assert.Equal(t, celsius(2), Sqrt(c))
}

func TestIsNaN(t *testing.T) {
	assert.True(t, IsNaN(NaN[float32]()))
	assert.True(t, IsNaN(math.Inf(1)-math.Inf(1)))
	assert.False(t, IsNaN(math.Inf(-1)))
	assert.False(t, IsNaN(0.0))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1.5))
	assert.True(t, IsFinite(float32(-3)))
	assert.False(t, IsFinite(NaN[float64]()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(float32(math.Inf(-1))))
}
