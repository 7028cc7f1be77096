package circle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedSource struct {
	values []float64
	next   int
}

func (f *fixedSource) Float64() float64 {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

func TestSubtractNeverBelowMinimum(t *testing.T) {
	for _, minimum := range []int{MinMultiplier, MinModulus} {
		for start := minimum; start < minimum+50; start++ {
			for _, amount := range []int{0, 1, 10, 100, 1000} {
				got := Subtract(start, amount, minimum)
				assert.GreaterOrEqual(t, got, minimum)
				if start-amount >= minimum {
					assert.Equal(t, start-amount, got)
				}
			}
		}
	}
}

func TestParamsIncrementDecrement(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, Params{Multiplier: 2, Modulus: 9}, p)

	p.Increment(FieldMultiplier, 1000)
	p.Increment(FieldModulus, 10)
	assert.Equal(t, Params{Multiplier: 1002, Modulus: 19}, p)

	p.Decrement(FieldMultiplier, 100, FieldMultiplier.Minimum())
	assert.Equal(t, 902, p.Multiplier)

	p.Decrement(FieldModulus, 1000, FieldModulus.Minimum())
	assert.Equal(t, 3, p.Modulus)

	p.Decrement(FieldMultiplier, 1000, FieldMultiplier.Minimum())
	assert.Equal(t, 2, p.Get(FieldMultiplier))
}

func TestParamsRandomize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Params
	}{
		{"zeros clamp to floors", []float64{0, 0}, Params{Multiplier: 2, Modulus: 9}},
		{"small values clamp", []float64{0.0004, 0.004}, Params{Multiplier: 2, Modulus: 9}},
		{"rounds to nearest", []float64{0.25, 0.5003}, Params{Multiplier: 500, Modulus: 1001}},
		{"near ceiling", []float64{0.9999, 0.9999}, Params{Multiplier: 2000, Modulus: 2000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Params
			p.Randomize(&fixedSource{values: tt.values})
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestParamsRandomizeFloors(t *testing.T) {
	src := &fixedSource{values: []float64{0, 0.001, 0.002, 0.003, 0.5, 0.9}}
	for i := 0; i < 100; i++ {
		var p Params
		p.Randomize(src)
		assert.GreaterOrEqual(t, p.Multiplier, MinMultiplier)
		assert.GreaterOrEqual(t, p.Modulus, MinRandomModulus)
	}
}

func TestParamsLoadFromIsVerbatim(t *testing.T) {
	p := DefaultParams()
	p.LoadFrom(Entry{Multiplier: 1, Modulus: 1})
	assert.Equal(t, Params{Multiplier: 1, Modulus: 1}, p)
}
