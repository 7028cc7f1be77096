package circle

import "math"

const (
	MinMultiplier = 2
	MinModulus    = 3

	// Random draws use a stricter modulus floor than the manual buttons.
	MinRandomModulus    = 9
	MaxRandomMultiplier = 2000
	MaxRandomModulus    = 2000
	DefaultMultiplier   = MinMultiplier
	DefaultModulus      = MinRandomModulus
)

// Steps are the increment/decrement magnitudes offered by the controls.
var Steps = [...]int{1, 10, 100, 1000}

// Field selects one of the two parameters.
type Field int

const (
	FieldMultiplier Field = iota
	FieldModulus
)

func (f Field) String() string {
	if f == FieldModulus {
		return "modulus"
	}
	return "multiplier"
}

// Minimum is the floor a manual decrement of f clamps at.
func (f Field) Minimum() int {
	if f == FieldModulus {
		return MinModulus
	}
	return MinMultiplier
}

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Params holds the two integers that define a circle.
type Params struct {
	Multiplier int
	Modulus    int
}

func DefaultParams() Params {
	return Params{Multiplier: DefaultMultiplier, Modulus: DefaultModulus}
}

func (p *Params) field(f Field) *int {
	if f == FieldModulus {
		return &p.Modulus
	}
	return &p.Multiplier
}

// Get returns the value of f.
func (p Params) Get(f Field) int {
	return *p.field(f)
}

// Increment adds amount to f. There is no upper bound.
func (p *Params) Increment(f Field, amount int) {
	*p.field(f) += amount
}

// Decrement subtracts amount from f, clamping at minimum.
func (p *Params) Decrement(f Field, amount, minimum int) {
	v := p.field(f)
	*v = Subtract(*v, amount, minimum)
}

// Randomize draws both fields from src, rounded and clamped up to
// MinMultiplier and MinRandomModulus respectively.
func (p *Params) Randomize(src RandomSource) {
	p.Multiplier = max(int(math.Round(src.Float64()*MaxRandomMultiplier)), MinMultiplier)
	p.Modulus = max(int(math.Round(src.Float64()*MaxRandomModulus)), MinRandomModulus)
}

// LoadFrom overwrites both fields with the entry verbatim.
func (p *Params) LoadFrom(e Entry) {
	p.Multiplier = e.Multiplier
	p.Modulus = e.Modulus
}

// Subtract returns max(number-amount, minimum).
func Subtract(number, amount, minimum int) int {
	return max(number-amount, minimum)
}
