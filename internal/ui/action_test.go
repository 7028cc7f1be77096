package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/circle-numbers/internal/circle"
)

type half struct{}

func (half) Float64() float64 { return 0.5 }

func TestApply(t *testing.T) {
	s := circle.NewSession(circle.Catalogue(), half{})

	assert.True(t, Apply(s, Action{Kind: KindIncrement, Field: circle.FieldModulus, Amount: 10}))
	assert.Equal(t, 19, s.Params().Modulus)

	assert.True(t, Apply(s, Action{Kind: KindDecrement, Field: circle.FieldMultiplier, Amount: 1000}))
	assert.Equal(t, 2, s.Params().Multiplier)

	assert.True(t, Apply(s, Action{Kind: KindRandomize}))
	assert.Equal(t, circle.Params{Multiplier: 1000, Modulus: 1000}, s.Params())

	assert.True(t, Apply(s, Action{Kind: KindAdvance}))
	assert.True(t, Apply(s, Action{Kind: KindAdvance}))
	assert.Equal(t, circle.ModeSlideshow, s.Mode())

	// randomize is ignored outside the parameter bar
	assert.True(t, Apply(s, Action{Kind: KindRandomize}))
	assert.Equal(t, circle.Params{Multiplier: 219, Modulus: 60}, s.Params())

	assert.True(t, Apply(s, Action{Kind: KindShowParameters}))
	assert.Equal(t, circle.ModeParameterBar, s.Mode())

	assert.False(t, Apply(s, Action{Kind: KindSave}))
	assert.False(t, Apply(s, Action{Kind: KindCopy}))
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  string
		mode circle.Mode
		want Kind
		ok   bool
	}{
		{KeyLeft, circle.ModeParameterBar, KindNone, false},
		{KeyLeft, circle.ModeSlideshow, KindRetreat, true},
		{KeyRight, circle.ModeParameterBar, KindAdvance, true},
		{KeyEscape, circle.ModeFullScreen, KindShowParameters, true},
		{KeyEscape, circle.ModeParameterBar, KindNone, false},
		{KeyRandom, circle.ModeParameterBar, KindRandomize, true},
		{KeyRandom, circle.ModeFullScreen, KindNone, false},
		{KeySave, circle.ModeSlideshow, KindSave, true},
		{"x", circle.ModeParameterBar, KindNone, false},
	}
	for _, tt := range tests {
		a, ok := KeyAction(tt.key, tt.mode)
		assert.Equal(t, tt.ok, ok, "%s in %s", tt.key, tt.mode)
		assert.Equal(t, tt.want, a.Kind, "%s in %s", tt.key, tt.mode)
	}
}
