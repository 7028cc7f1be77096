package circle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControllerRoundTrip(t *testing.T) {
	c := NewController(CatalogueLen())
	assert.Equal(t, ModeParameterBar, c.Mode())
	assert.False(t, c.CanRetreat())

	c.Advance()
	assert.Equal(t, ModeFullScreen, c.Mode())

	c.Advance()
	assert.Equal(t, ModeSlideshow, c.Mode())
	assert.Equal(t, 0, c.Cursor())

	c.Retreat()
	assert.Equal(t, ModeFullScreen, c.Mode())

	c.Retreat()
	assert.Equal(t, ModeParameterBar, c.Mode())
}

func TestControllerRetreatFromParameterBarIsNoop(t *testing.T) {
	c := NewController(CatalogueLen())
	c.Retreat()
	assert.Equal(t, ModeParameterBar, c.Mode())
	assert.Equal(t, 0, c.Cursor())
}

func TestControllerSlideshowWraps(t *testing.T) {
	c := NewController(14)
	assert.True(t, c.SetSlide(13))

	c.Advance()
	assert.Equal(t, ModeParameterBar, c.Mode())
	assert.Equal(t, 0, c.Cursor())
}

func TestControllerSlideshowUnderflow(t *testing.T) {
	c := NewController(14)
	assert.True(t, c.SetSlide(0))

	c.Retreat()
	assert.Equal(t, ModeFullScreen, c.Mode())
}

func TestControllerWalksEverySlide(t *testing.T) {
	c := NewController(14)
	c.Advance()
	c.Advance()
	for i := 0; i < 14; i++ {
		assert.Equal(t, ModeSlideshow, c.Mode())
		assert.Equal(t, i, c.Cursor())
		c.Advance()
	}
	assert.Equal(t, ModeParameterBar, c.Mode())

	assert.True(t, c.SetSlide(5))
	c.Retreat()
	assert.Equal(t, 4, c.Cursor())
	assert.Equal(t, ModeSlideshow, c.Mode())
}

func TestControllerReturnToParameterBar(t *testing.T) {
	for _, start := range []int{0, 7, 13} {
		c := NewController(14)
		c.SetSlide(start)
		c.ReturnToParameterBar()
		assert.Equal(t, ModeParameterBar, c.Mode())
	}

	c := NewController(14)
	c.Advance()
	c.ReturnToParameterBar()
	assert.Equal(t, ModeParameterBar, c.Mode())
}

func TestControllerSetSlideBounds(t *testing.T) {
	c := NewController(14)
	assert.False(t, c.SetSlide(-1))
	assert.False(t, c.SetSlide(14))
	assert.Equal(t, ModeParameterBar, c.Mode())
}

func TestControllerEmptyCatalogue(t *testing.T) {
	c := NewController(0)
	c.Advance()
	c.Advance()
	assert.Equal(t, ModeParameterBar, c.Mode())
}
