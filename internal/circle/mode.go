package circle

// Mode is the active display mode.
type Mode int

const (
	ModeParameterBar Mode = iota
	ModeFullScreen
	ModeSlideshow
)

func (m Mode) String() string {
	switch m {
	case ModeParameterBar:
		return "parameter-bar"
	case ModeFullScreen:
		return "full-screen"
	case ModeSlideshow:
		return "slideshow"
	default:
		return "unknown"
	}
}

// Controller is the display-mode state machine. Cursor indexes the
// catalogue and is only meaningful in ModeSlideshow.
type Controller struct {
	mode   Mode
	cursor int
	last   int
}

// NewController returns a controller in ModeParameterBar for a catalogue
// of size entries.
func NewController(size int) *Controller {
	return &Controller{last: size - 1}
}

func (c *Controller) Mode() Mode  { return c.mode }
func (c *Controller) Cursor() int { return c.cursor }

// CanRetreat reports whether Retreat would do anything.
func (c *Controller) CanRetreat() bool { return c.mode != ModeParameterBar }

// Advance moves one step forward. Past the last slide it resets the
// cursor and returns to the parameter bar.
func (c *Controller) Advance() {
	switch c.mode {
	case ModeParameterBar:
		c.mode = ModeFullScreen
	case ModeFullScreen:
		if c.last < 0 {
			c.mode = ModeParameterBar
			return
		}
		c.mode = ModeSlideshow
		c.cursor = 0
	case ModeSlideshow:
		c.cursor++
		if c.cursor > c.last {
			c.cursor = 0
			c.mode = ModeParameterBar
		}
	}
}

// Retreat moves one step back. It is a no-op in ModeParameterBar.
func (c *Controller) Retreat() {
	switch c.mode {
	case ModeSlideshow:
		if c.cursor-1 < 0 {
			c.mode = ModeFullScreen
			return
		}
		c.cursor--
	case ModeFullScreen:
		c.mode = ModeParameterBar
	}
}

// ReturnToParameterBar jumps straight to the parameter bar.
func (c *Controller) ReturnToParameterBar() {
	c.mode = ModeParameterBar
}

// SetSlide enters the slideshow at cursor i. Out of range values are
// ignored.
func (c *Controller) SetSlide(i int) bool {
	if i < 0 || i > c.last {
		return false
	}
	c.mode = ModeSlideshow
	c.cursor = i
	return true
}
