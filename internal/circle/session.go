package circle

import "fmt"

// Snapshot is a read-only view of a Session.
type Snapshot struct {
	Params Params
	Mode   Mode
	Cursor int
	Slides int
}

// SlideLabel is the "Circle: i / N" caption shown during the slideshow.
// It is empty outside the slideshow or when there are no slides.
func (s Snapshot) SlideLabel() string {
	if s.Mode != ModeSlideshow || s.Slides == 0 {
		return ""
	}
	return fmt.Sprintf("Circle: %d / %d", s.Cursor+1, s.Slides)
}

// Session owns the state of one running application: the parameters, the
// display mode and the slideshow entries. Every mutation is reported to a
// single change handler.
type Session struct {
	params   Params
	ctrl     *Controller
	entries  []Entry
	rnd      RandomSource
	onChange func(Snapshot)
}

// NewSession starts in the parameter bar with DefaultParams.
func NewSession(entries []Entry, rnd RandomSource) *Session {
	return &Session{
		params:  DefaultParams(),
		ctrl:    NewController(len(entries)),
		entries: entries,
		rnd:     rnd,
	}
}

// OnChange registers fn as the change handler, replacing any previous one.
func (s *Session) OnChange(fn func(Snapshot)) {
	s.onChange = fn
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Params: s.params,
		Mode:   s.ctrl.Mode(),
		Cursor: s.ctrl.Cursor(),
		Slides: len(s.entries),
	}
}

func (s *Session) Params() Params   { return s.params }
func (s *Session) Mode() Mode       { return s.ctrl.Mode() }
func (s *Session) Cursor() int      { return s.ctrl.Cursor() }
func (s *Session) CanRetreat() bool { return s.ctrl.CanRetreat() }

// SetParams replaces both parameters, raising each to its manual floor.
func (s *Session) SetParams(p Params) {
	s.params = Params{
		Multiplier: max(p.Multiplier, MinMultiplier),
		Modulus:    max(p.Modulus, MinModulus),
	}
	s.changed()
}

func (s *Session) Increment(f Field, amount int) {
	s.params.Increment(f, amount)
	s.changed()
}

// Decrement lowers f by amount, never below the field's minimum.
func (s *Session) Decrement(f Field, amount int) {
	s.params.Decrement(f, amount, f.Minimum())
	s.changed()
}

func (s *Session) Randomize() {
	s.params.Randomize(s.rnd)
	s.changed()
}

func (s *Session) Advance() {
	s.ctrl.Advance()
	s.Sync()
	s.changed()
}

func (s *Session) Retreat() {
	if !s.ctrl.CanRetreat() {
		return
	}
	s.ctrl.Retreat()
	s.Sync()
	s.changed()
}

func (s *Session) ReturnToParameterBar() {
	s.ctrl.ReturnToParameterBar()
	s.changed()
}

// GoToSlide enters the slideshow at entry i.
func (s *Session) GoToSlide(i int) bool {
	if !s.ctrl.SetSlide(i) {
		return false
	}
	s.Sync()
	s.changed()
	return true
}

// Sync reloads the parameters from the current slide while the slideshow
// is active. Renderers call it before projecting.
func (s *Session) Sync() {
	if s.ctrl.Mode() != ModeSlideshow {
		return
	}
	s.params.LoadFrom(s.entries[s.ctrl.Cursor()])
}

func (s *Session) changed() {
	if s.onChange != nil {
		s.onChange(s.Snapshot())
	}
}
