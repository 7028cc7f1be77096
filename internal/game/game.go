package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/circle-numbers/internal/circle"
	"github.com/iburimskiy/circle-numbers/internal/config"
	"github.com/iburimskiy/circle-numbers/internal/ui"
)

var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  ui.KeyLeft,
	ebiten.KeyArrowRight: ui.KeyRight,
	ebiten.KeyEscape:     ui.KeyEscape,
	ebiten.KeyQ:          ui.KeyQuit,
	ebiten.KeyR:          ui.KeyRandom,
	ebiten.KeyC:          ui.KeyCopy,
	ebiten.KeyS:          ui.KeySave,
}

// Game is the ebiten front end over a circle.Session. It only repaints
// when the session or the pointer state has changed.
type Game struct {
	session  *circle.Session
	settings *config.Settings
	logger   *zap.Logger
	click    *clicker

	width, height int
	layout        ui.Layout

	// chord cache, keyed by the parameters and canvas it was projected for
	chords    circle.ChordSet
	projected circle.Params
	canvas    image.Rectangle

	hovered int
	pressed int
	dirty   bool
	lastErr error
}

func New(s *circle.Session, settings *config.Settings, logger *zap.Logger) *Game {
	g := &Game{
		session:  s,
		settings: settings,
		logger:   logger,
		click:    newClicker(settings.Sound, logger),
		width:    settings.Width,
		height:   settings.Height,
		hovered:  -1,
		pressed:  -1,
		dirty:    true,
	}
	s.OnChange(g.changed)
	g.relayout()
	return g
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.settings.Width, g.settings.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)
	return ebiten.RunGame(g)
}

func (g *Game) changed(snap circle.Snapshot) {
	g.logger.Debug("state changed",
		zap.Stringer("mode", snap.Mode),
		zap.Int("cursor", snap.Cursor),
		zap.Int("multiplier", snap.Params.Multiplier),
		zap.Int("modulus", snap.Params.Modulus),
	)
	g.relayout()
}

func (g *Game) relayout() {
	g.session.Sync()
	g.layout = ui.Build(g.session.Snapshot(), g.width, g.height)
	g.dirty = true
}

func (g *Game) Update() error {
	for key, name := range keyNames {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if a, ok := ui.KeyAction(name, g.session.Mode()); ok {
			if err := g.perform(a); err != nil {
				return err
			}
		}
	}

	mouseX, mouseY := ebiten.CursorPosition()
	if h := g.layout.ButtonAt(mouseX, mouseY); h != g.hovered {
		g.hovered = h
		g.dirty = true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.hovered >= 0 {
		g.pressed = g.hovered
		g.dirty = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		pressed := g.pressed
		g.pressed = -1
		g.dirty = true
		if pressed >= 0 && pressed == g.hovered {
			// the layout is rebuilt by perform, so copy the action first
			a := g.layout.Buttons[pressed].Action
			if err := g.perform(a); err != nil {
				return err
			}
		}
	}
	return nil
}

// perform runs one action. Only quitting returns a non-nil error.
func (g *Game) perform(a ui.Action) error {
	g.logger.Debug("action", zap.Stringer("action", a))
	g.click.play()

	if ui.Apply(g.session, a) {
		return nil
	}

	var err error
	switch a.Kind {
	case ui.KindQuit:
		return ebiten.Termination
	case ui.KindCopy:
		err = copyParams(g.session.Params())
	case ui.KindSave:
		err = g.saveDialog()
	}
	if err != nil {
		g.logger.Warn("action failed", zap.Stringer("action", a), zap.Error(err))
	}
	g.lastErr = err
	g.dirty = true
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.dirty = false

	screen.Fill(config.BackgroundColor)
	if !g.layout.Header.Empty() {
		drawHeader(screen, g.layout.Header)
	}

	g.project()
	drawCanvas(screen, g.canvas, g.chords, g.settings.Palette, g.projected.Modulus)

	for i, b := range g.layout.Buttons {
		drawButton(screen, b, i == g.hovered, i == g.pressed)
	}
	for _, l := range g.layout.Labels {
		drawLabel(screen, l)
	}
	if g.lastErr != nil {
		drawStatus(screen, "Error: "+g.lastErr.Error(), g.layout.Footer)
	}
}

// project refreshes the chord cache when the parameters or canvas moved.
func (g *Game) project() {
	p := g.session.Params()
	if p == g.projected && g.layout.Canvas == g.canvas && g.chords.Chords != nil {
		return
	}
	g.projected = p
	g.canvas = g.layout.Canvas
	g.chords = circle.Project(p.Multiplier, p.Modulus, float64(g.canvas.Dx()), float64(g.canvas.Dy()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.relayout()
	}
	return g.width, g.height
}
