// Package tui is a terminal front end over the same session as the
// window: parameter bar, full screen and slideshow, drawn in characters.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iburimskiy/circle-numbers/internal/circle"
	"github.com/iburimskiy/circle-numbers/internal/config"
	"github.com/iburimskiy/circle-numbers/internal/export"
	"github.com/iburimskiy/circle-numbers/internal/ui"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#202020")).
			Background(lipgloss.Color("#F4F424")).
			Padding(0, 1)
	activeStyle = headerStyle.Copy().Underline(true)
	canvasStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2896EF"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
)

// Reserved rows around the canvas per mode.
const (
	headerRows = 2
	footerRows = 2
)

type Model struct {
	session  *circle.Session
	settings *config.Settings
	logger   *zap.Logger

	width, height int
	field         circle.Field
	step          int
	status        string
	failed        bool

	copyText func(string) error
	savePNG  func(path string, p circle.Params, opts export.Options) error
}

func New(s *circle.Session, settings *config.Settings, logger *zap.Logger) *Model {
	m := &Model{
		session:  s,
		settings: settings,
		logger:   logger,
		width:    80,
		height:   24,
		copyText: clipboard.WriteAll,
		savePNG:  export.SavePNG,
	}
	s.OnChange(func(snap circle.Snapshot) {
		logger.Debug("state changed",
			zap.Stringer("mode", snap.Mode),
			zap.Int("cursor", snap.Cursor),
			zap.Int("multiplier", snap.Params.Multiplier),
			zap.Int("modulus", snap.Params.Modulus),
		)
	})
	return m
}

// Run starts the program on the alternate screen.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	if key == "ctrl+c" {
		return tea.Quit
	}

	if m.session.Mode() == circle.ModeParameterBar {
		switch key {
		case "tab":
			m.field = 1 - m.field
			return nil
		case "1", "2", "3", "4":
			m.step = int(key[0] - '1')
			return nil
		case "+", "=":
			ui.Apply(m.session, ui.Action{Kind: ui.KindIncrement, Field: m.field, Amount: circle.Steps[m.step]})
			return nil
		case "-", "_":
			ui.Apply(m.session, ui.Action{Kind: ui.KindDecrement, Field: m.field, Amount: circle.Steps[m.step]})
			return nil
		}
	}

	a, ok := ui.KeyAction(key, m.session.Mode())
	if !ok {
		return nil
	}
	m.logger.Debug("action", zap.Stringer("action", a))
	if ui.Apply(m.session, a) {
		return nil
	}

	var err error
	switch a.Kind {
	case ui.KindQuit:
		return tea.Quit
	case ui.KindCopy:
		p := m.session.Params()
		if err = m.copyText(fmt.Sprintf("%d,%d", p.Multiplier, p.Modulus)); err == nil {
			m.status = "copied"
		}
	case ui.KindSave:
		err = m.save()
	}
	m.failed = err != nil
	if err != nil {
		m.logger.Warn("action failed", zap.Stringer("action", a), zap.Error(err))
		m.status = err.Error()
	}
	return nil
}

func (m *Model) save() error {
	p := m.session.Params()
	path, err := m.settings.ExportPath(export.FileName(p))
	if err != nil {
		return err
	}
	err = m.savePNG(path, p, export.Options{
		Width:   m.settings.Width,
		Height:  m.settings.Height,
		Palette: m.settings.Palette,
		Caption: true,
	})
	if err != nil {
		return err
	}
	m.status = "saved " + path
	return nil
}

func (m *Model) View() string {
	m.session.Sync()
	snap := m.session.Snapshot()

	var b strings.Builder
	rows := m.height - footerRows
	if snap.Mode == circle.ModeParameterBar {
		b.WriteString(m.header(snap.Params))
		b.WriteString("\n\n")
		rows -= headerRows
	}

	if rows > 0 && m.width > 0 {
		canvas := strings.Join(Raster(snap.Params, m.width, rows), "\n")
		b.WriteString(canvasStyle.Render(canvas))
	}
	b.WriteString("\n")
	b.WriteString(m.footer(snap))
	return b.String()
}

func (m *Model) header(p circle.Params) string {
	mult := headerStyle.Render(fmt.Sprintf("Multiplier: %d", p.Multiplier))
	mod := headerStyle.Render(fmt.Sprintf("Modulus: %d", p.Modulus))
	if m.field == circle.FieldModulus {
		mod = activeStyle.Render(fmt.Sprintf("Modulus: %d", p.Modulus))
	} else {
		mult = activeStyle.Render(fmt.Sprintf("Multiplier: %d", p.Multiplier))
	}
	step := headerStyle.Render(fmt.Sprintf("step ±%d", circle.Steps[m.step]))
	return lipgloss.JoinHorizontal(lipgloss.Top, mult, " ", mod, " ", step)
}

func (m *Model) footer(snap circle.Snapshot) string {
	var hints []string
	if snap.Mode == circle.ModeParameterBar {
		hints = append(hints, "tab field", "1-4 step", "+/- change", "r Generate Random Circle")
	} else {
		hints = append(hints, "← back", "esc Show Circle Parameters")
	}
	hints = append(hints, "→ next", "c copy", "s save", "q quit")
	if label := snap.SlideLabel(); label != "" {
		hints = append(hints, label)
	}

	line := footerStyle.Render(strings.Join(hints, " · "))
	if m.status != "" {
		style := footerStyle
		if m.failed {
			style = errorStyle
		}
		line += "  " + style.Render(m.status)
	}
	return line
}
