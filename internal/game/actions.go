package game

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/circle-numbers/internal/circle"
	"github.com/iburimskiy/circle-numbers/internal/export"
)

func copyParams(p circle.Params) error {
	if err := clipboard.WriteAll(fmt.Sprintf("%d,%d", p.Multiplier, p.Modulus)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// saveDialog asks for a file name and writes the current canvas as PNG.
// Cancelling the dialog is not an error.
func (g *Game) saveDialog() error {
	p := g.session.Params()
	name, err := g.settings.ExportPath(export.FileName(p))
	if err != nil {
		return err
	}

	path, err := zenity.SelectFileSave(
		zenity.Title("Save Circle"),
		zenity.Filename(name),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	err = export.SavePNG(path, p, export.Options{
		Width:   max(g.canvas.Dx(), 1),
		Height:  max(g.canvas.Dy(), 1),
		Palette: g.settings.Palette,
		Caption: true,
	})
	if err != nil {
		_ = zenity.Error(err.Error(), zenity.Title("Save failed"))
		return err
	}
	g.logger.Info("saved circle", zap.String("path", path))
	return nil
}
