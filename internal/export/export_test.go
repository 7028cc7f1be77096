package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/circle-numbers/internal/circle"
	"github.com/iburimskiy/circle-numbers/internal/config"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "circle-219x60.png", FileName(circle.Params{Multiplier: 219, Modulus: 60}))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	err := WritePNG(&buf, circle.Params{Multiplier: 2, Modulus: 9}, Options{
		Width: 200, Height: 200, Palette: config.PaletteMono, Caption: true,
	})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	// corners stay canvas black, the top of the circle is stroked
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Zero(t, r+g+b)
	var blue uint32
	for y := 22; y <= 26; y++ {
		_, _, b, _ := img.At(100, y).RGBA()
		blue += b
	}
	assert.NotZero(t, blue)
}

func TestRenderRejects(t *testing.T) {
	_, err := Render(circle.Params{Multiplier: 2, Modulus: 9}, Options{Width: 0, Height: 10})
	assert.Error(t, err)

	_, err = Render(circle.Params{Multiplier: 2, Modulus: 0}, Options{Width: 10, Height: 10})
	assert.Error(t, err)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	err := SavePNG(path, circle.Params{Multiplier: 124, Modulus: 31}, Options{
		Width: 320, Height: 240, Palette: config.PaletteRainbow,
	})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
