package sprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func newCanvas() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 2*Size, Size))
}

func countColor(img *image.RGBA, r image.Rectangle, c color.Color) (n int) {
	want := rgba(c)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == want {
				n++
			}
		}
	}
	return
}

func TestDrawButton(t *testing.T) {
	img := newCanvas()
	pos := image.Pt(Size, 0)
	DrawButton(img, pos)

	assert.Equal(t, rgba(ButtonFace), img.RGBAAt(pos.X+Size/2, pos.Y+Size/2))
	assert.Equal(t, rgba(ButtonLight), img.RGBAAt(pos.X, pos.Y))
	assert.Equal(t, rgba(ButtonDark), img.RGBAAt(pos.X+Size-1, pos.Y+Size-1))
	// neighbouring tile untouched
	assert.Equal(t, color.RGBA{}, img.RGBAAt(Size-1, Size/2))
}

func TestDrawFlag(t *testing.T) {
	img := newCanvas()
	DrawButton(img, image.Point{})
	DrawFlag(img, image.Point{})

	assert.Equal(t, rgba(FlagColor), img.RGBAAt(7, 5))
	assert.Equal(t, rgba(PoleColor), img.RGBAAt(8, 9))
}

func TestDrawNumber(t *testing.T) {
	tile := image.Rect(0, 0, Size, Size)
	for n := 1; n <= 8; n++ {
		img := newCanvas()
		DrawNumber(img, image.Point{}, n)
		assert.Positive(t, countColor(img, tile, NumberColors[n]), "digit %d", n)
	}

	img := newCanvas()
	DrawNumber(img, image.Point{}, 0)
	inner := image.Rect(1, 1, Size, Size)
	assert.Equal(t, inner.Dx()*inner.Dy(), countColor(img, inner, ButtonFace))
}

func TestDrawBomb(t *testing.T) {
	img := newCanvas()
	DrawBomb(img, image.Point{})

	assert.Equal(t, rgba(BombColor), img.RGBAAt(Size/2, Size/2))
	assert.Equal(t, rgba(BombShine), img.RGBAAt(Size/2-2, Size/2-2))
}
