// Package raster renders a field into an in-memory RGBA image.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/vancomm/memefield/internal/field"
	"github.com/vancomm/memefield/internal/sprite"
)

type Surface struct {
	img *image.RGBA
}

// [Surface] implements [field.Surface]
var _ field.Surface = (*Surface)(nil)

func New(bounds image.Rectangle) *Surface {
	return &Surface{img: image.NewRGBA(bounds)}
}

// Render draws f onto a fresh surface sized to the field.
func Render(f *field.Field) *Surface {
	s := New(f.Rect())
	f.Draw(s)
	return s
}

func (s *Surface) DrawRect(r image.Rectangle, c color.Color) {
	sprite.FillRect(s.img, r, c)
}

func (s *Surface) DrawTileButton(pos image.Point) {
	sprite.DrawButton(s.img, pos)
}

func (s *Surface) DrawTileFlag(pos image.Point) {
	sprite.DrawFlag(s.img, pos)
}

func (s *Surface) DrawTileNumber(pos image.Point, n int) {
	sprite.DrawNumber(s.img, pos, n)
}

func (s *Surface) DrawTileBomb(pos image.Point) {
	sprite.DrawBomb(s.img, pos)
}

func (s *Surface) Image() *image.RGBA {
	return s.img
}

func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}
