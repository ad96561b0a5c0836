// Package term draws a field on a terminal, one character cell per tile.
package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/memefield/internal/field"
	"github.com/vancomm/memefield/internal/sprite"
)

const (
	ButtonRune = '■'
	FlagRune   = '⚑'
	BombRune   = '*'
	ZeroRune   = '·'
)

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

var (
	base     = tcell.StyleDefault.Background(toColor(sprite.BaseColor))
	button   = base.Foreground(toColor(sprite.ButtonDark))
	flag     = base.Foreground(toColor(sprite.FlagColor)).Bold(true)
	bomb     = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack).Bold(true)
	numStyle [9]tcell.Style
)

func init() {
	numStyle[0] = base.Foreground(toColor(sprite.ButtonDark))
	for n := 1; n < len(numStyle); n++ {
		numStyle[n] = base.Foreground(toColor(sprite.NumberColors[n])).Bold(true)
	}
}

type Surface struct {
	screen tcell.Screen
	origin image.Point
}

// [Surface] implements [field.Surface]
var _ field.Surface = (*Surface)(nil)

// New returns a surface drawing onto screen with the field's top left tile at
// the origin cell.
func New(screen tcell.Screen, origin image.Point) *Surface {
	return &Surface{screen: screen, origin: origin}
}

func (s *Surface) cell(pos image.Point) (int, int) {
	p := pos.Div(field.TileSize).Add(s.origin)
	return p.X, p.Y
}

// CellToScreen maps a terminal cell to the pixel centre of the tile drawn there.
func (s *Surface) CellToScreen(x, y int) image.Point {
	return image.Pt(x, y).Sub(s.origin).Mul(field.TileSize).
		Add(image.Pt(field.TileSize/2, field.TileSize/2))
}

func (s *Surface) DrawRect(r image.Rectangle, c color.Color) {
	style := tcell.StyleDefault.Background(toColor(c))
	x0, y0 := s.cell(r.Min)
	x1, y1 := s.cell(r.Max)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *Surface) DrawTileButton(pos image.Point) {
	x, y := s.cell(pos)
	s.screen.SetContent(x, y, ButtonRune, nil, button)
}

func (s *Surface) DrawTileFlag(pos image.Point) {
	x, y := s.cell(pos)
	s.screen.SetContent(x, y, FlagRune, nil, flag)
}

func (s *Surface) DrawTileNumber(pos image.Point, n int) {
	x, y := s.cell(pos)
	if n <= 0 || n >= len(numStyle) {
		s.screen.SetContent(x, y, ZeroRune, nil, numStyle[0])
		return
	}
	s.screen.SetContent(x, y, rune('0'+n), nil, numStyle[n])
}

func (s *Surface) DrawTileBomb(pos image.Point) {
	x, y := s.cell(pos)
	s.screen.SetContent(x, y, BombRune, nil, bomb)
}
