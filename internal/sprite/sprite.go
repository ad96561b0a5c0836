// Package sprite draws the tile sprites onto any [draw.Image].
package sprite

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Size is the side of a tile sprite in pixels.
const Size = 16

var (
	BaseColor   color.Color = colornames.Silver
	ButtonLight color.Color = colornames.White
	ButtonDark  color.Color = colornames.Gray
	ButtonFace  color.Color = colornames.Silver
	FlagColor   color.Color = colornames.Red
	PoleColor   color.Color = colornames.Black
	BombColor   color.Color = colornames.Black
	BombShine   color.Color = colornames.White
)

// NumberColors holds the digit color for counts 1 through 8; index 0 is unused.
var NumberColors = [9]color.Color{
	nil,
	colornames.Blue,
	colornames.Green,
	colornames.Red,
	colornames.Navy,
	colornames.Maroon,
	colornames.Teal,
	colornames.Black,
	colornames.Gray,
}

var face = basicfont.Face7x13

func FillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func tileRect(pos image.Point) image.Rectangle {
	return image.Rect(pos.X, pos.Y, pos.X+Size, pos.Y+Size)
}

// DrawButton draws a raised, covered tile.
func DrawButton(dst draw.Image, pos image.Point) {
	r := tileRect(pos)
	FillRect(dst, r, ButtonFace)
	for i := range 2 {
		FillRect(dst, image.Rect(r.Min.X, r.Min.Y+i, r.Max.X-i, r.Min.Y+i+1), ButtonLight)
		FillRect(dst, image.Rect(r.Min.X+i, r.Min.Y, r.Min.X+i+1, r.Max.Y-i), ButtonLight)
		FillRect(dst, image.Rect(r.Min.X+i+1, r.Max.Y-i-1, r.Max.X, r.Max.Y-i), ButtonDark)
		FillRect(dst, image.Rect(r.Max.X-i-1, r.Min.Y+i+1, r.Max.X-i, r.Max.Y), ButtonDark)
	}
}

// DrawFlag draws a flag over whatever is already at pos.
func DrawFlag(dst draw.Image, pos image.Point) {
	// pennant
	for y := 3; y < 8; y++ {
		w := 4 - abs(y-5)
		FillRect(dst, image.Rect(pos.X+8-w, pos.Y+y, pos.X+8, pos.Y+y+1), FlagColor)
	}
	FillRect(dst, image.Rect(pos.X+8, pos.Y+3, pos.X+9, pos.Y+11), PoleColor)
	FillRect(dst, image.Rect(pos.X+6, pos.Y+10, pos.X+10, pos.Y+11), PoleColor)
	FillRect(dst, image.Rect(pos.X+4, pos.Y+11, pos.X+12, pos.Y+13), PoleColor)
}

func drawOpened(dst draw.Image, pos image.Point) {
	r := tileRect(pos)
	FillRect(dst, r, ButtonFace)
	FillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), ButtonDark)
	FillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), ButtonDark)
}

// DrawNumber draws an opened tile showing n neighboring mines. Zero draws the
// bare face.
func DrawNumber(dst draw.Image, pos image.Point, n int) {
	drawOpened(dst, pos)
	if n <= 0 || n >= len(NumberColors) {
		return
	}
	advance := face.Advance
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(NumberColors[n]),
		Face: face,
		Dot:  fixed.P(pos.X+(Size-advance)/2, pos.Y+(Size-face.Height)/2+face.Ascent),
	}
	d.DrawString(strconv.Itoa(n))
}

// DrawBomb draws an opened tile holding a mine.
func DrawBomb(dst draw.Image, pos image.Point) {
	drawOpened(dst, pos)
	cx, cy := pos.X+Size/2, pos.Y+Size/2
	for dy := -5; dy <= 5; dy++ {
		for dx := -5; dx <= 5; dx++ {
			if dx*dx+dy*dy <= 16 || (dx == 0 || dy == 0) && abs(dx+dy) <= 5 {
				dst.Set(cx+dx, cy+dy, BombColor)
			}
		}
	}
	dst.Set(cx-2, cy-2, BombShine)
	dst.Set(cx-1, cy-2, BombShine)
	dst.Set(cx-2, cy-1, BombShine)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
