package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/memefield/internal/field"
	"github.com/vancomm/memefield/internal/sprite"
)

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func center(gridPos image.Point) image.Point {
	return field.GridToScreen(gridPos).Add(image.Pt(field.TileSize/2, field.TileSize/2))
}

func TestRenderHiddenField(t *testing.T) {
	f := field.MustNew(10, rand.New(rand.NewPCG(1, 2)))
	s := Render(f)

	assert.Equal(t, f.Rect(), s.Image().Bounds())
	for gridPos := range f.All() {
		c := center(gridPos)
		assert.Equal(t, rgba(sprite.ButtonFace), s.Image().RGBAAt(c.X, c.Y))
	}
}

func TestRenderRevealedMine(t *testing.T) {
	f := field.MustNew(10, rand.New(rand.NewPCG(1, 2)))

	var mine image.Point
	for gridPos, tile := range f.All() {
		if tile.HasMine() {
			mine = gridPos
			break
		}
	}
	f.OnRevealClick(center(mine))

	s := Render(f)
	c := center(mine)
	assert.Equal(t, rgba(sprite.BombColor), s.Image().RGBAAt(c.X, c.Y))
}

func TestEncodePNG(t *testing.T) {
	f := field.MustNew(10, rand.New(rand.NewPCG(1, 2)))
	s := Render(f)

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, f.Rect(), img.Bounds())
}
