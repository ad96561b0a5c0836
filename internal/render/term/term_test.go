package term

import (
	"image"
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/memefield/internal/field"
)

func newScreen(t *testing.T) tcell.Screen {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(field.Width+4, field.Height+4)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestDrawField(t *testing.T) {
	screen := newScreen(t)
	origin := image.Pt(2, 1)
	s := New(screen, origin)
	f := field.MustNew(20, rand.New(rand.NewPCG(1, 2)))

	var mine, safe, flagged image.Point
	var haveMine, haveSafe, haveFlagged bool
	for gridPos, tile := range f.All() {
		switch {
		case tile.HasMine() && !haveMine:
			mine, haveMine = gridPos, true
		case !tile.HasMine() && !haveSafe:
			safe, haveSafe = gridPos, true
		case !tile.HasMine() && !haveFlagged:
			flagged, haveFlagged = gridPos, true
		}
	}

	f.OnRevealClick(s.CellToScreen(mine.X+origin.X, mine.Y+origin.Y))
	f.OnRevealClick(s.CellToScreen(safe.X+origin.X, safe.Y+origin.Y))
	f.OnFlagClick(s.CellToScreen(flagged.X+origin.X, flagged.Y+origin.Y))
	f.Draw(s)

	assert.Equal(t, BombRune, runeAt(screen, mine.X+origin.X, mine.Y+origin.Y))
	assert.Equal(t, FlagRune, runeAt(screen, flagged.X+origin.X, flagged.Y+origin.Y))

	n := f.TileAt(safe).NeighborMineCount()
	want := ZeroRune
	if n > 0 {
		want = rune('0' + n)
	}
	assert.Equal(t, want, runeAt(screen, safe.X+origin.X, safe.Y+origin.Y))

	hidden := 0
	for gridPos, tile := range f.All() {
		if tile.State() == field.Hidden {
			assert.Equal(t, ButtonRune, runeAt(screen, gridPos.X+origin.X, gridPos.Y+origin.Y))
			hidden++
		}
	}
	assert.Equal(t, field.Width*field.Height-3, hidden)
}

func TestCellToScreen(t *testing.T) {
	s := New(newScreen(t), image.Pt(2, 1))
	f := field.MustNew(1, rand.New(rand.NewPCG(1, 2)))

	assert.Equal(t, image.Pt(field.TileSize/2, field.TileSize/2), s.CellToScreen(2, 1))
	assert.Equal(t, image.Pt(3, 4), field.ScreenToGrid(s.CellToScreen(5, 5)))
	assert.False(t, f.Contains(s.CellToScreen(1, 1)))
	assert.False(t, f.Contains(s.CellToScreen(2+field.Width, 1)))
	assert.True(t, f.Contains(s.CellToScreen(1+field.Width, field.Height)))
}
