package field

import (
	"errors"
	"fmt"
	"image"
	"iter"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/memefield/internal/sprite"
)

var Log = logrus.New()

const (
	Width    = 20
	Height   = 16
	TileSize = sprite.Size
)

// Field is a Width x Height board stored row-major. Only tile states change
// after construction.
type Field struct {
	tiles  [Width * Height]Tile
	nMines int
}

func newEmpty() *Field {
	f := &Field{}
	for i := range f.tiles {
		f.tiles[i] = newTile()
	}
	return f
}

// New scatters nMines mines uniformly at random and precomputes every neighbor
// count. nMines must be in (0, Width*Height).
func New(nMines int, r *rand.Rand) (f *Field, err error) {
	if nMines <= 0 || nMines >= Width*Height {
		return nil, fmt.Errorf("%w: %d not in (0, %d)", ErrMineCount, nMines, Width*Height)
	}

	defer func() {
		if rec := recover(); rec != nil {
			var ae AssertionError
			if e, ok := rec.(error); ok && errors.As(e, &ae) {
				Log.WithError(ae).Error("field construction failed")
				f, err = nil, ae
				return
			}
			panic(rec)
		}
	}()

	f = newEmpty()
	f.spawnMines(nMines, r)
	f.countNeighbors()

	Log.WithFields(logrus.Fields{
		"width":  Width,
		"height": Height,
		"mines":  nMines,
	}).Debug("field constructed")

	return f, nil
}

// MustNew is like [New] but panics if the mine count is out of range.
func MustNew(nMines int, r *rand.Rand) *Field {
	f, err := New(nMines, r)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Field) spawnMines(nMines int, r *rand.Rand) {
	/*
	 * Write down every cell index, then pick nMines off the list: each
	 * pick swaps the tail into the hole, so no cell is drawn twice.
	 */
	candidates := make([]int, len(f.tiles))
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range nMines {
		i := r.IntN(k)
		f.tiles[candidates[i]].SpawnMine()
		k--
		candidates[i] = candidates[k]
	}
	f.nMines = nMines
}

func (f *Field) countNeighbors() {
	for gridPos := range f.positions() {
		f.TileAt(gridPos).SetNeighborMineCount(f.countNeighborMines(gridPos))
	}
}

// countNeighborMines scans the edge-clamped 3x3 window around gridPos. The
// centre is included; a mined tile never shows its count.
func (f *Field) countNeighborMines(gridPos image.Point) int {
	startX := max(0, gridPos.X-1)
	startY := max(0, gridPos.Y-1)
	endX := min(Width-1, gridPos.X+1)
	endY := min(Height-1, gridPos.Y+1)

	count := 0
	for y := startY; y <= endY; y++ {
		for x := startX; x <= endX; x++ {
			if f.tiles[y*Width+x].HasMine() {
				count++
			}
		}
	}
	return count
}

func inGrid(gridPos image.Point) bool {
	return 0 <= gridPos.X && gridPos.X < Width &&
		0 <= gridPos.Y && gridPos.Y < Height
}

// panics [AssertionError]
func (f *Field) TileAt(gridPos image.Point) *Tile {
	must(inGrid(gridPos), fmt.Sprintf("grid position %v outside the field", gridPos))
	return &f.tiles[gridPos.Y*Width+gridPos.X]
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ScreenToGrid(screenPos image.Point) image.Point {
	return image.Pt(floorDiv(screenPos.X, TileSize), floorDiv(screenPos.Y, TileSize))
}

func GridToScreen(gridPos image.Point) image.Point {
	return gridPos.Mul(TileSize)
}

// Contains reports whether a click at screenPos lands on a tile.
func (f *Field) Contains(screenPos image.Point) bool {
	return inGrid(ScreenToGrid(screenPos))
}

func (f *Field) Rect() image.Rectangle {
	return image.Rect(0, 0, Width*TileSize, Height*TileSize)
}

func (f *Field) Draw(s Surface) {
	s.DrawRect(f.Rect(), sprite.BaseColor)
	for gridPos, tile := range f.All() {
		tile.Draw(GridToScreen(gridPos), s)
	}
}

// panics [AssertionError] if screenPos is outside the field
func (f *Field) OnRevealClick(screenPos image.Point) {
	gridPos := ScreenToGrid(screenPos)
	must(inGrid(gridPos), fmt.Sprintf("reveal click %v outside the field", screenPos))
	tile := f.TileAt(gridPos)
	if !tile.IsRevealed() && !tile.IsFlagged() {
		tile.Reveal()
	}
}

// panics [AssertionError] if screenPos is outside the field
func (f *Field) OnFlagClick(screenPos image.Point) {
	gridPos := ScreenToGrid(screenPos)
	must(inGrid(gridPos), fmt.Sprintf("flag click %v outside the field", screenPos))
	tile := f.TileAt(gridPos)
	if !tile.IsFlagged() && !tile.IsRevealed() {
		tile.ToggleFlag()
	}
}

func (f *Field) positions() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for y := range Height {
			for x := range Width {
				if !yield(image.Pt(x, y)) {
					return
				}
			}
		}
	}
}

// All yields every tile with its grid position in row-major order.
func (f *Field) All() iter.Seq2[image.Point, *Tile] {
	return func(yield func(image.Point, *Tile) bool) {
		for gridPos := range f.positions() {
			if !yield(gridPos, &f.tiles[gridPos.Y*Width+gridPos.X]) {
				return
			}
		}
	}
}

func (f *Field) MineCount() int {
	return f.nMines
}

func (f *Field) countState(s TileState) (n int) {
	for i := range f.tiles {
		if f.tiles[i].state == s {
			n++
		}
	}
	return
}

func (f *Field) Revealed() int {
	return f.countState(Revealed)
}

func (f *Field) Flagged() int {
	return f.countState(Flagged)
}

func (f *Field) String() string {
	var b strings.Builder
	for y := range Height {
		for x := range Width {
			t := &f.tiles[y*Width+x]
			switch {
			case t.IsFlagged():
				b.WriteString("F")
			case !t.IsRevealed():
				b.WriteString("#")
			case t.HasMine():
				b.WriteString("*")
			default:
				b.WriteString(strconv.Itoa(t.nNeighborMines))
			}
			if x < Width-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
