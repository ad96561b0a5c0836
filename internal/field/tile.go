package field

import "image"

type TileState int8

const (
	Hidden TileState = iota
	Flagged
	Revealed
)

func (s TileState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

const unset = -1

type Tile struct {
	hasMine        bool
	state          TileState
	nNeighborMines int
}

func newTile() Tile {
	return Tile{state: Hidden, nNeighborMines: unset}
}

// panics [AssertionError]
func (t *Tile) SpawnMine() {
	must(!t.hasMine, "tile already has a mine")
	t.hasMine = true
}

func (t *Tile) HasMine() bool {
	return t.hasMine
}

// panics [AssertionError]
func (t *Tile) SetNeighborMineCount(n int) {
	must(t.nNeighborMines == unset, "neighbor mine count already set")
	t.nNeighborMines = n
}

// NeighborMineCount returns -1 until the count has been set.
func (t *Tile) NeighborMineCount() int {
	return t.nNeighborMines
}

func (t *Tile) State() TileState {
	return t.state
}

// panics [AssertionError]
func (t *Tile) Reveal() {
	must(t.state == Hidden, "reveal of a tile that is not hidden")
	t.state = Revealed
}

func (t *Tile) IsRevealed() bool {
	return t.state == Revealed
}

// ToggleFlag only ever plants a flag: a flagged tile stays flagged.
//
// panics [AssertionError]
func (t *Tile) ToggleFlag() {
	must(!t.IsRevealed(), "flag on a revealed tile")
	t.state = Flagged
}

func (t *Tile) IsFlagged() bool {
	return t.state == Flagged
}

func (t *Tile) Draw(pos image.Point, s Surface) {
	switch t.state {
	case Hidden:
		s.DrawTileButton(pos)
	case Flagged:
		s.DrawTileButton(pos)
		s.DrawTileFlag(pos)
	case Revealed:
		if !t.hasMine {
			s.DrawTileNumber(pos, t.nNeighborMines)
		} else {
			s.DrawTileBomb(pos)
		}
	}
}
