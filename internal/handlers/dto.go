package handlers

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/memefield/internal/field"
	"github.com/vancomm/memefield/internal/session"
)

// CellView is what a client may know about a tile.
type CellView int8

const (
	CellHidden  CellView = -2
	CellFlagged CellView = -1
	CellMine    CellView = 65
	// 0-8 for a revealed tile with that many mined neighbors
)

func (v CellView) String() string {
	switch {
	case v == CellHidden:
		return " "
	case v == CellFlagged:
		return "F"
	case v == CellMine:
		return "*"
	case 0 <= v && v <= 8:
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

func viewOf(t *field.Tile) CellView {
	switch {
	case t.IsFlagged():
		return CellFlagged
	case !t.IsRevealed():
		return CellHidden
	case t.HasMine():
		return CellMine
	default:
		return CellView(t.NeighborMineCount())
	}
}

// CreateFieldDTO leaves MineCount nil when the query omits it.
type CreateFieldDTO struct {
	MineCount *int `schema:"mine_count"`
}

func ParseCreateFieldDTO(src map[string][]string) (CreateFieldDTO, error) {
	var dto CreateFieldDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

// PositionDTO is a click position in field pixels.
type PositionDTO struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src map[string][]string) (PositionDTO, error) {
	var dto PositionDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

type FieldDTO struct {
	FieldID   string     `json:"field_id"`
	Token     string     `json:"token,omitempty"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	TileSize  int        `json:"tile_size"`
	MineCount int        `json:"mine_count"`
	Revealed  int        `json:"revealed"`
	Flagged   int        `json:"flagged"`
	Grid      []CellView `json:"grid"`
	CreatedAt int64      `json:"created_at"`
	UpdatedAt int64      `json:"updated_at"`
}

func NewFieldDTO(id uuid.UUID, createdAt, updatedAt time.Time, f *field.Field) *FieldDTO {
	grid := make([]CellView, 0, field.Width*field.Height)
	for _, tile := range f.All() {
		grid = append(grid, viewOf(tile))
	}
	return &FieldDTO{
		FieldID:   id.String(),
		Width:     field.Width,
		Height:    field.Height,
		TileSize:  field.TileSize,
		MineCount: f.MineCount(),
		Revealed:  f.Revealed(),
		Flagged:   f.Flagged(),
		Grid:      grid,
		CreatedAt: createdAt.UnixMilli(),
		UpdatedAt: updatedAt.UnixMilli(),
	}
}

func snapshot(s *session.Session) *FieldDTO {
	updatedAt := s.UpdatedAt()
	var dto *FieldDTO
	s.View(func(f *field.Field) {
		dto = NewFieldDTO(s.ID, s.CreatedAt, updatedAt, f)
	})
	return dto
}
