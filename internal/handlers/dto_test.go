package handlers

import (
	"image"
	"math/rand/v2"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/memefield/internal/field"
)

func TestCellViewString(t *testing.T) {
	tests := map[CellView]string{
		CellHidden:  " ",
		CellFlagged: "F",
		CellMine:    "*",
		0:           "0",
		8:           "8",
		9:           "!",
	}
	for v, want := range tests {
		assert.Equal(t, want, v.String(), "%d", v)
	}
}

func TestNewFieldDTO(t *testing.T) {
	f := field.MustNew(field.Width*field.Height-1, rand.New(rand.NewPCG(1, 2)))

	var safe image.Point
	for gridPos, tile := range f.All() {
		if !tile.HasMine() {
			safe = gridPos
		}
	}
	mine := image.Pt((safe.X+1)%field.Width, safe.Y)
	flagged := image.Pt(safe.X, (safe.Y+1)%field.Height)
	index := func(p image.Point) int { return p.Y*field.Width + p.X }

	f.OnRevealClick(field.GridToScreen(safe))
	f.OnRevealClick(field.GridToScreen(mine))
	f.OnFlagClick(field.GridToScreen(flagged))

	id := uuid.New()
	created := time.UnixMilli(1_700_000_000_000)
	dto := NewFieldDTO(id, created, created.Add(time.Second), f)

	assert.Equal(t, id.String(), dto.FieldID)
	assert.Equal(t, field.Width*field.Height-1, dto.MineCount)
	assert.Equal(t, 2, dto.Revealed)
	assert.Equal(t, 1, dto.Flagged)
	assert.Equal(t, int64(1_700_000_000_000), dto.CreatedAt)
	assert.Equal(t, int64(1_700_000_001_000), dto.UpdatedAt)
	require.Len(t, dto.Grid, field.Width*field.Height)
	assert.Equal(t, CellView(f.TileAt(safe).NeighborMineCount()), dto.Grid[index(safe)])
	assert.Equal(t, CellMine, dto.Grid[index(mine)])
	assert.Equal(t, CellFlagged, dto.Grid[index(flagged)])
	assert.Equal(t, CellHidden, dto.Grid[index(image.Pt(safe.X, (safe.Y+2)%field.Height))])
}

func TestParsePosition(t *testing.T) {
	pos, err := ParsePosition(url.Values{"x": {"17"}, "y": {"3"}, "token": {"abc"}})
	require.NoError(t, err)
	assert.Equal(t, PositionDTO{X: 17, Y: 3}, pos)

	for _, q := range []url.Values{
		{"x": {"1"}},
		{"y": {"1"}},
		{"x": {"one"}, "y": {"1"}},
	} {
		_, err := ParsePosition(q)
		assert.Error(t, err, "%v", q)
	}
}

func TestParseCreateFieldDTO(t *testing.T) {
	dto, err := ParseCreateFieldDTO(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, dto.MineCount)

	dto, err = ParseCreateFieldDTO(url.Values{"mine_count": {"0"}})
	require.NoError(t, err)
	require.NotNil(t, dto.MineCount)
	assert.Zero(t, *dto.MineCount)

	dto, err = ParseCreateFieldDTO(url.Values{"mine_count": {"12"}})
	require.NoError(t, err)
	require.NotNil(t, dto.MineCount)
	assert.Equal(t, 12, *dto.MineCount)
}
