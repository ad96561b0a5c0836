package field

import (
	"image"
	"image/color"
)

// Surface is what a field draws itself onto. Positions are pixel origins of a
// tile; every tile primitive covers TileSize x TileSize pixels.
type Surface interface {
	DrawRect(r image.Rectangle, c color.Color)
	DrawTileButton(pos image.Point)
	DrawTileFlag(pos image.Point)
	DrawTileNumber(pos image.Point, n int)
	DrawTileBomb(pos image.Point)
}
