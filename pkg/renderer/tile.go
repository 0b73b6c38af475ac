package renderer

import "image"

// TileSize is the edge length of a render tile. Tiles along the right and
// bottom edge of the image are clipped to the image bounds and so may be
// smaller.
const TileSize = 64

// Tile is a non-overlapping rectangular region of the image assigned to a
// single worker as one unit of work.
type Tile struct {
	Bounds image.Rectangle
}

// SplitTiles partitions a width x height image into row-major TileSize x
// TileSize tiles.
func SplitTiles(width, height int) []Tile {
	var tiles []Tile
	for y := 0; y < height; y += TileSize {
		maxY := y + TileSize
		if maxY > height {
			maxY = height
		}
		for x := 0; x < width; x += TileSize {
			maxX := x + TileSize
			if maxX > width {
				maxX = width
			}
			tiles = append(tiles, Tile{Bounds: image.Rect(x, y, maxX, maxY)})
		}
	}
	return tiles
}
