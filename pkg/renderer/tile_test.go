package renderer

import "testing"

func TestSplitTiles_ExactMultipleOfTileSize(t *testing.T) {
	tiles := SplitTiles(128, 64)
	if len(tiles) != 2 {
		t.Fatalf("expected 2 tiles, got %d", len(tiles))
	}
	for _, tile := range tiles {
		if tile.Bounds.Dx() != 64 || tile.Bounds.Dy() != 64 {
			t.Errorf("expected every tile to be 64x64, got %v", tile.Bounds)
		}
	}
}

func TestSplitTiles_TrailingTilesAreClipped(t *testing.T) {
	tiles := SplitTiles(100, 70)
	if len(tiles) != 4 {
		t.Fatalf("expected a 2x2 grid of tiles, got %d", len(tiles))
	}

	var sawClippedWidth, sawClippedHeight bool
	for _, tile := range tiles {
		if tile.Bounds.Max.X == 100 && tile.Bounds.Dx() != 64 {
			sawClippedWidth = true
		}
		if tile.Bounds.Max.Y == 70 && tile.Bounds.Dy() != 64 {
			sawClippedHeight = true
		}
	}
	if !sawClippedWidth {
		t.Error("expected a tile clipped to the image's right edge")
	}
	if !sawClippedHeight {
		t.Error("expected a tile clipped to the image's bottom edge")
	}
}

func TestSplitTiles_CoverEveryPixelExactlyOnce(t *testing.T) {
	width, height := 130, 67
	tiles := SplitTiles(width, height)

	covered := make([][]bool, height)
	for y := range covered {
		covered[y] = make([]bool, width)
	}

	for _, tile := range tiles {
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				if covered[y][x] {
					t.Fatalf("pixel (%d,%d) covered by more than one tile", x, y)
				}
				covered[y][x] = true
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !covered[y][x] {
				t.Fatalf("pixel (%d,%d) not covered by any tile", x, y)
			}
		}
	}
}
