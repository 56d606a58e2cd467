package tekton

// TileGrid is a fixed-size width x height matrix of Tiles, addressed
// [col][row] (§3, §4.D). A freshly constructed grid has no tiles in it;
// call Fill before reading uncompressed data out of it.
type TileGrid struct {
	width, height int
	cells         [][]*Tile
}

// NewTileGrid allocates an empty width x height grid. Width and height are
// measured in tiles (16 x screens), not screens.
func NewTileGrid(width, height int) *TileGrid {
	cells := make([][]*Tile, width)
	for col := range cells {
		cells[col] = make([]*Tile, height)
	}
	return &TileGrid{width: width, height: height, cells: cells}
}

// Width returns the grid's width in tiles.
func (g *TileGrid) Width() int { return g.width }

// Height returns the grid's height in tiles.
func (g *TileGrid) Height() int { return g.height }

// At returns the tile at (col, row), or nil if that cell has never been
// filled.
func (g *TileGrid) At(col, row int) *Tile {
	return g.cells[col][row]
}

// Set overwrites the tile at (col, row) with a copy of t.
func (g *TileGrid) Set(col, row int, t Tile) {
	tc := t
	g.cells[col][row] = &tc
}

// Fill populates every cell with a copy of fillTile. A nil fillTile fills
// with the default tile (§3: "A Room is created empty (tiles filled with a
// default)").
func (g *TileGrid) Fill(fillTile *Tile) {
	tile := NewTile()
	if fillTile != nil {
		tile = *fillTile
	}
	for col := 0; col < g.width; col++ {
		for row := 0; row < g.height; row++ {
			g.Set(col, row, tile)
		}
	}
}

// Overlay copies every non-empty cell of src onto g, offset by (left, top),
// clipping silently to g's bounds — this is how partial room fragments are
// stamped into larger grids (§4.D).
func (g *TileGrid) Overlay(src *TileGrid, left, top int) {
	for row := 0; row < src.height; row++ {
		for col := 0; col < src.width; col++ {
			dc, dr := col+left, row+top
			if dc < 0 || dr < 0 || dc >= g.width || dr >= g.height {
				continue
			}
			if t := src.At(col, row); t != nil {
				g.Set(dc, dr, *t)
			}
		}
	}
}

// UncompressedData produces the flat byte stream that feeds the compressor:
// every cell's two-byte L1 attribute word in row-major order, followed by
// every cell's one-byte BTS number in the same order (§3, §4.D). Returns
// ErrEmptyCell if any cell has not been filled.
func (g *TileGrid) UncompressedData() ([]byte, error) {
	out := make([]byte, 0, 3*g.width*g.height)

	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			t := g.cells[col][row]
			if t == nil {
				return nil, &EmptyCellError{Col: col, Row: row}
			}
			attrs := t.L1Attributes()
			out = append(out, attrs[0], attrs[1])
		}
	}

	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			out = append(out, g.cells[col][row].BTSNumberByte())
		}
	}

	return out, nil
}

// LoadUncompressedData populates every cell of g from a flat byte stream in
// the same layout UncompressedData produces — the decoder's counterpart to
// §4.D. data must be exactly 3*width*height bytes.
func (g *TileGrid) LoadUncompressedData(data []byte) error {
	want := 3 * g.width * g.height
	if len(data) != want {
		return &FieldError{Msg: "uncompressed tile data has the wrong length"}
	}

	l1 := data[:2*g.width*g.height]
	bts := data[2*g.width*g.height:]

	i := 0
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			word := uint16(l1[i]) | uint16(l1[i+1])<<8
			idx := row*g.width + col
			t := tileFromAttributes(word, bts[idx])
			g.Set(col, row, t)
			i += 2
		}
	}

	return nil
}
