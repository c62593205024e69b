/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */
/* 8-neighborhood enumeration                                                                      */
/*                                                                                   MIT Licence  */
/* direction-offset pattern adapted from aoliveti/geohash Neighbor/Neighbors                      */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */

package grid9

// neighborOffsets enumerates the eight (Δrow, Δcol) steps around a cell,
// row-major top-left to bottom-right, per spec.md §4.6.
var neighborOffsets = [8]struct{ dRow, dCol int64 }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1} /*        */, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the codes of the up to eight cells adjacent to code,
// in row-major order, deduplicated. Unlike a fixed-width grid (compare
// aoliveti/geohash's Neighbor, which only ever adds a constant Δlat/Δlon),
// Grid9's column count varies by row, so a neighboring row's column index
// must be re-projected from this row's column count onto its own, per
// spec.md §4.6.
func Neighbors(code string) ([]string, error) {
	idx, err := codeToIndex(code)
	if err != nil {
		return nil, err
	}

	cols := columnsAtLat(idx.row)
	seen := make(map[gridIndex]bool, 8)
	result := make([]string, 0, 8)

	for _, off := range neighborOffsets {
		rowI := int64(idx.row) + off.dRow
		if rowI < 0 || rowI >= nLat {
			continue
		}
		row := uint32(rowI)
		colsAtRow := columnsAtLat(row)

		projected := int64(idx.col) * int64(colsAtRow) / int64(cols)
		col := ((projected + off.dCol) % int64(colsAtRow) + int64(colsAtRow)) % int64(colsAtRow)

		n := gridIndex{row: row, col: uint32(col)}
		if seen[n] {
			continue
		}
		seen[n] = true

		result = append(result, renderCode(pack(n)))
	}

	return result, nil
}
