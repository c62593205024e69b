/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */
/* Bounded-radius spatial search                                                                   */
/*                                                                                   MIT Licence  */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -  */

package grid9

import "math"

// yStep is the physical row spacing of the grid, in metres: a constant
// independent of latitude since rows are evenly spaced in degrees.
const yStep = deltaLat * toRadians * earthRadius

// FindNearby scans the grid for codes whose cell centre lies within
// radiusM metres of (lat, lon), per spec.md §4.7. Results are emitted in
// row-major, west-to-east scan order, not sorted by distance. maxResults
// <= 0 means unlimited. FindNearby returns InvalidCoordinate if (lat, lon)
// is out of range, or InvalidArgument if radiusM is negative, NaN or
// infinite.
func FindNearby(lat, lon, radiusM float64, maxResults int) ([]string, error) {
	if math.IsNaN(radiusM) || math.IsInf(radiusM, 0) || radiusM < 0 {
		return nil, newArgumentError("radius")
	}

	idx0, err := quantize(lat, lon)
	if err != nil {
		return nil, wrapArgument(err, "center coordinate")
	}
	cols0 := columnsAtLat(idx0.row)

	deltaI := int64(math.Ceil(radiusM / yStep))
	if deltaI < 0 {
		deltaI = 0
	}

	var results []string
	unlimited := maxResults <= 0

	rowLo := int64(idx0.row) - deltaI
	rowHi := int64(idx0.row) + deltaI
	if rowLo < 0 {
		rowLo = 0
	}
	if rowHi >= nLat {
		rowHi = nLat - 1
	}

	for rowI := rowLo; rowI <= rowHi; rowI++ {
		row := uint32(rowI)
		colsI := columnsAtLat(row)
		latI := rowCenterLat(row)

		xStepI := (360.0 / float64(colsI) * toRadians) * earthRadius
		physicalWidth := xStepI * math.Cos(latI*toRadians)
		if physicalWidth <= 0 {
			physicalWidth = xStepI // pole row: cos(φ) ≈ 0, fall back to the unscaled step
		}
		deltaJ := int64(math.Ceil(radiusM / physicalWidth))
		if deltaJ < 0 {
			deltaJ = 0
		}
		if uint64(deltaJ) > uint64(colsI) {
			deltaJ = int64(colsI)
		}

		col0I := int64(idx0.col) * int64(colsI) / int64(cols0)

		for dj := -deltaJ; dj <= deltaJ; dj++ {
			col := ((col0I+dj)%int64(colsI) + int64(colsI)) % int64(colsI)
			cell := gridIndex{row: row, col: uint32(col)}

			cellLat, cellLon := dequantize(cell)
			if haversine(lat, lon, cellLat, cellLon) > radiusM {
				continue
			}

			results = append(results, renderCode(pack(cell)))
			if !unlimited && len(results) >= maxResults {
				return results, nil
			}
		}
	}

	return results, nil
}
