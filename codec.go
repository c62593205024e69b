package grid9

// codeLen is the length, in characters, of a canonical (undashed) Grid9
// code: nine base-32 digits carrying the 45-bit payload (22 + 23 bits).
const codeLen = 9

// pack folds a grid index into the 45-bit payload described in spec.md
// §3: the row in the high bits, the column in the low bits.
func pack(idx gridIndex) uint64 {
	return uint64(idx.row)<<nLonBits | uint64(idx.col)
}

// unpack splits a 45-bit payload back into its row/column components.
func unpack(payload uint64) gridIndex {
	return gridIndex{
		row: uint32(payload >> nLonBits),
		col: uint32(payload & (1<<nLonBits - 1)),
	}
}

// renderCode emits the nine base-32 digits of payload, most-significant
// digit first, per spec.md §4.2.
func renderCode(payload uint64) string {
	buf := make([]byte, codeLen)
	for k := 0; k < codeLen; k++ {
		shift := uint(5 * (codeLen - 1 - k))
		digit := (payload >> shift) & 0x1f
		buf[k] = alphabet[digit]
	}
	return string(buf)
}

// parseCode validates and decodes a 9-character canonical code into its
// 45-bit payload. It rejects wrong lengths and any byte outside the
// Grid9 alphabet, including I, L, O and U, per spec.md §4.2.
func parseCode(code string) (uint64, error) {
	if len(code) != codeLen {
		return 0, newCodeError(code)
	}

	var payload uint64
	for i := 0; i < codeLen; i++ {
		v := decodeTable[code[i]]
		if v < 0 {
			return 0, newCodeError(code)
		}
		payload = payload<<5 | uint64(v)
	}
	return payload, nil
}

// Encode quantizes (lat, lon) and renders the result as a canonical
// 9-character Grid9 code. If humanReadable is true the result is
// dash-formatted as XXX-XXX-XXX instead. Encode returns InvalidCoordinate
// if lat or lon is out of range, NaN or infinite.
func Encode(lat, lon float64, humanReadable bool) (string, error) {
	idx, err := quantize(lat, lon)
	if err != nil {
		return "", err
	}

	code := renderCode(pack(idx))
	if humanReadable {
		return Format(code)
	}
	return code, nil
}

// codeToIndex normalizes, validates and decodes code into its grid index,
// the common first step of Decode, Neighbors and FindNearby.
func codeToIndex(code string) (gridIndex, error) {
	raw, err := Unformat(code)
	if err != nil {
		return gridIndex{}, err
	}

	payload, err := parseCode(raw)
	if err != nil {
		return gridIndex{}, err
	}

	idx := unpack(payload)
	if idx.row >= nLat || idx.col >= columnsAtLat(idx.row) {
		// The row always fits, but parseCode accepts any 23-bit column,
		// which can exceed the column count of rows away from the equator.
		return gridIndex{}, newCodeError(code)
	}
	return idx, nil
}

// Decode parses a Grid9 code, in either canonical or dash-formatted form,
// and returns the latitude/longitude of the centre of the cell it names.
// It returns InvalidCode if the code is malformed.
func Decode(code string) (lat, lon float64, err error) {
	idx, err := codeToIndex(code)
	if err != nil {
		return 0, 0, err
	}
	lat, lon = dequantize(idx)
	return lat, lon, nil
}
