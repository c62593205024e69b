package grid9

// LatLon is a plain (lat, lon) pair in degrees, used by the batch
// operations below.
type LatLon struct {
	Lat, Lon float64
}

// BatchEncode encodes each coordinate in points, in order. It propagates
// the first error encountered, per spec.md §4.8, rather than collecting
// partial results.
func BatchEncode(points []LatLon, humanReadable bool) ([]string, error) {
	codes := make([]string, len(points))
	for i, p := range points {
		code, err := Encode(p.Lat, p.Lon, humanReadable)
		if err != nil {
			return nil, err
		}
		codes[i] = code
	}
	return codes, nil
}

// BatchDecode decodes each code in codes, in order, propagating the
// first error encountered.
func BatchDecode(codes []string) ([]LatLon, error) {
	points := make([]LatLon, len(codes))
	for i, c := range codes {
		lat, lon, err := Decode(c)
		if err != nil {
			return nil, err
		}
		points[i] = LatLon{Lat: lat, Lon: lon}
	}
	return points, nil
}
