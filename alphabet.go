package grid9

// alphabet is the Crockford-style base-32 character set Grid9 codes are
// drawn from: digits then uppercase letters, excluding I, L, O and U to
// avoid confusion with 1, 1, 0 and V. Defined once as package-level,
// read-only data, per spec.md §5.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// decodeTable maps a byte to its alphabet index, or -1 if the byte is not
// a valid Grid9 character. Built once in init, mirroring the teacher's
// package-level ellipsoid/datum tables in latlon-ellipsoidal-datum.go.
var decodeTable [256]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		decodeTable[c] = int8(i)
		if c >= 'A' && c <= 'Z' {
			decodeTable[c-'A'+'a'] = int8(i)
		}
	}
}
