package sbox

// Named affine matrices. K44 and its siblings come from the affine-matrix
// exploration literature; K44 is the strongest performer of that family
// (NL=112, SAC~0.50073, LAP=0.0625, DAP=0.015625). The AES matrix is the
// Rijndael original, kept for comparison baselines.
var (
	// MatrixK44 rows: 0x57 0xAB 0xD5 0xEA 0x75 0xBA 0x5D 0xAE.
	MatrixK44 = Matrix{0x57, 0xAB, 0xD5, 0xEA, 0x75, 0xBA, 0x5D, 0xAE}

	// MatrixK43 swaps the first and third K44 rows.
	MatrixK43 = Matrix{0xD5, 0xAB, 0x57, 0xEA, 0x75, 0xBA, 0x5D, 0xAE}

	// MatrixK45 swaps the middle K44 row pair.
	MatrixK45 = Matrix{0x57, 0xAB, 0xD5, 0xEA, 0xBA, 0x75, 0x5D, 0xAE}

	// MatrixAES is the standard Rijndael affine matrix.
	MatrixAES = Matrix{0xF1, 0xE3, 0xC7, 0x8F, 0x1F, 0x3E, 0x7C, 0xF8}

	// MatrixIdentity passes the inverse through untouched; useful for
	// exercising the pipeline with a known-weak candidate.
	MatrixIdentity = Matrix{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80}

	// MatrixK44Rotated cycles the K44 rows down by one.
	MatrixK44Rotated = Matrix{0xAE, 0x57, 0xAB, 0xD5, 0xEA, 0x75, 0xBA, 0x5D}
)

// NamedMatrix pairs a catalog key with a display name and the matrix value.
type NamedMatrix struct {
	Key         string
	Description string
	Matrix      Matrix
}

// catalog lists every built-in matrix in display order.
var catalog = []NamedMatrix{
	{"k44", "K44 matrix (exploration best)", MatrixK44},
	{"k43", "K43 matrix", MatrixK43},
	{"k45", "K45 matrix", MatrixK45},
	{"aes", "AES Rijndael matrix", MatrixAES},
	{"identity", "Identity matrix (test)", MatrixIdentity},
	{"k44-rotated", "K44 rotated (test)", MatrixK44Rotated},
}

// byValue indexes the catalog by canonical matrix value so that a
// caller-supplied matrix can be recognized with a single lookup instead of a
// scan over the named constants.
var (
	byKey   = make(map[string]NamedMatrix, len(catalog))
	byValue = make(map[Matrix]NamedMatrix, len(catalog))
)

func init() {
	for _, nm := range catalog {
		byKey[nm.Key] = nm
		byValue[nm.Matrix] = nm
	}
}

// Matrices returns the built-in catalog in display order.
func Matrices() []NamedMatrix {
	out := make([]NamedMatrix, len(catalog))
	copy(out, catalog)
	return out
}

// MatrixByName resolves a catalog key like "k44" or "aes".
func MatrixByName(key string) (NamedMatrix, bool) {
	nm, ok := byKey[key]
	return nm, ok
}

// LookupMatrix identifies a matrix by value. Unknown matrices report
// ok=false; callers label those as custom rather than guessing.
func LookupMatrix(m Matrix) (NamedMatrix, bool) {
	nm, ok := byValue[m]
	return nm, ok
}
