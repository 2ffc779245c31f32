package chamfer

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Catalog presets. The masks are immutable and shared safely.
var (
	// CityBlock propagates through orthogonal steps only; a diagonal step
	// costs two orthogonal ones.
	CityBlock = mustMask("City-Block (1,2)", 1, 2)

	// Chessboard gives orthogonal and diagonal steps the same cost.
	Chessboard = mustMask("Chessboard (1,1)", 1, 1)

	// Weights23 uses weights 2 and 3.
	Weights23 = mustMask("Weights (2,3)", 2, 3)

	// Borgefors uses weights 3 and 4, the classic integer approximation of
	// the Euclidean 3x3 mask.
	Borgefors = mustMask("Borgefors (3,4)", 3, 4)

	// QuasiEuclidean uses real weights 1 and sqrt(2).
	QuasiEuclidean = mustMask("Quasi-Euclidean (1,1.41)", 1, math.Sqrt2)

	// ChessKnight adds knight moves with weights 5, 7 and 11.
	ChessKnight = mustMask("Chessknight (5,7,11)", 5, 7, 11)

	// Verwer uses the 5x5 weights 12, 17 and 27.
	Verwer = mustMask("Verwer (12,17,27)", 12, 17, 27)

	// Knight31 extends ChessKnight with the (3,1) shift at weight 16.
	Knight31 = mustMask("Chessknight (5,7,11,16)", 5, 7, 11, 16)
)

type catalogEntry struct {
	name string
	mask *Mask
}

var catalog = []catalogEntry{
	{"city-block", CityBlock},
	{"chessboard", Chessboard},
	{"weights-23", Weights23},
	{"borgefors", Borgefors},
	{"quasi-euclidean", QuasiEuclidean},
	{"chessknight", ChessKnight},
	{"verwer", Verwer},
	{"knight-31", Knight31},
}

// Catalog returns the preset masks in a stable order.
func Catalog() []*Mask {
	masks := make([]*Mask, len(catalog))
	for i, e := range catalog {
		masks[i] = e.mask
	}
	return masks
}

// CatalogNames returns the identifiers accepted by Lookup, in catalog order.
func CatalogNames() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.name
	}
	return names
}

// Lookup returns the preset matching name. Matching ignores case,
// punctuation and spaces, and accepts either the identifier ("borgefors",
// "city-block") or the label ("Borgefors (3,4)").
func Lookup(name string) (*Mask, error) {
	key := foldName(name)
	if key != "" {
		for _, e := range catalog {
			if key == foldName(e.name) || key == foldName(e.mask.label) {
				return e.mask, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMask, name)
}

// foldName case-folds s and drops everything but letters and digits.
func foldName(s string) string {
	s = cases.Fold().String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
