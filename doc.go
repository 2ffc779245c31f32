// Package chamfer computes chamfer distance transforms of 2D binary images.
//
// # Overview
//
// For every foreground pixel, a chamfer distance map holds the cost of the
// cheapest path to a background pixel, where a path is a sequence of steps
// taken from a small table of weighted neighbor offsets (a chamfer [Mask]).
// Two raster sweeps propagate the costs: a forward sweep from the top-left
// corner using the causal half of the mask, then a backward sweep from the
// bottom-right corner using its point mirror.
//
// # Quick Start
//
//	img := chamfer.NewBinaryFromImage(src)
//
//	// 16-bit integer distances, divided by the orthogonal weight
//	t := chamfer.NewShortTransform(chamfer.Borgefors)
//	dist := t.DistanceMap(img)
//
//	// Raw float32 path costs
//	raw := chamfer.ComputeDistanceMap[float32](img, chamfer.ChessKnight, false)
//
// # Masks
//
// Masks come in three kinds by number of weights: [KindW2] (orthogonal and
// diagonal steps), [KindW3] (adds knight moves) and [KindW4] (adds the (3,1)
// shift). The catalog provides [CityBlock], [Chessboard], [Weights23],
// [Borgefors], [QuasiEuclidean], [ChessKnight], [Verwer] and [Knight31];
// [New] builds a mask from an explicit weight vector.
//
// # Numeric Realizations
//
// The cell type of a [Transform] selects the arithmetic. Unsigned types
// saturate at their maximum, which is also the value of foreground pixels no
// path reaches. Floating types use +Inf for that. Integer realizations round
// real weights to the nearest integer, so [QuasiEuclidean] degrades to
// [Chessboard] there, and normalization truncates.
//
// Two sweeps give converged distances for the catalog masks. This has been
// checked on reference images; masks with longer offsets are not guaranteed
// to converge in two sweeps.
package chamfer
