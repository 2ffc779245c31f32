// Package scan implements the two-pass chamfer propagation shared by every
// numeric realization of the distance transform.
//
// The algorithm is written once over a numeric policy ([Arith]):
//   - [Init] writes 0 to background cells and the unreached sentinel elsewhere
//   - [Forward] relaxes cells in raster order using the causal offsets
//   - [Backward] relaxes cells in reverse raster order using the mirrored offsets
//   - [Normalize] divides foreground cells by the reference weight
//
// Each sweep reads values written earlier in the same sweep, so rows must be
// processed strictly in order. Nothing in this package runs concurrently.
package scan
