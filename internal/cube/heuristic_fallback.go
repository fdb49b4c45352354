package cube

// MisplacedFacelets counts facelet positions whose color differs from
// the center of their face, for a canonical state string of dimension
// n. This is the spec's non-admissible fallback heuristic (§4.4): each
// move can touch up to ~3n facelets, so the raw count is not a valid
// lower bound and callers that want an admissible-ish guide should
// divide it by a constant (see solver.Options.FallbackDivisor).
//
// For odd n the center cell is well defined; for even n there is no
// single center cell, so the top-left cell of the middle 2x2 block is
// used as the face's reference color instead.
func MisplacedFacelets(state string, n int) int {
	faceLen := n * n
	centerRow, centerCol := n/2, n/2
	if n%2 == 0 {
		centerRow, centerCol = n/2-1, n/2-1
	}
	centerIdx := centerRow*n + centerCol

	count := 0
	for f := 0; f < 6; f++ {
		base := f * faceLen
		center := state[base+centerIdx]
		for i := 0; i < faceLen; i++ {
			if state[base+i] != center {
				count++
			}
		}
	}
	return count
}
