package retrieval

import "math"

// normFloor keeps the cosine denominator away from zero for degenerate
// vectors, matching the corpus builder's own scoring.
const normFloor = 1e-10

// Cosine returns the cosine similarity of two equal-length vectors,
// dot(a,b) / (|a|*|b|), in [-1, 1]. Both norms are floored at normFloor so
// an all-zero vector scores ~0 instead of dividing by zero. Callers must
// ensure len(a) == len(b); mismatched rows are skipped upstream.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	na = math.Sqrt(na)
	nb = math.Sqrt(nb)
	if na < normFloor {
		na = normFloor
	}
	if nb < normFloor {
		nb = normFloor
	}
	return dot / (na * nb)
}
