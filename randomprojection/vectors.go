package randomprojection

import (
	"gonum.org/v1/gonum/floats"
)

// l2Normalize scales v to unit Euclidean norm. A zero vector is left as is.
func l2Normalize(v []float64) {
	norm := floats.Norm(v, 2)
	if norm == 0 {
		return
	}
	floats.Scale(1/norm, v)
}
