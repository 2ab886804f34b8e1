package surface

import (
	"github.com/golang/geo/r3"
)

// PlanarPatches returns a surface sample of two square planar point grids
// facing each other across the given separation along the X axis, as if
// sampled from opposite faces of a slab. Normals point outward. Each patch
// is a pointsPerEdge by pointsPerEdge grid spanning side in Y and Z.
// Useful for sampler tests and examples.
func PlanarPatches(side float64, pointsPerEdge int, separation float64) *Sample {
	if pointsPerEdge < 1 {
		pointsPerEdge = 1
	}
	n := pointsPerEdge * pointsPerEdge
	pts := make([]r3.Vector, 0, 2*n)
	norms := make([]r3.Vector, 0, 2*n)

	step := 0.0
	if pointsPerEdge > 1 {
		step = side / float64(pointsPerEdge-1)
	}
	for _, face := range []struct {
		x      float64
		normal r3.Vector
	}{
		{-separation / 2, r3.Vector{X: -1}},
		{separation / 2, r3.Vector{X: 1}},
	} {
		for i := 0; i < pointsPerEdge; i++ {
			for j := 0; j < pointsPerEdge; j++ {
				pts = append(pts, r3.Vector{
					X: face.x,
					Y: -side/2 + float64(i)*step,
					Z: -side/2 + float64(j)*step,
				})
				norms = append(norms, face.normal)
			}
		}
	}
	return &Sample{points: pts, normals: norms}
}
