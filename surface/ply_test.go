package surface

import (
	"strings"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"
)

const asciiPLY = `ply
format ascii 1.0
element vertex 3
property float x
property float y
property float z
property float nx
property float ny
property float nz
element face 1
property list uchar int vertex_indices
end_header
0 0 0 0 0 1
1 0 0 0 0 1
0 1 0 0 0 1
3 0 1 2
`

func TestReadPLY(t *testing.T) {
	logger := golog.NewTestLogger(t)
	s, err := ReadPLY(strings.NewReader(asciiPLY), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.Len(), test.ShouldEqual, 3)
	test.That(t, s.Point(1).X, test.ShouldAlmostEqual, 1, 1e-6)
	test.That(t, s.Normal(2).Z, test.ShouldAlmostEqual, 1, 1e-6)
	test.That(t, s.Triangles(), test.ShouldResemble, [][3]int{{0, 1, 2}})
}
