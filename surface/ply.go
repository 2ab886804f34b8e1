package surface

import (
	"io"

	"github.com/chenzhekl/goply"
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ReadPLY reads a surface sample from PLY data. Vertices must carry x/y/z
// positions and nx/ny/nz normals; face elements, when present, become the
// sample's triangulation.
func ReadPLY(r io.Reader, logger golog.Logger) (*Sample, error) {
	ply := goply.New(r)
	vertices := ply.Elements("vertex")
	if len(vertices) == 0 {
		return nil, errors.New("ply contains no vertices")
	}

	pts := make([]r3.Vector, 0, len(vertices))
	norms := make([]r3.Vector, 0, len(vertices))
	for i, v := range vertices {
		pt, err := vertexVector(v, "x", "y", "z")
		if err != nil {
			return nil, errors.Wrapf(err, "vertex %d", i)
		}
		n, err := vertexVector(v, "nx", "ny", "nz")
		if err != nil {
			return nil, errors.Wrapf(err, "vertex %d: surface samples need normals", i)
		}
		pts = append(pts, pt)
		norms = append(norms, n)
	}

	faces := ply.Elements("face")
	if len(faces) == 0 {
		logger.Debugw("read ply surface sample", "vertices", len(pts))
		return NewSample(pts, norms)
	}

	tris := make([][3]int, 0, len(faces))
	for i, f := range faces {
		indices, ok := f["vertex_indices"]
		if !ok {
			indices, ok = f["vertex_index"]
		}
		if !ok {
			return nil, errors.Errorf("face %d has no vertex indices", i)
		}
		idxList, err := vertexIndices(indices)
		if err != nil {
			return nil, errors.Wrapf(err, "face %d", i)
		}
		if len(idxList) != 3 {
			return nil, errors.Errorf("face %d has %d vertices, only triangles are supported", i, len(idxList))
		}
		tris = append(tris, [3]int{idxList[0], idxList[1], idxList[2]})
	}
	logger.Debugw("read ply surface sample", "vertices", len(pts), "triangles", len(tris))
	return NewSampleWithTriangles(pts, norms, tris)
}

func vertexVector(props map[string]interface{}, xKey, yKey, zKey string) (r3.Vector, error) {
	var out r3.Vector
	for _, p := range []struct {
		key  string
		dest *float64
	}{{xKey, &out.X}, {yKey, &out.Y}, {zKey, &out.Z}} {
		raw, ok := props[p.key]
		if !ok {
			return r3.Vector{}, errors.Errorf("missing property %q", p.key)
		}
		v, err := asFloat(raw)
		if err != nil {
			return r3.Vector{}, errors.Wrapf(err, "property %q", p.key)
		}
		*p.dest = v
	}
	return out, nil
}

func vertexIndices(raw interface{}) ([]int, error) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, errors.Errorf("expected index list, got %T", raw)
	}
	out := make([]int, 0, len(list))
	for _, item := range list {
		v, err := asFloat(item)
		if err != nil {
			return nil, err
		}
		out = append(out, int(v))
	}
	return out, nil
}

func asFloat(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	default:
		return 0, errors.Errorf("unsupported numeric type %T", raw)
	}
}
