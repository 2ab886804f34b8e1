package surface

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// PCDType is the format of the data section of a PCD file.
type PCDType int

const (
	// PCDAscii is ascii point data.
	PCDAscii PCDType = 0
	// PCDBinary is little-endian float32 point data.
	PCDBinary PCDType = 1
)

const pcdCommentChar = "#"

// A surface sample always needs normals, so only the six-field layout is
// accepted.
const pcdFieldCount = 6

var pcdHeaderFields = []string{"VERSION", "FIELDS", "SIZE", "TYPE", "COUNT", "WIDTH", "HEIGHT", "VIEWPOINT", "POINTS", "DATA"}

type pcdHeader struct {
	size   []uint64
	points uint64
	data   PCDType
}

func parsePCDHeaderLine(line string, index int, header *pcdHeader) error {
	name := pcdHeaderFields[index]
	field, value, _ := strings.Cut(line, " ")
	tokens := strings.Split(value, " ")
	if field != name {
		return errors.Errorf("line is supposed to start with %s but is %s", name, line)
	}

	var err error
	switch name {
	case "VERSION":
		if value != ".7" && value != "0.7" {
			return errors.Errorf("unsupported pcd version %s", value)
		}
	case "FIELDS":
		if value != "x y z normal_x normal_y normal_z" {
			return errors.Errorf("unsupported pcd fields %q: surface samples need points and normals", value)
		}
	case "SIZE":
		if len(tokens) != pcdFieldCount {
			return errors.New("unexpected number of fields in SIZE line")
		}
		header.size = make([]uint64, len(tokens))
		for i, token := range tokens {
			header.size[i], err = strconv.ParseUint(token, 10, 64)
			if err != nil {
				return errors.Errorf("invalid SIZE field %s", token)
			}
		}
	case "TYPE", "COUNT", "WIDTH", "HEIGHT", "VIEWPOINT":
		// Validated structurally by POINTS and the data section.
	case "POINTS":
		header.points, err = strconv.ParseUint(value, 10, 64)
		if err != nil {
			return errors.Errorf("invalid POINTS field %s: %s", value, err)
		}
	case "DATA":
		switch value {
		case "ascii":
			header.data = PCDAscii
		case "binary":
			header.data = PCDBinary
		default:
			return errors.Errorf("unsupported pcd data type %s", value)
		}
	}
	return nil
}

// ReadPCD reads a surface sample from PCD data carrying x y z normal_x
// normal_y normal_z fields, in ascii or binary form. Units are kept as
// stored; no scaling is applied.
func ReadPCD(inRaw io.Reader, logger golog.Logger) (*Sample, error) {
	header := pcdHeader{}
	in := bufio.NewReader(inRaw)
	headerLineCount := 0
	for headerLineCount < len(pcdHeaderFields) {
		line, err := in.ReadString('\n')
		if err != nil {
			return nil, errors.Errorf("error reading header line %d: %s", headerLineCount, err)
		}
		line, _, _ = strings.Cut(line, pcdCommentChar)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := parsePCDHeaderLine(line, headerLineCount, &header); err != nil {
			return nil, err
		}
		headerLineCount++
	}
	logger.Debugw("reading pcd surface sample", "points", header.points, "data", header.data)
	switch header.data {
	case PCDAscii:
		return readPCDAscii(in, header)
	case PCDBinary:
		return readPCDBinary(in, header)
	default:
		return nil, errors.Errorf("unsupported pcd data type %v", header.data)
	}
}

func readPCDAscii(in *bufio.Reader, header pcdHeader) (*Sample, error) {
	pts := make([]r3.Vector, 0, header.points)
	norms := make([]r3.Vector, 0, header.points)
	for i := 0; i < int(header.points); i++ {
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		tokens := strings.Fields(strings.TrimSpace(line))
		if len(tokens) != pcdFieldCount {
			return nil, errors.Errorf("unexpected number of fields in point %d", i)
		}
		fields := make([]float64, pcdFieldCount)
		for j, token := range tokens {
			fields[j], err = strconv.ParseFloat(token, 64)
			if err != nil {
				return nil, errors.Errorf("invalid point %d field %s: %s", i, token, err)
			}
		}
		pts = append(pts, r3.Vector{X: fields[0], Y: fields[1], Z: fields[2]})
		norms = append(norms, r3.Vector{X: fields[3], Y: fields[4], Z: fields[5]})
	}
	return NewSample(pts, norms)
}

func readPCDBinary(in *bufio.Reader, header pcdHeader) (*Sample, error) {
	pts := make([]r3.Vector, 0, header.points)
	norms := make([]r3.Vector, 0, header.points)
	for i := 0; i < int(header.points); i++ {
		fields := make([]float64, pcdFieldCount)
		for j := 0; j < pcdFieldCount; j++ {
			size := 4
			if header.size != nil {
				size = int(header.size[j])
			}
			buf := make([]byte, size)
			if _, err := io.ReadFull(in, buf); err != nil {
				return nil, err
			}
			if size != 4 {
				return nil, errors.Errorf("unsupported pcd field size %d", size)
			}
			fields[j] = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf)))
		}
		pts = append(pts, r3.Vector{X: fields[0], Y: fields[1], Z: fields[2]})
		norms = append(norms, r3.Vector{X: fields[3], Y: fields[4], Z: fields[5]})
	}
	return NewSample(pts, norms)
}

// WritePCD writes the sample as a PCD file with point and normal fields.
// Triangulations are not representable in PCD and are dropped.
func WritePCD(s *Sample, out io.Writer, outputType PCDType) error {
	var dataType string
	switch outputType {
	case PCDAscii:
		dataType = "ascii"
	case PCDBinary:
		dataType = "binary"
	default:
		return errors.Errorf("unsupported pcd data type %v", outputType)
	}
	_, err := fmt.Fprintf(out, "VERSION .7\n"+
		"FIELDS x y z normal_x normal_y normal_z\n"+
		"SIZE 4 4 4 4 4 4\n"+
		"TYPE F F F F F F\n"+
		"COUNT 1 1 1 1 1 1\n"+
		"WIDTH %d\n"+
		"HEIGHT 1\n"+
		"VIEWPOINT 0 0 0 1 0 0 0\n"+
		"POINTS %d\n"+
		"DATA %s\n", s.Len(), s.Len(), dataType)
	if err != nil {
		return err
	}
	for i := 0; i < s.Len(); i++ {
		pt, n := s.Point(i), s.Normal(i)
		switch outputType {
		case PCDBinary:
			buf := make([]byte, 24)
			for j, v := range []float64{pt.X, pt.Y, pt.Z, n.X, n.Y, n.Z} {
				binary.LittleEndian.PutUint32(buf[4*j:], math.Float32bits(float32(v)))
			}
			_, err = out.Write(buf)
		case PCDAscii:
			_, err = fmt.Fprintf(out, "%f %f %f %f %f %f\n", pt.X, pt.Y, pt.Z, n.X, n.Y, n.Z)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
