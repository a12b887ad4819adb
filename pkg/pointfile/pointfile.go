package pointfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/derian-c/MATH478-FinalProject/pkg/errors"
	"github.com/derian-c/MATH478-FinalProject/pkg/geom"
)

// MaxPoints caps the vertices a point file may hold. The complete graph has
// n(n-1)/2 edges, all of which are sorted up front.
const MaxPoints = 2000

// Read parses points from r. It does not close r. Input with more than
// MaxPoints points is rejected with INVALID_INPUT.
func Read(r io.Reader) ([]geom.Point, error) {
	var points []geom.Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		p, err := parseLine(text)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "line %d: %q", line, text)
		}
		if len(points) == MaxPoints {
			return nil, errors.New(errors.ErrCodeInvalidInput, "line %d: more than %d points", line, MaxPoints)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "read points")
	}
	return points, nil
}

func parseLine(text string) (geom.Point, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 2 {
		return geom.Point{}, fmt.Errorf("expected x,y, got %d fields", len(fields))
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("y: %w", err)
	}
	p := geom.Point{X: x, Y: y}
	if !p.IsFinite() {
		return geom.Point{}, fmt.Errorf("coordinates must be finite")
	}
	return p, nil
}

// Normalize maps points into pane. The bounding box is moved to the origin
// and scaled by one factor for both axes:
//
//   - both spans non-zero: the axis whose span is relatively larger fills
//     the pane
//   - points on a horizontal line: the x span fills the pane width
//   - points on a vertical line: the y span fills the pane height
//   - all points identical: every point lands on the pane centre
//
// The input slice is not modified.
func Normalize(points []geom.Point, pane geom.Size) []geom.Point {
	if len(points) == 0 {
		return nil
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	spanX, spanY := maxX-minX, maxY-minY

	out := make([]geom.Point, len(points))
	var factor float64
	switch {
	case spanX == 0 && spanY == 0:
		for i := range out {
			out[i] = pane.Center()
		}
		return out
	case spanY == 0:
		factor = pane.W / spanX
	case spanX == 0:
		factor = pane.H / spanY
	case spanX/spanY > pane.W/pane.H:
		factor = pane.W / spanX
	default:
		factor = pane.H / spanY
	}

	for i, p := range points {
		out[i] = geom.Point{X: (p.X - minX) * factor, Y: (p.Y - minY) * factor}
	}
	return out
}

// Load reads the point file at path and normalizes it into pane.
func Load(path string, pane geom.Size) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "point file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open point file %s", path)
	}
	defer f.Close()

	points, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Normalize(points, pane), nil
}

// Write emits points in the format Read accepts.
func Write(w io.Writer, points []geom.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		bw.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
		bw.WriteByte(',')
		bw.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFile writes points to path, creating or truncating it.
func WriteFile(path string, points []geom.Point) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err := Write(f, points); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
