package faceoverlay

import (
	clipper "github.com/ctessum/go.clipper"
	"math"
)

// clipperScale is the fixed point multiplier used to convert display units to
// the integer coordinates the polygon offsetter works in
const clipperScale = 1000

// Point is a location in display units
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis aligned rectangle in display units
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Width of the rectangle
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height of the rectangle
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// TopLeft corner of the rectangle
func (r Rect) TopLeft() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Scale multiplies every edge by the given factor
func (r Rect) Scale(f float64) Rect {
	return Rect{
		Left:   r.Left * f,
		Top:    r.Top * f,
		Right:  r.Right * f,
		Bottom: r.Bottom * f,
	}
}

// Offset translates the rectangle by p
func (r Rect) Offset(p Point) Rect {
	return Rect{
		Left:   r.Left + p.X,
		Top:    r.Top + p.Y,
		Right:  r.Right + p.X,
		Bottom: r.Bottom + p.Y,
	}
}

// Inflate offsets the rectangle outline by distance d with mitered joins,
// growing it for a positive d and shrinking it for a negative d.  Returns
// false if the rectangle collapses under a negative offset.
func (r Rect) Inflate(d float64) (Rect, bool) {

	if d == 0 {
		return r, !r.Empty()
	}

	if d < 0 && (r.Width() <= -2*d || r.Height() <= -2*d) {
		return Rect{}, false
	}

	// the offsetter drops paths without area, a grown point or line is still
	// a rectangle
	if r.Empty() {
		return r.outset(d), d > 0
	}

	path := clipper.Path{
		&clipper.IntPoint{X: toCInt(r.Left), Y: toCInt(r.Top)},
		&clipper.IntPoint{X: toCInt(r.Right), Y: toCInt(r.Top)},
		&clipper.IntPoint{X: toCInt(r.Right), Y: toCInt(r.Bottom)},
		&clipper.IntPoint{X: toCInt(r.Left), Y: toCInt(r.Bottom)},
	}

	// mitered joins keep the corners of the offset rectangle square
	co := clipper.NewClipperOffset()
	co.AddPath(path, clipper.JtMiter, clipper.EtClosedPolygon)

	solution := co.Execute(d * clipperScale)

	if len(solution) == 0 || len(solution[0]) == 0 {
		if d > 0 {
			return r.outset(d), true
		}
		return Rect{}, false
	}

	out := Rect{
		Left:   math.Inf(1),
		Top:    math.Inf(1),
		Right:  math.Inf(-1),
		Bottom: math.Inf(-1),
	}

	for _, sol := range solution {
		for _, pt := range sol {
			x := fromCInt(pt.X)
			y := fromCInt(pt.Y)
			out.Left = math.Min(out.Left, x)
			out.Top = math.Min(out.Top, y)
			out.Right = math.Max(out.Right, x)
			out.Bottom = math.Max(out.Bottom, y)
		}
	}

	return out, !out.Empty()
}

// outset moves every edge outward by d
func (r Rect) outset(d float64) Rect {
	return Rect{Left: r.Left - d, Top: r.Top - d, Right: r.Right + d, Bottom: r.Bottom + d}
}

func toCInt(v float64) clipper.CInt {
	return clipper.CInt(math.Round(v * clipperScale))
}

func fromCInt(v clipper.CInt) float64 {
	return float64(v) / clipperScale
}

// Segment is a straight line between two points
type Segment struct {
	From Point
	To   Point
}

// DashSegments splits the line from p1 to p2 into the "on" segments of the
// given dash pattern.  The pattern alternates on and off lengths starting with
// on.  An empty or all zero pattern returns the whole line.
func DashSegments(p1, p2 Point, pattern []float64) []Segment {
	length := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
	return dashRange(p1, p2, pattern, 0, length)
}

// DashSegmentsIn is DashSegments limited to the part of the line inside
// bounds.  The dash pattern keeps its phase from p1, and only the dashes
// crossing bounds are generated however long the line is.
func DashSegmentsIn(p1, p2 Point, pattern []float64, bounds Rect) []Segment {

	t0, t1, ok := clipLine(p1, p2, bounds)

	if !ok {
		return nil
	}

	length := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)

	return dashRange(p1, p2, pattern, t0*length, t1*length)
}

// clipLine returns the parameter range of the line from p1 to p2 that lies
// within r using Liang-Barsky clipping
func clipLine(p1, p2 Point, r Rect) (float64, float64, bool) {

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{p1.X - r.Left, r.Right - p1.X, p1.Y - r.Top, r.Bottom - p1.Y}

	t0, t1 := 0.0, 1.0

	for i := range p {
		if p[i] == 0 {
			// parallel to this edge and outside it
			if q[i] < 0 {
				return 0, 0, false
			}
			continue
		}

		t := q[i] / p[i]

		if p[i] < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
	}

	if t0 > t1 {
		return 0, 0, false
	}

	return t0, t1, true
}

// dashRange returns the dashes of the line from p1 to p2 that fall between
// the distances start and end along it
func dashRange(p1, p2 Point, pattern []float64, start, end float64) []Segment {

	length := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)

	total := 0.0
	for _, v := range pattern {
		if v > 0 {
			total += v
		}
	}

	if length == 0 {
		return []Segment{{From: p1, To: p2}}
	}

	dx := (p2.X - p1.X) / length
	dy := (p2.Y - p1.Y) / length

	at := func(dist float64) Point {
		return Point{X: p1.X + dx*dist, Y: p1.Y + dy*dist}
	}

	if len(pattern) == 0 || total == 0 {
		return []Segment{{From: at(start), To: at(end)}}
	}

	// the on/off sequence repeats after an even number of pattern entries
	period := total
	if len(pattern)%2 == 1 {
		period *= 2
	}

	pos := math.Floor(start/period) * period
	segs := make([]Segment, 0, int((end-pos)/total)*2+2)
	i := 0

	for pos < end {
		step := pattern[i%len(pattern)]
		if step < 0 {
			step = 0
		}

		next := math.Min(pos+step, length)

		// even entries of the pattern are drawn
		if i%2 == 0 {
			from := math.Max(pos, start)
			to := math.Min(next, end)

			if to > from {
				segs = append(segs, Segment{From: at(from), To: at(to)})
			}
		}

		pos = next
		i++
	}

	return segs
}
