package text

// PathVerb identifies one segment of a glyph outline.
type PathVerb uint8

const (
	// PathMoveTo starts a new contour at one point.
	PathMoveTo PathVerb = iota
	// PathLineTo adds a line segment with one point.
	PathLineTo
	// PathQuadTo adds a quadratic segment with two points.
	PathQuadTo
	// PathCubeTo adds a cubic segment with three points.
	PathCubeTo
	// PathClose closes the current contour, no points.
	PathClose
)

// pointsFor is the number of points each verb consumes.
var pointsFor = [...]int{
	PathMoveTo: 1,
	PathLineTo: 1,
	PathQuadTo: 2,
	PathCubeTo: 3,
	PathClose:  0,
}

// Path is a glyph outline as a verb list with a parallel point stream.
// It records outlines for collaborators (hit testing, path export) without
// interpreting them.
//
// The zero value is an empty path.
type Path struct {
	verbs  []PathVerb
	points []Point
}

// MoveTo starts a new contour.
func (p *Path) MoveTo(pt Point) {
	p.verbs = append(p.verbs, PathMoveTo)
	p.points = append(p.points, pt)
}

// LineTo adds a line segment.
func (p *Path) LineTo(pt Point) {
	p.verbs = append(p.verbs, PathLineTo)
	p.points = append(p.points, pt)
}

// QuadTo adds a quadratic segment through control point c to pt.
func (p *Path) QuadTo(c, pt Point) {
	p.verbs = append(p.verbs, PathQuadTo)
	p.points = append(p.points, c, pt)
}

// CubeTo adds a cubic segment through control points c1, c2 to pt.
func (p *Path) CubeTo(c1, c2, pt Point) {
	p.verbs = append(p.verbs, PathCubeTo)
	p.points = append(p.points, c1, c2, pt)
}

// Close closes the current contour.
func (p *Path) Close() {
	p.verbs = append(p.verbs, PathClose)
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Reset discards all segments, retaining capacity.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
}

// Transform applies the matrix to every point in place.
func (p *Path) Transform(m Matrix) {
	for i := range p.points {
		p.points[i] = m.Apply(p.points[i])
	}
}

// AddPath appends all segments of other.
func (p *Path) AddPath(other *Path) {
	p.verbs = append(p.verbs, other.verbs...)
	p.points = append(p.points, other.points...)
}

// Walk calls fn for each segment with the points it consumes.
func (p *Path) Walk(fn func(verb PathVerb, pts []Point)) {
	i := 0
	for _, v := range p.verbs {
		n := pointsFor[v]
		fn(v, p.points[i:i+n])
		i += n
	}
}

// Bounds returns the control-point bounding box of the path.
func (p *Path) Bounds() Rect {
	if len(p.points) == 0 {
		return Rect{}
	}
	out := Rect{
		MinX: p.points[0].X, MinY: p.points[0].Y,
		MaxX: p.points[0].X, MaxY: p.points[0].Y,
	}
	for _, pt := range p.points[1:] {
		if pt.X < out.MinX {
			out.MinX = pt.X
		}
		if pt.Y < out.MinY {
			out.MinY = pt.Y
		}
		if pt.X > out.MaxX {
			out.MaxX = pt.X
		}
		if pt.Y > out.MaxY {
			out.MaxY = pt.Y
		}
	}
	return out
}
