package text

import (
	"github.com/chewxy/math32"
)

// Point represents a 2D point for glyph positioning.
type Point struct {
	X, Y float32
}

// Rect represents a rectangle in glyph or page pixel space.
// Min is the top-left corner, Max the bottom-right corner (y grows down).
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// MakeXYWH returns a rectangle from its origin and size.
func MakeXYWH(x, y, w, h float32) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// X returns the left edge of the rectangle.
func (r Rect) X() float32 { return r.MinX }

// Y returns the top edge of the rectangle.
func (r Rect) Y() float32 { return r.MinY }

// Width returns the width of the rectangle.
func (r Rect) Width() float32 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Scale returns the rectangle with both corners multiplied by (sx, sy).
func (r Rect) Scale(sx, sy float32) Rect {
	return Rect{
		MinX: r.MinX * sx,
		MinY: r.MinY * sy,
		MaxX: r.MaxX * sx,
		MaxY: r.MaxY * sy,
	}
}

// Outset returns the rectangle grown by (dx, dy) on each side.
func (r Rect) Outset(dx, dy float32) Rect {
	return Rect{
		MinX: r.MinX - dx,
		MinY: r.MinY - dy,
		MaxX: r.MaxX + dx,
		MaxY: r.MaxY + dy,
	}
}

// Union returns the smallest rectangle containing both r and other.
// An empty rectangle does not contribute.
func (r Rect) Union(other Rect) Rect {
	if other.Empty() {
		return r
	}
	if r.Empty() {
		return other
	}
	return Rect{
		MinX: math32.Min(r.MinX, other.MinX),
		MinY: math32.Min(r.MinY, other.MinY),
		MaxX: math32.Max(r.MaxX, other.MaxX),
		MaxY: math32.Max(r.MaxY, other.MaxY),
	}
}

// Matrix is a 2D affine transformation:
//
//	x' = A*x + B*y + Tx
//	y' = C*x + D*y + Ty
type Matrix struct {
	A, B, C, D float32
	Tx, Ty     float32
}

// IdentityMatrix returns the identity transformation.
func IdentityMatrix() Matrix {
	return Matrix{A: 1, D: 1}
}

// TranslateMatrix returns a pure translation.
func TranslateMatrix(tx, ty float32) Matrix {
	return Matrix{A: 1, D: 1, Tx: tx, Ty: ty}
}

// ScaleMatrix returns a pure scale about the origin.
func ScaleMatrix(sx, sy float32) Matrix {
	return Matrix{A: sx, D: sy}
}

// RotateMatrix returns a rotation by the given angle in degrees.
func RotateMatrix(degrees float32) Matrix {
	rad := degrees * (math32.Pi / 180)
	sin := math32.Sin(rad)
	cos := math32.Cos(rad)
	return Matrix{A: cos, B: -sin, C: sin, D: cos}
}

// Multiply returns m * other, the transform that applies other first and
// then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A:  m.A*other.A + m.B*other.C,
		B:  m.A*other.B + m.B*other.D,
		C:  m.C*other.A + m.D*other.C,
		D:  m.C*other.B + m.D*other.D,
		Tx: m.A*other.Tx + m.B*other.Ty + m.Tx,
		Ty: m.C*other.Tx + m.D*other.Ty + m.Ty,
	}
}

// PostConcat returns the matrix that applies m first and then other.
func (m Matrix) PostConcat(other Matrix) Matrix {
	return other.Multiply(m)
}

// PostTranslate returns the matrix followed by a translation.
func (m Matrix) PostTranslate(tx, ty float32) Matrix {
	m.Tx += tx
	m.Ty += ty
	return m
}

// PostScale returns the matrix followed by a scale about the origin.
func (m Matrix) PostScale(sx, sy float32) Matrix {
	return ScaleMatrix(sx, sy).Multiply(m)
}

// Apply transforms a point.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.Tx,
		Y: m.C*p.X + m.D*p.Y + m.Ty,
	}
}

// MapRect returns the axis-aligned bounding box of the transformed corners
// of r.
func (m Matrix) MapRect(r Rect) Rect {
	corners := [4]Point{
		{r.MinX, r.MinY},
		{r.MaxX, r.MinY},
		{r.MaxX, r.MaxY},
		{r.MinX, r.MaxY},
	}
	p := m.Apply(corners[0])
	out := Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
	for _, c := range corners[1:] {
		p = m.Apply(c)
		out.MinX = math32.Min(out.MinX, p.X)
		out.MinY = math32.Min(out.MinY, p.Y)
		out.MaxX = math32.Max(out.MaxX, p.X)
		out.MaxY = math32.Max(out.MaxY, p.Y)
	}
	return out
}

// Invertible reports whether the matrix has an inverse.
func (m Matrix) Invertible() bool {
	det := m.A*m.D - m.B*m.C
	return det != 0 && !math32.IsNaN(det) && !math32.IsInf(det, 0)
}

// Invert returns the inverse transformation. The second result is false if
// the matrix is singular, in which case the identity is returned.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 || math32.IsNaN(det) || math32.IsInf(det, 0) {
		return IdentityMatrix(), false
	}
	inv := 1 / det
	return Matrix{
		A:  m.D * inv,
		B:  -m.B * inv,
		C:  -m.C * inv,
		D:  m.A * inv,
		Tx: (m.B*m.Ty - m.D*m.Tx) * inv,
		Ty: (m.C*m.Tx - m.A*m.Ty) * inv,
	}, true
}
