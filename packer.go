package textatlas

import "github.com/gogpu/textatlas/text"

// packPadding is the gap kept between packed rectangles and page edges.
const packPadding = 1

// RectanglePack is an online rectangle packer. It keeps a current page
// extent and an insertion cursor and, per rectangle, either continues the
// current row/column or opens a new one along the shorter page axis, which
// keeps the packed extent roughly square without backtracking. Each insert
// is O(1).
//
// The zero value is not ready; use NewRectanglePack.
type RectanglePack struct {
	width  int
	height int
	x      int
	y      int
}

// NewRectanglePack returns an empty packer.
func NewRectanglePack() *RectanglePack {
	p := &RectanglePack{}
	p.Reset()
	return p
}

// Width returns the current packed extent's width.
func (p *RectanglePack) Width() int { return p.width }

// Height returns the current packed extent's height.
func (p *RectanglePack) Height() int { return p.height }

// AddRect places a w x h rectangle and returns its top-left insertion
// point. The rectangle is padded by one pixel on each axis; the returned
// point is inside the padded slot.
func (p *RectanglePack) AddRect(w, h int) text.Point {
	w += packPadding
	h += packPadding
	area := (p.width - p.x) * (p.height - p.y)
	if (p.x+w-p.width)*p.y > area || (p.y+h-p.height)*p.x > area {
		if p.width <= p.height {
			p.x = p.width
			p.y = packPadding
			p.width += w
		} else {
			p.x = packPadding
			p.y = p.height
			p.height += h
		}
	}
	point := text.Point{X: float32(p.x), Y: float32(p.y)}
	if p.x+w-p.width < p.y+h-p.height {
		p.x += w
		p.height = max(p.height, p.y+h)
	} else {
		p.y += h
		p.width = max(p.width, p.x+w)
	}
	return point
}

// Reset restores the empty state.
func (p *RectanglePack) Reset() {
	p.width = packPadding
	p.height = packPadding
	p.x = packPadding
	p.y = packPadding
}
