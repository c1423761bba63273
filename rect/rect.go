// Package rect provides a minimal rectangle factory with a live area
// accessor: Area is recomputed from the current Width and Height on every
// call, never cached, so external mutation of the fields between calls is
// reflected in the next result.
package rect

// Rect is a rectangle with freely mutable dimensions.
type Rect struct {
	Width  float64
	Height float64
}

// New returns a Rect with the given dimensions.
func New(width, height float64) *Rect {
	return &Rect{Width: width, Height: height}
}

// Area returns Width × Height, recomputed on each call.
func (r *Rect) Area() float64 {
	return r.Width * r.Height
}
