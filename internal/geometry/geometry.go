package geometry

// Axis identifies the scroll direction of a windowed container.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// String returns the axis name
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Size represents the dimensions of a region
type Size struct {
	Width  float64
	Height float64
}

// Extent returns the size along the given axis
func (s Size) Extent(a Axis) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// WithExtent returns a copy with the extent along the given axis replaced
func (s Size) WithExtent(a Axis, v float64) Size {
	if a == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// Rect is an axis-aligned rectangle in content coordinates
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Min returns the leading edge along the given axis
func (r Rect) Min(a Axis) float64 {
	if a == Horizontal {
		return r.X
	}
	return r.Y
}

// Max returns the trailing edge along the given axis
func (r Rect) Max(a Axis) float64 {
	if a == Horizontal {
		return r.X + r.Width
	}
	return r.Y + r.Height
}

// Extent returns the rectangle's size along the given axis
func (r Rect) Extent(a Axis) float64 {
	if a == Horizontal {
		return r.Width
	}
	return r.Height
}

// Size returns the rectangle's dimensions
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// WithMin returns a copy with the leading edge along the axis moved to v,
// preserving the extent
func (r Rect) WithMin(a Axis, v float64) Rect {
	if a == Horizontal {
		r.X = v
	} else {
		r.Y = v
	}
	return r
}

// Translate returns a copy shifted by delta along the given axis
func (r Rect) Translate(a Axis, delta float64) Rect {
	if a == Horizontal {
		r.X += delta
	} else {
		r.Y += delta
	}
	return r
}

// IntersectsAlong reports whether the two rectangles overlap along the given
// axis. Touching edges do not count as overlap.
func (r Rect) IntersectsAlong(a Axis, other Rect) bool {
	return r.Max(a) > other.Min(a) && r.Min(a) < other.Max(a)
}
