package domain

import "errors"

var (
	ErrStrokeTooShort = errors.New("stroke needs at least two points")
	ErrNotASegment    = errors.New("segment needs exactly two points")
	ErrBadStrokeSize  = errors.New("stroke size must be positive")
)

// Point is a canvas coordinate. Order within a stroke is the path drawn.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Style carries the visual attributes of a stroke.
type Style struct {
	Color string  `json:"color"`
	Size  float64 `json:"size"`
}

// Stroke is one continuous pen-down-to-pen-up drawing motion.
// A finalized stroke is immutable and has at least two points;
// a single point leaves no visible mark and is discarded.
type Stroke struct {
	Color  string  `json:"color"`
	Size   float64 `json:"size"`
	Points []Point `json:"points"`
}

func (s Stroke) Style() Style { return Style{Color: s.Color, Size: s.Size} }

// Validate reports whether the stroke may be broadcast as a full stroke.
func (s Stroke) Validate() error {
	if len(s.Points) < 2 {
		return ErrStrokeTooShort
	}
	if s.Size <= 0 {
		return ErrBadStrokeSize
	}
	return nil
}

// ValidateSegment reports whether the stroke is a valid incremental
// two-point segment.
func (s Stroke) ValidateSegment() error {
	if len(s.Points) != 2 {
		return ErrNotASegment
	}
	if s.Size <= 0 {
		return ErrBadStrokeSize
	}
	return nil
}
