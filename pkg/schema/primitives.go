package schema

import "math"

// Rect is a bounding box in pixel coordinates. Width and height are not
// validated upstream; consumers should check Valid before trusting them.
type Rect struct {
	Top    float32 `json:"top"`
	Left   float32 `json:"left"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Valid reports whether the rectangle has non-negative extent.
func (r Rect) Valid() bool { return r.Width >= 0 && r.Height >= 0 }

// Area returns the rectangle's area, or 0 for invalid extents.
func (r Rect) Area() float32 {
	if !r.Valid() {
		return 0
	}
	return r.Width * r.Height
}

// IoU returns the intersection-over-union of two rectangles in [0, 1].
func (r Rect) IoU(o Rect) float32 {
	x1 := float32(math.Max(float64(r.Left), float64(o.Left)))
	y1 := float32(math.Max(float64(r.Top), float64(o.Top)))
	x2 := float32(math.Min(float64(r.Left+r.Width), float64(o.Left+o.Width)))
	y2 := float32(math.Min(float64(r.Top+r.Height), float64(o.Top+o.Height)))

	intersection := float32(math.Max(0, float64(x2-x1))) * float32(math.Max(0, float64(y2-y1)))

	union := r.Area() + o.Area() - intersection
	if union <= 0 {
		return 0
	}
	return intersection / union
}

// GeoLocation is a geographic position.
type GeoLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	Alt float64 `json:"alt"`
}

// Coordinate is a non-geographic 3-D position.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Point is a 2-D polygon vertex.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is an ordered sequence of vertices. Empty polygons are valid.
type Polygon []Point

// Signature is a numeric signature vector with an explicit declared size.
// A zero-size signature with no storage means "no signature".
type Signature struct {
	Values []float64
	Size   uint
}

// NewSignature builds a signature whose declared size matches its storage.
func NewSignature(values []float64) Signature {
	return Signature{Values: values, Size: uint(len(values))}
}

// Empty reports whether the signature carries no values.
func (s Signature) Empty() bool { return s.Size == 0 && len(s.Values) == 0 }

func (s Signature) validate() error {
	if int(s.Size) != len(s.Values) {
		return ErrLengthMismatch
	}
	return nil
}
