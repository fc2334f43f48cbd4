// Package geometry turns OCR word polygons into normalized bounding boxes and
// reading angles. Everything here is pure math over immutable inputs.
package geometry

import "math"

// Vertex is a point in source-image pixel space.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Quad is a word's four-vertex polygon as reported by OCR. Vertex 0 is the
// reading-start corner and vertex 1 the reading-direction corner, so v1-v0 is
// the word's baseline vector.
type Quad [4]Vertex

// BoundingBox is an axis-aligned box normalized to [0,1] relative to the
// source image, plus the dominant reading angle of the words inside it.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Angle  int     `json:"angle"`
}

// Angle computes the dominant reading angle of a set of word polygons by
// summing their baseline vectors. Returns 0 for an empty set or a zero sum;
// otherwise the baseline direction rounded to the nearest multiple of 90,
// normalized into (-180, 180].
func Angle(quads []Quad) int {
	var dx, dy float64
	for _, q := range quads {
		dx += q[1].X - q[0].X
		dy += q[1].Y - q[0].Y
	}
	if dx == 0 && dy == 0 {
		return 0
	}

	deg := math.Atan2(dy, dx) * 180 / math.Pi
	rounded := int(math.Round(deg/90)) * 90
	if rounded <= -180 {
		rounded += 360
	}
	if rounded > 180 {
		rounded -= 360
	}
	return rounded
}

// BoundingBoxOf returns the normalized axis-aligned bounds of all vertices in
// quads. Returns nil when quads is empty or either image dimension is zero,
// which downstream treats as "no visual citation available".
func BoundingBoxOf(quads []Quad, imageWidth, imageHeight int) *BoundingBox {
	if len(quads) == 0 || imageWidth == 0 || imageHeight == 0 {
		return nil
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, q := range quads {
		for _, v := range q {
			minX = math.Min(minX, v.X)
			minY = math.Min(minY, v.Y)
			maxX = math.Max(maxX, v.X)
			maxY = math.Max(maxY, v.Y)
		}
	}

	w := float64(imageWidth)
	h := float64(imageHeight)
	return &BoundingBox{
		X:      minX / w,
		Y:      minY / h,
		Width:  (maxX - minX) / w,
		Height: (maxY - minY) / h,
		Angle:  Angle(quads),
	}
}
