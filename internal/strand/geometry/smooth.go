package geometry

// Segment is one cubic piece: on-path endpoints P1/P2 plus the two control
// points between them. A downstream serializer maps it 1:1 onto a cubic
// path command.
type Segment struct {
	P1 Vertex `json:"p1"`
	C1 Vertex `json:"c1"`
	C2 Vertex `json:"c2"`
	P2 Vertex `json:"p2"`
}

// Curve is an ordered segment list, one segment per consecutive vertex
// pair.
type Curve []Segment

// Smooth builds cubic control points from an ordered vertex sequence using
// a Catmull-Rom style construction: the tangent at each vertex is the
// chord between its neighbors, scaled down by the sharpness divisor
// (higher sharpness = straighter). Fewer than two vertices yields an empty
// curve, which is valid degenerate output, not an error. sharpness must be
// >= 1; the artwork layer validates it before calling.
//
// The on-path endpoints are carried through untouched: the rendered path
// starts and ends exactly on the first and last input vertices.
func Smooth(vertices []Vertex, sharpness int64) Curve {
	if len(vertices) < 2 {
		return nil
	}

	segs := make(Curve, 0, len(vertices)-1)
	for i := 0; i+1 < len(vertices); i++ {
		p1 := vertices[i]
		p2 := vertices[i+1]

		p0 := p1
		if i > 0 {
			p0 = vertices[i-1]
		}
		p3 := p2
		if i+2 < len(vertices) {
			p3 = vertices[i+2]
		}

		c1 := Vertex{
			X: p1.X + roundDiv(p2.X-p0.X, sharpness),
			Y: p1.Y + roundDiv(p2.Y-p0.Y, sharpness),
		}
		c2 := Vertex{
			X: p2.X - roundDiv(p3.X-p1.X, sharpness),
			Y: p2.Y - roundDiv(p3.Y-p1.Y, sharpness),
		}
		segs = append(segs, Segment{P1: p1, C1: c1, C2: c2, P2: p2})
	}
	return segs
}

// roundDiv divides rounding to nearest, ties away from zero. Plain
// truncation would bias every tangent toward zero and visibly skew the
// curves.
func roundDiv(delta, div int64) int64 {
	if delta >= 0 {
		return (delta + div/2) / div
	}
	return (delta - div/2) / div
}
