// Package geometry turns ranged draws into a curve: waypoint skeleton,
// per-strand jitter, Catmull-Rom style smoothing. Integer arithmetic only;
// there is no float anywhere on this path, so output is bit-exact across
// platforms.
package geometry

// Vertex is a 2D point. Coordinates are canvas pixels; the skeleton
// endpoints sit slightly off-canvas, so values range over
// [-edgeOverhang, canvas+edgeOverhang].
type Vertex struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// Skeleton is the shared, unjittered vertex sequence: fixed entry vertex,
// interior waypoints in generation order, fixed exit vertex. Read-only
// after construction; every strand jitters its own copy.
type Skeleton []Vertex

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
