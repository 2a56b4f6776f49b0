package anim

// A Keyframe is a timestamped value assignment for one property path, with
// a curve mode describing how it blends with its neighbour.
type Keyframe struct {
	Time          float64
	PropertyPath  string
	Value         Value
	Interpolation Curve
}
