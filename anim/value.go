package anim

import (
	"github.com/fogleman/ease"

	"github.com/matt-g-everett/animtx/util"
)

// Curve selects the easing applied when interpolating toward a keyframe.
type Curve string

const (
	CurveLinear  Curve = "linear"
	CurveEaseIn  Curve = "ease-in"
	CurveEaseOut Curve = "ease-out"

	// CurveBezier is a symmetric smoothstep standing in for a true
	// control-point bezier curve.
	CurveBezier Curve = "bezier"
)

// A Value is a scalar or vector property value.
type Value interface {
	isValue()
}

// Scalar is a single-component Value.
type Scalar float64

// Vector is a multi-component Value, interpolated element-wise.
type Vector []float64

func (Scalar) isValue() {}
func (Vector) isValue() {}

func smoothstep(t float64) float64 {
	return 3*t*t - 2*t*t*t
}

func applyCurve(t float64, mode Curve) float64 {
	switch mode {
	case CurveEaseIn:
		return ease.InQuad(t)
	case CurveEaseOut:
		return ease.OutQuad(t)
	case CurveBezier:
		return smoothstep(t)
	default:
		return ease.Linear(t)
	}
}

func components(v Value) int {
	if vec, ok := v.(Vector); ok {
		return len(vec)
	}
	return 1
}

// Interpolate blends start and end at progress t using the given curve.
// t is clamped to [0, 1] before the curve is applied. Vectors blend
// element-wise and must have the same length as their counterpart.
func Interpolate(start, end Value, t float64, mode Curve) (Value, error) {
	tc := applyCurve(util.Clamp(t, 0, 1), mode)
	switch s := start.(type) {
	case Scalar:
		e, ok := end.(Scalar)
		if !ok {
			return nil, &ShapeMismatchError{StartLen: 1, EndLen: components(end)}
		}
		return s + (e-s)*Scalar(tc), nil
	case Vector:
		e, ok := end.(Vector)
		if !ok || len(s) != len(e) {
			return nil, &ShapeMismatchError{StartLen: len(s), EndLen: components(end)}
		}
		out := make(Vector, len(s))
		for i := range s {
			out[i] = s[i] + (e[i]-s[i])*tc
		}
		return out, nil
	default:
		return nil, &ShapeMismatchError{StartLen: components(start), EndLen: components(end)}
	}
}
