package stream

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animtx/anim"
	"github.com/matt-g-everett/animtx/util"
)

const (
	rampSaturation = 1.0
	baseLuminance  = 0.05
	gainLuminance  = 0.45
)

// A Renderer paints sampled snapshots onto the pixel spans of an ledrx
// strip. Each span takes its colour from the owning object's sampled hue
// property, with an eased brightness falloff toward the span edges.
type Renderer struct {
	numPixels int
	spans     []Span
	luts      [][]float64
	ramp      HueRamp
}

// NewRenderer creates an instance of a Renderer object.
func NewRenderer(numPixels int, spans []Span) *Renderer {
	r := new(Renderer)
	r.numPixels = numPixels
	r.ramp = defaultRamp
	for _, span := range spans {
		if span.Start < 0 || span.End >= numPixels || span.End < span.Start {
			continue
		}
		r.spans = append(r.spans, span)
		r.luts = append(r.luts, util.GenerateLut(span.End-span.Start+1))
	}
	return r
}

// Render paints each configured span from the snapshot. Objects or
// properties missing from the snapshot leave their span dark.
func (r *Renderer) Render(snapshot anim.Snapshot) *Frame {
	f := NewFrame(r.numPixels)
	for i, span := range r.spans {
		values, ok := snapshot[span.ObjectID]
		if !ok {
			continue
		}
		value, ok := values[span.HueProperty]
		if !ok {
			continue
		}
		hue, ok := value.(anim.Scalar)
		if !ok {
			continue
		}

		h := r.ramp.At(util.Wrap(float64(hue), 360) / 360)
		lut := r.luts[i]
		for p := span.Start; p <= span.End; p++ {
			l := baseLuminance + lut[p-span.Start]*gainLuminance
			f.pixels[p] = colorful.Hcl(h, rampSaturation, l)
		}
	}

	return f
}
