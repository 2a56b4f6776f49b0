package stream

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/animtx/anim"
)

func TestRendererPaintsSpanFromSampledHue(t *testing.T) {
	spans := []Span{{ObjectID: "ball", Start: 2, End: 5, HueProperty: "color.hue"}}
	renderer := NewRenderer(10, spans)

	snapshot := anim.Snapshot{"ball": {"color.hue": anim.Scalar(180)}}
	f := renderer.Render(snapshot)

	// Pixels outside the span stay dark.
	r, g, b := f.pixels[0].Clamped().RGB255()
	require.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})

	// Pixels inside the span are lit.
	lit := false
	for p := 2; p <= 5; p++ {
		r, g, b := f.pixels[p].Clamped().RGB255()
		if r != 0 || g != 0 || b != 0 {
			lit = true
		}
	}
	require.True(t, lit)
}

func TestRendererSkipsMissingObjectsAndProperties(t *testing.T) {
	spans := []Span{
		{ObjectID: "ghost", Start: 0, End: 3, HueProperty: "color.hue"},
		{ObjectID: "ball", Start: 4, End: 7, HueProperty: "color.hue"},
	}
	renderer := NewRenderer(10, spans)

	snapshot := anim.Snapshot{"ball": {"position.y": anim.Scalar(1)}}
	f := renderer.Render(snapshot)

	for p := 0; p < 10; p++ {
		r, g, b := f.pixels[p].Clamped().RGB255()
		require.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
	}
}

func TestRendererDropsInvalidSpans(t *testing.T) {
	spans := []Span{
		{ObjectID: "a", Start: -1, End: 3},
		{ObjectID: "b", Start: 8, End: 12},
		{ObjectID: "c", Start: 5, End: 2},
		{ObjectID: "d", Start: 0, End: 9, HueProperty: "color.hue"},
	}
	renderer := NewRenderer(10, spans)

	require.Len(t, renderer.spans, 1)
	require.Equal(t, "d", renderer.spans[0].ObjectID)
}
