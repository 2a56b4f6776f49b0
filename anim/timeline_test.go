package anim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddTrackReplacesExisting(t *testing.T) {
	timeline := NewTimeline(2.0, 60)
	first := timeline.AddTrack("cube")
	require.NoError(t, first.AddKeyframe(kf(0.0, "x", 1, CurveLinear)))

	second := timeline.AddTrack("cube")

	require.Len(t, timeline.Tracks, 1)
	require.Same(t, second, timeline.Tracks["cube"])
	require.Empty(t, second.Keyframes)
}

func TestRemoveTrack(t *testing.T) {
	timeline := NewTimeline(2.0, 60)
	timeline.AddTrack("cube")

	timeline.RemoveTrack("cube")
	require.Empty(t, timeline.Tracks)

	// Removing again is a no-op.
	timeline.RemoveTrack("cube")
}

func TestTrackLookupUnknown(t *testing.T) {
	timeline := NewTimeline(2.0, 60)

	_, err := timeline.Track("ghost")

	var unknownErr *UnknownTrackError
	require.ErrorAs(t, err, &unknownErr)
	require.Equal(t, "ghost", unknownErr.ObjectID)
}

func TestSeekClampsAndIgnoresLoop(t *testing.T) {
	timeline := NewTimeline(2.0, 60)
	timeline.Loop = true

	timeline.Seek(5.0)
	require.InDelta(t, 2.0, timeline.CurrentTime, 1e-9)

	timeline.Seek(-1.0)
	require.InDelta(t, 0.0, timeline.CurrentTime, 1e-9)

	timeline.Seek(1.5)
	require.InDelta(t, 1.5, timeline.CurrentTime, 1e-9)
}

func TestStepUsesFrameRate(t *testing.T) {
	timeline := NewTimeline(2.0, 10)

	timeline.Step(5)
	require.InDelta(t, 0.5, timeline.CurrentTime, 1e-9)

	timeline.Step(1)
	require.InDelta(t, 0.6, timeline.CurrentTime, 1e-9)
}

func TestAdvanceLoopWraps(t *testing.T) {
	timeline := NewTimeline(2.0, 60)
	timeline.Loop = true

	timeline.Advance(5.0)
	require.InDelta(t, 1.0, timeline.CurrentTime, 1e-9)
}

func TestAdvanceLoopWrapsNegativeDelta(t *testing.T) {
	timeline := NewTimeline(2.0, 60)
	timeline.Loop = true
	timeline.CurrentTime = 0.2

	timeline.Advance(-0.5)
	require.InDelta(t, 1.7, timeline.CurrentTime, 1e-9)
}

func TestAdvanceLoopZeroDuration(t *testing.T) {
	timeline := NewTimeline(0.0, 60)
	timeline.Loop = true

	timeline.Advance(5.0)
	require.InDelta(t, 0.0, timeline.CurrentTime, 1e-9)
}

func TestAdvanceClampsWithoutLoop(t *testing.T) {
	timeline := NewTimeline(2.0, 60)
	timeline.CurrentTime = 0.7

	timeline.Advance(10.0)
	require.InDelta(t, 2.0, timeline.CurrentTime, 1e-9)

	timeline.Advance(-10.0)
	require.InDelta(t, 0.0, timeline.CurrentTime, 1e-9)
}

func TestTimelineSampleDelegatesToTracks(t *testing.T) {
	timeline := NewTimeline(2.0, 60)
	cube := timeline.AddTrack("cube")
	require.NoError(t, cube.AddKeyframe(kf(0.0, "x", 0, CurveLinear)))
	require.NoError(t, cube.AddKeyframe(kf(2.0, "x", 10, CurveLinear)))
	light := timeline.AddTrack("light")
	require.NoError(t, light.AddKeyframe(kf(0.0, "intensity", 3, CurveLinear)))
	light.Muted = true

	timeline.Seek(1.0)
	snapshot, err := timeline.Sample()
	require.NoError(t, err)

	require.Len(t, snapshot, 2)
	require.InDelta(t, 5.0, float64(snapshot["cube"]["x"].(Scalar)), 1e-9)
	require.Empty(t, snapshot["light"])
}
