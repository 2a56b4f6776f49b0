package anim

import (
	"errors"
	"fmt"
)

// ErrLocked is returned when a mutating edit targets a locked track.
var ErrLocked = errors.New("track is locked")

// ErrRecordingDisabled is returned by RecordChange when neither
// auto-keyframe nor the record button is enabled.
var ErrRecordingDisabled = errors.New("recording is disabled; enable auto-keyframe or record mode")

// A ShapeMismatchError reports interpolation between values of different
// shapes. Scalars count as a single component.
type ShapeMismatchError struct {
	StartLen int
	EndLen   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("value shape mismatch: start has %d components, end has %d", e.StartLen, e.EndLen)
}

// An UnknownTrackError reports an operation addressed to an object id that
// has no track on the timeline.
type UnknownTrackError struct {
	ObjectID string
}

func (e *UnknownTrackError) Error() string {
	return fmt.Sprintf("no track for object %q", e.ObjectID)
}
