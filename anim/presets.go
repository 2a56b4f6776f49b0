package anim

const presetFrameRate = 60

// Rotate360Preset builds a looping timeline spinning the object through a
// full turn on rotation.y.
func Rotate360Preset(objectID string, duration float64) *Timeline {
	timeline := NewTimeline(duration, presetFrameRate)
	timeline.Loop = true
	track := timeline.AddTrack(objectID)
	track.AddKeyframe(Keyframe{Time: 0, PropertyPath: "rotation.y", Value: Scalar(0), Interpolation: CurveLinear})
	track.AddKeyframe(Keyframe{Time: duration, PropertyPath: "rotation.y", Value: Scalar(360), Interpolation: CurveLinear})
	return timeline
}

// BouncePreset builds a looping timeline bouncing the object on position.y,
// easing in on the way up and out at the top.
func BouncePreset(objectID string, height, duration float64) *Timeline {
	timeline := NewTimeline(duration, presetFrameRate)
	timeline.Loop = true
	track := timeline.AddTrack(objectID)
	track.AddKeyframe(Keyframe{Time: 0, PropertyPath: "position.y", Value: Scalar(0), Interpolation: CurveEaseIn})
	track.AddKeyframe(Keyframe{Time: duration * 0.5, PropertyPath: "position.y", Value: Scalar(height), Interpolation: CurveEaseOut})
	track.AddKeyframe(Keyframe{Time: duration, PropertyPath: "position.y", Value: Scalar(0), Interpolation: CurveEaseIn})
	return timeline
}

// OrbitPreset builds a looping timeline circling the object around the
// origin, alternating keys on position.x and position.z.
func OrbitPreset(objectID string, radius, duration float64) *Timeline {
	timeline := NewTimeline(duration, presetFrameRate)
	timeline.Loop = true
	track := timeline.AddTrack(objectID)
	track.AddKeyframe(Keyframe{Time: 0, PropertyPath: "position.x", Value: Scalar(radius), Interpolation: CurveLinear})
	track.AddKeyframe(Keyframe{Time: duration * 0.25, PropertyPath: "position.z", Value: Scalar(radius), Interpolation: CurveLinear})
	track.AddKeyframe(Keyframe{Time: duration * 0.5, PropertyPath: "position.x", Value: Scalar(-radius), Interpolation: CurveLinear})
	track.AddKeyframe(Keyframe{Time: duration * 0.75, PropertyPath: "position.z", Value: Scalar(-radius), Interpolation: CurveLinear})
	track.AddKeyframe(Keyframe{Time: duration, PropertyPath: "position.x", Value: Scalar(radius), Interpolation: CurveLinear})
	return timeline
}
