package anim

// A Recorder captures live property changes as keyframes. A change is
// recorded when auto-keyframe is on or the record button is enabled.
type Recorder struct {
	AutoKeyframe        bool
	RecordButtonEnabled bool
}

// NewRecorder creates an instance of a Recorder object.
func NewRecorder(autoKeyframe bool) *Recorder {
	r := new(Recorder)
	r.AutoKeyframe = autoKeyframe
	return r
}

// ToggleRecord sets the record button state.
func (r *Recorder) ToggleRecord(on bool) {
	r.RecordButtonEnabled = on
}

// RecordChange captures a property change as a keyframe on the track.
// Locked tracks reject the keyframe the same way direct edits do.
func (r *Recorder) RecordChange(track *Track, propertyPath string, value Value, time float64, interpolation Curve) (Keyframe, error) {
	if !r.AutoKeyframe && !r.RecordButtonEnabled {
		return Keyframe{}, ErrRecordingDisabled
	}
	kf := Keyframe{Time: time, PropertyPath: propertyPath, Value: value, Interpolation: interpolation}
	if err := track.AddKeyframe(kf); err != nil {
		return Keyframe{}, err
	}
	return kf, nil
}
