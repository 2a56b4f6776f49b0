package anim

import "sort"

// A Track holds the ordered keyframes for a single animated object.
// Keyframes stay sorted ascending by time after every mutation; keyframes
// sharing a time keep their insertion order. The locked flag is a logical
// edit guard, not a concurrency primitive.
type Track struct {
	ObjectID  string
	Keyframes []Keyframe
	Muted     bool
	Locked    bool
}

// NewTrack creates an instance of a Track object.
func NewTrack(objectID string) *Track {
	t := new(Track)
	t.ObjectID = objectID
	t.Keyframes = make([]Keyframe, 0)
	return t
}

func (t *Track) sortKeyframes() {
	sort.SliceStable(t.Keyframes, func(i, j int) bool {
		return t.Keyframes[i].Time < t.Keyframes[j].Time
	})
}

// AddKeyframe inserts a keyframe, keeping the track sorted by time.
func (t *Track) AddKeyframe(kf Keyframe) error {
	if t.Locked {
		return ErrLocked
	}
	t.Keyframes = append(t.Keyframes, kf)
	t.sortKeyframes()
	return nil
}

// DeleteKeyframe removes every keyframe matching the property path and time.
func (t *Track) DeleteKeyframe(propertyPath string, time float64) error {
	if t.Locked {
		return ErrLocked
	}
	kept := t.Keyframes[:0]
	for _, kf := range t.Keyframes {
		if kf.PropertyPath != propertyPath || kf.Time != time {
			kept = append(kept, kf)
		}
	}
	t.Keyframes = kept
	return nil
}

// MoveKeyframe retimes every keyframe matching the property path and time,
// then re-sorts the track.
func (t *Track) MoveKeyframe(propertyPath string, oldTime, newTime float64) error {
	if t.Locked {
		return ErrLocked
	}
	for i := range t.Keyframes {
		if t.Keyframes[i].PropertyPath == propertyPath && t.Keyframes[i].Time == oldTime {
			t.Keyframes[i].Time = newTime
		}
	}
	t.sortKeyframes()
	return nil
}

// CopyKeyframes returns the keyframes within [start, end], retimed relative
// to start. The track is not modified; copying ignores the lock.
func (t *Track) CopyKeyframes(start, end float64) []Keyframe {
	copied := make([]Keyframe, 0)
	for _, kf := range t.Keyframes {
		if start <= kf.Time && kf.Time <= end {
			kf.Time -= start
			copied = append(copied, kf)
		}
	}
	return copied
}

// PasteKeyframes re-adds the keyframes shifted forward by offset.
func (t *Track) PasteKeyframes(offset float64, keyframes []Keyframe) error {
	if t.Locked {
		return ErrLocked
	}
	for _, kf := range keyframes {
		kf.Time += offset
		if err := t.AddKeyframe(kf); err != nil {
			return err
		}
	}
	return nil
}

// adjacent finds the closest keyframes for the property either side of
// time. before is the latest keyframe at or earlier than time; after is
// the earliest keyframe strictly later.
func (t *Track) adjacent(propertyPath string, time float64) (before, after *Keyframe) {
	for i := range t.Keyframes {
		kf := &t.Keyframes[i]
		if kf.PropertyPath != propertyPath {
			continue
		}
		if kf.Time <= time {
			before = kf
		} else if after == nil {
			after = kf
		}
	}
	return before, after
}

// Sample resolves every property on the track at the given time. A muted
// track samples to an empty map regardless of content or lock state.
// Between two keyframes the interpolation uses the arriving keyframe's
// curve; outside the keyframe range the nearest value is held.
func (t *Track) Sample(time float64) (map[string]Value, error) {
	values := make(map[string]Value)
	if t.Muted {
		return values, nil
	}
	for i := range t.Keyframes {
		path := t.Keyframes[i].PropertyPath
		if _, done := values[path]; done {
			continue
		}
		before, after := t.adjacent(path, time)
		switch {
		case before != nil && after != nil:
			tNorm := 0.0
			if after.Time != before.Time {
				tNorm = (time - before.Time) / (after.Time - before.Time)
			}
			v, err := Interpolate(before.Value, after.Value, tNorm, after.Interpolation)
			if err != nil {
				return nil, err
			}
			values[path] = v
		case before != nil:
			values[path] = before.Value
		case after != nil:
			values[path] = after.Value
		}
	}
	return values, nil
}
