package anim

import "github.com/matt-g-everett/animtx/util"

// A Snapshot maps object ids to their resolved property values at a single
// point in time.
type Snapshot map[string]map[string]Value

// A Timeline is a collection of tracks sharing one playhead, duration,
// frame rate and loop setting.
type Timeline struct {
	Duration    float64
	FrameRate   int
	Tracks      map[string]*Track
	CurrentTime float64
	Loop        bool
}

// NewTimeline creates an instance of a Timeline object.
func NewTimeline(duration float64, frameRate int) *Timeline {
	tl := new(Timeline)
	tl.Duration = duration
	tl.FrameRate = frameRate
	tl.Tracks = make(map[string]*Track)
	return tl
}

// AddTrack creates an empty track for the object id, replacing any existing
// track with the same id.
func (tl *Timeline) AddTrack(objectID string) *Track {
	track := NewTrack(objectID)
	tl.Tracks[objectID] = track
	return track
}

// RemoveTrack drops the track for the object id if present.
func (tl *Timeline) RemoveTrack(objectID string) {
	delete(tl.Tracks, objectID)
}

// Track returns the track for the object id.
func (tl *Timeline) Track(objectID string) (*Track, error) {
	track, ok := tl.Tracks[objectID]
	if !ok {
		return nil, &UnknownTrackError{ObjectID: objectID}
	}
	return track, nil
}

// Seek moves the playhead to time, clamped to [0, Duration]. Seeking
// ignores the loop setting.
func (tl *Timeline) Seek(time float64) {
	tl.CurrentTime = util.Clamp(time, 0, tl.Duration)
}

// Step advances the playhead by a whole number of frames.
func (tl *Timeline) Step(frames int) {
	tl.Advance(float64(frames) / float64(tl.FrameRate))
}

// Advance moves the playhead by deltaTime. With looping the playhead wraps
// into [0, Duration); without it the playhead clamps to [0, Duration].
func (tl *Timeline) Advance(deltaTime float64) {
	next := tl.CurrentTime + deltaTime
	if tl.Loop {
		if tl.Duration > 0 {
			tl.CurrentTime = util.Wrap(next, tl.Duration)
		} else {
			tl.CurrentTime = 0
		}
	} else {
		tl.CurrentTime = util.Clamp(next, 0, tl.Duration)
	}
}

// Sample resolves every track at the current playhead position.
func (tl *Timeline) Sample() (Snapshot, error) {
	snapshot := make(Snapshot, len(tl.Tracks))
	for objectID, track := range tl.Tracks {
		values, err := track.Sample(tl.CurrentTime)
		if err != nil {
			return nil, err
		}
		snapshot[objectID] = values
	}
	return snapshot, nil
}
