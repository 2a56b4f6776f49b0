package anim

// A Player drives a timeline's playhead by wall-clock deltas. It references
// the timeline without owning it; multiple players may wrap the same
// timeline, but their updates are not coordinated.
type Player struct {
	Timeline  *Timeline
	Playing   bool
	Speed     float64
	Direction float64
}

// NewPlayer creates an instance of a Player object.
func NewPlayer(timeline *Timeline) *Player {
	p := new(Player)
	p.Timeline = timeline
	p.Speed = 1.0
	p.Direction = 1.0
	return p
}

// Play starts playback. Calling Play while already playing re-applies the
// settings without stopping.
func (p *Player) Play(loop bool, speed float64, reverse bool) {
	p.Timeline.Loop = loop
	p.Speed = speed
	p.Direction = 1.0
	if reverse {
		p.Direction = -1.0
	}
	p.Playing = true
}

// Pause halts playback, preserving the playhead position.
func (p *Player) Pause() {
	p.Playing = false
}

// Stop halts playback and rewinds the playhead to zero.
func (p *Player) Stop() {
	p.Playing = false
	p.Timeline.Seek(0)
}

// Update advances playback by deltaTime and samples the timeline. While not
// playing it samples without moving the playhead.
func (p *Player) Update(deltaTime float64) (Snapshot, error) {
	if !p.Playing {
		return p.Timeline.Sample()
	}
	p.Timeline.Advance(deltaTime * p.Speed * p.Direction)
	return p.Timeline.Sample()
}
