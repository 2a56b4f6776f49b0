package stream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/matt-g-everett/animtx/anim"
)

func streamerFixture(t *testing.T) *Streamer {
	t.Helper()
	var config Config
	config.ApplyDefaults()
	player := anim.NewPlayer(anim.BouncePreset("ball", 0.2, 1.0))
	return NewStreamer(config, nil, player, zap.NewNop())
}

func applyJSON(t *testing.T, s *Streamer, payload string) error {
	t.Helper()
	var command CommandMessage
	require.NoError(t, json.Unmarshal([]byte(payload), &command))
	return s.apply(command)
}

func TestApplyPlayPauseStop(t *testing.T) {
	s := streamerFixture(t)

	require.NoError(t, applyJSON(t, s, `{"type":"play","loop":true,"speed":2.0}`))
	require.True(t, s.player.Playing)
	require.True(t, s.player.Timeline.Loop)
	require.InDelta(t, 2.0, s.player.Speed, 1e-9)

	require.NoError(t, applyJSON(t, s, `{"type":"pause"}`))
	require.False(t, s.player.Playing)

	require.NoError(t, applyJSON(t, s, `{"type":"stop"}`))
	require.InDelta(t, 0.0, s.player.Timeline.CurrentTime, 1e-9)
}

func TestApplyPlayDefaultsSpeed(t *testing.T) {
	s := streamerFixture(t)

	require.NoError(t, applyJSON(t, s, `{"type":"play"}`))
	require.InDelta(t, 1.0, s.player.Speed, 1e-9)
}

func TestApplySeekAndStep(t *testing.T) {
	s := streamerFixture(t)

	require.NoError(t, applyJSON(t, s, `{"type":"seek","time":0.5}`))
	require.InDelta(t, 0.5, s.player.Timeline.CurrentTime, 1e-9)

	// A bare step advances one frame at the preset's 60fps.
	require.NoError(t, applyJSON(t, s, `{"type":"step"}`))
	require.InDelta(t, 0.5+1.0/60.0, s.player.Timeline.CurrentTime, 1e-9)
}

func TestApplyRecord(t *testing.T) {
	s := streamerFixture(t)

	require.NoError(t, applyJSON(t, s,
		`{"type":"record","objectId":"ball","propertyPath":"position.x","value":0.7,"time":0.25}`))

	track, err := s.player.Timeline.Track("ball")
	require.NoError(t, err)
	require.Len(t, track.Keyframes, 4)
}

func TestApplyRecordUnknownObject(t *testing.T) {
	s := streamerFixture(t)

	err := applyJSON(t, s,
		`{"type":"record","objectId":"ghost","propertyPath":"position.x","value":0.7,"time":0.25}`)

	var unknownErr *anim.UnknownTrackError
	require.ErrorAs(t, err, &unknownErr)
}

func TestApplyRecordRespectsRecordMode(t *testing.T) {
	s := streamerFixture(t)
	s.recorder.AutoKeyframe = false

	err := applyJSON(t, s,
		`{"type":"record","objectId":"ball","propertyPath":"position.x","value":0.7,"time":0.25}`)
	require.ErrorIs(t, err, anim.ErrRecordingDisabled)

	require.NoError(t, applyJSON(t, s, `{"type":"recordMode","on":true}`))
	require.NoError(t, applyJSON(t, s,
		`{"type":"record","objectId":"ball","propertyPath":"position.x","value":0.7,"time":0.25}`))
}

func TestApplyUnknownCommand(t *testing.T) {
	s := streamerFixture(t)
	require.Error(t, applyJSON(t, s, `{"type":"teleport"}`))
}
