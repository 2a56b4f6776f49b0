package stream

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/matt-g-everett/animtx/anim"
)

// Streamer plays a timeline and streams sampled state over MQTT: a JSON
// state message per tick, plus a rendered binary frame for an ledrx device
// when pixel spans are configured. It also listens on the command topic
// for playback and recording control.
type Streamer struct {
	config   Config
	client   mqtt.Client
	player   *anim.Player
	recorder *anim.Recorder
	renderer *Renderer
	log      *zap.Logger
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, player *anim.Player, log *zap.Logger) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.player = player
	s.recorder = anim.NewRecorder(true)
	s.log = log

	if len(config.Render.Spans) > 0 {
		s.renderer = NewRenderer(config.Render.NumPixels, config.Render.Spans)
	}

	return s
}

// Subscribe registers for control messages.
func (s *Streamer) Subscribe() {
	if token := s.client.Subscribe(s.config.Mqtt.Topics.Command, 0, s.handleCommand); token.Wait() && token.Error() != nil {
		s.log.Error("command subscription failed", zap.Error(token.Error()))
	}
}

func (s *Streamer) handleCommand(client mqtt.Client, msg mqtt.Message) {
	var command CommandMessage
	if err := json.Unmarshal(msg.Payload(), &command); err != nil {
		s.log.Warn("bad command payload", zap.Error(err))
		return
	}

	if err := s.apply(command); err != nil {
		s.log.Warn("command rejected", zap.String("type", command.Type), zap.Error(err))
	}
}

func (s *Streamer) apply(command CommandMessage) error {
	switch command.Type {
	case "play":
		speed := command.Speed
		if speed == 0 {
			speed = 1.0
		}
		s.player.Play(command.Loop, speed, command.Reverse)
	case "pause":
		s.player.Pause()
	case "stop":
		s.player.Stop()
	case "seek":
		s.player.Timeline.Seek(command.Time)
	case "step":
		frames := command.Frames
		if frames == 0 {
			frames = 1
		}
		s.player.Timeline.Step(frames)
	case "recordMode":
		s.recorder.ToggleRecord(command.On)
	case "record":
		return s.record(command)
	default:
		return fmt.Errorf("unknown command type %q", command.Type)
	}

	return nil
}

func (s *Streamer) record(command CommandMessage) error {
	track, err := s.player.Timeline.Track(command.ObjectID)
	if err != nil {
		return err
	}
	value, err := command.AnimValue()
	if err != nil {
		return err
	}
	_, err = s.recorder.RecordChange(track, command.PropertyPath, value, command.Time, command.Curve())
	return err
}

// SendState advances the player and publishes the sampled state.
func (s *Streamer) SendState(deltaTime float64) {
	snapshot, err := s.player.Update(deltaTime)
	if err != nil {
		s.log.Error("sample failed", zap.Error(err))
		return
	}

	state := StateMessage{
		Time:     s.player.Timeline.CurrentTime,
		Playing:  s.player.Playing,
		Snapshot: snapshot,
	}
	payload, err := json.Marshal(state)
	if err != nil {
		s.log.Error("state encoding failed", zap.Error(err))
		return
	}
	token := s.client.Publish(s.config.Mqtt.Topics.State, 0, false, payload)
	token.Wait()

	if s.renderer != nil {
		f := s.renderer.Render(snapshot)
		b, _ := f.MarshalBinary()
		token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
		token.Wait()
	}
}

// Run causes the Streamer to publish state continuously at the configured
// frame rate.
func (s *Streamer) Run() {
	interval := time.Duration(float64(time.Second) / s.config.Playback.FrameRate)
	publishTimer := time.NewTicker(interval)
	last := time.Now()
	for {
		now := <-publishTimer.C
		s.SendState(now.Sub(last).Seconds())
		last = now
	}
}
