package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/animtx/anim"
	"github.com/matt-g-everett/animtx/api"
	"github.com/matt-g-everett/animtx/stream"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Player   *anim.Player
	Streamer *stream.Streamer
	Log      *zap.Logger
}

func newApp(log *zap.Logger) *app {
	a := new(app)
	a.Log = log
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	a.Log.Info("connected")
	a.Streamer.Subscribe()
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		a.Log.Fatal("mqtt connect failed", zap.Error(token.Error()))
	}
	a.Streamer.Run()
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		a.Log.Fatal("config open failed", zap.Error(err))
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err = decoder.Decode(&a.Config); err != nil {
		a.Log.Fatal("config parse failed", zap.Error(err))
	}
	a.Config.ApplyDefaults()
}

func orDefault(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}

func (a *app) buildTimeline() (*anim.Timeline, error) {
	p := a.Config.Playback
	switch p.Preset {
	case "rotate360":
		return anim.Rotate360Preset(p.ObjectID, orDefault(p.Duration, 2.0)), nil
	case "bounce":
		return anim.BouncePreset(p.ObjectID, orDefault(p.Height, 0.2), orDefault(p.Duration, 1.0)), nil
	case "orbit":
		return anim.OrbitPreset(p.ObjectID, orDefault(p.Radius, 1.0), orDefault(p.Duration, 3.0)), nil
	}
	return nil, fmt.Errorf("unknown preset %q", p.Preset)
}

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	mqtt.ERROR = zap.NewStdLog(log)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp(log)
	a.readConfig(*configPath)
	log.Info("config loaded",
		zap.String("preset", a.Config.Playback.Preset),
		zap.String("object", a.Config.Playback.ObjectID))

	timeline, err := a.buildTimeline()
	if err != nil {
		log.Fatal("timeline build failed", zap.Error(err))
	}
	a.Player = anim.NewPlayer(timeline)
	a.Player.Play(a.Config.Playback.Loop, a.Config.Playback.Speed, false)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("animtx").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	a.Streamer = stream.NewStreamer(a.Config, a.Client, a.Player, log)

	go api.NewApi(a.Player, log).Serve()

	a.run()
}
