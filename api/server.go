package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/matt-g-everett/animtx/anim"
)

// Api serves playback status over HTTP.
type Api struct {
	player *anim.Player
	log    *zap.Logger
}

// NewApi creates an instance of an Api object.
func NewApi(player *anim.Player, log *zap.Logger) *Api {
	a := new(Api)
	a.player = player
	a.log = log
	return a
}

type status struct {
	Playing  bool    `json:"playing"`
	Time     float64 `json:"time"`
	Duration float64 `json:"duration"`
	Loop     bool    `json:"loop"`
	Speed    float64 `json:"speed"`
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	s := status{
		Playing:  a.player.Playing,
		Time:     a.player.Timeline.CurrentTime,
		Duration: a.player.Timeline.Duration,
		Loop:     a.player.Timeline.Loop,
		Speed:    a.player.Speed,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// Serve exposes playback status on :3000.
func (a *Api) Serve() {
	http.HandleFunc("/status", a.handleStatus)

	a.log.Info("listening", zap.String("addr", ":3000"))
	http.ListenAndServe(":3000", nil)
}
