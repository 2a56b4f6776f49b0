package stream

import (
	"encoding/json"
	"fmt"

	"github.com/matt-g-everett/animtx/anim"
)

// A CommandMessage is a JSON control message received on the command topic.
// Type selects the action; the remaining fields apply per type.
type CommandMessage struct {
	Type    string  `json:"type"`
	Loop    bool    `json:"loop"`
	Speed   float64 `json:"speed"`
	Reverse bool    `json:"reverse"`
	Time    float64 `json:"time"`
	Frames  int     `json:"frames"`
	On      bool    `json:"on"`

	ObjectID      string          `json:"objectId"`
	PropertyPath  string          `json:"propertyPath"`
	Value         json.RawMessage `json:"value"`
	Interpolation string          `json:"interpolation"`
}

// AnimValue decodes the message value as a scalar or a vector.
func (m *CommandMessage) AnimValue() (anim.Value, error) {
	var s float64
	if err := json.Unmarshal(m.Value, &s); err == nil {
		return anim.Scalar(s), nil
	}
	var v []float64
	if err := json.Unmarshal(m.Value, &v); err != nil {
		return nil, fmt.Errorf("value must be a number or an array of numbers: %w", err)
	}
	return anim.Vector(v), nil
}

// Curve returns the requested interpolation, defaulting to linear.
func (m *CommandMessage) Curve() anim.Curve {
	if m.Interpolation == "" {
		return anim.CurveLinear
	}
	return anim.Curve(m.Interpolation)
}

// A StateMessage reports the player state alongside a sampled snapshot.
type StateMessage struct {
	Time     float64       `json:"time"`
	Playing  bool          `json:"playing"`
	Snapshot anim.Snapshot `json:"snapshot"`
}
