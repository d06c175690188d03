package network

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/orbit-defense/event"
	"github.com/lixenwraith/orbit-defense/game"
	"github.com/lixenwraith/orbit-defense/status"
)

// Frame is one tick of the visual sink as seen by a spectator
type Frame struct {
	Session  string            `msgpack:"session"`
	Tick     uint64            `msgpack:"tick"`
	HUD      status.HUD        `msgpack:"hud"`
	Entities []game.EntityView `msgpack:"entities"`
	Events   []event.GameEvent `msgpack:"events"`
}

// NewFrame captures the current simulation view with the events drained this tick
func NewFrame(sim *game.Simulation, events []event.GameEvent) Frame {
	hud := sim.HUD()
	return Frame{
		Session:  sim.Session(),
		Tick:     hud.Tick,
		HUD:      hud,
		Entities: sim.Entities(),
		Events:   events,
	}
}

// Encode serializes the frame for a binary websocket message
func (f *Frame) Encode() ([]byte, error) {
	return msgpack.Marshal(f)
}

// DecodeFrame is the viewer-side inverse of Encode
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	err := msgpack.Unmarshal(data, &f)
	return f, err
}
