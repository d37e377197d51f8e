package replay

import (
	"github.com/younwookim/bqdemos/internal/application/system"
	"github.com/younwookim/bqdemos/internal/timing"
)

// Version of the replay file format
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int    `json:"f"`            // Frame number
	T  int64  `json:"t"`            // Frame timestamp, ns since the clock epoch
	P  uint32 `json:"p,omitempty"`  // Pressed actions
	D  uint32 `json:"d,omitempty"`  // Held actions
	N  int    `json:"n,omitempty"`  // Digit pressed
	MX int    `json:"mx"`           // MouseX
	MY int    `json:"my"`           // MouseY
	LC bool   `json:"lc,omitempty"` // LeftClick
	RC bool   `json:"rc,omitempty"` // RightClick
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Game      string       `json:"game"`
	Origin    int64        `json:"origin"` // timestamp at which the scene was built
	Seeds     []int64      `json:"seeds"`  // every seed drawn, in order
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func toFrame(frame int, now timing.Timestamp, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		T:  int64(now.SinceEpoch()),
		P:  uint32(in.Pressed),
		D:  uint32(in.Down),
		N:  in.Digit,
		MX: in.MouseX,
		MY: in.MouseY,
		LC: in.LeftClick,
		RC: in.RightClick,
	}
}

func (fi FrameInput) input() system.InputState {
	return system.InputState{
		Pressed:    system.ActionSet(fi.P),
		Down:       system.ActionSet(fi.D),
		Digit:      fi.N,
		MouseX:     fi.MX,
		MouseY:     fi.MY,
		LeftClick:  fi.LC,
		RightClick: fi.RC,
	}
}
