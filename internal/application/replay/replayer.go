package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/bqdemos/internal/application/system"
	"github.com/younwookim/bqdemos/internal/timing"
)

// Replayer handles input playback from recorded data.
//
// It is both the input source and the clock of a replayed run: Now returns
// the timestamp of the frame GetInput will return next, so a game loop that
// samples the clock before updating sees the recorded timeline.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if len(data.Frames) == 0 {
		return nil, fmt.Errorf("replay %s: %w", filename, ErrNoFrames)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances.
// After the last frame it returns an idle input.
func (r *Replayer) GetInput() system.InputState {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.input()
}

// Now returns the recorded timestamp of the next frame, or of the last
// frame once the recording is exhausted.
func (r *Replayer) Now() timing.Timestamp {
	if len(r.data.Frames) == 0 {
		return r.Origin()
	}
	i := r.frame
	if i >= len(r.data.Frames) {
		i = len(r.data.Frames) - 1
	}
	return timing.At(time.Duration(r.data.Frames[i].T))
}

// Origin returns the timestamp the recorded scene was built with
func (r *Replayer) Origin() timing.Timestamp {
	return timing.At(time.Duration(r.data.Origin))
}

// Done reports whether every frame was played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seeds returns the recorded seeds in draw order
func (r *Replayer) Seeds() []int64 {
	return r.data.Seeds
}

// Game returns the name of the recorded game
func (r *Replayer) Game() string {
	return r.data.Game
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: idle frames 16ms apart
func CreateTestReplayData(frames int, mouseX, mouseY int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Game:      "test",
		Seeds:     []int64{12345},
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			T:  int64(time.Duration(i+1) * 16 * time.Millisecond),
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}
