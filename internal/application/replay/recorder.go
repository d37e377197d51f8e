package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/bqdemos/internal/application/system"
	"github.com/younwookim/bqdemos/internal/timing"
)

// ErrNoFrames is returned when saving an empty recording.
var ErrNoFrames = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder. origin is the timestamp the scene
// was built with; seeds are added as they are drawn.
func NewRecorder(game string, origin timing.Timestamp) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Game:      game,
			Origin:    int64(origin.SinceEpoch()),
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordSeed appends a drawn seed. Wire it to the generator's seed hook.
func (r *Recorder) RecordSeed(seed int64) {
	if !r.recording {
		return
	}
	r.data.Seeds = append(r.data.Seeds, seed)
}

// RecordFrame records a single frame's input and timestamp
func (r *Recorder) RecordFrame(now timing.Timestamp, input system.InputState) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, toFrame(r.frame, now, input))
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the replay data recorded so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename(game string) string {
	return fmt.Sprintf("%s_replay_%s.json", game, time.Now().Format("20060102_150405"))
}
