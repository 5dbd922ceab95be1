package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/pirate/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
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

	return &data, nil
}

// GetInput returns the input and frame delta for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, float64, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:         fi.L,
		Right:        fi.R,
		Up:           fi.U,
		Down:         fi.D,
		JumpPressed:  fi.JP,
		Repair:       fi.Rep,
		MenuReleased: fi.MR,
	}, fi.DT, true
}

// Advancer is anything driven one rendered frame at a time
type Advancer interface {
	Advance(in system.InputState, frameDt float64) error
}

// Run feeds every remaining frame to target and returns the number of frames played
func (r *Replayer) Run(target Advancer) (int, error) {
	played := 0
	for {
		in, dt, ok := r.GetInput()
		if !ok {
			return played, nil
		}
		if err := target.Advance(in, dt); err != nil {
			return played, fmt.Errorf("replay frame %d: %w", r.frame-1, err)
		}
		played++
	}
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Data returns the underlying replay data
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player at dt)
func CreateTestReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Seed:      12345,
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			DT: dt,
		}
	}

	return data
}
