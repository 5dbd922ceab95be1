package replay

import "github.com/younwookim/pirate/internal/infrastructure/config"

// FormatVersion is written into every recording
const FormatVersion = "1.0"

// FrameInput records input state for a single rendered frame
type FrameInput struct {
	F   int     `json:"f"`             // Frame number
	DT  float64 `json:"dt"`            // Frame delta in seconds
	L   bool    `json:"l,omitempty"`   // Left
	R   bool    `json:"r,omitempty"`   // Right
	U   bool    `json:"u,omitempty"`   // Up (jump held)
	D   bool    `json:"d,omitempty"`   // Down
	JP  bool    `json:"jp,omitempty"`  // JumpPressed
	Rep bool    `json:"rep,omitempty"` // Repair held
	MR  bool    `json:"mr,omitempty"`  // MenuReleased
}

// ReplayData contains all data needed to replay a game session.
// Config is the full game config the session ran with, so a replay does not
// depend on the config files present at playback time.
type ReplayData struct {
	Version   string             `json:"version"`
	Seed      int64              `json:"seed"`
	Stage     string             `json:"stage"`
	StartTime string             `json:"startTime"`
	Config    *config.GameConfig `json:"config,omitempty"`
	Frames    []FrameInput       `json:"frames"`
}

// GameConfig returns the recorded config, or a copy of fallback for recordings
// made without one, pinned to the recorded seed
func (d *ReplayData) GameConfig(fallback *config.GameConfig) *config.GameConfig {
	var cfg config.GameConfig
	switch {
	case d.Config != nil:
		cfg = *d.Config
	case fallback != nil:
		cfg = *fallback
	default:
		cfg = *config.Default()
	}
	cfg.Simulation.Seed = d.Seed
	return &cfg
}
