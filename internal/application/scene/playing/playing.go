// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/younwookim/pirate/internal/application/replay"
	"github.com/younwookim/pirate/internal/application/scene"
	"github.com/younwookim/pirate/internal/application/simulation"
	"github.com/younwookim/pirate/internal/application/state"
	"github.com/younwookim/pirate/internal/application/system"
	"github.com/younwookim/pirate/internal/infrastructure/config"
)

// InputSource yields the input for one rendered frame and the delta to advance by.
// ok is false once the source is exhausted.
type InputSource interface {
	Next(dt float64) (in system.InputState, frameDt float64, ok bool)
}

// KeyboardSource reads the live keyboard and passes the frame delta through
type KeyboardSource struct {
	Input *system.InputSystem
}

func (k KeyboardSource) Next(dt float64) (system.InputState, float64, bool) {
	return k.Input.GetInput(), dt, true
}

// ReplaySource plays back recorded frames with their recorded deltas
type ReplaySource struct {
	Replayer *replay.Replayer
}

func (r ReplaySource) Next(float64) (system.InputState, float64, bool) {
	return r.Replayer.GetInput()
}

// Options configures the scene beyond the loaded config
type Options struct {
	StageName  string
	RecordPath string             // record the first session to this file when set, later ones to numbered siblings
	Replay     *replay.ReplayData // play back instead of reading the keyboard
	Loader     *config.Loader     // watch the loader's directory and reload on change
	Source     InputSource        // overrides the keyboard
	Logger     *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	cfg      *config.GameConfig
	stageCfg *config.StageConfig
	opts     Options
	logger   *log.Logger

	sim      *simulation.Simulation
	source   InputSource
	state    state.GameState
	recorder *replay.Recorder
	recPath  string
	watcher  *config.Watcher
	sessions int

	screenW int
	screenH int
}

// New creates a new Playing scene.
// When opts.Replay is set the recorded config and seed replace cfg.
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, opts Options) (*Playing, error) {
	if cfg == nil || stageCfg == nil {
		return nil, fmt.Errorf("playing: %w", system.ErrConfigMissing)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.StageName == "" {
		opts.StageName = stageCfg.ID
	}

	p := &Playing{
		opts:   opts,
		logger: logger,
		source: opts.Source,
	}

	if opts.Replay != nil {
		cfg = opts.Replay.GameConfig(cfg)
		if p.source == nil {
			p.source = ReplaySource{Replayer: replay.NewReplayer(*opts.Replay)}
		}
		p.opts.RecordPath = ""
		logger.Info("replaying", "frames", len(opts.Replay.Frames), "seed", opts.Replay.Seed, "stage", opts.Replay.Stage)
	}

	if err := p.start(cfg, stageCfg); err != nil {
		return nil, err
	}
	return p, nil
}

// start builds a fresh session from cfg
func (p *Playing) start(cfg *config.GameConfig, stageCfg *config.StageConfig) error {
	if p.opts.Source == nil && p.opts.Replay == nil {
		keys, err := system.ParseKeyBindings(&cfg.Keys)
		if err != nil {
			return fmt.Errorf("playing: %w", err)
		}
		p.source = KeyboardSource{Input: system.NewInputSystem(keys)}
	}

	stage, err := system.LoadStage(stageCfg)
	if err != nil {
		return fmt.Errorf("playing: stage %s: %w", p.opts.StageName, err)
	}
	sim, err := simulation.New(cfg, stage, p.logger.WithPrefix("sim"))
	if err != nil {
		return fmt.Errorf("playing: %w", err)
	}

	p.cfg = cfg
	p.stageCfg = stageCfg
	p.sim = sim
	p.state = state.StatePlaying
	p.screenW = cfg.Display.ScreenWidth
	p.screenH = cfg.Display.ScreenHeight
	p.sessions++

	p.recorder, p.recPath = nil, ""
	if p.opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(sim.Seed(), p.opts.StageName, cfg)
		p.recPath = sessionPath(p.opts.RecordPath, p.sessions)
		p.logger.Info("recording enabled", "path", p.recPath, "seed", sim.Seed())
	}
	return nil
}

// sessionPath keeps path for the first session and numbers the rest:
// voyage.json, voyage-2.json, voyage-3.json
func sessionPath(path string, session int) string {
	if session <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), session, ext)
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.pollReload()

	switch p.state {
	case state.StateReplayEnded:
		return nil, nil
	case state.StateSunk:
		if p.opts.Replay != nil {
			return nil, nil
		}
		in, _, _ := p.source.Next(dt)
		if in.JumpPressed {
			p.restart()
		}
		return nil, nil
	}

	in, frameDt, ok := p.source.Next(dt)
	if !ok {
		p.state = state.StateReplayEnded
		p.logger.Info("replay finished", "points", p.sim.Points(), "health", p.sim.Health().Current)
		return nil, nil
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(in, frameDt)
	}
	if err := p.sim.Advance(in, frameDt); err != nil {
		return nil, err
	}

	switch {
	case p.sim.Sunk():
		p.state = state.StateSunk
		p.saveRecording()
	case p.sim.MenuVisible():
		p.state = state.StateMenu
	default:
		p.state = state.StatePlaying
	}
	return nil, nil // nil = stay on this scene
}

// restart begins a new session on the same config
func (p *Playing) restart() {
	if err := p.start(p.cfg, p.stageCfg); err != nil {
		p.logger.Error("restart failed", "err", err)
		return
	}
	p.logger.Info("new voyage", "seed", p.sim.Seed())
}

// saveRecording saves the current recording once; later frames are not recorded
func (p *Playing) saveRecording() {
	p.save(p.recorder, p.recPath)
}

func (p *Playing) save(rec *replay.Recorder, path string) {
	if rec == nil || !rec.IsRecording() {
		return
	}
	rec.Stop()
	if rec.FrameCount() == 0 {
		return
	}

	if err := rec.Save(path); err != nil {
		p.logger.Error("failed to save recording", "path", path, "err", err)
		return
	}
	p.logger.Info("recording saved", "path", path, "frames", rec.FrameCount())
}

// Reload reads the config and stage again and starts a new session with them.
// On error the running session is kept.
func (p *Playing) Reload() error {
	if p.opts.Loader == nil {
		return errors.New("playing: no config loader")
	}
	if p.opts.Replay != nil {
		return errors.New("playing: cannot reload during a replay")
	}

	cfg, err := p.opts.Loader.LoadAll()
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	stageCfg, err := p.opts.Loader.LoadStage(p.opts.StageName)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}

	prev := *p
	if err := p.start(cfg, stageCfg); err != nil {
		*p = prev
		return fmt.Errorf("reload: %w", err)
	}
	p.save(prev.recorder, prev.recPath)
	return nil
}

func (p *Playing) pollReload() {
	if p.watcher == nil {
		return
	}
	select {
	case name, ok := <-p.watcher.Events:
		if !ok {
			p.watcher = nil
			return
		}
		if err := p.Reload(); err != nil {
			p.logger.Error("config reload failed, keeping current session", "file", name, "err", err)
			return
		}
		p.logger.Info("config reloaded", "file", name, "session", p.sessions)
	case err, ok := <-p.watcher.Errors:
		if ok {
			p.logger.Warn("config watcher", "err", err)
		}
	default:
	}
}

// OnEnter starts watching the config directory when a loader is set
func (p *Playing) OnEnter() {
	if p.opts.Loader == nil || p.opts.Replay != nil || p.watcher != nil {
		return
	}

	base := p.opts.Loader.BasePath()
	dirs := []string{base}
	if info, err := os.Stat(filepath.Join(base, "stages")); err == nil && info.IsDir() {
		dirs = append(dirs, filepath.Join(base, "stages"))
	}

	w, err := config.NewWatcher(dirs...)
	if err != nil {
		p.logger.Warn("hot reload disabled", "dir", base, "err", err)
		return
	}
	p.watcher = w
	p.logger.Debug("watching config", "dirs", dirs)
}

// OnExit saves the recording and stops watching
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.watcher != nil {
		if err := p.watcher.Close(); err != nil {
			p.logger.Warn("closing config watcher", "err", err)
		}
		p.watcher = nil
	}
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// State returns the scene state
func (p *Playing) State() state.GameState { return p.state }

// Simulation returns the running session
func (p *Playing) Simulation() *simulation.Simulation { return p.sim }

// Recorder returns the session recorder, nil when not recording
func (p *Playing) Recorder() *replay.Recorder { return p.recorder }
