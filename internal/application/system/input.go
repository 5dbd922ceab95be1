package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/pirate/internal/domain/entity"
	"github.com/younwookim/pirate/internal/infrastructure/config"
)

// KeyBindings maps logical actions to keys. Up doubles as jump.
type KeyBindings struct {
	Up     ebiten.Key
	Left   ebiten.Key
	Down   ebiten.Key
	Right  ebiten.Key
	Repair ebiten.Key
	Menu   ebiten.Key
}

// ParseKeyBindings resolves key names such as "W", "ArrowUp" or "Space"
func ParseKeyBindings(cfg *config.KeysConfig) (KeyBindings, error) {
	var kb KeyBindings
	bindings := []struct {
		action string
		name   string
		key    *ebiten.Key
	}{
		{"up", cfg.Up, &kb.Up},
		{"left", cfg.Left, &kb.Left},
		{"down", cfg.Down, &kb.Down},
		{"right", cfg.Right, &kb.Right},
		{"repair", cfg.Repair, &kb.Repair},
		{"menu", cfg.Menu, &kb.Menu},
	}
	for _, b := range bindings {
		if err := b.key.UnmarshalText([]byte(b.name)); err != nil {
			return KeyBindings{}, fmt.Errorf("key %s: %w", b.action, err)
		}
	}
	return kb, nil
}

// InputSystem reads the keyboard
type InputSystem struct {
	keys KeyBindings
}

// NewInputSystem creates a new input system
func NewInputSystem(keys KeyBindings) *InputSystem {
	return &InputSystem{keys: keys}
}

// InputState holds the current input state
type InputState struct {
	Left         bool
	Right        bool
	Up           bool
	Down         bool
	JumpPressed  bool
	Repair       bool // held
	MenuReleased bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:         ebiten.IsKeyPressed(s.keys.Left),
		Right:        ebiten.IsKeyPressed(s.keys.Right),
		Up:           ebiten.IsKeyPressed(s.keys.Up),
		Down:         ebiten.IsKeyPressed(s.keys.Down),
		JumpPressed:  inpututil.IsKeyJustPressed(s.keys.Up),
		Repair:       ebiten.IsKeyPressed(s.keys.Repair),
		MenuReleased: inpututil.IsKeyJustReleased(s.keys.Menu),
	}
}

// Frame converts the key state into the controller's input snapshot
func (in InputState) Frame() FrameInput {
	return FrameInput{
		JumpDown: in.JumpPressed,
		JumpHeld: in.Up,
		Move: entity.Vec2{
			X: axis(in.Right, in.Left),
			Y: axis(in.Up, in.Down),
		},
	}
}

func axis(positive, negative bool) float64 {
	v := 0.0
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
