package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pirate/internal/domain/entity"
	"github.com/younwookim/pirate/internal/infrastructure/config"
)

func TestParseKeyBindings(t *testing.T) {
	t.Run("default keys", func(t *testing.T) {
		cfg := config.DefaultGameConfig().Keys

		kb, err := ParseKeyBindings(&cfg)
		require.NoError(t, err)

		assert.Equal(t, ebiten.KeyW, kb.Up)
		assert.Equal(t, ebiten.KeyA, kb.Left)
		assert.Equal(t, ebiten.KeyS, kb.Down)
		assert.Equal(t, ebiten.KeyD, kb.Right)
		assert.Equal(t, ebiten.KeySpace, kb.Repair)
		assert.Equal(t, ebiten.KeyQ, kb.Menu)
	})

	t.Run("arrow keys", func(t *testing.T) {
		cfg := config.KeysConfig{Up: "ArrowUp", Left: "ArrowLeft", Down: "ArrowDown", Right: "ArrowRight", Repair: "Enter", Menu: "Escape"}

		kb, err := ParseKeyBindings(&cfg)
		require.NoError(t, err)

		assert.Equal(t, ebiten.KeyArrowUp, kb.Up)
		assert.Equal(t, ebiten.KeyArrowRight, kb.Right)
	})

	t.Run("unknown key name", func(t *testing.T) {
		cfg := config.DefaultGameConfig().Keys
		cfg.Repair = "NotAKey"

		_, err := ParseKeyBindings(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "repair")
	})
}

func TestInputState_Frame(t *testing.T) {
	tests := []struct {
		name  string
		state InputState
		want  FrameInput
	}{
		{"idle", InputState{}, FrameInput{}},
		{"right", InputState{Right: true}, FrameInput{Move: entity.Vec2{X: 1}}},
		{"left and right cancel", InputState{Left: true, Right: true}, FrameInput{}},
		{"down", InputState{Down: true}, FrameInput{Move: entity.Vec2{Y: -1}}},
		{
			"jump edge",
			InputState{Up: true, JumpPressed: true},
			FrameInput{JumpDown: true, JumpHeld: true, Move: entity.Vec2{Y: 1}},
		},
		{
			"jump held",
			InputState{Up: true, Left: true},
			FrameInput{JumpHeld: true, Move: entity.Vec2{X: -1, Y: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Frame())
		})
	}
}
