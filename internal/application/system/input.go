package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hillrush/hillrush/internal/domain/entity"
	"github.com/hillrush/hillrush/internal/infrastructure/config"
)

// InputSystem samples player input from the keyboard
type InputSystem struct {
	config *config.PhysicsConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds the sampled input for one tick
type InputState struct {
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	Pause        bool
	Restart      bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	jumpHeld := ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW)
	jumpReleased := inpututil.IsKeyJustReleased(ebiten.KeySpace) || inpututil.IsKeyJustReleased(ebiten.KeyW)

	return InputState{
		Jump:         jumpHeld,
		JumpPressed:  jumpPressed,
		JumpReleased: jumpReleased,
		Pause:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart:      inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// ApplyInput translates one tick of input into player actions.
// Pressing jump launches from the ground. Keeping the key held charges
// the jump higher and keeps the backflip spinning; releasing freezes
// the flip so the board can be lined up for the landing.
func (s *InputSystem) ApplyInput(player *entity.Player, input InputState, jumpBoost float64) {
	if input.JumpPressed && player.Grounded() {
		player.Jump(jumpBoost)
		return
	}

	if player.Jumping() {
		if input.Jump {
			player.HoldJump(s.config.Jump.HoldFrames, s.config.Jump.HoldBonus)
			player.ResumeFlipping()
		} else {
			player.StopFlipping()
		}
	}
}
