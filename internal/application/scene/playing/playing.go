// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hillrush/hillrush/internal/application/replay"
	"github.com/hillrush/hillrush/internal/application/scene"
	"github.com/hillrush/hillrush/internal/application/state"
	"github.com/hillrush/hillrush/internal/application/system"
	"github.com/hillrush/hillrush/internal/domain/entity"
	"github.com/hillrush/hillrush/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorSky      = color.RGBA{140, 190, 235, 255}
	colorPlayer   = color.RGBA{60, 60, 70, 255}
	colorBoard    = color.RGBA{230, 120, 40, 255}
	colorShield   = color.RGBA{90, 200, 230, 160}
	colorHUDPanel = color.RGBA{0, 0, 0, 90}
)

// columnStep is the horizontal resolution of the terrain fill
const columnStep = 4

// Playing is the main gameplay scene
type Playing struct {
	config   *config.PhysicsConfig
	entities *config.EntitiesConfig
	sim      *system.Simulation
	input    *system.InputSystem
	state    state.GameState
	screenW  int
	screenH  int

	seed int64

	// Input recording
	recorder       *Recorder
	recordFilename string

	// Input playback
	replayer *replay.Replayer
}

// New creates a new Playing scene with a seeded run.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.PhysicsConfig, ents *config.EntitiesConfig, seed int64, recordPath string) *Playing {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p := &Playing{
		config:         cfg,
		entities:       ents,
		sim:            system.NewSimulation(cfg, ents, rand.New(rand.NewSource(seed))),
		input:          system.NewInputSystem(cfg),
		state:          state.StatePlaying,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		seed:           seed,
		recordFilename: recordPath,
	}

	if recordPath != "" {
		p.recorder = NewRecorder(seed)
		log.Printf("Recording enabled: %s (seed: %d)", recordPath, seed)
	}

	return p
}

// NewReplay creates a Playing scene that replays recorded input. The
// run is rebuilt from the recording's seed, so playback matches the
// original frame for frame.
func NewReplay(cfg *config.PhysicsConfig, ents *config.EntitiesConfig, data replay.ReplayData) *Playing {
	p := New(cfg, ents, data.Seed, "")
	p.replayer = replay.NewReplayer(data)
	return p
}

// Seed returns the seed of the current run
func (p *Playing) Seed() int64 { return p.seed }

// State returns the current scene state
func (p *Playing) State() state.GameState { return p.state }

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		p.updatePlaying()
	case state.StatePaused:
		if p.input.GetInput().Pause {
			p.state = state.StatePlaying
		}
	case state.StateGameOver:
		in := p.input.GetInput()
		if in.Restart || in.JumpPressed {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() {
	input, ok := p.nextInput()
	if !ok {
		// Recording exhausted, let the run coast to its end
		input = system.InputState{}
	}

	if input.Pause {
		p.state = state.StatePaused
		return
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.sim.Tick(input)

	if p.sim.GameOver() {
		p.state = state.StateGameOver
		// Auto-save recording on game over
		if p.recorder != nil {
			p.saveRecording()
		}
	}
}

// nextInput samples the keyboard, or the recording when replaying
func (p *Playing) nextInput() (system.InputState, bool) {
	if p.replayer != nil {
		in, ok := p.replayer.GetInput()
		return system.InputState{
			Jump:         in.Jump,
			JumpPressed:  in.JumpPressed,
			JumpReleased: in.JumpReleased,
			Pause:        in.Pause,
		}, ok
	}
	return p.input.GetInput(), true
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) restart() {
	p.seed = time.Now().UnixNano()
	if p.replayer != nil {
		// Replays restart from their own seed and frame zero
		p.seed = p.replayer.Seed()
		p.replayer.Reset()
	}

	p.sim = system.NewSimulation(p.config, p.entities, rand.New(rand.NewSource(p.seed)))
	p.state = state.StatePlaying

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.seed)
		log.Printf("Recording restarted (seed: %d)", p.seed)
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)

	p.drawTerrain(screen)
	p.drawObstacles(screen)
	p.drawPickups(screen)
	p.drawPlayer(screen)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

// drawTerrain fills each ground column from its curve down to the
// bottom of the screen.
func (p *Playing) drawTerrain(screen *ebiten.Image) {
	for _, s := range p.sim.Terrain().Segments() {
		c := entity.TerrainColors[s.Type()]
		for local := 0; local < s.Width(); local += columnStep {
			x := s.X() + local
			if x+columnStep <= 0 || x >= p.screenW {
				continue
			}
			y := float64(s.HeightAt(local))
			ebitenutil.DrawRect(screen, float64(x), y, columnStep, float64(p.screenH)-y, c)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	player := p.sim.Player()
	hb := player.Hitbox()
	corners := hb.Coords()

	// Rotated body quad drawn edge by edge; the bottom edge doubles
	// as the board.
	for i := 0; i < 4; i++ {
		a := corners[i]
		b := corners[(i+1)%4]
		c := colorPlayer
		if i == 2 {
			c = colorBoard
		}
		ebitenutil.DrawLine(screen, float64(a.X), float64(a.Y), float64(b.X), float64(b.Y), c)
	}

	center := hb.Center()
	ebitenutil.DrawRect(screen, float64(center.X-4), float64(center.Y-4), 8, 8, colorPlayer)

	if p.sim.PowerState().Shielded() {
		r := float64(hb.Width()) * 0.7
		ebitenutil.DrawCircle(screen, float64(center.X), float64(center.Y), r, colorShield)
	}
}

func (p *Playing) drawObstacles(screen *ebiten.Image) {
	for _, o := range p.sim.Obstacles() {
		hb := o.Hitbox()
		c := entity.ObstacleColors[o.Type()]
		ebitenutil.DrawRect(screen, float64(hb.X()), float64(hb.Y()), float64(hb.Width()), float64(hb.Height()), c)
	}
}

func (p *Playing) drawPickups(screen *ebiten.Image) {
	for _, coin := range p.sim.Coins() {
		hb := coin.Hitbox()
		center := hb.Center()
		ebitenutil.DrawCircle(screen, float64(center.X), float64(center.Y), float64(hb.Width())/2, color.RGBA{255, 215, 0, 255})
	}
	for _, pw := range p.sim.Powers() {
		hb := pw.Hitbox()
		c := entity.PowerColors[pw.Type()]
		ebitenutil.DrawRect(screen, float64(hb.X()), float64(hb.Y()), float64(hb.Width()), float64(hb.Height()), c)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, 250, 64, colorHUDPanel)

	hud := fmt.Sprintf("Score: %d\nCoins: %d\nDistance: %d", p.sim.Score(), p.sim.CoinCount(), p.sim.Distance())
	ebitenutil.DebugPrintAt(screen, hud, 8, 4)

	if active := p.sim.PowerState().Active(); active != entity.PowerNone {
		powerText := fmt.Sprintf("%s (%d)", active, p.sim.PowerState().Remaining())
		ebitenutil.DebugPrintAt(screen, powerText, 8, 50)
	}

	ebitenutil.DebugPrintAt(screen, "Space/W: Jump | hold to charge & flip, release to steady | ESC: Pause", 8, p.screenH-20)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("WIPEOUT\n\nScore: %d\nCoins: %d\n\nPress R to restart", p.sim.Score(), p.sim.CoinCount())
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
