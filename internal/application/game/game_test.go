package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/hillrush/hillrush/internal/application/scene"
)

// fakeScene stands in for a game screen, counting lifecycle calls and
// optionally handing the loop to the next screen on update.
type fakeScene struct {
	name    string
	updates int
	draws   int
	enters  int
	exits   int
	next    scene.Scene
	err     error
}

func (f *fakeScene) Update(dt float64) (scene.Scene, error) {
	f.updates++
	return f.next, f.err
}

func (f *fakeScene) Draw(screen *ebiten.Image) {
	f.draws++
}

func (f *fakeScene) OnEnter() {
	f.enters++
}

func (f *fakeScene) OnExit() {
	f.exits++
}

func TestNewEntersInitialScene(t *testing.T) {
	title := &fakeScene{name: "title"}

	g := New(title, 1280, 720)

	assert.NotNil(t, g)
	assert.Equal(t, 1, title.enters, "the first screen is entered immediately")
}

func TestUpdateDelegatesToCurrentScene(t *testing.T) {
	run := &fakeScene{name: "run"}
	g := New(run, 1280, 720)

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, run.updates)
}

func TestDrawDelegatesToCurrentScene(t *testing.T) {
	run := &fakeScene{name: "run"}
	g := New(run, 1280, 720)

	g.Draw(ebiten.NewImage(1280, 720))

	assert.Equal(t, 1, run.draws)
}

func TestLayout(t *testing.T) {
	g := New(&fakeScene{}, 1280, 720)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
}

func TestTitleHandsOverToRun(t *testing.T) {
	run := &fakeScene{name: "run"}
	title := &fakeScene{name: "title", next: run}

	g := New(title, 1280, 720)

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, title.updates)
	assert.Equal(t, 1, title.exits, "the old screen is exited on handover")
	assert.Equal(t, 1, run.enters, "the new screen is entered on handover")

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, run.updates, "later updates go to the new screen")
	assert.Equal(t, 1, title.updates, "and the old one is done")
}

func TestStaysOnSceneReturningNil(t *testing.T) {
	run := &fakeScene{name: "run"}
	g := New(run, 1280, 720)

	for i := 0; i < 5; i++ {
		assert.NoError(t, g.Update())
	}

	assert.Equal(t, 5, run.updates)
	assert.Zero(t, run.exits, "no exit without a handover")
}

func TestUpdateErrorStopsTheLoop(t *testing.T) {
	broken := &fakeScene{name: "run", err: assert.AnError}
	g := New(broken, 1280, 720)

	assert.Error(t, g.Update(), "a screen error propagates out of the loop")
}
