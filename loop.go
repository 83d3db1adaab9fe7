package hud

import "github.com/hajimehoshi/ebiten/v2"

// Scene is the game drawn underneath the overlay. Any [ebiten.Game]
// satisfies it.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type tickEntry struct {
	every int
	fn    func()
}

// Loop is an [ebiten.Game] that runs a Scene and gives overlays three hooks
// per frame: before the scene updates, after the scene draws, and a
// low-frequency tick. Canvases subscribe to these in Canvas.Start.
type Loop struct {
	// Scene is optional; a nil Scene draws nothing under the overlays.
	Scene Scene
	// ShowFPS prints frame and tick rates over everything.
	ShowFPS bool
	// ScreenshotDir receives Screenshot captures. Defaults to "screenshots".
	ScreenshotDir string

	before registry[func()]
	after  registry[func(*ebiten.Image)]
	ticks  registry[tickEntry]

	frame         int
	width, height int

	screenshotQueue []string
}

// NewLoop creates a loop around scene.
func NewLoop(scene Scene) *Loop {
	return &Loop{Scene: scene}
}

// OnBeforeScene registers fn to run every frame before the scene updates.
func (l *Loop) OnBeforeScene(fn func()) CallbackHandle {
	return l.before.add(fn)
}

// OnAfterScene registers fn to draw every frame after the scene has drawn.
func (l *Loop) OnAfterScene(fn func(*ebiten.Image)) CallbackHandle {
	return l.after.add(fn)
}

// OnTick registers fn to run once every `every` frames. Values below 1 run
// it every frame.
func (l *Loop) OnTick(every int, fn func()) CallbackHandle {
	if every < 1 {
		every = 1
	}
	return l.ticks.add(tickEntry{every: every, fn: fn})
}

// Frame returns the number of completed updates.
func (l *Loop) Frame() int { return l.frame }

// Size returns the last layout size, zero before the first Layout call.
func (l *Loop) Size() (int, int) { return l.width, l.height }

// Update implements [ebiten.Game].
func (l *Loop) Update() error {
	l.frame++
	l.ticks.each(func(t tickEntry) {
		if l.frame%t.every == 0 {
			t.fn()
		}
	})
	l.before.each(func(fn func()) { fn() })
	if l.Scene != nil {
		return l.Scene.Update()
	}
	return nil
}

// Draw implements [ebiten.Game].
func (l *Loop) Draw(screen *ebiten.Image) {
	if l.Scene != nil {
		l.Scene.Draw(screen)
	}
	l.after.each(func(fn func(*ebiten.Image)) { fn(screen) })
	if l.ShowFPS {
		l.drawFPS(screen)
	}
	l.flushScreenshots(screen)
}

// Layout implements [ebiten.Game]. The screen always matches the window so
// overlays render at native resolution.
func (l *Loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	l.width, l.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
