package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rook-computer/neomatrix/internal/app/scenes"
	"github.com/rook-computer/neomatrix/internal/canvas"
	"github.com/rook-computer/neomatrix/internal/shape"
)

var ErrNotStarted = errors.New("app not started")

// App owns the canvas and steps the active scene once per tick.
type App struct {
	Config Config
	Sink   canvas.Sink
	Logger Logger

	mu        sync.Mutex
	ctx       context.Context
	canvas    *canvas.Canvas
	stage     *scenes.Stage
	scene     scenes.Scene
	sceneName string
	tick      int

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(cfg Config, sink canvas.Sink) *App {
	return &App{Config: cfg, Sink: sink, Logger: NoopLogger{}, exitCh: make(chan error, 1)}
}

// Exit requests the app to stop running.
func (app *App) Exit(err error) {
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Init builds the canvas and starts the configured scene. Step may be
// called once Init returns.
func (app *App) Init(ctx context.Context) error {
	if err := app.Config.Validate(); err != nil {
		return err
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	c, err := canvas.New(app.Config.Width, app.Config.Height, app.Sink,
		canvas.WithAutoupdate(app.Config.Autoupdate),
		canvas.WithLogger(app.Logger),
		canvas.WithPalette(app.Config.Palette),
	)
	if err != nil {
		return err
	}

	app.mu.Lock()
	app.ctx = ctx
	app.canvas = c
	app.stage = &scenes.Stage{
		Canvas:     c,
		Palette:    app.Config.Palette,
		Color:      app.Config.Color,
		Brightness: app.Config.Brightness,
		Logger:     app.Logger,
	}
	app.mu.Unlock()
	app.Logger.Infof("app", "canvas %dx%d, autoupdate=%v", c.Width(), c.Height(), c.Autoupdate())
	return app.SetScene(app.Config.Scene)
}

// Canvas returns the canvas built by Init.
func (app *App) Canvas() *canvas.Canvas {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.canvas
}

// Scene returns the name of the active scene.
func (app *App) Scene() string {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.sceneName
}

// SetScene stops the active scene, clears the canvas and starts name.
func (app *App) SetScene(name string) error {
	next, err := scenes.New(name)
	if err != nil {
		return err
	}
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.canvas == nil {
		return ErrNotStarted
	}
	app.stopScene()
	if err := next.Start(app.ctx, app.stage); err != nil {
		app.Logger.Errorf("app", "scene %s start error: %v", name, err)
		return fmt.Errorf("start scene %s: %w", name, err)
	}
	app.scene, app.sceneName, app.tick = next, name, 0
	app.Logger.Infof("app", "scene %s started with %d shapes", name, app.canvas.Len())
	return app.flush()
}

// NextScene advances to the scene after the active one in name order.
func (app *App) NextScene() error {
	names := scenes.Names()
	current := app.Scene()
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
		}
	}
	return app.SetScene(next)
}

// AdjustBrightness changes the brightness of every shape by delta percent.
// Shapes created afterwards use the new value too.
func (app *App) AdjustBrightness(delta int) error {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.canvas == nil {
		return ErrNotStarted
	}
	app.stage.Brightness = shape.ClampBrightness(app.stage.Brightness + delta)
	app.canvas.SetBrightness(app.stage.Brightness)
	app.Logger.Infof("app", "brightness %d%%", app.stage.Brightness)
	return app.flush()
}

// Step advances the active scene by one tick and pushes the frame.
func (app *App) Step() error {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.scene == nil {
		return ErrNotStarted
	}
	if err := app.scene.Step(app.tick); err != nil {
		return fmt.Errorf("scene %s tick %d: %w", app.sceneName, app.tick, err)
	}
	app.tick++
	return app.flush()
}

// flush writes the frame unless autoupdate already did.
func (app *App) flush() error {
	if app.canvas.Autoupdate() {
		return nil
	}
	return app.canvas.Update()
}

// Run initializes the app and steps it at the configured rate until ctx is
// done, Exit is called, or a step fails.
func (app *App) Run(ctx context.Context) error {
	if err := app.Init(ctx); err != nil {
		return err
	}
	defer app.Stop()

	ticker := time.NewTicker(time.Second / time.Duration(app.Config.FPS))
	defer ticker.Stop()
	lastLog := time.Now()
	frames := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-app.exitCh:
			return err
		case <-ticker.C:
			if err := app.Step(); err != nil {
				app.Logger.Errorf("app", "step error: %v", err)
				return err
			}
			frames++
			if time.Since(lastLog) > 10*time.Second {
				app.Logger.Infof("app", "heartbeat, scene=%s frames=%d", app.Scene(), frames)
				lastLog = time.Now()
			}
		}
	}
}

// Stop stops the active scene and blanks the matrix.
func (app *App) Stop() error {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.canvas == nil {
		return nil
	}
	app.stopScene()
	app.scene, app.sceneName = nil, ""
	return app.flush()
}

func (app *App) stopScene() {
	if app.scene != nil {
		if err := app.scene.Stop(); err != nil {
			app.Logger.Errorf("app", "scene %s stop error: %v", app.sceneName, err)
		}
	}
	app.canvas.RemoveAll()
}
