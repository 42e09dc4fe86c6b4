// Command modeler-headless drives a renderer thread from a scripted session
// without a window.
//
// It pretends to be a host view: it appears with the session's view
// geometry, replays the scripted pointer, touch and resize callbacks
// through a bridge, disappears and prints the run statistics.
//
// Usage:
//
//	modeler-headless -session session.toml -output last.png
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/gogpu/modeler"
	"github.com/gogpu/modeler/bridge"
	"github.com/gogpu/modeler/internal/config"
	"github.com/gogpu/modeler/render"
	"github.com/gogpu/modeler/renderthread"
	"github.com/gogpu/modeler/surface"
)

func main() {
	var (
		sessionPath = flag.String("session", "", "session file (.toml, .yaml)")
		backendName = flag.String("backend", "", "backend override: auto, hal, software")
		output      = flag.String("output", "", "write the last software frame to this PNG")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	modeler.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s := config.Default()
	if *sessionPath != "" {
		var err error
		if s, err = config.Load(*sessionPath); err != nil {
			log.Fatal(err)
		}
	}
	if *backendName != "" {
		s.Backend = *backendName
	}
	if *output != "" {
		s.Output = *output
	}

	os.Exit(run(s))
}

// run replays the session and returns the process exit code.
func run(s config.Session) int {
	backend, err := selectBackend(s)
	if err != nil {
		log.Print(err)
		return 2
	}
	capture := &captureBackend{Backend: backend}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loop := bridge.NewLoop()
	exitCode := 0
	b := bridge.New(capture,
		bridge.WithDispatcher(loop),
		bridge.WithPresenter(bridge.WriterPresenter{W: os.Stderr}),
		bridge.WithExit(func(code int) {
			exitCode = code
			loop.Quit()
		}),
		bridge.WithResourcePath(s.ResourcePath),
		bridge.WithThreadOptions(renderthread.WithFrames(s.Frames)),
	)

	view := viewOf(s.View)
	loop.Post(func() {
		if err := b.Appear(surface.Handle(1), view); err != nil {
			modeler.Logger().Debug("headless: appear failed", "err", err)
		}
	})
	go replay(ctx, loop, b, view, s.Steps)

	if err := loop.Run(ctx); err != nil {
		// Interrupted: stop the renderer on this thread before exiting.
		b.Disappear()
		log.Print(err)
		return 130
	}
	if exitCode != 0 {
		return exitCode
	}

	if s.Output != "" {
		if err := capture.writePNG(s.Output); err != nil {
			log.Print(err)
			return 1
		}
		log.Printf("last frame saved to %s", s.Output)
	}
	return 0
}

// replay posts every step onto the loop, honoring step delays, then stops
// the renderer and quits the loop.
func replay(ctx context.Context, loop *bridge.Loop, b *bridge.Bridge, view bridge.View, steps []config.Step) {
	nextSurface := surface.Handle(2)
	for _, st := range steps {
		if d := time.Duration(st.Delay); d > 0 {
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return
			}
		}
		switch st.Action {
		case config.ActionResize, config.ActionExtent:
			view.Width, view.Height = st.Width, st.Height
		case config.ActionFullscreen:
			view.Fullscreen = st.On
		}
		loop.Post(stepFunc(b, st, view, nextSurface))
		if st.Action == config.ActionResize {
			nextSurface++
		}
	}
	loop.Post(func() {
		h := b.Handle()
		b.Disappear()
		if h != nil {
			fmt.Printf("%v: %v\n", h, h.Stats())
		}
		loop.Quit()
	})
}

func stepFunc(b *bridge.Bridge, st config.Step, view bridge.View, s surface.Handle) func() {
	switch st.Action {
	case config.ActionPointer:
		return func() { b.PointerMoved(st.X, st.Y) }
	case config.ActionDown:
		return b.ButtonDown
	case config.ActionUp:
		return b.ButtonUp
	case config.ActionLeave:
		return b.PointerLeft
	case config.ActionTouchBegan:
		return func() { b.TouchBegan(st.X, st.Y) }
	case config.ActionTouchMoved:
		return func() { b.TouchMoved(st.X, st.Y) }
	case config.ActionTouchEnded:
		return func() { b.TouchEnded(st.X, st.Y) }
	case config.ActionTouchCancelled:
		return b.TouchCancelled
	case config.ActionResize:
		return func() { b.Resize(s, view) }
	case config.ActionExtent:
		return func() { b.ExtentChanged(view) }
	case config.ActionFullscreen:
		return func() { b.FullscreenChanged(st.On) }
	}
	return func() {}
}

func viewOf(v config.View) bridge.View {
	return bridge.View{
		Width:       v.Width,
		Height:      v.Height,
		Scale:       v.Scale,
		Insets:      v.InputInsets(),
		Orientation: v.Orientation(),
		Fullscreen:  v.Fullscreen,
		FlipY:       v.FlipY,
	}
}

// selectBackend resolves the session's backend name. The software backend
// is configured from the session; other names come from the registry.
func selectBackend(s config.Session) (render.Backend, error) {
	switch s.Backend {
	case "auto":
		return render.Default(), nil
	case "software":
		tag, err := language.Parse(s.Language)
		if err != nil {
			return nil, fmt.Errorf("session language %q: %w", s.Language, err)
		}
		return &render.SoftwareBackend{Language: tag, NoHUD: s.NoHUD}, nil
	}
	return render.Lookup(s.Backend)
}

// captureBackend remembers the last software renderer it opened so its
// frame can be saved after the run.
type captureBackend struct {
	render.Backend

	mu   sync.Mutex
	last *render.SoftwareRenderer
}

func (c *captureBackend) Open(cfg render.Config) (render.Renderer, error) {
	r, err := c.Backend.Open(cfg)
	if err != nil {
		return nil, err
	}
	if sw, ok := r.(*render.SoftwareRenderer); ok {
		c.mu.Lock()
		c.last = sw
		c.mu.Unlock()
	}
	return r, nil
}

func (c *captureBackend) writePNG(path string) error {
	c.mu.Lock()
	sw := c.last
	c.mu.Unlock()
	if sw == nil {
		return fmt.Errorf("no software frame to save (backend %s)", c.Name())
	}

	f, err := os.Create(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return err
	}
	if err := png.Encode(f, sw.Target().Image()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
