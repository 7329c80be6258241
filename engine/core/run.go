package core

import (
	"log/slog"
	"runtime"

	"github.com/hubastard/winkel/engine/profiler"
	"github.com/hubastard/winkel/engine/ui"
)

// Host owns a widget tree and its current layout. It feeds pointer input
// through Dispatch and recomputes the layout whenever dispatch reports a
// state change or the window is resized.
type Host struct {
	tree          ui.Widget
	layout        *ui.Layout
	input         *Input
	width, height float64
	closing       bool
	computes      int
	log           *slog.Logger
}

func NewHost(tree ui.Widget, log *slog.Logger) *Host {
	if log == nil {
		log = slog.Default()
	}
	return &Host{tree: tree, input: NewInput(), log: log}
}

// Start computes the initial layout for a width x height window.
func (h *Host) Start(width, height int) {
	h.width, h.height = float64(width), float64(height)
	h.recompute("start")
}

// HandleEvent applies one window event.
func (h *Host) HandleEvent(ev Event) {
	switch e := ev.(type) {
	case EventCloseRequested:
		h.closing = true
		return
	case EventResize:
		if e.W < 1 || e.H < 1 {
			return
		}
		h.width, h.height = float64(e.W), float64(e.H)
		h.recompute("resize")
		return
	}

	uev := h.input.Translate(ev)
	if uev == nil {
		return
	}
	end := profiler.Start("ui.Dispatch")
	changed := ui.Dispatch(h.tree, uev, h.layout)
	end()
	if changed {
		h.recompute("dispatch")
	}
}

// Frame renders the current layout.
func (h *Host) Frame(r ui.Renderer) {
	defer profiler.Start("render")()
	r.Render(h.layout, h.width, h.height)
}

func (h *Host) recompute(reason string) {
	end := profiler.Start("ui.Compute")
	h.layout = ui.Compute(h.tree, h.width, h.height)
	end()
	h.computes++
	h.log.Debug("layout computed", "reason", reason, "entries", h.layout.Len(), "width", h.width, "height", h.height)
}

func (h *Host) Layout() *ui.Layout { return h.layout }

// Computes reports how many layout passes have run.
func (h *Host) Computes() int { return h.computes }

// Closing reports whether the window asked to close.
func (h *Host) Closing() bool { return h.closing }

// Run wires the platform window + renderer and executes the main loop.
func Run(tree ui.Widget, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := slog.Default()
	profiler.Enable(cfg.Profile)

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	rend.Resize(win.FramebufferSize())

	host := NewHost(tree, log)
	w, h := win.Size()
	host.Start(w, h)
	log.Info("window ready", "title", cfg.Title, "width", w, "height", h)

	win.SetEventCallback(func(ev Event) {
		host.HandleEvent(ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	for !win.ShouldClose() && !host.Closing() {
		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		rend.Clear(cfg.ClearColor)
		host.Frame(rend)
		win.SwapBuffers()
	}

	if cfg.Profile {
		profiler.Report(log)
	}
	log.Info("engine exit", "layouts", host.Computes())
	return nil
}
