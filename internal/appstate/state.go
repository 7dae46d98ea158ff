package appstate

import (
	"context"
	"image"
	"log"
	"sync"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// frameDropThreshold limits how many in-flight frames a new paint request
// may cancel before one is allowed to finish.
const frameDropThreshold = 10

type paintState struct {
	width, height int
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main opens the paint window on s and serves it until the window closes.
func (a *AppState) Main(s screen.Screen) {
	a.mu.Lock()
	win := a.layout()
	a.mu.Unlock()
	width, height := win.X, win.Y

	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "ShineyPaint"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-a.updateCh:
				w.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	p := newPainter(func(ctx context.Context, st paintState) {
		a.drawFrame(ctx, s, w, st)
	})
	// Runs before w.Release so no frame is uploaded to a released window.
	defer p.stop()

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			p.request(paintState{width: width, height: height})
		case mouse.Event:
			if a.handleMouse(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if a.handleKey(e) {
				w.Send(paint.Event{})
			}
		case error:
			log.Printf("window: %v", e)
		}
	}
}

// painter renders frames on its own goroutine. Requests coalesce into a
// single slot, and a new request cancels the frame in progress unless
// frameDropThreshold frames in a row have already been dropped.
type painter struct {
	draw func(context.Context, paintState)
	reqs chan paintState
	done chan struct{}

	mu      sync.Mutex
	cancel  context.CancelFunc
	dropped int
}

func newPainter(draw func(context.Context, paintState)) *painter {
	p := &painter{
		draw: draw,
		reqs: make(chan paintState, 1),
		done: make(chan struct{}),
	}
	go p.loop()
	return p
}

func (p *painter) loop() {
	defer close(p.done)
	for st := range p.reqs {
		ctx, cancel := context.WithCancel(context.Background())
		p.mu.Lock()
		p.cancel = cancel
		p.mu.Unlock()
		p.draw(ctx, st)
		p.mu.Lock()
		p.cancel = nil
		if ctx.Err() == nil {
			p.dropped = 0
		}
		p.mu.Unlock()
		cancel()
	}
}

// request queues st, replacing any request not yet started. It must only
// be called from one goroutine.
func (p *painter) request(st paintState) {
	p.mu.Lock()
	if p.cancel != nil && p.dropped < frameDropThreshold {
		p.cancel()
		p.dropped++
	}
	p.mu.Unlock()
	select {
	case p.reqs <- st:
	default:
		select {
		case <-p.reqs:
		default:
		}
		p.reqs <- st
	}
}

// stop cancels the frame in progress and returns once the paint goroutine
// has exited.
func (p *painter) stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()
	close(p.reqs)
	<-p.done
}

func (a *AppState) handleMouse(e mouse.Event) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	x, y := float64(e.X), float64(e.Y)
	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return false
		}
		a.PointerPress(x, y)
	case mouse.DirRelease:
		if e.Button != mouse.ButtonLeft {
			return false
		}
		a.PointerRelease(x, y)
	case mouse.DirNone:
		prev := a.input.hover
		a.PointerMove(x, y)
		return a.input.capture != nil || a.input.hover != prev
	default:
		return false
	}
	return true
}

func (a *AppState) handleKey(e key.Event) bool {
	if e.Direction == key.DirRelease {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	switch e.Code {
	case key.CodeEscape, key.CodeReturnEnter, key.CodeTab:
		return a.Blur()
	case key.CodeDeleteBackspace:
		return a.Backspace()
	}
	if e.Rune > 0 && e.Modifiers&(key.ModControl|key.ModMeta) == 0 {
		return a.TypeRune(e.Rune)
	}
	return false
}

func (a *AppState) drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	a.mu.Lock()
	ok := a.renderFrame(ctx, b.RGBA())
	a.mu.Unlock()
	if !ok {
		return
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
