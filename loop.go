package spincube

import (
	"time"
)

// State is the frame loop state.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// EventKind classifies an input event.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit           // window close requested
	EventKeyDown
	EventKeyUp
)

// Key identifies a keyboard key. Only keys the loop reacts to are named.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyOther
)

// Event is one input event drained at the start of a frame.
type Event struct {
	Kind EventKind
	Key  Key
}

// stops reports whether the event ends the loop.
func (e Event) stops() bool {
	return e.Kind == EventQuit || (e.Kind == EventKeyDown && e.Key == KeyEscape)
}

// EventSource is the windowing side of the loop.
type EventSource interface {
	// PollEvents appends all pending events to dst and returns it.
	PollEvents(dst []Event) []Event
	// SwapBuffers presents the rendered frame. It may block on vsync.
	SwapBuffers()
}

// Frame is everything a renderer needs to draw one frame.
type Frame struct {
	Index      uint64
	Delta      float32 // seconds since the previous frame
	Angle      float32 // degrees
	Transforms Transforms
}

// Renderer draws one frame. It must not allocate GPU resources.
type Renderer interface {
	Draw(f Frame)
}

// Loop drives events, animation, drawing and presentation.
type Loop struct {
	events   EventSource
	renderer Renderer
	camera   Camera
	rate     float32

	clock func() time.Duration

	state  State
	angle  float32
	last   time.Duration
	frames uint64
	queue  []Event
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithClock replaces the monotonic clock. Tests use it to control deltaTime.
func WithClock(clock func() time.Duration) LoopOption {
	return func(l *Loop) { l.clock = clock }
}

// NewLoop creates a loop in the Running state.
func NewLoop(events EventSource, renderer Renderer, cfg Config, opts ...LoopOption) *Loop {
	start := time.Now()
	l := &Loop{
		events:   events,
		renderer: renderer,
		camera:   cfg.Camera,
		rate:     cfg.RotationRate,
		clock:    func() time.Duration { return time.Since(start) },
		state:    Running,
		queue:    make([]Event, 0, 8),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.last = l.clock()
	return l
}

// State returns the current loop state.
func (l *Loop) State() State { return l.state }

// Angle returns the accumulated rotation angle in degrees.
func (l *Loop) Angle() float32 { return l.angle }

// Frames returns the number of frames drawn and presented.
func (l *Loop) Frames() uint64 { return l.frames }

// Stop moves the loop to Stopped. It is terminal.
func (l *Loop) Stop() { l.state = Stopped }

// Step runs one iteration. It returns false once the loop has stopped, in
// which case nothing was drawn or presented.
func (l *Loop) Step() bool {
	if l.state == Stopped {
		return false
	}
	l.queue = l.events.PollEvents(l.queue[:0])
	for _, ev := range l.queue {
		if ev.stops() {
			l.state = Stopped
		}
	}
	if l.state == Stopped {
		logger.Info("quit requested", "frames", l.frames)
		return false
	}

	now := l.clock()
	dt := float32((now - l.last).Seconds())
	l.last = now
	l.angle = Advance(l.angle, l.rate, dt)

	frame := Frame{
		Index:      l.frames,
		Delta:      dt,
		Angle:      l.angle,
		Transforms: l.camera.Transforms(l.angle),
	}
	l.renderer.Draw(frame)
	l.events.SwapBuffers()
	l.frames++

	if verbose() && l.frames%600 == 0 {
		logger.Debug("frame", "index", frame.Index, "dt", dt, "angle", l.angle)
	}
	return true
}

// Run steps until the loop stops.
func (l *Loop) Run() error {
	begin := l.clock()
	for l.Step() {
	}
	elapsed := l.clock() - begin
	fps := 0.0
	if s := elapsed.Seconds(); s > 0 {
		fps = float64(l.frames) / s
	}
	logger.Info("loop stopped", "frames", l.frames, "elapsed", elapsed, "fps", fps)
	return nil
}
