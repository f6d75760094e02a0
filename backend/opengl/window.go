package opengl

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/spincube"
)

// Window owns the GLFW window, its GL context and the GLFW library.
// GLFW must be used from the main thread.
type Window struct {
	win    *glfw.Window
	events []spincube.Event
}

// OpenWindow initialises GLFW, requests the context attributes and creates
// the window with a current GL context. Any partially acquired resource is
// released before an error is returned.
func OpenWindow(cfg spincube.Config) (*Window, error) {
	if err := checkDisplay(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// Context hints only apply to windows created after they are set.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	w := &Window{win: win}
	win.SetKeyCallback(w.keyCallback)
	win.SetCloseCallback(w.closeCallback)

	spincube.Logger().Info("window opened",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"gl", fmt.Sprintf("%d.%d", cfg.GLMajor, cfg.GLMinor))
	return w, nil
}

// checkDisplay fails early where GLFW would only log a platform error and
// then panic on the first call that needs an initialised library.
func checkDisplay() error {
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" {
		return errors.New("DISPLAY is not set")
	}
	return nil
}

// PollEvents processes pending GLFW events and appends them to dst.
func (w *Window) PollEvents(dst []spincube.Event) []spincube.Event {
	glfw.PollEvents()
	dst = append(dst, w.events...)
	w.events = w.events[:0]
	return dst
}

// SwapBuffers presents the back buffer. The swap interval is left at the
// driver default.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// ProcAddress is the platform extension query of the current context.
func (w *Window) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// Close releases the context, destroys the window and terminates GLFW,
// in that order. It is safe to call more than once.
func (w *Window) Close() {
	if w.win == nil {
		return
	}
	glfw.DetachCurrentContext()
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		w.events = append(w.events, spincube.Event{Kind: spincube.EventKeyDown, Key: glfwKeyToKey(key)})
	case glfw.Release:
		w.events = append(w.events, spincube.Event{Kind: spincube.EventKeyUp, Key: glfwKeyToKey(key)})
	}
}

func (w *Window) closeCallback(_ *glfw.Window) {
	w.events = append(w.events, spincube.Event{Kind: spincube.EventQuit})
}

// glfwKeyToKey maps GLFW keys to the keys the loop distinguishes.
func glfwKeyToKey(key glfw.Key) spincube.Key {
	switch key {
	case glfw.KeyEscape:
		return spincube.KeyEscape
	case glfw.KeyUnknown:
		return spincube.KeyNone
	default:
		return spincube.KeyOther
	}
}
