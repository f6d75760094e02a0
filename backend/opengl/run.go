package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/spincube"
)

// Run opens the window, loads GL, builds the renderer and runs the frame
// loop until the user quits. Resources are released in reverse order of
// acquisition on every return path. Run must be called from the main thread.
func Run(cfg spincube.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	window, err := OpenWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Close()

	loader := NewLoader(window.ProcAddress)
	fns, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load GL functions: %w", err)
	}
	defer loader.Close()

	// Core entry points (clear, enable, draw) come from go-gl, resolved
	// through the same loader.
	if err := gl.InitWithProcAddrFunc(loader.ProcAddress); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	spincube.Logger().Info("GL context",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	renderer, err := NewRenderer(fns, cfg)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	return spincube.NewLoop(window, renderer, cfg).Run()
}
