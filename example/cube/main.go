// Command cube renders the depth-tested spinning cube.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/cube/    # run this example
//
// Press Escape or close the window to quit. Set SPINCUBE_DEBUG=1 for debug logging.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/spincube"
	"github.com/go-theft-auto/spincube/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	spincube.SetVerbose(os.Getenv("SPINCUBE_DEBUG") != "")

	if err := opengl.Run(spincube.CubeConfig()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
