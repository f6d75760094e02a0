// Command triangle renders a single triangle with shaders read from
// SimpleVertexShader.vert and SimpleFragmentShader.frag in the working
// directory. Only the colour buffer is cleared.
//
//	cd example/triangle && go run .
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

	if err := opengl.Run(spincube.TriangleConfig()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
