// Package opengl provides the OpenGL 3.3 core backend for spincube: the GL
// symbol loader, shader compiler, geometry upload, GLFW window and renderer.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/spincube"
)

// Renderer draws the configured mesh with the configured shader program.
type Renderer struct {
	fns       *Functions
	program   uint32
	geometry  *Geometry
	modelLoc  int32
	viewLoc   int32
	projLoc   int32
	clearMask uint32
}

// NewRenderer loads the shader sources, builds the program and uploads the
// mesh. GL state that never changes (clear colour, depth test) is set here.
func NewRenderer(fns *Functions, cfg spincube.Config) (*Renderer, error) {
	vertexSource, err := cfg.VertexShader.Load()
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentSource, err := cfg.FragmentShader.Load()
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	r := &Renderer{fns: fns, clearMask: gl.COLOR_BUFFER_BIT}

	r.program, err = NewCompiler(fns).Program(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	// Missing uniforms resolve to -1, which UniformMatrix4fv ignores.
	r.modelLoc = fns.GetUniformLocation(r.program, gl.Str("model\x00"))
	r.viewLoc = fns.GetUniformLocation(r.program, gl.Str("view\x00"))
	r.projLoc = fns.GetUniformLocation(r.program, gl.Str("projection\x00"))

	r.geometry, err = UploadMesh(fns, cfg.Mesh)
	if err != nil {
		fns.DeleteProgram(r.program)
		return nil, fmt.Errorf("upload mesh: %w", err)
	}

	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	if cfg.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
		r.clearMask |= gl.DEPTH_BUFFER_BIT
	}

	spincube.Logger().Info("renderer ready",
		"mesh", cfg.Mesh.Name,
		"triangles", r.geometry.DrawCall().Triangles(),
		"depthTest", cfg.DepthTest)
	return r, nil
}

// Draw renders one frame. It implements spincube.Renderer.
func (r *Renderer) Draw(f spincube.Frame) {
	gl.Clear(r.clearMask)

	r.fns.UseProgram(r.program)
	r.geometry.Bind()

	t := &f.Transforms
	r.fns.UniformMatrix4fv(r.projLoc, 1, false, &t.Projection[0])
	r.fns.UniformMatrix4fv(r.viewLoc, 1, false, &t.View[0])
	r.fns.UniformMatrix4fv(r.modelLoc, 1, false, &t.Model[0])

	r.geometry.Draw()
}

// Delete releases the geometry and the program.
func (r *Renderer) Delete() {
	if r.geometry != nil {
		r.geometry.Delete()
		r.geometry = nil
	}
	if r.program != 0 {
		r.fns.DeleteProgram(r.program)
		r.program = 0
	}
}
