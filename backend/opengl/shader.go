package opengl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/spincube"
)

// ShaderError carries the driver diagnostic for a failed compile or link.
type ShaderError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("shader program linking failed: %s", e.Log)
	}
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("stage 0x%X", stage)
	}
}

// Compiler compiles and links shader programs through a loaded Functions table.
type Compiler struct {
	fns *Functions
}

// NewCompiler creates a compiler bound to fns.
func NewCompiler(fns *Functions) *Compiler {
	return &Compiler{fns: fns}
}

// Compile compiles one shader stage. On failure the shader object is deleted
// and 0 is returned together with a *ShaderError holding the compiler log.
func (c *Compiler) Compile(stage uint32, source string) (uint32, error) {
	f := c.fns
	shader := f.CreateShader(stage)
	if shader == 0 {
		return 0, fmt.Errorf("create %s shader failed", stageName(stage))
	}

	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csource, free := gl.Strs(source)
	f.ShaderSource(shader, 1, csource, nil)
	free()
	f.CompileShader(shader)

	var status int32
	f.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		f.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		f.GetShaderInfoLog(shader, logLength, nil, &log[0])
		f.DeleteShader(shader)

		err := &ShaderError{Stage: stageName(stage), Log: trimLog(log)}
		spincube.Logger().Error("shader compile failed", "stage", err.Stage, "log", err.Log)
		return 0, err
	}
	return shader, nil
}

// Link links a vertex and a fragment shader into a program. Both shaders are
// deleted afterwards, whether linking succeeded or not.
func (c *Compiler) Link(vertexShader, fragmentShader uint32) (uint32, error) {
	f := c.fns
	defer f.DeleteShader(vertexShader)
	defer f.DeleteShader(fragmentShader)

	program := f.CreateProgram()
	if program == 0 {
		return 0, errors.New("create program failed")
	}
	f.AttachShader(program, vertexShader)
	f.AttachShader(program, fragmentShader)
	f.LinkProgram(program)

	var status int32
	f.GetProgramiv(program, gl.LINK_STATUS, &status)
	f.DetachShader(program, vertexShader)
	f.DetachShader(program, fragmentShader)

	if status == gl.FALSE {
		var logLength int32
		f.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		f.GetProgramInfoLog(program, logLength, nil, &log[0])
		f.DeleteProgram(program)

		err := &ShaderError{Stage: "link", Log: trimLog(log)}
		spincube.Logger().Error("program link failed", "log", err.Log)
		return 0, err
	}
	return program, nil
}

// Program compiles both stages and links them.
func (c *Compiler) Program(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := c.Compile(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, err
	}
	fs, err := c.Compile(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		c.fns.DeleteShader(vs)
		return 0, err
	}
	return c.Link(vs, fs)
}

func trimLog(log []byte) string {
	return strings.TrimSpace(strings.TrimRight(string(log), "\x00"))
}
