package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// fakeGL records the calls made through a Functions table and hands out
// increasing object names. Compile and link results are scripted.
type fakeGL struct {
	next uint32

	failStage  uint32 // shader stage whose compile fails, 0 for none
	compileLog string
	failLink   bool
	linkLog    string
	noProgram  bool

	shaders         map[uint32]uint32 // shader -> stage
	deletedShaders  []uint32
	programs        []uint32
	deletedPrograms []uint32
	detached        []uint32

	vaos          []uint32
	buffers       []uint32
	bufferTargets []uint32
	bufferSizes   []int
	attributes    []uint32
	strides       []int32
	enabled       []uint32
	boundVAOs     []uint32

	deletedBuffers []uint32
	deletedVAOs    []uint32
}

func newFakeGL() *fakeGL {
	return &fakeGL{shaders: make(map[uint32]uint32)}
}

func (g *fakeGL) name() uint32 {
	g.next++
	return g.next
}

func copyLog(dst *uint8, bufSize int32, log string) {
	if bufSize <= 0 {
		return
	}
	copy(unsafe.Slice(dst, bufSize), log)
}

func (g *fakeGL) functions() *Functions {
	return &Functions{
		CreateShader: func(stage uint32) uint32 {
			s := g.name()
			g.shaders[s] = stage
			return s
		},
		ShaderSource:  func(uint32, int32, **uint8, *int32) {},
		CompileShader: func(uint32) {},
		GetShaderiv: func(shader uint32, pname uint32, params *int32) {
			failed := g.shaders[shader] == g.failStage
			switch pname {
			case gl.COMPILE_STATUS:
				*params = gl.TRUE
				if failed {
					*params = gl.FALSE
				}
			case gl.INFO_LOG_LENGTH:
				*params = 0
				if failed {
					*params = int32(len(g.compileLog) + 1)
				}
			}
		},
		GetShaderInfoLog: func(_ uint32, bufSize int32, _ *int32, infoLog *uint8) {
			copyLog(infoLog, bufSize, g.compileLog)
		},
		DeleteShader: func(shader uint32) {
			g.deletedShaders = append(g.deletedShaders, shader)
		},

		CreateProgram: func() uint32 {
			if g.noProgram {
				return 0
			}
			p := g.name()
			g.programs = append(g.programs, p)
			return p
		},
		AttachShader: func(uint32, uint32) {},
		DetachShader: func(_, shader uint32) {
			g.detached = append(g.detached, shader)
		},
		LinkProgram: func(uint32) {},
		GetProgramiv: func(_ uint32, pname uint32, params *int32) {
			switch pname {
			case gl.LINK_STATUS:
				*params = gl.TRUE
				if g.failLink {
					*params = gl.FALSE
				}
			case gl.INFO_LOG_LENGTH:
				*params = int32(len(g.linkLog) + 1)
			}
		},
		GetProgramInfoLog: func(_ uint32, bufSize int32, _ *int32, infoLog *uint8) {
			copyLog(infoLog, bufSize, g.linkLog)
		},
		UseProgram: func(uint32) {},
		DeleteProgram: func(program uint32) {
			g.deletedPrograms = append(g.deletedPrograms, program)
		},

		GenBuffers: func(n int32, buffers *uint32) {
			out := unsafe.Slice(buffers, n)
			for i := range out {
				out[i] = g.name()
				g.buffers = append(g.buffers, out[i])
			}
		},
		BindBuffer: func(uint32, uint32) {},
		BufferData: func(target uint32, size int, _ unsafe.Pointer, _ uint32) {
			g.bufferTargets = append(g.bufferTargets, target)
			g.bufferSizes = append(g.bufferSizes, size)
		},
		DeleteBuffers: func(n int32, buffers *uint32) {
			g.deletedBuffers = append(g.deletedBuffers, unsafe.Slice(buffers, n)...)
		},

		GenVertexArrays: func(n int32, arrays *uint32) {
			out := unsafe.Slice(arrays, n)
			for i := range out {
				out[i] = g.name()
				g.vaos = append(g.vaos, out[i])
			}
		},
		BindVertexArray: func(array uint32) {
			g.boundVAOs = append(g.boundVAOs, array)
		},
		DeleteVertexArrays: func(n int32, arrays *uint32) {
			g.deletedVAOs = append(g.deletedVAOs, unsafe.Slice(arrays, n)...)
		},
		VertexAttribPointer: func(index uint32, _ int32, _ uint32, _ bool, stride int32, _ uintptr) {
			g.attributes = append(g.attributes, index)
			g.strides = append(g.strides, stride)
		},
		EnableVertexAttribArray: func(index uint32) {
			g.enabled = append(g.enabled, index)
		},

		GetUniformLocation: func(uint32, *uint8) int32 { return -1 },
		UniformMatrix4fv:   func(int32, int32, bool, *float32) {},
	}
}
