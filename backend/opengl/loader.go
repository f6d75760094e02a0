package opengl

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-theft-auto/spincube"
)

var (
	// ErrMissingSymbol is returned when a required GL entry point cannot be resolved.
	ErrMissingSymbol = errors.New("missing GL symbol")
	// ErrLibraryNotFound is returned when no system GL library can be opened.
	ErrLibraryNotFound = errors.New("GL library not found")
)

// ProcAddressFunc is the platform extension query, e.g. glfw.GetProcAddress.
// It returns nil for unknown names.
type ProcAddressFunc func(name string) unsafe.Pointer

// Functions is the table of modern GL entry points used by the renderer.
// Every field is bound by Loader.Load.
type Functions struct {
	CreateShader     func(xtype uint32) uint32
	ShaderSource     func(shader uint32, count int32, str **uint8, length *int32)
	CompileShader    func(shader uint32)
	GetShaderiv      func(shader uint32, pname uint32, params *int32)
	GetShaderInfoLog func(shader uint32, bufSize int32, length *int32, infoLog *uint8)
	DeleteShader     func(shader uint32)

	CreateProgram     func() uint32
	AttachShader      func(program, shader uint32)
	DetachShader      func(program, shader uint32)
	LinkProgram       func(program uint32)
	GetProgramiv      func(program uint32, pname uint32, params *int32)
	GetProgramInfoLog func(program uint32, bufSize int32, length *int32, infoLog *uint8)
	UseProgram        func(program uint32)
	DeleteProgram     func(program uint32)

	GenBuffers    func(n int32, buffers *uint32)
	BindBuffer    func(target, buffer uint32)
	BufferData    func(target uint32, size int, data unsafe.Pointer, usage uint32)
	DeleteBuffers func(n int32, buffers *uint32)

	GenVertexArrays         func(n int32, arrays *uint32)
	BindVertexArray         func(array uint32)
	DeleteVertexArrays      func(n int32, arrays *uint32)
	VertexAttribPointer     func(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray func(index uint32)

	GetUniformLocation func(program uint32, name *uint8) int32
	UniformMatrix4fv   func(location int32, count int32, transpose bool, value *float32)
}

// symbol pairs a GL entry point name with the typed slot it is bound to.
type symbol struct {
	name string
	slot any // pointer to a func field of Functions
}

// symbols returns the fixed load order. Loading stops at the first miss.
func (f *Functions) symbols() []symbol {
	return []symbol{
		{"glCreateShader", &f.CreateShader},
		{"glShaderSource", &f.ShaderSource},
		{"glCompileShader", &f.CompileShader},
		{"glGetShaderiv", &f.GetShaderiv},
		{"glGetShaderInfoLog", &f.GetShaderInfoLog},
		{"glDeleteShader", &f.DeleteShader},
		{"glCreateProgram", &f.CreateProgram},
		{"glAttachShader", &f.AttachShader},
		{"glDetachShader", &f.DetachShader},
		{"glLinkProgram", &f.LinkProgram},
		{"glGetProgramiv", &f.GetProgramiv},
		{"glGetProgramInfoLog", &f.GetProgramInfoLog},
		{"glUseProgram", &f.UseProgram},
		{"glDeleteProgram", &f.DeleteProgram},
		{"glGenBuffers", &f.GenBuffers},
		{"glBindBuffer", &f.BindBuffer},
		{"glBufferData", &f.BufferData},
		{"glDeleteBuffers", &f.DeleteBuffers},
		{"glGenVertexArrays", &f.GenVertexArrays},
		{"glBindVertexArray", &f.BindVertexArray},
		{"glDeleteVertexArrays", &f.DeleteVertexArrays},
		{"glVertexAttribPointer", &f.VertexAttribPointer},
		{"glEnableVertexAttribArray", &f.EnableVertexAttribArray},
		{"glGetUniformLocation", &f.GetUniformLocation},
		{"glUniformMatrix4fv", &f.UniformMatrix4fv},
	}
}

// Loader opens the system GL library and resolves entry points, first
// through the platform extension query and then by direct symbol lookup.
// It is created once at startup and owned by the caller.
type Loader struct {
	ext ProcAddressFunc
	lib uintptr

	// Platform hooks. The defaults use purego; tests replace them.
	open     func() (uintptr, error)
	lookup   func(lib uintptr, name string) uintptr
	close    func(lib uintptr) error
	register func(fptr any, addr uintptr)

	fns *Functions
}

// NewLoader creates a loader using ext as the extension query.
// ext may be nil, in which case only direct symbol lookup is used.
func NewLoader(ext ProcAddressFunc) *Loader {
	return &Loader{
		ext:      ext,
		open:     openLibrary,
		lookup:   lookupSymbol,
		close:    closeLibrary,
		register: registerFunc,
	}
}

// Load opens the GL library and binds every entry point of Functions.
// The first unresolved symbol closes the library and fails the load.
// Calling Load again after a successful load returns the same table.
func (l *Loader) Load() (*Functions, error) {
	if l.fns != nil {
		return l.fns, nil
	}

	lib, err := l.open()
	if err != nil {
		return nil, err
	}
	l.lib = lib

	fns := &Functions{}
	for _, sym := range fns.symbols() {
		addr := l.resolve(sym.name)
		if addr == 0 {
			l.closeLib()
			return nil, fmt.Errorf("%w: %s", ErrMissingSymbol, sym.name)
		}
		l.register(sym.slot, addr)
	}

	l.fns = fns
	spincube.Logger().Debug("GL functions loaded", "count", len(fns.symbols()))
	return fns, nil
}

// ProcAddress resolves name the same way Load does. It is suitable for
// gl.InitWithProcAddrFunc.
func (l *Loader) ProcAddress(name string) unsafe.Pointer {
	addr := l.resolve(name)
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}

func (l *Loader) resolve(name string) uintptr {
	if l.ext != nil {
		if p := l.ext(name); p != nil {
			return uintptr(p)
		}
	}
	if l.lib == 0 {
		return 0
	}
	return l.lookup(l.lib, name)
}

// Close releases the GL library handle. It is safe to call more than once.
func (l *Loader) Close() error {
	return l.closeLib()
}

func (l *Loader) closeLib() error {
	if l.lib == 0 {
		return nil
	}
	lib := l.lib
	l.lib = 0
	if err := l.close(lib); err != nil {
		return fmt.Errorf("close GL library: %w", err)
	}
	return nil
}
