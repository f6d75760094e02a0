package opengl

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLibrary stands in for dlopen/dlsym/dlclose.
type fakeLibrary struct {
	symbols map[string]uintptr
	openErr error

	opened  int
	closed  int
	lookups []string
	bound   []uintptr
}

func newFakeLibrary(missing ...string) *fakeLibrary {
	lib := &fakeLibrary{symbols: make(map[string]uintptr)}
	for i, sym := range (&Functions{}).symbols() {
		lib.symbols[sym.name] = uintptr(0x1000 + i*0x10)
	}
	for _, name := range missing {
		delete(lib.symbols, name)
	}
	return lib
}

func (lib *fakeLibrary) loader(ext ProcAddressFunc) *Loader {
	l := NewLoader(ext)
	l.open = func() (uintptr, error) {
		if lib.openErr != nil {
			return 0, lib.openErr
		}
		lib.opened++
		return 0xdead, nil
	}
	l.lookup = func(_ uintptr, name string) uintptr {
		lib.lookups = append(lib.lookups, name)
		return lib.symbols[name]
	}
	l.close = func(uintptr) error {
		lib.closed++
		return nil
	}
	l.register = func(_ any, addr uintptr) {
		lib.bound = append(lib.bound, addr)
	}
	return l
}

func TestSymbolTableCoversFunctions(t *testing.T) {
	fns := &Functions{}
	syms := fns.symbols()

	v := reflect.ValueOf(fns).Elem()
	require.Equal(t, v.NumField(), len(syms), "every Functions field needs a symbol")

	slots := make(map[uintptr]string)
	names := make(map[string]bool)
	for _, sym := range syms {
		assert.True(t, strings.HasPrefix(sym.name, "gl"), sym.name)
		assert.False(t, names[sym.name], "duplicate symbol %s", sym.name)
		names[sym.name] = true
		slots[reflect.ValueOf(sym.slot).Pointer()] = sym.name
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		name, ok := slots[v.Field(i).Addr().Pointer()]
		if assert.True(t, ok, "field %s has no symbol", field.Name) {
			assert.Equal(t, "gl"+field.Name, name)
		}
	}
}

func TestLoadResolvesEveryEntryPoint(t *testing.T) {
	lib := newFakeLibrary()
	l := lib.loader(nil)

	fns, err := l.Load()
	require.NoError(t, err)
	require.NotNil(t, fns)

	n := len(fns.symbols())
	assert.Len(t, lib.bound, n)
	assert.Len(t, lib.lookups, n)
	assert.Equal(t, 1, lib.opened)
	assert.Zero(t, lib.closed)
}

func TestLoadPrefersExtensionQuery(t *testing.T) {
	var target byte
	ext := func(name string) unsafe.Pointer {
		if name == "glCreateShader" {
			return unsafe.Pointer(&target)
		}
		return nil
	}
	lib := newFakeLibrary("glCreateShader")
	l := lib.loader(ext)

	_, err := l.Load()
	require.NoError(t, err)
	assert.NotContains(t, lib.lookups, "glCreateShader")
	assert.Equal(t, uintptr(unsafe.Pointer(&target)), lib.bound[0])
}

func TestLoadFailsFastOnFirstMissing(t *testing.T) {
	lib := newFakeLibrary("glLinkProgram", "glUniformMatrix4fv")
	l := lib.loader(nil)

	fns, err := l.Load()
	assert.Nil(t, fns)
	require.ErrorIs(t, err, ErrMissingSymbol)
	assert.Contains(t, err.Error(), "glLinkProgram")
	assert.NotContains(t, err.Error(), "glUniformMatrix4fv")

	// Nothing after the missing symbol is looked up, and the library is closed.
	assert.Equal(t, "glLinkProgram", lib.lookups[len(lib.lookups)-1])
	assert.Len(t, lib.bound, len(lib.lookups)-1)
	assert.Equal(t, 1, lib.closed)

	// Closing again is a no-op.
	require.NoError(t, l.Close())
	assert.Equal(t, 1, lib.closed)
}

func TestLoadOpenFailure(t *testing.T) {
	lib := newFakeLibrary()
	lib.openErr = ErrLibraryNotFound
	l := lib.loader(nil)

	_, err := l.Load()
	assert.ErrorIs(t, err, ErrLibraryNotFound)
	assert.Empty(t, lib.lookups)
	assert.Zero(t, lib.closed)
}

func TestLoadOnce(t *testing.T) {
	lib := newFakeLibrary()
	l := lib.loader(nil)

	first, err := l.Load()
	require.NoError(t, err)
	second, err := l.Load()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, lib.opened)
	assert.Len(t, lib.bound, len(first.symbols()))
}

func TestProcAddress(t *testing.T) {
	lib := newFakeLibrary()
	l := lib.loader(nil)

	// Before the library is open only the extension query can answer.
	assert.Nil(t, l.ProcAddress("glClear"))

	lib.symbols["glClear"] = 0x4242
	_, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, uintptr(0x4242), uintptr(l.ProcAddress("glClear")))
	assert.Nil(t, l.ProcAddress("glNoSuchFunction"))
}

func TestCloseReportsError(t *testing.T) {
	lib := newFakeLibrary()
	l := lib.loader(nil)
	l.close = func(uintptr) error { return errors.New("busy") }

	_, err := l.Load()
	require.NoError(t, err)

	err = l.Close()
	assert.ErrorContains(t, err, "busy")
	assert.NoError(t, l.Close())
}
