//go:build darwin || linux

package opengl

import (
	"errors"
	"fmt"

	"github.com/ebitengine/purego"
)

func openLibrary() (uintptr, error) {
	var errs []error
	for _, name := range libraryNames {
		lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return lib, nil
		}
		errs = append(errs, err)
	}
	return 0, fmt.Errorf("%w: %w", ErrLibraryNotFound, errors.Join(errs...))
}

func lookupSymbol(lib uintptr, name string) uintptr {
	addr, err := purego.Dlsym(lib, name)
	if err != nil {
		return 0
	}
	return addr
}

func closeLibrary(lib uintptr) error {
	return purego.Dlclose(lib)
}

func registerFunc(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}
