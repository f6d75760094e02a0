//go:build !darwin && !linux

package opengl

import (
	"errors"
	"runtime"
)

func openLibrary() (uintptr, error) {
	return 0, errors.Join(ErrLibraryNotFound, errors.New("unsupported platform "+runtime.GOOS))
}

func lookupSymbol(lib uintptr, name string) uintptr { return 0 }

func closeLibrary(lib uintptr) error { return nil }

func registerFunc(fptr any, addr uintptr) {}
