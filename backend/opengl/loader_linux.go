package opengl

// libraryNames are tried in order. The versioned soname is what the GL
// vendor dispatch installs; the bare name only exists with dev packages.
var libraryNames = []string{"libGL.so.1", "libGL.so"}
