package opengl

var libraryNames = []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}
