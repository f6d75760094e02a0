/*
Package spincube renders a single rotating mesh with a modern OpenGL pipeline.

# Overview

The package holds the platform-free half of the program: the compiled-in
configurations, the mesh data, the closed-form transform matrices and the
frame loop. The GL half (symbol loader, shader compiler, geometry upload,
window and context) lives in backend/opengl.

Two configurations share the same core:

  - CubeConfig: an indexed cube (8 vertices, 36 indices) with per-vertex
    colour, embedded shaders and depth testing.
  - TriangleConfig: one position-only triangle, shaders read from
    SimpleVertexShader.vert and SimpleFragmentShader.frag in the working
    directory, colour clear only. The triangle does not rotate.

# Quick Start

	cfg := spincube.CubeConfig()
	if err := opengl.Run(cfg); err != nil {
	    fmt.Fprintln(os.Stderr, "Error:", err)
	    os.Exit(1)
	}

# Frame Loop

Each iteration drains pending events, stops on a quit request or Escape,
advances the angle by RotationRate * deltaTime, rebuilds the model, view and
projection matrices, draws once and swaps buffers. A stop observed while
draining events ends the loop before anything else is drawn.

# Matrices

All matrices are mgl32.Mat4 values in column-major order:

	Perspective: f = 1/tan(fovY/2)
	  [f/aspect 0  0                        0                         ]
	  [0        f  0                        0                         ]
	  [0        0  -(far+near)/(far-near)  -2*far*near/(far-near)     ]
	  [0        0  -1                       0                         ]

	View:  translation by (0, 0, -Distance)
	Model: rotation about Y by the current angle
*/
package spincube
