package spincube

import (
	"errors"
	"fmt"
)

// ErrInvalidMesh is returned when mesh data does not match its layout.
var ErrInvalidMesh = errors.New("invalid mesh")

const floatSize = 4

// Attribute describes one vertex attribute inside an interleaved buffer.
type Attribute struct {
	Index  uint32  // shader location
	Size   int32   // component count
	Offset uintptr // byte offset inside a vertex
}

// Layout describes how vertex data is laid out in the vertex buffer.
type Layout struct {
	Stride     int32 // bytes per vertex
	Attributes []Attribute
}

// Mesh is a static, flat vertex array with an optional index buffer.
// It is uploaded once and never mutated.
type Mesh struct {
	Name     string
	Vertices []float32
	Indices  []uint32
	Layout   Layout
}

// DrawCall is the single draw issued per frame for a mesh.
type DrawCall struct {
	Indexed bool
	Count   int32 // indices when Indexed, vertices otherwise
}

// Triangles returns the number of triangles covered by the draw call.
func (d DrawCall) Triangles() int {
	return int(d.Count) / 3
}

// Indexed returns true if the mesh carries an index buffer.
func (m Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// VertexCount returns the number of vertices in the vertex buffer.
func (m Mesh) VertexCount() int {
	if m.Layout.Stride <= 0 {
		return 0
	}
	return len(m.Vertices) * floatSize / int(m.Layout.Stride)
}

// VertexBytes returns the size of the vertex buffer in bytes.
func (m Mesh) VertexBytes() int {
	return len(m.Vertices) * floatSize
}

// IndexBytes returns the size of the index buffer in bytes.
func (m Mesh) IndexBytes() int {
	return len(m.Indices) * 4
}

// DrawCall returns the draw covering the entire mesh.
func (m Mesh) DrawCall() DrawCall {
	if m.Indexed() {
		return DrawCall{Indexed: true, Count: int32(len(m.Indices))}
	}
	return DrawCall{Count: int32(m.VertexCount())}
}

// Validate checks that vertex data, layout and indices agree.
func (m Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("%w: %s: no vertices", ErrInvalidMesh, m.Name)
	}
	if m.Layout.Stride <= 0 || m.Layout.Stride%floatSize != 0 {
		return fmt.Errorf("%w: %s: stride %d", ErrInvalidMesh, m.Name, m.Layout.Stride)
	}
	if m.VertexBytes()%int(m.Layout.Stride) != 0 {
		return fmt.Errorf("%w: %s: %d floats do not fill whole vertices", ErrInvalidMesh, m.Name, len(m.Vertices))
	}
	if len(m.Layout.Attributes) == 0 {
		return fmt.Errorf("%w: %s: no attributes", ErrInvalidMesh, m.Name)
	}
	for _, a := range m.Layout.Attributes {
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("%w: %s: attribute %d has %d components", ErrInvalidMesh, m.Name, a.Index, a.Size)
		}
		if int(a.Offset)+int(a.Size)*floatSize > int(m.Layout.Stride) {
			return fmt.Errorf("%w: %s: attribute %d overruns stride", ErrInvalidMesh, m.Name, a.Index)
		}
	}
	if m.DrawCall().Count%3 != 0 {
		return fmt.Errorf("%w: %s: %d elements is not a triangle list", ErrInvalidMesh, m.Name, m.DrawCall().Count)
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: %s: index %d at %d out of range", ErrInvalidMesh, m.Name, idx, i)
		}
	}
	return nil
}

// TriangleMesh returns a single position-only triangle.
func TriangleMesh() Mesh {
	return Mesh{
		Name: "triangle",
		Vertices: []float32{
			-1, -1, 0,
			1, -1, 0,
			0, 1, 0,
		},
		Layout: Layout{
			Stride:     3 * floatSize,
			Attributes: []Attribute{{Index: 0, Size: 3, Offset: 0}},
		},
	}
}

// CubeMesh returns a unit cube with per-vertex colour: 8 shared vertices
// and 36 indices forming 12 triangles.
func CubeMesh() Mesh {
	return Mesh{
		Name: "cube",
		Vertices: []float32{
			// position        colour
			-0.5, -0.5, -0.5, 1, 0, 0,
			0.5, -0.5, -0.5, 0, 1, 0,
			0.5, 0.5, -0.5, 0, 0, 1,
			-0.5, 0.5, -0.5, 1, 1, 0,
			-0.5, -0.5, 0.5, 1, 0, 1,
			0.5, -0.5, 0.5, 0, 1, 1,
			0.5, 0.5, 0.5, 1, 1, 1,
			-0.5, 0.5, 0.5, 0, 0, 0,
		},
		Indices: []uint32{
			0, 1, 2, 2, 3, 0, // back
			4, 5, 6, 6, 7, 4, // front
			0, 4, 7, 7, 3, 0, // left
			1, 5, 6, 6, 2, 1, // right
			3, 2, 6, 6, 7, 3, // top
			0, 1, 5, 5, 4, 0, // bottom
		},
		Layout: Layout{
			Stride: 6 * floatSize,
			Attributes: []Attribute{
				{Index: 0, Size: 3, Offset: 0},
				{Index: 1, Size: 3, Offset: 3 * floatSize},
			},
		},
	}
}
