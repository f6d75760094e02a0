package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/spincube"
)

// Geometry owns the VAO and buffers of one uploaded mesh.
type Geometry struct {
	fns  *Functions
	vao  uint32
	vbo  uint32
	ebo  uint32
	draw spincube.DrawCall
}

// UploadMesh creates the VAO, uploads vertex (and index) data once and
// registers the attribute layout.
func UploadMesh(fns *Functions, m spincube.Mesh) (*Geometry, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	g := &Geometry{fns: fns, draw: m.DrawCall()}

	fns.GenVertexArrays(1, &g.vao)
	fns.BindVertexArray(g.vao)

	fns.GenBuffers(1, &g.vbo)
	fns.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	fns.BufferData(gl.ARRAY_BUFFER, m.VertexBytes(), gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	// The element buffer binding is recorded in the VAO.
	if m.Indexed() {
		fns.GenBuffers(1, &g.ebo)
		fns.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
		fns.BufferData(gl.ELEMENT_ARRAY_BUFFER, m.IndexBytes(), gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	for _, a := range m.Layout.Attributes {
		fns.VertexAttribPointer(a.Index, a.Size, gl.FLOAT, false, m.Layout.Stride, a.Offset)
		fns.EnableVertexAttribArray(a.Index)
	}

	fns.BindVertexArray(0)

	spincube.Logger().Debug("mesh uploaded",
		"mesh", m.Name,
		"vertices", m.VertexCount(),
		"indices", len(m.Indices),
		"triangles", g.draw.Triangles())
	return g, nil
}

// DrawCall returns the draw issued by Draw.
func (g *Geometry) DrawCall() spincube.DrawCall {
	return g.draw
}

// Bind binds the VAO.
func (g *Geometry) Bind() {
	g.fns.BindVertexArray(g.vao)
}

// Draw issues one draw call over the whole mesh. The VAO must be bound.
func (g *Geometry) Draw() {
	if g.draw.Indexed {
		gl.DrawElements(gl.TRIANGLES, g.draw.Count, gl.UNSIGNED_INT, nil)
		return
	}
	gl.DrawArrays(gl.TRIANGLES, 0, g.draw.Count)
}

// Delete releases the buffers and VAO. It is safe to call more than once.
func (g *Geometry) Delete() {
	if g.ebo != 0 {
		g.fns.DeleteBuffers(1, &g.ebo)
		g.ebo = 0
	}
	if g.vbo != 0 {
		g.fns.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		g.fns.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}
