package viewport

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/flycam/internal/engine/shader"
	"github.com/Faultbox/flycam/pkg/math"
)

// LineVertex is a colored line endpoint.
type LineVertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

var (
	gridColor  = [3]float32{0.35, 0.35, 0.4}
	majorColor = [3]float32{0.55, 0.55, 0.6}
	axisX      = [3]float32{0.9, 0.2, 0.2}
	axisY      = [3]float32{0.2, 0.9, 0.2}
	axisZ      = [3]float32{0.2, 0.4, 0.95}
)

func line(a, b math.Vec3, c [3]float32) []LineVertex {
	return []LineVertex{
		{a.X, a.Y, a.Z, c[0], c[1], c[2]},
		{b.X, b.Y, b.Z, c[0], c[1], c[2]},
	}
}

// GenerateGrid returns line vertices for a square ground grid on the XZ
// plane spanning [-halfCells, halfCells] cells, with every majorEvery-th
// line highlighted. The lines through the origin are replaced by the X and
// Z axes, and a Y axis of the same length is added.
func GenerateGrid(halfCells int, cellSize float32, majorEvery int) []LineVertex {
	if halfCells <= 0 || cellSize <= 0 {
		return nil
	}

	extent := float32(halfCells) * cellSize
	vertices := make([]LineVertex, 0, (4*halfCells+2)*2+6)

	for i := -halfCells; i <= halfCells; i++ {
		if i == 0 {
			continue
		}
		c := gridColor
		if majorEvery > 0 && i%majorEvery == 0 {
			c = majorColor
		}
		p := float32(i) * cellSize
		vertices = append(vertices, line(math.Vec3{X: p, Z: -extent}, math.Vec3{X: p, Z: extent}, c)...)
		vertices = append(vertices, line(math.Vec3{X: -extent, Z: p}, math.Vec3{X: extent, Z: p}, c)...)
	}

	vertices = append(vertices, line(math.Vec3{X: -extent}, math.Vec3{X: extent}, axisX)...)
	vertices = append(vertices, line(math.Vec3{}, math.Vec3{Y: extent}, axisY)...)
	vertices = append(vertices, line(math.Vec3{Z: -extent}, math.Vec3{Z: extent}, axisZ)...)

	return vertices
}

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vColor;

void main() {
	gl_Position = uProjection * uView * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const lineFragmentShader = `
#version 410 core

in vec3 vColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(vColor, 1.0);
}
`

// gridRenderer uploads a static line grid and draws it with the camera matrices.
type gridRenderer struct {
	program  uint32
	uniforms shader.CameraUniforms
	vao      uint32
	vbo      uint32
	count    int32
}

func newGridRenderer(vertices []LineVertex) (*gridRenderer, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("empty grid")
	}

	program, err := shader.CompileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("grid shader: %w", err)
	}

	g := &gridRenderer{
		program:  program,
		uniforms: shader.LookupCameraUniforms(program),
		count:    int32(len(vertices)),
	}

	stride := int32(unsafe.Sizeof(LineVertex{}))

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(stride), unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return g, nil
}

func (g *gridRenderer) draw(view, projection math.Mat4) {
	gl.UseProgram(g.program)
	g.uniforms.Upload(view, projection)
	gl.BindVertexArray(g.vao)
	gl.DrawArrays(gl.LINES, 0, g.count)
	gl.BindVertexArray(0)
}

func (g *gridRenderer) close() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.program != 0 {
		gl.DeleteProgram(g.program)
	}
}
