package raster

import "github.com/taigrr/softraster/pkg/math3d"

// DrawMode selects how Draw rasterizes each clipped triangle.
type DrawMode int

const (
	// ModeFilled rasterizes solid, depth-tested triangles (the default).
	ModeFilled DrawMode = iota
	// ModeWireframe draws the three edges of each triangle as lines, with
	// no depth test.
	ModeWireframe
)

// Renderer owns the color and depth buffers and the screen-space matrix
// derived from their dimensions. It carries no notion of a scene graph or
// camera; Draw is the only entry point, and everything above it (meshes,
// cameras, materials) is a collaborator built on top, not part of the
// renderer itself.
type Renderer struct {
	color  *Framebuffer[uint32]
	depth  *Framebuffer[float64]
	mode   DrawMode
	screen math3d.Mat4
}

// NewRenderer allocates a Renderer for the given pixel dimensions, with the
// depth buffer cleared to the far value (1.0) and the color buffer cleared
// to black.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		color: NewFramebuffer[uint32](width, height),
		depth: NewFramebuffer[float64](width, height),
		mode:  ModeFilled,
	}
	r.depth.Fill(1)
	r.screen = screenMatrix(width, height)
	return r
}

// screenMatrix builds the NDC-to-pixel transform: x,y in [-1,1] map to
// [0,width-1]/[0,height-1], z passes through unchanged, and the result is
// meant to be applied to (ndc.X, ndc.Y, ndc.Z, 1).
func screenMatrix(width, height int) math3d.Mat4 {
	hw := float64(width-1) / 2
	hh := float64(height-1) / 2
	return math3d.Mat4{
		hw, 0, 0, 0,
		0, hh, 0, 0,
		0, 0, 1, 0,
		hw, hh, 0, 1,
	}
}

// Resize reallocates both buffers and recomputes the screen matrix. Existing
// contents are discarded.
func (r *Renderer) Resize(width, height int) {
	r.color.Resize(width, height, 0)
	r.depth.Resize(width, height, 1)
	r.screen = screenMatrix(width, height)
}

// Clear fills the color buffer with c and resets the depth buffer to the far
// value, ready for the next frame.
func (r *Renderer) Clear(c uint32) {
	r.color.Fill(c)
	r.depth.Fill(1)
}

// SetMode selects filled or wireframe rasterization for subsequent Draw
// calls.
func (r *Renderer) SetMode(mode DrawMode) { r.mode = mode }

// Mode returns the current draw mode.
func (r *Renderer) Mode() DrawMode { return r.mode }

// Color returns the renderer's color framebuffer.
func (r *Renderer) Color() *Framebuffer[uint32] { return r.color }

// Depth returns the renderer's depth framebuffer.
func (r *Renderer) Depth() *Framebuffer[float64] { return r.depth }

// Width returns the color/depth buffer width.
func (r *Renderer) Width() int { return r.color.Width() }

// Height returns the color/depth buffer height.
func (r *Renderer) Height() int { return r.color.Height() }

func (r *Renderer) toScreen(clip math3d.Vec4) (math3d.Vec2, float64) {
	invW := 1 / clip.W
	ndc := math3d.V4(clip.X*invW, clip.Y*invW, clip.Z*invW, 1)
	screen := r.screen.MulVec4(ndc)
	return math3d.V2(screen.X, screen.Y), ndc.Z
}

// Draw runs the full pipeline over an indexed vertex buffer: the vertex
// stage, homogeneous clipping, the perspective divide and screen-space
// transform, and finally the triangle or line rasterizer selected by the
// renderer's mode. Index triples are consumed three at a time; a trailing
// partial triple (len(indices) not a multiple of 3) is ignored.
//
// Draw is a free function, not a method, because Go does not allow a method
// to introduce type parameters beyond its receiver's.
func Draw[VIn any, VOut Barycentric[VOut]](r *Renderer, shader Shader[VIn, VOut], vertices []VIn, indices []uint32) {
	triCount := len(indices) / 3
	for t := 0; t < triCount; t++ {
		i0 := indices[t*3+0]
		i1 := indices[t*3+1]
		i2 := indices[t*3+2]

		var clipPos [3]math3d.Vec4
		var vary [3]VOut
		clipPos[0], vary[0] = shader.Vertex(&vertices[i0])
		clipPos[1], vary[1] = shader.Vertex(&vertices[i1])
		clipPos[2], vary[2] = shader.Vertex(&vertices[i2])

		tris, varyings := ClipTriangle(clipPos, vary)
		for i, tri := range tris {
			var screenPos [3]math3d.Vec2
			var z [3]float64
			for k := 0; k < 3; k++ {
				screenPos[k], z[k] = r.toScreen(tri[k])
			}

			switch r.mode {
			case ModeWireframe:
				rasterizeLine(r, screenPos[0], screenPos[1], varyings[i][0], varyings[i][1], shader.Fragment)
				rasterizeLine(r, screenPos[1], screenPos[2], varyings[i][1], varyings[i][2], shader.Fragment)
				rasterizeLine(r, screenPos[2], screenPos[0], varyings[i][2], varyings[i][0], shader.Fragment)
			default:
				rasterizeTriangle(r, screenPos, z, varyings[i], shader.Fragment)
			}
		}
	}
}
