package raster

import "github.com/taigrr/softraster/pkg/math3d"

// UVec3 is a 3-component unsigned color the fragment stage returns;
// each component is intended to land in 0-255 and is clamped to that range
// before being packed into the color buffer, so a shader bug (a component
// outside [0,255]) cannot corrupt an adjacent channel.
type UVec3 struct {
	X, Y, Z uint32
}

// RGB is a convenience constructor for UVec3 from three uint8 channels.
func RGB(r, g, b uint8) UVec3 {
	return UVec3{uint32(r), uint32(g), uint32(b)}
}

func clampChannel(v uint32) uint32 {
	if v > 255 {
		return 255
	}
	return v
}

// pack converts a fragment's UVec3 into the framebuffer's 0x00RRGGBB
// encoding, clamping each channel to a byte first.
func pack(c UVec3) uint32 {
	r := clampChannel(c.X)
	g := clampChannel(c.Y)
	b := clampChannel(c.Z)
	return r<<16 | g<<8 | b
}

// Shader is the programmable unit the pipeline drives: Vertex runs once per
// input vertex and Fragment runs once per covered fragment. VIn is the
// caller's input vertex record; VOut is the caller's varying record, which
// must implement Barycentric[VOut] so the rasterizer can interpolate it.
//
// Uniform state (a transform matrix, a light direction, a bound texture)
// lives as fields on the concrete type implementing Shader; neither method
// is required to mutate the receiver, and the pipeline never does.
type Shader[VIn any, VOut Barycentric[VOut]] interface {
	// Vertex runs the vertex stage for a single input vertex, returning its
	// clip-space position and the varying record carried to the fragment
	// stage.
	Vertex(v *VIn) (math3d.Vec4, VOut)

	// Fragment runs the fragment stage for a single covered pixel, given
	// the varying record interpolated across the triangle (or line) at
	// that pixel.
	Fragment(v VOut) UVec3
}
