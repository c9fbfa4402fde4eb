package main

import (
	"math"

	"github.com/taigrr/softraster/pkg/math3d"
	"github.com/taigrr/softraster/pkg/models"
	"github.com/taigrr/softraster/pkg/raster"
)

// meshVarying is the varying record carried from meshShader's Vertex stage
// to its Fragment stage: enough to light and (optionally) texture a
// fragment. It implements raster.Barycentric[meshVarying] by interpolating
// each field independently.
type meshVarying struct {
	Normal math3d.Vec3
	UV     math3d.Vec2
}

func (a meshVarying) Interpolated(lambda math3d.Vec3, b, c meshVarying) meshVarying {
	return meshVarying{
		Normal: a.Normal.Interpolated(lambda, b.Normal, c.Normal),
		UV:     a.UV.Interpolated(lambda, b.UV, c.UV),
	}
}

func (a meshVarying) LineInterpolated(mu math3d.Vec2, b meshVarying) meshVarying {
	return meshVarying{
		Normal: a.Normal.LineInterpolated(mu, b.Normal),
		UV:     a.UV.LineInterpolated(mu, b.UV),
	}
}

// meshShader turns a models.MeshVertex buffer into shaded fragments. The
// three render modes the viewer offers (wireframe, flat, textured Gouraud)
// are all this one shader with different uniform settings, rather than
// three shader types, since only Fragment's color decision changes between
// them.
type meshShader struct {
	Transform  math3d.Mat4
	Camera     *raster.Camera
	LightDir   math3d.Vec3
	Texture    *raster.Texture
	UseTexture bool
	FlatColor  raster.Color
	WireColor  raster.UVec3
	Wireframe  bool
}

func (s *meshShader) Vertex(v *models.MeshVertex) (math3d.Vec4, meshVarying) {
	world := s.Transform.MulVec3(v.Position)
	normal := s.Transform.MulVec3Dir(v.Normal).Normalize()
	clip := s.Camera.ClipPosition(world)
	return clip, meshVarying{Normal: normal, UV: v.UV}
}

func (s *meshShader) Fragment(v meshVarying) raster.UVec3 {
	if s.Wireframe {
		return s.WireColor
	}

	n := v.Normal.Normalize()
	diffuse := math.Max(0, n.Dot(s.LightDir))
	intensity := 0.2 + diffuse*0.8

	base := s.FlatColor
	if s.UseTexture && s.Texture != nil {
		base = s.Texture.Sample(v.UV.X, v.UV.Y)
	}

	return raster.MultiplyColor(base, intensity).ToUVec3()
}
