package models

// Material is a glTF-style PBR material: a base color, metallic/roughness
// scalars, and a flag for whether a base-color texture is present. It
// carries no texture data itself - a shader's Fragment method samples a
// raster.Texture looked up by whatever key the scene loader used to attach
// textures to materials.
type Material struct {
	Name       string
	BaseColor  [4]float64
	Metallic   float64
	Roughness  float64
	HasTexture bool
}

// MaterialCount returns the number of materials defined on the mesh.
func (m *Mesh) MaterialCount() int {
	return len(m.Materials)
}

// GetFaceMaterial returns the material index assigned to face i, or -1 if
// none.
func (m *Mesh) GetFaceMaterial(i int) int {
	return m.Faces[i].Material
}

// GetMaterial returns a pointer to the material at idx, or nil if idx is
// negative or out of range.
func (m *Mesh) GetMaterial(idx int) *Material {
	if idx < 0 || idx >= len(m.Materials) {
		return nil
	}
	return &m.Materials[idx]
}
