// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// MeshKind selects which built-in mesh a drawable surface is rendered with.
type MeshKind int

const (
	// MeshCube is a unit cube centered on the origin. Walls, floors, pillars and paintings use it.
	MeshCube MeshKind = iota

	// MeshSphere is a unit-diameter sphere. The renderer approximates it with the cube mesh.
	MeshSphere
)

// Appearance is the appearance handle carried by every drawable object.
// It names the mesh to draw and the material parameters the renderer needs.
type Appearance struct {
	// Mesh is the built-in mesh used to draw the object.
	Mesh MeshKind

	// Tint is the RGBA base color.
	Tint [4]float32

	// Emissive adds unlit brightness on top of the lit color (0 = fully lit, 1 = fully emissive).
	Emissive float32
}

// NewAppearance returns an opaque cube Appearance with the given RGB tint.
//
// Parameters:
//   - r, g, b: tint color components in [0, 1]
//
// Returns:
//   - Appearance: the appearance handle
func NewAppearance(r, g, b float32) Appearance {
	return Appearance{Mesh: MeshCube, Tint: [4]float32{r, g, b, 1}}
}

// WithMesh returns a copy of the Appearance using a different mesh.
func (a Appearance) WithMesh(m MeshKind) Appearance {
	a.Mesh = m
	return a
}

// WithEmissive returns a copy of the Appearance with the given emissive strength.
func (a Appearance) WithEmissive(e float32) Appearance {
	a.Emissive = e
	return a
}
