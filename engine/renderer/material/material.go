// Package material holds the shading state shared by every draw: the per-room display effects,
// the built-in cube mesh and the GPU layouts the renderer uploads them with.
package material

// Effects are the display parameters applied to the whole frame.
// Blur is not part of the set; the renderer has a single pass.
type Effects struct {
	Brightness     float32
	Contrast       float32
	BloomThreshold float32
	BloomIntensity float32
	CelBands       float32
}

// NeutralEffects returns Effects that leave the lit color unchanged.
//
// Returns:
//   - Effects: zero brightness, unit contrast, bloom above full white and no banding
func NeutralEffects() Effects {
	return Effects{Contrast: 1, BloomThreshold: 1}
}

// VertexStride is the byte size of one mesh vertex: position then normal.
const VertexStride = 24

// CubeVertexCount is the number of non-indexed vertices in the unit cube mesh.
const CubeVertexCount = 36

type face struct {
	normal [3]float32
	u, v   [3]float32
}

// cubeFaces lists each face by outward normal and two in-plane axes chosen so u x v = normal,
// which keeps every triangle counter-clockwise seen from outside.
var cubeFaces = [6]face{
	{normal: [3]float32{1, 0, 0}, u: [3]float32{0, 1, 0}, v: [3]float32{0, 0, 1}},
	{normal: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 1, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{1, 0, 0}},
	{normal: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	{normal: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 0, -1}, u: [3]float32{0, 1, 0}, v: [3]float32{1, 0, 0}},
}

// CubeVertices returns the unit cube centered on the origin as interleaved position/normal
// floats, two triangles per face.
//
// Returns:
//   - []float32: CubeVertexCount * 6 floats
func CubeVertices() []float32 {
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}
	out := make([]float32, 0, CubeVertexCount*6)
	for _, f := range cubeFaces {
		for _, c := range corners {
			for axis := range 3 {
				p := 0.5*f.normal[axis] + 0.5*c[0]*f.u[axis] + 0.5*c[1]*f.v[axis]
				out = append(out, p)
			}
			out = append(out, f.normal[:]...)
		}
	}
	return out
}
