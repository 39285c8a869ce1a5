package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// MaxGPULights is the maximum number of lights marshaled into the renderer's light
// storage buffer per frame. Lights beyond the budget are dropped in list order.
const MaxGPULights = 64

// GPULight is the GPU-aligned representation of a single light source.
// Matches the WGSL Light struct in the renderer's shader.
// Size: 64 bytes (std430 / WGSL aligned).
type GPULight struct {
	Position   [3]float32 // offset  0: world-space position (point/spot) or unused (directional)
	LightType  uint32     // offset 12: 0 = directional, 1 = point, 2 = spot
	Color      [3]float32 // offset 16: RGB color
	Intensity  float32    // offset 28: scalar multiplier
	Direction  [3]float32 // offset 32: normalized direction (directional/spot) or unused (point)
	LightRange float32    // offset 44: attenuation cutoff distance
	InnerCone  float32    // offset 48: cos(inner half-angle) for spot
	OuterCone  float32    // offset 52: cos(outer half-angle) for spot
	_pad       [2]uint32  // offset 56: padding to 64-byte alignment
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 64)
	putF32s(buf[0:12], g.Position[:]...)
	binary.LittleEndian.PutUint32(buf[12:16], g.LightType)
	putF32s(buf[16:32], g.Color[0], g.Color[1], g.Color[2], g.Intensity)
	putF32s(buf[32:56], g.Direction[0], g.Direction[1], g.Direction[2], g.LightRange, g.InnerCone, g.OuterCone)
	return buf
}

// GPULightHeader is the header prepended to the light storage buffer.
// Contains the ambient color and the active light count.
// Size: 16 bytes (vec3 + u32, std430 aligned).
type GPULightHeader struct {
	AmbientColor [3]float32 // offset 0: scene ambient RGB
	LightCount   uint32     // offset 12: number of active lights following the header
}

// Size returns the size of the GPULightHeader struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (h *GPULightHeader) Size() int {
	return int(unsafe.Sizeof(*h))
}

// Marshal serializes the GPULightHeader struct into a byte buffer suitable for
// GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (h *GPULightHeader) Marshal() []byte {
	buf := make([]byte, 16)
	putF32s(buf[0:12], h.AmbientColor[:]...)
	binary.LittleEndian.PutUint32(buf[12:16], h.LightCount)
	return buf
}

// ToGPULight converts a Light interface into its GPU-aligned representation.
//
// Parameters:
//   - l: the Light to convert
//
// Returns:
//   - GPULight: the GPU-aligned representation
func ToGPULight(l Light) GPULight {
	return GPULight{
		Position:   l.Position(),
		LightType:  uint32(l.Type()),
		Color:      l.Color(),
		Intensity:  l.Intensity(),
		Direction:  l.Direction(),
		LightRange: l.Range(),
		InnerCone:  l.InnerCone(),
		OuterCone:  l.OuterCone(),
	}
}

// MarshalLightBuffer marshals a slice of enabled lights into a byte buffer
// suitable for GPU upload. The buffer layout is:
//
//	[GPULightHeader (16 bytes)] [GPULight × MaxGPULights (64 bytes each)]
//
// The buffer is always sized for MaxGPULights so it can be written into a fixed-size
// storage buffer; unused slots are zero. Only enabled lights are counted.
//
// Parameters:
//   - lights: the full slice of lights to marshal (only enabled lights are included)
//   - ambient: the scene ambient color as RGB
//
// Returns:
//   - []byte: the marshaled buffer ready for GPU upload
func MarshalLightBuffer(lights []Light, ambient [3]float32) []byte {
	headerSize := (&GPULightHeader{}).Size()
	lightSize := (&GPULight{}).Size()
	buf := make([]byte, headerSize+MaxGPULights*lightSize)

	offset := headerSize
	written := 0
	for _, l := range lights {
		if !l.Enabled() {
			continue
		}
		if written >= MaxGPULights {
			break
		}
		gpu := ToGPULight(l)
		copy(buf[offset:offset+lightSize], gpu.Marshal())
		offset += lightSize
		written++
	}

	header := GPULightHeader{AmbientColor: ambient, LightCount: uint32(written)}
	copy(buf[:headerSize], header.Marshal())
	return buf
}

// putF32s writes consecutive little-endian float32 values into buf.
func putF32s(buf []byte, values ...float32) {
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(v))
	}
}
