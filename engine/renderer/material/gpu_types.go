package material

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/Carmen-Shannon/oxy-museum/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUInstance is the GPU-aligned per-object record read by the scene shader from its instance
// storage buffer. Matches the WGSL Instance struct layout exactly.
// Size: 96 bytes (std430 aligned).
type GPUInstance struct {
	Model    [16]float32 // offset  0: world matrix (mat4x4<f32>)
	Tint     [4]float32  // offset 64: RGBA base color
	Emissive float32     // offset 80: unlit blend factor
	_pad     [3]float32  // offset 84: padding to 96 bytes
}

// NewGPUInstance packs a world matrix and an Appearance for upload.
//
// Parameters:
//   - world: the object's world matrix
//   - a: the object's appearance
//
// Returns:
//   - GPUInstance: the packed instance
func NewGPUInstance(world mgl32.Mat4, a common.Appearance) GPUInstance {
	return GPUInstance{Model: world, Tint: a.Tint, Emissive: a.Emissive}
}

// Size returns the size of the GPUInstance struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUInstance) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstance struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 96-byte buffer ready for GPU upload
func (g *GPUInstance) Marshal() []byte {
	buf := make([]byte, g.Size())
	putF32s(buf[0:64], g.Model[:]...)
	putF32s(buf[64:80], g.Tint[:]...)
	putF32s(buf[80:84], g.Emissive)
	return buf
}

// MarshalInstances packs draw items into a contiguous instance buffer, keeping at most limit
// items in list order.
//
// Parameters:
//   - items: the prepared draw items
//   - limit: the instance buffer capacity
//
// Returns:
//   - []byte: the packed instances
//   - int: how many instances were packed
func MarshalInstances(items []scene.DrawItem, limit int) ([]byte, int) {
	count := min(len(items), limit)
	size := (&GPUInstance{}).Size()
	buf := make([]byte, count*size)
	for i := range count {
		inst := NewGPUInstance(items[i].World, items[i].Appearance)
		copy(buf[i*size:(i+1)*size], inst.Marshal())
	}
	return buf, count
}

// GPUEffectParams is the GPU-aligned uniform holding the active room's display parameters.
// Matches the WGSL EffectParams struct layout exactly.
// Size: 32 bytes (uniform aligned).
type GPUEffectParams struct {
	Brightness     float32    // offset  0: additive brightness
	Contrast       float32    // offset  4: contrast scale around mid grey
	BloomThreshold float32    // offset  8: luminance above which bloom applies
	BloomIntensity float32    // offset 12: bloom gain
	CelBands       float32    // offset 16: diffuse quantization bands, 0 disables
	_pad           [3]float32 // offset 20: padding to 32 bytes
}

// NewGPUEffectParams packs Effects for upload.
//
// Parameters:
//   - e: the effects to pack
//
// Returns:
//   - GPUEffectParams: the packed uniform
func NewGPUEffectParams(e Effects) GPUEffectParams {
	return GPUEffectParams{
		Brightness:     e.Brightness,
		Contrast:       e.Contrast,
		BloomThreshold: e.BloomThreshold,
		BloomIntensity: e.BloomIntensity,
		CelBands:       e.CelBands,
	}
}

// Size returns the size of the GPUEffectParams struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPUEffectParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUEffectParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPUEffectParams) Marshal() []byte {
	buf := make([]byte, g.Size())
	putF32s(buf, g.Brightness, g.Contrast, g.BloomThreshold, g.BloomIntensity, g.CelBands)
	return buf
}

// GPUTintParams is the uniform for the billboard fragment shader.
// Size: 16 bytes (one vec4<f32>).
type GPUTintParams struct {
	Tint [4]float32 // offset 0: RGBA color written to every billboard fragment
}

// Size returns the size of the GPUTintParams struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPUTintParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUTintParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (g *GPUTintParams) Marshal() []byte {
	buf := make([]byte, 16)
	putF32s(buf, g.Tint[:]...)
	return buf
}

func putF32s(buf []byte, values ...float32) {
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(v))
	}
}
