package sdm

// LayerBufferFormat identifies the pixel format of a layer buffer. Only the
// formats the composition core needs to reason about are listed; the full
// gralloc format space is collapsed before it reaches this layer.
type LayerBufferFormat uint32

const (
	FormatRGBA8888 LayerBufferFormat = iota
	FormatRGBX8888
	FormatRGB888
	FormatRGB565
	FormatRGBA8888UBWC
	FormatRGBX8888UBWC
	FormatRGB565UBWC
	FormatRGBA1010102UBWC
	FormatYCbCr420SemiPlanar
	FormatYCbCr420SPVenusUBWC
	FormatYCbCr420P010
	FormatYCbCr420TP10UBWC
	FormatInvalid
)

var layerBufferFormatMapping = map[LayerBufferFormat]string{
	FormatRGBA8888:            "RGBA8888",
	FormatRGBX8888:            "RGBX8888",
	FormatRGB888:              "RGB888",
	FormatRGB565:              "RGB565",
	FormatRGBA8888UBWC:        "RGBA8888_UBWC",
	FormatRGBX8888UBWC:        "RGBX8888_UBWC",
	FormatRGB565UBWC:          "RGB565_UBWC",
	FormatRGBA1010102UBWC:     "RGBA1010102_UBWC",
	FormatYCbCr420SemiPlanar:  "YCbCr420_SP",
	FormatYCbCr420SPVenusUBWC: "YCbCr420_SP_VENUS_UBWC",
	FormatYCbCr420P010:        "YCbCr420_P010",
	FormatYCbCr420TP10UBWC:    "YCbCr420_TP10_UBWC",
	FormatInvalid:             "INVALID",
}

func (f LayerBufferFormat) String() string {
	return layerBufferFormatMapping[f]
}

// IsUBWC reports whether the format stores pixel data in the bandwidth-compressed
// tile layout. Compressed tiles cannot be fetched with decimation applied.
func (f LayerBufferFormat) IsUBWC() bool {
	switch f {
	case FormatRGBA8888UBWC, FormatRGBX8888UBWC, FormatRGB565UBWC,
		FormatRGBA1010102UBWC, FormatYCbCr420SPVenusUBWC, FormatYCbCr420TP10UBWC:
		return true
	}
	return false
}

// BufferLayout is the memory arrangement of pixel data in a buffer.
type BufferLayout uint32

const (
	LayoutLinear BufferLayout = iota
	LayoutUBWC
)

// Layout returns the memory arrangement implied by the format.
func (f LayerBufferFormat) Layout() BufferLayout {
	if f.IsUBWC() {
		return LayoutUBWC
	}
	return LayoutLinear
}

// IsYUV reports whether the format carries chroma-subsampled video data, which
// only the scalar-capable pipe class can fetch.
func (f LayerBufferFormat) IsYUV() bool {
	switch f {
	case FormatYCbCr420SemiPlanar, FormatYCbCr420SPVenusUBWC,
		FormatYCbCr420P010, FormatYCbCr420TP10UBWC:
		return true
	}
	return false
}

// LayerComposition records which engine composes a layer for the current frame.
type LayerComposition uint32

const (
	// CompositionGPU indicates the client composes this layer into the target
	// buffer and the hardware never sees it directly
	CompositionGPU LayerComposition = iota
	// CompositionSDE indicates the display hardware fetches and blends this
	// layer through its own pipes
	CompositionSDE
	// CompositionGPUTarget marks the output buffer that receives all
	// CompositionGPU layers
	CompositionGPUTarget
	// CompositionStitchTarget marks the intermediate buffer used to stitch
	// split-rendered frames back together
	CompositionStitchTarget
	// CompositionDemura marks the panel-correction layer appended by the
	// demura feature
	CompositionDemura
	// CompositionCWBTarget marks the buffer receiving concurrent writeback
	// output
	CompositionCWBTarget
)

var layerCompositionMapping = map[LayerComposition]string{
	CompositionGPU:          "GPU",
	CompositionSDE:          "SDE",
	CompositionGPUTarget:    "GPU_TARGET",
	CompositionStitchTarget: "STITCH_TARGET",
	CompositionDemura:       "DEMURA",
	CompositionCWBTarget:    "CWB_TARGET",
}

func (c LayerComposition) String() string {
	return layerCompositionMapping[c]
}

// LayerUpdate identifies one kind of change a client can flag on a layer
// between frames.
type LayerUpdate uint32

const (
	UpdateSecurity LayerUpdate = iota
	UpdateMetadata
	UpdateSurfaceDamage
	UpdateSurfaceInvalidate
	UpdateClientCompRequest
	UpdateColorTransform
)

// LayerUpdateMask is a bitset over LayerUpdate values.
type LayerUpdateMask uint32

func (m LayerUpdateMask) Test(update LayerUpdate) bool {
	return m&(1<<update) != 0
}

func (m *LayerUpdateMask) Set(update LayerUpdate) {
	*m |= 1 << update
}

func (m *LayerUpdateMask) Reset() {
	*m = 0
}

// OnlySet reports whether update is the single bit present in the mask.
func (m LayerUpdateMask) OnlySet(update LayerUpdate) bool {
	return m == 1<<update
}

// LayerFlags carries the per-layer booleans that influence strategy and
// resource decisions.
type LayerFlags struct {
	// Skip indicates the client wants this layer composed by the GPU no matter
	// what the hardware could do with it
	Skip bool
	// Updating indicates the layer content changed since the previous frame
	Updating bool
	// SolidFill indicates the layer has no buffer and is filled with a constant
	// color by the hardware
	SolidFill bool
	// Cursor indicates the layer is eligible for the dedicated cursor pipe
	Cursor bool
	// SingleBuffer indicates the client updates the buffer in place without
	// double buffering, which pins the display in command-style refresh
	SingleBuffer bool
	// IsGame indicates game metadata was present on the buffer
	IsGame bool
	// IsDemura marks the correction layer owned by the demura feature
	IsDemura bool
	// IsNoise marks the dither layer inserted ahead of demura correction
	IsNoise bool
}

// LayerBuffer describes the buffer attached to a layer for one frame.
type LayerBuffer struct {
	Width           uint32
	Height          uint32
	UnalignedWidth  uint32
	UnalignedHeight uint32
	Format          LayerBufferFormat

	// AcquireFence must signal before the hardware may fetch from this buffer
	AcquireFence Fence
	// ReleaseFence is populated on commit and signals when the hardware is done
	// reading the buffer
	ReleaseFence Fence

	ID uint64
}

// Layer is one element of the stack a client submits for composition.
type Layer struct {
	InputBuffer LayerBuffer

	Composition LayerComposition

	// SrcRect selects the region of the input buffer to fetch, in buffer
	// coordinates
	SrcRect Rect
	// DstRect positions the fetched region on the display, in display
	// coordinates
	DstRect Rect

	// DirtyRegions lists the sub-rectangles of the layer that actually changed
	// this frame, in layer coordinates. An empty list means the full layer is
	// dirty.
	DirtyRegions []Rect

	UpdateMask LayerUpdateMask

	PlaneAlpha uint8

	Flags LayerFlags
}
