package sdm

import "golang.org/x/exp/slices"

// DisplayType identifies the class of display a session drives.
type DisplayType uint32

const (
	DisplayBuiltIn DisplayType = iota
	DisplayPluggable
	DisplayVirtual
)

var displayTypeMapping = map[DisplayType]string{
	DisplayBuiltIn:   "BuiltIn",
	DisplayPluggable: "Pluggable",
	DisplayVirtual:   "Virtual",
}

func (t DisplayType) String() string {
	return displayTypeMapping[t]
}

// DisplayState is the client-requested power state of a display.
type DisplayState uint32

const (
	StateOff DisplayState = iota
	StateOn
	StateDoze
	StateDozeSuspend
)

var displayStateMapping = map[DisplayState]string{
	StateOff:         "Off",
	StateOn:          "On",
	StateDoze:        "Doze",
	StateDozeSuspend: "DozeSuspend",
}

func (s DisplayState) String() string {
	return displayStateMapping[s]
}

// DisplayMode selects how the panel is driven between commits.
type DisplayMode uint32

const (
	// ModeDefault leaves the current panel mode untouched
	ModeDefault DisplayMode = iota
	// ModeVideo keeps the panel self-refreshing from its own timing engine
	ModeVideo
	// ModeCommand refreshes the panel only when a frame is pushed
	ModeCommand
)

var displayModeMapping = map[DisplayMode]string{
	ModeDefault: "Default",
	ModeVideo:   "Video",
	ModeCommand: "Command",
}

func (m DisplayMode) String() string {
	return displayModeMapping[m]
}

// FrameTriggerMode selects when a commit is pushed to the panel relative to
// the mixer programming.
type FrameTriggerMode uint32

const (
	FrameTriggerDefault FrameTriggerMode = iota
	FrameTriggerSerialize
	FrameTriggerPostedStart
)

// PipeType is the hardware class of a source pipe. The classes form a
// capability ladder, with DMA the cheapest and VIG the only one that can
// handle video formats.
type PipeType uint32

const (
	// PipeTypeUnused marks a pool slot with no hardware behind it
	PipeTypeUnused PipeType = iota
	// PipeTypeDMA fetches RGB only, with no scaler
	PipeTypeDMA
	// PipeTypeRGB fetches RGB and can scale on scalar-capable hardware
	PipeTypeRGB
	// PipeTypeVIG fetches any format and always scales
	PipeTypeVIG
	// PipeTypeCursor drives the dedicated cursor plane
	PipeTypeCursor
)

var pipeTypeMapping = map[PipeType]string{
	PipeTypeUnused: "Unused",
	PipeTypeDMA:    "DMA",
	PipeTypeRGB:    "RGB",
	PipeTypeVIG:    "VIG",
	PipeTypeCursor: "Cursor",
}

func (t PipeType) String() string {
	return pipeTypeMapping[t]
}

// HWPipeCaps describes one physical source pipe reported by the driver.
type HWPipeCaps struct {
	Type PipeType
	ID   uint32
}

// HWResourceInfo is the capability table for one hardware block. It is read
// once at registration and treated as immutable afterward.
type HWResourceInfo struct {
	HWVersion uint32

	NumVIGPipe    uint32
	NumRGBPipe    uint32
	NumDMAPipe    uint32
	NumCursorPipe uint32
	PipeCaps      []HWPipeCaps

	NumBlendingStages uint32

	// MaxScaleUp and MaxScaleDown bound the scaler ratio in each direction
	MaxScaleUp   uint32
	MaxScaleDown uint32

	// MaxPipeWidth is the widest region a single pipe can fetch, which forces
	// a two-pipe split for wider layers
	MaxPipeWidth uint32
	// MaxMixerWidth is the widest region a single mixer can blend
	MaxMixerWidth uint32

	// HasDecimation indicates pipes can drop fetched lines and pixels ahead of
	// the scaler
	HasDecimation bool
	// HasNonScalarRGB indicates the RGB pipe class on this hardware has no
	// scaler
	HasNonScalarRGB bool
	// IsSrcSplit indicates pipes can split a surface between mixers without
	// being paired left and right
	IsSrcSplit bool
	HasUBWC    bool

	// MaxCursorSize is the widest and tallest rect the cursor plane can carry
	MaxCursorSize uint32

	MaxSDEClock uint64

	ScaleLutInfo HWScaleLutInfo
}

// Equal reports whether two capability tables describe the same hardware.
func (r *HWResourceInfo) Equal(other *HWResourceInfo) bool {
	return r.HWVersion == other.HWVersion &&
		r.NumVIGPipe == other.NumVIGPipe &&
		r.NumRGBPipe == other.NumRGBPipe &&
		r.NumDMAPipe == other.NumDMAPipe &&
		r.NumCursorPipe == other.NumCursorPipe &&
		slices.Equal(r.PipeCaps, other.PipeCaps)
}

// HWDisplayAttributes is the timing of one display config.
type HWDisplayAttributes struct {
	XPixels       uint32
	YPixels       uint32
	FPS           uint32
	VsyncPeriodNs uint32

	VFrontPorch uint32
	VBackPorch  uint32
	VPulseWidth uint32
	HTotal      uint32

	ClockKHz uint32

	// IsDeviceSplit indicates this config drives two mixers side by side
	IsDeviceSplit bool
	// SmartPanel indicates this config refreshes in command style
	SmartPanel bool
}

func (a *HWDisplayAttributes) Equal(other *HWDisplayAttributes) bool {
	return *a == *other
}

// OnlyFpsChanged reports whether other differs from this config in refresh
// rate alone, which lets a config switch skip mixer reconfiguration.
func (a *HWDisplayAttributes) OnlyFpsChanged(other *HWDisplayAttributes) bool {
	return a.FPS != other.FPS &&
		a.XPixels == other.XPixels &&
		a.YPixels == other.YPixels &&
		a.IsDeviceSplit == other.IsDeviceSplit &&
		a.SmartPanel == other.SmartPanel
}

// HWMixerAttributes is the blend-engine geometry currently programmed for a
// display.
type HWMixerAttributes struct {
	Width  uint32
	Height uint32
	// SplitLeft is the width of the left mixer when the display is split
	SplitLeft uint32
}

func (m *HWMixerAttributes) Equal(other *HWMixerAttributes) bool {
	return *m == *other
}

// HWSplitInfo describes how panel width divides across interfaces.
type HWSplitInfo struct {
	LeftSplit  uint32
	RightSplit uint32
}

// HWPanelInfo is everything the composition core needs to know about the
// physical panel behind a display.
type HWPanelInfo struct {
	// PanelID is the driver's stable identity for the physical panel, used to
	// locate per-panel calibration data
	PanelID   uint64
	PanelName string
	Mode      DisplayMode

	IsPrimaryPanel bool

	// PartialUpdate indicates the panel accepts regional refresh
	PartialUpdate bool
	LeftROICount  uint32
	LeftAlign     uint32
	WidthAlign    uint32
	TopAlign      uint32
	HeightAlign   uint32
	MinROIWidth   uint32
	MinROIHeight  uint32
	// NeedsROIMerge indicates the panel takes a single ROI covering both
	// halves rather than one per interface
	NeedsROIMerge bool

	DynamicFPS bool
	MinFPS     uint32
	MaxFPS     uint32

	// TransferTimeUs is the time the interface needs to push one full frame
	TransferTimeUs uint32

	QsyncSupport bool
	QsyncMinFPS  uint32

	PanelMaxBrightness float32
	PanelMinBrightness float32

	DynamicBitclkSupport bool
	BitclkRates          []uint64

	SplitInfo HWSplitInfo
}

func (p *HWPanelInfo) Equal(other *HWPanelInfo) bool {
	return p.PanelID == other.PanelID &&
		p.PanelName == other.PanelName &&
		p.Mode == other.Mode &&
		p.IsPrimaryPanel == other.IsPrimaryPanel &&
		p.PartialUpdate == other.PartialUpdate &&
		p.LeftROICount == other.LeftROICount &&
		p.LeftAlign == other.LeftAlign &&
		p.WidthAlign == other.WidthAlign &&
		p.TopAlign == other.TopAlign &&
		p.HeightAlign == other.HeightAlign &&
		p.MinROIWidth == other.MinROIWidth &&
		p.MinROIHeight == other.MinROIHeight &&
		p.NeedsROIMerge == other.NeedsROIMerge &&
		p.DynamicFPS == other.DynamicFPS &&
		p.MinFPS == other.MinFPS &&
		p.MaxFPS == other.MaxFPS &&
		p.TransferTimeUs == other.TransferTimeUs &&
		p.QsyncSupport == other.QsyncSupport &&
		p.QsyncMinFPS == other.QsyncMinFPS &&
		p.PanelMaxBrightness == other.PanelMaxBrightness &&
		p.PanelMinBrightness == other.PanelMinBrightness &&
		p.DynamicBitclkSupport == other.DynamicBitclkSupport &&
		slices.Equal(p.BitclkRates, other.BitclkRates) &&
		p.SplitInfo == other.SplitInfo
}

// HWBandwidthMode selects which bandwidth budget the resource manager votes
// against.
type HWBandwidthMode uint32

const (
	BandwidthModeDefault HWBandwidthMode = iota
	BandwidthModeCamera
	BandwidthModeVFlip
	BandwidthModeHFlip
	bandwidthModeMax
)

var bandwidthModeMapping = map[HWBandwidthMode]string{
	BandwidthModeDefault: "BandwidthModeDefault",
	BandwidthModeCamera:  "BandwidthModeCamera",
	BandwidthModeVFlip:   "BandwidthModeVFlip",
	BandwidthModeHFlip:   "BandwidthModeHFlip",
}

func (m HWBandwidthMode) String() string {
	return bandwidthModeMapping[m]
}

// HWScaleLutInfo is the size of each scaler lookup table the driver expects to
// be seeded at boot.
type HWScaleLutInfo struct {
	DirLUTSize      uint32
	CirLUTSize      uint32
	SepLUTSize      uint32
	LUTSwapRequired bool
}

// Resolution is a width and height pair in pixels.
type Resolution struct {
	Width  uint32
	Height uint32
}

// DisplayConfigVariableInfo is the client-visible shape of one display config.
type DisplayConfigVariableInfo struct {
	XPixels       uint32
	YPixels       uint32
	XDPI          float32
	YDPI          float32
	FPS           uint32
	VsyncPeriodNs uint32
	SmartPanel    bool
}
