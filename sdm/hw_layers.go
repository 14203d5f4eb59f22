package sdm

// HWPipeInfo is the programmed configuration of one source pipe for one frame.
type HWPipeInfo struct {
	PipeID uint32
	ZOrder uint32

	// SrcROI is the buffer region this pipe fetches, after any split
	SrcROI Rect
	// DstROI is the mixer region this pipe writes, after any split
	DstROI Rect

	// HorizontalDecimation and VerticalDecimation are the per-axis fetch
	// decimation factors, expressed as powers of two
	HorizontalDecimation uint8
	VerticalDecimation   uint8

	// Valid distinguishes a programmed pipe from an untouched slot. A split
	// frame may legitimately leave one side invalid.
	Valid bool
}

func (p *HWPipeInfo) Reset() {
	*p = HWPipeInfo{}
}

// HWRotatorSession records inline rotation state for a layer. The composition
// core only tracks whether a session exists; programming it belongs to the
// rotator driver.
type HWRotatorSession struct {
	Sessions uint32
}

// HWLayerConfig is the full hardware routing for one composed layer. A layer
// spanning both halves of a split display uses both pipes.
type HWLayerConfig struct {
	LeftPipe  HWPipeInfo
	RightPipe HWPipeInfo

	RotatorSession HWRotatorSession
}

func (c *HWLayerConfig) Reset() {
	*c = HWLayerConfig{}
}

// HWAVRMode selects how the panel varies its refresh under qsync.
type HWAVRMode uint32

const (
	// AVRModeNone turns adaptive refresh off
	AVRModeNone HWAVRMode = iota
	// AVRModeContinuous lets the panel track the commit rate frame over frame
	AVRModeContinuous
	// AVRModeOneShot stretches exactly one frame and then reverts
	AVRModeOneShot
)

var hwAVRModeMapping = map[HWAVRMode]string{
	AVRModeNone:       "None",
	AVRModeContinuous: "Continuous",
	AVRModeOneShot:    "OneShot",
}

func (m HWAVRMode) String() string {
	return hwAVRModeMapping[m]
}

// HWAVRInfo is the adaptive-refresh programming for one commit.
type HWAVRInfo struct {
	// Update indicates the mode below must be written to hardware this commit
	Update bool
	Mode   HWAVRMode
}

// HWLayersInfo is everything the hardware needs to know about one frame. It is
// rebuilt by Prepare and consumed by Commit.
type HWLayersInfo struct {
	// HWLayers holds copies of the stack layers selected for hardware
	// composition, in z order
	HWLayers []Layer
	// Index maps each entry of HWLayers back to its position in the submitted
	// stack
	Index []uint32
	// Config holds the pipe routing for each entry of HWLayers
	Config []HWLayerConfig

	AppLayerCount uint32

	GPUTargetIndex    int
	StitchTargetIndex int
	DemuraTargetIndex int
	NoiseLayerIndex   int

	// LeftFrameROI and RightFrameROI are the damaged display regions for each
	// mixer this frame. Outside partial update each holds the full mixer rect.
	LeftFrameROI  []Rect
	RightFrameROI []Rect
	// PartialFBROI is the region of the GPU target that must be refetched
	PartialFBROI Rect

	AVRInfo HWAVRInfo

	// SetIdleTimeMs carries a pending panel idle time to program on the next
	// commit, or -1 when nothing is pending
	SetIdleTimeMs int

	GeometryChanged bool
}

func (i *HWLayersInfo) Reset() {
	*i = HWLayersInfo{
		GPUTargetIndex:    -1,
		StitchTargetIndex: -1,
		DemuraTargetIndex: -1,
		NoiseLayerIndex:   -1,
		SetIdleTimeMs:     -1,
	}
}

// DispLayerStack pairs the client stack with the hardware frame derived from
// it. The pair travels together from Prepare through PostCommit.
type DispLayerStack struct {
	Stack *LayerStack
	Info  HWLayersInfo
}
