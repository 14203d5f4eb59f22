package sdm

// DppsFeatureID names one feature block reachable through the dpps sideband.
type DppsFeatureID uint32

const (
	DppsFeatureHistogramControl DppsFeatureID = iota
	DppsFeatureHistogramIRQ
	DppsFeaturePanelBrightness
)

// DppsFeature is one typed write to a dpps feature block.
type DppsFeature struct {
	ID    DppsFeatureID
	Value uint32
}

// DppsAdROI bounds the assertive-display algorithm to a horizontal band of the
// panel.
type DppsAdROI struct {
	HStart    uint32
	HEnd      uint32
	FactorIn  uint32
	FactorOut uint32
}

// HWInterface is the driver boundary for one display. Every call programs or
// queries real hardware, so implementations live outside the composition core
// and tests substitute a mock.
//
// Calls are never issued concurrently for the same display; the owning session
// serializes them.
type HWInterface interface {
	// GetActiveConfig returns the index of the config the panel is currently
	// running
	GetActiveConfig() (uint32, error)
	// GetNumDisplayAttributes returns how many configs the panel exposes
	GetNumDisplayAttributes() (uint32, error)
	// GetDisplayAttributes returns the timing of one config
	GetDisplayAttributes(index uint32) (HWDisplayAttributes, error)
	// SetDisplayAttributes makes the indexed config active at the next commit
	SetDisplayAttributes(index uint32) error
	// GetHWPanelInfo returns the static panel description
	GetHWPanelInfo() (HWPanelInfo, error)
	// GetMixerAttributes returns the blend-engine geometry currently programmed
	GetMixerAttributes() (HWMixerAttributes, error)
	// SetMixerAttributes reprograms the blend-engine geometry
	SetMixerAttributes(attributes HWMixerAttributes) error

	// PowerOn brings the pipeline out of power collapse and returns a fence
	// that signals once the panel is live
	PowerOn() (Fence, error)
	// PowerOff collapses the pipeline. Teardown additionally releases all
	// driver state for the display.
	PowerOff(teardown bool) error
	// Doze enters the low-power display state, keeping the panel lit
	Doze() (Fence, error)
	// DozeSuspend enters the low-power state with commits suspended
	DozeSuspend() (Fence, error)

	// Validate asks the driver whether it can fetch and blend the described
	// frame exactly as programmed
	Validate(info *HWLayersInfo) error
	// Commit latches the described frame into hardware and returns its retire
	// fence. Release fences are written back into the stack's layer buffers.
	Commit(stack *DispLayerStack) (Fence, error)
	// Flush drops any partially programmed state after a failed commit
	Flush(stack *DispLayerStack) error

	// SetDisplayMode switches the panel between video and command refresh
	SetDisplayMode(mode DisplayMode) error
	// SetRefreshRate reprograms the panel refresh rate without a config switch
	SetRefreshRate(rateHz uint32) error
	// SetIdleTimeoutMs programs how long the panel waits before dropping to its
	// idle refresh rate on its own
	SetIdleTimeoutMs(timeoutMs uint32) error
	// EnableSelfRefresh lets a video-mode panel refresh itself while commits
	// are idle
	EnableSelfRefresh() error
	// SetAutoRefresh makes the panel re-fetch single-buffered content every
	// vsync
	SetAutoRefresh(enable bool) error
	// SetFrameTrigger selects when commits are pushed relative to mixer
	// programming
	SetFrameTrigger(mode FrameTriggerMode) error
	// ControlIdlePowerCollapse allows or blocks the driver's autonomous power
	// collapse while idle
	ControlIdlePowerCollapse(enable bool, synchronous bool) error

	// SetPanelBrightness programs the backlight level, 0 to the panel maximum,
	// with -1 turning the backlight off
	SetPanelBrightness(level int) error
	// GetPanelBrightness reads back the programmed backlight level
	GetPanelBrightness() (int, error)
	// GetPanelBrightnessBasePath returns the sysfs directory the backlight
	// node lives under
	GetPanelBrightnessBasePath() (string, error)
	// SetBLScale programs the backlight dimming scale applied on top of the
	// client level
	SetBLScale(level uint32) error
	// SetDimmingEnable toggles panel-side backlight dimming
	SetDimmingEnable(enable bool) error
	// SetDimmingMinBacklight sets the floor the dimming block may reach
	SetDimmingMinBacklight(level int) error

	// SetDynamicDSIClock reprograms the link bit clock
	SetDynamicDSIClock(bitClkRate uint64) error
	// GetDynamicDSIClock reads the current link bit clock
	GetDynamicDSIClock() (uint64, error)

	// SetBlendSpace tells the mixer which color space blending happens in
	SetBlendSpace(blendSpace PrimariesTransfer) error
	// SetDppsFeature writes one value to a dpps feature block
	SetDppsFeature(feature DppsFeature) error
	// SetDisplayDppsAdROI bounds assertive display to part of the panel
	SetDisplayDppsAdROI(roi DppsAdROI) error

	// SetAlternateDisplayConfig jumps to the panel's alternate config group and
	// returns the config index it landed on
	SetAlternateDisplayConfig() (uint32, error)

	// DumpDebugData asks the driver to snapshot its state for postmortem
	// analysis
	DumpDebugData() error
}
