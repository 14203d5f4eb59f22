package sdm

// Handle identifies one registered display inside a composition manager. The
// value is opaque to the session that holds it.
type Handle interface{}

// QoSData carries the clock and bandwidth votes derived for a display's
// current geometry.
type QoSData struct {
	ClockHz uint64
}

// FetchResource is one source pipe set aside for autonomous fetch, outside
// per-frame assignment.
type FetchResource struct {
	PipeID uint32
}

// FetchResourceList is the set of pipes reserved for one feature.
type FetchResourceList []FetchResource

// CompManager owns composition strategy and hardware resources across all
// registered displays. The display session drives it through the frame cycle
// and forwards thermal and idle conditions to it.
//
// All methods are safe for concurrent use by different displays.
type CompManager interface {
	// RegisterDisplay admits a display and returns the handle used for every
	// later call on its behalf
	RegisterDisplay(displayID int32, displayType DisplayType,
		attributes HWDisplayAttributes, panelInfo HWPanelInfo,
		mixerAttributes HWMixerAttributes, fbResolution Resolution) (Handle, QoSData, error)
	// UnregisterDisplay releases everything held for the display
	UnregisterDisplay(handle Handle) error
	// ReconfigureDisplay rebinds the display to new geometry after a config,
	// panel, or framebuffer change
	ReconfigureDisplay(handle Handle, attributes HWDisplayAttributes,
		panelInfo HWPanelInfo, mixerAttributes HWMixerAttributes,
		fbResolution Resolution) (QoSData, error)

	// PrePrepare runs the strategy steps that precede resource assignment
	PrePrepare(handle Handle, stack *DispLayerStack) error
	// Prepare picks a composition strategy and assigns hardware resources for
	// the frame
	Prepare(handle Handle, stack *DispLayerStack) error
	// PostPrepare finalizes bookkeeping after a successful validation
	PostPrepare(handle Handle, stack *DispLayerStack) error
	// Commit re-stages the frame's resources ahead of the hardware commit
	Commit(handle Handle, stack *DispLayerStack) error
	// PostCommit retires the frame and recycles resources freed by it
	PostCommit(handle Handle, stack *DispLayerStack) error

	// GenerateROI computes the frame's damaged regions without running a full
	// prepare
	GenerateROI(handle Handle, stack *DispLayerStack) error

	// CheckEnforceSplit re-evaluates the display's split topology for a new
	// refresh rate. High rates can exceed a single mixer's clock budget.
	CheckEnforceSplit(handle Handle, refreshRate uint32) error

	// Purge force-releases every resource the display holds. Used on power
	// collapse and teardown paths where no further frame will retire them.
	Purge(handle Handle) error

	ProcessIdleTimeout(handle Handle)
	ProcessThermalEvent(handle Handle, thermalLevel int64)
	ProcessIdlePowerCollapse(handle Handle)

	// SetIdleTimeoutMs configures how long the strategy waits before folding
	// hardware composition back to GPU
	SetIdleTimeoutMs(handle Handle, activeMs uint32, inactiveMs uint32)

	// IsSafeMode reports whether a previous failure has forced conservative
	// GPU-only strategies
	IsSafeMode() bool

	// ReserveDemuraResources sets pipes aside for the display's demura
	// correction fetch
	ReserveDemuraResources(displayID int32) (FetchResourceList, error)
	// FreeDemuraFetchResources returns the display's demura pipes to the pool
	FreeDemuraFetchResources(displayID int32)
	SetDemuraStatusForDisplay(displayID int32, status bool)
	GetDemuraStatusForDisplay(displayID int32) bool
}
