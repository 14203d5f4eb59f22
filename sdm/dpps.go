package sdm

// DppsDisplayInfo describes one display to the dpps feature engine.
type DppsDisplayInfo struct {
	Width              uint32
	Height             uint32
	IsPrimary          bool
	DisplayID          int32
	DisplayType        DisplayType
	FPS                uint32
	BrightnessBasePath string
}

// DppsPropIntf is the narrow view of a display session handed to the dpps
// engine so it can act on the display it serves. The display session
// implements it.
type DppsPropIntf interface {
	// SetDppsFeature forwards a feature write to the display's hardware
	SetDppsFeature(feature DppsFeature) error
	// GetDppsDisplayInfo describes the display the engine is bound to
	GetDppsDisplayInfo() (DppsDisplayInfo, error)
	// ScreenRefresh asks the display to compose a frame so a staged dpps
	// change becomes visible
	ScreenRefresh() error
	// SetPartialUpdate enables or disables regional refresh for dpps' benefit
	// and returns the state actually in effect
	SetPartialUpdate(enable bool) (bool, error)
	// RequestCommitNotification subscribes the engine to per-commit callbacks
	RequestCommitNotification(enable bool) error
	// SetPccConfig stages a correction matrix computed by the engine
	SetPccConfig(config PccConfig) error
}

// DppsInterface is the feature-engine side of the dpps sideband. A display
// binds one instance at init and notifies it as frames and mode changes
// happen.
type DppsInterface interface {
	Init(intf DppsPropIntf, panelName string) error
	Deinit() error

	// NotifyCommit reports that a commit finished on a display of the given
	// type. Only sent after RequestCommitNotification(true).
	NotifyCommit(displayType DisplayType) error
	// NotifyBlendSpace reports the blend color space chosen for the frame
	NotifyBlendSpace(blendSpace PrimariesTransfer, isPrimary bool) error
	// NotifyFPS reports a refresh-rate change
	NotifyFPS(fps uint32, isPrimary bool) error

	// PartialUpdateDisabled reports whether the engine requires full-frame
	// refresh while it is active
	PartialUpdateDisabled() bool
}
