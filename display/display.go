package display

import (
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Parikk-Studio/android-hardware-qcom-display/disputils"
	"github.com/Parikk-Studio/android-hardware-qcom-display/internal/utils"
	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// CreateFlags indicate specific display session behaviors to activate or deactivate
type CreateFlags int32

const (
	// DisplayCreateExternallySynchronized ensures that this display session will
	// not be synchronized internally. The consumer must guarantee that session
	// methods and event callbacks are used from only one thread at a time or are
	// synchronized by some other mechanism, but performance may improve because
	// internal mutexes are not used.
	DisplayCreateExternallySynchronized CreateFlags = 1 << iota
)

var createFlagsMapping = map[CreateFlags]string{
	DisplayCreateExternallySynchronized: "DisplayCreateExternallySynchronized",
}

func (f CreateFlags) String() string {
	return createFlagsMapping[f]
}

// CreateOptions contains optional settings when creating a Display
type CreateOptions struct {
	// Flags indicates specific display behaviors to activate or deactivate
	Flags CreateFlags

	// DeferFpsFrameCount spreads a switch to a lower refresh rate over this
	// many committed frames before the panel timing actually changes. Zero
	// applies refresh-rate switches immediately.
	DeferFpsFrameCount uint32
	// DisableDynamicFps rejects all refresh-rate changes regardless of panel
	// capability
	DisableDynamicFps bool
	// EnableQsyncIdle keeps qsync engaged through panel idle instead of
	// dropping the refresh rate
	EnableQsyncIdle bool
	// EnhanceIdleTime requires the panel to sit idle for the configured window
	// before the session lowers the refresh rate
	EnhanceIdleTime bool
	// EnableDppsDynamicFps forwards refresh-rate changes to the dpps engine as
	// they happen
	EnableDppsDynamicFps bool
	// DisableNoiseLayer treats a noise dither layer like an ordinary app layer
	// instead of tracking it separately
	DisableNoiseLayer bool
	// DisableDemura skips demura correction setup even when a factory is
	// supplied
	DisableDemura bool
	// EnableSPR binds a subpixel-rendering instance at init
	EnableSPR bool
	// PreferVideoMode switches a command-mode panel to video mode at init when
	// the panel supports it
	PreferVideoMode bool

	// DppsRegistry supplies the dpps engine for this display. Leaving it nil
	// binds an inert stub.
	DppsRegistry *DppsRegistry
	// PanelFeatures constructs demura and subpixel-rendering instances. Leaving
	// it nil disables both features.
	PanelFeatures sdm.PanelFeatureFactory
	// ColorManager owns the color pipeline. Leaving it nil reports color
	// operations as unsupported.
	ColorManager sdm.ColorManager
	// IPC mirrors backlight and config state to a peer VM. Leaving it nil drops
	// the mirroring.
	IPC sdm.IPCIntf
	// EventsFactory constructs the interrupt backend. Leaving it nil runs the
	// session without hardware events.
	EventsFactory sdm.HWEventsFactory
}

// frameSnapshot is what the previous successfully prepared frame looked like,
// kept for the skip-validate comparison on the next one.
type frameSnapshot struct {
	valid         bool
	appLayerCount uint32
	leftROIs      []sdm.Rect
	rightROIs     []sdm.Rect
	demuraPresent bool
}

// Display is one session driving a physical display through its frame cycle.
// All public methods serialize on the session mutex; brightness calls use
// their own narrower lock so backlight changes never wait on a frame.
type Display struct {
	logger   *slog.Logger
	useMutex bool

	displayID   int32
	displayType sdm.DisplayType

	hwIntf       sdm.HWInterface
	compManager  sdm.CompManager
	eventHandler sdm.DisplayEventHandler

	options CreateOptions

	mutex           utils.OptionalRWMutex
	brightnessMutex utils.OptionalMutex

	compHandle sdm.Handle
	hwEvents   sdm.HWEventsInterface

	displayAttributes  sdm.HWDisplayAttributes
	panelInfo          sdm.HWPanelInfo
	mixerAttributes    sdm.HWMixerAttributes
	fbConfig           sdm.DisplayConfigVariableInfo
	numConfigs         uint32
	activeConfigIndex  uint32
	attrCache          *lru.Cache[uint32, sdm.HWDisplayAttributes]
	brightnessBasePath string

	state      sdm.DisplayState
	active     bool
	shutdown   bool
	firstCycle bool
	validated  bool
	frameCount uint64

	pendingRetire sdm.Fence
	vsyncEnabled  bool
	autoRefresh   bool

	lastFrame frameSnapshot

	qsyncMode       sdm.QSyncMode
	activeQsyncMode sdm.QSyncMode
	needsAVRUpdate  bool

	handleIdleTimeout bool
	idleActiveMs      uint32
	idleInactiveMs    uint32
	idleEntered       time.Time
	pendingIdleTime   int

	currentRefreshRate uint32

	deferred deferredConfig

	puState         partialUpdateState
	puAck           utils.TimedAck
	puOffDestScaler bool

	// brightness state lives under brightnessMutex, not the session mutex
	brightness        float32
	pendingBrightness bool
	cachedBrightness  float32

	dpps         sdm.DppsInterface
	dppsInitDone bool
	commitNotify bool

	demura          sdm.DemuraIntf
	demuraResources sdm.FetchResourceList
	spr             sdm.SPRIntf

	ipcConfigSent bool

	blendSpace      sdm.PrimariesTransfer
	blendSpaceSet   bool
	blendSpaceDirty bool

	samplingState    SamplingState
	histogramPending bool

	frameTriggerMode    sdm.FrameTriggerMode
	pendingFrameTrigger bool

	dsiClkHz uint64
}

var _ sdm.HWEventHandler = &Display{}
var _ sdm.DppsPropIntf = &Display{}
var _ disputils.Validatable = &Display{}

// New creates a session for one built-in display
//
// logger - Debug logging for the frame cycle and event handling
//
// displayID - The identity this display registers under
//
// eventHandler - Receives vsync, refresh requests, and display conditions.
// Must be non-nil.
//
// hwIntf - The driver boundary for this display. Must be non-nil.
//
// compManager - Owns composition strategy and hardware resources. Must be
// non-nil.
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, displayID int32, eventHandler sdm.DisplayEventHandler,
	hwIntf sdm.HWInterface, compManager sdm.CompManager, options CreateOptions) (*Display, error) {

	if logger == nil {
		logger = slog.Default()
	}
	if eventHandler == nil {
		return nil, errors.New("eventHandler is required")
	}
	if hwIntf == nil {
		return nil, errors.New("hwIntf is required")
	}
	if compManager == nil {
		return nil, errors.New("compManager is required")
	}

	useMutex := options.Flags&DisplayCreateExternallySynchronized == 0

	return &Display{
		logger:   logger,
		useMutex: useMutex,

		displayID:   displayID,
		displayType: sdm.DisplayBuiltIn,

		hwIntf:       hwIntf,
		compManager:  compManager,
		eventHandler: eventHandler,

		options: options,

		mutex:           utils.OptionalRWMutex{UseMutex: useMutex},
		brightnessMutex: utils.OptionalMutex{UseMutex: useMutex},

		state:           sdm.StateOff,
		firstCycle:      true,
		qsyncMode:       sdm.QSyncModeNone,
		brightness:      -1,
		pendingIdleTime: -1,
	}, nil
}

// Init reads the panel and config tables, registers with the composition
// manager, and brings up the event backend. Driver and registration failures
// are fatal and leave the session unusable; feature gateways degrade instead.
func (d *Display) Init() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::Init", slog.Int("displayId", int(d.displayID)))

	if d.shutdown {
		return errors.Wrap(sdm.ErrShutDown, "init after deinit")
	}

	activeIndex, err := d.hwIntf.GetActiveConfig()
	if err != nil {
		return errors.Wrapf(err, "display %d active config query failed", d.displayID)
	}
	numConfigs, err := d.hwIntf.GetNumDisplayAttributes()
	if err != nil {
		return errors.Wrapf(err, "display %d config count query failed", d.displayID)
	}
	if numConfigs == 0 {
		return errors.Wrapf(sdm.ErrDriverData, "display %d reports no configs", d.displayID)
	}

	d.attrCache, err = lru.New[uint32, sdm.HWDisplayAttributes](int(numConfigs))
	if err != nil {
		return errors.Wrapf(err, "attribute cache for %d configs", numConfigs)
	}
	d.numConfigs = numConfigs
	d.activeConfigIndex = activeIndex

	d.displayAttributes, err = d.configAttributes(activeIndex)
	if err != nil {
		return err
	}

	d.panelInfo, err = d.hwIntf.GetHWPanelInfo()
	if err != nil {
		return errors.Wrapf(err, "display %d panel info query failed", d.displayID)
	}
	d.mixerAttributes, err = d.hwIntf.GetMixerAttributes()
	if err != nil {
		return errors.Wrapf(err, "display %d mixer attributes query failed", d.displayID)
	}

	d.brightnessBasePath, err = d.hwIntf.GetPanelBrightnessBasePath()
	if err != nil {
		d.logger.Warn("backlight path unavailable", slog.Any("error", err))
		d.brightnessBasePath = ""
	}

	d.fbConfig = variableInfoFromAttributes(&d.displayAttributes)
	d.currentRefreshRate = d.displayAttributes.FPS
	d.updatePuOnDestScalerLocked()

	if d.options.PreferVideoMode && d.panelInfo.Mode == sdm.ModeCommand {
		err = d.hwIntf.SetDisplayMode(sdm.ModeVideo)
		if err != nil {
			d.logger.Warn("panel kept command mode", slog.Any("error", err))
		} else {
			d.panelInfo.Mode = sdm.ModeVideo
		}
	}

	fbResolution := sdm.Resolution{Width: d.fbConfig.XPixels, Height: d.fbConfig.YPixels}
	handle, _, err := d.compManager.RegisterDisplay(d.displayID, d.displayType,
		d.displayAttributes, d.panelInfo, d.mixerAttributes, fbResolution)
	if err != nil {
		return errors.Wrapf(err, "display %d composition registration failed", d.displayID)
	}
	d.compHandle = handle

	if d.options.EventsFactory != nil {
		d.hwEvents, err = d.options.EventsFactory(d.displayID, d.displayType, d, subscribedEvents())
		if err != nil {
			unregErr := d.compManager.UnregisterDisplay(d.compHandle)
			if unregErr != nil {
				d.logger.Error("error attempting to unregister after event backend failure",
					slog.Any("error", unregErr))
			}
			d.compHandle = nil
			return errors.Wrapf(err, "display %d event backend failed", d.displayID)
		}
	}

	if d.options.DppsRegistry != nil {
		d.dpps = d.options.DppsRegistry.engineFor(d.displayID)
	} else {
		d.dpps = NullDpps{}
	}

	if d.options.PanelFeatures != nil && !d.options.DisableDemura {
		err = d.setUpDemuraLocked()
		if err != nil {
			d.logger.Warn("demura disabled", slog.Any("error", err))
		}
	}
	if d.options.PanelFeatures != nil && d.options.EnableSPR {
		err = d.setUpSPRLocked()
		if err != nil {
			d.logger.Warn("spr disabled", slog.Any("error", err))
		}
	}

	return nil
}

// Deinit tears the session down. The first error encountered is returned, but
// teardown always runs to completion. After Deinit every frame operation
// fails with ErrShutDown.
func (d *Display) Deinit() error {
	d.mutex.Lock()
	if d.shutdown {
		d.mutex.Unlock()
		return nil
	}

	d.logger.Debug("Display::Deinit", slog.Int("displayId", int(d.displayID)))

	// Mark the session down and drop the lock before stopping the event
	// backend. Its Deinit waits for in-flight callbacks, and those callbacks
	// take this same lock.
	d.shutdown = true
	d.active = false
	d.validated = false
	events := d.hwEvents
	d.hwEvents = nil
	d.mutex.Unlock()

	var firstErr error

	if events != nil {
		err := events.Deinit()
		if err != nil {
			d.logger.Error("error tearing down event backend", slog.Any("error", err))
			firstErr = err
		}
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.tearDownDemuraLocked()
	d.tearDownSPRLocked()

	if d.dpps != nil && d.dppsInitDone {
		err := d.dpps.Deinit()
		if err != nil {
			d.logger.Error("error tearing down dpps engine", slog.Any("error", err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if d.options.DppsRegistry != nil {
		d.options.DppsRegistry.release(d.displayID)
	}
	d.dpps = nil

	if d.compHandle != nil {
		err := d.compManager.UnregisterDisplay(d.compHandle)
		if err != nil {
			d.logger.Error("error unregistering from composition", slog.Any("error", err))
			if firstErr == nil {
				firstErr = err
			}
		}
		d.compHandle = nil
	}

	return firstErr
}

func subscribedEvents() []sdm.HWEvent {
	return []sdm.HWEvent{
		sdm.EventVSync,
		sdm.EventExit,
		sdm.EventIdleNotify,
		sdm.EventThermalLevel,
		sdm.EventIdlePowerCollapse,
		sdm.EventPingPongTimeout,
		sdm.EventPanelDead,
		sdm.EventHWRecovery,
		sdm.EventHistogram,
		sdm.EventBacklight,
		sdm.EventPower,
		sdm.EventMMRM,
	}
}

// configAttributes reads the timing of one config through the cache. The
// config table is fixed for the life of the panel, so a hit never goes stale;
// the cache is dropped wholesale when the panel resets.
func (d *Display) configAttributes(index uint32) (sdm.HWDisplayAttributes, error) {
	if attributes, ok := d.attrCache.Get(index); ok {
		return attributes, nil
	}

	attributes, err := d.hwIntf.GetDisplayAttributes(index)
	if err != nil {
		return sdm.HWDisplayAttributes{}, errors.Wrapf(err, "config %d attributes query failed", index)
	}
	d.attrCache.Add(index, attributes)

	return attributes, nil
}

func variableInfoFromAttributes(attributes *sdm.HWDisplayAttributes) sdm.DisplayConfigVariableInfo {
	return sdm.DisplayConfigVariableInfo{
		XPixels:       attributes.XPixels,
		YPixels:       attributes.YPixels,
		FPS:           attributes.FPS,
		VsyncPeriodNs: attributes.VsyncPeriodNs,
		SmartPanel:    attributes.SmartPanel,
	}
}

// GetNumVariableInfoConfigs returns how many configs the panel exposes.
func (d *Display) GetNumVariableInfoConfigs() (uint32, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return d.numConfigs, nil
}

// GetConfig returns the client-visible shape of one config.
func (d *Display) GetConfig(index uint32) (sdm.DisplayConfigVariableInfo, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if index >= d.numConfigs {
		return sdm.DisplayConfigVariableInfo{}, errors.Wrapf(sdm.ErrParameters,
			"config %d out of range, panel has %d", index, d.numConfigs)
	}

	attributes, err := d.configAttributes(index)
	if err != nil {
		return sdm.DisplayConfigVariableInfo{}, err
	}

	return variableInfoFromAttributes(&attributes), nil
}

// GetActiveConfig returns the index of the config the session is running.
// While a deferred refresh-rate switch is pending this is already the target
// config, even though the panel timing has not moved yet.
func (d *Display) GetActiveConfig() (uint32, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return d.activeConfigIndex, nil
}

// GetDisplayState returns the client-requested power state.
func (d *Display) GetDisplayState() (sdm.DisplayState, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return d.state, nil
}

// IsActive reports whether the session accepts frames.
func (d *Display) IsActive() bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return d.active
}

// SetVSyncState enables or disables vsync delivery to the client.
func (d *Display) SetVSyncState(enable bool) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::SetVSyncState", slog.Bool("enable", enable))

	if enable && !d.active {
		return errors.Wrap(sdm.ErrPermission, "vsync on an inactive display")
	}
	if d.vsyncEnabled == enable {
		return nil
	}

	err := d.setVSyncStateLocked(enable)
	if err != nil {
		return err
	}

	d.vsyncEnabled = enable
	return nil
}

func (d *Display) setVSyncStateLocked(enable bool) error {
	if d.hwEvents == nil {
		return nil
	}
	err := d.hwEvents.SetEventState(sdm.EventVSync, enable)
	if err != nil {
		return errors.Wrapf(err, "vsync state %t", enable)
	}
	return nil
}

// Validate checks session invariants. It is called through DebugValidate
// around the frame cycle when the debug build tag is active.
func (d *Display) Validate() error {
	if d.active && d.state != sdm.StateOn && d.state != sdm.StateDoze {
		return errors.Errorf("session active in state %s", d.state)
	}
	if d.qsyncMode > sdm.QSyncModeOneShotContinuous {
		return errors.Errorf("qsync mode %d out of range", d.qsyncMode)
	}
	if d.puState > puDisabledOneFrame {
		return errors.Errorf("partial update state %d out of range", d.puState)
	}
	if d.options.DeferFpsFrameCount > 0 && d.deferred.frameCount > d.options.DeferFpsFrameCount {
		return errors.Errorf("defer counter %d above configured %d",
			d.deferred.frameCount, d.options.DeferFpsFrameCount)
	}
	if d.brightness < -1 || d.brightness > 1 {
		return errors.Errorf("cached brightness %f out of range", d.brightness)
	}
	if d.validated && d.shutdown {
		return errors.New("validated frame on a shut down session")
	}
	return nil
}
