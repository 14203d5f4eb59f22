package display

import (
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// DppsRegistry hands out dpps feature engines keyed by display id. Sessions
// borrow an engine at init and release it at deinit; the factory decides
// whether a real engine or the inert stub backs each display.
type DppsRegistry struct {
	mutex   sync.Mutex
	factory func(displayID int32) sdm.DppsInterface
	engines map[int32]sdm.DppsInterface
}

// NewDppsRegistry creates a registry backed by factory. The factory may
// return nil to fall back to the stub for that display; a nil factory stubs
// every display.
func NewDppsRegistry(factory func(displayID int32) sdm.DppsInterface) *DppsRegistry {
	return &DppsRegistry{
		factory: factory,
		engines: make(map[int32]sdm.DppsInterface),
	}
}

func (r *DppsRegistry) engineFor(displayID int32) sdm.DppsInterface {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if engine, ok := r.engines[displayID]; ok {
		return engine
	}

	var engine sdm.DppsInterface
	if r.factory != nil {
		engine = r.factory(displayID)
	}
	if engine == nil {
		engine = NullDpps{}
	}

	r.engines[displayID] = engine
	return engine
}

func (r *DppsRegistry) release(displayID int32) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.engines, displayID)
}

// NullDpps is the stand-in engine when no real dpps implementation is bound.
// Notifications land nowhere and partial update stays unrestricted.
type NullDpps struct{}

var _ sdm.DppsInterface = NullDpps{}

func (NullDpps) Init(intf sdm.DppsPropIntf, panelName string) error { return nil }

func (NullDpps) Deinit() error { return nil }

func (NullDpps) NotifyCommit(displayType sdm.DisplayType) error { return nil }

func (NullDpps) NotifyBlendSpace(blendSpace sdm.PrimariesTransfer, isPrimary bool) error {
	return nil
}

func (NullDpps) NotifyFPS(fps uint32, isPrimary bool) error { return nil }

func (NullDpps) PartialUpdateDisabled() bool { return false }

// SetDppsFeature forwards one feature write to the hardware sideband.
func (d *Display) SetDppsFeature(feature sdm.DppsFeature) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	err := d.hwIntf.SetDppsFeature(feature)
	if err != nil {
		return errors.Wrapf(err, "dpps feature %d", feature.ID)
	}
	return nil
}

// GetDppsDisplayInfo describes this display to the engine bound to it.
func (d *Display) GetDppsDisplayInfo() (sdm.DppsDisplayInfo, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return sdm.DppsDisplayInfo{
		Width:              d.displayAttributes.XPixels,
		Height:             d.displayAttributes.YPixels,
		IsPrimary:          d.panelInfo.IsPrimaryPanel,
		DisplayID:          d.displayID,
		DisplayType:        d.displayType,
		FPS:                d.currentRefreshRate,
		BrightnessBasePath: d.brightnessBasePath,
	}, nil
}

// ScreenRefresh asks the client for a frame so a staged dpps change becomes
// visible.
func (d *Display) ScreenRefresh() error {
	d.logger.Debug("Display::ScreenRefresh")

	return d.eventHandler.Refresh()
}

// RequestCommitNotification subscribes the engine to per-commit callbacks.
func (d *Display) RequestCommitNotification(enable bool) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::RequestCommitNotification", slog.Bool("enable", enable))

	d.commitNotify = enable
	return nil
}

// SetPccConfig stages the engine's correction matrix and forces one full
// frame so it lands everywhere at once.
func (d *Display) SetPccConfig(config sdm.PccConfig) error {
	d.mutex.Lock()

	colorManager := d.options.ColorManager
	if colorManager == nil {
		d.mutex.Unlock()
		return errors.Wrap(sdm.ErrNotSupported, "no color manager bound")
	}

	d.puState = d.puState.apply(puEventDisableOneFrame)
	d.validated = false
	d.lastFrame.valid = false
	d.mutex.Unlock()

	err := colorManager.SetLtmPccConfig(config)
	if err != nil {
		return errors.Wrap(err, "pcc config")
	}
	return nil
}
