package display

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// SetDisplayState drives the panel power state machine. The returned fence
// signals when hardware finished the transition; nil means there is nothing
// to wait on. Power off with teardown additionally releases driver state.
func (d *Display) SetDisplayState(state sdm.DisplayState, teardown bool) (sdm.Fence, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::SetDisplayState", slog.String("state", state.String()),
		slog.Bool("teardown", teardown))

	if d.shutdown {
		return nil, errors.Wrap(sdm.ErrShutDown, "power change after deinit")
	}
	if state == d.state {
		d.logger.Debug("display already in requested state", slog.String("state", state.String()))
		return nil, nil
	}

	var fence sdm.Fence
	var err error

	switch state {
	case sdm.StateOff:
		// Client vsync and correction stop before the pipeline collapses.
		if d.vsyncEnabled {
			vsyncErr := d.setVSyncStateLocked(false)
			if vsyncErr != nil {
				d.logger.Warn("vsync not parked before power off", slog.Any("error", vsyncErr))
			}
			d.vsyncEnabled = false
		}
		d.demuraSetActiveLocked(false)

		err = d.hwIntf.PowerOff(teardown)
		if err != nil {
			return nil, errors.Wrap(err, "power off")
		}

		// No further frame will retire what the display still holds.
		purgeErr := d.compManager.Purge(d.compHandle)
		if purgeErr != nil {
			d.logger.Warn("resource purge on power off", slog.Any("error", purgeErr))
		}
		d.active = false
		d.pendingRetire = nil

	case sdm.StateOn:
		fence, err = d.hwIntf.PowerOn()
		if err != nil {
			return nil, errors.Wrap(err, "power on")
		}
		d.active = true
		d.applyDeferredConfigLocked()
		d.demuraSetActiveLocked(true)

	case sdm.StateDoze:
		fence, err = d.hwIntf.Doze()
		if err != nil {
			return nil, errors.Wrap(err, "doze")
		}
		d.active = true

	case sdm.StateDozeSuspend:
		fence, err = d.hwIntf.DozeSuspend()
		if err != nil {
			return nil, errors.Wrap(err, "doze suspend")
		}
		d.active = false

	default:
		return nil, errors.Wrapf(sdm.ErrParameters, "unknown display state %d", state)
	}

	d.state = state
	d.validated = false
	d.lastFrame.valid = false

	return fence, nil
}

// ControlIdlePowerCollapse allows or blocks the driver's autonomous power
// collapse. Only command-mode panels collapse on their own.
func (d *Display) ControlIdlePowerCollapse(enable bool, synchronous bool) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::ControlIdlePowerCollapse", slog.Bool("enable", enable),
		slog.Bool("synchronous", synchronous))

	if d.panelInfo.Mode != sdm.ModeCommand {
		return errors.Wrap(sdm.ErrNotSupported, "video panels have no idle power collapse")
	}
	if !d.active {
		return errors.Wrap(sdm.ErrPermission, "display is not active")
	}

	err := d.hwIntf.ControlIdlePowerCollapse(enable, synchronous)
	if err != nil {
		return errors.Wrapf(err, "idle power collapse %t", enable)
	}
	return nil
}

// ClearLUTs drops the color lookup programming the hardware lost across a
// power collapse. The next frame revalidates without the stale tables.
func (d *Display) ClearLUTs() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::ClearLUTs", slog.Int("displayId", int(d.displayID)))

	if d.shutdown {
		return errors.Wrap(sdm.ErrShutDown, "lut clear after deinit")
	}

	d.compManager.ProcessIdlePowerCollapse(d.compHandle)
	d.validated = false
	d.lastFrame.valid = false

	return nil
}

// resetPanelLocked recovers a dead panel: power cycle, cache invalidation,
// and re-assertion of the state the driver lost.
func (d *Display) resetPanelLocked() error {
	d.logger.Warn("Display::resetPanel", slog.Int("displayId", int(d.displayID)))

	err := d.hwIntf.PowerOff(false)
	if err != nil {
		return errors.Wrap(err, "reset power off")
	}

	fence, err := d.hwIntf.PowerOn()
	if err != nil {
		return errors.Wrap(err, "reset power on")
	}
	err = sdm.WaitFence(fence)
	if err != nil {
		d.logger.Warn("panel reset fence wait", slog.Any("error", err))
	}

	// Driver state did not survive, so cached timings and feature state may
	// be stale too.
	d.attrCache.Purge()
	d.samplingState = SamplingOff
	d.histogramPending = false
	d.pendingRetire = nil

	if d.vsyncEnabled {
		err = d.setVSyncStateLocked(true)
		if err != nil {
			d.logger.Warn("vsync re-register after reset", slog.Any("error", err))
		}
	}

	// The backlight resets with the panel; push the last accepted level.
	d.brightnessMutex.Lock()
	brightness := d.brightness
	d.brightnessMutex.Unlock()
	if brightness >= 0 {
		err = d.SetPanelBrightness(brightness)
		if err != nil {
			d.logger.Warn("backlight restore after reset", slog.Any("error", err))
		}
	}

	d.validated = false
	d.lastFrame.valid = false

	return nil
}
