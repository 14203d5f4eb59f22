package display

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// SetActiveConfig switches the panel to the indexed config. A pure drop in
// refresh rate can be deferred behind the committed stream when the session
// was created with DeferFpsFrameCount; every other switch applies right away.
func (d *Display) SetActiveConfig(index uint32) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::SetActiveConfig", slog.Int("configIndex", int(index)))

	if d.shutdown {
		return errors.Wrap(sdm.ErrShutDown, "config switch after deinit")
	}
	if index >= d.numConfigs {
		return errors.Wrapf(sdm.ErrParameters, "config %d out of range, panel has %d",
			index, d.numConfigs)
	}

	attributes, err := d.configAttributes(index)
	if err != nil {
		return err
	}

	if index == d.activeConfigIndex && !d.deferred.dirty {
		return nil
	}

	if d.options.DeferFpsFrameCount > 0 && d.active &&
		d.displayAttributes.OnlyFpsChanged(&attributes) &&
		attributes.FPS < d.displayAttributes.FPS {
		// The panel keeps its old timing while committed frames drain; the
		// client already sees the new config.
		d.deferred.stage(index, d.options.DeferFpsFrameCount)
		d.activeConfigIndex = index
		return nil
	}

	d.deferred.clear()

	err = d.hwIntf.SetDisplayAttributes(index)
	if err != nil {
		return errors.Wrapf(err, "config %d switch failed", index)
	}

	d.activeConfigIndex = index
	d.validated = false
	d.lastFrame.valid = false

	return nil
}

// SetDisplayMode switches the panel between video and command refresh. The
// switch carries mode-specific housekeeping: video panels lose regional
// refresh and start the idle timer, command panels stop it.
func (d *Display) SetDisplayMode(mode sdm.DisplayMode) error {
	d.mutex.Lock()

	d.logger.Debug("Display::SetDisplayMode", slog.String("mode", mode.String()))

	if mode != sdm.ModeVideo && mode != sdm.ModeCommand {
		d.mutex.Unlock()
		return errors.Wrapf(sdm.ErrParameters, "mode %d is not a panel mode", mode)
	}
	if d.panelInfo.Mode == mode {
		d.mutex.Unlock()
		return errors.Wrapf(sdm.ErrNotSupported, "panel already in %s mode", mode)
	}

	err := d.hwIntf.SetDisplayMode(mode)
	if err != nil {
		d.mutex.Unlock()
		return errors.Wrapf(err, "switch to %s mode failed", mode)
	}
	d.panelInfo.Mode = mode
	d.updateDisplayModeParamsLocked()

	d.validated = false
	d.lastFrame.valid = false
	d.mutex.Unlock()

	err = d.eventHandler.Refresh()
	if err != nil {
		d.logger.Warn("refresh request failed", slog.Any("error", err))
	}
	return nil
}

// updateDisplayModeParamsLocked settles the per-mode housekeeping once the
// panel landed in a new refresh mode, whether the switch was requested or
// discovered on the post-commit read-back.
func (d *Display) updateDisplayModeParamsLocked() {
	if d.panelInfo.Mode == sdm.ModeVideo {
		// Video panels scan the full frame every vsync; regional refresh has
		// nothing left to cut.
		d.puState = d.puState.apply(puEventDisable)
		if d.idleActiveMs > 0 {
			err := d.hwIntf.SetIdleTimeoutMs(d.idleActiveMs)
			if err != nil {
				d.logger.Warn("panel idle time not programmed", slog.Any("error", err))
			}
		}
	} else {
		// Command panels self-refresh, so the video idle machinery stops.
		d.handleIdleTimeout = false
		err := d.hwIntf.SetIdleTimeoutMs(0)
		if err != nil {
			d.logger.Warn("panel idle time not cleared", slog.Any("error", err))
		}
	}
}

// SetFrameTriggerMode selects when commits are pushed relative to mixer
// programming. The hardware write rides on the next commit.
func (d *Display) SetFrameTriggerMode(mode sdm.FrameTriggerMode) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::SetFrameTriggerMode", slog.Int("mode", int(mode)))

	if mode > sdm.FrameTriggerPostedStart {
		return errors.Wrapf(sdm.ErrParameters, "frame trigger mode %d out of range", mode)
	}
	if mode == d.frameTriggerMode {
		return nil
	}

	d.frameTriggerMode = mode
	d.pendingFrameTrigger = true
	d.validated = false

	return nil
}

// SetAlternateDisplayConfig jumps to the panel's alternate config group and
// returns the config the driver landed on.
func (d *Display) SetAlternateDisplayConfig() (uint32, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::SetAlternateDisplayConfig")

	index, err := d.hwIntf.SetAlternateDisplayConfig()
	if err != nil {
		return 0, errors.Wrap(err, "alternate config group")
	}
	if index >= d.numConfigs {
		return 0, errors.Wrapf(sdm.ErrDriverData, "driver landed on config %d of %d",
			index, d.numConfigs)
	}

	d.deferred.clear()
	d.activeConfigIndex = index
	d.validated = false
	d.lastFrame.valid = false

	return index, nil
}

// GetSupportedDSIClock lists the link bit-clock rates the panel can run.
func (d *Display) GetSupportedDSIClock() ([]uint64, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	if !d.panelInfo.DynamicBitclkSupport {
		return nil, errors.Wrapf(sdm.ErrNotSupported, "panel %s bit clock is fixed", d.panelInfo.PanelName)
	}
	return slices.Clone(d.panelInfo.BitclkRates), nil
}

// SetDynamicDSIClock reprograms the link bit clock to one of the panel's
// published rates.
func (d *Display) SetDynamicDSIClock(bitClkRate uint64) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::SetDynamicDSIClock", slog.Uint64("bitClkHz", bitClkRate))

	if !d.panelInfo.DynamicBitclkSupport {
		return errors.Wrapf(sdm.ErrNotSupported, "panel %s bit clock is fixed", d.panelInfo.PanelName)
	}
	if !slices.Contains(d.panelInfo.BitclkRates, bitClkRate) {
		return errors.Wrapf(sdm.ErrParameters, "rate %d not in the panel table", bitClkRate)
	}

	err := d.hwIntf.SetDynamicDSIClock(bitClkRate)
	if err != nil {
		return errors.Wrapf(err, "bit clock %d rejected", bitClkRate)
	}

	d.dsiClkHz = bitClkRate
	d.validated = false
	d.lastFrame.valid = false

	return nil
}

// GetDynamicDSIClock reads the link bit clock the driver is running.
func (d *Display) GetDynamicDSIClock() (uint64, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	rate, err := d.hwIntf.GetDynamicDSIClock()
	if err != nil {
		return 0, errors.Wrap(err, "bit clock read")
	}

	d.dsiClkHz = rate
	return rate, nil
}
