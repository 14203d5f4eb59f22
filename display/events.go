package display

import (
	"log/slog"
	"time"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// VSync forwards the panel vsync to the client. Delivery is suppressed while
// qsync rides through panel idle, because the stretched timing would feed the
// client a misleading cadence.
func (d *Display) VSync(timestamp int64) error {
	d.mutex.RLock()
	enabled := d.vsyncEnabled && !d.shutdown
	suppressed := d.qsyncIdleActiveLocked()
	d.mutex.RUnlock()

	if !enabled || suppressed {
		return nil
	}

	return d.eventHandler.VSync(sdm.DisplayEventVSync{Timestamp: timestamp})
}

// IdleTimeout marks the display idle and folds composition back toward GPU.
// Only video-mode panels idle this way; command panels stop scanning on their
// own.
func (d *Display) IdleTimeout() {
	d.mutex.Lock()

	d.logger.Debug("Display::IdleTimeout", slog.Int("displayId", int(d.displayID)))

	if d.shutdown || !d.active || d.panelInfo.Mode != sdm.ModeVideo {
		d.mutex.Unlock()
		return
	}

	d.handleIdleTimeout = true
	d.idleEntered = time.Now()

	err := d.hwIntf.EnableSelfRefresh()
	if err != nil {
		d.logger.Warn("self refresh not engaged", slog.Any("error", err))
	}

	d.compManager.ProcessIdleTimeout(d.compHandle)
	d.mutex.Unlock()

	err = d.eventHandler.Refresh()
	if err != nil {
		d.logger.Warn("refresh request failed", slog.Any("error", err))
	}
	err = d.eventHandler.HandleEvent(sdm.DisplayEventIdleTimeout)
	if err != nil {
		d.logger.Warn("idle notify failed", slog.Any("error", err))
	}
}

// PingPongTimeout means the panel stopped consuming frames. There is nothing
// to recover here; capture driver state for postmortem analysis.
func (d *Display) PingPongTimeout() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Warn("ping pong timeout", slog.Int("displayId", int(d.displayID)))

	if d.shutdown {
		return
	}

	err := d.hwIntf.DumpDebugData()
	if err != nil {
		d.logger.Error("error dumping driver state", slog.Any("error", err))
	}
}

// ThermalEvent tells the strategy layer to prefer cooler compositions and
// forwards the condition to the client.
func (d *Display) ThermalEvent(level int64) {
	d.mutex.Lock()

	d.logger.Debug("Display::ThermalEvent", slog.Int64("level", level))

	if d.shutdown {
		d.mutex.Unlock()
		return
	}

	d.compManager.ProcessThermalEvent(d.compHandle, level)
	d.validated = false
	d.lastFrame.valid = false
	d.mutex.Unlock()

	err := d.eventHandler.HandleEvent(sdm.DisplayEventThermal)
	if err != nil {
		d.logger.Warn("thermal notify failed", slog.Any("error", err))
	}
}

// IdlePowerCollapse reports that a command-mode panel collapsed on its own.
func (d *Display) IdlePowerCollapse() {
	d.mutex.Lock()

	d.logger.Debug("Display::IdlePowerCollapse", slog.Int("displayId", int(d.displayID)))

	if d.shutdown || d.panelInfo.Mode != sdm.ModeCommand {
		d.mutex.Unlock()
		return
	}

	d.compManager.ProcessIdlePowerCollapse(d.compHandle)
	d.mutex.Unlock()

	err := d.eventHandler.HandleEvent(sdm.DisplayEventIdlePowerCollapse)
	if err != nil {
		d.logger.Warn("idle power collapse notify failed", slog.Any("error", err))
	}
}

// PanelDead power cycles the panel, restores what the driver lost, and lets
// the client know its frames went with it.
func (d *Display) PanelDead() {
	d.mutex.Lock()

	if d.shutdown {
		d.mutex.Unlock()
		return
	}

	err := d.resetPanelLocked()
	if err != nil {
		d.logger.Error("error recovering dead panel", slog.Any("error", err))
	}
	d.mutex.Unlock()

	err = d.eventHandler.HandleEvent(sdm.DisplayEventPanelDead)
	if err != nil {
		d.logger.Warn("panel dead notify failed", slog.Any("error", err))
	}
}

// HwRecovery relays the driver's self-recovery outcome.
func (d *Display) HwRecovery(event sdm.HWRecoveryEvent) {
	switch event {
	case sdm.HWRecoverySuccess:
		d.logger.Debug("driver recovered on its own", slog.Int("displayId", int(d.displayID)))

	case sdm.HWRecoveryCapture:
		d.mutex.Lock()
		if !d.shutdown {
			err := d.hwIntf.DumpDebugData()
			if err != nil {
				d.logger.Error("error dumping driver state", slog.Any("error", err))
			}
		}
		d.mutex.Unlock()

	case sdm.HWRecoveryDisplayPowerReset:
		err := d.eventHandler.HandleEvent(sdm.DisplayEventPowerReset)
		if err != nil {
			d.logger.Warn("power reset notify failed", slog.Any("error", err))
		}

	default:
		d.logger.Warn("unknown recovery event", slog.Int("event", int(event)))
	}
}

// Histogram forwards one histogram sample to the client.
func (d *Display) Histogram(fd int, blobID uint32) error {
	return d.eventHandler.HistogramEvent(fd, blobID)
}

// BacklightEvent records a driver-initiated brightness change and mirrors it
// to the peer VM when one is attached.
func (d *Display) BacklightEvent(level float32) {
	d.logger.Debug("Display::BacklightEvent", slog.Float64("level", float64(level)))

	d.brightnessMutex.Lock()
	d.brightness = level
	d.brightnessMutex.Unlock()

	if d.options.IPC == nil {
		return
	}

	d.mutex.RLock()
	isPrimary := d.panelInfo.IsPrimaryPanel
	d.mutex.RUnlock()

	err := d.options.IPC.SetBacklightParams(sdm.IPCBacklightParams{
		Brightness: level,
		IsPrimary:  isPrimary,
	})
	if err != nil {
		d.logger.Warn("backlight mirror failed", slog.Any("error", err))
	}
}

// MMRMEvent records the clock the resource manager granted. The composition
// layer picks the cap up on the next prepare.
func (d *Display) MMRMEvent(clkHz uint32) {
	d.logger.Debug("Display::MMRMEvent", slog.Int("clkHz", int(clkHz)))
}

// PowerEvent asks the client for a frame so a driver-side power transition
// can complete against fresh content.
func (d *Display) PowerEvent() {
	d.logger.Debug("Display::PowerEvent")

	err := d.eventHandler.Refresh()
	if err != nil {
		d.logger.Warn("refresh request failed", slog.Any("error", err))
	}
}
