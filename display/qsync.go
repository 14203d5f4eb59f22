package display

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// SetQSyncMode changes the adaptive-sync policy. The change takes effect on
// the next prepared frame; a refresh is requested so one arrives promptly.
func (d *Display) SetQSyncMode(mode sdm.QSyncMode) error {
	d.mutex.Lock()

	d.logger.Debug("Display::SetQSyncMode", slog.String("mode", mode.String()))

	if !d.panelInfo.QsyncSupport {
		d.mutex.Unlock()
		return errors.Wrapf(sdm.ErrNotSupported, "panel %s has no qsync", d.panelInfo.PanelName)
	}
	if d.firstCycle {
		d.mutex.Unlock()
		return errors.Wrap(sdm.ErrNotSupported, "qsync before the first commit")
	}
	if mode > sdm.QSyncModeOneShotContinuous {
		d.mutex.Unlock()
		return errors.Wrapf(sdm.ErrParameters, "qsync mode %d out of range", mode)
	}
	if d.qsyncMode == mode {
		d.mutex.Unlock()
		return nil
	}

	d.setQsyncModeLocked(mode)
	d.mutex.Unlock()

	err := d.eventHandler.Refresh()
	if err != nil {
		d.logger.Warn("refresh request failed", slog.Any("error", err))
	}
	return nil
}

func (d *Display) setQsyncModeLocked(mode sdm.QSyncMode) {
	d.qsyncMode = mode
	d.needsAVRUpdate = true
	d.validated = false
	d.lastFrame.valid = false
}

// GetQSyncMode returns the client-requested policy, not what the hardware is
// running this instant.
func (d *Display) GetQSyncMode() (sdm.QSyncMode, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return d.qsyncMode, nil
}

// GetQsyncFps returns the lowest refresh rate qsync may stretch down to.
func (d *Display) GetQsyncFps() (uint32, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	if !d.panelInfo.QsyncSupport || d.panelInfo.QsyncMinFPS == 0 {
		return 0, errors.Wrapf(sdm.ErrNotSupported, "panel %s has no qsync floor", d.panelInfo.PanelName)
	}
	return d.panelInfo.QsyncMinFPS, nil
}

// updateQsyncModeLocked fills the frame's AVR programming. The hardware write
// is only flagged when the effective mode moved or a mode change is pending
// from the client.
func (d *Display) updateQsyncModeLocked(info *sdm.HWLayersInfo) {
	if !d.panelInfo.QsyncSupport {
		info.AVRInfo = sdm.HWAVRInfo{}
		return
	}

	mode := d.qsyncMode

	// Panel idle stretches every frame anyway, so a one-shot request widens
	// to continuous until activity resumes.
	if d.options.EnableQsyncIdle && d.handleIdleTimeout &&
		(mode == sdm.QSyncModeOneShot || mode == sdm.QSyncModeOneShotContinuous) {
		mode = sdm.QSyncModeContinuous
	}

	info.AVRInfo = sdm.HWAVRInfo{
		Update: d.needsAVRUpdate || mode != d.activeQsyncMode,
		Mode:   mode.AVRMode(),
	}
	d.activeQsyncMode = mode
}

func (d *Display) qsyncIdleActiveLocked() bool {
	return d.options.EnableQsyncIdle && d.handleIdleTimeout &&
		d.activeQsyncMode != sdm.QSyncModeNone
}

func (d *Display) handleQsyncPostCommitLocked() {
	notifyIdle := d.qsyncIdleActiveLocked()

	switch d.qsyncMode {
	case sdm.QSyncModeOneShot:
		// The stretched frame has landed; fall back and force the off write
		// on the next prepare.
		d.setQsyncModeLocked(sdm.QSyncModeNone)
	case sdm.QSyncModeOneShotContinuous:
		// Re-arms on every commit; the AVR block stays primed.
	default:
		d.needsAVRUpdate = false
	}

	if notifyIdle {
		err := d.eventHandler.HandleEvent(sdm.DisplayEventPostIdleTimeout)
		if err != nil {
			d.logger.Warn("post idle notify failed", slog.Any("error", err))
		}
	}
}
