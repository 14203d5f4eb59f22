package display

import (
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// SetRefreshRate changes the panel refresh rate without switching configs.
// finalRate marks a client-chosen rate that must land as given; idleScreen
// marks a request made because nothing on screen is updating.
func (d *Display) SetRefreshRate(refreshRate uint32, finalRate bool, idleScreen bool) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::SetRefreshRate", slog.Int("rateHz", int(refreshRate)),
		slog.Bool("finalRate", finalRate), slog.Bool("idleScreen", idleScreen))

	if d.shutdown {
		return errors.Wrap(sdm.ErrShutDown, "refresh rate after deinit")
	}
	if !d.active {
		return errors.Wrap(sdm.ErrPermission, "refresh rate on an inactive display")
	}
	if d.options.DisableDynamicFps || !d.panelInfo.DynamicFPS {
		return errors.Wrapf(sdm.ErrNotSupported, "panel %s refresh rate is fixed", d.panelInfo.PanelName)
	}
	if d.qsyncMode != sdm.QSyncModeNone {
		return errors.Wrap(sdm.ErrNotSupported, "qsync owns the refresh rate")
	}
	if refreshRate < d.panelInfo.MinFPS || refreshRate > d.panelInfo.MaxFPS {
		return errors.Wrapf(sdm.ErrParameters, "rate %d outside panel range %d..%d",
			refreshRate, d.panelInfo.MinFPS, d.panelInfo.MaxFPS)
	}

	if d.handleIdleTimeout && !finalRate && !d.options.EnableQsyncIdle {
		if !d.canLowerFpsLocked(idleScreen) {
			return errors.Wrap(sdm.ErrNotSupported, "idle drop suppressed")
		}
		// Idle wants the panel at its floor, not at the requested rate.
		refreshRate = d.panelInfo.MinFPS
	}

	if refreshRate != d.currentRefreshRate {
		err := d.hwIntf.SetRefreshRate(refreshRate)
		if err != nil {
			// The panel can refuse mid mode-switch or under interference. A
			// refused write also ends this idle cycle.
			d.handleIdleTimeout = false
			return errors.Wrapf(err, "refresh rate %d rejected", refreshRate)
		}

		// The new rate may no longer fit a single mixer's clock budget.
		err = d.compManager.CheckEnforceSplit(d.compHandle, refreshRate)
		if err != nil {
			return errors.Wrapf(err, "split check at %d", refreshRate)
		}
	}

	if d.options.EnhanceIdleTime && d.handleIdleTimeout && refreshRate == d.panelInfo.MinFPS {
		// The panel sat at its floor long enough; fold composition toward GPU
		// while nothing moves.
		d.compManager.ProcessIdleTimeout(d.compHandle)
	}

	d.currentRefreshRate = refreshRate
	d.validated = false
	d.lastFrame.valid = false

	return nil
}

// canLowerFpsLocked decides whether an idle-driven rate drop may proceed. With
// EnhanceIdleTime the panel must have sat idle for the configured active
// window, not merely crossed into it.
func (d *Display) canLowerFpsLocked(idleScreen bool) bool {
	if !d.options.EnhanceIdleTime {
		return d.handleIdleTimeout
	}
	if !idleScreen || !d.handleIdleTimeout {
		return false
	}

	elapsed := time.Since(d.idleEntered)
	return elapsed >= time.Duration(d.idleActiveMs)*time.Millisecond
}

// GetRefreshRate returns the rate the panel is actually running. During a
// deferred config switch this still reports the outgoing rate.
func (d *Display) GetRefreshRate() (uint32, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return d.currentRefreshRate, nil
}

// GetRefreshRateRange returns the panel's supported rate window.
func (d *Display) GetRefreshRateRange() (uint32, uint32, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	if !d.panelInfo.DynamicFPS {
		return d.currentRefreshRate, d.currentRefreshRate, nil
	}
	return d.panelInfo.MinFPS, d.panelInfo.MaxFPS, nil
}

// SetIdleTimeoutMs configures the idle windows. activeMs is how long the
// screen must hold still before the panel may drop its rate; inactiveMs is
// the window used once it already has.
func (d *Display) SetIdleTimeoutMs(activeMs uint32, inactiveMs uint32) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::SetIdleTimeoutMs", slog.Int("activeMs", int(activeMs)),
		slog.Int("inactiveMs", int(inactiveMs)))

	d.idleActiveMs = activeMs
	d.idleInactiveMs = inactiveMs
	d.compManager.SetIdleTimeoutMs(d.compHandle, activeMs, inactiveMs)

	// The panel-side timer rides on the next commit.
	d.pendingIdleTime = int(activeMs)
}
