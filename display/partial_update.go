package display

import (
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// partialUpdateState is where the panel's regional-refresh machinery sits.
type partialUpdateState uint32

const (
	// puEnabled lets prepared frames carry damage-sized ROIs
	puEnabled partialUpdateState = iota
	// puDisabled forces full-frame ROIs until re-enabled
	puDisabled
	// puDisabledOneFrame forces one full frame and then falls back to enabled
	puDisabledOneFrame
)

var partialUpdateStateMapping = map[partialUpdateState]string{
	puEnabled:          "Enabled",
	puDisabled:         "Disabled",
	puDisabledOneFrame: "DisabledOneFrame",
}

func (s partialUpdateState) String() string {
	return partialUpdateStateMapping[s]
}

type partialUpdateEvent uint32

const (
	puEventEnable partialUpdateEvent = iota
	puEventDisable
	puEventDisableOneFrame
	puEventCommit
)

// apply returns the state after one event. The one-frame disable rides on top
// of an enabled panel and falls away at the commit that carried it; it never
// downgrades an explicit disable.
func (s partialUpdateState) apply(event partialUpdateEvent) partialUpdateState {
	switch event {
	case puEventEnable:
		return puEnabled
	case puEventDisable:
		return puDisabled
	case puEventDisableOneFrame:
		if s == puDisabled {
			return puDisabled
		}
		return puDisabledOneFrame
	case puEventCommit:
		if s == puDisabledOneFrame {
			return puEnabled
		}
	}
	return s
}

const puAckTimeout = 1000 * time.Millisecond

// ControlPartialUpdate enables or disables regional refresh on behalf of the
// display's client. It returns how many frames must land before the change is
// fully on the panel.
func (d *Display) ControlPartialUpdate(enable bool) (uint32, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::ControlPartialUpdate", slog.Bool("enable", enable))

	if !d.panelInfo.PartialUpdate {
		return 0, errors.Wrapf(sdm.ErrNotSupported, "panel %s has no partial update", d.panelInfo.PanelName)
	}
	if enable && d.dpps.PartialUpdateDisabled() {
		return 0, errors.Wrap(sdm.ErrNotSupported, "dpps engine requires full frames")
	}

	event := puEventDisable
	pendingFrames := uint32(1)
	if enable {
		event = puEventEnable
		pendingFrames = 0
	}

	d.puState = d.puState.apply(event)
	d.validated = false
	d.lastFrame.valid = false

	return pendingFrames, nil
}

// DisablePartialUpdateOneFrame forces the next prepared frame to repaint the
// whole panel.
func (d *Display) DisablePartialUpdateOneFrame() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.puState = d.puState.apply(puEventDisableOneFrame)
	d.validated = false
	d.lastFrame.valid = false

	return nil
}

func (d *Display) partialUpdateActiveLocked() bool {
	if d.puState != puEnabled {
		return false
	}
	if d.puOffDestScaler {
		return false
	}
	if d.dpps != nil && d.dpps.PartialUpdateDisabled() {
		return false
	}
	return true
}

// updatePuOnDestScalerLocked rederives whether the destination scaler holds
// regional refresh off. The driver cannot merge a partial fetch with the
// scaler's full-surface walk, so a mixer smaller than the panel keeps frames
// whole.
func (d *Display) updatePuOnDestScalerLocked() {
	d.puOffDestScaler = d.mixerAttributes.Width != d.displayAttributes.XPixels ||
		d.mixerAttributes.Height != d.displayAttributes.YPixels
}

// SetPartialUpdate is the dpps engine's toggle. It blocks until a commit
// acknowledges the change or the ack deadline passes. On timeout the flag
// stays applied and the engine decides whether to retry.
func (d *Display) SetPartialUpdate(enable bool) (bool, error) {
	d.logger.Debug("Display::SetPartialUpdate", slog.Bool("enable", enable))

	d.mutex.Lock()
	if !d.panelInfo.PartialUpdate {
		d.mutex.Unlock()
		return false, errors.Wrapf(sdm.ErrNotSupported, "panel %s has no partial update", d.panelInfo.PanelName)
	}

	event := puEventDisable
	if enable {
		event = puEventEnable
	}
	d.puState = d.puState.apply(event)
	d.validated = false
	d.lastFrame.valid = false
	d.puAck.Arm()
	d.mutex.Unlock()

	// Refresh outside the lock; the client may call straight back into this
	// session.
	err := d.eventHandler.Refresh()
	if err != nil {
		d.logger.Warn("refresh request failed", slog.Any("error", err))
	}

	if !d.puAck.Wait(puAckTimeout) {
		return enable, errors.Wrapf(sdm.ErrTimeOut, "no commit acknowledged the toggle within %s", puAckTimeout)
	}
	return enable, nil
}
