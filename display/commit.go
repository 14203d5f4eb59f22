package display

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/Parikk-Studio/android-hardware-qcom-display/disputils"
	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// Commit pushes the validated frame to hardware. The previous frame's retire
// fence is waited first so the panel never holds two frames in flight.
func (d *Display) Commit(stack *sdm.DispLayerStack) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::Commit", slog.Int("displayId", int(d.displayID)))

	if d.shutdown {
		return errors.Wrap(sdm.ErrShutDown, "commit after deinit")
	}
	if stack == nil || stack.Stack == nil {
		return errors.Wrap(sdm.ErrParameters, "nil layer stack")
	}
	if !d.active {
		return errors.Wrap(sdm.ErrPermission, "commit on an inactive display")
	}
	if !d.validated {
		return errors.Wrap(sdm.ErrNotValidated, "commit without a successful prepare")
	}

	err := d.preCommitLocked(stack)
	if err != nil {
		return err
	}

	err = d.compManager.Commit(d.compHandle, stack)
	if err != nil {
		return err
	}

	retire, err := d.hwIntf.Commit(stack)
	if err != nil {
		flushErr := d.hwIntf.Flush(stack)
		if flushErr != nil {
			d.logger.Error("error flushing after failed commit", slog.Any("error", flushErr))
		}
		d.validated = false
		d.lastFrame.valid = false
		return errors.Wrapf(err, "display %d commit failed", d.displayID)
	}

	stack.Stack.RetireFence = retire
	d.pendingRetire = retire

	return nil
}

func (d *Display) preCommitLocked(stack *sdm.DispLayerStack) error {
	// The previous frame must leave the panel before the next one is pushed.
	// An idle drop may have parked vsync in the meantime, so re-assert it.
	if d.pendingRetire != nil {
		err := sdm.WaitFence(d.pendingRetire)
		if err != nil {
			return errors.Wrap(err, "previous retire fence")
		}
		d.pendingRetire = nil

		if d.vsyncEnabled {
			err = d.setVSyncStateLocked(true)
			if err != nil {
				d.logger.Warn("vsync re-register failed", slog.Any("error", err))
			}
		}
	}

	if d.pendingFrameTrigger {
		err := d.hwIntf.SetFrameTrigger(d.frameTriggerMode)
		if err != nil {
			return errors.Wrapf(err, "frame trigger mode %d", d.frameTriggerMode)
		}
		d.pendingFrameTrigger = false
	}

	if d.histogramPending {
		value := uint32(0)
		if d.samplingState == SamplingOn {
			value = 1
		}
		err := d.hwIntf.SetDppsFeature(sdm.DppsFeature{ID: sdm.DppsFeatureHistogramIRQ, Value: value})
		if err != nil {
			d.logger.Warn("histogram irq not programmed", slog.Any("error", err))
		}
		d.histogramPending = false
	}

	if cs := stack.Stack.BlendCS; !d.blendSpaceSet || cs != d.blendSpace {
		err := d.hwIntf.SetBlendSpace(cs)
		if err != nil {
			d.logger.Warn("blend space not programmed", slog.Any("error", err))
		} else {
			d.blendSpace = cs
			d.blendSpaceSet = true
			d.blendSpaceDirty = true
		}
	}

	// Single-buffered content on a command panel needs the panel re-fetching
	// every vsync while it stays on screen.
	if d.panelInfo.Mode == sdm.ModeCommand {
		autoRefresh := stack.Stack.Flags.SingleBufferedPresent
		if autoRefresh != d.autoRefresh {
			err := d.hwIntf.SetAutoRefresh(autoRefresh)
			if err != nil {
				d.logger.Warn("auto refresh not toggled", slog.Any("error", err))
			} else {
				d.autoRefresh = autoRefresh
			}
		}
	}

	return nil
}

// PostCommit retires the frame: resource bookkeeping, acks to waiters, and
// every piece of housekeeping that must trail the hardware commit.
func (d *Display) PostCommit(stack *sdm.DispLayerStack) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::PostCommit", slog.Int("displayId", int(d.displayID)))
	disputils.DebugValidate(d)

	if d.shutdown {
		return errors.Wrap(sdm.ErrShutDown, "postcommit after deinit")
	}
	if stack == nil || stack.Stack == nil {
		return errors.Wrap(sdm.ErrParameters, "nil layer stack")
	}

	d.firstCycle = false
	d.frameCount++

	err := d.compManager.PostCommit(d.compHandle, stack)
	if err != nil {
		return err
	}

	d.puAck.Signal()
	d.puState = d.puState.apply(puEventCommit)

	if !d.dppsInitDone {
		// The engine binds lazily at the first commit so it never sees a
		// display that has not produced a frame. A failed engine stays down.
		initErr := d.dpps.Init(d, d.panelInfo.PanelName)
		if initErr != nil {
			d.logger.Warn("dpps engine unavailable", slog.Any("error", initErr))
		}
		d.dppsInitDone = true
	}
	if d.commitNotify {
		notifyErr := d.dpps.NotifyCommit(d.displayType)
		if notifyErr != nil {
			d.logger.Warn("dpps commit notify failed", slog.Any("error", notifyErr))
		}
	}

	if d.blendSpaceDirty {
		notifyErr := d.dpps.NotifyBlendSpace(d.blendSpace, d.panelInfo.IsPrimaryPanel)
		if notifyErr != nil {
			d.logger.Warn("dpps blend space notify failed", slog.Any("error", notifyErr))
		}
		d.blendSpaceDirty = false
	}

	d.applyPendingBrightness(stack.Stack.RetireFence)

	d.sendIPCConfigsLocked()

	if stack.Info.SetIdleTimeMs >= 0 {
		idleErr := d.hwIntf.SetIdleTimeoutMs(uint32(stack.Info.SetIdleTimeMs))
		if idleErr != nil {
			d.logger.Warn("panel idle time not programmed", slog.Any("error", idleErr))
		}
		d.pendingIdleTime = -1
		stack.Info.SetIdleTimeMs = -1
	}

	d.updateDeferCountLocked()

	err = d.reconfigureDisplayLocked()
	if err != nil {
		return err
	}

	d.handleQsyncPostCommitLocked()

	d.handleIdleTimeout = false

	return nil
}

// applyPendingBrightness lands a backlight write the driver deferred during a
// power transition. It takes the brightness lock itself.
func (d *Display) applyPendingBrightness(retire sdm.Fence) {
	d.brightnessMutex.Lock()
	pending := d.pendingBrightness
	brightness := d.cachedBrightness
	d.pendingBrightness = false
	d.brightnessMutex.Unlock()

	if !pending {
		return
	}

	// The write only takes once the frame it rode behind has reached the
	// panel.
	err := sdm.WaitFence(retire)
	if err != nil {
		d.logger.Warn("retire wait before backlight apply", slog.Any("error", err))
	}

	err = d.SetPanelBrightness(brightness)
	if err != nil {
		d.logger.Warn("deferred backlight apply failed", slog.Any("error", err))
	}
}

func (d *Display) sendIPCConfigsLocked() {
	ipc := d.options.IPC
	if ipc == nil || d.ipcConfigSent {
		return
	}

	err := ipc.SetDisplayConfigParams(sdm.IPCDisplayConfigParams{
		XPixels:     d.fbConfig.XPixels,
		YPixels:     d.fbConfig.YPixels,
		FPS:         d.currentRefreshRate,
		ConfigIndex: d.activeConfigIndex,
		SmartPanel:  d.fbConfig.SmartPanel,
		IsPrimary:   d.panelInfo.IsPrimaryPanel,
	})
	if err != nil {
		d.logger.Warn("display config mirror failed", slog.Any("error", err))
		return
	}

	d.brightnessMutex.Lock()
	brightness := d.brightness
	d.brightnessMutex.Unlock()
	if brightness >= 0 {
		err = ipc.SetBacklightParams(sdm.IPCBacklightParams{
			Brightness: brightness,
			IsPrimary:  d.panelInfo.IsPrimaryPanel,
		})
		if err != nil {
			d.logger.Warn("backlight mirror failed", slog.Any("error", err))
		}
	}

	d.ipcConfigSent = true
}

// reconfigureDisplayLocked refetches the hardware's view of the display and
// rebinds everything when it moved. A staged refresh-rate deferral shadows
// the comparison so the pending switch is not applied twice.
func (d *Display) reconfigureDisplayLocked() error {
	attributes, err := d.configAttributes(d.activeConfigIndex)
	if err != nil {
		return err
	}
	panelInfo, err := d.hwIntf.GetHWPanelInfo()
	if err != nil {
		return errors.Wrap(err, "panel info refetch")
	}
	mixerAttributes, err := d.hwIntf.GetMixerAttributes()
	if err != nil {
		return errors.Wrap(err, "mixer attributes refetch")
	}

	if d.deferred.dirty {
		attributes.FPS = d.displayAttributes.FPS
		attributes.VsyncPeriodNs = d.displayAttributes.VsyncPeriodNs
	}

	if attributes.Equal(&d.displayAttributes) && panelInfo.Equal(&d.panelInfo) &&
		mixerAttributes.Equal(&d.mixerAttributes) {
		return nil
	}

	onlyFpsChanged := d.displayAttributes.OnlyFpsChanged(&attributes) &&
		panelInfo.Equal(&d.panelInfo) && mixerAttributes.Equal(&d.mixerAttributes)

	fbResolution := sdm.Resolution{Width: attributes.XPixels, Height: attributes.YPixels}
	_, err = d.compManager.ReconfigureDisplay(d.compHandle, attributes, panelInfo,
		mixerAttributes, fbResolution)
	if err != nil {
		return err
	}

	previousFPS := d.displayAttributes.FPS
	previousMode := d.panelInfo.Mode

	d.displayAttributes = attributes
	d.panelInfo = panelInfo
	d.mixerAttributes = mixerAttributes
	d.fbConfig = variableInfoFromAttributes(&attributes)
	d.currentRefreshRate = attributes.FPS
	d.updatePuOnDestScalerLocked()
	d.validated = false
	d.lastFrame.valid = false
	d.ipcConfigSent = false

	if !onlyFpsChanged {
		// Geometry moved under the panel; the next frame must repaint all of
		// it.
		d.puState = d.puState.apply(puEventDisableOneFrame)
	}

	if d.panelInfo.Mode != previousMode {
		d.updateDisplayModeParamsLocked()
	}

	if attributes.FPS != previousFPS && d.options.EnableDppsDynamicFps {
		notifyErr := d.dpps.NotifyFPS(attributes.FPS, d.panelInfo.IsPrimaryPanel)
		if notifyErr != nil {
			d.logger.Warn("dpps fps notify failed", slog.Any("error", notifyErr))
		}
	}

	return nil
}
