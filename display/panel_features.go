package display

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// setUpDemuraLocked binds a demura correction instance and reserves the fetch
// pipes its correction layer rides on. Failure leaves the display running
// without correction.
func (d *Display) setUpDemuraLocked() error {
	demura, err := d.options.PanelFeatures.CreateDemuraIntf(sdm.DemuraInputConfig{
		PanelID:            d.panelInfo.PanelID,
		PanelName:          d.panelInfo.PanelName,
		BrightnessBasePath: d.brightnessBasePath,
	})
	if err != nil {
		return errors.Wrap(err, "demura create")
	}

	err = demura.Init()
	if err != nil {
		return errors.Wrap(err, "demura init")
	}

	resources, err := d.compManager.ReserveDemuraResources(d.displayID)
	if err != nil {
		deinitErr := demura.Deinit()
		if deinitErr != nil {
			d.logger.Error("error unwinding demura instance", slog.Any("error", deinitErr))
		}
		return errors.Wrap(err, "demura fetch resources")
	}

	d.demura = demura
	d.demuraResources = resources
	d.compManager.SetDemuraStatusForDisplay(d.displayID, true)

	return nil
}

func (d *Display) tearDownDemuraLocked() {
	if d.demura == nil {
		return
	}

	err := d.demura.SetActive(false)
	if err != nil {
		d.logger.Warn("demura not paused before teardown", slog.Any("error", err))
	}
	err = d.demura.Deinit()
	if err != nil {
		d.logger.Error("error tearing down demura instance", slog.Any("error", err))
	}

	d.compManager.FreeDemuraFetchResources(d.displayID)
	d.compManager.SetDemuraStatusForDisplay(d.displayID, false)

	d.demura = nil
	d.demuraResources = nil
}

func (d *Display) demuraSetActiveLocked(active bool) {
	if d.demura == nil {
		return
	}

	err := d.demura.SetActive(active)
	if err != nil {
		d.logger.Warn("demura state change failed", slog.Bool("active", active),
			slog.Any("error", err))
	}
}

func (d *Display) setUpSPRLocked() error {
	spr, err := d.options.PanelFeatures.CreateSPRIntf(sdm.SPRInputConfig{
		PanelName: d.panelInfo.PanelName,
	})
	if err != nil {
		return errors.Wrap(err, "spr create")
	}

	err = spr.Init()
	if err != nil {
		return errors.Wrap(err, "spr init")
	}

	d.spr = spr
	return nil
}

func (d *Display) tearDownSPRLocked() {
	if d.spr == nil {
		return
	}

	err := d.spr.Deinit()
	if err != nil {
		d.logger.Error("error tearing down spr instance", slog.Any("error", err))
	}
	d.spr = nil
}

// SPREnabled reports whether the bound subpixel-rendering instance is active.
// A display without one reports false.
func (d *Display) SPREnabled() (bool, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	if d.spr == nil {
		return false, nil
	}
	return d.spr.Enabled()
}
