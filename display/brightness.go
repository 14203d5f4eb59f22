package display

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// SetPanelBrightness programs the backlight from a normalized level in 0..1,
// with -1 turning the backlight off. It takes only the brightness lock, so a
// backlight change never waits behind a frame. The driver may defer the write
// while a power transition is in flight; the level is then applied right
// after the next frame retires.
func (d *Display) SetPanelBrightness(brightness float32) error {
	d.brightnessMutex.Lock()
	defer d.brightnessMutex.Unlock()

	d.logger.Debug("Display::SetPanelBrightness", slog.Float64("brightness", float64(brightness)))

	if brightness != -1 && (brightness < 0 || brightness > 1) {
		return errors.Wrapf(sdm.ErrParameters, "brightness %f outside 0..1", brightness)
	}

	level, err := d.brightnessToLevel(brightness)
	if err != nil {
		return err
	}

	err = d.hwIntf.SetPanelBrightness(level)
	if errors.Is(err, sdm.ErrDeferred) {
		d.cachedBrightness = brightness
		d.pendingBrightness = true
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "backlight level %d rejected", level)
	}

	d.brightness = brightness
	return nil
}

// GetPanelBrightness reads the backlight from hardware and reports it on the
// normalized scale.
func (d *Display) GetPanelBrightness() (float32, error) {
	d.brightnessMutex.Lock()
	defer d.brightnessMutex.Unlock()

	level, err := d.hwIntf.GetPanelBrightness()
	if err != nil {
		return 0, errors.Wrap(err, "backlight read")
	}

	return d.brightnessFromLevel(level)
}

// GetPanelMaxBrightness returns the largest raw level the panel takes.
func (d *Display) GetPanelMaxBrightness() (uint32, error) {
	d.brightnessMutex.Lock()
	defer d.brightnessMutex.Unlock()

	if d.panelInfo.PanelMaxBrightness <= 0 {
		return 0, errors.Wrap(sdm.ErrDriverData, "panel reports no brightness range")
	}
	return uint32(d.panelInfo.PanelMaxBrightness), nil
}

// SetBLScale programs the dimming scale applied on top of the client level.
func (d *Display) SetBLScale(level uint32) error {
	d.brightnessMutex.Lock()
	defer d.brightnessMutex.Unlock()

	d.logger.Debug("Display::SetBLScale", slog.Int("level", int(level)))

	err := d.hwIntf.SetBLScale(level)
	if err != nil {
		return errors.Wrapf(err, "backlight scale %d rejected", level)
	}
	return nil
}

// SetDimmingEnable toggles panel-side backlight dimming.
func (d *Display) SetDimmingEnable(enable bool) error {
	d.brightnessMutex.Lock()
	defer d.brightnessMutex.Unlock()

	d.logger.Debug("Display::SetDimmingEnable", slog.Bool("enable", enable))

	err := d.hwIntf.SetDimmingEnable(enable)
	if err != nil {
		return errors.Wrapf(err, "dimming %t rejected", enable)
	}
	return nil
}

// SetDimmingMinBacklight sets the floor the dimming block may reach.
func (d *Display) SetDimmingMinBacklight(level int) error {
	d.brightnessMutex.Lock()
	defer d.brightnessMutex.Unlock()

	d.logger.Debug("Display::SetDimmingMinBacklight", slog.Int("level", level))

	err := d.hwIntf.SetDimmingMinBacklight(level)
	if err != nil {
		return errors.Wrapf(err, "dimming floor %d rejected", level)
	}
	return nil
}

// brightnessToLevel maps the normalized level onto the panel's raw range.
func (d *Display) brightnessToLevel(brightness float32) (int, error) {
	if brightness == -1 {
		return -1, nil
	}

	minLevel := d.panelInfo.PanelMinBrightness
	maxLevel := d.panelInfo.PanelMaxBrightness
	if minLevel >= maxLevel {
		return 0, errors.Wrapf(sdm.ErrDriverData, "panel brightness range %f..%f", minLevel, maxLevel)
	}

	return int(brightness*(maxLevel-minLevel) + minLevel), nil
}

func (d *Display) brightnessFromLevel(level int) (float32, error) {
	if level < 0 {
		return -1, nil
	}

	minLevel := d.panelInfo.PanelMinBrightness
	maxLevel := d.panelInfo.PanelMaxBrightness
	if minLevel >= maxLevel {
		return 0, errors.Wrapf(sdm.ErrDriverData, "panel brightness range %f..%f", minLevel, maxLevel)
	}

	if float32(level) <= minLevel {
		return 0, nil
	}
	return (float32(level) - minLevel) / (maxLevel - minLevel), nil
}
