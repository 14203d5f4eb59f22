package display

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// SamplingState is whether the panel histogram block is collecting.
type SamplingState uint32

const (
	SamplingOff SamplingState = iota
	SamplingOn
)

var samplingStateMapping = map[SamplingState]string{
	SamplingOff: "Off",
	SamplingOn:  "On",
}

func (s SamplingState) String() string {
	return samplingStateMapping[s]
}

// SetColorSamplingState starts or stops histogram collection. The block is
// programmed immediately; its interrupt enable rides on the next commit.
func (d *Display) SetColorSamplingState(state SamplingState) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::SetColorSamplingState", slog.String("state", state.String()))

	if state > SamplingOn {
		return errors.Wrapf(sdm.ErrParameters, "sampling state %d out of range", state)
	}

	value := uint32(0)
	if state == SamplingOn {
		value = 1
	}
	err := d.hwIntf.SetDppsFeature(sdm.DppsFeature{
		ID:    sdm.DppsFeatureHistogramControl,
		Value: value,
	})
	if err != nil {
		return errors.Wrap(err, "histogram control")
	}

	d.samplingState = state
	d.histogramPending = true

	return nil
}

// GetStcColorModes lists the modes the color pipeline can render.
func (d *Display) GetStcColorModes() ([]sdm.ColorMode, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	if d.options.ColorManager == nil {
		return nil, errors.Wrap(sdm.ErrNotSupported, "no color manager bound")
	}
	return d.options.ColorManager.StcModes()
}

// SetStcColorMode makes a color mode current. The hardware programming lands
// with the next commit, which must cover the whole panel.
func (d *Display) SetStcColorMode(mode sdm.ColorMode) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::SetStcColorMode", slog.Int("intent", int(mode.Intent)))

	if d.options.ColorManager == nil {
		return errors.Wrap(sdm.ErrNotSupported, "no color manager bound")
	}

	err := d.options.ColorManager.SetStcMode(mode)
	if err != nil {
		return errors.Wrap(err, "stc mode")
	}

	d.puState = d.puState.apply(puEventDisableOneFrame)
	d.validated = false
	d.lastFrame.valid = false

	return nil
}

// NotifyDisplayCalibrationMode tells the color pipeline a calibration tool
// has taken over.
func (d *Display) NotifyDisplayCalibrationMode(inCalibration bool) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::NotifyDisplayCalibrationMode", slog.Bool("inCalibration", inCalibration))

	if d.options.ColorManager == nil {
		return errors.Wrap(sdm.ErrNotSupported, "no color manager bound")
	}
	return d.options.ColorManager.NotifyCalibrationMode(inCalibration)
}

// SetDisplayDppsAdROI bounds the assertive-display algorithm to a horizontal
// band of the panel.
func (d *Display) SetDisplayDppsAdROI(roi sdm.DppsAdROI) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::SetDisplayDppsAdROI", slog.Int("hStart", int(roi.HStart)),
		slog.Int("hEnd", int(roi.HEnd)))

	if roi.HStart >= roi.HEnd || roi.HEnd > d.displayAttributes.XPixels {
		return errors.Wrapf(sdm.ErrParameters, "ad roi %d..%d outside panel width %d",
			roi.HStart, roi.HEnd, d.displayAttributes.XPixels)
	}

	err := d.hwIntf.SetDisplayDppsAdROI(roi)
	if err != nil {
		return errors.Wrap(err, "ad roi")
	}
	return nil
}
