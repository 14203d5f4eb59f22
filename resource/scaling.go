package resource

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/Parikk-Studio/android-hardware-qcom-display/disputils"
	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// ValidateScaling checks one crop to destination mapping against the scaling
// engine limits. rotate90 swaps the crop axes before comparison, ubwcTiled
// rules out decimation assistance, and useRotatorDownscale accounts for a
// rotator pass that has already shrunk the source.
func (m *Manager) ValidateScaling(crop sdm.Rect, dst sdm.Rect, rotate90 bool,
	layout sdm.BufferLayout, useRotatorDownscale bool) error {

	cropWidth := crop.Width()
	cropHeight := crop.Height()
	if rotate90 {
		cropWidth, cropHeight = cropHeight, cropWidth
	}

	dstWidth := dst.Width()
	dstHeight := dst.Height()
	if cropWidth < 1 || cropHeight < 1 || dstWidth < 1 || dstHeight < 1 {
		return errors.Wrapf(sdm.ErrParameters, "degenerate scaling %s -> %s", crop, dst)
	}

	scaleX := dstWidth / cropWidth
	scaleY := dstHeight / cropHeight

	err := m.validateUpScaling(scaleX, scaleY)
	if err != nil {
		return err
	}

	return m.validateDownScaling(cropWidth/dstWidth, cropHeight/dstHeight,
		layout == sdm.LayoutUBWC, useRotatorDownscale)
}

func (m *Manager) validateUpScaling(scaleX float32, scaleY float32) error {
	maxUp := float32(m.hwResInfo.MaxScaleUp)
	if maxUp < 1 {
		maxUp = 1
	}

	if scaleX > maxUp || scaleY > maxUp {
		return errors.Wrapf(sdm.ErrNotSupported, "upscale %.2fx%.2f exceeds %.0fx", scaleX, scaleY, maxUp)
	}

	return nil
}

func (m *Manager) validateDownScaling(downScaleX float32, downScaleY float32,
	ubwcTiled bool, useRotatorDownscale bool) error {

	maxDown := float32(m.hwResInfo.MaxScaleDown)
	if maxDown < 1 {
		maxDown = 1
	}

	// Decimation multiplies the reachable downscale, but it cannot walk a
	// UBWC tile layout and a rotator pass already owns the pre-shrink.
	if !ubwcTiled && m.hwResInfo.HasDecimation && !useRotatorDownscale {
		maxDown *= maxDecimationDownScaleRatio
	}

	if downScaleX > maxDown || downScaleY > maxDown {
		return errors.Wrapf(sdm.ErrNotSupported, "downscale %.2fx%.2f exceeds %.0fx",
			downScaleX, downScaleY, maxDown)
	}

	return nil
}

// setDecimationFactor picks the smallest power-of-two fetch decimation that
// brings the residual downscale back within the scaler's ratio, per axis.
func (m *Manager) setDecimationFactor(pipe *sdm.HWPipeInfo, format sdm.LayerBufferFormat) error {
	pipe.HorizontalDecimation = 0
	pipe.VerticalDecimation = 0

	if !m.hwResInfo.HasDecimation || format.Layout() == sdm.LayoutUBWC {
		return nil
	}

	srcWidth := pipe.SrcROI.Width()
	srcHeight := pipe.SrcROI.Height()
	dstWidth := pipe.DstROI.Width()
	dstHeight := pipe.DstROI.Height()

	horizontal, err := m.calculateDecimation(srcWidth / dstWidth)
	if err != nil {
		return err
	}
	pipe.HorizontalDecimation = horizontal

	vertical, err := m.calculateDecimation(srcHeight / dstHeight)
	if err != nil {
		return err
	}
	pipe.VerticalDecimation = vertical

	return nil
}

func (m *Manager) calculateDecimation(downScale float32) (uint8, error) {
	maxDown := float32(m.hwResInfo.MaxScaleDown)
	if maxDown < 1 {
		maxDown = 1
	}

	if downScale <= maxDown {
		return 0, nil
	}

	decimation := disputils.CeilLog2(uint32(math.Ceil(float64(downScale / maxDown))))
	if uint32(1)<<decimation > maxDecimationDownScaleRatio {
		return 0, errors.Wrapf(sdm.ErrNotSupported,
			"downscale %.2f needs decimation beyond %dx", downScale, maxDecimationDownScaleRatio)
	}

	return decimation, nil
}
