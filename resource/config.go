package resource

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/Parikk-Studio/android-hardware-qcom-display/disputils"
	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// config runs the per-layer pass: geometry validation, split decision, pipe
// acquisition, and final alignment. It mutates only the frame's Config slice
// and the composition tags of the hardware layer copies.
func (m *Manager) config(ctx *displayResourceContext, stack *sdm.DispLayerStack) error {
	info := &stack.Info

	if len(info.HWLayers) == 0 {
		return errors.Wrap(sdm.ErrNoAppLayers, "no layers staged for hardware composition")
	}
	if ctx.maxMixerStages > 0 && uint32(len(info.HWLayers)) > ctx.maxMixerStages {
		return errors.Wrapf(sdm.ErrResources, "%d layers exceed %d blending stages",
			len(info.HWLayers), ctx.maxMixerStages)
	}

	if len(info.Config) != len(info.HWLayers) {
		info.Config = make([]sdm.HWLayerConfig, len(info.HWLayers))
	}

	for i := range info.HWLayers {
		layer := &info.HWLayers[i]
		layerConfig := &info.Config[i]
		layerConfig.Reset()

		err := m.validateLayerParams(layer)
		if err != nil {
			return err
		}

		srcRect := layer.SrcRect
		dstRect := layer.DstRect

		err = m.ValidateScaling(srcRect, dstRect, false, layer.InputBuffer.Format.Layout(), false)
		if err != nil {
			return err
		}

		if ctx.displayAttributes.IsDeviceSplit && !m.hwResInfo.IsSrcSplit {
			err = m.displaySplitConfig(ctx, srcRect, dstRect, layerConfig)
		} else {
			err = m.srcSplitConfig(srcRect, dstRect, layerConfig)
		}
		if err != nil {
			return err
		}

		err = m.configurePipes(ctx, layer, uint32(i), layerConfig)
		if err != nil {
			return err
		}
	}

	return nil
}

// configurePipes finishes one layer's routing: decimation, pipe acquisition
// from the pool, and alignment of the final rects.
func (m *Manager) configurePipes(ctx *displayResourceContext, layer *sdm.Layer, zOrder uint32,
	layerConfig *sdm.HWLayerConfig) error {

	leftPipe := &layerConfig.LeftPipe
	rightPipe := &layerConfig.RightPipe

	isYUV := layer.InputBuffer.Format.IsYUV()

	for _, pipe := range []*sdm.HWPipeInfo{leftPipe, rightPipe} {
		if !pipe.Valid {
			continue
		}
		pipe.ZOrder = zOrder

		err := m.setDecimationFactor(pipe, layer.InputBuffer.Format)
		if err != nil {
			return err
		}

		needScale := m.isScalingNeeded(pipe)
		index, ok := m.getPipe(ctx.hwBlock, isYUV, needScale)
		if !ok {
			m.resourceStateLog()
			return errors.Wrapf(sdm.ErrResources,
				"no free pipe on block %d (yuv %t, scale %t)", ctx.hwBlock, isYUV, needScale)
		}
		pipe.PipeID = m.srcPipes[index].mdssPipeID
	}

	return m.alignPipeConfig(layer, leftPipe, rightPipe)
}

func (m *Manager) validateLayerParams(layer *sdm.Layer) error {
	src := layer.SrcRect
	dst := layer.DstRect

	err := m.validateDimensions(src, dst)
	if err != nil {
		return err
	}

	if layer.Flags.SolidFill {
		// Solid fill has no buffer to fetch, so format and bounds do not apply
		return nil
	}

	format := layer.InputBuffer.Format
	if format == sdm.FormatInvalid {
		return errors.Wrap(sdm.ErrNotSupported, "layer buffer carries no recognizable format")
	}
	if format.IsUBWC() && !m.hwResInfo.HasUBWC {
		return errors.Wrapf(sdm.ErrNotSupported, "format %s needs UBWC fetch support", format)
	}

	if src.Left < 0 || src.Top < 0 ||
		src.Right > float32(layer.InputBuffer.Width) || src.Bottom > float32(layer.InputBuffer.Height) {
		return errors.Wrapf(sdm.ErrParameters, "crop %s outside %dx%d buffer",
			src, layer.InputBuffer.Width, layer.InputBuffer.Height)
	}

	return nil
}

func (m *Manager) validateDimensions(crop sdm.Rect, dst sdm.Rect) error {
	if !disputils.IsValid(crop) {
		return errors.Wrapf(sdm.ErrParameters, "crop %s is empty or inverted", crop)
	}
	if !disputils.IsValid(dst) {
		return errors.Wrapf(sdm.ErrParameters, "destination %s is empty or inverted", dst)
	}

	if crop.Width() < 1 || crop.Height() < 1 || dst.Width() < 1 || dst.Height() < 1 {
		return errors.Wrapf(sdm.ErrParameters, "rects %s -> %s are under one pixel", crop, dst)
	}

	return nil
}

// srcSplitConfig routes a layer on hardware that can split the source fetch
// itself: one pipe when the spans fit, otherwise an even two-pipe split.
func (m *Manager) srcSplitConfig(srcRect sdm.Rect, dstRect sdm.Rect, layerConfig *sdm.HWLayerConfig) error {
	leftPipe := &layerConfig.LeftPipe
	rightPipe := &layerConfig.RightPipe

	maxPipeWidth := float32(m.hwResInfo.MaxPipeWidth)

	if srcRect.Width() <= maxPipeWidth && dstRect.Width() <= maxPipeWidth {
		leftPipe.Reset()
		leftPipe.SrcROI = srcRect
		leftPipe.DstROI = dstRect
		leftPipe.Valid = true
		rightPipe.Reset()
		return nil
	}

	splitRect(srcRect, dstRect, &leftPipe.SrcROI, &leftPipe.DstROI, &rightPipe.SrcROI, &rightPipe.DstROI)
	leftPipe.Valid = true
	rightPipe.Valid = true

	return nil
}

// displaySplitConfig routes a layer on a dual-mixer display without source
// split: the destination is clipped against each mixer half and the crop is
// cut proportionally.
func (m *Manager) displaySplitConfig(ctx *displayResourceContext, srcRect sdm.Rect, dstRect sdm.Rect,
	layerConfig *sdm.HWLayerConfig) error {

	mixer := &ctx.mixerAttributes

	splitLeft := mixer.SplitLeft
	if splitLeft == 0 {
		splitLeft = mixer.Width / 2
	}

	leftPipe := &layerConfig.LeftPipe
	rightPipe := &layerConfig.RightPipe

	scissorLeft := sdm.Rect{Right: float32(splitLeft), Bottom: float32(mixer.Height)}
	cropLeft, dstLeft := srcRect, dstRect
	leftValid := calculateCropRects(scissorLeft, &cropLeft, &dstLeft)

	scissorRight := sdm.Rect{Left: float32(splitLeft), Right: float32(mixer.Width), Bottom: float32(mixer.Height)}
	cropRight, dstRight := srcRect, dstRect
	rightValid := calculateCropRects(scissorRight, &cropRight, &dstRight)

	if !leftValid && !rightValid {
		return errors.Wrapf(sdm.ErrParameters, "destination %s lies outside the %dx%d mixer",
			dstRect, mixer.Width, mixer.Height)
	}

	if leftValid {
		leftPipe.Reset()
		leftPipe.SrcROI = cropLeft
		leftPipe.DstROI = dstLeft
		leftPipe.Valid = true
	} else {
		leftPipe.Reset()
	}

	if rightValid {
		rightPipe.Reset()
		rightPipe.SrcROI = cropRight
		rightPipe.DstROI = dstRight
		rightPipe.Valid = true
	} else {
		rightPipe.Reset()
	}

	return nil
}

// calculateCropRects clips dst against the scissor and cuts crop by the same
// proportions. Returns false when nothing of the layer lands in the scissor.
func calculateCropRects(scissor sdm.Rect, crop *sdm.Rect, dst *sdm.Rect) bool {
	dstWidth := dst.Width()
	dstHeight := dst.Height()
	cropWidth := crop.Width()
	cropHeight := crop.Height()

	var leftCutRatio, rightCutRatio, topCutRatio, bottomCutRatio float32
	needCut := false

	if dst.Left < scissor.Left {
		leftCutRatio = (scissor.Left - dst.Left) / dstWidth
		dst.Left = scissor.Left
		needCut = true
	}
	if dst.Right > scissor.Right {
		rightCutRatio = (dst.Right - scissor.Right) / dstWidth
		dst.Right = scissor.Right
		needCut = true
	}
	if dst.Top < scissor.Top {
		topCutRatio = (scissor.Top - dst.Top) / dstHeight
		dst.Top = scissor.Top
		needCut = true
	}
	if dst.Bottom > scissor.Bottom {
		bottomCutRatio = (dst.Bottom - scissor.Bottom) / dstHeight
		dst.Bottom = scissor.Bottom
		needCut = true
	}

	if !needCut {
		return true
	}

	crop.Left += cropWidth * leftCutRatio
	crop.Top += cropHeight * topCutRatio
	crop.Right -= cropWidth * rightCutRatio
	crop.Bottom -= cropHeight * bottomCutRatio

	return disputils.IsValid(*crop) && disputils.IsValid(*dst)
}

// splitRect halves the source span and cuts the destination at the matching
// proportion, so both pipes see the same scale factor.
func splitRect(srcRect sdm.Rect, dstRect sdm.Rect,
	srcLeft *sdm.Rect, dstLeft *sdm.Rect, srcRight *sdm.Rect, dstRight *sdm.Rect) {

	srcWidth := srcRect.Width()
	dstWidth := dstRect.Width()

	halfSrcWidth := float32(math.Floor(float64(srcWidth / 2)))
	halfDstWidth := float32(math.Floor(float64(dstWidth * halfSrcWidth / srcWidth)))

	srcLeft.Left = srcRect.Left
	srcLeft.Right = srcRect.Left + halfSrcWidth
	srcRight.Left = srcLeft.Right
	srcRight.Right = srcRect.Right

	srcLeft.Top = srcRect.Top
	srcLeft.Bottom = srcRect.Bottom
	srcRight.Top = srcRect.Top
	srcRight.Bottom = srcRect.Bottom

	dstLeft.Left = dstRect.Left
	dstLeft.Right = dstRect.Left + halfDstWidth
	dstRight.Left = dstLeft.Right
	dstRight.Right = dstRect.Right

	dstLeft.Top = dstRect.Top
	dstLeft.Bottom = dstRect.Bottom
	dstRight.Top = dstRect.Top
	dstRight.Bottom = dstRect.Bottom
}

// alignPipeConfig snaps the final rects onto the grid the hardware can fetch
// and runs the last per-pipe validation. Chroma-subsampled formats need even
// source coordinates. A layer confined to the right mixer half legitimately
// carries only a right pipe.
func (m *Manager) alignPipeConfig(layer *sdm.Layer, leftPipe *sdm.HWPipeInfo, rightPipe *sdm.HWPipeInfo) error {
	if !leftPipe.Valid && !rightPipe.Valid {
		return errors.Wrap(sdm.ErrNotSupported, "layer produced no pipe")
	}

	srcAlign := uint32(1)
	if layer.InputBuffer.Format.IsYUV() {
		srcAlign = 2
	}

	if leftPipe.Valid {
		alignPipeROIs(leftPipe, srcAlign)

		err := m.validatePipeParams(leftPipe, layer.InputBuffer.Format)
		if err != nil {
			return err
		}
	}

	if rightPipe.Valid {
		alignPipeROIs(rightPipe, srcAlign)

		if leftPipe.Valid {
			// Alignment must not open a seam between the halves
			rightPipe.SrcROI.Left = leftPipe.SrcROI.Right
			rightPipe.SrcROI.Top = leftPipe.SrcROI.Top
			rightPipe.SrcROI.Bottom = leftPipe.SrcROI.Bottom
			rightPipe.DstROI.Left = leftPipe.DstROI.Right
		}

		err := m.validatePipeParams(rightPipe, layer.InputBuffer.Format)
		if err != nil {
			return err
		}
	}

	return nil
}

func alignPipeROIs(pipe *sdm.HWPipeInfo, srcAlign uint32) {
	pipe.SrcROI = alignRect(pipe.SrcROI, srcAlign, srcAlign)
	pipe.DstROI = alignRect(pipe.DstROI, 1, 1)
}

// alignRect expands the rect outward onto the given pixel grid.
func alignRect(rect sdm.Rect, alignX uint32, alignY uint32) sdm.Rect {
	ax := float64(alignX)
	ay := float64(alignY)

	return sdm.Rect{
		Left:   float32(math.Floor(float64(rect.Left)/ax) * ax),
		Top:    float32(math.Floor(float64(rect.Top)/ay) * ay),
		Right:  float32(math.Ceil(float64(rect.Right)/ax) * ax),
		Bottom: float32(math.Ceil(float64(rect.Bottom)/ay) * ay),
	}
}

// validatePipeParams is the final check on one pipe's programming, after
// split, decimation, and alignment have all landed.
func (m *Manager) validatePipeParams(pipe *sdm.HWPipeInfo, format sdm.LayerBufferFormat) error {
	err := m.validateDimensions(pipe.SrcROI, pipe.DstROI)
	if err != nil {
		return err
	}

	// Decimation shrinks the fetched span before it reaches the line buffer
	effectiveWidth := pipe.SrcROI.Width() / float32(uint32(1)<<pipe.HorizontalDecimation)
	if effectiveWidth > float32(m.hwResInfo.MaxPipeWidth) {
		return errors.Wrapf(sdm.ErrNotSupported, "pipe fetch width %.0f exceeds %d",
			effectiveWidth, m.hwResInfo.MaxPipeWidth)
	}

	return m.ValidateScaling(pipe.SrcROI, pipe.DstROI, false, format.Layout(), false)
}

func (m *Manager) isScalingNeeded(pipe *sdm.HWPipeInfo) bool {
	return pipe.SrcROI.Width() != pipe.DstROI.Width() ||
		pipe.SrcROI.Height() != pipe.DstROI.Height()
}
