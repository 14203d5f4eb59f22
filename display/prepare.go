package display

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"

	"github.com/Parikk-Studio/android-hardware-qcom-display/disputils"
	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// PrePrepare runs the strategy steps that precede full validation, so a
// client can learn the frame's shape before committing to it. Prepare runs
// the same steps again internally; calling PrePrepare first is optional.
func (d *Display) PrePrepare(stack *sdm.DispLayerStack) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::PrePrepare", slog.Int("displayId", int(d.displayID)))

	if d.shutdown {
		return errors.Wrap(sdm.ErrShutDown, "preprepare after deinit")
	}
	if stack == nil || stack.Stack == nil {
		return errors.Wrap(sdm.ErrParameters, "nil layer stack")
	}
	if !d.active {
		return errors.Wrap(sdm.ErrPermission, "preprepare on an inactive display")
	}

	return d.prePrepareLocked(stack)
}

// Prepare validates the frame end to end and leaves the stack carrying a full
// hardware assignment. When nothing but surface content changed since the
// previous frame, the expensive strategy and resource pass is skipped and the
// previous assignment is reused.
func (d *Display) Prepare(stack *sdm.DispLayerStack) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Display::Prepare", slog.Int("displayId", int(d.displayID)))
	disputils.DebugValidate(d)

	if d.shutdown {
		return errors.Wrap(sdm.ErrShutDown, "prepare after deinit")
	}
	if stack == nil || stack.Stack == nil {
		return errors.Wrap(sdm.ErrParameters, "nil layer stack")
	}
	if !d.active {
		return errors.Wrap(sdm.ErrPermission, "prepare on an inactive display")
	}

	err := d.prePrepareLocked(stack)
	if err != nil {
		return err
	}

	if d.canSkipDisplayPrepare(stack) {
		d.applySkipPrepare(stack)
		d.logger.Debug("Display::Prepare reused previous assignment",
			slog.Int("displayId", int(d.displayID)))
		return nil
	}

	err = d.compManager.Prepare(d.compHandle, stack)
	if err != nil {
		d.validated = false
		d.lastFrame.valid = false
		return errors.Mark(err, sdm.ErrNotValidated)
	}

	err = d.hwIntf.Validate(&stack.Info)
	if err != nil {
		d.validated = false
		d.lastFrame.valid = false
		return errors.Mark(errors.Wrap(err, "driver rejected the prepared frame"), sdm.ErrNotValidated)
	}

	err = d.compManager.PostPrepare(d.compHandle, stack)
	if err != nil {
		d.validated = false
		d.lastFrame.valid = false
		return errors.Mark(err, sdm.ErrNotValidated)
	}

	d.validated = true
	d.snapshotFrame(stack)

	return nil
}

func (d *Display) prePrepareLocked(stack *sdm.DispLayerStack) error {
	d.handleDemuraLayerLocked(stack)

	err := d.buildLayerStackStats(stack)
	if err != nil {
		return err
	}

	d.updateQsyncModeLocked(&stack.Info)
	stack.Info.SetIdleTimeMs = d.pendingIdleTime

	return d.compManager.PrePrepare(d.compHandle, stack)
}

// buildLayerStackStats derives the frame's layer accounting. It only touches
// the counters and indices; an assignment carried over from the previous
// frame stays in place for the skip path to reuse.
func (d *Display) buildLayerStackStats(stack *sdm.DispLayerStack) error {
	layerStack := stack.Stack
	info := &stack.Info

	info.AppLayerCount = 0
	info.GPUTargetIndex = -1
	info.StitchTargetIndex = -1
	info.DemuraTargetIndex = -1
	info.NoiseLayerIndex = -1
	info.GeometryChanged = layerStack.Flags.GeometryChanged

	for i, layer := range layerStack.Layers {
		switch layer.Composition {
		case sdm.CompositionGPUTarget:
			info.GPUTargetIndex = i
		case sdm.CompositionStitchTarget:
			info.StitchTargetIndex = i
		case sdm.CompositionDemura:
			info.DemuraTargetIndex = i
		default:
			if layer.Flags.IsNoise && !d.options.DisableNoiseLayer {
				info.NoiseLayerIndex = i
			} else {
				info.AppLayerCount++
			}
		}
	}

	if info.AppLayerCount == 0 {
		return errors.Wrapf(sdm.ErrNoAppLayers, "display %d", d.displayID)
	}

	if info.GPUTargetIndex >= 0 {
		err := d.validateGPUTargetParams(layerStack.Layers[info.GPUTargetIndex])
		if err != nil {
			return err
		}
	}

	return nil
}

// validateGPUTargetParams rejects a client-composed target that does not fit
// the mixer it must be blended on.
func (d *Display) validateGPUTargetParams(target *sdm.Layer) error {
	mixer := sdm.Rect{
		Right:  float32(d.mixerAttributes.Width),
		Bottom: float32(d.mixerAttributes.Height),
	}

	inside := disputils.Intersection(mixer, target.DstRect)
	if !disputils.IsValid(target.DstRect) || !disputils.IsCongruent(inside, target.DstRect) {
		return errors.Wrapf(sdm.ErrParameters,
			"gpu target dst %s outside mixer %dx%d",
			target.DstRect.String(), d.mixerAttributes.Width, d.mixerAttributes.Height)
	}

	return nil
}

// handleDemuraLayerLocked keeps the correction layer appended to the stack
// while demura runs and stripped while it does not. A change of presence
// forces the frame down the full validation path.
func (d *Display) handleDemuraLayerLocked(stack *sdm.DispLayerStack) {
	layerStack := stack.Stack

	present := -1
	for i, layer := range layerStack.Layers {
		if layer.Composition == sdm.CompositionDemura {
			present = i
			break
		}
	}

	wantDemura := d.demura != nil && d.active

	if wantDemura && present < 0 {
		layer, err := d.buildDemuraLayer()
		if err != nil {
			d.logger.Warn("demura layer skipped this frame", slog.Any("error", err))
			return
		}
		layerStack.Layers = append(layerStack.Layers, layer)
		layerStack.Flags.DemuraPresent = true
		d.validated = false
	}

	if !wantDemura && present >= 0 {
		layerStack.Layers = append(layerStack.Layers[:present], layerStack.Layers[present+1:]...)
		layerStack.Flags.DemuraPresent = false
		d.validated = false
	}
}

func (d *Display) buildDemuraLayer() (*sdm.Layer, error) {
	buffer, err := d.demura.CorrectionBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "correction buffer unavailable")
	}

	return &sdm.Layer{
		InputBuffer: sdm.LayerBuffer{
			Width:           buffer.Width,
			Height:          buffer.Height,
			UnalignedWidth:  buffer.Width,
			UnalignedHeight: buffer.Height,
			Format:          buffer.Format,
			ID:              buffer.ID,
		},
		Composition: sdm.CompositionDemura,
		SrcRect:     sdm.Rect{Right: float32(buffer.Width), Bottom: float32(buffer.Height)},
		DstRect: sdm.Rect{
			Right:  float32(d.mixerAttributes.Width),
			Bottom: float32(d.mixerAttributes.Height),
		},
		PlaneAlpha: 255,
		Flags:      sdm.LayerFlags{IsDemura: true},
	}, nil
}

// canCompareFrameROI gates the skip path on everything that must be unchanged
// before a region comparison is even meaningful.
func (d *Display) canCompareFrameROI(stack *sdm.DispLayerStack) bool {
	if !d.validated || !d.lastFrame.valid {
		return false
	}
	if d.compManager.IsSafeMode() {
		return false
	}
	if !d.panelInfo.PartialUpdate || d.panelInfo.LeftROICount != 1 {
		return false
	}
	if !d.partialUpdateActiveLocked() {
		return false
	}
	if d.options.ColorManager != nil && d.options.ColorManager.NeedsPartialUpdateDisable() {
		return false
	}

	layerStack := stack.Stack
	if layerStack.Flags.GeometryChanged || layerStack.Flags.SkipPresent {
		return false
	}
	if uint32(len(layerStack.Layers)) != d.lastFrame.appLayerCount+d.helperLayerCount(layerStack) {
		return false
	}

	// Any update beyond plain surface damage, including an empty mask, means
	// the frame may need a different strategy.
	for i := uint32(0); i < d.lastFrame.appLayerCount && int(i) < len(layerStack.Layers); i++ {
		if !layerStack.Layers[i].UpdateMask.OnlySet(sdm.UpdateSurfaceDamage) {
			return false
		}
	}

	return true
}

func (d *Display) helperLayerCount(layerStack *sdm.LayerStack) uint32 {
	var count uint32
	for _, layer := range layerStack.Layers {
		switch layer.Composition {
		case sdm.CompositionGPUTarget, sdm.CompositionStitchTarget,
			sdm.CompositionDemura, sdm.CompositionCWBTarget:
			count++
		default:
			if layer.Flags.IsNoise && !d.options.DisableNoiseLayer {
				count++
			}
		}
	}
	return count
}

// canSkipDisplayPrepare regenerates the frame's damaged regions and reports
// whether they are congruent with the regions the standing assignment was
// validated for.
func (d *Display) canSkipDisplayPrepare(stack *sdm.DispLayerStack) bool {
	if !d.canCompareFrameROI(stack) {
		return false
	}

	err := d.compManager.GenerateROI(d.compHandle, stack)
	if err != nil {
		d.logger.Debug("roi generation failed, taking the full path", slog.Any("error", err))
		return false
	}
	if len(stack.Info.LeftFrameROI) == 0 {
		return false
	}

	if !disputils.EqualRegions(stack.Info.LeftFrameROI, d.lastFrame.leftROIs) {
		return false
	}
	if !disputils.EqualRegions(stack.Info.RightFrameROI, d.lastFrame.rightROIs) {
		return false
	}

	return true
}

// applySkipPrepare refreshes the parts of the standing assignment that change
// every frame. Pipe routing is untouched; only dirty rectangles move.
func (d *Display) applySkipPrepare(stack *sdm.DispLayerStack) {
	info := &stack.Info

	for i := 0; i < int(info.AppLayerCount) && i < len(stack.Stack.Layers); i++ {
		layer := stack.Stack.Layers[i]
		layer.Composition = sdm.CompositionSDE

		if i < len(info.HWLayers) {
			info.HWLayers[i].DirtyRegions = append(info.HWLayers[i].DirtyRegions[:0],
				layer.DirtyRegions...)
		}
	}
}

func (d *Display) snapshotFrame(stack *sdm.DispLayerStack) {
	info := &stack.Info

	d.lastFrame = frameSnapshot{
		valid:         true,
		appLayerCount: info.AppLayerCount,
		leftROIs:      slices.Clone(info.LeftFrameROI),
		rightROIs:     slices.Clone(info.RightFrameROI),
		demuraPresent: info.DemuraTargetIndex >= 0,
	}
}
