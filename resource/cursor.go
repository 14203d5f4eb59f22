package resource

import (
	"github.com/cockroachdb/errors"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// ValidateCursorConfig checks whether the given layer can ride a dedicated
// cursor pipe: the hardware must have one, the layer must be topmost, and
// cursor pipes can neither scale nor fetch compressed buffers.
func (m *Manager) ValidateCursorConfig(handle sdm.Handle, layer *sdm.Layer, isTopmost bool) error {
	_, err := m.context(handle)
	if err != nil {
		return err
	}

	if m.cursorSegment.count == 0 {
		return errors.Wrap(sdm.ErrNotSupported, "hardware has no cursor pipes")
	}
	if !isTopmost {
		return errors.Wrap(sdm.ErrNotSupported, "cursor layer must be topmost")
	}

	format := layer.InputBuffer.Format
	if format.IsYUV() || format.IsUBWC() {
		return errors.Wrapf(sdm.ErrNotSupported, "format %s cannot feed a cursor pipe", format)
	}

	src := layer.SrcRect
	dst := layer.DstRect
	err = m.validateDimensions(src, dst)
	if err != nil {
		return err
	}

	if src.Width() != dst.Width() || src.Height() != dst.Height() {
		return errors.Wrap(sdm.ErrNotSupported, "cursor pipes cannot scale")
	}

	maxSize := float32(m.hwResInfo.MaxCursorSize)
	if src.Width() > maxSize || src.Height() > maxSize {
		return errors.Wrapf(sdm.ErrNotSupported, "cursor %s exceeds %dx%d",
			src, m.hwResInfo.MaxCursorSize, m.hwResInfo.MaxCursorSize)
	}

	return nil
}

// ValidateAndSetCursorPosition maps an async cursor move from framebuffer
// space onto the mixer, clamps it to the screen, and rewrites the cursor
// pipe's destination in place so the move can bypass a full prepare.
func (m *Manager) ValidateAndSetCursorPosition(handle sdm.Handle, stack *sdm.DispLayerStack,
	x int, y int, fbConfig *sdm.DisplayConfigVariableInfo) error {

	ctx, err := m.context(handle)
	if err != nil {
		return err
	}
	if stack == nil {
		return errors.Wrap(sdm.ErrParameters, "no layer stack for cursor position")
	}

	info := &stack.Info
	cursorIndex := len(info.HWLayers) - 1
	if cursorIndex < 0 || !info.HWLayers[cursorIndex].Flags.Cursor {
		return errors.Wrap(sdm.ErrNotSupported, "staged frame has no cursor layer on top")
	}
	if cursorIndex >= len(info.Config) {
		return errors.Wrap(sdm.ErrNotValidated, "cursor layer has no pipe assignment")
	}

	mixerWidth := float32(ctx.mixerAttributes.Width)
	mixerHeight := float32(ctx.mixerAttributes.Height)

	// Cursor coordinates arrive in framebuffer space, which may differ
	// from the mixer resolution when the fb is scaled.
	scaleX := float32(1)
	scaleY := float32(1)
	if fbConfig != nil && fbConfig.XPixels > 0 && fbConfig.YPixels > 0 {
		scaleX = mixerWidth / float32(fbConfig.XPixels)
		scaleY = mixerHeight / float32(fbConfig.YPixels)
	}

	pipe := &info.Config[cursorIndex].LeftPipe
	if !pipe.Valid {
		return errors.Wrap(sdm.ErrNotValidated, "cursor pipe was not routed")
	}

	width := pipe.DstROI.Width()
	height := pipe.DstROI.Height()

	left := float32(x) * scaleX
	top := float32(y) * scaleY

	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if left+width > mixerWidth {
		left = mixerWidth - width
	}
	if top+height > mixerHeight {
		top = mixerHeight - height
	}

	pipe.DstROI = sdm.Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}

	return nil
}
