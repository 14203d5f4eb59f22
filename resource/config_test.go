package resource

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

func TestSrcSplitWideLayer(t *testing.T) {
	setup := testManagerSetup()
	setup.Attributes.XPixels = 3840
	setup.Attributes.YPixels = 2160
	setup.Mixer = sdm.HWMixerAttributes{Width: 3840, Height: 2160}
	manager, handle := readyManager(t, setup)

	stack := testStack(testLayer(sdm.FormatRGBA8888,
		sdm.Rect{Right: 3000, Bottom: 1000},
		sdm.Rect{Right: 3000, Bottom: 1000}))

	require.NoError(t, prepareFrame(t, manager, handle, stack))

	config := &stack.Info.Config[0]
	require.True(t, config.LeftPipe.Valid)
	require.True(t, config.RightPipe.Valid)

	require.Equal(t, sdm.Rect{Left: 0, Top: 0, Right: 1500, Bottom: 1000}, config.LeftPipe.SrcROI)
	require.Equal(t, sdm.Rect{Left: 1500, Top: 0, Right: 3000, Bottom: 1000}, config.RightPipe.SrcROI)
	require.Equal(t, sdm.Rect{Left: 0, Top: 0, Right: 1500, Bottom: 1000}, config.LeftPipe.DstROI)
	require.Equal(t, sdm.Rect{Left: 1500, Top: 0, Right: 3000, Bottom: 1000}, config.RightPipe.DstROI)

	require.Equal(t, config.LeftPipe.ZOrder, config.RightPipe.ZOrder)

	// Unscaled RGB halves land on the two DMA pipes
	require.Equal(t, []uint32{4, 5}, assignedPipeIDs(stack))
}

func TestSrcSplitKeepsScaleFactor(t *testing.T) {
	setup := testManagerSetup()
	setup.Attributes.XPixels = 3840
	setup.Attributes.YPixels = 2160
	setup.Mixer = sdm.HWMixerAttributes{Width: 3840, Height: 2160}
	manager, handle := readyManager(t, setup)

	// 2x upscale on a source too wide for one pipe
	stack := testStack(testLayer(sdm.FormatRGBA8888,
		sdm.Rect{Right: 1600, Bottom: 1000},
		sdm.Rect{Right: 3200, Bottom: 2000}))

	require.NoError(t, prepareFrame(t, manager, handle, stack))

	config := &stack.Info.Config[0]
	require.True(t, config.LeftPipe.Valid)
	require.True(t, config.RightPipe.Valid)

	require.Equal(t, sdm.Rect{Right: 800, Bottom: 1000}, config.LeftPipe.SrcROI)
	require.Equal(t, sdm.Rect{Right: 1600, Bottom: 2000}, config.LeftPipe.DstROI)
	require.Equal(t, sdm.Rect{Left: 800, Right: 1600, Bottom: 1000}, config.RightPipe.SrcROI)
	require.Equal(t, sdm.Rect{Left: 1600, Right: 3200, Bottom: 2000}, config.RightPipe.DstROI)
}

func TestDisplaySplitCutsAtMixerSeam(t *testing.T) {
	setup := testManagerSetup()
	setup.ResourceInfo.IsSrcSplit = false
	setup.Attributes.IsDeviceSplit = true
	setup.Mixer = sdm.HWMixerAttributes{Width: 1920, Height: 1080, SplitLeft: 960}
	manager, handle := readyManager(t, setup)

	stack := testStack(testLayer(sdm.FormatRGBA8888,
		sdm.Rect{Right: 1024, Bottom: 800},
		sdm.Rect{Left: 448, Right: 1472, Bottom: 800}))

	require.NoError(t, prepareFrame(t, manager, handle, stack))

	config := &stack.Info.Config[0]
	require.True(t, config.LeftPipe.Valid)
	require.True(t, config.RightPipe.Valid)

	require.Equal(t, sdm.Rect{Left: 448, Right: 960, Bottom: 800}, config.LeftPipe.DstROI)
	require.Equal(t, sdm.Rect{Left: 960, Right: 1472, Bottom: 800}, config.RightPipe.DstROI)
	require.Equal(t, sdm.Rect{Left: 0, Right: 512, Bottom: 800}, config.LeftPipe.SrcROI)
	require.Equal(t, sdm.Rect{Left: 512, Right: 1024, Bottom: 800}, config.RightPipe.SrcROI)
}

func TestDisplaySplitLayerOnOneHalf(t *testing.T) {
	setup := testManagerSetup()
	setup.ResourceInfo.IsSrcSplit = false
	setup.Attributes.IsDeviceSplit = true
	setup.Mixer = sdm.HWMixerAttributes{Width: 1920, Height: 1080, SplitLeft: 960}
	manager, handle := readyManager(t, setup)

	stack := testStack(testLayer(sdm.FormatRGBA8888,
		sdm.Rect{Right: 256, Bottom: 256},
		sdm.Rect{Left: 1024, Top: 100, Right: 1280, Bottom: 356}))

	require.NoError(t, prepareFrame(t, manager, handle, stack))

	config := &stack.Info.Config[0]
	require.False(t, config.LeftPipe.Valid)
	require.True(t, config.RightPipe.Valid)

	require.Equal(t, sdm.Rect{Left: 1024, Top: 100, Right: 1280, Bottom: 356}, config.RightPipe.DstROI)
	require.Equal(t, sdm.Rect{Right: 256, Bottom: 256}, config.RightPipe.SrcROI)
}

func TestYUVSourceAlignment(t *testing.T) {
	manager, handle := readyManager(t, testManagerSetup())

	stack := testStack(testLayer(sdm.FormatYCbCr420SemiPlanar,
		sdm.Rect{Left: 1, Top: 3, Right: 1279, Bottom: 719},
		sdm.Rect{Left: 10, Top: 10, Right: 1288, Bottom: 726}))
	stack.Info.HWLayers[0].InputBuffer.Width = 1280
	stack.Info.HWLayers[0].InputBuffer.Height = 720

	require.NoError(t, prepareFrame(t, manager, handle, stack))

	src := stack.Info.Config[0].LeftPipe.SrcROI
	require.Equal(t, sdm.Rect{Left: 0, Top: 2, Right: 1280, Bottom: 720}, src)
}

func TestLayerValidationFailures(t *testing.T) {
	manager, handle := readyManager(t, testManagerSetup())

	invalidFormat := testLayer(sdm.FormatInvalid,
		sdm.Rect{Right: 100, Bottom: 100}, sdm.Rect{Right: 100, Bottom: 100})
	err := prepareFrame(t, manager, handle, testStack(invalidFormat))
	require.ErrorIs(t, err, sdm.ErrNotSupported)

	cropOutsideBuffer := testLayer(sdm.FormatRGBA8888,
		sdm.Rect{Right: 100, Bottom: 100}, sdm.Rect{Right: 100, Bottom: 100})
	cropOutsideBuffer.InputBuffer.Width = 50
	err = prepareFrame(t, manager, handle, testStack(cropOutsideBuffer))
	require.ErrorIs(t, err, sdm.ErrParameters)

	invertedCrop := testLayer(sdm.FormatRGBA8888,
		sdm.Rect{Left: 100, Right: 0, Bottom: 100}, sdm.Rect{Right: 100, Bottom: 100})
	err = prepareFrame(t, manager, handle, testStack(invertedCrop))
	require.ErrorIs(t, err, sdm.ErrParameters)

	subPixel := testLayer(sdm.FormatRGBA8888,
		sdm.Rect{Right: 0.5, Bottom: 100}, sdm.Rect{Right: 100, Bottom: 100})
	err = prepareFrame(t, manager, handle, testStack(subPixel))
	require.ErrorIs(t, err, sdm.ErrParameters)
}

func TestUBWCNeedsHardwareSupport(t *testing.T) {
	setup := testManagerSetup()
	setup.ResourceInfo.HasUBWC = false
	manager, handle := readyManager(t, setup)

	layer := testLayer(sdm.FormatRGBA8888UBWC,
		sdm.Rect{Right: 1920, Bottom: 1080}, sdm.Rect{Right: 1920, Bottom: 1080})
	err := prepareFrame(t, manager, handle, testStack(layer))
	require.ErrorIs(t, err, sdm.ErrNotSupported)
}

func TestSolidFillSkipsBufferChecks(t *testing.T) {
	manager, handle := readyManager(t, testManagerSetup())

	fill := sdm.Layer{
		Composition: sdm.CompositionSDE,
		SrcRect:     sdm.Rect{Right: 1920, Bottom: 1080},
		DstRect:     sdm.Rect{Right: 1920, Bottom: 1080},
		PlaneAlpha:  255,
		Flags:       sdm.LayerFlags{SolidFill: true},
	}

	require.NoError(t, prepareFrame(t, manager, handle, testStack(fill)))
}

func TestCalculateCropRects(t *testing.T) {
	scissor := sdm.Rect{Right: 960, Bottom: 1080}

	crop := sdm.Rect{Right: 1024, Bottom: 800}
	dst := sdm.Rect{Left: 448, Right: 1472, Bottom: 800}
	require.True(t, calculateCropRects(scissor, &crop, &dst))
	require.Equal(t, sdm.Rect{Right: 512, Bottom: 800}, crop)
	require.Equal(t, sdm.Rect{Left: 448, Right: 960, Bottom: 800}, dst)

	// Fully outside the scissor
	crop = sdm.Rect{Right: 100, Bottom: 100}
	dst = sdm.Rect{Left: 1000, Right: 1100, Bottom: 100}
	require.False(t, calculateCropRects(scissor, &crop, &dst))

	// Fully inside needs no cut
	crop = sdm.Rect{Right: 100, Bottom: 100}
	dst = sdm.Rect{Left: 10, Top: 10, Right: 110, Bottom: 110}
	require.True(t, calculateCropRects(scissor, &crop, &dst))
	require.Equal(t, sdm.Rect{Right: 100, Bottom: 100}, crop)
}

func TestSplitRectEvenHalves(t *testing.T) {
	var srcLeft, dstLeft, srcRight, dstRight sdm.Rect

	splitRect(
		sdm.Rect{Right: 3000, Bottom: 1000},
		sdm.Rect{Left: 100, Top: 50, Right: 3100, Bottom: 1050},
		&srcLeft, &dstLeft, &srcRight, &dstRight)

	require.Equal(t, sdm.Rect{Right: 1500, Bottom: 1000}, srcLeft)
	require.Equal(t, sdm.Rect{Left: 1500, Right: 3000, Bottom: 1000}, srcRight)
	require.Equal(t, sdm.Rect{Left: 100, Top: 50, Right: 1600, Bottom: 1050}, dstLeft)
	require.Equal(t, sdm.Rect{Left: 1600, Top: 50, Right: 3100, Bottom: 1050}, dstRight)
}
