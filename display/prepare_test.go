package display

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm/mocks"
)

// prepareWithROI wires one full-path prepare whose strategy reports roi as
// the frame's damaged region.
func prepareWithROI(m displayMocks, roi sdm.Rect) {
	m.Comp.EXPECT().PrePrepare(m.Handle, gomock.Any()).Return(nil)
	m.Comp.EXPECT().Prepare(m.Handle, gomock.Any()).DoAndReturn(
		func(_ sdm.Handle, stack *sdm.DispLayerStack) error {
			stack.Info.LeftFrameROI = append(stack.Info.LeftFrameROI[:0], roi)
			return nil
		})
	m.HW.EXPECT().Validate(gomock.Any()).Return(nil)
	m.Comp.EXPECT().PostPrepare(m.Handle, gomock.Any()).Return(nil)
}

func generatedROI(m displayMocks, roi sdm.Rect) {
	m.Comp.EXPECT().GenerateROI(m.Handle, gomock.Any()).DoAndReturn(
		func(_ sdm.Handle, stack *sdm.DispLayerStack) error {
			stack.Info.LeftFrameROI = append(stack.Info.LeftFrameROI[:0], roi)
			return nil
		})
}

func TestPrepareRequiresActiveDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, d := readyDisplay(t, ctrl, testDisplaySetup())

	err := d.Prepare(frameStack())
	require.ErrorIs(t, err, sdm.ErrPermission)

	err = d.PrePrepare(frameStack())
	require.ErrorIs(t, err, sdm.ErrPermission)
}

func TestPrepareRejectsNilStack(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, d := poweredDisplay(t, ctrl, testDisplaySetup())

	require.ErrorIs(t, d.Prepare(nil), sdm.ErrParameters)
	require.ErrorIs(t, d.Prepare(&sdm.DispLayerStack{}), sdm.ErrParameters)
}

func TestPrepareRejectsStackWithoutAppLayers(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, d := poweredDisplay(t, ctrl, testDisplaySetup())

	stack := &sdm.DispLayerStack{Stack: &sdm.LayerStack{}}
	stack.Info.Reset()

	err := d.Prepare(stack)
	require.ErrorIs(t, err, sdm.ErrNoAppLayers)
}

func TestPrepareRejectsOversizedGPUTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, d := poweredDisplay(t, ctrl, testDisplaySetup())

	target := appLayer()
	target.Composition = sdm.CompositionGPUTarget
	target.DstRect = sdm.Rect{Right: 1080, Bottom: 2500}

	stack := frameStack()
	stack.Stack.Layers = append(stack.Stack.Layers, target)

	err := d.Prepare(stack)
	require.ErrorIs(t, err, sdm.ErrParameters)
}

func TestPrepareFullPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	target := appLayer()
	target.Composition = sdm.CompositionGPUTarget

	stack := frameStack()
	stack.Stack.Layers = append(stack.Stack.Layers, target)

	expectPrepare(m)
	require.NoError(t, d.Prepare(stack))

	require.Equal(t, uint32(1), stack.Info.AppLayerCount)
	require.Equal(t, 1, stack.Info.GPUTargetIndex)
	require.Equal(t, -1, stack.Info.DemuraTargetIndex)
	require.True(t, stack.Info.GeometryChanged)
}

func TestPrepareStrategyFailureBlocksCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	m.Comp.EXPECT().PrePrepare(m.Handle, gomock.Any()).Return(nil)
	m.Comp.EXPECT().Prepare(m.Handle, gomock.Any()).
		Return(errors.New("no pipes left"))

	stack := frameStack()
	err := d.Prepare(stack)
	require.ErrorIs(t, err, sdm.ErrNotValidated)

	err = d.Commit(stack)
	require.ErrorIs(t, err, sdm.ErrNotValidated)
}

func TestPrepareDriverRejectionBlocksCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	m.Comp.EXPECT().PrePrepare(m.Handle, gomock.Any()).Return(nil)
	m.Comp.EXPECT().Prepare(m.Handle, gomock.Any()).Return(nil)
	m.HW.EXPECT().Validate(gomock.Any()).Return(errors.New("bandwidth vote rejected"))

	stack := frameStack()
	err := d.Prepare(stack)
	require.ErrorIs(t, err, sdm.ErrNotValidated)

	err = d.Commit(stack)
	require.ErrorIs(t, err, sdm.ErrNotValidated)
}

// A frame whose damage matches the previous one must reuse the standing
// assignment instead of rerunning strategy and validation.
func TestPrepareSkipsUnchangedFrame(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	roi := sdm.Rect{Right: 1080, Bottom: 200}

	first := frameStack()
	prepareWithROI(m, roi)
	m.HW.EXPECT().SetBlendSpace(sdm.PrimariesTransfer{}).Return(nil)
	expectCommit(m, nil)
	runFrame(t, d, first)

	// Only pre-prepare and ROI generation run for the quiet frame; strategy,
	// validation, and post-prepare stay untouched.
	second := quiescentStack()
	m.Comp.EXPECT().PrePrepare(m.Handle, gomock.Any()).Return(nil)
	generatedROI(m, roi)
	require.NoError(t, d.Prepare(second))

	require.Equal(t, sdm.CompositionSDE, second.Stack.Layers[0].Composition)

	expectCommit(m, nil)
	require.NoError(t, d.Commit(second))
	require.NoError(t, d.PostCommit(second))
}

func TestPrepareSkipAbandonedWhenDamageMoves(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	first := frameStack()
	prepareWithROI(m, sdm.Rect{Right: 1080, Bottom: 200})
	m.HW.EXPECT().SetBlendSpace(sdm.PrimariesTransfer{}).Return(nil)
	expectCommit(m, nil)
	runFrame(t, d, first)

	// Damage landed somewhere else, so the comparison fails and the full
	// path runs again.
	second := quiescentStack()
	generatedROI(m, sdm.Rect{Top: 200, Right: 1080, Bottom: 400})
	prepareWithROI(m, sdm.Rect{Top: 200, Right: 1080, Bottom: 400})
	require.NoError(t, d.Prepare(second))
}

func TestPrepareSkipBlockedWhileGeometryChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	roi := sdm.Rect{Right: 1080, Bottom: 200}

	first := frameStack()
	prepareWithROI(m, roi)
	m.HW.EXPECT().SetBlendSpace(sdm.PrimariesTransfer{}).Return(nil)
	expectCommit(m, nil)
	runFrame(t, d, first)

	// Same damage, but the client re-laid the stack out. ROI generation must
	// not even be consulted.
	second := quiescentStack()
	second.Stack.Flags.GeometryChanged = true
	prepareWithROI(m, roi)
	require.NoError(t, d.Prepare(second))
}

// A mixer running narrower than the panel keeps the destination scaler in
// line, and the scaler reads the full surface every frame. Quiet frames still
// take the full path without consulting ROI generation.
func TestPrepareSkipBlockedByDestScaler(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	setup.Mixer = sdm.HWMixerAttributes{Width: 720, Height: 1600}
	m, d := poweredDisplay(t, ctrl, setup)

	roi := sdm.Rect{Right: 1080, Bottom: 200}

	first := frameStack()
	prepareWithROI(m, roi)
	m.HW.EXPECT().SetBlendSpace(sdm.PrimariesTransfer{}).Return(nil)
	expectCommit(m, nil)
	runFrame(t, d, first)

	second := quiescentStack()
	prepareWithROI(m, roi)
	require.NoError(t, d.Prepare(second))
}

func TestPrepareAppendsDemuraLayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()

	factory := mocks.NewMockPanelFeatureFactory(ctrl)
	demura := mocks.NewMockDemuraIntf(ctrl)
	setup.Options.PanelFeatures = factory

	factory.EXPECT().CreateDemuraIntf(sdm.DemuraInputConfig{
		PanelID:            0x4b21,
		PanelName:          "mdss_dsi_test_video",
		BrightnessBasePath: "/sys/class/backlight/panel0",
	}).Return(demura, nil)
	demura.EXPECT().Init().Return(nil)

	m, d := displayUnderTest(t, ctrl, setup)
	m.Comp.EXPECT().RegisterDisplay(int32(0), sdm.DisplayBuiltIn, gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any()).
		Return(m.Handle, sdm.QoSData{}, nil)
	m.Comp.EXPECT().ReserveDemuraResources(int32(0)).
		Return(sdm.FetchResourceList{{PipeID: 9}}, nil)
	m.Comp.EXPECT().SetDemuraStatusForDisplay(int32(0), true)

	require.NoError(t, d.Init())

	m.HW.EXPECT().PowerOn().Return(nil, nil)
	demura.EXPECT().SetActive(true).Return(nil)
	_, err := d.SetDisplayState(sdm.StateOn, false)
	require.NoError(t, err)

	demura.EXPECT().CorrectionBuffer().Return(sdm.BufferInfo{
		Width:  1080,
		Height: 2400,
		Format: sdm.FormatRGBA8888,
		ID:     77,
	}, nil)

	stack := frameStack()
	expectPrepare(m)
	require.NoError(t, d.Prepare(stack))

	require.Len(t, stack.Stack.Layers, 2)
	require.True(t, stack.Stack.Flags.DemuraPresent)
	require.Equal(t, sdm.CompositionDemura, stack.Stack.Layers[1].Composition)
	require.Equal(t, 1, stack.Info.DemuraTargetIndex)
	require.Equal(t, uint32(1), stack.Info.AppLayerCount)
	require.True(t, stack.Stack.Layers[1].Flags.IsDemura)
}
