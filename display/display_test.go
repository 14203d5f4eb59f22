package display

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm/mocks"
)

type displaySetup struct {
	Panel        sdm.HWPanelInfo
	Attributes   []sdm.HWDisplayAttributes
	ActiveConfig uint32
	Mixer        sdm.HWMixerAttributes
	Options      CreateOptions
}

type displayMocks struct {
	HW      *mocks.MockHWInterface
	Comp    *mocks.MockCompManager
	Handler *mocks.MockDisplayEventHandler
	Handle  sdm.Handle
}

// testPanelInfo describes a video-mode panel with one ROI per mixer, a
// 30..120Hz rate window, and a 2..255 backlight range.
func testPanelInfo() sdm.HWPanelInfo {
	return sdm.HWPanelInfo{
		PanelID:        0x4b21,
		PanelName:      "mdss_dsi_test_video",
		Mode:           sdm.ModeVideo,
		IsPrimaryPanel: true,

		PartialUpdate: true,
		LeftROICount:  1,
		WidthAlign:    4,
		HeightAlign:   2,
		MinROIWidth:   64,
		MinROIHeight:  64,

		DynamicFPS:     true,
		MinFPS:         30,
		MaxFPS:         120,
		TransferTimeUs: 7300,

		QsyncSupport: true,
		QsyncMinFPS:  48,

		PanelMaxBrightness: 255,
		PanelMinBrightness: 2,

		DynamicBitclkSupport: true,
		BitclkRates:          []uint64{550000000, 900000000},
	}
}

// testDisplayAttributes lists three configs: the native 120Hz timing, the
// same geometry at 60Hz, and a smaller 720p fallback.
func testDisplayAttributes() []sdm.HWDisplayAttributes {
	return []sdm.HWDisplayAttributes{
		{XPixels: 1080, YPixels: 2400, FPS: 120, VsyncPeriodNs: 8333333},
		{XPixels: 1080, YPixels: 2400, FPS: 60, VsyncPeriodNs: 16666666},
		{XPixels: 720, YPixels: 1600, FPS: 60, VsyncPeriodNs: 16666666},
	}
}

func testDisplaySetup() displaySetup {
	return displaySetup{
		Panel:      testPanelInfo(),
		Attributes: testDisplayAttributes(),
		Mixer:      sdm.HWMixerAttributes{Width: 1080, Height: 2400},
	}
}

// displayUnderTest builds the mock surround and the session without running
// Init, for tests that drive Init themselves. Driver queries answer from the
// setup tables any number of times; every state-changing call still needs an
// explicit expectation in the test.
func displayUnderTest(t *testing.T, ctrl *gomock.Controller, setup displaySetup) (displayMocks, *Display) {
	hw := mocks.NewMockHWInterface(ctrl)
	comp := mocks.NewMockCompManager(ctrl)
	handler := mocks.NewMockDisplayEventHandler(ctrl)

	hw.EXPECT().GetActiveConfig().Return(setup.ActiveConfig, nil).AnyTimes()
	hw.EXPECT().GetNumDisplayAttributes().Return(uint32(len(setup.Attributes)), nil).AnyTimes()
	hw.EXPECT().GetDisplayAttributes(gomock.Any()).DoAndReturn(
		func(index uint32) (sdm.HWDisplayAttributes, error) {
			return setup.Attributes[index], nil
		}).AnyTimes()
	hw.EXPECT().GetHWPanelInfo().Return(setup.Panel, nil).AnyTimes()
	hw.EXPECT().GetMixerAttributes().Return(setup.Mixer, nil).AnyTimes()
	hw.EXPECT().GetPanelBrightnessBasePath().Return("/sys/class/backlight/panel0", nil).AnyTimes()
	comp.EXPECT().IsSafeMode().Return(false).AnyTimes()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	d, err := New(logger, 0, handler, hw, comp, setup.Options)
	require.NoError(t, err)

	return displayMocks{
		HW:      hw,
		Comp:    comp,
		Handler: handler,
		Handle:  sdm.Handle("builtin-0"),
	}, d
}

func readyDisplay(t *testing.T, ctrl *gomock.Controller, setup displaySetup) (displayMocks, *Display) {
	m, d := displayUnderTest(t, ctrl, setup)

	active := setup.Attributes[setup.ActiveConfig]
	m.Comp.EXPECT().RegisterDisplay(int32(0), sdm.DisplayBuiltIn, active, setup.Panel,
		setup.Mixer, sdm.Resolution{Width: active.XPixels, Height: active.YPixels}).
		Return(m.Handle, sdm.QoSData{ClockHz: 200000000}, nil)

	require.NoError(t, d.Init())

	return m, d
}

func poweredDisplay(t *testing.T, ctrl *gomock.Controller, setup displaySetup) (displayMocks, *Display) {
	m, d := readyDisplay(t, ctrl, setup)

	m.HW.EXPECT().PowerOn().Return(nil, nil)
	fence, err := d.SetDisplayState(sdm.StateOn, false)
	require.NoError(t, err)
	require.Nil(t, fence)

	return m, d
}

func appLayer() *sdm.Layer {
	return &sdm.Layer{
		InputBuffer: sdm.LayerBuffer{
			Width:  1080,
			Height: 2400,
			Format: sdm.FormatRGBA8888,
		},
		Composition: sdm.CompositionGPU,
		SrcRect:     sdm.Rect{Right: 1080, Bottom: 2400},
		DstRect:     sdm.Rect{Right: 1080, Bottom: 2400},
		PlaneAlpha:  255,
	}
}

// frameStack builds a one-layer frame with fresh geometry, which always takes
// the full validation path.
func frameStack() *sdm.DispLayerStack {
	stack := &sdm.DispLayerStack{Stack: &sdm.LayerStack{
		Layers: []*sdm.Layer{appLayer()},
		Flags:  sdm.LayerStackFlags{GeometryChanged: true},
	}}
	stack.Info.Reset()
	return stack
}

// quiescentStack builds a frame whose only change since the previous one is
// surface damage, which makes it a candidate for reusing the standing
// assignment.
func quiescentStack() *sdm.DispLayerStack {
	layer := appLayer()
	layer.UpdateMask.Set(sdm.UpdateSurfaceDamage)
	layer.DirtyRegions = []sdm.Rect{{Left: 0, Top: 0, Right: 1080, Bottom: 200}}

	stack := &sdm.DispLayerStack{Stack: &sdm.LayerStack{
		Layers: []*sdm.Layer{layer},
	}}
	stack.Info.Reset()
	return stack
}

// expectPrepare wires the strategy calls for one full-path prepare.
func expectPrepare(m displayMocks) {
	m.Comp.EXPECT().PrePrepare(m.Handle, gomock.Any()).Return(nil)
	m.Comp.EXPECT().Prepare(m.Handle, gomock.Any()).Return(nil)
	m.HW.EXPECT().Validate(gomock.Any()).Return(nil)
	m.Comp.EXPECT().PostPrepare(m.Handle, gomock.Any()).Return(nil)
}

// expectCommit wires the commit half of one frame, handing retire back as the
// frame's retire fence.
func expectCommit(m displayMocks, retire sdm.Fence) {
	m.Comp.EXPECT().Commit(m.Handle, gomock.Any()).Return(nil)
	m.HW.EXPECT().Commit(gomock.Any()).Return(retire, nil)
	m.Comp.EXPECT().PostCommit(m.Handle, gomock.Any()).Return(nil)
}

// expectFirstFrame covers the whole first cycle, including the one-time blend
// space programming.
func expectFirstFrame(m displayMocks) {
	expectPrepare(m)
	m.HW.EXPECT().SetBlendSpace(sdm.PrimariesTransfer{}).Return(nil)
	expectCommit(m, nil)
}

// expectFrame covers one later full-path cycle.
func expectFrame(m displayMocks) {
	expectPrepare(m)
	expectCommit(m, nil)
}

func runFrame(t *testing.T, d *Display, stack *sdm.DispLayerStack) {
	require.NoError(t, d.Prepare(stack))
	require.NoError(t, d.Commit(stack))
	require.NoError(t, d.PostCommit(stack))
}

func TestNewRequiredParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	hw := mocks.NewMockHWInterface(ctrl)
	comp := mocks.NewMockCompManager(ctrl)
	handler := mocks.NewMockDisplayEventHandler(ctrl)

	_, err := New(logger, 0, nil, hw, comp, CreateOptions{})
	require.Error(t, err)

	_, err = New(logger, 0, handler, nil, comp, CreateOptions{})
	require.Error(t, err)

	_, err = New(logger, 0, handler, hw, nil, CreateOptions{})
	require.Error(t, err)

	d, err := New(logger, 0, handler, hw, comp, CreateOptions{})
	require.NoError(t, err)
	require.NotNil(t, d)
}

func TestInitReportsPanelWithoutConfigs(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	hw := mocks.NewMockHWInterface(ctrl)
	comp := mocks.NewMockCompManager(ctrl)
	handler := mocks.NewMockDisplayEventHandler(ctrl)

	hw.EXPECT().GetActiveConfig().Return(uint32(0), nil)
	hw.EXPECT().GetNumDisplayAttributes().Return(uint32(0), nil)

	d, err := New(logger, 0, handler, hw, comp, CreateOptions{})
	require.NoError(t, err)

	err = d.Init()
	require.ErrorIs(t, err, sdm.ErrDriverData)
}

func TestInitPanelQueryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	hw := mocks.NewMockHWInterface(ctrl)
	comp := mocks.NewMockCompManager(ctrl)
	handler := mocks.NewMockDisplayEventHandler(ctrl)

	hw.EXPECT().GetActiveConfig().Return(uint32(0), nil)
	hw.EXPECT().GetNumDisplayAttributes().Return(uint32(3), nil)
	hw.EXPECT().GetDisplayAttributes(uint32(0)).Return(testDisplayAttributes()[0], nil)
	hw.EXPECT().GetHWPanelInfo().Return(sdm.HWPanelInfo{}, errors.New("dsi read failed"))

	d, err := New(logger, 0, handler, hw, comp, CreateOptions{})
	require.NoError(t, err)

	err = d.Init()
	require.Error(t, err)
}

func TestInitEventBackendFailureUnregisters(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	setup.Options.EventsFactory = func(displayID int32, displayType sdm.DisplayType,
		handler sdm.HWEventHandler, events []sdm.HWEvent) (sdm.HWEventsInterface, error) {
		return nil, errors.New("no irq line")
	}

	m, d := displayUnderTest(t, ctrl, setup)

	m.Comp.EXPECT().RegisterDisplay(int32(0), sdm.DisplayBuiltIn, gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any()).
		Return(m.Handle, sdm.QoSData{}, nil)
	m.Comp.EXPECT().UnregisterDisplay(m.Handle).Return(nil)

	err := d.Init()
	require.Error(t, err)
}

func TestInitSwitchesCommandPanelToVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	setup.Panel.Mode = sdm.ModeCommand
	setup.Options.PreferVideoMode = true

	m, d := displayUnderTest(t, ctrl, setup)

	m.HW.EXPECT().SetDisplayMode(sdm.ModeVideo).Return(nil)

	// Registration must already see the panel in video mode.
	videoPanel := setup.Panel
	videoPanel.Mode = sdm.ModeVideo
	active := setup.Attributes[0]
	m.Comp.EXPECT().RegisterDisplay(int32(0), sdm.DisplayBuiltIn, active, videoPanel,
		setup.Mixer, sdm.Resolution{Width: active.XPixels, Height: active.YPixels}).
		Return(m.Handle, sdm.QoSData{}, nil)

	require.NoError(t, d.Init())
}

func TestDeinitTearsDownOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	m.Comp.EXPECT().UnregisterDisplay(m.Handle).Return(nil)
	require.NoError(t, d.Deinit())

	// A second teardown finds nothing left to do.
	require.NoError(t, d.Deinit())

	require.ErrorIs(t, d.Prepare(frameStack()), sdm.ErrShutDown)
	require.ErrorIs(t, d.Commit(frameStack()), sdm.ErrShutDown)
	require.ErrorIs(t, d.PostCommit(frameStack()), sdm.ErrShutDown)
	require.ErrorIs(t, d.SetActiveConfig(1), sdm.ErrShutDown)
	require.ErrorIs(t, d.SetRefreshRate(60, true, false), sdm.ErrShutDown)

	_, err := d.SetDisplayState(sdm.StateOn, false)
	require.ErrorIs(t, err, sdm.ErrShutDown)

	err = d.Init()
	require.ErrorIs(t, err, sdm.ErrShutDown)
}

func TestConfigQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, d := readyDisplay(t, ctrl, testDisplaySetup())

	count, err := d.GetNumVariableInfoConfigs()
	require.NoError(t, err)
	require.Equal(t, uint32(3), count)

	config, err := d.GetConfig(1)
	require.NoError(t, err)
	require.Equal(t, uint32(1080), config.XPixels)
	require.Equal(t, uint32(2400), config.YPixels)
	require.Equal(t, uint32(60), config.FPS)

	_, err = d.GetConfig(9)
	require.ErrorIs(t, err, sdm.ErrParameters)

	active, err := d.GetActiveConfig()
	require.NoError(t, err)
	require.Equal(t, uint32(0), active)

	minRate, maxRate, err := d.GetRefreshRateRange()
	require.NoError(t, err)
	require.Equal(t, uint32(30), minRate)
	require.Equal(t, uint32(120), maxRate)

	rates, err := d.GetSupportedDSIClock()
	require.NoError(t, err)
	require.Equal(t, []uint64{550000000, 900000000}, rates)
}

func TestSetVSyncStateRequiresActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := readyDisplay(t, ctrl, testDisplaySetup())

	err := d.SetVSyncState(true)
	require.ErrorIs(t, err, sdm.ErrPermission)

	m.HW.EXPECT().PowerOn().Return(nil, nil)
	_, err = d.SetDisplayState(sdm.StateOn, false)
	require.NoError(t, err)

	// No event backend is attached, so the toggle is local state only.
	require.NoError(t, d.SetVSyncState(true))
	require.NoError(t, d.SetVSyncState(true))
	require.NoError(t, d.SetVSyncState(false))
}

func TestFirstFrameCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	require.True(t, d.IsActive())
	state, err := d.GetDisplayState()
	require.NoError(t, err)
	require.Equal(t, sdm.StateOn, state)

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	rate, err := d.GetRefreshRate()
	require.NoError(t, err)
	require.Equal(t, uint32(120), rate)
}

func TestDumpSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	text := d.Dump()
	require.Contains(t, text, "mdss_dsi_test_video")
	require.Contains(t, text, "state=On")
	require.Contains(t, text, "frames=1")
	require.Contains(t, text, "last frame: 1 app layers")

	writer := jwriter.NewWriter()
	d.DumpJSON(&writer)
	require.NoError(t, writer.Error())
	require.True(t, json.Valid(writer.Bytes()))
}
