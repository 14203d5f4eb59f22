package display

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

func TestSetActiveConfigOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, d := readyDisplay(t, ctrl, testDisplaySetup())

	err := d.SetActiveConfig(9)
	require.ErrorIs(t, err, sdm.ErrParameters)
}

func TestSetActiveConfigImmediate(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	m, d := poweredDisplay(t, ctrl, setup)

	// Without a defer window even a pure rate drop reprograms right away.
	m.HW.EXPECT().SetDisplayAttributes(uint32(1)).Return(nil)
	require.NoError(t, d.SetActiveConfig(1))

	active, err := d.GetActiveConfig()
	require.NoError(t, err)
	require.Equal(t, uint32(1), active)

	// Re-selecting the active config is a no-op.
	require.NoError(t, d.SetActiveConfig(1))

	// The first commit on the new config rebinds the composition session.
	expectFirstFrame(m)
	m.Comp.EXPECT().ReconfigureDisplay(m.Handle, setup.Attributes[1], setup.Panel,
		setup.Mixer, sdm.Resolution{Width: 1080, Height: 2400}).
		Return(sdm.QoSData{ClockHz: 180000000}, nil)
	runFrame(t, d, frameStack())

	rate, err := d.GetRefreshRate()
	require.NoError(t, err)
	require.Equal(t, uint32(60), rate)
}

func TestSetActiveConfigDeferredDrop(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	setup.Options.DeferFpsFrameCount = 2
	m, d := poweredDisplay(t, ctrl, setup)

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	// Staging touches no hardware.
	require.NoError(t, d.SetActiveConfig(1))

	// The client sees the new config at once; the panel keeps its timing.
	active, err := d.GetActiveConfig()
	require.NoError(t, err)
	require.Equal(t, uint32(1), active)

	rate, err := d.GetRefreshRate()
	require.NoError(t, err)
	require.Equal(t, uint32(120), rate)

	// First committed frame only counts down.
	expectFrame(m)
	runFrame(t, d, frameStack())

	rate, err = d.GetRefreshRate()
	require.NoError(t, err)
	require.Equal(t, uint32(120), rate)

	// The second commit drains the window, programs the panel, and rebinds
	// composition in the same post-commit.
	expectFrame(m)
	m.HW.EXPECT().SetDisplayAttributes(uint32(1)).Return(nil)
	m.Comp.EXPECT().ReconfigureDisplay(m.Handle, setup.Attributes[1], setup.Panel,
		setup.Mixer, sdm.Resolution{Width: 1080, Height: 2400}).
		Return(sdm.QoSData{ClockHz: 180000000}, nil)
	runFrame(t, d, frameStack())

	rate, err = d.GetRefreshRate()
	require.NoError(t, err)
	require.Equal(t, uint32(60), rate)

	// Raising the rate back never defers.
	m.HW.EXPECT().SetDisplayAttributes(uint32(0)).Return(nil)
	require.NoError(t, d.SetActiveConfig(0))

	active, err = d.GetActiveConfig()
	require.NoError(t, err)
	require.Equal(t, uint32(0), active)
}

func TestSetActiveConfigGeometrySwitchCancelsDeferral(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	setup.Options.DeferFpsFrameCount = 2
	m, d := poweredDisplay(t, ctrl, setup)

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	require.NoError(t, d.SetActiveConfig(1))

	// A geometry switch cannot ride behind the drain; it lands now and the
	// staged drop is dropped with it.
	m.HW.EXPECT().SetDisplayAttributes(uint32(2)).Return(nil)
	require.NoError(t, d.SetActiveConfig(2))

	expectFrame(m)
	m.Comp.EXPECT().ReconfigureDisplay(m.Handle, setup.Attributes[2], setup.Panel,
		setup.Mixer, sdm.Resolution{Width: 720, Height: 1600}).
		Return(sdm.QoSData{ClockHz: 180000000}, nil)
	runFrame(t, d, frameStack())

	rate, err := d.GetRefreshRate()
	require.NoError(t, err)
	require.Equal(t, uint32(60), rate)
}

func TestSetDisplayModeSwitches(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := readyDisplay(t, ctrl, testDisplaySetup())

	err := d.SetDisplayMode(sdm.ModeDefault)
	require.ErrorIs(t, err, sdm.ErrParameters)

	err = d.SetDisplayMode(sdm.ModeVideo)
	require.ErrorIs(t, err, sdm.ErrNotSupported)
	require.Contains(t, err.Error(), "already")

	m.Comp.EXPECT().SetIdleTimeoutMs(m.Handle, uint32(500), uint32(50))
	d.SetIdleTimeoutMs(500, 50)

	// Into command mode the video idle timer is cleared.
	m.HW.EXPECT().SetDisplayMode(sdm.ModeCommand).Return(nil)
	m.HW.EXPECT().SetIdleTimeoutMs(uint32(0)).Return(nil)
	m.Handler.EXPECT().Refresh().Return(nil)
	require.NoError(t, d.SetDisplayMode(sdm.ModeCommand))

	// Back to video it is restored.
	m.HW.EXPECT().SetDisplayMode(sdm.ModeVideo).Return(nil)
	m.HW.EXPECT().SetIdleTimeoutMs(uint32(500)).Return(nil)
	m.Handler.EXPECT().Refresh().Return(nil)
	require.NoError(t, d.SetDisplayMode(sdm.ModeVideo))
}

func TestSetFrameTriggerModeRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, d := readyDisplay(t, ctrl, testDisplaySetup())

	err := d.SetFrameTriggerMode(sdm.FrameTriggerPostedStart + 1)
	require.ErrorIs(t, err, sdm.ErrParameters)

	// The default mode is already in effect.
	require.NoError(t, d.SetFrameTriggerMode(sdm.FrameTriggerDefault))
}

func TestSetAlternateDisplayConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := readyDisplay(t, ctrl, testDisplaySetup())

	m.HW.EXPECT().SetAlternateDisplayConfig().Return(uint32(1), nil)
	index, err := d.SetAlternateDisplayConfig()
	require.NoError(t, err)
	require.Equal(t, uint32(1), index)

	active, err := d.GetActiveConfig()
	require.NoError(t, err)
	require.Equal(t, uint32(1), active)

	// The driver reporting a config the panel does not have is its bug, not
	// ours.
	m.HW.EXPECT().SetAlternateDisplayConfig().Return(uint32(7), nil)
	_, err = d.SetAlternateDisplayConfig()
	require.ErrorIs(t, err, sdm.ErrDriverData)
}

func TestDynamicDSIClock(t *testing.T) {
	ctrl := gomock.NewController(t)

	fixedSetup := testDisplaySetup()
	fixedSetup.Panel.DynamicBitclkSupport = false
	fixedSetup.Panel.BitclkRates = nil
	_, fixed := readyDisplay(t, ctrl, fixedSetup)

	_, err := fixed.GetSupportedDSIClock()
	require.ErrorIs(t, err, sdm.ErrNotSupported)
	err = fixed.SetDynamicDSIClock(550000000)
	require.ErrorIs(t, err, sdm.ErrNotSupported)

	m, d := readyDisplay(t, ctrl, testDisplaySetup())

	err = d.SetDynamicDSIClock(123)
	require.ErrorIs(t, err, sdm.ErrParameters)

	m.HW.EXPECT().SetDynamicDSIClock(uint64(900000000)).Return(nil)
	require.NoError(t, d.SetDynamicDSIClock(900000000))

	m.HW.EXPECT().GetDynamicDSIClock().Return(uint64(900000000), nil)
	rate, err := d.GetDynamicDSIClock()
	require.NoError(t, err)
	require.Equal(t, uint64(900000000), rate)
}
