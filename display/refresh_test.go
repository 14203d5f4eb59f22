package display

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// enterIdle drives the idle interrupt with its whole fan-out expected.
func enterIdle(m displayMocks, d *Display) {
	m.HW.EXPECT().EnableSelfRefresh().Return(nil)
	m.Comp.EXPECT().ProcessIdleTimeout(m.Handle)
	m.Handler.EXPECT().Refresh().Return(nil)
	m.Handler.EXPECT().HandleEvent(sdm.DisplayEventIdleTimeout).Return(nil)
	d.IdleTimeout()
}

func TestSetRefreshRateGates(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, inactive := readyDisplay(t, ctrl, testDisplaySetup())
	err := inactive.SetRefreshRate(60, false, false)
	require.ErrorIs(t, err, sdm.ErrPermission)

	fixedSetup := testDisplaySetup()
	fixedSetup.Panel.DynamicFPS = false
	_, fixed := poweredDisplay(t, ctrl, fixedSetup)
	err = fixed.SetRefreshRate(60, false, false)
	require.ErrorIs(t, err, sdm.ErrNotSupported)

	disabledSetup := testDisplaySetup()
	disabledSetup.Options.DisableDynamicFps = true
	_, disabled := poweredDisplay(t, ctrl, disabledSetup)
	err = disabled.SetRefreshRate(60, false, false)
	require.ErrorIs(t, err, sdm.ErrNotSupported)

	_, d := poweredDisplay(t, ctrl, testDisplaySetup())
	require.ErrorIs(t, d.SetRefreshRate(29, false, false), sdm.ErrParameters)
	require.ErrorIs(t, d.SetRefreshRate(121, false, false), sdm.ErrParameters)
}

func TestSetRefreshRateProgramsPanel(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	m.HW.EXPECT().SetRefreshRate(uint32(60)).Return(nil)
	m.Comp.EXPECT().CheckEnforceSplit(m.Handle, uint32(60)).Return(nil)
	require.NoError(t, d.SetRefreshRate(60, true, false))

	rate, err := d.GetRefreshRate()
	require.NoError(t, err)
	require.Equal(t, uint32(60), rate)

	// Asking for the rate the panel already runs writes nothing.
	require.NoError(t, d.SetRefreshRate(60, true, false))
}

func TestIdleDropClampsToPanelFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	enterIdle(m, d)

	// The client asks for 90 but the screen is idle; the panel lands on its
	// floor instead.
	m.HW.EXPECT().SetRefreshRate(uint32(30)).Return(nil)
	m.Comp.EXPECT().CheckEnforceSplit(m.Handle, uint32(30)).Return(nil)
	require.NoError(t, d.SetRefreshRate(90, false, false))

	rate, err := d.GetRefreshRate()
	require.NoError(t, err)
	require.Equal(t, uint32(30), rate)

	// The idle frame commits, activity resumes, and the next request lands
	// as given.
	expectFrame(m)
	runFrame(t, d, frameStack())

	m.HW.EXPECT().SetRefreshRate(uint32(90)).Return(nil)
	m.Comp.EXPECT().CheckEnforceSplit(m.Handle, uint32(90)).Return(nil)
	require.NoError(t, d.SetRefreshRate(90, false, false))
}

func TestIdleDropSkippedForFinalRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	enterIdle(m, d)

	// A client-final rate must land as given even while idle.
	m.HW.EXPECT().SetRefreshRate(uint32(90)).Return(nil)
	m.Comp.EXPECT().CheckEnforceSplit(m.Handle, uint32(90)).Return(nil)
	require.NoError(t, d.SetRefreshRate(90, true, false))
}

func TestEnhancedIdleRequiresDwell(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	setup.Options.EnhanceIdleTime = true

	m, d := poweredDisplay(t, ctrl, setup)

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	m.Comp.EXPECT().SetIdleTimeoutMs(m.Handle, uint32(10000), uint32(100))
	d.SetIdleTimeoutMs(10000, 100)

	enterIdle(m, d)

	// The panel just went idle; the configured dwell has not elapsed.
	err := d.SetRefreshRate(60, false, true)
	require.ErrorIs(t, err, sdm.ErrNotSupported)

	// A request not marked as idle-driven never lowers under enhanced idle.
	err = d.SetRefreshRate(60, false, false)
	require.ErrorIs(t, err, sdm.ErrNotSupported)
}

func TestEnhancedIdleDropsAfterDwell(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	setup.Options.EnhanceIdleTime = true

	m, d := poweredDisplay(t, ctrl, setup)

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	// A zero dwell window is satisfied the moment idle begins.
	m.Comp.EXPECT().SetIdleTimeoutMs(m.Handle, uint32(0), uint32(0))
	d.SetIdleTimeoutMs(0, 0)

	enterIdle(m, d)

	m.HW.EXPECT().SetRefreshRate(uint32(30)).Return(nil)
	m.Comp.EXPECT().CheckEnforceSplit(m.Handle, uint32(30)).Return(nil)
	// Landing on the floor under enhanced idle also folds composition.
	m.Comp.EXPECT().ProcessIdleTimeout(m.Handle)
	require.NoError(t, d.SetRefreshRate(60, false, true))
}

func TestRefreshRejectionEndsIdleCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	enterIdle(m, d)

	m.HW.EXPECT().SetRefreshRate(uint32(30)).Return(errors.New("mode switch in flight"))
	err := d.SetRefreshRate(90, false, false)
	require.Error(t, err)

	// The refused write ended the idle cycle; the retry is no longer
	// clamped.
	m.HW.EXPECT().SetRefreshRate(uint32(90)).Return(nil)
	m.Comp.EXPECT().CheckEnforceSplit(m.Handle, uint32(90)).Return(nil)
	require.NoError(t, d.SetRefreshRate(90, false, false))
}

func TestIdleTimeoutVideoOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	setup.Panel.Mode = sdm.ModeCommand

	_, d := poweredDisplay(t, ctrl, setup)

	// Command panels self-refresh; the interrupt is ignored outright.
	d.IdleTimeout()
}

func TestIdleTimeoutRequiresActiveDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, d := readyDisplay(t, ctrl, testDisplaySetup())

	d.IdleTimeout()
}
