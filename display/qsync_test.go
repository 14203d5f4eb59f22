package display

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

func TestQSyncBeforeFirstCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, d := poweredDisplay(t, ctrl, testDisplaySetup())

	err := d.SetQSyncMode(sdm.QSyncModeContinuous)
	require.ErrorIs(t, err, sdm.ErrNotSupported)
}

func TestQSyncUnsupportedPanel(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	setup.Panel.QsyncSupport = false

	m, d := poweredDisplay(t, ctrl, setup)

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	err := d.SetQSyncMode(sdm.QSyncModeContinuous)
	require.ErrorIs(t, err, sdm.ErrNotSupported)

	_, err = d.GetQsyncFps()
	require.ErrorIs(t, err, sdm.ErrNotSupported)
}

func TestQSyncModeRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	err := d.SetQSyncMode(sdm.QSyncModeOneShotContinuous + 1)
	require.ErrorIs(t, err, sdm.ErrParameters)
}

func TestQSyncProgramsAVROnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	m.Handler.EXPECT().Refresh().Return(nil)
	require.NoError(t, d.SetQSyncMode(sdm.QSyncModeContinuous))

	// Requesting the mode the session already runs is a no-op, with no
	// refresh round trip.
	require.NoError(t, d.SetQSyncMode(sdm.QSyncModeContinuous))

	// The frame after the change carries the hardware write.
	second := frameStack()
	expectFrame(m)
	require.NoError(t, d.Prepare(second))
	require.Equal(t, sdm.HWAVRInfo{Update: true, Mode: sdm.AVRModeContinuous},
		second.Info.AVRInfo)
	require.NoError(t, d.Commit(second))
	require.NoError(t, d.PostCommit(second))

	// Later frames keep the mode without rewriting it.
	third := frameStack()
	expectFrame(m)
	require.NoError(t, d.Prepare(third))
	require.Equal(t, sdm.HWAVRInfo{Update: false, Mode: sdm.AVRModeContinuous},
		third.Info.AVRInfo)
	require.NoError(t, d.Commit(third))
	require.NoError(t, d.PostCommit(third))
}

func TestQSyncOneShotFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	m.Handler.EXPECT().Refresh().Return(nil)
	require.NoError(t, d.SetQSyncMode(sdm.QSyncModeOneShot))

	second := frameStack()
	expectFrame(m)
	require.NoError(t, d.Prepare(second))
	require.Equal(t, sdm.HWAVRInfo{Update: true, Mode: sdm.AVRModeOneShot},
		second.Info.AVRInfo)
	require.NoError(t, d.Commit(second))
	require.NoError(t, d.PostCommit(second))

	// The stretched frame landed; the session already fell back.
	mode, err := d.GetQSyncMode()
	require.NoError(t, err)
	require.Equal(t, sdm.QSyncModeNone, mode)

	// The next frame turns the AVR block off.
	third := frameStack()
	expectFrame(m)
	require.NoError(t, d.Prepare(third))
	require.Equal(t, sdm.HWAVRInfo{Update: true, Mode: sdm.AVRModeNone},
		third.Info.AVRInfo)
	require.NoError(t, d.Commit(third))
	require.NoError(t, d.PostCommit(third))
}

func TestQSyncOneShotContinuousStaysArmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	m.Handler.EXPECT().Refresh().Return(nil)
	require.NoError(t, d.SetQSyncMode(sdm.QSyncModeOneShotContinuous))

	expectFrame(m)
	runFrame(t, d, frameStack())

	mode, err := d.GetQSyncMode()
	require.NoError(t, err)
	require.Equal(t, sdm.QSyncModeOneShotContinuous, mode)

	// Every commit re-arms the stretch.
	third := frameStack()
	expectFrame(m)
	require.NoError(t, d.Prepare(third))
	require.Equal(t, sdm.HWAVRInfo{Update: true, Mode: sdm.AVRModeOneShot},
		third.Info.AVRInfo)
	require.NoError(t, d.Commit(third))
	require.NoError(t, d.PostCommit(third))
}

func TestQSyncOwnsRefreshRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	m.Handler.EXPECT().Refresh().Return(nil)
	require.NoError(t, d.SetQSyncMode(sdm.QSyncModeContinuous))

	err := d.SetRefreshRate(60, false, false)
	require.ErrorIs(t, err, sdm.ErrNotSupported)
}

func TestGetQsyncFps(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, d := readyDisplay(t, ctrl, testDisplaySetup())

	fps, err := d.GetQsyncFps()
	require.NoError(t, err)
	require.Equal(t, uint32(48), fps)
}
