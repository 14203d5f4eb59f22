package display

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm/mocks"
)

func TestCommitWithoutPrepare(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, d := poweredDisplay(t, ctrl, testDisplaySetup())

	err := d.Commit(frameStack())
	require.ErrorIs(t, err, sdm.ErrNotValidated)
}

func TestCommitFailureFlushesFrame(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	stack := frameStack()
	expectPrepare(m)
	require.NoError(t, d.Prepare(stack))

	m.HW.EXPECT().SetBlendSpace(sdm.PrimariesTransfer{}).Return(nil)
	m.Comp.EXPECT().Commit(m.Handle, gomock.Any()).Return(nil)
	m.HW.EXPECT().Commit(gomock.Any()).Return(nil, errors.New("crtc commit failed"))
	m.HW.EXPECT().Flush(gomock.Any()).Return(nil)

	err := d.Commit(stack)
	require.Error(t, err)

	// The failed frame lost its validation; the client must prepare again.
	err = d.Commit(stack)
	require.ErrorIs(t, err, sdm.ErrNotValidated)
}

func TestCommitWaitsPreviousRetire(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	retire := mocks.NewMockFence(ctrl)

	first := frameStack()
	expectPrepare(m)
	m.HW.EXPECT().SetBlendSpace(sdm.PrimariesTransfer{}).Return(nil)
	expectCommit(m, retire)
	runFrame(t, d, first)
	require.Same(t, retire, first.Stack.RetireFence)

	// The second commit blocks on the first frame leaving the panel.
	retire.EXPECT().Wait().Return(nil)

	second := frameStack()
	expectFrame(m)
	runFrame(t, d, second)
}

func TestCommitProgramsStagedFrameTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	require.NoError(t, d.SetFrameTriggerMode(sdm.FrameTriggerPostedStart))

	first := frameStack()
	expectPrepare(m)
	m.HW.EXPECT().SetFrameTrigger(sdm.FrameTriggerPostedStart).Return(nil)
	m.HW.EXPECT().SetBlendSpace(sdm.PrimariesTransfer{}).Return(nil)
	expectCommit(m, nil)
	runFrame(t, d, first)

	// The write rode the frame; later frames leave the trigger alone.
	expectFrame(m)
	runFrame(t, d, frameStack())
}

func TestCommitAppliesIdleTimeOnNextFrame(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	m.Comp.EXPECT().SetIdleTimeoutMs(m.Handle, uint32(500), uint32(50))
	d.SetIdleTimeoutMs(500, 50)

	first := frameStack()
	expectFirstFrame(m)
	m.HW.EXPECT().SetIdleTimeoutMs(uint32(500)).Return(nil)
	runFrame(t, d, first)

	// Applied once; the next frame carries no idle time.
	expectFrame(m)
	runFrame(t, d, frameStack())
}

func TestCommitMirrorsConfigOverIPC(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	ipc := mocks.NewMockIPCIntf(ctrl)
	setup.Options.IPC = ipc

	m, d := readyDisplay(t, ctrl, setup)
	m.HW.EXPECT().PowerOn().Return(nil, nil)
	_, err := d.SetDisplayState(sdm.StateOn, false)
	require.NoError(t, err)

	m.HW.EXPECT().SetPanelBrightness(128).Return(nil)
	require.NoError(t, d.SetPanelBrightness(0.5))

	expectFirstFrame(m)
	ipc.EXPECT().SetDisplayConfigParams(sdm.IPCDisplayConfigParams{
		XPixels:     1080,
		YPixels:     2400,
		FPS:         120,
		ConfigIndex: 0,
		IsPrimary:   true,
	}).Return(nil)
	ipc.EXPECT().SetBacklightParams(sdm.IPCBacklightParams{
		Brightness: 0.5,
		IsPrimary:  true,
	}).Return(nil)
	runFrame(t, d, frameStack())

	// Mirrored once; the next frame stays quiet.
	expectFrame(m)
	runFrame(t, d, frameStack())
}

func TestCommitRetriesIPCMirrorAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	ipc := mocks.NewMockIPCIntf(ctrl)
	setup.Options.IPC = ipc

	m, d := readyDisplay(t, ctrl, setup)
	m.HW.EXPECT().PowerOn().Return(nil, nil)
	_, err := d.SetDisplayState(sdm.StateOn, false)
	require.NoError(t, err)

	expectFirstFrame(m)
	ipc.EXPECT().SetDisplayConfigParams(gomock.Any()).Return(errors.New("peer not attached"))
	runFrame(t, d, frameStack())

	expectFrame(m)
	ipc.EXPECT().SetDisplayConfigParams(gomock.Any()).Return(nil)
	runFrame(t, d, frameStack())

	expectFrame(m)
	runFrame(t, d, frameStack())
}

func TestCommitReprogramsBlendSpaceOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	// The client moved GPU composition to a wide color space.
	wide := sdm.PrimariesTransfer{Primaries: 9, Transfer: 7}

	second := frameStack()
	second.Stack.BlendCS = wide
	expectPrepare(m)
	m.HW.EXPECT().SetBlendSpace(wide).Return(nil)
	expectCommit(m, nil)
	runFrame(t, d, second)

	// Same space again; nothing to program.
	third := frameStack()
	third.Stack.BlendCS = wide
	expectFrame(m)
	runFrame(t, d, third)
}

func TestCommitTogglesAutoRefreshOnCommandPanel(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	setup.Panel.Mode = sdm.ModeCommand

	m, d := poweredDisplay(t, ctrl, setup)

	first := frameStack()
	first.Stack.Flags.SingleBufferedPresent = true
	expectPrepare(m)
	m.HW.EXPECT().SetAutoRefresh(true).Return(nil)
	m.HW.EXPECT().SetBlendSpace(sdm.PrimariesTransfer{}).Return(nil)
	expectCommit(m, nil)
	runFrame(t, d, first)

	// Double-buffered content returns; the panel stops self-fetching.
	second := frameStack()
	expectPrepare(m)
	m.HW.EXPECT().SetAutoRefresh(false).Return(nil)
	expectCommit(m, nil)
	runFrame(t, d, second)

	expectFrame(m)
	runFrame(t, d, frameStack())
}
