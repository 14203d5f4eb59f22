package display

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm/mocks"
)

func TestPartialUpdateStateMachine(t *testing.T) {
	steps := []struct {
		name  string
		state partialUpdateState
		event partialUpdateEvent
		want  partialUpdateState
	}{
		{"one-frame disable rides on enabled", puEnabled, puEventDisableOneFrame, puDisabledOneFrame},
		{"one-frame disable never downgrades a full disable", puDisabled, puEventDisableOneFrame, puDisabled},
		{"commit consumes the one-frame disable", puDisabledOneFrame, puEventCommit, puEnabled},
		{"commit leaves enabled alone", puEnabled, puEventCommit, puEnabled},
		{"commit leaves a full disable alone", puDisabled, puEventCommit, puDisabled},
		{"enable clears a full disable", puDisabled, puEventEnable, puEnabled},
		{"disable wins over a one-frame disable", puDisabledOneFrame, puEventDisable, puDisabled},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			require.Equal(t, step.want, step.state.apply(step.event))
		})
	}
}

func TestControlPartialUpdateUnsupportedPanel(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	setup.Panel.PartialUpdate = false
	_, d := readyDisplay(t, ctrl, setup)

	_, err := d.ControlPartialUpdate(true)
	require.ErrorIs(t, err, sdm.ErrNotSupported)
}

func TestControlPartialUpdatePendingFrames(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, d := readyDisplay(t, ctrl, testDisplaySetup())

	// Disabling takes one full frame to land; enabling is effective at once.
	pending, err := d.ControlPartialUpdate(false)
	require.NoError(t, err)
	require.Equal(t, uint32(1), pending)

	pending, err = d.ControlPartialUpdate(true)
	require.NoError(t, err)
	require.Equal(t, uint32(0), pending)
}

func TestControlPartialUpdateBlockedByDppsEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDppsInterface(ctrl)
	engine.EXPECT().PartialUpdateDisabled().Return(true)

	setup := testDisplaySetup()
	setup.Options.DppsRegistry = NewDppsRegistry(func(int32) sdm.DppsInterface { return engine })
	_, d := readyDisplay(t, ctrl, setup)

	_, err := d.ControlPartialUpdate(true)
	require.ErrorIs(t, err, sdm.ErrNotSupported)
}

func TestControlPartialUpdateDisablesFrameSkip(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	roi := sdm.Rect{Left: 0, Top: 0, Right: 1080, Bottom: 200}
	prepareWithROI(m, roi)
	m.HW.EXPECT().SetBlendSpace(sdm.PrimariesTransfer{}).Return(nil)
	expectCommit(m, nil)
	runFrame(t, d, frameStack())

	_, err := d.ControlPartialUpdate(false)
	require.NoError(t, err)

	// With regional refresh off the quiet frame cannot reuse the previous
	// assignment; it runs the full pass.
	prepareWithROI(m, roi)
	expectCommit(m, nil)
	runFrame(t, d, quiescentStack())
}

func TestSetPartialUpdateAcknowledgedByCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	// The toggle asks the client for a frame and then blocks on the ack, so
	// it has to run off the test goroutine.
	armed := make(chan struct{})
	m.Handler.EXPECT().Refresh().DoAndReturn(func() error {
		close(armed)
		return nil
	})

	result := make(chan error, 1)
	go func() {
		_, err := d.SetPartialUpdate(false)
		result <- err
	}()

	<-armed
	expectFirstFrame(m)
	runFrame(t, d, frameStack())

	require.NoError(t, <-result)
}

func TestSetPartialUpdateTimesOutWithoutCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, d := poweredDisplay(t, ctrl, testDisplaySetup())

	m.Handler.EXPECT().Refresh().Return(nil)

	// Nobody commits; the toggle stays applied but the caller learns no
	// frame carried it out.
	enabled, err := d.SetPartialUpdate(true)
	require.ErrorIs(t, err, sdm.ErrTimeOut)
	require.True(t, enabled)
}

func TestSetPartialUpdateUnsupportedPanel(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := testDisplaySetup()
	setup.Panel.PartialUpdate = false
	_, d := readyDisplay(t, ctrl, setup)

	_, err := d.SetPartialUpdate(true)
	require.ErrorIs(t, err, sdm.ErrNotSupported)
}
