package display

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm/mocks"
)

func boundDispatcher(t *testing.T, ctrl *gomock.Controller) (*EventDispatcher, *mocks.MockHWEventHandler) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	dispatcher := NewEventDispatcher(logger)
	handler := mocks.NewMockHWEventHandler(ctrl)

	backend, err := dispatcher.Factory()(0, sdm.DisplayBuiltIn, handler,
		[]sdm.HWEvent{sdm.EventVSync, sdm.EventThermalLevel, sdm.EventHistogram})
	require.NoError(t, err)
	require.Same(t, dispatcher, backend)

	return dispatcher, handler
}

func TestEventDispatcherDelivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher, handler := boundDispatcher(t, ctrl)

	delivered := make(chan int64, 1)
	handler.EXPECT().VSync(int64(777)).DoAndReturn(func(timestamp int64) error {
		delivered <- timestamp
		return nil
	})

	dispatcher.Post(Event{Kind: sdm.EventVSync, Timestamp: 777})
	require.Equal(t, int64(777), <-delivered)

	require.NoError(t, dispatcher.Deinit())
	require.NoError(t, dispatcher.Deinit())
}

func TestEventDispatcherSkipsDisabledEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher, handler := boundDispatcher(t, ctrl)

	require.NoError(t, dispatcher.SetEventState(sdm.EventVSync, false))

	// The queue is ordered, so the thermal delivery proves the disabled
	// vsync ahead of it was dropped rather than stuck.
	done := make(chan struct{})
	handler.EXPECT().ThermalEvent(int64(3)).Do(func(int64) {
		close(done)
	})

	dispatcher.Post(Event{Kind: sdm.EventVSync, Timestamp: 1})
	dispatcher.Post(Event{Kind: sdm.EventThermalLevel, Level: 3})
	<-done

	require.NoError(t, dispatcher.Deinit())
}

func TestEventDispatcherSingleBinding(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher, _ := boundDispatcher(t, ctrl)

	other := mocks.NewMockHWEventHandler(ctrl)
	_, err := dispatcher.Factory()(1, sdm.DisplayBuiltIn, other, []sdm.HWEvent{sdm.EventVSync})
	require.Error(t, err)
	require.Contains(t, err.Error(), "already serves")

	require.NoError(t, dispatcher.Deinit())

	_, err = dispatcher.Factory()(0, sdm.DisplayBuiltIn, other, []sdm.HWEvent{sdm.EventVSync})
	require.ErrorIs(t, err, sdm.ErrShutDown)
}

func TestEventDispatcherStopped(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher, _ := boundDispatcher(t, ctrl)

	require.NoError(t, dispatcher.Deinit())

	err := dispatcher.SetEventState(sdm.EventVSync, false)
	require.ErrorIs(t, err, sdm.ErrShutDown)

	// A late interrupt is dropped without touching the handler.
	dispatcher.Post(Event{Kind: sdm.EventVSync, Timestamp: 12})
}

func TestEventDispatcherServesDisplaySession(t *testing.T) {
	ctrl := gomock.NewController(t)

	dispatcher := NewEventDispatcher(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	setup := testDisplaySetup()
	setup.Options.EventsFactory = dispatcher.Factory()

	m, d := poweredDisplay(t, ctrl, setup)
	require.NoError(t, d.SetVSyncState(true))

	delivered := make(chan struct{})
	m.Handler.EXPECT().VSync(sdm.DisplayEventVSync{Timestamp: 888}).
		DoAndReturn(func(sdm.DisplayEventVSync) error {
			close(delivered)
			return nil
		})

	dispatcher.Post(Event{Kind: sdm.EventVSync, Timestamp: 888})
	<-delivered

	// Session teardown stops the pump; the posted event after it goes
	// nowhere.
	m.Comp.EXPECT().UnregisterDisplay(m.Handle).Return(nil)
	require.NoError(t, d.Deinit())

	dispatcher.Post(Event{Kind: sdm.EventVSync, Timestamp: 999})
}
