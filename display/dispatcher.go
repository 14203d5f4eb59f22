package display

import (
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// Event is one interrupt delivered through an EventDispatcher. Kind selects
// which payload fields are meaningful.
type Event struct {
	Kind sdm.HWEvent

	// Timestamp carries the vsync time for EventVSync
	Timestamp int64
	// Level carries the thermal level for EventThermalLevel
	Level int64
	// Recovery carries the outcome for EventHWRecovery
	Recovery sdm.HWRecoveryEvent
	// FD and BlobID carry the sample handle for EventHistogram
	FD     int
	BlobID uint32
	// Brightness carries the level for EventBacklight
	Brightness float32
	// ClkHz carries the granted clock for EventMMRM
	ClkHz uint32
}

const eventQueueDepth = 64

// EventDispatcher decouples an interrupt source from a display session by
// pumping events through a buffered channel on its own goroutine, the way a
// driver poll thread would. Post never blocks the producer; an event arriving
// while the queue is full is dropped and counted.
//
// A dispatcher serves exactly one display. Hand its Factory to
// CreateOptions.EventsFactory and keep the dispatcher for the Post side.
type EventDispatcher struct {
	logger *slog.Logger

	mutex     sync.Mutex
	handler   sdm.HWEventHandler
	enabled   map[sdm.HWEvent]bool
	started   bool
	stopped   bool
	dropCount uint64

	queue chan Event
	quit  chan struct{}
	group errgroup.Group
}

var _ sdm.HWEventsInterface = &EventDispatcher{}

// NewEventDispatcher creates a dispatcher. Delivery starts once a session
// binds itself through the factory; events posted before that are dropped.
func NewEventDispatcher(logger *slog.Logger) *EventDispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &EventDispatcher{
		logger:  logger,
		enabled: make(map[sdm.HWEvent]bool),
		queue:   make(chan Event, eventQueueDepth),
		quit:    make(chan struct{}),
	}
}

// Factory returns the hook a session passes as CreateOptions.EventsFactory.
func (e *EventDispatcher) Factory() sdm.HWEventsFactory {
	return func(displayID int32, displayType sdm.DisplayType, handler sdm.HWEventHandler,
		events []sdm.HWEvent) (sdm.HWEventsInterface, error) {

		e.mutex.Lock()
		defer e.mutex.Unlock()

		if e.stopped {
			return nil, errors.Wrap(sdm.ErrShutDown, "dispatcher stopped")
		}
		if e.started {
			return nil, errors.Errorf("dispatcher already serves display %d", displayID)
		}

		e.handler = handler
		for _, event := range events {
			e.enabled[event] = true
		}
		e.started = true
		e.group.Go(e.run)

		e.logger.Debug("EventDispatcher::Factory", slog.Int("displayId", int(displayID)),
			slog.Int("events", len(events)))

		return e, nil
	}
}

func (e *EventDispatcher) run() error {
	for {
		select {
		case <-e.quit:
			return nil
		case event := <-e.queue:
			e.deliver(event)
		}
	}
}

func (e *EventDispatcher) deliver(event Event) {
	e.mutex.Lock()
	handler := e.handler
	enabled := e.enabled[event.Kind]
	e.mutex.Unlock()

	if handler == nil || !enabled {
		return
	}

	switch event.Kind {
	case sdm.EventVSync:
		err := handler.VSync(event.Timestamp)
		if err != nil {
			e.logger.Warn("vsync delivery failed", slog.Any("error", err))
		}
	case sdm.EventIdleNotify:
		handler.IdleTimeout()
	case sdm.EventThermalLevel:
		handler.ThermalEvent(event.Level)
	case sdm.EventIdlePowerCollapse:
		handler.IdlePowerCollapse()
	case sdm.EventPingPongTimeout:
		handler.PingPongTimeout()
	case sdm.EventPanelDead:
		handler.PanelDead()
	case sdm.EventHWRecovery:
		handler.HwRecovery(event.Recovery)
	case sdm.EventHistogram:
		err := handler.Histogram(event.FD, event.BlobID)
		if err != nil {
			e.logger.Warn("histogram delivery failed", slog.Any("error", err))
		}
	case sdm.EventBacklight:
		handler.BacklightEvent(event.Brightness)
	case sdm.EventPower:
		handler.PowerEvent()
	case sdm.EventMMRM:
		handler.MMRMEvent(event.ClkHz)
	case sdm.EventExit:
		// Wakes the pump; nothing to deliver.
	default:
		e.logger.Warn("unknown event kind", slog.Int("kind", int(event.Kind)))
	}
}

// Post queues one event for delivery and returns immediately.
func (e *EventDispatcher) Post(event Event) {
	e.mutex.Lock()
	stopped := e.stopped
	e.mutex.Unlock()
	if stopped {
		return
	}

	select {
	case e.queue <- event:
	default:
		e.mutex.Lock()
		e.dropCount++
		dropped := e.dropCount
		e.mutex.Unlock()
		e.logger.Warn("event queue full", slog.String("event", event.Kind.String()),
			slog.Uint64("dropped", dropped))
	}
}

// SetEventState enables or disables delivery of one event kind.
func (e *EventDispatcher) SetEventState(event sdm.HWEvent, enable bool) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.stopped {
		return errors.Wrap(sdm.ErrShutDown, "dispatcher stopped")
	}

	e.enabled[event] = enable
	return nil
}

// Deinit stops delivery and waits for the pump goroutine to finish its
// current callback. No callbacks arrive after it returns.
func (e *EventDispatcher) Deinit() error {
	e.mutex.Lock()
	if e.stopped {
		e.mutex.Unlock()
		return nil
	}
	e.stopped = true
	started := e.started
	e.mutex.Unlock()

	close(e.quit)
	if !started {
		return nil
	}
	return e.group.Wait()
}
