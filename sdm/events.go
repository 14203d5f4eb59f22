package sdm

// HWEvent identifies one interrupt source a display can subscribe to.
type HWEvent uint32

const (
	EventVSync HWEvent = iota
	EventExit
	EventIdleNotify
	EventThermalLevel
	EventIdlePowerCollapse
	EventPingPongTimeout
	EventPanelDead
	EventHWRecovery
	EventHistogram
	EventBacklight
	EventPower
	EventMMRM
)

var hwEventMapping = map[HWEvent]string{
	EventVSync:             "VSync",
	EventExit:              "Exit",
	EventIdleNotify:        "IdleNotify",
	EventThermalLevel:      "ThermalLevel",
	EventIdlePowerCollapse: "IdlePowerCollapse",
	EventPingPongTimeout:   "PingPongTimeout",
	EventPanelDead:         "PanelDead",
	EventHWRecovery:        "HWRecovery",
	EventHistogram:         "Histogram",
	EventBacklight:         "Backlight",
	EventPower:             "Power",
	EventMMRM:              "MMRM",
}

func (e HWEvent) String() string {
	return hwEventMapping[e]
}

// HWRecoveryEvent is the driver's self-reported recovery outcome.
type HWRecoveryEvent uint32

const (
	HWRecoverySuccess HWRecoveryEvent = iota
	HWRecoveryCapture
	HWRecoveryDisplayPowerReset
)

// HWEventHandler receives interrupt callbacks from the event backend. The
// display session implements this; calls arrive on the backend's own
// goroutine.
type HWEventHandler interface {
	VSync(timestamp int64) error
	IdleTimeout()
	PingPongTimeout()
	ThermalEvent(level int64)
	IdlePowerCollapse()
	PanelDead()
	HwRecovery(event HWRecoveryEvent)
	Histogram(fd int, blobID uint32) error
	BacklightEvent(level float32)
	MMRMEvent(clkHz uint32)
	PowerEvent()
}

// HWEventsInterface is the subscription handle returned by an event backend.
type HWEventsInterface interface {
	// SetEventState enables or disables delivery of one event
	SetEventState(event HWEvent, enable bool) error
	// Deinit tears the subscription down; no callbacks arrive after it returns
	Deinit() error
}

// HWEventsFactory constructs the event backend for one display. The handler
// starts receiving callbacks before this returns.
type HWEventsFactory func(displayID int32, displayType DisplayType, handler HWEventHandler, events []HWEvent) (HWEventsInterface, error)

// DisplayEvent identifies one condition forwarded to the display's client.
type DisplayEvent uint32

const (
	DisplayEventIdleTimeout DisplayEvent = iota
	DisplayEventThermal
	DisplayEventIdlePowerCollapse
	DisplayEventPanelDead
	DisplayEventPowerReset
	DisplayEventInvalidate
	DisplayEventSyncInvalidate
	DisplayEventPostIdleTimeout
)

var displayEventMapping = map[DisplayEvent]string{
	DisplayEventIdleTimeout:       "IdleTimeout",
	DisplayEventThermal:           "Thermal",
	DisplayEventIdlePowerCollapse: "IdlePowerCollapse",
	DisplayEventPanelDead:         "PanelDead",
	DisplayEventPowerReset:        "PowerReset",
	DisplayEventInvalidate:        "Invalidate",
	DisplayEventSyncInvalidate:    "SyncInvalidate",
	DisplayEventPostIdleTimeout:   "PostIdleTimeout",
}

func (e DisplayEvent) String() string {
	return displayEventMapping[e]
}

// DisplayEventVSync is the payload delivered with each vsync callback.
type DisplayEventVSync struct {
	Timestamp int64
}

// DisplayEventHandler is implemented by the client of a display session.
// Callbacks may arrive on the event goroutine and must not call back into the
// session synchronously except for Refresh.
type DisplayEventHandler interface {
	VSync(vsync DisplayEventVSync) error
	// Refresh asks the client to compose and commit a new frame soon
	Refresh() error
	HandleEvent(event DisplayEvent) error
	HistogramEvent(fd int, blobID uint32) error
}
