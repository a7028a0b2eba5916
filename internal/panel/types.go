package panel

import "time"

// EventType labels a telemetry event emitted by the tick loop.
type EventType string

const (
	EventLampOn      EventType = "LAMP_ON"
	EventLampOff     EventType = "LAMP_OFF"
	EventLampDim     EventType = "LAMP_DIM"
	EventScheduleSet EventType = "SCHEDULE_SET"
	EventClockSet    EventType = "CLOCK_SET"
)

// Event is a telemetry event to be published.
type Event struct {
	Timestamp time.Time
	Type      EventType

	// Brightness accompanies lamp events (0-255).
	Brightness uint8

	// Schedule times accompany EventScheduleSet.
	OnHour, OnMinute   int
	OffHour, OffMinute int

	// Hour and Minute accompany EventClockSet.
	Hour, Minute int
}

// EventCounts tracks the number of each event type since startup.
type EventCounts struct {
	LampOn       int
	LampOff      int
	ScheduleSets int
	ClockSets    int
}

// Count adds one event to the tally.
func (c *EventCounts) Count(t EventType) {
	switch t {
	case EventLampOn:
		c.LampOn++
	case EventLampOff:
		c.LampOff++
	case EventScheduleSet:
		c.ScheduleSets++
	case EventClockSet:
		c.ClockSets++
	}
}
