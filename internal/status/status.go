// Package status provides a thread-safe status tracker for the lamp-timer
// daemon. It is designed to be read by HTTP handlers while the tick loop
// writes it.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/lamp-timer/internal/clock"
	"github.com/sweeney/lamp-timer/internal/menu"
	"github.com/sweeney/lamp-timer/internal/panel"
)

// NetworkInfo contains network state. This is a local copy to avoid
// importing cmd helpers from status.
type NetworkInfo struct {
	Type       string
	IP         string
	Status     string
	Gateway    string
	WifiStatus string
	SSID       string
}

// Config contains daemon configuration for display.
type Config struct {
	PollMs      int64
	HeartbeatMs int64
	DimMs       int64
	Broker      string
	HTTPPort    string
	StateFile   string
	RTC         string
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type, safe to use after the lock is released.
type Snapshot struct {
	LampOn     bool
	Dimming    bool
	Brightness uint8

	OnHour, OnMinute   int
	OffHour, OffMinute int

	Clock clock.Time
	Menu  menu.State

	Counts        panel.EventCounts
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Network       *NetworkInfo
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// LampState returns the lamp state as display text: ON, DIM, or OFF.
func (s Snapshot) LampState() string {
	switch {
	case s.LampOn && s.Dimming:
		return "DIM"
	case s.LampOn:
		return "ON"
	default:
		return "OFF"
	}
}

// BrightnessPct maps the 0-255 level to 0-100.
func (s Snapshot) BrightnessPct() int {
	return int(s.Brightness) * 100 / 255
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets lamp state, schedule times, clock reading, menu state, and
// event counts. Called from runLoop on every tick.
func (t *Tracker) Update(lampOn, dimming bool, brightness uint8,
	onHour, onMinute, offHour, offMinute int,
	reading clock.Time, menuState menu.State, counts panel.EventCounts) {
	t.mu.Lock()
	t.snap.LampOn = lampOn
	t.snap.Dimming = dimming
	t.snap.Brightness = brightness
	t.snap.OnHour, t.snap.OnMinute = onHour, onMinute
	t.snap.OffHour, t.snap.OffMinute = offHour, offMinute
	t.snap.Clock = reading
	t.snap.Menu = menuState
	t.snap.Counts = counts
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// SetNetwork sets the network info.
func (t *Tracker) SetNetwork(info *NetworkInfo) {
	t.mu.Lock()
	t.snap.Network = info
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
