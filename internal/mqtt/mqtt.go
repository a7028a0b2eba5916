// Package mqtt provides MQTT publishing with abstraction for testing.
package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sweeney/lamp-timer/internal/panel"
)

// Topic is the MQTT topic for panel events.
const Topic = "home/lamp/panel/events"

// TopicSystem is the MQTT topic for system lifecycle events.
const TopicSystem = "home/lamp/panel/system"

// Publisher publishes events to MQTT.
type Publisher interface {
	// Publish sends a panel event to the broker.
	// Returns error if publishing fails (should not crash the process).
	Publish(event panel.Event) error

	// PublishSystem sends a system lifecycle event to the broker.
	PublishSystem(event SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// ConnectionStatus reports whether the MQTT connection is active.
type ConnectionStatus interface {
	IsConnected() bool
}

// SystemEvent represents a system lifecycle event (e.g., startup, shutdown, heartbeat).
type SystemEvent struct {
	Timestamp  time.Time
	Event      string // e.g., "STARTUP", "SHUTDOWN", "HEARTBEAT"
	Reason     string // e.g., "SIGTERM", "SIGINT" (shutdown only)
	RawPayload []byte // Pre-formatted JSON payload; if set, FormatSystemPayload returns it directly
	Retained   bool   // Whether the message should be retained by the broker
}

// Payload represents the MQTT message payload structure.
type Payload struct {
	Panel PanelPayload `json:"panel"`
}

// PanelPayload contains the panel event details.
type PanelPayload struct {
	Timestamp     string           `json:"timestamp"`
	Event         string           `json:"event"`
	BrightnessPct *int             `json:"brightness_pct,omitempty"`
	Schedule      *SchedulePayload `json:"schedule,omitempty"`
	Clock         *ClockPayload    `json:"clock,omitempty"`
}

// SchedulePayload carries the committed on/off pair.
type SchedulePayload struct {
	On  string `json:"on"`
	Off string `json:"off"`
}

// ClockPayload carries the committed clock time.
type ClockPayload struct {
	Time string `json:"time"`
}

// FormatPayload creates the JSON payload for a panel event.
func FormatPayload(event panel.Event) ([]byte, error) {
	p := PanelPayload{
		Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
		Event:     string(event.Type),
	}

	switch event.Type {
	case panel.EventLampOn, panel.EventLampDim:
		pct := int(event.Brightness) * 100 / 255
		p.BrightnessPct = &pct
	case panel.EventScheduleSet:
		p.Schedule = &SchedulePayload{
			On:  hhmm(event.OnHour, event.OnMinute),
			Off: hhmm(event.OffHour, event.OffMinute),
		}
	case panel.EventClockSet:
		p.Clock = &ClockPayload{Time: hhmm(event.Hour, event.Minute)}
	}

	return json.Marshal(Payload{Panel: p})
}

func hhmm(h, m int) string {
	return fmt.Sprintf("%02d:%02d", h, m)
}

// SystemPayload represents the MQTT message payload for system events.
// Used for simple events that don't carry a full status snapshot.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner contains the system event details.
type SystemPayloadInner struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
}

// FormatSystemPayload creates the JSON payload for a system event.
// If event.RawPayload is set, it is returned directly (used for full status snapshots).
func FormatSystemPayload(event SystemEvent) ([]byte, error) {
	if event.RawPayload != nil {
		return event.RawPayload, nil
	}

	payload := SystemPayload{
		System: SystemPayloadInner{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     event.Event,
			Reason:    event.Reason,
		},
	}
	return json.Marshal(payload)
}
