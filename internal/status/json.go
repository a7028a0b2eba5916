package status

import (
	"encoding/json"
	"fmt"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event         string       `json:"event,omitempty"`
	Reason        string       `json:"reason,omitempty"`
	Lamp          LampJSON     `json:"lamp"`
	Schedule      ScheduleJSON `json:"schedule"`
	Clock         string       `json:"clock"`
	Menu          string       `json:"menu"`
	UptimeSeconds int64        `json:"uptime_seconds"`
	StartTime     string       `json:"start_time"`
	Timestamp     string       `json:"timestamp"`
	MQTT          MQTTStatus   `json:"mqtt"`
	Counts        CountsJSON   `json:"event_counts"`
	Network       *NetworkJSON `json:"network,omitempty"`
	Config        ConfigJSON   `json:"config"`
}

// LampJSON reports the lamp output state.
type LampJSON struct {
	State         string `json:"state"`
	BrightnessPct int    `json:"brightness_pct"`
}

// ScheduleJSON reports the active on/off times.
type ScheduleJSON struct {
	On  string `json:"on"`
	Off string `json:"off"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
}

// CountsJSON is the JSON representation of event counts.
type CountsJSON struct {
	LampOn       int `json:"lamp_on"`
	LampOff      int `json:"lamp_off"`
	ScheduleSets int `json:"schedule_sets"`
	ClockSets    int `json:"clock_sets"`
}

// NetworkJSON is the JSON representation of network info.
type NetworkJSON struct {
	Type       string `json:"type"`
	IP         string `json:"ip"`
	Status     string `json:"status"`
	Gateway    string `json:"gateway"`
	WifiStatus string `json:"wifi_status"`
	SSID       string `json:"ssid"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs      int64  `json:"poll_ms"`
	HeartbeatMs int64  `json:"heartbeat_ms"`
	DimMs       int64  `json:"dim_ms"`
	Broker      string `json:"broker"`
	HTTPPort    string `json:"http_port"`
	StateFile   string `json:"state_file"`
	RTC         string `json:"rtc"`
}

func buildInner(snap Snapshot) StatusInner {
	return StatusInner{
		Lamp: LampJSON{
			State:         snap.LampState(),
			BrightnessPct: snap.BrightnessPct(),
		},
		Schedule: ScheduleJSON{
			On:  fmt.Sprintf("%02d:%02d", snap.OnHour, snap.OnMinute),
			Off: fmt.Sprintf("%02d:%02d", snap.OffHour, snap.OffMinute),
		},
		Clock:         snap.Clock.String(),
		Menu:          snap.Menu.String(),
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		MQTT:          MQTTStatus{Connected: snap.MQTTConnected, Broker: snap.Config.Broker},
		Counts: CountsJSON{
			LampOn:       snap.Counts.LampOn,
			LampOff:      snap.Counts.LampOff,
			ScheduleSets: snap.Counts.ScheduleSets,
			ClockSets:    snap.Counts.ClockSets,
		},
		Config: ConfigJSON{
			PollMs:      snap.Config.PollMs,
			HeartbeatMs: snap.Config.HeartbeatMs,
			DimMs:       snap.Config.DimMs,
			Broker:      snap.Config.Broker,
			HTTPPort:    snap.Config.HTTPPort,
			StateFile:   snap.Config.StateFile,
			RTC:         snap.Config.RTC,
		},
	}
}

func buildNetwork(snap Snapshot, inner *StatusInner) {
	if snap.Network != nil {
		inner.Network = &NetworkJSON{
			Type:       snap.Network.Type,
			IP:         snap.Network.IP,
			Status:     snap.Network.Status,
			Gateway:    snap.Network.Gateway,
			WifiStatus: snap.Network.WifiStatus,
			SSID:       snap.Network.SSID,
		}
	}
}

// FormatJSON returns the JSON status for the web endpoint (no event/reason).
func FormatJSON(snap Snapshot) []byte {
	inner := buildInner(snap)
	buildNetwork(snap, &inner)

	data, _ := json.MarshalIndent(StatusJSON{Status: inner}, "", "  ")
	return data
}

// FormatStatusEvent returns the JSON status for an MQTT system event.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason
	buildNetwork(snap, &inner)

	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
