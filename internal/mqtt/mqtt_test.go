package mqtt

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sweeney/lamp-timer/internal/panel"
)

var eventTime = time.Date(2026, 1, 1, 22, 0, 0, 0, time.UTC)

func TestFormatPayloadLampOn(t *testing.T) {
	payload, err := FormatPayload(panel.Event{
		Timestamp:  eventTime,
		Type:       panel.EventLampOn,
		Brightness: 255,
	})
	if err != nil {
		t.Fatalf("FormatPayload: %v", err)
	}

	var p Payload
	if err := json.Unmarshal(payload, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Panel.Event != "LAMP_ON" {
		t.Errorf("event = %q", p.Panel.Event)
	}
	if p.Panel.Timestamp != "2026-01-01T22:00:00Z" {
		t.Errorf("timestamp = %q", p.Panel.Timestamp)
	}
	if p.Panel.BrightnessPct == nil || *p.Panel.BrightnessPct != 100 {
		t.Errorf("brightness_pct = %v, want 100", p.Panel.BrightnessPct)
	}
	if p.Panel.Schedule != nil || p.Panel.Clock != nil {
		t.Errorf("lamp event carried schedule/clock payloads")
	}
}

func TestFormatPayloadLampOff(t *testing.T) {
	payload, err := FormatPayload(panel.Event{Timestamp: eventTime, Type: panel.EventLampOff})
	if err != nil {
		t.Fatalf("FormatPayload: %v", err)
	}
	if strings.Contains(string(payload), "brightness_pct") {
		t.Errorf("LAMP_OFF should omit brightness: %s", payload)
	}
}

func TestFormatPayloadLampDim(t *testing.T) {
	payload, err := FormatPayload(panel.Event{
		Timestamp:  eventTime,
		Type:       panel.EventLampDim,
		Brightness: 128,
	})
	if err != nil {
		t.Fatalf("FormatPayload: %v", err)
	}
	var p Payload
	json.Unmarshal(payload, &p)
	if p.Panel.BrightnessPct == nil || *p.Panel.BrightnessPct != 50 {
		t.Errorf("brightness_pct = %v, want 50", p.Panel.BrightnessPct)
	}
}

func TestFormatPayloadScheduleSet(t *testing.T) {
	payload, err := FormatPayload(panel.Event{
		Timestamp: eventTime,
		Type:      panel.EventScheduleSet,
		OnHour:    8, OnMinute: 0,
		OffHour: 22, OffMinute: 0,
	})
	if err != nil {
		t.Fatalf("FormatPayload: %v", err)
	}
	var p Payload
	json.Unmarshal(payload, &p)
	if p.Panel.Schedule == nil {
		t.Fatal("missing schedule payload")
	}
	if p.Panel.Schedule.On != "08:00" || p.Panel.Schedule.Off != "22:00" {
		t.Errorf("schedule = %+v", p.Panel.Schedule)
	}
}

func TestFormatPayloadClockSet(t *testing.T) {
	payload, err := FormatPayload(panel.Event{
		Timestamp: eventTime,
		Type:      panel.EventClockSet,
		Hour:      14, Minute: 5,
	})
	if err != nil {
		t.Fatalf("FormatPayload: %v", err)
	}
	var p Payload
	json.Unmarshal(payload, &p)
	if p.Panel.Clock == nil || p.Panel.Clock.Time != "14:05" {
		t.Errorf("clock = %+v", p.Panel.Clock)
	}
}

func TestFormatSystemPayload(t *testing.T) {
	payload, err := FormatSystemPayload(SystemEvent{
		Timestamp: eventTime,
		Event:     "SHUTDOWN",
		Reason:    "SIGTERM",
	})
	if err != nil {
		t.Fatalf("FormatSystemPayload: %v", err)
	}

	var p SystemPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.System.Event != "SHUTDOWN" || p.System.Reason != "SIGTERM" {
		t.Errorf("system payload = %+v", p.System)
	}
}

func TestFormatSystemPayloadOmitsEmptyReason(t *testing.T) {
	payload, _ := FormatSystemPayload(SystemEvent{Timestamp: eventTime, Event: "HEARTBEAT"})
	if strings.Contains(string(payload), "reason") {
		t.Errorf("empty reason not omitted: %s", payload)
	}
}

func TestFormatSystemPayloadRawPassthrough(t *testing.T) {
	raw := []byte(`{"status":{"custom":true}}`)
	payload, err := FormatSystemPayload(SystemEvent{Event: "STARTUP", RawPayload: raw})
	if err != nil {
		t.Fatalf("FormatSystemPayload: %v", err)
	}
	if string(payload) != string(raw) {
		t.Errorf("raw payload not passed through: %s", payload)
	}
}

func TestFakePublisherRecords(t *testing.T) {
	f := NewFakePublisher()

	err := f.Publish(panel.Event{Timestamp: eventTime, Type: panel.EventLampOn, Brightness: 255})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(f.Events) != 1 || f.Events[0].Type != panel.EventLampOn {
		t.Errorf("Events = %+v", f.Events)
	}
	if len(f.Payloads) != 1 {
		t.Errorf("Payloads = %d, want 1", len(f.Payloads))
	}

	err = f.PublishSystem(SystemEvent{Timestamp: eventTime, Event: "STARTUP"})
	if err != nil {
		t.Fatalf("PublishSystem: %v", err)
	}
	if len(f.SystemEvents) != 1 {
		t.Errorf("SystemEvents = %d, want 1", len(f.SystemEvents))
	}
}

func TestFakePublisherErrors(t *testing.T) {
	f := NewFakePublisher()
	f.PublishError = errors.New("broker down")

	if err := f.Publish(panel.Event{Type: panel.EventLampOn}); err == nil {
		t.Error("expected injected publish error")
	}
	if len(f.Events) != 0 {
		t.Error("failed publish was recorded")
	}
}

func TestFakePublisherReset(t *testing.T) {
	f := NewFakePublisher()
	f.Publish(panel.Event{Type: panel.EventLampOff})
	f.Connected = true
	f.Reset()
	if len(f.Events) != 0 || f.Connected {
		t.Error("Reset did not clear state")
	}
}

func TestTopics(t *testing.T) {
	// Fleet convention: all lamp-timer traffic lives under home/lamp/panel.
	if !strings.HasPrefix(Topic, "home/lamp/panel/") {
		t.Errorf("Topic = %q", Topic)
	}
	if !strings.HasPrefix(TopicSystem, "home/lamp/panel/") {
		t.Errorf("TopicSystem = %q", TopicSystem)
	}
}
