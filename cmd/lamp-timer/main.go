// Command lamp-timer drives a scheduled lamp with a two-button control panel:
// it polls the buttons, runs the edit menu, renders the 16x2 display, switches
// the lamp relay, and publishes state changes to MQTT.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/lamp-timer/internal/clock"
	"github.com/sweeney/lamp-timer/internal/display"
	"github.com/sweeney/lamp-timer/internal/gpio"
	"github.com/sweeney/lamp-timer/internal/mqtt"
	"github.com/sweeney/lamp-timer/internal/panel"
	"github.com/sweeney/lamp-timer/internal/schedule"
	"github.com/sweeney/lamp-timer/internal/status"
	"github.com/sweeney/lamp-timer/internal/web"
)

type options struct {
	poll      time.Duration
	dim       time.Duration
	broker    string
	heartbeat time.Duration
	httpAddr  string

	pinB1   int
	pinB2   int
	pinLamp int

	i2cBus  string
	lcdAddr int
	rtcAddr int
	rtc     string

	stateFile  string
	printState bool
}

func main() {
	var opts options
	flag.DurationVar(&opts.poll, "poll", 20*time.Millisecond, "Button polling interval")
	flag.DurationVar(&opts.dim, "dim", 15*time.Minute, "Dim ramp duration before switch-off (0 to disable)")
	flag.StringVar(&opts.broker, "broker", "tcp://192.168.1.200:1883", `MQTT broker address ("off" to disable)`)
	flag.DurationVar(&opts.heartbeat, "heartbeat", 15*time.Minute, "Heartbeat interval (0 to disable)")
	flag.StringVar(&opts.httpAddr, "http", ":80", "HTTP status address (empty to disable)")
	flag.IntVar(&opts.pinB1, "pin-b1", gpio.DefaultPinB1, "BCM pin number for button 1")
	flag.IntVar(&opts.pinB2, "pin-b2", gpio.DefaultPinB2, "BCM pin number for button 2")
	flag.IntVar(&opts.pinLamp, "pin-lamp", gpio.DefaultPinLamp, "BCM pin number for the lamp relay")
	flag.StringVar(&opts.i2cBus, "i2c", "", "I2C bus name (empty for the first available)")
	flag.IntVar(&opts.lcdAddr, "i2c-lcd", display.DefaultAddr, "I2C address of the LCD backpack")
	flag.IntVar(&opts.rtcAddr, "i2c-rtc", clock.DefaultAddr, "I2C address of the RTC")
	flag.StringVar(&opts.rtc, "rtc", "ds1307", `Clock source: "ds1307" or "system"`)
	flag.StringVar(&opts.stateFile, "state-file", "/var/lib/lamp-timer/state.json", "Schedule state file (empty to disable persistence)")
	flag.BoolVar(&opts.printState, "print-state", false, "Print current state and exit")

	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func newClock(opts options) (clock.Device, error) {
	switch opts.rtc {
	case "ds1307":
		return clock.NewDS1307(opts.i2cBus, uint16(opts.rtcAddr))
	case "system":
		return clock.NewSystem(), nil
	default:
		return nil, fmt.Errorf("unknown clock source %q", opts.rtc)
	}
}

func run(opts options) error {
	dev, err := newClock(opts)
	if err != nil {
		return fmt.Errorf("init clock: %w", err)
	}
	defer dev.Close()

	sched := schedule.New(opts.stateFile, opts.dim)
	if err := sched.Restore(); err != nil {
		log.Printf("restore schedule: %v (using defaults)", err)
	}

	// Print state mode
	if opts.printState {
		t, err := dev.Read()
		if err != nil {
			return fmt.Errorf("read clock: %w", err)
		}
		sched.Advance(t.Hour, t.Minute)
		onH, onM := sched.OnTime()
		offH, offM := sched.OffTime()
		fmt.Printf("Clock: %s, Lamp: %s, Schedule: %02d:%02d->%02d:%02d\n",
			t, lampString(sched.IsOn(), sched.IsDimming()), onH, onM, offH, offM)
		return nil
	}

	buttons, err := gpio.NewRealReader(opts.pinB1, opts.pinB2)
	if err != nil {
		return fmt.Errorf("init buttons: %w", err)
	}
	defer buttons.Close()

	lamp, err := gpio.NewRealLamp(opts.pinLamp)
	if err != nil {
		return fmt.Errorf("init lamp: %w", err)
	}
	defer lamp.Close()

	disp, err := display.NewHD44780(opts.i2cBus, uint16(opts.lcdAddr))
	if err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer disp.Close()

	// Initialize MQTT
	var publisher mqtt.Publisher
	var mqttStatus mqtt.ConnectionStatus
	if opts.broker != "off" {
		real := mqtt.NewRealPublisher(opts.broker)
		defer real.Close()
		publisher, mqttStatus = real, real
	}

	// Initialize status tracker (before STARTUP so snapshot is available)
	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:      opts.poll.Milliseconds(),
		HeartbeatMs: opts.heartbeat.Milliseconds(),
		DimMs:       opts.dim.Milliseconds(),
		Broker:      opts.broker,
		HTTPPort:    opts.httpAddr,
		StateFile:   opts.stateFile,
		RTC:         opts.rtc,
	})
	if net := readNetworkInfo(); net != nil {
		tracker.SetNetwork(net)
	}

	// Publish startup event with full status snapshot
	if publisher != nil {
		snap := tracker.Snapshot()
		startupEvent := mqtt.SystemEvent{
			Timestamp:  snap.Now,
			Event:      "STARTUP",
			Retained:   true,
			RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
		}
		if err := publisher.PublishSystem(startupEvent); err != nil {
			log.Printf("failed to publish startup event: %v", err)
		} else {
			log.Printf("published startup event")
		}
	}

	// Start HTTP status server
	if opts.httpAddr != "" {
		srv := web.New(opts.httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", opts.httpAddr)
	}

	log.Printf("started: poll=%v dim=%v broker=%s heartbeat=%v rtc=%s",
		opts.poll, opts.dim, opts.broker, opts.heartbeat, opts.rtc)

	ctrl := panel.New(dev, sched, disp, time.Now())

	ticker := time.NewTicker(opts.poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(buttons, lamp, ctrl, sched, publisher, mqttStatus, tracker, opts.heartbeat, time.Now, ticker.C, sigCh)
}

func runLoop(buttons gpio.Reader, lamp gpio.Lamp, ctrl *panel.Controller, sched schedule.Scheduler, publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, heartbeat time.Duration, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	var counts panel.EventCounts
	lastHeartbeat := now()

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			if publisher != nil {
				event := mqtt.SystemEvent{
					Timestamp: now(),
					Event:     "SHUTDOWN",
					Reason:    signalName,
					Retained:  true,
				}
				if tracker != nil {
					if mqttStatus != nil {
						tracker.SetMQTTConnected(mqttStatus.IsConnected())
					}
					snap := tracker.Snapshot()
					event.RawPayload = status.FormatStatusEvent(snap, "SHUTDOWN", signalName)
				}
				if err := publisher.PublishSystem(event); err != nil {
					log.Printf("failed to publish shutdown event: %v", err)
				} else {
					log.Printf("published shutdown event")
				}
			}
			return nil

		case <-tick:
			t := now()
			b1, b2, err := buttons.Read()
			if err != nil {
				log.Printf("button read error: %v", err)
				b1, b2 = false, false
			}

			events := ctrl.Tick(b1, b2, t)

			if err := lamp.Set(sched.IsOn()); err != nil {
				log.Printf("lamp set error: %v", err)
			}

			for _, event := range events {
				counts.Count(event.Type)
				log.Printf("event: %s (lamp=%s)", event.Type, lampString(sched.IsOn(), sched.IsDimming()))
				if publisher != nil {
					if err := publisher.Publish(event); err != nil {
						log.Printf("publish error: %v", err)
						// Don't crash on publish failure
					}
				}
			}

			// Check for heartbeat
			if heartbeat > 0 && t.Sub(lastHeartbeat) >= heartbeat {
				lastHeartbeat = t
				log.Printf("heartbeat: lamp=%s on=%d off=%d",
					lampString(sched.IsOn(), sched.IsDimming()), counts.LampOn, counts.LampOff)

				if publisher != nil {
					hbEvent := mqtt.SystemEvent{
						Timestamp: t,
						Event:     "HEARTBEAT",
					}
					if tracker != nil {
						if mqttStatus != nil {
							tracker.SetMQTTConnected(mqttStatus.IsConnected())
						}
						// Refresh network info for heartbeat
						if net := readNetworkInfo(); net != nil {
							tracker.SetNetwork(net)
						}
						updateTracker(tracker, ctrl, sched, counts)
						snap := tracker.Snapshot()
						hbEvent.RawPayload = status.FormatStatusEvent(snap, "HEARTBEAT", "")
					}
					if err := publisher.PublishSystem(hbEvent); err != nil {
						log.Printf("heartbeat publish error: %v", err)
					}
				}
			}

			// Update status tracker for HTTP consumers
			if tracker != nil {
				updateTracker(tracker, ctrl, sched, counts)
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
			}
		}
	}
}

func updateTracker(tracker *status.Tracker, ctrl *panel.Controller, sched schedule.Scheduler, counts panel.EventCounts) {
	onH, onM := sched.OnTime()
	offH, offM := sched.OffTime()
	tracker.Update(sched.IsOn(), sched.IsDimming(), sched.Brightness(),
		onH, onM, offH, offM, ctrl.LastReading(), ctrl.State(), counts)
}

// pi-helper env var names (written to /run/pi-helper.env).
const (
	envNetworkType       = "NETWORK_TYPE"
	envNetworkIP         = "NETWORK_IP"
	envNetworkStatus     = "NETWORK_STATUS"
	envNetworkGateway    = "NETWORK_GATEWAY"
	envNetworkWifiStatus = "NETWORK_WIFI_STATUS"
	envNetworkWifiSSID   = "NETWORK_WIFI_SSID"
)

func readNetworkInfo() *status.NetworkInfo {
	s := os.Getenv(envNetworkStatus)
	if s == "" {
		return nil
	}
	return &status.NetworkInfo{
		Type:       os.Getenv(envNetworkType),
		IP:         os.Getenv(envNetworkIP),
		Status:     s,
		Gateway:    os.Getenv(envNetworkGateway),
		WifiStatus: os.Getenv(envNetworkWifiStatus),
		SSID:       os.Getenv(envNetworkWifiSSID),
	}
}

func lampString(on, dimming bool) string {
	switch {
	case on && dimming:
		return "DIM"
	case on:
		return "ON"
	default:
		return "OFF"
	}
}
