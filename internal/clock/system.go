package clock

import "time"

// System is a Device backed by the host clock plus an adjustable offset.
// Used on bench setups without a battery-backed RTC: panel edits move the
// offset instead of the hardware clock.
type System struct {
	offset time.Duration
	now    func() time.Time
}

// NewSystem creates a system-clock device.
func NewSystem() *System {
	return &System{now: time.Now}
}

// Read returns the host time shifted by the accumulated offset.
func (s *System) Read() (Time, error) {
	t := s.now().Add(s.offset)
	return Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

// Write adjusts the offset so subsequent reads report the given time of day.
func (s *System) Write(t Time) error {
	host := s.now().Add(s.offset)
	want := time.Date(host.Year(), host.Month(), host.Day(),
		t.Hour, t.Minute, t.Second, 0, host.Location())
	s.offset += want.Sub(host)
	return nil
}

// Close is a no-op for the system clock.
func (s *System) Close() error {
	return nil
}
