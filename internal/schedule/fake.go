package schedule

// Fake is a scriptable Scheduler for tests.
type Fake struct {
	OnH, OnM   int
	OffH, OffM int

	// On, Dimming, and Level control the status getters.
	On      bool
	Dimming bool
	Level   uint8

	// Advanced records every (hour, minute) passed to Advance.
	Advanced [][2]int

	// PersistCalls and RestoreCalls count invocations.
	PersistCalls int
	RestoreCalls int

	// PersistError, if set, will be returned by Persist.
	PersistError error
}

// NewFake creates a Fake with the given on/off times.
func NewFake(onH, onM, offH, offM int) *Fake {
	return &Fake{OnH: onH, OnM: onM, OffH: offH, OffM: offM}
}

// Advance records the call.
func (f *Fake) Advance(hour, minute int) {
	f.Advanced = append(f.Advanced, [2]int{hour, minute})
}

// OnTime returns the configured on-time.
func (f *Fake) OnTime() (int, int) { return f.OnH, f.OnM }

// SetOnTime overwrites the on-time.
func (f *Fake) SetOnTime(hour, minute int) { f.OnH, f.OnM = hour, minute }

// OffTime returns the configured off-time.
func (f *Fake) OffTime() (int, int) { return f.OffH, f.OffM }

// SetOffTime overwrites the off-time.
func (f *Fake) SetOffTime(hour, minute int) { f.OffH, f.OffM = hour, minute }

// IsOn reports the scripted lamp state.
func (f *Fake) IsOn() bool { return f.On }

// IsDimming reports the scripted dim state.
func (f *Fake) IsDimming() bool { return f.Dimming }

// Brightness reports the scripted level.
func (f *Fake) Brightness() uint8 { return f.Level }

// Persist counts the call.
func (f *Fake) Persist() error {
	f.PersistCalls++
	return f.PersistError
}

// Restore counts the call.
func (f *Fake) Restore() error {
	f.RestoreCalls++
	return nil
}
