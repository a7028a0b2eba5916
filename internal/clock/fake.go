package clock

// Fake is a test double with a settable reading.
type Fake struct {
	// Current is returned by Read.
	Current Time

	// Writes records every value passed to Write.
	Writes []Time

	// ReadError, if set, will be returned by Read.
	ReadError error

	// WriteError, if set, will be returned by Write.
	WriteError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFake creates a Fake reading the given time.
func NewFake(t Time) *Fake {
	return &Fake{Current: t}
}

// Read returns the configured reading.
func (f *Fake) Read() (Time, error) {
	if f.ReadError != nil {
		return Time{}, f.ReadError
	}
	return f.Current, nil
}

// Write records the value and makes it the current reading.
func (f *Fake) Write(t Time) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.Writes = append(f.Writes, t)
	f.Current = t
	return nil
}

// Close marks the device as closed.
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}
