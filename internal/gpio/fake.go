package gpio

import "errors"

// FakeReader is a test double that returns scripted button levels.
type FakeReader struct {
	// Samples contains scripted (b1, b2) pressed states to return.
	// Each call to Read() consumes the next sample.
	Samples []Sample

	// index tracks current position in Samples
	index int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by Read()
	ReadError error
}

// Sample represents a single poll of both buttons (already in logical form).
type Sample struct {
	B1 bool // true = pressed
	B2 bool // true = pressed
}

// NewFakeReader creates a FakeReader with the given samples.
func NewFakeReader(samples []Sample) *FakeReader {
	return &FakeReader{Samples: samples}
}

// Read returns the next scripted sample.
// If samples are exhausted, returns the last sample repeatedly.
func (f *FakeReader) Read() (bool, bool, error) {
	if f.ReadError != nil {
		return false, false, f.ReadError
	}

	if len(f.Samples) == 0 {
		return false, false, errors.New("no samples configured")
	}

	sample := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}

	return sample.B1, sample.B2, nil
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the reader to the beginning of samples.
func (f *FakeReader) Reset() {
	f.index = 0
	f.Closed = false
}

// FakeLamp records every state written to the lamp line.
type FakeLamp struct {
	// On is the last state set.
	On bool

	// States records every Set call in order.
	States []bool

	// Closed tracks if Close was called.
	Closed bool

	// SetError, if set, will be returned by Set.
	SetError error
}

// NewFakeLamp creates a FakeLamp, initially off.
func NewFakeLamp() *FakeLamp {
	return &FakeLamp{}
}

// Set records the state.
func (f *FakeLamp) Set(on bool) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.On = on
	f.States = append(f.States, on)
	return nil
}

// Close switches the fake off and marks it closed.
func (f *FakeLamp) Close() error {
	f.On = false
	f.Closed = true
	return nil
}
