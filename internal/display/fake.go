package display

import "fmt"

// Fake is a test double recording everything drawn.
type Fake struct {
	// Lines holds the last text written to each row, exactly as received.
	Lines [Rows]string

	// WriteCount counts WriteLine calls, Clears counts Clear calls.
	WriteCount int
	Clears     int

	// Closed tracks if Close was called.
	Closed bool

	// WriteError, if set, will be returned by WriteLine.
	WriteError error
}

// NewFake creates an empty Fake.
func NewFake() *Fake {
	return &Fake{}
}

// WriteLine records the text for the row.
func (f *Fake) WriteLine(row int, text string) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	if row < 0 || row >= Rows {
		return fmt.Errorf("row %d out of range", row)
	}
	f.Lines[row] = text
	f.WriteCount++
	return nil
}

// Clear blanks the recorded rows.
func (f *Fake) Clear() error {
	f.Lines = [Rows]string{}
	f.Clears++
	return nil
}

// Close marks the display as closed.
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}
