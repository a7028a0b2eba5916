package clock

import (
	"testing"
	"time"
)

func TestBCDRoundTrip(t *testing.T) {
	for n := 0; n < 60; n++ {
		if got := fromBCD(toBCD(n)); got != n {
			t.Errorf("bcd round trip: %d -> %#02x -> %d", n, toBCD(n), got)
		}
	}
}

func TestBCDKnownValues(t *testing.T) {
	cases := []struct {
		n int
		b byte
	}{
		{0, 0x00},
		{9, 0x09},
		{10, 0x10},
		{23, 0x23},
		{59, 0x59},
	}
	for _, c := range cases {
		if got := toBCD(c.n); got != c.b {
			t.Errorf("toBCD(%d) = %#02x, want %#02x", c.n, got, c.b)
		}
		if got := fromBCD(c.b); got != c.n {
			t.Errorf("fromBCD(%#02x) = %d, want %d", c.b, got, c.n)
		}
	}
}

func TestTimeString(t *testing.T) {
	if got := (Time{Hour: 7, Minute: 5, Second: 0}).String(); got != "07:05:00" {
		t.Errorf("String() = %q, want 07:05:00", got)
	}
}

func TestSystemWriteShiftsReads(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &System{now: func() time.Time { return base }}

	if err := s.Write(Time{Hour: 13, Minute: 59, Second: 50}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := Time{Hour: 13, Minute: 59, Second: 50}
	if got != want {
		t.Errorf("Read after Write = %v, want %v", got, want)
	}
}

func TestSystemWriteAccumulates(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &System{now: func() time.Time { return base }}

	s.Write(Time{Hour: 12, Minute: 0, Second: 0})
	s.Write(Time{Hour: 8, Minute: 30, Second: 0})

	got, _ := s.Read()
	want := Time{Hour: 8, Minute: 30, Second: 0}
	if got != want {
		t.Errorf("Read after two Writes = %v, want %v", got, want)
	}
}

func TestFakeRecordsWrites(t *testing.T) {
	f := NewFake(Time{Hour: 13, Minute: 59, Second: 50})

	got, err := f.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Hour != 13 || got.Minute != 59 {
		t.Errorf("Read = %v", got)
	}

	f.Write(Time{Hour: 14, Minute: 0, Second: 0})
	if len(f.Writes) != 1 {
		t.Fatalf("expected 1 recorded write, got %d", len(f.Writes))
	}
	got, _ = f.Read()
	if got.Hour != 14 || got.Minute != 0 {
		t.Errorf("Read after Write = %v", got)
	}
}
