package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileJSON is the on-disk envelope for persisted schedule settings.
type FileJSON struct {
	Schedule FileInner `json:"schedule"`
}

// FileInner contains the persisted on/off pair.
type FileInner struct {
	On  TimeJSON `json:"on"`
	Off TimeJSON `json:"off"`
}

// TimeJSON is an hour/minute pair.
type TimeJSON struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Persist writes the on/off times to the state file via a temp-file rename,
// so a power cut mid-write cannot corrupt the previous settings.
func (s *Schedule) Persist() error {
	if s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(FileJSON{
		Schedule: FileInner{
			On:  TimeJSON{Hour: s.onHour, Minute: s.onMinute},
			Off: TimeJSON{Hour: s.offHour, Minute: s.offMinute},
		},
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write schedule file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename schedule file: %w", err)
	}
	return nil
}

// Restore loads persisted on/off times. A missing file is not an error;
// the defaults stay in place until the first panel edit.
func (s *Schedule) Restore() error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read schedule file: %w", err)
	}

	var f FileJSON
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(s.path), err)
	}

	s.onHour = wrap(f.Schedule.On.Hour, 24)
	s.onMinute = wrap(f.Schedule.On.Minute, 60)
	s.offHour = wrap(f.Schedule.Off.Hour, 24)
	s.offMinute = wrap(f.Schedule.Off.Minute, 60)
	return nil
}

func wrap(n, mod int) int {
	return ((n % mod) + mod) % mod
}
