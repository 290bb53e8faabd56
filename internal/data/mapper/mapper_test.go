package mapper

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/skycastdev/skycast/internal/weather"
)

func writeRecords(t *testing.T, records []BinaryObservation) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "observations.bin")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("unable to create test file: %v", err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	for _, r := range records {
		if err := binary.Write(f, binary.LittleEndian, r); err != nil {
			t.Fatalf("unable to write record: %v", err)
		}
	}
	return path
}

func TestReaderRoundTrip(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := make([]BinaryObservation, 5)
	for i := range records {
		records[i] = FromObservation(weather.Observation{
			Date:        start.AddDate(0, 0, i),
			Temperature: 18 + float64(i),
			Humidity:    60 - float64(i),
			WindSpeed:   3 + 0.5*float64(i),
		})
	}
	path := writeRecords(t, records)

	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll() failed: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("len = %d, want %d", len(got), len(records))
	}
	for i := range got {
		if got[i] != records[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], records[i])
		}

		var obs weather.Observation
		got[i].ToObservation(&obs)
		if !obs.Date.Equal(start.AddDate(0, 0, i)) {
			t.Errorf("record %d date = %v, want %v", i, obs.Date, start.AddDate(0, 0, i))
		}
		if obs.Temperature != records[i].Temperature {
			t.Errorf("record %d temperature = %v, want %v", i, obs.Temperature, records[i].Temperature)
		}
	}
}

func TestReaderEntryCount(t *testing.T) {
	path := writeRecords(t, make([]BinaryObservation, 3))

	r := NewReader[BinaryObservation](path)
	if err := r.Open(); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer r.Close()

	count, err := r.EntryCount()
	if err != nil {
		t.Fatalf("EntryCount() failed: %v", err)
	}
	if count != 3 {
		t.Errorf("EntryCount() = %d, want 3", count)
	}
}

func TestReaderPastEnd(t *testing.T) {
	path := writeRecords(t, make([]BinaryObservation, 2))

	r := NewReader[BinaryObservation](path)
	if err := r.Open(); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer r.Close()

	// Indices at the boundary, far beyond the mapped region, and negative
	// must all report the sentinel, never a wrapped ReadAt error.
	for _, index := range []int64{2, 5, 100, -1} {
		var record BinaryObservation
		if err := r.Read(index, &record); err != EOF {
			t.Errorf("Read(%d) error = %v, want EOF", index, err)
		}
	}
}
