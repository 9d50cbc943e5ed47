package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-04-12")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.April || got.Day() != 12 {
		t.Errorf("ParseDate = %v", got)
	}
	if got.Location() != IST {
		t.Errorf("location = %v, want IST", got.Location())
	}

	if _, err := ParseDate("12/04/2026"); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestToIST(t *testing.T) {
	utc := time.Date(2026, 4, 12, 20, 0, 0, 0, time.UTC)
	ist := ToIST(utc)
	// 20:00 UTC is 01:30 next day in IST
	if ist.Hour() != 1 || ist.Minute() != 30 || ist.Day() != 13 {
		t.Errorf("ToIST = %v", ist)
	}
}
