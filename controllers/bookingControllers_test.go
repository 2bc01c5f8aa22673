package controllers

import (
	"testing"
	"time"
)

func TestDivideSlots(t *testing.T) {
	slots := divideSlots("09:00", "17:00", 30*time.Minute)

	if len(slots) != 16 {
		t.Fatalf("slot count = %d, want 16", len(slots))
	}
	if slots[0] != "09:00-09:30" {
		t.Errorf("first slot = %q, want 09:00-09:30", slots[0])
	}
	if slots[len(slots)-1] != "16:30-17:00" {
		t.Errorf("last slot = %q, want 16:30-17:00", slots[len(slots)-1])
	}
}

func TestSplitAvailabilityTime(t *testing.T) {
	start, end := splitAvailabilityTime("09:00-17:00")
	if start != "09:00" || end != "17:00" {
		t.Errorf("got (%q, %q), want (09:00, 17:00)", start, end)
	}

	start, end = splitAvailabilityTime(" 09:00 - 17:00 ")
	if start != "09:00" || end != "17:00" {
		t.Errorf("whitespace not trimmed: (%q, %q)", start, end)
	}

	start, end = splitAvailabilityTime("garbage")
	if start != "" || end != "" {
		t.Errorf("malformed window should yield empty strings, got (%q, %q)", start, end)
	}
}

func TestFilterSlots(t *testing.T) {
	slots := []string{"09:00-09:30", "09:30-10:00", "10:00-10:30"}
	taken := map[string]bool{"09:30-10:00": true}

	open := filterSlots(slots, taken)
	if len(open) != 2 {
		t.Fatalf("open count = %d, want 2", len(open))
	}
	for _, slot := range open {
		if taken[slot] {
			t.Errorf("taken slot %q not filtered", slot)
		}
	}

	// no taken slots leaves the set untouched
	open = filterSlots(slots, map[string]bool{})
	if len(open) != 3 {
		t.Errorf("open count with nothing taken = %d, want 3", len(open))
	}
}

func TestSlotStart(t *testing.T) {
	day := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	start, err := slotStart(day, "10:30-11:00")
	if err != nil {
		t.Fatalf("slotStart: %v", err)
	}
	want := time.Date(2026, 9, 3, 10, 30, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("slotStart = %v, want %v", start, want)
	}

	if _, err := slotStart(day, "not-a-slot"); err == nil {
		t.Error("malformed slot label should error")
	}
}
