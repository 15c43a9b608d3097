package clock

import (
	"testing"
	"time"
)

func TestStartAndEndOfDay(t *testing.T) {
	at := time.Date(2024, 6, 30, 15, 4, 5, 123, time.UTC)

	start := StartOfDay(at)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Fatalf("start = %v", start)
	}
	end := EndOfDay(at)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Fatalf("end = %v", end)
	}
	if start.Day() != 30 || end.Day() != 30 {
		t.Fatalf("day changed: %v %v", start, end)
	}
}

func TestOnDay_ReplacesClockKeepsDate(t *testing.T) {
	at := time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC)
	got := OnDay(at, 9, 30)
	want := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var c Clock = Fixed{T: at}
	if !c.Now().Equal(at) {
		t.Fatalf("fixed clock drifted: %v", c.Now())
	}
}
