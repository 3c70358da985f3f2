package timezone_test

import (
	"checkinhq/shared/timezone"
	"testing"
	"time"
)

func TestNowUsesAppLocation(t *testing.T) {
	now := timezone.Now()

	if now.Location().String() != timezone.GetLocation().String() {
		t.Errorf("expected Now location %s, got %s", timezone.GetLocation(), now.Location())
	}

	if time.Since(now) > time.Minute {
		t.Errorf("expected Now to be current, got %s", now)
	}
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	appTime := timezone.ToAppTime(utcTime)

	if !appTime.Equal(utcTime) {
		t.Errorf("expected same instant after conversion, got %s vs %s", appTime, utcTime)
	}

	if appTime.Location().String() != timezone.GetLocation().String() {
		t.Errorf("expected app location %s, got %s", timezone.GetLocation(), appTime.Location())
	}
}

func TestFormat(t *testing.T) {
	testTime := time.Date(2025, 6, 15, 12, 30, 45, 0, time.UTC)

	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")
	if formatted == "" {
		t.Error("expected non-empty formatted time")
	}
}

func TestParse(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2025-01-01")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if parsed.Year() != 2025 || parsed.Month() != time.January || parsed.Day() != 1 {
		t.Errorf("expected 2025-01-01, got %s", parsed)
	}

	if parsed.Location().String() != timezone.GetLocation().String() {
		t.Errorf("expected parse in app location %s, got %s", timezone.GetLocation(), parsed.Location())
	}

	if _, err := timezone.Parse("2006-01-02", "not a date"); err == nil {
		t.Error("expected error for malformed date")
	}
}
