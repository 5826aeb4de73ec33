package fixture

import (
	"testing"
	"time"
)

func TestIsFinishedStatus(t *testing.T) {
	t.Parallel()

	for _, status := range []string{"FT", "aet", " PEN "} {
		if !IsFinishedStatus(status) {
			t.Fatalf("expected %q to be finished", status)
		}
	}
	for _, status := range []string{"", "NS", "1H", "HT", "PST"} {
		if IsFinishedStatus(status) {
			t.Fatalf("expected %q not to be finished", status)
		}
	}
}

func TestDayRange(t *testing.T) {
	t.Parallel()

	from, to, err := DayRange("2025-03-01", nil)
	if err != nil {
		t.Fatalf("day range: %v", err)
	}
	if !from.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %s", from)
	}
	if to.Sub(from) != 24*time.Hour {
		t.Fatalf("unexpected window %s", to.Sub(from))
	}

	if _, _, err := DayRange("March 1", time.UTC); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDayRangeInLocation(t *testing.T) {
	t.Parallel()

	lagos, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	from, to, err := DayRange("2025-03-01", lagos)
	if err != nil {
		t.Fatalf("day range: %v", err)
	}
	if !from.Equal(time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %s", from)
	}
	if !to.Equal(time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end %s", to)
	}
	if from.Location() != time.UTC {
		t.Fatalf("expected UTC instants, got %s", from.Location())
	}
}

func TestFixtureValidate(t *testing.T) {
	t.Parallel()

	valid := Fixture{FixtureID: 1, LeagueID: 39, KickoffAt: time.Now()}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Fixture{LeagueID: 39, KickoffAt: time.Now()}).Validate(); err == nil {
		t.Fatalf("expected error for missing fixture id")
	}
	if err := (Fixture{FixtureID: 1, LeagueID: 39}).Validate(); err == nil {
		t.Fatalf("expected error for missing kickoff")
	}
}
