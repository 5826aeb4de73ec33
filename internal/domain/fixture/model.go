package fixture

import (
	"fmt"
	"strings"
	"time"
)

// Fixture is an archived match keyed by the provider's fixture id.
type Fixture struct {
	FixtureID int64
	LeagueID  int64
	Season    int
	KickoffAt time.Time
	Status    Status
	Venue     Venue
	HomeTeam  Team
	AwayTeam  Team
	Goals     Score
	Halftime  Score
	Fulltime  Score
}

type Status struct {
	Long    string
	Short   string
	Elapsed *int
}

type Venue struct {
	ID   int64
	Name string
	City string
}

type Team struct {
	ID   int64
	Name string
	Logo string
}

type Score struct {
	Home *int
	Away *int
}

func (f Fixture) Validate() error {
	if f.FixtureID <= 0 {
		return fmt.Errorf("fixture id must be greater than zero")
	}
	if f.LeagueID <= 0 {
		return fmt.Errorf("fixture league id must be greater than zero")
	}
	if f.KickoffAt.IsZero() {
		return fmt.Errorf("fixture kickoff is required")
	}
	return nil
}

func NormalizeStatus(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case "FT", "AET", "PEN":
		return true
	default:
		return false
	}
}

// DayRange returns the [start, end) window, in UTC instants, of a YYYY-MM-DD day
// as observed in loc. A nil loc means UTC.
func DayRange(date string, loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	start, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse day %q: %w", date, err)
	}
	return start.UTC(), start.AddDate(0, 0, 1).UTC(), nil
}
