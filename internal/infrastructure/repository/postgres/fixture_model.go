package postgres

import (
	"database/sql"
	"time"
)

type fixtureTableModel struct {
	ID            int64         `db:"id"`
	FixtureID     int64         `db:"fixture_id"`
	LeagueID      int64         `db:"league_id"`
	Season        int           `db:"season"`
	KickoffAt     time.Time     `db:"kickoff_at"`
	StatusLong    string        `db:"status_long"`
	StatusShort   string        `db:"status_short"`
	StatusElapsed sql.NullInt32 `db:"status_elapsed"`
	VenueID       int64         `db:"venue_id"`
	VenueName     string        `db:"venue_name"`
	VenueCity     string        `db:"venue_city"`
	HomeTeamID    int64         `db:"home_team_id"`
	HomeTeamName  string        `db:"home_team_name"`
	HomeTeamLogo  string        `db:"home_team_logo"`
	AwayTeamID    int64         `db:"away_team_id"`
	AwayTeamName  string        `db:"away_team_name"`
	AwayTeamLogo  string        `db:"away_team_logo"`
	GoalsHome     sql.NullInt32 `db:"goals_home"`
	GoalsAway     sql.NullInt32 `db:"goals_away"`
	HalftimeHome  sql.NullInt32 `db:"halftime_home"`
	HalftimeAway  sql.NullInt32 `db:"halftime_away"`
	FulltimeHome  sql.NullInt32 `db:"fulltime_home"`
	FulltimeAway  sql.NullInt32 `db:"fulltime_away"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

type fixtureInsertModel struct {
	FixtureID     int64         `db:"fixture_id"`
	LeagueID      int64         `db:"league_id"`
	Season        int           `db:"season"`
	KickoffAt     time.Time     `db:"kickoff_at"`
	StatusLong    string        `db:"status_long"`
	StatusShort   string        `db:"status_short"`
	StatusElapsed sql.NullInt32 `db:"status_elapsed"`
	VenueID       int64         `db:"venue_id"`
	VenueName     string        `db:"venue_name"`
	VenueCity     string        `db:"venue_city"`
	HomeTeamID    int64         `db:"home_team_id"`
	HomeTeamName  string        `db:"home_team_name"`
	HomeTeamLogo  string        `db:"home_team_logo"`
	AwayTeamID    int64         `db:"away_team_id"`
	AwayTeamName  string        `db:"away_team_name"`
	AwayTeamLogo  string        `db:"away_team_logo"`
	GoalsHome     sql.NullInt32 `db:"goals_home"`
	GoalsAway     sql.NullInt32 `db:"goals_away"`
	HalftimeHome  sql.NullInt32 `db:"halftime_home"`
	HalftimeAway  sql.NullInt32 `db:"halftime_away"`
	FulltimeHome  sql.NullInt32 `db:"fulltime_home"`
	FulltimeAway  sql.NullInt32 `db:"fulltime_away"`
}
