package match

import (
	"strings"
	"time"
)

const (
	StatusNotStarted       = "NS"
	StatusFullTime         = "FT"
	StatusAfterExtraTime   = "AET"
	StatusPenalties        = "PEN"
	LiveAll                = "all"
	DefaultCountry         = "International"
	UnknownVenue           = "Unknown venue"
	DefaultHeadToHeadLimit = 5
)

// DefaultFeaturedLeagueIDs: Premier League, La Liga, Serie A, Bundesliga, Ligue 1, Champions League.
var DefaultFeaturedLeagueIDs = []int64{39, 140, 135, 78, 61, 2}

// DefaultTopLeagues are grouping keys listed first in full-day listings.
var DefaultTopLeagues = []string{
	"Premier League|England",
	"La Liga|Spain",
	"Bundesliga|Germany",
	"Serie A|Italy",
	"Ligue 1|France",
	"UEFA Champions League|Europe",
}

// FinishedStatuses are the terminal short codes queried for finished matches, in merge order.
var FinishedStatuses = []string{StatusFullTime, StatusAfterExtraTime, StatusPenalties}

// RawFixture is one fixture as returned by the provider's /fixtures endpoint.
// League, Fixture and Teams are pointers so a missing section is detectable.
type RawFixture struct {
	Fixture *FixtureInfo `json:"fixture"`
	League  *LeagueInfo  `json:"league"`
	Teams   *Teams       `json:"teams"`
	Goals   Goals        `json:"goals"`
	Score   Score        `json:"score"`
	Events  []Event      `json:"events,omitempty"`
}

type FixtureInfo struct {
	ID        int64   `json:"id"`
	Referee   *string `json:"referee"`
	Timezone  string  `json:"timezone"`
	Date      string  `json:"date"`
	Timestamp int64   `json:"timestamp"`
	Venue     Venue   `json:"venue"`
	Status    Status  `json:"status"`
}

type Venue struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type Status struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"`
}

type LeagueInfo struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Logo    string  `json:"logo"`
	Flag    *string `json:"flag"`
	Season  int     `json:"season"`
	Round   string  `json:"round,omitempty"`
}

type Teams struct {
	Home *Team `json:"home"`
	Away *Team `json:"away"`
}

type Team struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}

type Goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type Score struct {
	Halftime  Goals `json:"halftime"`
	Fulltime  Goals `json:"fulltime"`
	Extratime Goals `json:"extratime"`
	Penalty   Goals `json:"penalty"`
}

type Event struct {
	Time     EventTime `json:"time"`
	Team     EventTeam `json:"team"`
	Player   Person    `json:"player"`
	Assist   Person    `json:"assist"`
	Type     string    `json:"type"`
	Detail   string    `json:"detail"`
	Comments *string   `json:"comments"`
}

type EventTime struct {
	Elapsed int  `json:"elapsed"`
	Extra   *int `json:"extra"`
}

type EventTeam struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type Person struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// Valid reports whether the fixture carries enough data to be grouped and projected.
func (f RawFixture) Valid() bool {
	if f.League == nil || strings.TrimSpace(f.League.Name) == "" {
		return false
	}
	if f.Fixture == nil {
		return false
	}
	return f.Teams != nil && f.Teams.Home != nil && f.Teams.Away != nil
}

// Kickoff prefers the unix timestamp and falls back to parsing the ISO date.
func (f RawFixture) Kickoff() time.Time {
	if f.Fixture == nil {
		return time.Time{}
	}
	if f.Fixture.Timestamp > 0 {
		return time.Unix(f.Fixture.Timestamp, 0).UTC()
	}
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(f.Fixture.Date))
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}

// GroupLeague is the league header of a LeagueGroup.
type GroupLeague struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Logo    string  `json:"logo"`
	Flag    *string `json:"flag"`
	Season  int     `json:"season"`
}

// Key is the grouping key: name|country.
func (l GroupLeague) Key() string {
	return l.Name + "|" + l.Country
}

type LeagueGroup struct {
	League  GroupLeague `json:"league"`
	Matches []Match     `json:"matches"`
}

// EarliestKickoff assumes Matches is already sorted.
func (g LeagueGroup) EarliestKickoff() time.Time {
	if len(g.Matches) == 0 {
		return time.Time{}
	}
	return g.Matches[0].Kickoff()
}

// Match is the simplified projection of a RawFixture used in listings.
type Match struct {
	ID      int64      `json:"id"`
	Status  string     `json:"status"`
	Elapsed int        `json:"elapsed"`
	Venue   string     `json:"venue"`
	Date    string     `json:"date"`
	Teams   MatchTeams `json:"teams"`
	Score   MatchScore `json:"score"`
	Events  []Event    `json:"events"`

	Timestamp int64 `json:"-"`
}

type MatchTeams struct {
	Home Team `json:"home"`
	Away Team `json:"away"`
}

type MatchScore struct {
	Current  Goals `json:"current"`
	Halftime Goals `json:"halftime"`
	Fulltime Goals `json:"fulltime"`
}

func (m Match) Kickoff() time.Time {
	if m.Timestamp > 0 {
		return time.Unix(m.Timestamp, 0).UTC()
	}
	parsed, err := time.Parse(time.RFC3339, m.Date)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}

// MatchDetail is the merged view of one fixture and its sub-resources.
type MatchDetail struct {
	Fixture    DetailFixture    `json:"fixture"`
	Lineups    []Lineup         `json:"lineups"`
	Statistics []TeamStatistics `json:"statistics"`
	Odds       *Odds            `json:"odds"`
	H2H        []RawFixture     `json:"h2h"`
}

type DetailFixture struct {
	ID     int64      `json:"id"`
	Date   string     `json:"date"`
	Venue  Venue      `json:"venue"`
	Status Status     `json:"status"`
	Teams  Teams      `json:"teams"`
	Goals  Goals      `json:"goals"`
	Score  Score      `json:"score"`
	League LeagueInfo `json:"league"`
	Events []Event    `json:"events"`
}

type Lineup struct {
	Team        LineupTeam     `json:"team"`
	Coach       Coach          `json:"coach"`
	Formation   string         `json:"formation"`
	StartXI     []LineupPlayer `json:"startXI"`
	Substitutes []LineupPlayer `json:"substitutes"`
}

type LineupTeam struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name"`
	Logo   string     `json:"logo"`
	Colors *KitColors `json:"colors"`
}

type KitColors struct {
	Player     ColorSet `json:"player"`
	Goalkeeper ColorSet `json:"goalkeeper"`
}

type ColorSet struct {
	Primary string `json:"primary"`
	Number  string `json:"number"`
	Border  string `json:"border"`
}

type Coach struct {
	ID    *int64 `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type LineupPlayer struct {
	Player LineupPlayerInfo `json:"player"`
}

type LineupPlayerInfo struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Number int     `json:"number"`
	Pos    string  `json:"pos"`
	Grid   *string `json:"grid"`
}

type TeamStatistics struct {
	Team       EventTeam   `json:"team"`
	Statistics []Statistic `json:"statistics"`
}

// Statistic values are numbers, percentage strings, or null depending on the type.
type Statistic struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type Odds struct {
	League     LeagueInfo  `json:"league"`
	Fixture    OddsFixture `json:"fixture"`
	Update     string      `json:"update"`
	Bookmakers []Bookmaker `json:"bookmakers"`
}

type OddsFixture struct {
	ID        int64  `json:"id"`
	Timezone  string `json:"timezone"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
}

type Bookmaker struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Bets []Bet  `json:"bets"`
}

type Bet struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name"`
	Values []OddValue `json:"values"`
}

type OddValue struct {
	Value any    `json:"value"`
	Odd   string `json:"odd"`
}
