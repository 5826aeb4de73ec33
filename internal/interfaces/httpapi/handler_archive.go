package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/livescore/internal/domain/fixture"
)

type archivedFixtureDTO struct {
	FixtureID int64             `json:"fixtureId"`
	LeagueID  int64             `json:"leagueId"`
	Season    int               `json:"season"`
	KickoffAt string            `json:"kickoffAt"`
	Status    archivedStatusDTO `json:"status"`
	Venue     archivedVenueDTO  `json:"venue"`
	HomeTeam  archivedTeamDTO   `json:"homeTeam"`
	AwayTeam  archivedTeamDTO   `json:"awayTeam"`
	Goals     archivedScoreDTO  `json:"goals"`
	Halftime  archivedScoreDTO  `json:"halftime"`
	Fulltime  archivedScoreDTO  `json:"fulltime"`
}

type archivedStatusDTO struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"`
}

type archivedVenueDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type archivedTeamDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type archivedScoreDTO struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// ArchivedMatches serves GET /matches/archive?date=YYYY-MM-DD. The date is a calendar day in
// API_FOOTBALL_TIMEZONE, matching how /matches/finished buckets fixtures; kickoffAt is UTC.
func (h *Handler) ArchivedMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ArchivedMatches")
	defer span.End()

	query := dateQuery{Date: strings.TrimSpace(r.URL.Query().Get("date"))}
	if err := h.validateQuery(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.archiveService.ListByDate(ctx, query.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]archivedFixtureDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toArchivedFixtureDTO(item))
	}

	writeJSON(ctx, w, http.StatusOK, archiveEnvelope{
		Success: true,
		Date:    query.Date,
		Total:   len(out),
		Data:    out,
	})
}

func toArchivedFixtureDTO(item fixture.Fixture) archivedFixtureDTO {
	return archivedFixtureDTO{
		FixtureID: item.FixtureID,
		LeagueID:  item.LeagueID,
		Season:    item.Season,
		KickoffAt: item.KickoffAt.UTC().Format(time.RFC3339),
		Status: archivedStatusDTO{
			Long:    item.Status.Long,
			Short:   item.Status.Short,
			Elapsed: item.Status.Elapsed,
		},
		Venue:    archivedVenueDTO{ID: item.Venue.ID, Name: item.Venue.Name, City: item.Venue.City},
		HomeTeam: archivedTeamDTO{ID: item.HomeTeam.ID, Name: item.HomeTeam.Name, Logo: item.HomeTeam.Logo},
		AwayTeam: archivedTeamDTO{ID: item.AwayTeam.ID, Name: item.AwayTeam.Name, Logo: item.AwayTeam.Logo},
		Goals:    archivedScoreDTO{Home: item.Goals.Home, Away: item.Goals.Away},
		Halftime: archivedScoreDTO{Home: item.Halftime.Home, Away: item.Halftime.Away},
		Fulltime: archivedScoreDTO{Home: item.Fulltime.Home, Away: item.Fulltime.Away},
	}
}
