package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/livescore/internal/domain/match"
)

type liveQuery struct {
	League  string `query:"league" validate:"max=100"`
	Country string `query:"country" validate:"max=100"`
	Date    string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

type dateQuery struct {
	Date string `query:"date" validate:"required,datetime=2006-01-02"`
}

type fixtureQuery struct {
	FixtureID string `query:"fixtureId" validate:"required,number"`
}

func (h *Handler) LiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LiveMatches")
	defer span.End()

	values := r.URL.Query()
	query := liveQuery{
		League:  strings.TrimSpace(values.Get("league")),
		Country: strings.TrimSpace(values.Get("country")),
		Date:    strings.TrimSpace(values.Get("date")),
	}
	if err := h.validateQuery(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	groups, err := h.matchService.LiveMatches(ctx, query.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, dataEnvelope{Data: match.FilterGroups(groups, query.League, query.Country)})
}

func (h *Handler) ScheduledMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduledMatches")
	defer span.End()

	query := dateQuery{Date: strings.TrimSpace(r.URL.Query().Get("date"))}
	if err := h.validateQuery(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	groups, err := h.matchService.ScheduledMatches(ctx, query.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, datedListEnvelope{
		Success:      true,
		Date:         query.Date,
		TotalLeagues: len(groups),
		Data:         groups,
	})
}

func (h *Handler) AllMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AllMatches")
	defer span.End()

	query := dateQuery{Date: strings.TrimSpace(r.URL.Query().Get("date"))}
	if err := h.validateQuery(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	groups, err := h.matchService.AllMatches(ctx, query.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, datedListEnvelope{
		Success:      true,
		Date:         query.Date,
		TotalLeagues: len(groups),
		Data:         groups,
	})
}

func (h *Handler) FinishedMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinishedMatches")
	defer span.End()

	query := dateQuery{Date: strings.TrimSpace(r.URL.Query().Get("date"))}
	if err := h.validateQuery(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	groups, err := h.matchService.FinishedMatches(ctx, query.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, dataEnvelope{Data: groups})
}

func (h *Handler) MatchDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MatchDetails")
	defer span.End()

	query := fixtureQuery{FixtureID: strings.TrimSpace(r.URL.Query().Get("fixtureId"))}
	if err := h.validateQuery(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.matchService.MatchDetails(ctx, query.FixtureID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, successEnvelope{Success: true, Data: detail})
}
