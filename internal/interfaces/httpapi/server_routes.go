package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("/", handler.NotFound)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /matches/live", handler.LiveMatches)
	mux.HandleFunc("GET /matches/scheduled-matches", handler.ScheduledMatches)
	mux.HandleFunc("GET /matches/all-matches", handler.AllMatches)
	mux.HandleFunc("GET /matches/finished", handler.FinishedMatches)
	mux.HandleFunc("GET /matches/match-details", handler.MatchDetails)
	mux.HandleFunc("GET /matches/archive", handler.ArchivedMatches)
}
