package httpapi

import "github.com/go-chi/chi/v5"

func registerSystemRoutes(r chi.Router, handler *Handler) {
	r.Get("/healthz", handler.Healthz)
}

func registerDashboardRoutes(r chi.Router, handler *Handler) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/summary", handler.GetSummary)
		r.Route("/divisions/{division}", func(r chi.Router) {
			r.Get("/", handler.GetLeague)
			r.Get("/teams/{teamID}/roster", handler.GetRoster)
			r.Get("/matchups/{homeTeamID}/{awayTeamID}", handler.GetMatchupDetail)
		})
	})
}
