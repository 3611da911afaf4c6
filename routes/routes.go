package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/tournify/tournament-manager/docs" // swagger spec
	"github.com/tournify/tournament-manager/handlers"
	"github.com/tournify/tournament-manager/middleware"
)

type Handlers struct {
	Match     *handlers.MatchHandler
	Pool      *handlers.PoolHandler
	Team      *handlers.TeamHandler
	Field     *handlers.FieldHandler
	WebSocket *handlers.WebSocketHandler
}

func SetupRoutes(router chi.Router, h Handlers, allowedOrigins []string, logger *slog.Logger) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// websocket connections are long-lived and stay outside the request timeout
	router.Get("/ws/tournaments/{tournamentID}", h.WebSocket.ServeWs)

	router.Route("/api", func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.Route("/tournaments/{tournamentID}", func(r chi.Router) {
			r.Post("/matches/generate", h.Match.GenerateMatches)
			r.Get("/matches", h.Match.ListTournamentMatches)
			r.Post("/matches", h.Match.CreateMatch)

			r.Post("/teams", h.Team.CreateTeam)
			r.Get("/teams", h.Team.ListTeams)

			r.Post("/fields", h.Field.CreateField)
			r.Get("/fields", h.Field.ListFields)
		})

		r.Route("/matches/{matchID}", func(r chi.Router) {
			r.Patch("/", h.Match.UpdateMatch)
			r.Post("/score", h.Match.SubmitScore)
		})

		r.Route("/pools/{poolID}", func(r chi.Router) {
			r.Get("/standings", h.Pool.GetStandings)
			r.Get("/matches", h.Match.ListPoolMatches)
			r.Post("/teams", h.Pool.AssignTeams)
			r.Get("/teams", h.Pool.ListPoolTeams)
		})

		r.Post("/phases/{phaseID}/pools", h.Pool.CreatePool)
		r.Delete("/fields/{fieldID}", h.Field.DeleteField)
	})
}
