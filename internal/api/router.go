package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/haeun/worlds-banpick-archive/internal/api/handlers"
	"github.com/haeun/worlds-banpick-archive/internal/api/middleware"
	"github.com/haeun/worlds-banpick-archive/internal/config"
	"github.com/haeun/worlds-banpick-archive/internal/service"
	"github.com/haeun/worlds-banpick-archive/internal/web"
)

func NewRouter(services *service.Services, templates *web.Templates, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	// Routes are registered without trailing slashes; the canonical URLs
	// carry them.
	r.Use(chiMiddleware.StripSlashes)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	pagesHandler := handlers.NewPagesHandler(services.Story, templates, cfg.StaticBase)
	matchHandler := handlers.NewMatchHandler(services.Timeline, templates)
	championHandler := handlers.NewChampionStatsHandler(services.Stats, templates, cfg.StaticBase)
	storyHandler := handlers.NewStoryHandler(services.Story, templates, cfg.StaticBase)
	adminHandler := handlers.NewAdminHandler(services.Archive)

	// Pages
	r.Get("/", pagesHandler.Index)
	r.Get("/match/{id}/visualize", matchHandler.Visualize)
	r.Get("/champions", championHandler.Page)
	r.Get("/stories", storyHandler.ListPage)
	r.Get("/stories/{stage}/{matchNumber}", storyHandler.DetailPage)
	r.NotFound(pagesHandler.NotFound)

	// Read API
	r.Route("/api", func(r chi.Router) {
		r.Get("/match/{id}/data", matchHandler.Data)
		r.Get("/champions", championHandler.API)
		r.Get("/stories", storyHandler.API)

		// Admin auth
		r.Post("/auth/login", authHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Post("/auth/logout", authHandler.Logout)
		})

		// Admin write surface
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Get("/champions", adminHandler.ListChampions)
			r.Post("/champions", adminHandler.CreateChampion)
			r.Delete("/champions/{id}", adminHandler.DeleteChampion)

			r.Get("/leagues", adminHandler.ListLeagues)
			r.Post("/leagues", adminHandler.CreateLeague)
			r.Delete("/leagues/{id}", adminHandler.DeleteLeague)

			r.Get("/teams", adminHandler.ListTeams)
			r.Post("/teams", adminHandler.CreateTeam)
			r.Delete("/teams/{id}", adminHandler.DeleteTeam)
			r.Get("/teams/{id}/players", adminHandler.ListTeamPlayers)

			r.Post("/players", adminHandler.CreatePlayer)
			r.Delete("/players/{id}", adminHandler.DeletePlayer)

			r.Post("/matches", adminHandler.CreateMatch)
			r.Delete("/matches/{id}", adminHandler.DeleteMatch)

			r.Post("/pickbans", adminHandler.CreatePickBan)
			r.Delete("/pickbans/{id}", adminHandler.DeletePickBan)
			r.Put("/pickbans/{id}/context", adminHandler.SetPickBanContext)
			r.Delete("/pickbans/{id}/context", adminHandler.ClearPickBanContext)

			r.Post("/stories", adminHandler.CreateStory)
			r.Put("/stories/{id}", adminHandler.UpdateStory)
			r.Delete("/stories/{id}", adminHandler.DeleteStory)
		})
	})

	return r
}
