package api

import (
	"net/http"

	"github.com/beegood/ufund-api/internal/api/handlers"
	"github.com/beegood/ufund-api/internal/config"
	"github.com/beegood/ufund-api/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.User)
	cupboardHandler := handlers.NewCupboardHandler(services.Cupboard)
	chatHandler := handlers.NewChatHandler(services.Chat)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/login/hash", authHandler.LoginWithHash)
		r.Get("/{username}", authHandler.Check)
		r.Put("/{username}", authHandler.Refresh)
		r.Delete("/{username}", authHandler.Logout)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.Create)
		r.Get("/", userHandler.GetAll)
		r.Get("/username/{username}", userHandler.GetByName)
		r.Get("/{id}", userHandler.Get)
		r.Put("/{id}", userHandler.Update)
		r.Delete("/{id}", userHandler.Delete)

		// Basket routes; authorization is self-only, no admin override
		r.Get("/{id}/basket", userHandler.GetBasket)
		r.Put("/{id}/basket", userHandler.AddNeed)
		r.Put("/{id}/basket/{count}", userHandler.EditCount)
		r.Delete("/{id}/basket", userHandler.RemoveNeed)
	})

	r.Route("/cupboard", func(r chi.Router) {
		r.Post("/", cupboardHandler.Create)
		r.Get("/", cupboardHandler.GetAll)
		r.Get("/name/{name}", cupboardHandler.Search)
		r.Get("/{id}", cupboardHandler.Get)
		r.Put("/{id}", cupboardHandler.Update)
		r.Delete("/{id}", cupboardHandler.Delete)
	})

	r.Route("/chat", func(r chi.Router) {
		r.Get("/personalities", chatHandler.Personalities)
		r.Get("/{id}", chatHandler.Exists)
		r.Post("/{id}", chatHandler.Generate)
		r.Put("/{id}", chatHandler.Submit)
		r.Delete("/{id}", chatHandler.Delete)
	})

	return r
}
