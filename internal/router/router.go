package router

import (
	"notes-auth/internal/handler"
	"notes-auth/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	r chi.Router,
	authHandler *handler.AuthHandler,
	notesHandler *handler.NotesHandler,
	auth *middleware.AuthMiddleware,
	allowedOrigins []string,
) chi.Router {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(api chi.Router) {
		// ---------------- Public ----------------
		api.Group(func(pub chi.Router) {
			pub.Get("/auth/health", authHandler.Health)

			pub.Post("/auth/register", authHandler.Register)
			pub.Post("/auth/verify-otp", authHandler.VerifyOTP)
			pub.Post("/auth/resend-otp", authHandler.ResendOTP)
			pub.Post("/auth/login", authHandler.Login)
			pub.Post("/auth/google", authHandler.GoogleAuth)
			pub.Post("/auth/logout", authHandler.Logout)
		})

		// ---------------- Authenticated ----------------
		api.Group(func(g chi.Router) {
			g.Use(auth.RequireAuth)

			g.Get("/auth/me", authHandler.Me)

			g.Route("/notes", func(n chi.Router) {
				n.Get("/", notesHandler.List)
				n.Get("/search", notesHandler.Search)
				n.Get("/stats", notesHandler.Stats)
				n.Post("/", notesHandler.Create)
				n.Get("/{id}", notesHandler.Get)
				n.Put("/{id}", notesHandler.Update)
				n.Delete("/{id}", notesHandler.Delete)
				n.Delete("/", notesHandler.DeleteMany)
			})
		})
	})

	return r
}
