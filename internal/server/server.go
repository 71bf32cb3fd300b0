package server

import (
	"context"
	"log"
	"net/http"

	"notes-auth/internal/config"
	"notes-auth/internal/handler"
	"notes-auth/internal/middleware"
	"notes-auth/internal/repository"
	"notes-auth/internal/router"
	"notes-auth/internal/service/email"
	oauth2svc "notes-auth/internal/service/oauth2"
	"notes-auth/internal/usecase"
	"notes-auth/pkg/jwtutil"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewServer wires every component and returns a ready-to-run HTTP server.
func NewServer(cfg config.AppConfig) *http.Server {
	ctx := context.Background()

	if err := repository.RunMigrations(ctx, cfg.DBConnString); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	db, err := pgxpool.New(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	emailLogRepo := repository.NewEmailLogRepo(db)

	sender := email.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	dispatcher := email.NewDispatcher(sender, emailLogRepo)

	googleSvc := oauth2svc.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.FrontendURL+"/auth/callback",
	)

	tokens := jwtutil.NewIssuer([]byte(cfg.JWTSecret), cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	userUC := usecase.NewUserUsecase(userRepo, dispatcher, googleSvc, tokens, cfg.OTPTTL)
	noteUC := usecase.NewNoteUsecase(noteRepo)

	auth := middleware.NewAuthMiddleware(tokens, userRepo)

	authHandler := handler.NewAuthHandler(userUC, cfg.CookieTTL)
	notesHandler := handler.NewNotesHandler(noteUC)

	r := chi.NewRouter()
	router.SetupRoutes(r, authHandler, notesHandler, auth, cfg.AllowedOrigins)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
}
