package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"bootcamp/internal/adapters/discord"
	"bootcamp/internal/adapters/httpapi"
	"bootcamp/internal/application"
	"bootcamp/internal/config"
	"bootcamp/internal/infrastructure/database"
	"bootcamp/internal/infrastructure/i18n"
	"bootcamp/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, err := database.Open(ctx, cfg.StorageURL())
	if err != nil {
		log.Fatalf("❌ Database initialization failed: %v", err)
	}
	defer backend.Close()

	admin := application.NewAdminService(backend.Schema)
	if cfg.AutoMigrate {
		if err := admin.InitService(ctx); err != nil {
			log.Fatalf("❌ Schema initialization failed: %v", err)
		}
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale)

	var notifier output.Notifier
	if cfg.AnnouncementsEnabled() {
		session, err := discord.NewSession(cfg.DiscordToken)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		notifier = discord.NewNotifier(session, cfg.AnnounceChannelID, translator, translator.DefaultLocale(), backend.Handles)
	}

	handler := httpapi.NewHandler(
		application.NewParticipantService(backend.Handles),
		application.NewEventService(backend.Handles, notifier),
		application.NewSubmissionService(backend.Handles, notifier, application.SubmissionOptions{
			EditPolicy:        application.EditPolicy(cfg.SubmissionEditPolicy),
			BlockClosedEvents: cfg.BlockClosedEventDrafts,
		}),
		admin,
		translator,
	)

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, cfg.OwnerID),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Listening on %s (storage: %s)", cfg.HTTPAddr, backend.Dialect)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("❌ HTTP server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ HTTP shutdown: %v", err)
		os.Exit(1)
	}
}
