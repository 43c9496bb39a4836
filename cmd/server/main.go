package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"college-feedback-backend/internal/config"
	"college-feedback-backend/internal/database"
	"college-feedback-backend/internal/handlers"
	"college-feedback-backend/internal/logger"
	"college-feedback-backend/internal/notify"
	"college-feedback-backend/internal/repository"
)

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	if cfg.IsProduction() && len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		log.Println("⚠️  CORS_ORIGINS allows every origin in production")
	}

	appLog := logger.New(log.Default(), cfg.RollbarToken, cfg.Env)
	if rl, ok := appLog.(*logger.RollbarLogger); ok {
		defer rl.Close()
	}

	// Connect to MongoDB
	if err := database.Connect(cfg.MongoURI, cfg.DBName); err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// Initialize repositories
	feedbackRepo := repository.NewFeedbackRepo()
	userRepo := repository.NewUserRepo()
	timetableRepo := repository.NewTimetableRepo()
	facultyRepo := repository.NewFacultyRepo()

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	for name, repo := range map[string]indexer{
		database.FeedbackCollection:  feedbackRepo,
		database.UserCollection:      userRepo,
		database.TimetableCollection: timetableRepo,
		database.FacultyCollection:   facultyRepo,
	} {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Printf("⚠️  Warning: failed to create %s indexes: %v", name, err)
		}
	}
	cancel()

	router := handlers.NewRouter(handlers.RouterConfig{
		Feedback:    feedbackRepo,
		Users:       userRepo,
		Timetables:  timetableRepo,
		Faculty:     facultyRepo,
		Notifier:    notify.New(cfg.ResendAPIKey, cfg.FromEmail),
		Log:         appLog,
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.JWTTTL,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Feedback backend starting on port %s (%s)", cfg.Port, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("🛑 Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Graceful shutdown failed: %v", err)
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		log.Printf("⚠️  Failed to disconnect from MongoDB: %v", err)
	}
}
