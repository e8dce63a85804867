package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coog-esports/admin-api/config"
	"github.com/coog-esports/admin-api/db"
	"github.com/coog-esports/admin-api/handlers"
	"github.com/coog-esports/admin-api/repositories"
	"github.com/coog-esports/admin-api/routes"
	"github.com/coog-esports/admin-api/services"
	"github.com/coog-esports/admin-api/storage"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Image uploads are optional: without R2 credentials the uploader stays
	// nil and upload endpoints respond with 503.
	var uploader storage.FileUploader
	if cfg.R2AccountID != "" {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("R2 not configured, image uploads disabled")
	}

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	roleRepo := repositories.NewPostgresRoleRepository(dbConn)
	shirtSizeRepo := repositories.NewPostgresShirtSizeRepository(dbConn)
	gameRepo := repositories.NewPostgresGameRepository(dbConn)
	sponsorRepo := repositories.NewPostgresSponsorRepository(dbConn)
	termRepo := repositories.NewPostgresAcademicTermRepository(dbConn)
	officerRepo := repositories.NewPostgresOfficerRepository(dbConn)
	coordinatorRepo := repositories.NewPostgresCoordinatorRepository(dbConn)
	membershipRepo := repositories.NewPostgresMembershipRepository(dbConn)
	teamMembershipRepo := repositories.NewPostgresTeamMembershipRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	opponentRepo := repositories.NewPostgresOpponentRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	eventRepo := repositories.NewPostgresEventRepository(dbConn)
	attendeeRepo := repositories.NewPostgresEventAttendeeRepository(dbConn)
	mediaRepo := repositories.NewPostgresMediaRepository(dbConn)
	logger.Info("repositories initialized")

	userService := services.NewUserService(userRepo, membershipRepo, officerRepo)
	roleService := services.NewRoleService(roleRepo, officerRepo)
	shirtSizeService := services.NewShirtSizeService(shirtSizeRepo, membershipRepo)
	gameService := services.NewGameService(gameRepo, teamRepo, opponentRepo, uploader)
	sponsorService := services.NewSponsorService(sponsorRepo, uploader)
	termService := services.NewAcademicTermService(termRepo, mediaRepo)
	officerService := services.NewOfficerService(officerRepo, userRepo, roleRepo, eventRepo, mediaRepo, uploader)
	coordinatorService := services.NewCoordinatorService(coordinatorRepo, userRepo, gameRepo, teamRepo)
	membershipService := services.NewMembershipService(membershipRepo, userRepo, shirtSizeRepo, teamMembershipRepo)
	teamMembershipService := services.NewTeamMembershipService(teamMembershipRepo, teamRepo, membershipRepo)
	teamService := services.NewTeamService(teamRepo, gameRepo, coordinatorRepo, matchRepo, teamMembershipRepo)
	opponentService := services.NewOpponentService(opponentRepo, gameRepo, matchRepo, uploader)
	matchService := services.NewMatchService(matchRepo, teamRepo, opponentRepo, gameRepo)
	eventService := services.NewEventService(eventRepo, officerRepo)
	attendeeService := services.NewEventAttendeeService(attendeeRepo, eventRepo, userRepo)
	mediaService := services.NewMediaService(mediaRepo, termRepo, officerRepo, uploader)
	logger.Info("services initialized")

	router := routes.New(routes.Handlers{
		Users:           handlers.NewUserHandler(userService),
		Roles:           handlers.NewRoleHandler(roleService),
		ShirtSizes:      handlers.NewShirtSizeHandler(shirtSizeService),
		Games:           handlers.NewGameHandler(gameService),
		Sponsors:        handlers.NewSponsorHandler(sponsorService),
		AcademicTerms:   handlers.NewAcademicTermHandler(termService),
		Officers:        handlers.NewOfficerHandler(officerService),
		Coordinators:    handlers.NewCoordinatorHandler(coordinatorService),
		Memberships:     handlers.NewMembershipHandler(membershipService),
		TeamMemberships: handlers.NewTeamMembershipHandler(teamMembershipService),
		Teams:           handlers.NewTeamHandler(teamService),
		Opponents:       handlers.NewOpponentHandler(opponentService),
		Matches:         handlers.NewMatchHandler(matchService),
		Events:          handlers.NewEventHandler(eventService),
		EventAttendees:  handlers.NewEventAttendeeHandler(attendeeService),
		Media:           handlers.NewMediaHandler(mediaService),
	}, cfg.CORSAllowedOrigins, logger)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
