package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-careerhub-backend/config"
	v1 "go-careerhub-backend/internal/delivery/http/v1"
	"go-careerhub-backend/internal/permission"
	"go-careerhub-backend/internal/render"
	"go-careerhub-backend/internal/repository/localstore"
	"go-careerhub-backend/internal/repository/memory"
	"go-careerhub-backend/internal/usecase"
	"go-careerhub-backend/pkg/logger"
	"go-careerhub-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting careerhub backend", "port", cfg.Port)

	// 3. Open the persisted state file (saved items, session, registrations)
	state, err := localstore.Open(cfg.DataFile)
	if err != nil {
		logger.Log.Error("Failed to open state file", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}

	// 4. Setup Repositories
	actorRepo := memory.NewActorRepository()
	companyRepo := memory.NewCompanyRepository()
	jobRepo := memory.NewJobRepository()
	eventRepo := memory.NewEventRepository()
	courseRepo := memory.NewCourseRepository()
	resumeRepo := memory.NewResumeRepository()
	applicationRepo := memory.NewApplicationRepository()

	if cfg.Seed {
		if err := memory.Seed(context.Background(), actorRepo, companyRepo, jobRepo,
			eventRepo, courseRepo, resumeRepo); err != nil {
			logger.Log.Error("Failed to seed mock dataset", "error", err)
			os.Exit(1)
		}
	}

	// 5. Setup Validation and Permissions
	validate := validator.New()
	validation.RegisterValidators(validate)
	perm := permission.NewChecker()

	// 6. Setup UseCases
	latency := time.Duration(cfg.SimulatedLatencyMs) * time.Millisecond
	sessionUC := usecase.NewSessionUsecase(actorRepo, state)
	jobUC := usecase.NewJobUsecase(jobRepo, perm, sessionUC, validate, latency)
	companyUC := usecase.NewCompanyUsecase(companyRepo, perm, sessionUC, validate, latency)
	eventUC := usecase.NewEventUsecase(eventRepo, perm, sessionUC, state, validate, latency)
	courseUC := usecase.NewCourseUsecase(courseRepo, perm, validate, latency)
	savedUC := usecase.NewSavedUsecase(perm, state)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, validate, latency)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, resumeRepo, latency)
	adminUC := usecase.NewAdminUsecase(actorRepo, companyRepo, jobRepo, eventRepo, courseRepo, latency)

	// 7. Setup Resume Renderer
	renderer, err := render.NewRenderer()
	if err != nil {
		logger.Log.Error("Failed to parse resume templates", "error", err)
		os.Exit(1)
	}

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SessionUC:     sessionUC,
		JobUC:         jobUC,
		CompanyUC:     companyUC,
		EventUC:       eventUC,
		CourseUC:      courseUC,
		SavedUC:       savedUC,
		ResumeUC:      resumeUC,
		ApplicationUC: applicationUC,
		AdminUC:       adminUC,
		Renderer:      renderer,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
