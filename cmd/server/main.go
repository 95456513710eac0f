package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"theatre-scheduling-backend/internal/config"
	"theatre-scheduling-backend/internal/database"
	"theatre-scheduling-backend/internal/handler"
	"theatre-scheduling-backend/internal/middleware"
	"theatre-scheduling-backend/internal/repository"
	"theatre-scheduling-backend/internal/scoring"
	"theatre-scheduling-backend/internal/service"
	"theatre-scheduling-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	userHospitalRepo := repository.NewUserHospitalRepo(db)
	theatreRepo := repository.NewTheatreRepo(db)
	staffRepo := repository.NewStaffRepo(db)
	waitingRepo := repository.NewWaitingListRepo(db)
	scheduleRepo := repository.NewScheduleRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, userHospitalRepo, auditRepo)
	scheduleService := service.NewScheduleService(
		theatreRepo,
		staffRepo,
		waitingRepo,
		scheduleRepo,
		auditRepo,
		scoring.NewKeywordScorer(),
		cfg.Scheduling,
	)
	theatreService := service.NewTheatreService(theatreRepo, waitingRepo, hospitalRepo, userHospitalRepo)

	// 6. Start background refresh worker in goroutine (if enabled)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Worker.Enabled {
		workerService := service.NewWorkerService(hospitalRepo, scheduleService, cfg.Worker)
		go workerService.Start(ctx)
	}

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers and access control
	authHandler := handler.NewAuthHandler(authService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	theatreHandler := handler.NewTheatreHandler(theatreService)
	accessControl := middleware.NewAccessControlMiddleware(userHospitalRepo, theatreRepo)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "theatre-scheduling-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Hospital and theatre routes (authenticated)
	hospitals := r.Group("/hospitals")
	hospitals.Use(middleware.AuthMiddleware())
	{
		hospitals.GET("", theatreHandler.GetHospitals)
		hospitals.GET("/:id/theatres", accessControl.CheckHospitalAccess(), theatreHandler.GetTheatresByHospital)
		hospitals.GET("/:id/units", accessControl.CheckHospitalAccess(), theatreHandler.GetTheatreUnitsByHospital)
		hospitals.GET("/:id/waiting-list", accessControl.CheckHospitalAccess(), theatreHandler.GetWaitingList)
	}

	theatres := r.Group("/theatres")
	theatres.Use(middleware.AuthMiddleware())
	{
		theatres.GET("/:id/configuration", accessControl.CheckTheatreAccess(), theatreHandler.GetTheatreConfiguration)
	}

	// Schedule routes (authenticated)
	schedule := r.Group("/schedule")
	schedule.Use(middleware.AuthMiddleware())
	{
		schedule.GET("/lists", scheduleHandler.GetLists)
		schedule.GET("/lists/:id", scheduleHandler.GetList)
		schedule.GET("/runs/:uid", scheduleHandler.GetRun)

		// Admin-only routes
		schedule.POST("/generate", middleware.RequireAdmin(), scheduleHandler.Generate)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background worker context
	cancel()
	log.Println("Server exited")
}
