package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"localguide/internal/config"
	"localguide/internal/database"
	"localguide/internal/middleware"
	"localguide/internal/modules/admin"
	"localguide/internal/modules/analytics"
	"localguide/internal/modules/assistant"
	"localguide/internal/modules/auth"
	"localguide/internal/modules/booking"
	"localguide/internal/modules/catalog"
	"localguide/internal/modules/chat"
	"localguide/internal/modules/dashboard"
	"localguide/internal/modules/kyc"
	"localguide/internal/modules/notification"
	"localguide/internal/modules/profile"
	"localguide/internal/modules/review"
	"localguide/internal/modules/wallet"
	jwtsvc "localguide/internal/pkg/jwt"
	"localguide/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if err := wallet.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if err := notification.Migrate(db); err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	eventRepo := repository.NewEventRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	chatRepo := repository.NewChatRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	notifyService := notification.NewService(db)
	walletService := wallet.NewService(db)
	kycService := kyc.NewService(verificationRepo, userRepo)

	authService := auth.NewService(userRepo, profileRepo, verificationRepo, j)
	authHandler := auth.NewHandler(authService)

	profileService := profile.NewService(profileRepo)
	profileHandler := profile.NewHandler(profileService, cfg.UploadDir)

	kycHandler := kyc.NewHandler(kycService)

	catalogService := catalog.NewService(eventRepo, kycService)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, eventRepo, walletService, notifyService)
	bookingHandler := booking.NewHandler(bookingService)

	walletHandler := wallet.NewHandler(walletService)

	reviewService := review.NewService(reviewRepo, bookingRepo, eventRepo, profileRepo)
	reviewHandler := review.NewHandler(reviewService)

	hub := chat.NewHub()
	defer hub.Close()
	chatService := chat.NewService(chatRepo, userRepo, profileRepo, hub, notifyService)
	chatHandler := chat.NewHandler(chatService)
	wsHandler := chat.NewWSHandler(hub, j, chatService)

	notificationHandler := notification.NewHandler(notifyService)

	assistantService := assistant.NewService(assistant.NewKeywordRouter(), eventRepo)
	assistantHandler := assistant.NewHandler(assistantService)

	dashboardHandler := dashboard.NewHandler()

	adminService := admin.NewService(verificationRepo, userRepo, notifyService)
	adminHandler := admin.NewHandler(adminService)

	analyticsService := analytics.NewService(userRepo, eventRepo, bookingRepo)
	analyticsHandler := analytics.NewHandler(analyticsService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	r.Static("/static", cfg.UploadDir)
	r.GET("/ws/chat", wsHandler.HandleWebSocket)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		profileHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			profileHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			walletHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)
			chatHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			assistantHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)

			guide := protected.Group("/")
			guide.Use(middleware.GuideOnly())
			{
				catalogHandler.RegisterGuideRoutes(guide)
				kycHandler.RegisterRoutes(guide)
			}

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
				analyticsHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	log.Printf("listening addr=%s env=%s", cfg.ListenAddr, cfg.AppEnv)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
