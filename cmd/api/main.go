package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/snapfolio/snapfolio-backend/internal/config"
	"github.com/snapfolio/snapfolio-backend/internal/handler"
	"github.com/snapfolio/snapfolio-backend/internal/middleware"
	"github.com/snapfolio/snapfolio-backend/internal/realtime"
	"github.com/snapfolio/snapfolio-backend/internal/repository"
	"github.com/snapfolio/snapfolio-backend/internal/service"
	"github.com/snapfolio/snapfolio-backend/pkg/database"
	"github.com/snapfolio/snapfolio-backend/pkg/email"
	"github.com/snapfolio/snapfolio-backend/pkg/jwt"
	"github.com/snapfolio/snapfolio-backend/pkg/logger"
	"github.com/snapfolio/snapfolio-backend/pkg/qrcode"
	"github.com/snapfolio/snapfolio-backend/pkg/storage"
	"go.uber.org/zap"
)

const archivalSweepInterval = 24 * time.Hour

func main() {
	// .env opsiyonel, production'da env doğrudan gelir
	_ = godotenv.Load()

	// Config'i yükle
	cfg := config.LoadConfig()

	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	// Initialize database
	db := database.NewDatabase(cfg.DatabaseURL)

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Redis opsiyonel, yoksa canlı akış DB'den okunur
	redisClient, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		zapLogger.Warn("redis unavailable, live feed cache disabled", zap.Error(err))
		redisClient = nil
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	downloadRepo := repository.NewDownloadLogRepository(db)
	guestbookRepo := repository.NewGuestbookRepository(db)
	reactionRepo := repository.NewReactionRepository(db)
	archiveRepo := repository.NewArchivedEventRepository(db)

	// Storage
	r2Storage, err := storage.NewCloudflareStorage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize R2 storage:", err)
	}

	// Email service
	emailService := email.NewEmailService(cfg.Email.APIKey, cfg.Email.FromAddress, cfg.Email.FromName, zapLogger)

	// Realtime hub
	hub := realtime.NewHub(zapLogger)
	go hub.Run()

	qrService := qrcode.NewQRService(cfg.FrontendURL)
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Services
	authService := service.NewAuthService(userRepo, emailService, jwtService, zapLogger)
	userService := service.NewUserService(userRepo)
	albumService := service.NewAlbumService(albumRepo, eventRepo, mediaRepo)
	guestService := service.NewGuestService(guestRepo, eventRepo)
	notificationService := service.NewNotificationService(hub, userRepo, emailService, redisClient, cfg.FrontendURL, zapLogger)
	uploadService := service.NewUploadService(eventRepo, mediaRepo, albumService, guestService, r2Storage, notificationService, zapLogger)
	mediaService := service.NewMediaService(mediaRepo, eventRepo, downloadRepo, r2Storage, redisClient, zapLogger)
	eventService := service.NewEventService(
		eventRepo,
		mediaRepo,
		guestRepo,
		downloadRepo,
		guestbookRepo,
		reactionRepo,
		archiveRepo,
		albumService,
		qrService,
		r2Storage,
		cfg.CascadeOnDelete,
		zapLogger,
	)
	guestbookService := service.NewGuestbookService(guestbookRepo, reactionRepo, eventRepo, mediaRepo, guestRepo)

	// Süresi dolan etkinlikler periyodik olarak arşive taşınır
	go eventService.RunArchivalSweep(context.Background(), archivalSweepInterval)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	eventHandler := handler.NewEventHandler(eventService)
	albumHandler := handler.NewAlbumHandler(albumService)
	mediaHandler := handler.NewMediaHandler(uploadService, mediaService, guestService)
	guestHandler := handler.NewGuestHandler(guestService)
	guestbookHandler := handler.NewGuestbookHandler(guestbookService, guestService)
	wsHandler := handler.NewWebSocketHandler(hub, eventService)

	// Router
	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024,
	})

	// Global Middleware'ler önce tanımlanmalı
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberLogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Misafir rotaları (auth middleware'den ÖNCE olmalı)
	api.Get("/public/events/:id", eventHandler.GetPublicEvent)
	api.Post("/guests/register", guestHandler.RegisterGuest)
	api.Post("/public/events/:eventId/media", mediaHandler.GuestUpload)
	api.Get("/public/events/:eventId/albums", albumHandler.GetEventAlbums)
	api.Get("/public/albums/:id/media", middleware.OptionalAuth(jwtService), albumHandler.GetAlbumMedia)
	api.Get("/public/events/:eventId/feed", middleware.OptionalAuth(jwtService), mediaHandler.GetLiveFeed)
	api.Get("/public/events/:eventId/guestbook", guestbookHandler.GetMessages)
	api.Post("/public/events/:eventId/guestbook", guestbookHandler.AddMessage)
	api.Post("/public/guestbook/:id/reactions", guestbookHandler.ReactToMessage)
	api.Post("/public/reactions", guestbookHandler.ReactToMedia)
	api.Get("/public/media/:mediaId/reactions", guestbookHandler.GetMediaReactions)

	// Websocket canlı akış odası
	api.Use("/ws/events/:eventId", wsHandler.Upgrade)
	api.Get("/ws/events/:eventId", wsHandler.Serve())

	// Medya listesi ve dosya servis rotaları host/misafir ayrımını
	// kendi içinde yapar, token varsa çözülür
	api.Get("/events/:eventId/media", middleware.OptionalAuth(jwtService), mediaHandler.GetEventMedia)
	api.Get("/media/:id/file", middleware.OptionalAuth(jwtService), mediaHandler.ServeFile)
	api.Get("/media/:id/download", middleware.OptionalAuth(jwtService), mediaHandler.DownloadFile)

	// Protected routes
	api.Use(middleware.AuthMiddleware(jwtService))
	{
		user := api.Group("/user")
		user.Get("/profile", userHandler.GetProfile)
		user.Put("/profile", userHandler.UpdateProfile)

		events := api.Group("/events")
		events.Post("/", eventHandler.CreateEvent)
		events.Get("/", eventHandler.GetMyEvents)
		events.Get("/archived", eventHandler.GetArchivedEvents)
		events.Get("/:id", eventHandler.GetEvent)
		events.Put("/:id", eventHandler.UpdateEvent)
		events.Delete("/:id", eventHandler.DeleteEvent)
		events.Post("/:id/qr", eventHandler.GenerateQR)
		events.Post("/:eventId/media", mediaHandler.HostUpload)
		events.Get("/:eventId/media/download", mediaHandler.DownloadAllMedia)
		events.Post("/:eventId/albums", albumHandler.CreateAlbum)

		media := api.Group("/media")
		media.Get("/", mediaHandler.GetMyMedia)
		media.Post("/:id/approve", mediaHandler.ApproveMedia)
		media.Patch("/:id/visibility", mediaHandler.UpdateVisibility)
		media.Post("/:mediaId/assign-by-date", albumHandler.AssignByDate)

		albums := api.Group("/albums")
		albums.Put("/:id", albumHandler.UpdateAlbum)
		albums.Delete("/:id", albumHandler.DeleteAlbum)
	}

	log.Fatal(app.Listen(":" + cfg.Port))
}
