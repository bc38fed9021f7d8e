package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/adititiwari16/Recruitbotai/internal/config"
	"github.com/adititiwari16/Recruitbotai/internal/handlers"
	"github.com/adititiwari16/Recruitbotai/internal/logger"
	"github.com/adititiwari16/Recruitbotai/internal/middleware"
	"github.com/adititiwari16/Recruitbotai/internal/repositories"
	"github.com/adititiwari16/Recruitbotai/internal/services"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := config.InitDatabase(cfg, zlog)
	if err != nil {
		zlog.Fatal("Failed to initialize database", zap.Error(err))
	}

	store := repositories.NewStore(db)
	transactor := repositories.NewTransactor(db)
	zlog.Info("Repositories initialized")

	generator, err := services.NewGenerator(context.Background(), cfg.Generator, zlog)
	if err != nil {
		zlog.Fatal("Failed to initialize text generator", zap.Error(err))
	}
	zlog.Info("Text generator initialized", zap.String("provider", cfg.Generator.Provider))

	interviewService := services.NewInterviewService(store, transactor, generator, zlog)
	queryService := services.NewQueryService(generator, zlog)

	auth := middleware.NewSessionAuth(cfg.Session, store.Users)

	authHandler := handlers.NewAuthHandler(store.Users, auth)
	userHandler := handlers.NewUserHandler(store.Users)
	profileHandler := handlers.NewJobProfileHandler(store.JobProfiles)
	interviewHandler := handlers.NewInterviewHandler(store, interviewService)
	queryHandler := handlers.NewQueryHandler(queryService)
	zlog.Info("Handlers initialized")

	app := fiber.New(fiber.Config{
		AppName:      "Recruitbot API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		ErrorHandler: handlers.ErrorHandler(zlog),
	})

	app.Use(recover.New())
	app.Use(requestLogger(zlog))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000,http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.HandleRegister)
	authGroup.Post("/login", authHandler.HandleLogin)
	authGroup.Post("/logout", auth.RequireAuth(), authHandler.HandleLogout)

	users := api.Group("/users", auth.RequireAuth())
	users.Get("/me", userHandler.HandleMe)
	users.Put("/me", userHandler.HandleUpdateMe)

	profiles := api.Group("/job-profiles", auth.RequireAuth())
	profiles.Get("/", profileHandler.HandleList)
	profiles.Get("/:id", profileHandler.HandleGet)
	profiles.Post("/", auth.RequireRecruiter(), profileHandler.HandleCreate)
	profiles.Put("/:id", auth.RequireRecruiter(), profileHandler.HandleUpdate)
	profiles.Delete("/:id", auth.RequireRecruiter(), profileHandler.HandleDelete)

	interviews := api.Group("/interviews", auth.RequireAuth())
	interviews.Post("/", interviewHandler.HandleCreate)
	interviews.Get("/", interviewHandler.HandleList)
	interviews.Get("/:id", interviewHandler.HandleGet)
	interviews.Post("/:id/chat", interviewHandler.HandleChat)
	interviews.Post("/:id/complete", interviewHandler.HandleComplete)

	api.Post("/query/ask", auth.RequireAuth(), queryHandler.HandleAsk)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("Shutting down server")
		if err := app.Shutdown(); err != nil {
			zlog.Error("Server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("Server starting", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}

func requestLogger(zlog *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		zlog.Info("Request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)))
		return err
	}
}
