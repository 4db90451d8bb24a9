package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"feastly.backend/internal/config"
	"feastly.backend/internal/infrastructure/jobs"
	"feastly.backend/internal/infrastructure/mail"
	"feastly.backend/internal/infrastructure/models"
	"feastly.backend/internal/infrastructure/repositories"
	"feastly.backend/internal/infrastructure/storage"
	appgraphql "feastly.backend/internal/interfaces/graphql"
	"feastly.backend/internal/interfaces/http/handlers"
	"feastly.backend/internal/usecases"
	"feastly.backend/pkg/jwt"
	"feastly.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}
	newUploader = storage.NewUploader
	runServer   = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB    = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&models.Account{}, &models.Verification{}, &models.Restaurant{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize JWT service
	tokenService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	verificationRepo := repositories.NewVerificationRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)

	// Initialize mail dispatch and storage
	mailer := mail.NewDispatcher(cfg.Mail.Domain, cfg.Mail.APIKey, cfg.Mail.FromEmail)
	uploader, err := newUploader(context.Background(), cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize usecases
	verificationUsecase := usecases.NewVerificationUsecase(verificationRepo, userRepo)
	userUsecase := usecases.NewUserUsecase(userRepo, verificationRepo, verificationUsecase, tokenService, mailer)
	restaurantUsecase := usecases.NewRestaurantUsecase(restaurantRepo)

	// Build the GraphQL schema behind the access guard
	guard := appgraphql.NewGuard(tokenService, userUsecase, appgraphql.DefaultPolicies())
	resolver := appgraphql.NewResolver(userUsecase, restaurantUsecase, guard)
	schema, err := appgraphql.NewSchema(resolver)
	if err != nil {
		return fmt.Errorf("failed to build graphql schema: %w", err)
	}

	// Initialize handlers
	graphqlHandler := handlers.NewGraphQLHandler(schema)
	uploadsHandler := handlers.NewUploadsHandler(uploader)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewPromotionExpiryJob(restaurantRepo, cfg.Jobs.PromotionSweepInterval)
	go expiryJob.Start(ctx)

	r := newRouter(routeDeps{
		graphqlHandler: graphqlHandler,
		uploadsHandler: uploadsHandler,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
