package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/markazhub/markaz/internal/pkg/config"
	"github.com/markazhub/markaz/internal/pkg/database"
	"github.com/markazhub/markaz/internal/pkg/logger"
	"github.com/markazhub/markaz/internal/pkg/middleware"
	"github.com/markazhub/markaz/internal/pkg/server"
	"github.com/markazhub/markaz/internal/pkg/validator"
	academyhandler "github.com/markazhub/markaz/services/academy/handler"
	academyhttp "github.com/markazhub/markaz/services/academy/handler/http"
	academyrepo "github.com/markazhub/markaz/services/academy/repository"
	academyuc "github.com/markazhub/markaz/services/academy/usecase"
	"github.com/markazhub/markaz/services/auth/gateway"
	authhandler "github.com/markazhub/markaz/services/auth/handler"
	authhttp "github.com/markazhub/markaz/services/auth/handler/http"
	authrepo "github.com/markazhub/markaz/services/auth/repository"
	authuc "github.com/markazhub/markaz/services/auth/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = ".env"
	}
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	logger.Info("Starting application", logger.Fields{
		"app":         configs.App.Name,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	})

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Initialize the SMS delivery gateway
	smsGateway, err := gateway.NewSMSGateway(configs.NSQ.Address, configs.NSQ.SMSTopic)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to NSQ")
	}
	defer smsGateway.Stop()

	// Auth service
	userRepo := authrepo.NewAuthRepo(postgresClient.GetDB())
	otpRepo := authrepo.NewOTPRepo(redisClient)
	authUC := authuc.NewAuthUC(userRepo, otpRepo, smsGateway, configs)
	authHandler := authhandler.NewHandler(authhttp.NewAuthHandler(authUC), configs)

	// Academy service
	academyRepo := academyrepo.NewAcademyRepo(postgresClient.GetDB())
	academyUC := academyuc.NewAcademyUC(academyRepo, configs)
	academyHandler := academyhandler.NewHandler(academyhttp.NewAcademyHandler(academyUC), configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	authHandler.RegisterRoutes(e)
	academyHandler.RegisterRoutes(e)

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server error")
	}
}
