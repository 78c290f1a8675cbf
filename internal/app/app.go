package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/benho/store-management/config"
	"github.com/benho/store-management/internal/controller"
	"github.com/benho/store-management/internal/infrastructure/filestorage"
	kafkaInfra "github.com/benho/store-management/internal/infrastructure/message-queue/kafka"
	"github.com/benho/store-management/internal/infrastructure/tracing"
	custommiddleware "github.com/benho/store-management/internal/middleware"
	"github.com/benho/store-management/internal/repository"
	"github.com/benho/store-management/internal/service"
	"github.com/benho/store-management/pkg/response"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type App struct {
	DB        *sqlx.DB
	Config    *config.Config
	KafkaConn *kafka.Conn
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer("store-management")

			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	e.Use(middleware.Recover())

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	if app.Config.MetricsPort != "" {
		go func() {
			metrics := echo.New()
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	g := e.Group("/api/v1")
	g.Use(custommiddleware.Logger)

	isLoggedIn := middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(app.Config.JWTSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			errorResponse := map[string]interface{}{
				"status":  "error",
				"message": "Invalid or expired JWT",
				"errors":  nil,
			}
			return c.JSON(http.StatusUnauthorized, errorResponse)
		},
	})

	storage := filestorage.CreateNewDiskStorage(app.Config.UploadDir)
	repo := repository.CreateNewRepository(app.DB)

	var publisher service.EventPublisher
	if app.KafkaConn != nil {
		publisher = kafkaInfra.CreateNewPublisher(app.KafkaConn)
	}

	svc := service.CreateNewService(repo, storage, publisher)
	controller.CreateProductController(g, svc, isLoggedIn)
	controller.CreateFileController(g, storage)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}
