package main

import (
	"log"
	"strings"

	"github.com/flarehaven/venue-booking/config"
	"github.com/flarehaven/venue-booking/internal/auth"
	"github.com/flarehaven/venue-booking/internal/handler"
	"github.com/flarehaven/venue-booking/internal/middleware"
	"github.com/flarehaven/venue-booking/internal/service"
	"github.com/flarehaven/venue-booking/internal/store"
	"github.com/flarehaven/venue-booking/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	// All booking and site state lives here, in memory, for the lifetime
	// of the process.
	st := store.New()

	var publisher service.Publisher
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer pub.Close()
		publisher = pub
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	verifier := auth.StaticVerifier{Username: cfg.AdminUsername, Password: cfg.AdminPassword}

	bookingSvc := service.NewBookingService(st, publisher, cfg.WhatsAppNumber)
	adminSvc := service.NewAdminService(st, verifier, tokens, publisher)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	// Single-page app: every non-API path falls back to index.html so the
	// client router can take over.
	e.Use(echoMw.StaticWithConfig(echoMw.StaticConfig{
		Root:  cfg.StaticDir,
		Index: "index.html",
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/api")
		},
	}))

	handler.NewBookingHandler(bookingSvc, cfg.PingMessage).RegisterRoutes(e)
	handler.NewAdminHandler(adminSvc).RegisterRoutes(e, middleware.AdminGuard(tokens))

	log.Printf("venue booking service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
