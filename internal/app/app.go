package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/config"
	"github.com/alimikegami/point-of-sales/store-admin/internal/catalog"
	"github.com/alimikegami/point-of-sales/store-admin/internal/controller"
	localmiddleware "github.com/alimikegami/point-of-sales/store-admin/internal/middleware"
	"github.com/alimikegami/point-of-sales/store-admin/internal/service"
	pkgdto "github.com/alimikegami/point-of-sales/store-admin/pkg/dto"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/response"
	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
)

const serviceName = "store-admin"

type App struct {
	Config    *config.Config
	Infra     *Infrastructure
	Services  Services
	Mailer    *service.ReportMailer
	Server    *echo.Echo
	Metrics   *echo.Echo
	Scheduler gocron.Scheduler
}

// ConfigureLogger installs the global JSON logger at the configured level.
func ConfigureLogger(level string) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = logger

	return logger
}

// NewRouter wires the admin API. It has no dependency on the store so it can
// be served over fakes. Request metrics are registered on registerer.
func NewRouter(conf *config.Config, services Services, registerer prometheus.Registerer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(localmiddleware.Tracing(otel.Tracer(serviceName)))
	// No subsystem: metric names stay unprefixed across services
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{Registerer: registerer}))
	e.Use(localmiddleware.Logger)

	g := e.Group("/api/v1")
	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	controller.CreateAdminController(g, services.Catalog, services.Order, services.Review, services.User, localmiddleware.IsLoggedIn(conf.JWTSecret))

	return e
}

// Setup connects to the backing services and builds the servers without
// serving. It must return before Serve is started on another goroutine.
func (app *App) Setup(ctx context.Context) error {
	ConfigureLogger(app.Config.LogLevel)

	if app.Config.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET: %w", errs.ErrMissingSetting)
	}

	infra, err := Connect(ctx, app.Config, serviceName)
	if err != nil {
		return err
	}
	app.Infra = infra
	app.Services = BuildServices(infra.DB, infra.Producer, catalog.DefaultClassifier())
	if app.Config.SMTPConfig.Enabled() {
		app.Mailer = service.CreateReportMailer(app.Config.SMTPConfig)
	}

	app.Server = NewRouter(app.Config, app.Services, prometheus.DefaultRegisterer)
	app.Metrics = newMetricsServer()

	return app.startScheduler()
}

func newMetricsServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// Serve blocks until the API server stops. A shutdown through StopServer
// returns nil.
func (app *App) Serve() error {
	go func() {
		if err := app.Metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start metrics server")
		}
	}()

	err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) startScheduler() error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(app.Config.AuditInterval),
		gocron.NewTask(app.RunScheduledAudit, context.Background()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	s.Start()
	app.Scheduler = s

	return nil
}

// RunScheduledAudit logs how many products are not canonical and mails the
// report when a mailer is configured.
func (app *App) RunScheduledAudit(ctx context.Context) {
	ctx = log.With().Str("job", "category_audit").Logger().WithContext(ctx)

	audit, err := app.Services.Catalog.AuditCategories(ctx, pkgdto.Filter{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RunScheduledAudit").Msg("")
		return
	}

	log.Ctx(ctx).Info().Int("total", audit.Total).Int("non_canonical", len(audit.NonCanonical)).Msg("category audit finished")

	if app.Mailer == nil || len(audit.NonCanonical) == 0 || len(app.Config.SMTPConfig.Recipients) == 0 {
		return
	}

	if err := app.Mailer.SendCategoryAudit(ctx, audit, app.Config.SMTPConfig.Recipients, time.Now()); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RunScheduledAudit").Msg("failed to mail audit report")
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if app.Scheduler != nil {
		if err := app.Scheduler.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Failed to stop scheduler")
		}
	}

	if app.Metrics != nil {
		app.Metrics.Shutdown(ctx)
	}

	var err error
	if app.Server != nil {
		err = app.Server.Shutdown(ctx)
	}

	if app.Infra != nil {
		app.Infra.Close(ctx)
	}

	return err
}
