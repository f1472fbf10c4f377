package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"

	"github.com/social360/social360/internal/config"
	"github.com/social360/social360/internal/infra/database"
	"github.com/social360/social360/internal/infra/repository"
	"github.com/social360/social360/internal/present/rest"
	"github.com/social360/social360/internal/present/rest/middleware"
	"github.com/social360/social360/internal/service"
	"github.com/social360/social360/internal/usecase"
)

func main() {
	configPath := flag.String("config", "/etc/social360/config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if conf.Server.EnableTrace {
		cleanup, err := setupTraceProvider(conf.Server.TraceEndpoint)
		if err != nil {
			panic(err)
		}
		defer cleanup()
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		panic("failed to connect database")
	}

	err = database.MigratePostgres(db)
	if err != nil {
		panic("failed to migrate database")
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, "", conf.Server.RedisDB)
	mc := database.NewMemcached(conf.Server.MemcachedAddr)

	accountRepo := repository.NewAccountRepository(db, mc)
	graphRepo := repository.NewGraphRepository(db)
	contentRepo := repository.NewContentRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)
	moderationRepo := repository.NewModerationRepository(db)

	insightCache := service.NewInsightCacheService(rdb)

	accountUsecase := usecase.NewAccountUsecase(accountRepo)
	graphUsecase := usecase.NewGraphUsecase(graphRepo)
	contentUsecase := usecase.NewContentUsecase(contentRepo, accountRepo, moderationRepo)
	engagementUsecase := usecase.NewEngagementUsecase(engagementRepo)
	moderationUsecase := usecase.NewModerationUsecase(moderationRepo, contentRepo, accountRepo)
	timelineUsecase := usecase.NewTimelineUsecase(contentRepo, graphRepo, accountRepo)
	insightUsecase := usecase.NewInsightUsecase(insightCache)

	handler := rest.NewHandler(
		accountUsecase,
		graphUsecase,
		contentUsecase,
		engagementUsecase,
		moderationUsecase,
		timelineUsecase,
		insightUsecase,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("social360"))
	}

	identity := middleware.NewIdentityMiddleware()
	e.Use(identity.IdentifyRequester)

	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.Bind))
}

func setupTraceProvider(endpoint string) (func(), error) {
	ctx := context.Background()

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tracerProvider := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exporter),
		tracesdk.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "social360"),
		)),
	)
	otel.SetTracerProvider(tracerProvider)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown trace provider", slog.String("error", err.Error()))
		}
	}
	return cleanup, nil
}
