package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Amund211/roster/internal/adapters/playerapi"
	"github.com/Amund211/roster/internal/app"
	"github.com/Amund211/roster/internal/config"
	"github.com/Amund211/roster/internal/logging"
	"github.com/Amund211/roster/internal/ports"
	"github.com/Amund211/roster/internal/ratelimiting"
	"github.com/Amund211/roster/internal/reporting"
	"github.com/Amund211/roster/internal/telemetry"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	_ "golang.org/x/crypto/x509roots/fallback"
)

const serviceName = "roster"

func main() {
	instanceID := uuid.New().String()
	logger := slog.New(
		logging.NewTracingLogHandler(slog.NewJSONHandler(os.Stdout, nil)),
	).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	// A missing .env is fine, the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fail("Failed to load .env", "error", err.Error())
	}

	config, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", config.NonSensitiveString())

	if config.OTelEnabled() {
		shutdown, err := telemetry.SetupOTelSDK(context.Background(), serviceName)
		if err != nil {
			fail("Failed to set up OpenTelemetry", "error", err.Error())
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				logger.Error("Failed to shut down OpenTelemetry", "error", err.Error())
			}
		}()
		logger.Info("Initialized OpenTelemetry")
	}

	sentryMiddleware, flush, err := reporting.NewSentryMiddlewareOrMock(config)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()
	logger.Info("Initialized Sentry middleware")

	playerAPI, err := playerapi.NewClient(playerapi.NewHTTPClient(), config.CohortURL())
	if err != nil {
		fail("Failed to initialize player API client", "error", err.Error())
	}
	logger.Info("Initialized player API client", "cohortURL", config.CohortURL())

	mutationLimiter, stopMutationLimiter := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(1),
		ratelimiting.BurstSize(30),
	)
	defer stopMutationLimiter()
	ipMutationLimiter := ratelimiting.NewRequestBasedRateLimiter(mutationLimiter, ratelimiting.IPKeyFunc)

	refresh := app.BuildRefresh(app.BuildListPlayers(playerAPI))
	showPlayer := app.BuildShowPlayer(app.BuildGetPlayer(playerAPI), refresh)
	addPlayer := app.BuildAddPlayer(app.BuildCreatePlayer(playerAPI), refresh)
	removePlayer := app.BuildRemovePlayer(app.BuildDeletePlayer(playerAPI), refresh)

	mux := http.NewServeMux()

	mux.HandleFunc(
		"GET /{$}",
		ports.MakeRosterHandler(
			refresh,
			logger.With("port", "roster"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc(
		"GET /players/{id}",
		ports.MakeShowPlayerHandler(
			showPlayer,
			logger.With("port", "showplayer"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc(
		"POST /players",
		ports.MakeAddPlayerHandler(
			addPlayer,
			ipMutationLimiter,
			logger.With("port", "addplayer"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc(
		"POST /players/{id}/delete",
		ports.MakeRemovePlayerHandler(
			removePlayer,
			ipMutationLimiter,
			logger.With("port", "removeplayer"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc("GET /healthz", ports.MakeHealthHandler())

	logger.Info("Init complete")
	err = http.ListenAndServe(fmt.Sprintf(":%s", config.Port()), otelhttp.NewHandler(mux, serviceName))
	if errors.Is(err, http.ErrServerClosed) {
		logger.Info("Server shutdown")
	} else {
		fail("Server error", "error", err.Error())
	}
}
