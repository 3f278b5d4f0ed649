package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/amitlokhande0/Nearby-StaysFinder-Agent/internal/adapters/gemini"
	server "github.com/amitlokhande0/Nearby-StaysFinder-Agent/internal/adapters/http_server"
	"github.com/amitlokhande0/Nearby-StaysFinder-Agent/internal/adapters/observability"
	"github.com/amitlokhande0/Nearby-StaysFinder-Agent/internal/app"
	"github.com/amitlokhande0/Nearby-StaysFinder-Agent/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	client, err := gemini.New(context.Background(), cfg.GeminiKey, cfg.GeminiModel, cfg.ModelRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("gemini client init failed")
	}
	log.Info().Str("model", cfg.GeminiModel).Msg("gemini client ready")

	svc := app.NewSearchService(client, cfg.ModelTimeout)

	// The page handler waits on the model call, so the request timeout
	// must outlast the model timeout.
	srv := server.New(cfg.ModelTimeout + 15*time.Second)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		S: svc,
		Defaults: server.Defaults{
			AppName:    cfg.AppName,
			Location:   cfg.DefaultLocation,
			RadiusKm:   cfg.DefaultRadius,
			MaxResults: cfg.DefaultMaxResults,
		},
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("web UI listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
