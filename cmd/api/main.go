package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"salesops/internal/adapter/repo"
	"salesops/internal/http/handlers"
	"salesops/internal/http/httpapi"
	"salesops/internal/infra"
	"salesops/internal/kpi"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	ads := repo.NewAdSpendRepository(dbpool)
	funnel := repo.NewFunnelRepository(dbpool)
	leads := repo.NewLeadRepository(dbpool)
	finance := repo.NewFinanceRepository(dbpool)
	tasks := repo.NewTaskRepository(dbpool)

	app := &handlers.App{
		Log:           logger,
		KPI:           kpi.NewService(ads, funnel, leads, finance),
		Ads:           ads,
		Funnel:        funnel,
		Leads:         leads,
		Finance:       finance,
		Tasks:         tasks,
		FinanceSecret: cfg.FinanceSecret,
		TokenSecret:   cfg.TokenSecret,
	}

	router := httpapi.NewRouter(app, cfg)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
