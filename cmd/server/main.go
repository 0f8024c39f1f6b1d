package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"InvestSmart/internal/advisor"
	"InvestSmart/internal/cache"
	"InvestSmart/internal/config"
	"InvestSmart/internal/logger"
	"InvestSmart/internal/marketdata"
	"InvestSmart/internal/news"
	"InvestSmart/internal/server"
	"InvestSmart/internal/strategy"
)

func main() {
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		l := logger.New(logger.Config{})
		l.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		l := logger.New(logger.Config{})
		l.Fatal().Err(err).Msg("config validation")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logger.SetGlobalLogger(log)

	fetcher := marketdata.NewSyntheticFetcher(rand.New(rand.NewSource(time.Now().UnixNano())))
	log.Info().Str("provider", fetcher.Name()).Msg("InvestSmart starting")
	contexts := news.NewStaticProvider()
	c := cache.New(cache.WithTTL(time.Duration(cfg.Cache.TTL)))
	sim := strategy.NewSimulator(rand.New(rand.NewSource(time.Now().UnixNano())))

	svc := advisor.NewService(fetcher, contexts, c, sim,
		rand.New(rand.NewSource(time.Now().UnixNano())), log)
	agent := news.NewAgent(contexts, c, log)

	// Periodic cache warm for the dashboard's hot read models. The service
	// itself computes lazily; this just keeps the common endpoints warm.
	sched := cron.New(cron.WithSeconds())
	if cfg.Schedule.RefreshCron == config.CronOff {
		log.Info().Msg("cache warm disabled")
	} else {
		if _, err := sched.AddFunc(cfg.Schedule.RefreshCron, func() {
			svc.MarketOverview(context.Background())
			svc.Movers("gainers")
			svc.Movers("losers")
			svc.SectorAnalysis()
			log.Debug().Msg("cache warm completed")
		}); err != nil {
			log.Fatal().Err(err).Msg("register refresh cron")
		}
		sched.Start()
		defer sched.Stop()
	}

	srv := server.New(server.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Log:            log,
		Advisor:        svc,
		News:           agent,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server error")
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("InvestSmart stopped")
}
