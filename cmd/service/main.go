package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ddjurovic/macrotrack/internal/config"
	"github.com/ddjurovic/macrotrack/internal/db"
	"github.com/ddjurovic/macrotrack/internal/events"
	"github.com/ddjurovic/macrotrack/internal/goals"
	"github.com/ddjurovic/macrotrack/internal/logging"
	"github.com/ddjurovic/macrotrack/internal/nutrition"
	"github.com/ddjurovic/macrotrack/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "macrotrack-engine",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.DBHost,
		DBPort:         cfg.DBPort,
		DBName:         cfg.DBName,
		TracingEnabled: cfg.TracingEnabled,
	})
	if err != nil {
		log.Fatalf("create db pool: %s", err)
	}
	defer dbPool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Errorf("redis ping failed, progress cache degraded: %s", err)
	}

	metricsManager := metrics.NewManager("macrotrack", "engine", prometheus.DefaultRegisterer)
	metricsManager.GaugeLifeSignal.Set(1)

	bus := events.NewBus()

	store := goals.NewStore(goals.NewStoreParams{
		Repo:   goals.NewGoalsRepo(dbPool),
		Source: nutrition.NewRepo(dbPool),
		Cache: goals.NewRedisProgressCache(
			rdb,
			time.Duration(cfg.ProgressCacheTTLMs)*time.Millisecond,
		),
		Resolver: goals.NewResolver(goals.ResolverParams{
			TrendWeeks:     cfg.TrendWeeks,
			ComplianceDays: cfg.ComplianceDays,
		}),
		Metrics: metricsManager,
	})
	store.SubscribeTo(bus)
	defer store.Close()

	if err := store.LoadGoals(ctx); err != nil {
		log.Errorf("initial goals load: %s", err)
	}
	log.Infof("goals loaded: %d active, %d archived", len(store.ActiveGoals()), len(store.ArchivedGoals()))

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	receivedSig := <-chOsInterrupt

	log.Warnf("signal [%s] received, shutting down", receivedSig)
	metricsManager.GaugeLifeSignal.Set(0)
}
