package main

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"uni_advisor/internal/adapters/observability"
	redisad "uni_advisor/internal/adapters/redis"
	"uni_advisor/internal/app"
	"uni_advisor/internal/catalog"
	"uni_advisor/internal/shared"
	mysqlrepo "uni_advisor/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required for ingestion")
	}

	log.Info().
		Str("programs", cfg.ProgramsPath).
		Int("workers", cfg.Workers).
		Int("batch", cfg.BatchSize).
		Msg("ingestor starting")

	programs, err := catalog.LoadPrograms(cfg.ProgramsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load programs failed")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ing := app.NewCatalogIngestionService(repo, cache)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var (
		wg     sync.WaitGroup
		failed atomic.Int64
	)

	for start := 0; start < len(programs); start += cfg.BatchSize {
		end := min(start+cfg.BatchSize, len(programs))

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			defer sem.Release(1)

			if err := ing.IngestBatch(ctx, programs[from:to]); err != nil {
				failed.Add(int64(to - from))
				log.Warn().Int("from", from).Int("to", to).Err(err).Msg("ingest failed")
				return
			}
			log.Info().Int("from", from).Int("to", to).Msg("ingest ok")
		}(start, end)
	}

	wg.Wait()
	log.Info().
		Int("programs", len(programs)).
		Int64("failed", failed.Load()).
		Msg("ingestion completed")
	if failed.Load() > 0 {
		log.Fatal().Msg("some batches failed")
	}
}
