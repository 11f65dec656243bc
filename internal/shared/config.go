package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	ReviewsPath      string
	ProgramsPath     string
	DescriptionsPath string

	Workers   int
	BatchSize int
	CacheTTL  time.Duration

	RateRPS   float64
	RateBurst int

	EvalTestSize float64
	EvalSeed     int64
}

// Load reads the process environment, after merging an optional .env file
// from the working directory. Variables already set win over the file.
func Load() Config {
	_ = godotenv.Load(".env")

	c := Config{
		AppEnv:           env("APP_ENV", "prod"),
		LogLevel:         env("LOG_LEVEL", "info"),
		HTTPAddr:         env("HTTP_ADDR", ":8080"),
		MetricsAddr:      env("METRICS_ADDR", ""),
		MySQLDSN:         env("MYSQL_DSN", ""),
		RedisAddr:        env("REDIS_ADDR", "localhost:6379"),
		RedisPass:        env("REDIS_PASSWORD", ""),
		RedisDB:          atoi("REDIS_DB", 0),
		ReviewsPath:      env("REVIEWS_PATH", "reviews.json"),
		ProgramsPath:     env("PROGRAMS_PATH", "programs.csv"),
		DescriptionsPath: env("DESCRIPTIONS_PATH", "data2.csv"),
		Workers:          atoi("INGEST_WORKERS", 4),
		BatchSize:        atoi("INGEST_BATCH_SIZE", 200),
		CacheTTL:         time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		RateRPS:          atof("RATE_LIMIT_RPS", 50),
		RateBurst:        atoi("RATE_LIMIT_BURST", 100),
		EvalTestSize:     atof("EVAL_TEST_SIZE", 0.2),
		EvalSeed:         int64(atoi("EVAL_SEED", 42)),
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.BatchSize < 1 {
		c.BatchSize = 1
	}
	if c.EvalTestSize <= 0 || c.EvalTestSize >= 1 {
		log.Warn().Float64("eval_test_size", c.EvalTestSize).Msg("EVAL_TEST_SIZE out of (0,1); using 0.2")
		c.EvalTestSize = 0.2
	}
	if c.MySQLDSN == "" {
		log.Warn().Msg("MYSQL_DSN is empty; catalog search routes disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func atof(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
