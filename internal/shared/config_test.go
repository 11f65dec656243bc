package shared

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_ADDR", "MYSQL_DSN", "REVIEWS_PATH", "EVAL_TEST_SIZE", "EVAL_SEED", "CACHE_TTL_SECONDS"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.HTTPAddr != ":8080" || c.ReviewsPath != "reviews.json" || c.ProgramsPath != "programs.csv" || c.DescriptionsPath != "data2.csv" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.EvalTestSize != 0.2 || c.EvalSeed != 42 {
		t.Fatalf("eval defaults: %v %v", c.EvalTestSize, c.EvalSeed)
	}
	if c.CacheTTL != 900*time.Second {
		t.Fatalf("ttl: %v", c.CacheTTL)
	}
	if c.MySQLDSN != "" {
		t.Fatalf("dsn should default empty, got %q", c.MySQLDSN)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("REVIEWS_PATH", "/data/r.json")
	t.Setenv("INGEST_WORKERS", "0")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("EVAL_TEST_SIZE", "1.5")
	t.Setenv("EVAL_SEED", "7")
	t.Setenv("REDIS_DB", "not-a-number")

	c := Load()
	if c.ReviewsPath != "/data/r.json" {
		t.Fatalf("reviews path: %q", c.ReviewsPath)
	}
	if c.Workers != 1 {
		t.Fatalf("workers should be clamped to 1, got %d", c.Workers)
	}
	if c.RateRPS != 2.5 {
		t.Fatalf("rps: %v", c.RateRPS)
	}
	if c.EvalTestSize != 0.2 || c.EvalSeed != 7 {
		t.Fatalf("eval: %v %v", c.EvalTestSize, c.EvalSeed)
	}
	if c.RedisDB != 0 {
		t.Fatalf("bad int should fall back to default, got %d", c.RedisDB)
	}
}
