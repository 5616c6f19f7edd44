// Package config loads runtime configuration for the backtest and
// optimize CLIs from environment variables, optionally sourced from a
// .env file.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full set of environment-driven settings shared by the
// backtest and optimize entrypoints.
type Config struct {
	Environment string
	LogLevel    string

	Data struct {
		CandlesDir string
		QuoteDir   string
	}

	Exchange struct {
		TakerFee         float64
		MakerFee         float64
		MarginMultiplier float64
	}

	GA struct {
		PopulationSize int
		Generations    int
		HallOfFameSize int
		Workers        int
		Seed           uint64
		HasSeed        bool
	}

	Monitoring struct {
		PrometheusPort int
		HealthPort     int
	}
}

// LoadEnvFile loads a .env file into the process environment, ignoring a
// missing file (env vars or defaults still apply).
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Load reads Config from the environment, applying defaults for anything
// unset.
func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	cfg.Data.CandlesDir = getEnv("CANDLES_DIR", "data/candles")
	cfg.Data.QuoteDir = getEnv("QUOTE_DIR", "data/quote")

	cfg.Exchange.TakerFee = getEnvFloat("TAKER_FEE", 0.001)
	cfg.Exchange.MakerFee = getEnvFloat("MAKER_FEE", 0.001)
	cfg.Exchange.MarginMultiplier = getEnvFloat("MARGIN_MULTIPLIER", 2.0)

	cfg.GA.PopulationSize = getEnvInt("GA_POPULATION_SIZE", 100)
	cfg.GA.Generations = getEnvInt("GA_GENERATIONS", 50)
	cfg.GA.HallOfFameSize = getEnvInt("GA_HALL_OF_FAME_SIZE", 10)
	cfg.GA.Workers = getEnvInt("GA_WORKERS", 0)
	if val := os.Getenv("GA_SEED"); val != "" {
		if seed, err := strconv.ParseUint(val, 10, 64); err == nil {
			cfg.GA.Seed = seed
			cfg.GA.HasSeed = true
		}
	}

	cfg.Monitoring.PrometheusPort = getEnvInt("PROMETHEUS_PORT", 9090)
	cfg.Monitoring.HealthPort = getEnvInt("HEALTH_PORT", 9091)

	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if floatVal, err := strconv.ParseFloat(val, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			return duration
		}
	}
	return defaultVal
}
