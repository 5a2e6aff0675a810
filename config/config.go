package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/luca-patrignani/spidertaire/domain/spider"
)

// Config holds the settings of a spider host.
type Config struct {
	Difficulty spider.Difficulty
	LogLevel   slog.Level
	Listen     string  // websocket host address, empty to disable
	Seed       *uint64 // nil shuffles with fresh entropy
}

// Load reads the configuration from the environment, then lets command line
// flags override it.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("spider", flag.ContinueOnError)
	difficulty := fs.String("difficulty", envOr("SPIDER_DIFFICULTY", "easy"), "easy, medium or hard")
	logLevel := fs.String("log-level", envOr("SPIDER_LOG_LEVEL", "info"), "debug, info, warn or error")
	listen := fs.String("listen", os.Getenv("SPIDER_LISTEN"), "serve the game over websocket on this address")
	seed := fs.String("seed", os.Getenv("SPIDER_SEED"), "shuffle seed for reproducible games")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	c := Config{Listen: *listen}

	d, err := spider.ParseDifficulty(*difficulty)
	if err != nil {
		return Config{}, fmt.Errorf("invalid difficulty (-difficulty/SPIDER_DIFFICULTY): %w", err)
	}
	c.Difficulty = d

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if *seed != "" {
		s, err := strconv.ParseUint(*seed, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid seed (-seed/SPIDER_SEED) %q: %w", *seed, err)
		}
		c.Seed = &s
	}

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level (-log-level/SPIDER_LOG_LEVEL) %q", s)
	}
}
