package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Musaddiq123m/Connect4-AI/internal/domain"
	"github.com/Musaddiq123m/Connect4-AI/internal/service/bot"
)

type Config struct {
	BoardRows    int
	BoardColumns int
	SearchDepth  int
	Difficulty   bot.Difficulty
	HumanMark    string
	AIMark       string
	HumanFirst   bool
	LogLevel     string
	LogFile      string
	Arena        ArenaConfig
}

// ArenaConfig drives AI-vs-AI matches.
type ArenaConfig struct {
	Games        int
	Workers      int
	OpeningPlies int
	DepthA       int
	DepthB       int
	Seed         int64
}

var AppConfig *Config

func LoadConfig() *Config {
	difficulty, err := bot.ParseDifficulty(GetEnv("BOT_DIFFICULTY", string(bot.DifficultyHard)))
	if err != nil {
		log.Warn().Str("component", "config").Err(err).Msg("using hard difficulty")
		difficulty = bot.DifficultyHard
	}

	depth := GetEnvAsInt("SEARCH_DEPTH", bot.MINIMAX_DEPTH)

	AppConfig = &Config{
		BoardRows:    GetEnvAsInt("BOARD_ROWS", domain.Rows),
		BoardColumns: GetEnvAsInt("BOARD_COLUMNS", domain.Columns),
		SearchDepth:  depth,
		Difficulty:   difficulty,
		HumanMark:    GetEnv("HUMAN_MARK", "Red"),
		AIMark:       GetEnv("AI_MARK", "Yellow"),
		HumanFirst:   GetEnvAsBool("HUMAN_FIRST", true),
		LogLevel:     GetEnv("LOG_LEVEL", "info"),
		LogFile:      GetEnv("LOG_FILE", "connect4.log"),
		Arena: ArenaConfig{
			Games:        GetEnvAsInt("ARENA_GAMES", 20),
			Workers:      GetEnvAsInt("ARENA_WORKERS", 4),
			OpeningPlies: GetEnvAsInt("ARENA_OPENING_PLIES", 2),
			DepthA:       GetEnvAsInt("ARENA_DEPTH_A", depth),
			DepthB:       GetEnvAsInt("ARENA_DEPTH_B", 2),
			Seed:         int64(GetEnvAsInt("ARENA_SEED", 1)),
		},
	}

	return AppConfig
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	if _, err := domain.NewBoard(c.BoardRows, c.BoardColumns); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if c.SearchDepth < 1 {
		return fmt.Errorf("search depth must be positive, got %d", c.SearchDepth)
	}
	if _, err := bot.ParseDifficulty(string(c.Difficulty)); err != nil {
		return err
	}
	if strings.TrimSpace(c.HumanMark) == "" || strings.TrimSpace(c.AIMark) == "" {
		return fmt.Errorf("marks must not be empty")
	}
	if strings.EqualFold(c.HumanMark, c.AIMark) {
		return fmt.Errorf("human and AI marks must differ, both are %q", c.HumanMark)
	}
	if c.Arena.Games < 0 || c.Arena.Workers < 1 || c.Arena.OpeningPlies < 0 {
		return fmt.Errorf("invalid arena settings: %+v", c.Arena)
	}
	if c.Arena.DepthA < 1 || c.Arena.DepthB < 1 {
		return fmt.Errorf("arena depths must be positive: %d, %d", c.Arena.DepthA, c.Arena.DepthB)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("component", "config").Str("key", key).Str("value", valueStr).
			Int("default", defaultValue).Msg("invalid integer, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("component", "config").Str("key", key).Str("value", valueStr).
			Bool("default", defaultValue).Msg("invalid boolean, using default")
		return defaultValue
	}
	return value
}
