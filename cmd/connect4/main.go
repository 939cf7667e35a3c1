package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Musaddiq123m/Connect4-AI/internal/config"
	"github.com/Musaddiq123m/Connect4-AI/internal/logging"
	"github.com/Musaddiq123m/Connect4-AI/internal/service/bot"
	"github.com/Musaddiq123m/Connect4-AI/internal/service/game"
	"github.com/Musaddiq123m/Connect4-AI/internal/transport/tui"
)

func main() {
	envLoaded := true
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			envLoaded = false
		}
	}

	cfg := config.LoadConfig()

	depth := flag.Int("depth", cfg.SearchDepth, "minimax search depth")
	rows := flag.Int("rows", cfg.BoardRows, "board rows")
	cols := flag.Int("cols", cfg.BoardColumns, "board columns")
	difficulty := flag.String("difficulty", string(cfg.Difficulty), "bot difficulty: easy, medium or hard")
	second := flag.Bool("second", !cfg.HumanFirst, "let the AI drop the first disc by default")
	logFile := flag.String("log", cfg.LogFile, "log file, empty disables logging")
	flag.Parse()

	d, err := bot.ParseDifficulty(*difficulty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.SearchDepth = *depth
	cfg.BoardRows = *rows
	cfg.BoardColumns = *cols
	cfg.Difficulty = d
	cfg.HumanFirst = !*second
	cfg.LogFile = *logFile

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(2)
	}

	// the terminal belongs to the UI, so logs only go to the file
	closer, err := logging.Setup(cfg.LogLevel, cfg.LogFile, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	if !envLoaded {
		log.Debug().Str("component", "main").Msg("no .env file found")
	}
	log.Info().Str("component", "main").Int("rows", cfg.BoardRows).Int("cols", cfg.BoardColumns).
		Int("depth", cfg.SearchDepth).Str("difficulty", string(cfg.Difficulty)).Msg("starting")

	if err := tui.Run(game.NewService(cfg)); err != nil {
		log.Error().Str("component", "main").Err(err).Msg("ui exited with error")
		closer.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Info().Str("component", "main").Msg("bye")
}
