package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Musaddiq123m/Connect4-AI/internal/config"
	"github.com/Musaddiq123m/Connect4-AI/internal/domain"
	"github.com/Musaddiq123m/Connect4-AI/internal/logging"
	"github.com/Musaddiq123m/Connect4-AI/internal/service/arena"
	"github.com/Musaddiq123m/Connect4-AI/internal/service/bot"
)

func main() {
	if err := godotenv.Load(); err != nil {
		_ = godotenv.Load("../.env")
	}
	cfg := config.LoadConfig()

	games := flag.Int("games", cfg.Arena.Games, "number of games")
	workers := flag.Int("workers", cfg.Arena.Workers, "games played concurrently")
	opening := flag.Int("opening", cfg.Arena.OpeningPlies, "random opening plies per game")
	depthA := flag.Int("depth-a", cfg.Arena.DepthA, "search depth of bot A")
	depthB := flag.Int("depth-b", cfg.Arena.DepthB, "search depth of bot B")
	diffA := flag.String("difficulty-a", string(bot.DifficultyHard), "difficulty of bot A")
	diffB := flag.String("difficulty-b", string(bot.DifficultyHard), "difficulty of bot B")
	seed := flag.Int64("seed", cfg.Arena.Seed, "random seed")
	verbose := flag.Bool("v", false, "log every game")
	flag.Parse()

	cfg.Arena.Games = *games
	cfg.Arena.Workers = *workers
	cfg.Arena.OpeningPlies = *opening
	cfg.Arena.DepthA = *depthA
	cfg.Arena.DepthB = *depthB
	cfg.Arena.Seed = *seed
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(2)
	}

	a, err := bot.ParseDifficulty(*diffA)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	b, err := bot.ParseDifficulty(*diffB)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	closer, err := logging.Setup(cfg.LogLevel, "", true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ca := arena.Contender{Name: contenderName(a, *depthA), Difficulty: a, Depth: *depthA}
	cb := arena.Contender{Name: contenderName(b, *depthB), Difficulty: b, Depth: *depthB}
	s, err := arena.Run(ctx, arena.Config{
		Rows:         cfg.BoardRows,
		Columns:      cfg.BoardColumns,
		Games:        cfg.Arena.Games,
		Workers:      cfg.Arena.Workers,
		OpeningPlies: cfg.Arena.OpeningPlies,
		Seed:         cfg.Arena.Seed,
		A:            ca,
		B:            cb,
	})
	if err != nil {
		log.Error().Str("component", "arena").Err(err).Msg("arena aborted")
		stop()
		os.Exit(1)
	}

	fmt.Printf("A = %s\nB = %s\n\n", ca.Name, cb.Name)
	fmt.Printf("games  %d\nA wins %d\nB wins %d\ndraws  %d\n", s.Games, s.WinsA, s.WinsB, s.Draws)
	fmt.Printf("avg moves %.1f\nelo A %.0f  elo B %.0f\nelapsed %s\n", s.AvgMoves, s.RatingA, s.RatingB, s.Elapsed)
}

func contenderName(d bot.Difficulty, depth int) string {
	return fmt.Sprintf("%s (%s, depth %d)", domain.GetBotName(string(d)), d, depth)
}
