package arena

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Musaddiq123m/Connect4-AI/internal/domain"
	"github.com/Musaddiq123m/Connect4-AI/internal/service/bot"
	"github.com/Musaddiq123m/Connect4-AI/pkg/uid"
)

// Contender describes one bot configuration.
type Contender struct {
	Name       string
	Difficulty bot.Difficulty
	Depth      int
}

type Config struct {
	Rows         int
	Columns      int
	Games        int
	Workers      int
	OpeningPlies int
	Seed         int64
	A            Contender
	B            Contender
}

// GameResult is one finished arena game. A always plays Player1 and B
// Player2; AStarts alternates between games.
type GameResult struct {
	MatchID string
	Index   int
	AStarts bool
	Opening []int
	Outcome domain.Outcome
	Moves   int
}

type Summary struct {
	Games    int
	WinsA    int
	WinsB    int
	Draws    int
	AvgMoves float64
	RatingA  float64
	RatingB  float64
	Elapsed  time.Duration
	Results  []GameResult
}

// Run plays cfg.Games independent games with at most cfg.Workers running at
// once. Every game owns its board and bots.
func Run(ctx context.Context, cfg Config) (*Summary, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	start := time.Now()
	results := make([]GameResult, cfg.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := 0; i < cfg.Games; i++ {
		i := i
		g.Go(func() error {
			res, err := PlayGame(ctx, cfg, i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := summarize(results)
	s.Elapsed = time.Since(start)
	log.Info().Str("component", "arena").Int("games", s.Games).
		Int("wins_a", s.WinsA).Int("wins_b", s.WinsB).Int("draws", s.Draws).
		Float64("rating_a", s.RatingA).Float64("rating_b", s.RatingB).
		Str("a", cfg.A.Name).Str("b", cfg.B.Name).
		Dur("elapsed", s.Elapsed).Msg("arena-finished")
	return s, nil
}

// PlayGame plays game index of the arena to the end.
func PlayGame(ctx context.Context, cfg Config, index int) (GameResult, error) {
	aStarts := index%2 == 0
	starter := domain.Player1
	if !aStarts {
		starter = domain.Player2
	}

	game, err := domain.NewGame(cfg.Rows, cfg.Columns, starter)
	if err != nil {
		return GameResult{}, err
	}

	seed := cfg.Seed + int64(index)
	bots := map[domain.PlayerID]*bot.Bot{
		domain.Player1: bot.NewBot(domain.Player1, cfg.A.Difficulty, cfg.A.Depth).WithSeed(seed),
		domain.Player2: bot.NewBot(domain.Player2, cfg.B.Difficulty, cfg.B.Depth).WithSeed(seed + 1),
	}

	res := GameResult{
		MatchID: uid.GenerateMatchID(index),
		Index:   index,
		AStarts: aStarts,
	}

	rng := rand.New(rand.NewSource(seed))
	for ply := 0; ply < cfg.OpeningPlies && !game.IsFinished(); ply++ {
		moves := game.Board.ValidMoves()
		col := moves[rng.Intn(len(moves))]
		if _, err := game.MakeMove(game.CurrentPlayer, col); err != nil {
			return GameResult{}, err
		}
		res.Opening = append(res.Opening, col)
	}

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		col := bots[game.CurrentPlayer].ChooseMove(game.Board)
		if col == bot.NoMove {
			return GameResult{}, fmt.Errorf("no move on an unfinished board:\n%s", game.Board)
		}
		if _, err := game.MakeMove(game.CurrentPlayer, col); err != nil {
			return GameResult{}, err
		}
	}

	res.Outcome = game.Outcome()
	res.Moves = game.MoveCount

	log.Debug().Str("component", "arena").Str("match", res.MatchID).
		Bool("a_starts", aStarts).Ints("opening", res.Opening).
		Str("outcome", res.Outcome.String()).Int("moves", res.Moves).Msg("game-finished")
	return res, nil
}

func summarize(results []GameResult) *Summary {
	s := &Summary{
		Games:   len(results),
		RatingA: domain.InitialRating,
		RatingB: domain.InitialRating,
		Results: results,
	}
	totalMoves := 0
	for _, r := range results {
		switch r.Outcome {
		case domain.WinPlayer1:
			s.WinsA++
		case domain.WinPlayer2:
			s.WinsB++
		case domain.Draw:
			s.Draws++
		}
		totalMoves += r.Moves
		s.RatingA, s.RatingB = domain.UpdateElo(s.RatingA, s.RatingB, domain.GameScore(r.Outcome, domain.Player1))
	}
	if len(results) > 0 {
		s.AvgMoves = float64(totalMoves) / float64(len(results))
	}
	return s
}
