package bot

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Musaddiq123m/Connect4-AI/internal/domain"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"

	mediumDepth = 2
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// ChooseMove runs a fresh search for aiSide and returns the column to play,
// or NoMove when the board has no legal column. It panics if the board
// breaks the gravity invariant.
func ChooseMove(board *domain.Board, aiSide domain.PlayerID, depth int) int {
	return NewBot(aiSide, DifficultyHard, depth).ChooseMove(board)
}

// Bot picks moves for one side over the course of a game. The memo lives
// as long as the bot; call Reset between games.
type Bot struct {
	Side       domain.PlayerID
	Difficulty Difficulty
	Depth      int

	searcher *Searcher
	rng      *rand.Rand
}

func NewBot(side domain.PlayerID, difficulty Difficulty, depth int) *Bot {
	if depth < 1 {
		depth = MINIMAX_DEPTH
	}
	return &Bot{
		Side:       side,
		Difficulty: difficulty,
		Depth:      depth,
		searcher:   NewSearcher(side, NewMemo()),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithSeed makes the easy bot's random fallback reproducible.
func (b *Bot) WithSeed(seed int64) *Bot {
	b.rng = rand.New(rand.NewSource(seed))
	return b
}

// Name is the display name of the bot for its difficulty.
func (b *Bot) Name() string {
	return domain.GetBotName(string(b.Difficulty))
}

// SearchDepth is the horizon used by the minimax difficulties.
func (b *Bot) SearchDepth() int {
	if b.Difficulty == DifficultyMedium {
		return min(mediumDepth, b.Depth)
	}
	return b.Depth
}

func (b *Bot) Reset() {
	b.searcher.Memo().Clear()
}

func (b *Bot) Memo() *Memo {
	return b.searcher.Memo()
}

// ChooseMove selects a column for the bot's side. The board is restored
// before returning.
func (b *Bot) ChooseMove(board *domain.Board) int {
	if err := board.Validate(); err != nil {
		panic(err)
	}

	if b.Difficulty == DifficultyEasy {
		return CalculateBestMoveEasy(board, b.Side, b.rng)
	}

	start := time.Now()
	nodesBefore := b.searcher.Nodes()
	depth := b.SearchDepth()
	col, value := b.searcher.Search(board, true, depth, math.Inf(-1), math.Inf(1))
	hits, misses := b.searcher.Memo().Stats()

	log.Debug().
		Str("component", "bot").
		Str("side", b.Side.String()).
		Str("difficulty", string(b.Difficulty)).
		Int("depth", depth).
		Int("column", col).
		Float64("value", value).
		Int("nodes", b.searcher.Nodes()-nodesBefore).
		Int("memo", b.searcher.Memo().Len()).
		Int("memo_hits", hits).
		Int("memo_misses", misses).
		Dur("elapsed", time.Since(start)).
		Msg("search-done")

	return col
}
