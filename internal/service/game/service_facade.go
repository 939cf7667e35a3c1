package game

import (
	"github.com/Musaddiq123m/Connect4-AI/internal/config"
	"github.com/Musaddiq123m/Connect4-AI/internal/domain"
	"github.com/Musaddiq123m/Connect4-AI/internal/service/bot"
)

// Service is the entry point for game logic (facade)
type Service struct {
	Config *config.Config
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		Config: cfg,
	}
}

// NewRound starts a round with a bot of its own, so no memo is shared
// between rounds.
func (s *Service) NewRound(humanFirst bool) (*Round, error) {
	c := s.Config
	b := bot.NewBot(domain.Player2, c.Difficulty, c.SearchDepth)
	return NewRound(c.BoardRows, c.BoardColumns, humanFirst, c.HumanMark, c.AIMark, b)
}
