package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/Musaddiq123m/Connect4-AI/internal/domain"
	"github.com/Musaddiq123m/Connect4-AI/internal/service/game"
)

type phase int

const (
	phaseMenu phase = iota
	phasePlaying
	phaseThinking
	phaseOver
)

// aiMoveMsg carries the AI's column back to the update loop. roundID
// guards against results from a round that was replaced meanwhile.
type aiMoveMsg struct {
	roundID string
	column  int
	err     error
}

type Model struct {
	service *game.Service
	round   *game.Round
	phase   phase
	cursor  int
	notice  string
	styles  styles
}

func New(svc *game.Service) Model {
	return Model{
		service: svc,
		phase:   phaseMenu,
		cursor:  svc.Config.BoardColumns / 2,
		styles:  newStyles(svc.Config.HumanMark, svc.Config.AIMark),
	}
}

// Run blocks until the player quits.
func Run(svc *game.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func thinkCmd(r *game.Round) tea.Cmd {
	id := r.RoundID
	return func() tea.Msg {
		col, err := r.ThinkAI()
		return aiMoveMsg{roundID: id, column: col, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" || key == "q" {
			return m, tea.Quit
		}
		switch m.phase {
		case phaseMenu:
			return m.handleMenuKey(key)
		case phasePlaying:
			return m.handlePlayKey(key)
		case phaseOver:
			return m.handleMenuKey(key)
		}
		// input is ignored while the AI is thinking
		return m, nil

	case aiMoveMsg:
		return m.handleAIMove(msg)
	}
	return m, nil
}

func (m Model) handleMenuKey(key string) (tea.Model, tea.Cmd) {
	var humanFirst bool
	switch key {
	case "f", "left":
		humanFirst = true
	case "s", "right":
		humanFirst = false
	case "enter":
		humanFirst = m.service.Config.HumanFirst
	default:
		return m, nil
	}

	var err error
	if m.round == nil {
		m.round, err = m.service.NewRound(humanFirst)
	} else {
		err = m.round.Rematch(humanFirst)
	}
	if err != nil {
		log.Error().Str("component", "tui").Err(err).Msg("cannot start round")
		m.notice = err.Error()
		return m, nil
	}

	m.notice = ""
	m.cursor = m.round.Game.Board.Columns() / 2
	if humanFirst {
		m.phase = phasePlaying
		return m, nil
	}
	m.phase = phaseThinking
	return m, thinkCmd(m.round)
}

func (m Model) handlePlayKey(key string) (tea.Model, tea.Cmd) {
	cols := m.round.Game.Board.Columns()
	switch key {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "right", "l":
		if m.cursor < cols-1 {
			m.cursor++
		}
		return m, nil
	case "enter", " ", "space":
		return m.drop(m.cursor)
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= cols {
		m.cursor = n - 1
		return m.drop(n - 1)
	}
	return m, nil
}

func (m Model) drop(column int) (tea.Model, tea.Cmd) {
	if _, err := m.round.HumanMove(column); err != nil {
		// a full column is just an ignored click
		if domain.IsIllegalMove(err) {
			m.notice = fmt.Sprintf("Column %d is full", column+1)
			return m, nil
		}
		log.Error().Str("component", "tui").Err(err).Msg("human move rejected")
		m.notice = err.Error()
		return m, nil
	}

	m.notice = ""
	if m.round.IsFinished() {
		m.phase = phaseOver
		return m, nil
	}
	m.phase = phaseThinking
	return m, thinkCmd(m.round)
}

func (m Model) handleAIMove(msg aiMoveMsg) (tea.Model, tea.Cmd) {
	if m.round == nil || msg.roundID != m.round.RoundID || m.phase != phaseThinking {
		return m, nil
	}
	if msg.err != nil {
		log.Error().Str("component", "tui").Err(msg.err).Msg("ai move failed")
		m.notice = msg.err.Error()
		m.phase = phaseOver
		return m, nil
	}
	if _, err := m.round.ApplyAIMove(msg.column); err != nil {
		log.Error().Str("component", "tui").Err(err).Int("column", msg.column).Msg("ai move rejected")
		m.notice = err.Error()
		m.phase = phaseOver
		return m, nil
	}

	if m.round.IsFinished() {
		m.phase = phaseOver
	} else {
		m.phase = phasePlaying
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.title.Render("Connect 4"))
	sb.WriteString("\n\n")

	if m.round == nil {
		sb.WriteString(m.menuText("Press a key to choose who drops the first disc"))
		return sb.String()
	}

	board := m.round.Board()
	sb.WriteString(m.renderCursor(board.Columns()))
	sb.WriteString(m.renderBoard(board))
	sb.WriteString("\n")
	sb.WriteString(m.styles.status.Render(m.round.Message()))
	sb.WriteString("\n")
	if m.notice != "" {
		sb.WriteString(m.styles.notice.Render(m.notice))
		sb.WriteString("\n")
	}

	switch m.phase {
	case phasePlaying:
		sb.WriteString(m.styles.help.Render("←/→ move  enter drop  1-9 drop in column  q quit"))
	case phaseOver:
		sb.WriteString("\n")
		sb.WriteString(m.menuText("Play again?"))
	}
	return sb.String()
}

func (m Model) menuText(prompt string) string {
	return m.styles.menu.Render(fmt.Sprintf("%s\n\n  [f] Play first        [s] Play second\n\n  enter uses the default, q quits", prompt))
}

func (m Model) renderCursor(cols int) string {
	if m.phase != phasePlaying {
		return strings.Repeat("   ", cols) + "\n"
	}
	var sb strings.Builder
	for c := 0; c < cols; c++ {
		if c == m.cursor {
			sb.WriteString(m.styles.cursor.Render(" ▼ "))
		} else {
			sb.WriteString("   ")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderBoard(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Columns(); c++ {
			switch b.At(r, c) {
			case m.round.Human:
				sb.WriteString(m.styles.human.Render(" ● "))
			case m.round.AI:
				sb.WriteString(m.styles.ai.Render(" ● "))
			default:
				sb.WriteString(m.styles.empty.Render(" · "))
			}
		}
		sb.WriteString("\n")
	}
	for c := 0; c < b.Columns(); c++ {
		sb.WriteString(fmt.Sprintf(" %d ", (c+1)%10))
	}
	sb.WriteString("\n")
	return sb.String()
}

type styles struct {
	title  lipgloss.Style
	status lipgloss.Style
	notice lipgloss.Style
	help   lipgloss.Style
	menu   lipgloss.Style
	cursor lipgloss.Style
	human  lipgloss.Style
	ai     lipgloss.Style
	empty  lipgloss.Style
}

var markColors = map[string]lipgloss.Color{
	"red":     lipgloss.Color("9"),
	"green":   lipgloss.Color("10"),
	"yellow":  lipgloss.Color("11"),
	"blue":    lipgloss.Color("12"),
	"magenta": lipgloss.Color("13"),
	"cyan":    lipgloss.Color("14"),
}

func colorFor(mark string, fallback lipgloss.Color) lipgloss.Color {
	if c, ok := markColors[strings.ToLower(mark)]; ok {
		return c
	}
	return fallback
}

func newStyles(humanMark, aiMark string) styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		status: lipgloss.NewStyle().Bold(true),
		notice: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		help:   lipgloss.NewStyle().Faint(true),
		menu:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		cursor: lipgloss.NewStyle().Foreground(colorFor(humanMark, lipgloss.Color("9"))),
		human:  lipgloss.NewStyle().Foreground(colorFor(humanMark, lipgloss.Color("9"))),
		ai:     lipgloss.NewStyle().Foreground(colorFor(aiMark, lipgloss.Color("11"))),
		empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
