// Package tui renders the blackjack table in the terminal. It is a pure
// observer of the engine: display state is driven by the engine's events,
// and player input is forwarded as engine calls.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Ashy333/play-21-alone/internal/deck"
	"github.com/Ashy333/play-21-alone/internal/game"
)

// eventMsg wraps an engine event for the update loop
type eventMsg struct {
	event game.GameEvent
}

// actionDoneMsg signals that a blocking engine call has returned
type actionDoneMsg struct {
	err error
}

// Model is the Bubble Tea model for the blackjack table.
type Model struct {
	game    *game.Game
	logger  *log.Logger
	presets []int

	// Display state, maintained from events while an engine call is in
	// flight and resynced from Snapshot when it returns. The engine holds
	// its state lock across the dealer's paced draws, so the update loop
	// must never block on Snapshot mid-action.
	snap game.Snapshot

	events    chan game.GameEvent
	keys      keyMap
	help      help.Model
	logView   viewport.Model
	gameLog   []string
	actionErr string
	busy      bool
	quitting  bool
	width     int
	height    int
}

// New creates a TUI model observing the given game.
func New(g *game.Game, presets []int, logger *log.Logger) *Model {
	events := make(chan game.GameEvent, 64)
	g.EventBus().Subscribe(game.SubscriberFunc(func(e game.GameEvent) {
		events <- e
	}))

	vp := viewport.New(72, 6)
	vp.SetContent("")

	return &Model{
		game:    g,
		logger:  logger.WithPrefix("tui"),
		presets: presets,
		snap:    g.Snapshot(),
		events:  events,
		keys:    newKeyMap(),
		help:    help.New(),
		logView: vp,
	}
}

// Init starts listening for engine events.
func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return eventMsg{event: <-m.events}
	}
}

// Update handles messages from Bubble Tea.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = msg.Width - 4
		if msg.Height > 22 {
			m.logView.Height = msg.Height - 18
		} else {
			m.logView.Height = 4
		}
		return m, nil

	case eventMsg:
		m.applyEvent(msg.event)
		return m, m.waitForEvent()

	case actionDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.actionErr = msg.err.Error()
			m.logger.Error("action failed", "error", msg.err)
		}
		m.snap = m.game.Snapshot()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.busy {
		return m, nil
	}
	m.actionErr = ""

	switch m.snap.Phase {
	case game.Betting:
		for i, binding := range []key.Binding{m.keys.Bet1, m.keys.Bet2, m.keys.Bet3, m.keys.Bet4} {
			if i < len(m.presets) && key.Matches(msg, binding) {
				return m.placeBet(m.presets[i])
			}
		}

	case game.PlayerTurn:
		switch {
		case key.Matches(msg, m.keys.Hit):
			if err := m.game.Hit(); err != nil {
				m.actionErr = err.Error()
			}
			m.snap = m.game.Snapshot()
			return m, nil
		case key.Matches(msg, m.keys.Stand):
			m.busy = true
			return m, func() tea.Msg {
				return actionDoneMsg{err: m.game.Stand(context.Background())}
			}
		}

	case game.GameOver:
		if key.Matches(msg, m.keys.NewRound) {
			if err := m.game.NewRound(); err != nil {
				m.actionErr = err.Error()
			}
			m.snap = m.game.Snapshot()
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) placeBet(amount int) (tea.Model, tea.Cmd) {
	if amount > m.snap.Chips {
		m.actionErr = fmt.Sprintf("not enough chips for a %d bet", amount)
		return m, nil
	}
	m.busy = true
	return m, func() tea.Msg {
		return actionDoneMsg{err: m.game.PlaceBet(context.Background(), amount)}
	}
}

// applyEvent folds an engine event into the display state and the log.
func (m *Model) applyEvent(e game.GameEvent) {
	switch ev := e.(type) {
	case game.RoundStartEvent:
		m.snap.Phase = game.Dealing
		m.snap.Dealing = true
		m.snap.Result = game.NoResult
		m.snap.Bet = ev.Bet
		m.snap.Chips = ev.Chips
		m.snap.PlayerHand = game.Evaluate(nil)
		m.snap.DealerHand = game.Evaluate(nil)
		m.appendLog(fmt.Sprintf("Bet %d placed.", ev.Bet))

	case game.CardDealtEvent:
		if ev.To == game.DealerSeat {
			m.snap.DealerHand = ev.Hand
			if len(ev.Hand.Cards) == 2 {
				m.appendLog("Dealer takes a card face down.")
			} else {
				m.appendLog(fmt.Sprintf("Dealer shows %s.", ev.Card))
			}
		} else {
			m.snap.PlayerHand = ev.Hand
			m.appendLog(fmt.Sprintf("You are dealt %s.", ev.Card))
		}

	case game.PlayerTurnEvent:
		m.snap.Phase = game.PlayerTurn
		m.snap.Dealing = false
		m.appendLog(fmt.Sprintf("Your move on %d.", ev.Hand.Value))

	case game.PlayerHitEvent:
		m.snap.PlayerHand = ev.Hand
		m.appendLog(fmt.Sprintf("You draw %s (%d).", ev.Card, ev.Hand.Value))

	case game.PlayerBustEvent:
		m.appendLog("Bust! You went over 21.")

	case game.PlayerStandEvent:
		m.snap.Phase = game.DealerTurn
		m.appendLog(fmt.Sprintf("You stand on %d.", ev.Hand.Value))

	case game.DealerRevealEvent:
		m.snap.Phase = game.DealerTurn
		m.snap.Dealing = false
		m.snap.DealerHand = ev.Hand
		if len(ev.Hand.Cards) >= 2 {
			m.appendLog(fmt.Sprintf("Dealer reveals %s (%d).", ev.Hand.Cards[1], ev.Hand.Value))
		}

	case game.DealerDrawEvent:
		m.snap.DealerHand = ev.Hand
		m.appendLog(fmt.Sprintf("Dealer draws %s (%d).", ev.Card, ev.Hand.Value))

	case game.RoundEndEvent:
		m.snap.Phase = game.GameOver
		m.snap.Result = ev.Result
		m.snap.Chips = ev.Chips
		m.snap.PlayerHand = ev.Player
		m.snap.DealerHand = ev.Dealer
		switch ev.Result {
		case game.Win:
			if ev.PlayerBlackjack {
				m.appendLog(fmt.Sprintf("Blackjack! You win %d chips.", ev.Payout))
			} else {
				m.appendLog(fmt.Sprintf("You win %d chips.", ev.Payout))
			}
		case game.Push:
			m.appendLog("Push. Your bet is returned.")
		case game.Lose:
			m.appendLog("Dealer wins this round.")
		}
	}
}

func (m *Model) appendLog(line string) {
	m.gameLog = append(m.gameLog, line)
	m.logView.SetContent(LogStyle.Render(strings.Join(m.gameLog, "\n")))
	m.logView.GotoBottom()
}

// View renders the table.
func (m *Model) View() string {
	if m.quitting {
		return fmt.Sprintf("Thanks for playing. You leave with %d chips.\n", m.snap.Chips)
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	b.WriteString("\n\n")

	b.WriteString(ChipsStyle.Render(fmt.Sprintf(" Chips: %d", m.snap.Chips)))
	if m.snap.Bet > 0 {
		b.WriteString(fmt.Sprintf("   Bet: %d", m.snap.Bet))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderDealer())
	b.WriteString("\n")
	if banner := m.resultBanner(); banner != "" {
		b.WriteString(" " + banner + "\n")
	}
	b.WriteString(m.renderPlayer())
	b.WriteString("\n")

	b.WriteString(m.renderPrompt())
	b.WriteString("\n")
	if m.actionErr != "" {
		b.WriteString(" " + ErrorStyle.Render(m.actionErr) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.logView.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// holeHidden reports whether the dealer's second card is still face down.
func (m *Model) holeHidden() bool {
	return m.snap.Phase == game.Dealing || m.snap.Phase == game.PlayerTurn
}

func (m *Model) renderDealer() string {
	label := SectionStyle.Render("Dealer")
	hand := m.snap.DealerHand

	if len(hand.Cards) == 0 {
		return fmt.Sprintf(" %s\n", label)
	}

	if m.holeHidden() {
		parts := make([]string, 0, len(hand.Cards))
		for i, c := range hand.Cards {
			if i == 1 {
				parts = append(parts, HiddenCardStyle.Render("##"))
				continue
			}
			parts = append(parts, renderCard(c))
		}
		return fmt.Sprintf(" %s  %s\n", label, strings.Join(parts, " "))
	}

	return fmt.Sprintf(" %s (%d)  %s\n", label, hand.Value, renderHand(hand))
}

func (m *Model) renderPlayer() string {
	label := SectionStyle.Render("You")
	hand := m.snap.PlayerHand
	if len(hand.Cards) == 0 {
		return fmt.Sprintf(" %s\n", label)
	}
	return fmt.Sprintf(" %s (%d)  %s\n", label, hand.Value, renderHand(hand))
}

func (m *Model) renderPrompt() string {
	switch m.snap.Phase {
	case game.Betting:
		parts := make([]string, len(m.presets))
		for i, p := range m.presets {
			parts[i] = fmt.Sprintf("[%d] %d", i+1, p)
		}
		return " " + PromptStyle.Render("Place your bet:  "+strings.Join(parts, "   "))
	case game.PlayerTurn:
		return " " + PromptStyle.Render("[h] hit   [s] stand")
	case game.Dealing, game.DealerTurn:
		return " " + LogStyle.Render("Dealer is playing...")
	case game.GameOver:
		return " " + PromptStyle.Render("[n] new round   [q] quit")
	default:
		return ""
	}
}

func (m *Model) resultBanner() string {
	switch m.snap.Result {
	case game.Win:
		if m.snap.PlayerHand.IsBlackjack {
			return WinBannerStyle.Render("BLACKJACK!")
		}
		return WinBannerStyle.Render("YOU WIN!")
	case game.Lose:
		if m.snap.PlayerHand.IsBust {
			return LoseBannerStyle.Render("BUST!")
		}
		return LoseBannerStyle.Render("DEALER WINS")
	case game.Push:
		return PushBannerStyle.Render("PUSH")
	default:
		return ""
	}
}

func renderHand(h game.Hand) string {
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, " ")
}

func renderCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

var _ tea.Model = (*Model)(nil)

// Run starts the TUI and blocks until the player quits.
func Run(g *game.Game, presets []int, logger *log.Logger) error {
	p := tea.NewProgram(New(g, presets, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
