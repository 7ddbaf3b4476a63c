package history

import "github.com/Ashy333/play-21-alone/internal/game"

// Memory is an in-memory recorder with the same event-driven shape as the
// Ledger, for tests and hosts that don't want a database on disk.
type Memory struct {
	rounds []Round
}

// NewMemory creates an empty in-memory recorder.
func NewMemory() *Memory {
	return &Memory{}
}

// OnEvent records round endings; all other events are ignored.
func (m *Memory) OnEvent(event game.GameEvent) {
	end, ok := event.(game.RoundEndEvent)
	if !ok {
		return
	}
	m.rounds = append(m.rounds, Round{
		PlayedAt:    end.Timestamp(),
		Bet:         end.Bet,
		Payout:      end.Payout,
		Result:      end.Result.String(),
		Blackjack:   end.PlayerBlackjack,
		PlayerHand:  end.Player.String(),
		DealerHand:  end.Dealer.String(),
		PlayerValue: end.Player.Value,
		DealerValue: end.Dealer.Value,
		ChipsAfter:  end.Chips,
	})
}

// Rounds returns the recorded rounds in play order.
func (m *Memory) Rounds() []Round {
	out := make([]Round, len(m.rounds))
	copy(out, m.rounds)
	return out
}
