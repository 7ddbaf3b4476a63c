package game

// Result is the resolution of a finished round from the player's
// perspective.
type Result int

const (
	NoResult Result = iota
	Win
	Lose
	Push
)

// String returns the string representation of a result
func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Push:
		return "push"
	default:
		return "none"
	}
}

// Resolve compares two finalized hands. Checks are ordered: busts first,
// then blackjacks, then the plain value comparison, and the first match
// wins. A bust loses even against a dealer hand that would otherwise score
// lower, and blackjack against blackjack is a push regardless of the cards
// behind it.
func Resolve(player, dealer Hand) Result {
	switch {
	case player.IsBust:
		return Lose
	case dealer.IsBust:
		return Win
	case player.IsBlackjack && !dealer.IsBlackjack:
		return Win
	case dealer.IsBlackjack && !player.IsBlackjack:
		return Lose
	case player.IsBlackjack && dealer.IsBlackjack:
		return Push
	case player.Value > dealer.Value:
		return Win
	case player.Value < dealer.Value:
		return Lose
	default:
		return Push
	}
}

// Payout returns the chips credited back for a finished round. A win pays
// 2x the bet, or 3:2 for a natural blackjack (bet*5/2, any half chip from
// an odd bet truncates); a push returns the bet; a loss returns nothing
// since the bet was deducted at placement.
func Payout(result Result, bet int, playerBlackjack bool) int {
	switch result {
	case Win:
		if playerBlackjack {
			return bet * 5 / 2
		}
		return bet * 2
	case Push:
		return bet
	default:
		return 0
	}
}
