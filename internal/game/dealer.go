package game

// dealerStandsAt is the dealer's stand threshold. The house stands on any
// 17, hard or soft; there is no soft-17 hit rule in this game.
const dealerStandsAt = 17

// DealerShouldHit reports whether the dealer must draw another card.
func DealerShouldHit(h Hand) bool {
	return h.Value < dealerStandsAt
}
