// Package history records finished rounds to a ledger so past sessions can
// be reviewed. It is an audit log, not persistence of the bankroll: nothing
// recorded here feeds back into a new session's chips.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Ashy333/play-21-alone/internal/game"
)

// Round is one finished round as recorded in the ledger.
type Round struct {
	ID          string
	PlayedAt    time.Time
	Bet         int
	Payout      int
	Result      string
	Blackjack   bool
	PlayerHand  string
	DealerHand  string
	PlayerValue int
	DealerValue int
	ChipsAfter  int
}

// Ledger persists finished rounds to SQLite. It implements
// game.EventSubscriber, recording every RoundEndEvent it sees; recording
// failures are logged and never disturb the game.
type Ledger struct {
	db     *sql.DB
	logger *log.Logger
}

// Open opens (creating if needed) the ledger database at path.
func Open(path string, logger *log.Logger) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	l := &Ledger{db: db, logger: logger}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

func (l *Ledger) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			played_at DATETIME NOT NULL,
			bet INTEGER NOT NULL,
			payout INTEGER NOT NULL,
			result TEXT NOT NULL,
			blackjack INTEGER NOT NULL DEFAULT 0,
			player_hand TEXT NOT NULL,
			dealer_hand TEXT NOT NULL,
			player_value INTEGER NOT NULL,
			dealer_value INTEGER NOT NULL,
			chips_after INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_played_at ON rounds(played_at)`,
	}

	for _, migration := range migrations {
		if _, err := l.db.Exec(migration); err != nil {
			return fmt.Errorf("ledger migration failed: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// OnEvent records round endings; all other events are ignored.
func (l *Ledger) OnEvent(event game.GameEvent) {
	end, ok := event.(game.RoundEndEvent)
	if !ok {
		return
	}

	r := Round{
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
	}
	if err := l.Record(r); err != nil {
		l.logger.Error("failed to record round", "error", err)
	}
}

// Record inserts a round, assigning it an id if it has none.
func (l *Ledger) Record(r Round) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	query := `INSERT INTO rounds (
		id, played_at, bet, payout, result, blackjack,
		player_hand, dealer_hand, player_value, dealer_value, chips_after
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := l.db.Exec(query,
		r.ID, r.PlayedAt, r.Bet, r.Payout, r.Result, r.Blackjack,
		r.PlayerHand, r.DealerHand, r.PlayerValue, r.DealerValue, r.ChipsAfter,
	)
	if err != nil {
		return fmt.Errorf("record round: %w", err)
	}
	return nil
}

// Recent returns the most recent n rounds, newest first.
func (l *Ledger) Recent(n int) ([]Round, error) {
	query := `SELECT id, played_at, bet, payout, result, blackjack,
		player_hand, dealer_hand, player_value, dealer_value, chips_after
	FROM rounds ORDER BY played_at DESC, id LIMIT ?`

	rows, err := l.db.Query(query, n)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var out []Round
	for rows.Next() {
		var r Round
		if err := rows.Scan(
			&r.ID, &r.PlayedAt, &r.Bet, &r.Payout, &r.Result, &r.Blackjack,
			&r.PlayerHand, &r.DealerHand, &r.PlayerValue, &r.DealerValue, &r.ChipsAfter,
		); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
