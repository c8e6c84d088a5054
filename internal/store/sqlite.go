package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/edvart/padel-americano/internal/scheduler"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS rounds (
			seq INTEGER PRIMARY KEY,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS matches (
			round_seq INTEGER NOT NULL REFERENCES rounds(seq) ON DELETE CASCADE,
			court INTEGER NOT NULL,
			team_a1 TEXT NOT NULL REFERENCES players(id),
			team_a2 TEXT NOT NULL REFERENCES players(id),
			team_b1 TEXT NOT NULL REFERENCES players(id),
			team_b2 TEXT NOT NULL REFERENCES players(id),
			score_a INTEGER,
			score_b INTEGER,
			PRIMARY KEY (round_seq, court)
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreatePlayer inserts a new roster player.
func (s *SQLiteStore) CreatePlayer(ctx context.Context, player scheduler.Player) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO players (id, name) VALUES (?, ?)`,
		player.ID, player.Name)
	return err
}

// RenamePlayer updates a player's display name.
func (s *SQLiteStore) RenamePlayer(ctx context.Context, playerID, name string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE players SET name = ? WHERE id = ?`, name, playerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("player %s not found", playerID)
	}
	return nil
}

// DeletePlayer removes a player. Fails if the player is referenced by a
// saved match.
func (s *SQLiteStore) DeletePlayer(ctx context.Context, playerID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, playerID)
	return err
}

// ListPlayers returns the roster in insertion order.
func (s *SQLiteStore) ListPlayers(ctx context.Context) ([]scheduler.Player, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name FROM players ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []scheduler.Player
	for rows.Next() {
		var p scheduler.Player
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// SaveRound persists a completed round with all its matches and scores in one
// transaction.
func (s *SQLiteStore) SaveRound(ctx context.Context, seq int, round scheduler.Round) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO rounds (seq) VALUES (?)`, seq); err != nil {
		return fmt.Errorf("failed to insert round %d: %w", seq, err)
	}

	for _, m := range round.Matches {
		var scoreA, scoreB *int
		if score, ok := round.Scores[m.Court]; ok {
			scoreA, scoreB = &score.TeamA, &score.TeamB
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO matches (round_seq, court, team_a1, team_a2, team_b1, team_b2, score_a, score_b)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			seq, m.Court,
			m.TeamA[0].ID, m.TeamA[1].ID, m.TeamB[0].ID, m.TeamB[1].ID,
			scoreA, scoreB)
		if err != nil {
			return fmt.Errorf("failed to insert match on court %d: %w", m.Court, err)
		}
	}

	return tx.Commit()
}

// DeleteRound removes a round and its matches.
func (s *SQLiteStore) DeleteRound(ctx context.Context, seq int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM rounds WHERE seq = ?`, seq)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("round %d not found", seq)
	}
	return nil
}

// ListRounds returns all saved rounds ordered oldest first, with player names
// resolved against the current roster.
func (s *SQLiteStore) ListRounds(ctx context.Context) ([]scheduler.Round, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.round_seq, m.court,
			m.team_a1, pa1.name, m.team_a2, pa2.name,
			m.team_b1, pb1.name, m.team_b2, pb2.name,
			m.score_a, m.score_b
		FROM matches m
		JOIN players pa1 ON m.team_a1 = pa1.id
		JOIN players pa2 ON m.team_a2 = pa2.id
		JOIN players pb1 ON m.team_b1 = pb1.id
		JOIN players pb2 ON m.team_b2 = pb2.id
		ORDER BY m.round_seq, m.court`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []scheduler.Round
	currentSeq := -1
	for rows.Next() {
		var seq int
		var m scheduler.Match
		var scoreA, scoreB sql.NullInt64
		err := rows.Scan(&seq, &m.Court,
			&m.TeamA[0].ID, &m.TeamA[0].Name, &m.TeamA[1].ID, &m.TeamA[1].Name,
			&m.TeamB[0].ID, &m.TeamB[0].Name, &m.TeamB[1].ID, &m.TeamB[1].Name,
			&scoreA, &scoreB)
		if err != nil {
			return nil, err
		}

		if seq != currentSeq {
			rounds = append(rounds, scheduler.Round{Scores: make(map[int]scheduler.Score)})
			currentSeq = seq
		}
		round := &rounds[len(rounds)-1]
		round.Matches = append(round.Matches, m)
		if scoreA.Valid && scoreB.Valid {
			round.Scores[m.Court] = scheduler.Score{TeamA: int(scoreA.Int64), TeamB: int(scoreB.Int64)}
		}
	}
	return rounds, rows.Err()
}

const courtsKey = "courts"

// GetCourts returns the configured court count, or 0 if never set.
func (s *SQLiteStore) GetCourts(ctx context.Context) (int, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, courtsKey).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}

// SetCourts stores the configured court count.
func (s *SQLiteStore) SetCourts(ctx context.Context, courts int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		courtsKey, strconv.Itoa(courts))
	return err
}
