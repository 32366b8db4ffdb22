package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// End reasons recorded with a replay.
const (
	EndLost = "lost"
	EndQuit = "quit"
)

// Replay is one recorded run. Seed, TickRate, ConfigYAML and Inputs are
// enough to re-simulate it; the remaining fields record how it ended.
type Replay struct {
	ID         int64
	GameID     string
	Seed       int64
	TickRate   int
	ConfigYAML string
	Frames     uint64
	Ticks      uint64
	Score      int
	Length     int
	EndReason  string
	Player     string
	CreatedAt  time.Time
	Inputs     []Input // empty in list results
}

// Input is one action applied on a given frame. Seq orders actions that
// share a frame.
type Input struct {
	Frame  uint64
	Seq    int
	Action string
}

// SaveReplay stores a replay and its inputs in one transaction.
// Returns the ID of the inserted record.
func (s *Store) SaveReplay(ctx context.Context, r Replay) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.ExecContext(ctx,
		`INSERT INTO replays
		 (game_id, seed, tick_rate, config_yaml, frames, ticks, score, length, end_reason, player)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Seed, r.TickRate, r.ConfigYAML, r.Frames, r.Ticks, r.Score, r.Length, r.EndReason, r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if len(r.Inputs) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO replay_inputs (replay_id, frame, seq, action) VALUES (?, ?, ?, ?)")
		if err != nil {
			return 0, fmt.Errorf("storage: cannot prepare input insert: %w", err)
		}
		defer stmt.Close()

		for _, in := range r.Inputs {
			if _, err := stmt.ExecContext(ctx, id, in.Frame, in.Seq, in.Action); err != nil {
				return 0, fmt.Errorf("storage: cannot save replay input: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return id, nil
}

const replayColumns = `id, game_id, seed, tick_rate, config_yaml, frames, ticks, score, length, end_reason, player, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReplay(row rowScanner) (Replay, error) {
	var r Replay
	var createdAt any
	err := row.Scan(&r.ID, &r.GameID, &r.Seed, &r.TickRate, &r.ConfigYAML, &r.Frames, &r.Ticks,
		&r.Score, &r.Length, &r.EndReason, &r.Player, &createdAt)
	r.CreatedAt = parseTime(createdAt)
	return r, err
}

// Replay loads a replay with its inputs ordered by frame and seq.
func (s *Store) Replay(ctx context.Context, id int64) (*Replay, error) {
	r, err := scanReplay(s.db.QueryRowContext(ctx,
		`SELECT `+replayColumns+` FROM replays WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrReplayNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT frame, seq, action FROM replay_inputs WHERE replay_id = ? ORDER BY frame, seq`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay inputs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var in Input
		if err := rows.Scan(&in.Frame, &in.Seq, &in.Action); err != nil {
			return nil, fmt.Errorf("storage: cannot scan input row: %w", err)
		}
		r.Inputs = append(r.Inputs, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &r, nil
}

// ListReplays returns the most recent replays without inputs. An empty
// gameID lists every preset.
func (s *Store) ListReplays(ctx context.Context, gameID string, limit int) ([]Replay, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+replayColumns+`
		 FROM replays
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var replays []Replay
	for rows.Next() {
		r, err := scanReplay(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		replays = append(replays, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return replays, nil
}

// DeleteReplay removes a replay and its inputs.
func (s *Store) DeleteReplay(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrReplayNotFound, id)
	}
	return nil
}
