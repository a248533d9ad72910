package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/redblock/internal/core"
)

// Run is one finished round in the history.
type Run struct {
	ID         int64
	RunID      string // uuid
	GameID     string
	Outcome    core.Outcome
	Score      int
	Seed       int64
	PathLength int
	Hazards    int
	ElapsedMs  int64
	CreatedAt  time.Time
}

// RunFromSummary builds a history record for a finished round.
func RunFromSummary(gameID string, s core.RunSummary) Run {
	return Run{
		GameID:     gameID,
		Outcome:    s.Outcome,
		Score:      s.Score,
		Seed:       s.Seed,
		PathLength: s.PathLength,
		Hazards:    s.Hazards,
		ElapsedMs:  s.ElapsedMs,
	}
}

// SaveRun records a finished round. An empty RunID gets a fresh uuid.
// Returns the run ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, game_id, outcome, score, seed, path_length, hazards, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID,
		r.GameID,
		string(r.Outcome),
		r.Score,
		r.Seed,
		r.PathLength,
		r.Hazards,
		r.ElapsedMs,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.RunID, nil
}

const runColumns = `id, run_id, game_id, outcome, score, seed, path_length, hazards, elapsed_ms, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var outcome string
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.RunID,
		&r.GameID,
		&outcome,
		&r.Score,
		&r.Seed,
		&r.PathLength,
		&r.Hazards,
		&r.ElapsedMs,
		&createdAt,
	)
	if err != nil {
		return Run{}, err
	}
	r.Outcome = core.Outcome(outcome)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RunByID retrieves a run by its uuid. Returns nil if it does not exist.
func (s *Store) RunByID(runID string) (*Run, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the most recent runs of a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RecordRound stores a finished round: always in the run history, and in
// the high scores when it scored. Returns the run ID.
func (s *Store) RecordRound(gameID string, summary core.RunSummary) (string, error) {
	runID, err := s.SaveRun(RunFromSummary(gameID, summary))
	if err != nil {
		return "", err
	}
	if summary.Score > 0 {
		if _, err := s.SaveScore(gameID, summary.Score); err != nil {
			return runID, err
		}
	}
	return runID, nil
}
