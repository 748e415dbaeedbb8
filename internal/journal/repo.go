package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const SchemaSQL = `
CREATE SEQUENCE IF NOT EXISTS transition_ids START 1;

CREATE TABLE IF NOT EXISTS transitions (
  id              BIGINT PRIMARY KEY DEFAULT nextval('transition_ids'),
  seq             BIGINT NOT NULL,
  cause           VARCHAR NOT NULL,
  expanded        BOOLEAN NOT NULL,
  selected_index  INTEGER NOT NULL,
  previous_index  INTEGER NOT NULL,
  item_count      INTEGER NOT NULL,
  angle_step      DOUBLE NOT NULL,
  expansion_ms    BIGINT NOT NULL,
  rotation_ms     BIGINT NOT NULL,
  selection_ms    BIGINT NOT NULL,
  recorded_at     TIMESTAMP NOT NULL
);
`

// Entry is one recorded transition together with the animation timings it
// started.
type Entry struct {
	ID            int64         `json:"id"`
	Seq           uint64        `json:"seq"`
	Cause         string        `json:"cause"`
	Expanded      bool          `json:"expanded"`
	SelectedIndex int           `json:"selected_index"`
	PreviousIndex int           `json:"previous_index"`
	ItemCount     int           `json:"item_count"`
	AngleStep     float64       `json:"angle_step"`
	Expansion     time.Duration `json:"expansion"`
	Rotation      time.Duration `json:"rotation"`
	Selection     time.Duration `json:"selection"`
	RecordedAt    time.Time     `json:"recorded_at"`
}

// CauseCount is the number of entries per transition cause.
type CauseCount struct {
	Cause string `json:"cause"`
	Count int64  `json:"count"`
}

// Repo reads and writes the transitions table.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("migrate journal: %w", err)
	}
	return nil
}

// Insert stores e and returns the generated id.
func (r *Repo) Insert(ctx context.Context, e Entry) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO transitions (
			seq, cause, expanded, selected_index, previous_index, item_count,
			angle_step, expansion_ms, rotation_ms, selection_ms, recorded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		int64(e.Seq), e.Cause, e.Expanded, e.SelectedIndex, e.PreviousIndex, e.ItemCount,
		e.AngleStep, e.Expansion.Milliseconds(), e.Rotation.Milliseconds(), e.Selection.Milliseconds(),
		e.RecordedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert transition: %w", err)
	}
	return id, nil
}

// Recent returns the newest entries first.
func (r *Repo) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 500 {
		limit = 500
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, seq, cause, expanded, selected_index, previous_index, item_count,
		       angle_step, expansion_ms, rotation_ms, selection_ms, recorded_at
		FROM transitions
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query transitions failed: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e                   Entry
			seq                 int64
			expMS, rotMS, selMS int64
		)
		if err := rows.Scan(
			&e.ID, &seq, &e.Cause, &e.Expanded, &e.SelectedIndex, &e.PreviousIndex, &e.ItemCount,
			&e.AngleStep, &expMS, &rotMS, &selMS, &e.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transition failed: %w", err)
		}
		e.Seq = uint64(seq)
		e.Expansion = time.Duration(expMS) * time.Millisecond
		e.Rotation = time.Duration(rotMS) * time.Millisecond
		e.Selection = time.Duration(selMS) * time.Millisecond
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return entries, nil
}

// Stats counts entries per cause, ordered by cause.
func (r *Repo) Stats(ctx context.Context) ([]CauseCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT cause, COUNT(*) FROM transitions GROUP BY cause ORDER BY cause`)
	if err != nil {
		return nil, fmt.Errorf("query stats failed: %w", err)
	}
	defer rows.Close()

	counts := []CauseCount{}
	for rows.Next() {
		var c CauseCount
		if err := rows.Scan(&c.Cause, &c.Count); err != nil {
			return nil, fmt.Errorf("scan stats failed: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// Count returns the total number of entries.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transitions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transitions: %w", err)
	}
	return n, nil
}
