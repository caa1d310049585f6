package history

import (
	"context"
	"database/sql"
)

const schema = `CREATE TABLE IF NOT EXISTS predictions (
	id TEXT PRIMARY KEY,
	track_id TEXT NOT NULL,
	track_name TEXT NOT NULL,
	artist_name TEXT NOT NULL,
	score DOUBLE PRECISION NOT NULL,
	monthly_listeners DOUBLE PRECISION NOT NULL,
	monthly_revenue DOUBLE PRECISION NOT NULL,
	promising BOOLEAN NOT NULL,
	created_at TIMESTAMP NOT NULL
)`

// SQLStore keeps entries in a postgres or sqlite table. Queries use $n
// placeholders, which both drivers accept.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore creates the predictions table if needed.
func NewSQLStore(ctx context.Context, db *sql.DB) (*SQLStore, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Record(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO predictions
			(id, track_id, track_name, artist_name, score, monthly_listeners, monthly_revenue, promising, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.TrackID, e.TrackName, e.ArtistName, e.Score,
		e.MonthlyListeners, e.MonthlyRevenue, e.Promising, e.CreatedAt,
	)
	return err
}

func (s *SQLStore) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, track_id, track_name, artist_name, score, monthly_listeners, monthly_revenue, promising, created_at
			FROM predictions ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.TrackID, &e.TrackName, &e.ArtistName, &e.Score,
			&e.MonthlyListeners, &e.MonthlyRevenue, &e.Promising, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
