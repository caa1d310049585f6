package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mager/talentfinder/config"
	"github.com/mager/talentfinder/database"
	"github.com/mager/talentfinder/talent"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// DefaultLimit is how many entries Recent returns when asked for none.
const DefaultLimit = 20

// Entry is one recorded evaluation.
type Entry struct {
	ID               string    `json:"id" firestore:"id"`
	TrackID          string    `json:"track_id" firestore:"track_id"`
	TrackName        string    `json:"track_name" firestore:"track_name"`
	ArtistName       string    `json:"artist_name" firestore:"artist_name"`
	Score            float64   `json:"score" firestore:"score"`
	MonthlyListeners float64   `json:"monthly_listeners" firestore:"monthly_listeners"`
	MonthlyRevenue   float64   `json:"monthly_revenue" firestore:"monthly_revenue"`
	Promising        bool      `json:"promising" firestore:"promising"`
	CreatedAt        time.Time `json:"created_at" firestore:"created_at"`
}

// NewEntry stamps a report with a fresh id and the current time.
func NewEntry(r talent.Report) Entry {
	return Entry{
		ID:               uuid.NewString(),
		TrackID:          r.Track.ID,
		TrackName:        r.Track.Name,
		ArtistName:       r.Track.ArtistName,
		Score:            r.Prediction.Score,
		MonthlyListeners: r.Prediction.Revenue.MonthlyListeners,
		MonthlyRevenue:   r.Prediction.Revenue.MonthlyRevenue,
		Promising:        r.Promising,
		CreatedAt:        time.Now().UTC(),
	}
}

// Store is an append-only log of evaluations. Nothing in it feeds back into
// a prediction.
type Store interface {
	Record(ctx context.Context, e Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}

// NopStore drops every entry.
type NopStore struct{}

func (NopStore) Record(context.Context, Entry) error          { return nil }
func (NopStore) Recent(context.Context, int) ([]Entry, error) { return []Entry{}, nil }
func (NopStore) Close() error                                 { return nil }

// Open picks a backend by driver name.
func Open(ctx context.Context, l *zap.SugaredLogger, cfg config.Config) (Store, error) {
	switch cfg.HistoryDriver {
	case "":
		return NopStore{}, nil
	case "postgres", "sqlite3":
		db, err := database.Open(l, cfg.HistoryDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewSQLStore(ctx, db)
	case "firestore":
		return NewFirestoreStore(ctx, cfg.FirestoreProject)
	default:
		return nil, fmt.Errorf("unknown history driver %q", cfg.HistoryDriver)
	}
}

// ProvideStore opens the configured store and closes it on shutdown.
func ProvideStore(lc fx.Lifecycle, l *zap.SugaredLogger, cfg config.Config) (Store, error) {
	s, err := Open(context.Background(), l, cfg)
	if err != nil {
		return nil, err
	}
	l.Infow("History store ready", "driver", cfg.HistoryDriver)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return s.Close()
		},
	})
	return s, nil
}

var Options = ProvideStore
