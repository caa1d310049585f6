package history

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
)

const collection = "predictions"

// FirestoreStore keeps one document per entry, keyed by entry id.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(ctx context.Context, projectID string) (*FirestoreStore, error) {
	if projectID == "" {
		return nil, errors.New("firestore project id is required")
	}
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) Record(ctx context.Context, e Entry) error {
	_, err := s.client.Collection(collection).Doc(e.ID).Set(ctx, e)
	return err
}

func (s *FirestoreStore) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	docs, err := s.client.Collection(collection).
		OrderBy("created_at", firestore.Desc).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(docs))
	for _, doc := range docs {
		var e Entry
		if err := doc.DataTo(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
