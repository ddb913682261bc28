package mongodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace_escrow/internal/domain/entities"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeCollection struct {
	docs []interface{}
	err  error
}

func (f *fakeCollection) InsertOne(ctx context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("expected a deadline")
	}
	if f.err != nil {
		return nil, f.err
	}
	f.docs = append(f.docs, document)
	return &mongo.InsertOneResult{}, nil
}

func TestActivityLogRepository_Record(t *testing.T) {
	at := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)

	t.Run("maps entry to history document", func(t *testing.T) {
		col := &fakeCollection{}
		repo := &ActivityLogRepository{collection: col}
		err := repo.Record(context.Background(), entities.ActivityEntry{
			RelatedID: "o1", RelatedType: "order", OldStatus: "in_progress", NewStatus: "delivered",
			ChangedBy: "s1", Note: "done", Timestamp: at,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(col.docs) != 1 {
			t.Fatalf("expected 1 document, got %d", len(col.docs))
		}
		doc := col.docs[0].(historyStatusDocument)
		if doc.RelatedType != "order" || doc.NewStatus != "delivered" || doc.ChangedBy != "s1" || !doc.ChangedAt.Equal(at) {
			t.Fatalf("unexpected document: %+v", doc)
		}
		if !doc.ID.IsZero() {
			t.Fatalf("id must be left for the driver to fill")
		}
	})

	t.Run("wraps insert error", func(t *testing.T) {
		boom := errors.New("no primary")
		repo := &ActivityLogRepository{collection: &fakeCollection{err: boom}}
		err := repo.Record(context.Background(), entities.ActivityEntry{RelatedID: "n1"})
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped error, got %v", err)
		}
	})
}
