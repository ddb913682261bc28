package mongodb

import (
	"context"
	"fmt"
	"time"

	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultDatabaseName = "marketplace"
	CollectionStatus    = "history_status"

	writeTimeout = 5 * time.Second
)

type historyStatusDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	RelatedID   string             `bson:"related_id"`
	RelatedType string             `bson:"related_type"`
	OldStatus   string             `bson:"old_status"`
	NewStatus   string             `bson:"new_status"`
	ChangedBy   string             `bson:"changed_by_user_id"`
	Note        string             `bson:"note,omitempty"`
	ChangedAt   time.Time          `bson:"changed_at"`
}

type inserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// ActivityLogRepository appends status changes to the history_status
// collection. One document per change; nothing is ever updated.
type ActivityLogRepository struct {
	collection inserter
}

var _ interfaces.IActivityLog = (*ActivityLogRepository)(nil)

func NewActivityLogRepository(client *mongo.Client, database string) *ActivityLogRepository {
	if database == "" {
		database = DefaultDatabaseName
	}
	return &ActivityLogRepository{collection: client.Database(database).Collection(CollectionStatus)}
}

func (r *ActivityLogRepository) Record(ctx context.Context, entry entities.ActivityEntry) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	doc := historyStatusDocument{
		RelatedID:   entry.RelatedID,
		RelatedType: entry.RelatedType,
		OldStatus:   entry.OldStatus,
		NewStatus:   entry.NewStatus,
		ChangedBy:   entry.ChangedBy,
		Note:        entry.Note,
		ChangedAt:   entry.Timestamp.UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert history status: %w", err)
	}
	return nil
}
