package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PurchaseRecordRepo interface {
	SaveRecord(ctx context.Context, record *PurchaseRecord) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*PurchaseRecord, error)
}

type purchaseRecordRepoImpl struct {
	col *mongo.Collection
}

func NewPurchaseRecordRepo(db *mongo.Database) PurchaseRecordRepo {
	return &purchaseRecordRepoImpl{
		col: db.Collection("purchase_journal"),
	}
}

// SaveRecord appends one journal entry. Duplicate event ids are dropped
// so replayed Kafka messages stay idempotent.
func (s *purchaseRecordRepoImpl) SaveRecord(ctx context.Context, record *PurchaseRecord) error {
	record.RecordedAt = time.Now()

	filter := bson.M{"event_id": record.EventID}
	update := bson.M{"$setOnInsert": record}

	_, err := s.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (s *purchaseRecordRepoImpl) ListByUser(ctx context.Context, userID string, limit int) ([]*PurchaseRecord, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "purchased_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	records := make([]*PurchaseRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
