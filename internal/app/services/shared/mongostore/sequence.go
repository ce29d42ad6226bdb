package mongostore

import (
	"context"
	"medipos-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	sequencePatients = "patients"
	sequenceServices = "services"
	sequenceReceipts = "receipts"
	sequenceUsers    = "users"
)

// Receipt numbers start at 1000. The counter itself starts at zero, so the
// issued number is offset by receiptSeqOffset.
const receiptSeqOffset = 999

type sequenceDocument struct {
	ID    string `bson:"_id"`
	Value int64  `bson:"value"`
}

// nextSequence atomically increments the named counter and returns the new
// value. The counter document is created on first use.
func nextSequence(ctx context.Context, counters *mongo.Collection, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc sequenceDocument
	err := counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, exceptions.ErrMongoDBNextSequence(err)
	}
	return doc.Value, nil
}
