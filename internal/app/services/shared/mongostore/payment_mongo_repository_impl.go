package mongostore

import (
	"context"
	"fmt"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentMongoRepository struct {
	Collection *mongo.Collection
	Counters   *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Database) contracts.PaymentRepository {
	return &PaymentMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionPayments),
		Counters:   db.Collection(constvars.MongoCollectionCounters),
	}
}

func (repo *PaymentMongoRepository) CreatePayment(ctx context.Context, payment *models.Payment) (string, string, error) {
	seq, err := nextSequence(ctx, repo.Counters, sequenceReceipts)
	if err != nil {
		return "", "", err
	}

	record := *payment
	record.ID = fmt.Sprintf("PAY%d", time.Now().UnixNano())
	record.ReceiptNumber = fmt.Sprintf("RCP%d", seq+receiptSeqOffset)
	_, err = repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return record.ID, record.ReceiptNumber, nil
}

func (repo *PaymentMongoRepository) FindPaymentsByPatientID(ctx context.Context, patientID string) ([]models.Payment, error) {
	return repo.findPayments(ctx, bson.M{"patientId": patientID})
}

func (repo *PaymentMongoRepository) FindAllPayments(ctx context.Context) ([]models.Payment, error) {
	return repo.findPayments(ctx, bson.M{})
}

func (repo *PaymentMongoRepository) findPayments(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	var payments []models.Payment
	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"paidAt": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &payments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return payments, nil
}
