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

type DiagnosisMongoRepository struct {
	Collection *mongo.Collection
}

func NewDiagnosisMongoRepository(db *mongo.Database) contracts.DiagnosisRepository {
	return &DiagnosisMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionDiagnoses),
	}
}

func (repo *DiagnosisMongoRepository) CreateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) (string, error) {
	record := *diagnosis
	record.ID = fmt.Sprintf("DIAG%d", time.Now().UnixNano())
	_, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return record.ID, nil
}

func (repo *DiagnosisMongoRepository) FindDiagnosesByPatientID(ctx context.Context, patientID string) ([]models.Diagnosis, error) {
	var diagnoses []models.Diagnosis
	cursor, err := repo.Collection.Find(ctx, bson.M{"patientId": patientID}, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &diagnoses)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return diagnoses, nil
}
