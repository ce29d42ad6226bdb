package mongostore

import (
	"context"
	"fmt"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
	Counters   *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Database) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionPatients),
		Counters:   db.Collection(constvars.MongoCollectionCounters),
	}
}

func (repo *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	seq, err := nextSequence(ctx, repo.Counters, sequencePatients)
	if err != nil {
		return "", err
	}

	record := *patient
	record.ID = fmt.Sprintf("P%04d", seq)
	_, err = repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return record.ID, nil
}

func (repo *PatientMongoRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := repo.Collection.FindOne(ctx, bson.M{"_id": patientID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (repo *PatientMongoRepository) FindAllPatients(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"registeredAt": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &patients)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

func (repo *PatientMongoRepository) UpdatePatientStatus(ctx context.Context, patientID string, status models.PatientStatus) error {
	result, err := repo.Collection.UpdateOne(ctx,
		bson.M{"_id": patientID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrPatientNotFound(fmt.Errorf("patient %s", patientID))
	}
	return nil
}
