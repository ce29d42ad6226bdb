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

type ServiceMongoRepository struct {
	Collection *mongo.Collection
	Counters   *mongo.Collection
}

func NewServiceMongoRepository(db *mongo.Database) contracts.ServiceRepository {
	return &ServiceMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionServices),
		Counters:   db.Collection(constvars.MongoCollectionCounters),
	}
}

func (repo *ServiceMongoRepository) CreateService(ctx context.Context, service *models.Service) (string, error) {
	seq, err := nextSequence(ctx, repo.Counters, sequenceServices)
	if err != nil {
		return "", err
	}

	record := *service
	record.ID = fmt.Sprintf("SVC%04d", seq)
	_, err = repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return record.ID, nil
}

func (repo *ServiceMongoRepository) FindServiceByID(ctx context.Context, serviceID string) (*models.Service, error) {
	var service models.Service
	err := repo.Collection.FindOne(ctx, bson.M{"_id": serviceID}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &service, nil
}

func (repo *ServiceMongoRepository) FindServicesByPatientID(ctx context.Context, patientID string) ([]models.Service, error) {
	return repo.findServices(ctx, bson.M{"patientId": patientID})
}

func (repo *ServiceMongoRepository) FindAllServices(ctx context.Context) ([]models.Service, error) {
	return repo.findServices(ctx, bson.M{})
}

func (repo *ServiceMongoRepository) findServices(ctx context.Context, filter bson.M) ([]models.Service, error) {
	var services []models.Service
	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &services)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return services, nil
}

func (repo *ServiceMongoRepository) UpdateServiceStatus(ctx context.Context, serviceID string, status models.ServiceStatus) error {
	return repo.updateService(ctx, serviceID, bson.M{"status": status})
}

func (repo *ServiceMongoRepository) MarkServiceCompleted(ctx context.Context, serviceID, completedBy string, completedAt time.Time) error {
	return repo.updateService(ctx, serviceID, bson.M{
		"status":      models.ServiceStatusCompleted,
		"completedAt": completedAt,
		"completedBy": completedBy,
	})
}

func (repo *ServiceMongoRepository) MarkServiceDispensed(ctx context.Context, serviceID, dispensedBy string, completedAt time.Time) error {
	return repo.updateService(ctx, serviceID, bson.M{
		"status":      models.ServiceStatusDispensed,
		"completedAt": completedAt,
		"dispensedBy": dispensedBy,
	})
}

func (repo *ServiceMongoRepository) updateService(ctx context.Context, serviceID string, fields bson.M) error {
	result, err := repo.Collection.UpdateOne(ctx,
		bson.M{"_id": serviceID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrServiceNotFound(fmt.Errorf("service %s", serviceID))
	}
	return nil
}
