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
)

type UserMongoRepository struct {
	Collection *mongo.Collection
	Counters   *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Database) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionUsers),
		Counters:   db.Collection(constvars.MongoCollectionCounters),
	}
}

func (repo *UserMongoRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	existing, err := repo.FindUserByEmail(ctx, user.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s", user.Email))
	}

	seq, err := nextSequence(ctx, repo.Counters, sequenceUsers)
	if err != nil {
		return "", err
	}

	record := *user
	record.ID = fmt.Sprintf("U%04d", seq)
	_, err = repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return record.ID, nil
}

func (repo *UserMongoRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := repo.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (repo *UserMongoRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := repo.Collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}
