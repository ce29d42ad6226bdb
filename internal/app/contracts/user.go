package contracts

import (
	"context"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/dto/requests"
	"medipos-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
}

type UserUsecase interface {
	// CreateUser provisions an identity-provider account through the
	// external RPC, then persists the staff record locally. No local
	// mutation happens when the RPC fails.
	CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.CreateUser, error)
}
