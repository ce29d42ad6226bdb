package users

import (
	"context"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/dto/requests"
	"medipos-service/internal/pkg/dto/responses"
	"medipos-service/internal/pkg/exceptions"
	"medipos-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository     contracts.UserRepository
	ProvisioningClient contracts.ProvisioningClient
	Log                *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	provisioningClient contracts.ProvisioningClient,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository:     userRepository,
		ProvisioningClient: provisioningClient,
		Log:                logger,
	}
}

func (uc *userUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.CreateUser, error) {
	// The identity provider is the source of truth for accounts. It is
	// called first so a failed RPC leaves no local record behind.
	externalID, err := uc.ProvisioningClient.CreateUser(ctx, request)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	userID, err := uc.UserRepository.CreateUser(ctx, &models.User{
		Email:      request.Email,
		FullName:   request.FullName,
		Password:   hash,
		Role:       models.StaffRole(request.Role),
		Department: request.Department,
		ExternalID: externalID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "staff_user_created", utils.GetRequestID(ctx),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)
	return &responses.CreateUser{
		UserID:     userID,
		ExternalID: externalID,
	}, nil
}
