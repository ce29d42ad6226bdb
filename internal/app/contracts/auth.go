package contracts

import (
	"context"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/dto/requests"
	"medipos-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
}
