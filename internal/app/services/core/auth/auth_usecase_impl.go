package auth

import (
	"context"
	"fmt"
	"medipos-service/internal/app/config"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/dto/requests"
	"medipos-service/internal/pkg/dto/responses"
	"medipos-service/internal/pkg/exceptions"
	"medipos-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	JWTConfig       config.JWT
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
	jwtConfig config.JWT,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		Log:             logger,
		JWTConfig:       jwtConfig,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("email %s", request.Email))
	}

	session := models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
	}
	sessionTTL := time.Duration(uc.JWTConfig.ExpTimeInHour) * time.Hour
	err = uc.RedisRepository.Set(ctx, constvars.RedisSessionKeyPrefix+session.SessionID, session, sessionTTL)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.JWTConfig.Secret, uc.JWTConfig.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	utils.LogBusinessEvent(uc.Log, "user_logged_in", utils.GetRequestID(ctx),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingRoleKey, string(user.Role)),
	)
	return &responses.Login{
		Token:    token,
		UserID:   user.ID,
		FullName: user.FullName,
		Role:     string(user.Role),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.Delete(ctx, constvars.RedisSessionKeyPrefix+sessionID)
}

func (uc *authUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionJWT(token, uc.JWTConfig.Secret)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	raw, err := uc.RedisRepository.Get(ctx, constvars.RedisSessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrMissingSessionData(fmt.Errorf("session %s", sessionID))
	}

	var session models.Session
	err = json.Unmarshal([]byte(raw), &session)
	if err != nil {
		return nil, exceptions.ErrMissingSessionData(err)
	}
	return &session, nil
}
