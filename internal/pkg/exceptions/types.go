package exceptions

import (
	"fmt"
	"medipos-service/internal/pkg/constvars"
)

var (
	// Request parsing and validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrMissingURLParam = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamMissing, paramName))
	}
	ErrInvalidQueryParam = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevQueryParamInvalid, paramName))
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Domain: record store
	ErrMissingRequiredEntityField = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevMissingRequiredEntityField)
	}
	ErrUnknownEntityKind = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevUnknownEntityKind)
	}
	ErrPatientNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, constvars.ErrDevPatientNotFound)
	}
	ErrServiceNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientServiceNotFound, constvars.ErrDevServiceNotFound)
	}
	ErrCatalogItemNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientCatalogItemNotFound, constvars.ErrDevCatalogItemNotFound)
	}

	// Domain: workflow transitions
	ErrAmountNotPositive = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientAmountMustBePositive, constvars.ErrDevAmountNotPositive)
	}
	ErrServiceNotPending = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidTransition, constvars.StatusConflict, constvars.ErrClientServiceNotPending, constvars.ErrDevServiceNotPending)
	}
	ErrServiceNotPaid = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidTransition, constvars.StatusConflict, constvars.ErrClientServiceNotPaid, constvars.ErrDevServiceNotPaid)
	}
	ErrPatientLockNotAcquired = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusConflict, constvars.ErrClientPatientBusy, constvars.ErrDevPatientLockNotAcquired)
	}

	// Auth
	ErrInvalidUsernameOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.StatusUnauthorized, constvars.ErrClientInvalidUsernameOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrRoleNotPermitted = func(err error) *CustomError {
		return BuildNewCustomError(err, KindForbidden, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleNotPermitted)
	}
	ErrMissingSessionData = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevMissingSessionData)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevEmailAlreadyExists)
	}

	// External collaborators
	ErrProvisioningCall = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusBadGateway, constvars.ErrClientProvisioningFailed, constvars.ErrDevProvisioningCallFailed)
	}
	ErrProvisioningBadStatus = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusBadGateway, constvars.ErrClientProvisioningFailed, constvars.ErrDevProvisioningBadStatus)
	}
	ErrProvisioningDecodeResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusBadGateway, constvars.ErrClientProvisioningFailed, constvars.ErrDevProvisioningDecodeResponse)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocument)
	}
	ErrMongoDBNextSequence = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToNextSequence)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToSet)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToGet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToDelete)
	}
	ErrRedisSetNX = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToSetNX)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisLockNotOwned)
	}

	// Messaging and storage
	ErrRabbitMQPublish = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQPublish)
	}
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, KindCollaborator, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucketName))
	}
)
