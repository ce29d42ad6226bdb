package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"numeric":      "must be a number",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"lt":           "must be less than %s",
	"lte":          "must be less than or equal to %s",
	"gender":       "must be one of [male, female, other]",
	"staff_role":   "must be a known staff role",
	"payment_type": "must be one of [consultation, lab, pharmacy, combined]",
	"password":     "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process your request, kindly check your input"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application, please contact the administrator"
	ErrClientServerLongRespond             = "server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you are not logged in or your session has expired"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please wait before retrying"

	ErrClientPatientNotFound      = "patient not found"
	ErrClientServiceNotFound      = "service not found"
	ErrClientCatalogItemNotFound  = "catalog item not found"
	ErrClientAmountMustBePositive = "payment amount must be greater than zero"
	ErrClientServiceNotPending    = "selected service has already been paid or fulfilled"
	ErrClientServiceNotPaid       = "service must be paid before it can be fulfilled"
	ErrClientPatientBusy          = "another transaction for this patient is in progress, please retry"
	ErrClientProvisioningFailed   = "user provisioning service is unavailable, please try again later"
	ErrClientEmailAlreadyExists   = "email already used"
)

// Error messages for developers
const (
	ErrDevValidationFailed            = "Request validation failed"
	ErrDevCannotParseJSON             = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON           = "Failed to marshal value to JSON"
	ErrDevServerDeadlineExceeded      = "Operation exceeded its deadline"
	ErrDevMissingRequestID            = "Request ID missing from request context"
	ErrDevMissingSessionData          = "Session data missing from request context"
	ErrDevAuthTokenMissing            = "Authorization token missing from request"
	ErrDevAuthTokenInvalidOrExpired   = "Authorization token is invalid or expired"
	ErrDevAuthGenerateToken           = "Failed to generate session token"
	ErrDevInvalidCredentials          = "Credentials do not match any staff account"
	ErrDevRoleNotPermitted            = "Role is not permitted to access this resource"
	ErrDevFailedToHashPassword        = "Failed to hash password"
	ErrDevURLParamMissing             = "Required URL parameter %s is missing"
	ErrDevQueryParamInvalid           = "Query parameter %s has an invalid value"
	ErrDevPatientNotFound             = "No patient found for the given identifier"
	ErrDevServiceNotFound             = "No service found for the given identifier"
	ErrDevCatalogItemNotFound         = "No catalog item found for the given identifier"
	ErrDevAmountNotPositive           = "Payment amount is zero or negative"
	ErrDevServiceNotPending           = "Service status is not pending"
	ErrDevServiceNotPaid              = "Service status is not paid"
	ErrDevPatientLockNotAcquired      = "Could not acquire per-patient lock"
	ErrDevMissingRequiredEntityField  = "Entity is missing a required field"
	ErrDevUnknownEntityKind           = "Unknown record store entity kind"
	ErrDevEmailAlreadyExists          = "Email already registered to a staff account"
	ErrDevProvisioningCallFailed      = "Provisioning RPC call failed"
	ErrDevProvisioningBadStatus       = "Provisioning RPC returned non-success status"
	ErrDevProvisioningDecodeResponse  = "Failed to decode provisioning RPC response"

	ErrDevDBFailedToFindDocument    = "Failed to find document on database"
	ErrDevDBFailedToInsertDocument  = "Failed to insert document to database"
	ErrDevDBFailedToUpdateDocument  = "Failed to update document on database"
	ErrDevDBFailedToIterateDocument = "Failed to iterate documents on database"
	ErrDevDBFailedToNextSequence    = "Failed to advance counter sequence on database"

	ErrDevRedisFailedToSet    = "Failed to set value to redis"
	ErrDevRedisFailedToGet    = "Failed to get value from redis"
	ErrDevRedisFailedToDelete = "Failed to delete value from redis"
	ErrDevRedisFailedToSetNX  = "Failed to set value with NX option to redis"
	ErrDevRedisLockNotOwned   = "Lock is not owned by this client"

	ErrDevRabbitMQPublish    = "Failed to publish message to rabbitMQ"
	ErrDevMinioCreateObject  = "Failed to create object on bucket %s"
)
