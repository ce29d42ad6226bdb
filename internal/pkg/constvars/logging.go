package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingOperationKey  = "operation"
	LoggingErrorTypeKey  = "error_type"

	LoggingPatientIDKey     = "patient_id"
	LoggingServiceIDKey     = "service_id"
	LoggingDiagnosisIDKey   = "diagnosis_id"
	LoggingReceiptNumberKey = "receipt_number"
	LoggingPaymentTypeKey   = "payment_type"
	LoggingAmountKey        = "amount"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingUserIDKey        = "user_id"
	LoggingRoleKey          = "role"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingQueueKey              = "queue"
	LoggingBucketKey             = "bucket"
	LoggingObjectNameKey         = "object_name"
)
