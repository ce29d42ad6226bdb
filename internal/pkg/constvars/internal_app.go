package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
	CONTEXT_USER_ROLE_KEY            ContextKey = "user_role"
)

const (
	StorageModeMemory = "memory"
	StorageModeMongo  = "mongo"
)

const (
	MongoCollectionPatients  = "patients"
	MongoCollectionPayments  = "payments"
	MongoCollectionDiagnoses = "diagnoses"
	MongoCollectionServices  = "services"
	MongoCollectionUsers     = "users"
	MongoCollectionCounters  = "counters"
)

const (
	RedisSessionKeyPrefix     = "session:"
	RedisPatientLockKeyPrefix = "lock:patient:"
)

const (
	EventPaymentRecorded  = "payment.recorded"
	EventServiceCompleted = "service.completed"
	EventServiceDispensed = "service.dispensed"
)
