package config

import (
	"medipos-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medipos"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "receipts"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Africa/Lagos"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			StorageMode:               utils.GetEnvString("APP_STORAGE_MODE", "memory"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			LoginMaxAttemptsPerMinute: utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS_PER_MINUTE", 10),
			PatientLockTTLInSecond:    utils.GetEnvInt("APP_PATIENT_LOCK_TTL_IN_SECOND", 10),
			EventQueue:                utils.GetEnvString("APP_RABBITMQ_EVENT_QUEUE", "medipos.events"),
			SeedAdminEmail:            utils.GetEnvString("APP_SEED_ADMIN_EMAIL", "admin@medipos.local"),
			SeedAdminPassword:         utils.GetEnvString("APP_SEED_ADMIN_PASSWORD", ""),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
		Provisioning: Provisioning{
			BaseUrl:          utils.GetEnvString("PROVISIONING_BASE_URL", "http://localhost:5555/functions/v1"),
			TimeoutInSecond:  utils.GetEnvInt("PROVISIONING_TIMEOUT_IN_SECOND", 10),
			ServiceRoleToken: utils.GetEnvString("PROVISIONING_SERVICE_ROLE_TOKEN", ""),
		},
	}
}
