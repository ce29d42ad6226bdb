package main

import (
	"context"
	"medipos-service/internal/app/config"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/app/delivery/http/controllers"
	"medipos-service/internal/app/delivery/http/middlewares"
	"medipos-service/internal/app/delivery/http/routers"
	"medipos-service/internal/app/drivers/database"
	"medipos-service/internal/app/drivers/logger"
	"medipos-service/internal/app/drivers/messaging"
	"medipos-service/internal/app/drivers/storage"
	"medipos-service/internal/app/models"
	"medipos-service/internal/app/services/core/auth"
	"medipos-service/internal/app/services/core/reports"
	"medipos-service/internal/app/services/core/users"
	"medipos-service/internal/app/services/core/workflow"
	"medipos-service/internal/app/services/shared/catalog"
	"medipos-service/internal/app/services/shared/events"
	"medipos-service/internal/app/services/shared/locker"
	"medipos-service/internal/app/services/shared/mongostore"
	"medipos-service/internal/app/services/shared/provisioning"
	"medipos-service/internal/app/services/shared/receipts"
	"medipos-service/internal/app/services/shared/recordstore"
	"medipos-service/internal/app/services/shared/redis"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/utils"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	// Memory mode runs the whole stack in-process for demos and local
	// development. Mongo mode attaches the real drivers.
	if internalConfig.App.StorageMode == constvars.StorageModeMongo {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
		bootstrap.Redis = database.NewRedisClient(driverConfig)
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
		bootstrap.Minio = storage.NewMinioClient(driverConfig)
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()
	logrus.Printf("Server listening on %s in %s storage mode", internalConfig.App.Port, internalConfig.App.StorageMode)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Printf("Error while closing dependencies: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	var (
		patientRepository   contracts.PatientRepository
		paymentRepository   contracts.PaymentRepository
		diagnosisRepository contracts.DiagnosisRepository
		serviceRepository   contracts.ServiceRepository
		userRepository      contracts.UserRepository
		kvRepository        contracts.RedisRepository
		lockerService       contracts.LockerService
		eventPublisher      contracts.EventPublisher
		receiptArchiver     contracts.ReceiptArchiver
	)

	switch bootstrap.InternalConfig.App.StorageMode {
	case constvars.StorageModeMongo:
		db := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)
		patientRepository = mongostore.NewPatientMongoRepository(db)
		paymentRepository = mongostore.NewPaymentMongoRepository(db)
		diagnosisRepository = mongostore.NewDiagnosisMongoRepository(db)
		serviceRepository = mongostore.NewServiceMongoRepository(db)
		userRepository = mongostore.NewUserMongoRepository(db)

		kvRepository = redis.NewRedisRepository(bootstrap.Redis)
		lockerService = locker.NewLockService(kvRepository, bootstrap.Logger)

		publisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.EventQueue, bootstrap.Logger)
		if err != nil {
			logrus.Fatalf("Failed to declare event queue: %v", err)
		}
		eventPublisher = publisher
		receiptArchiver = receipts.NewMinioReceiptArchiver(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	default:
		store := recordstore.NewStore()
		patientRepository = store
		paymentRepository = store
		diagnosisRepository = store
		serviceRepository = store

		userStore := recordstore.NewUserStore()
		seedAdminUser(userStore, bootstrap.InternalConfig)
		userRepository = userStore

		kvRepository = redis.NewMemoryKVRepository()
		lockerService = locker.NewMemoryLocker()
		eventPublisher = events.NewNoopPublisher()
		receiptArchiver = receipts.NewNoopReceiptArchiver()
	}

	catalogService := catalog.NewCatalogService()

	workflowUsecase := workflow.NewWorkflowUsecase(
		patientRepository,
		paymentRepository,
		diagnosisRepository,
		serviceRepository,
		catalogService,
		lockerService,
		eventPublisher,
		receiptArchiver,
		bootstrap.Logger,
		time.Duration(bootstrap.InternalConfig.App.PatientLockTTLInSecond)*time.Second,
	)
	reportUsecase := reports.NewReportUsecase(
		patientRepository,
		paymentRepository,
		diagnosisRepository,
		serviceRepository,
	)
	authUsecase := auth.NewAuthUsecase(userRepository, kvRepository, bootstrap.Logger, bootstrap.InternalConfig.JWT)

	provisioningClient := provisioning.NewHTTPProvisioningClient(bootstrap.InternalConfig.Provisioning, bootstrap.Logger)
	userUsecase := users.NewUserUsecase(userRepository, provisioningClient, bootstrap.Logger)

	m := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		m,
		controllers.NewPatientController(bootstrap.Logger, workflowUsecase, reportUsecase),
		controllers.NewPaymentController(bootstrap.Logger, workflowUsecase),
		controllers.NewDiagnosisController(bootstrap.Logger, workflowUsecase, reportUsecase),
		controllers.NewServiceController(bootstrap.Logger, workflowUsecase, reportUsecase),
		controllers.NewReportController(bootstrap.Logger, reportUsecase),
		controllers.NewCatalogController(bootstrap.Logger, catalogService),
		controllers.NewAuthController(bootstrap.Logger, authUsecase),
		controllers.NewUserController(bootstrap.Logger, userUsecase),
	)
}

// seedAdminUser creates the initial admin account for memory mode. The
// in-process store starts empty, so without a seed nobody could log in
// to provision other staff.
func seedAdminUser(userStore *recordstore.UserStore, internalConfig *config.InternalConfig) {
	if internalConfig.App.SeedAdminPassword == "" {
		logrus.Println("APP_SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hash, err := utils.HashPassword(internalConfig.App.SeedAdminPassword)
	if err != nil {
		logrus.Fatalf("Failed to hash seed admin password: %v", err)
	}

	now := time.Now()
	_, err = userStore.CreateUser(context.Background(), &models.User{
		Email:     internalConfig.App.SeedAdminEmail,
		FullName:  "Administrator",
		Password:  hash,
		Role:      models.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logrus.Fatalf("Failed to seed admin user: %v", err)
	}
	logrus.Printf("Seeded admin user %s", internalConfig.App.SeedAdminEmail)
}
