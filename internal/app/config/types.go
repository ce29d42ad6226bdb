package config

type (
	InternalConfig struct {
		App          App
		JWT          JWT
		Provisioning Provisioning
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		StorageMode               string
		MaxRequests               int
		ShutdownTimeout           int
		LoginMaxAttemptsPerMinute int
		PatientLockTTLInSecond    int
		EventQueue                string
		// SeedAdminEmail/SeedAdminPassword bootstrap the first admin
		// account in memory mode, where no provisioned users exist yet.
		SeedAdminEmail    string
		SeedAdminPassword string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Provisioning struct {
		BaseUrl          string
		TimeoutInSecond  int
		ServiceRoleToken string
	}
)
