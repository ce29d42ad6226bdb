package constvars

const (
	ResponseUnknown = "unknown"

	// Patient messages
	PatientRegisteredSuccess  = "patient registered successfully"
	PatientListSuccess        = "patients retrieved successfully"
	PatientDetailSuccess      = "patient retrieved successfully"
	PatientPaymentsSuccess    = "patient payments retrieved successfully"
	PatientServicesSuccess    = "patient services retrieved successfully"
	PatientDiagnosesSuccess   = "patient diagnoses retrieved successfully"

	// Payment messages
	PaymentRecordedSuccess         = "payment recorded successfully"
	CombinedPaymentRecordedSuccess = "combined payment recorded successfully"

	// Diagnosis and service messages
	DiagnosisRecordedSuccess = "diagnosis recorded successfully"
	ServiceCompletedSuccess  = "service marked as completed"
	ServiceDispensedSuccess  = "service dispensed successfully"
	ServiceQueueSuccess      = "service queue retrieved successfully"

	// Report messages
	RevenueReportSuccess     = "revenue report generated successfully"
	TopItemsReportSuccess    = "top items report generated successfully"
	PerformanceReportSuccess = "staff performance report generated successfully"

	// Catalog messages
	CatalogListSuccess        = "catalog items retrieved successfully"
	CatalogPriceUpdateSuccess = "catalog price updated successfully"

	// Auth messages
	LoginSuccess      = "successfully login"
	LogoutSuccess     = "successfully logout"
	ProfileGetSuccess = "get profile successfully"

	// Admin messages
	UserCreatedSuccess = "user created successfully"
)
