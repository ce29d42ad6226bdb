package constvars

const (
	URLParamPatientID = "patient_id"
	URLParamServiceID = "service_id"
	URLParamItemID    = "item_id"
)

const (
	URLQueryParamStatus      = "status"
	URLQueryParamType        = "type"
	URLQueryParamServiceType = "service_type"
	URLQueryParamLimit       = "limit"
)
