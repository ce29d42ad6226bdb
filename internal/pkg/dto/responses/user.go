package responses

type CreateUser struct {
	UserID     string `json:"user_id"`
	ExternalID string `json:"external_id"`
}
