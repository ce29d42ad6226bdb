package provisioning

import (
	"bytes"
	"context"
	"fmt"
	"medipos-service/internal/app/config"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/dto/requests"
	"medipos-service/internal/pkg/exceptions"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type httpProvisioningClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	Log        *zap.Logger
}

type provisionUserRequest struct {
	Email    string                `json:"email"`
	Password string                `json:"password"`
	Metadata provisionUserMetadata `json:"user_metadata"`
}

type provisionUserMetadata struct {
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

type provisionUserResponse struct {
	User struct {
		ID string `json:"id"`
	} `json:"user"`
}

// NewHTTPProvisioningClient talks to the identity provider's privileged
// admin endpoint. The service-role token never leaves the server process.
func NewHTTPProvisioningClient(cfg config.Provisioning, logger *zap.Logger) contracts.ProvisioningClient {
	return &httpProvisioningClient{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutInSecond) * time.Second},
		baseURL:    cfg.BaseUrl,
		token:      cfg.ServiceRoleToken,
		Log:        logger,
	}
}

func (c *httpProvisioningClient) CreateUser(ctx context.Context, request *requests.CreateUser) (string, error) {
	body, err := json.Marshal(provisionUserRequest{
		Email:    request.Email,
		Password: request.Password,
		Metadata: provisionUserMetadata{
			FullName:   request.FullName,
			Role:       request.Role,
			Department: request.Department,
		},
	})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/admin/users", c.baseURL)
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", exceptions.ErrProvisioningCall(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpRequest.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf("Bearer %s", c.token))

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		c.Log.Error("httpProvisioningClient.CreateUser request failed", zap.Error(err))
		return "", exceptions.ErrProvisioningCall(err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		c.Log.Error("httpProvisioningClient.CreateUser bad status",
			zap.Int(constvars.LoggingStatusCodeKey, httpResponse.StatusCode),
		)
		return "", exceptions.ErrProvisioningBadStatus(fmt.Errorf("provisioning endpoint returned status %d", httpResponse.StatusCode))
	}

	var response provisionUserResponse
	if err := json.NewDecoder(httpResponse.Body).Decode(&response); err != nil {
		return "", exceptions.ErrProvisioningDecodeResponse(err)
	}
	if response.User.ID == "" {
		return "", exceptions.ErrProvisioningDecodeResponse(fmt.Errorf("provisioning response has no user id"))
	}
	return response.User.ID, nil
}
