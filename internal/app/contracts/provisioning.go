package contracts

import (
	"context"
	"medipos-service/internal/pkg/dto/requests"
)

// ProvisioningClient wraps the privileged user-provisioning RPC of the
// identity provider. It is an opaque external operation; failures surface
// as collaborator errors.
type ProvisioningClient interface {
	CreateUser(ctx context.Context, request *requests.CreateUser) (externalID string, err error)
}
