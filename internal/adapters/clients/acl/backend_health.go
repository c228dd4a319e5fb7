package acl

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
)

type healthResponseDTO struct {
	Status string `json:"status"`
}

// Ping calls GET /health and fails unless the backend answers "healthy".
//
// Readiness does not use it: the server's probe reads the circuit breaker
// of the underlying httpclient.Client instead, so an outage never makes the
// probe itself hit the backend. Ping is for operators checking reachability.
func (c *DiscoveryClient) Ping(ctx context.Context) error {
	var dto healthResponseDTO
	if err := c.req.Get(ctx, "/health", &dto); err != nil {
		return err
	}
	if dto.Status != "healthy" {
		return fmt.Errorf("discovery-api reported %q: %w", dto.Status, domain.ErrUnavailable)
	}
	return nil
}
