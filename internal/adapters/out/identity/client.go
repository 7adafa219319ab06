// Package identity resolves actors against the identity service. Accounts
// live there; the workflow only ever asks "who is this and may they act",
// so the client is a single lookup call.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"
)

const requestTimeout = 10 * time.Second

// Client is an HTTP client for the identity service.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an identity client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// userResponse is the identity service's account payload.
type userResponse struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// GetUser resolves a user by identifier.
// Returns an ObjectNotFoundError when the account does not exist, so
// handlers treat unknown actors the same way they treat unknown orders.
func (c *Client) GetUser(ctx context.Context, id kernel.UUID) (ports.User, error) {
	if err := id.Validate(); err != nil {
		return ports.User{}, err
	}

	url := fmt.Sprintf("%s/api/users/%s", c.baseURL, id.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.User{}, fmt.Errorf("create identity request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.User{}, fmt.Errorf("call identity service: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ports.User{}, errs.NewObjectNotFoundError("user", id.String())
	case resp.StatusCode != http.StatusOK:
		return ports.User{}, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var payload userResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.User{}, fmt.Errorf("decode identity response: %w", err)
	}

	userID, err := kernel.UUIDFromString(payload.ID)
	if err != nil {
		return ports.User{}, fmt.Errorf("identity service returned a malformed user id: %w", err)
	}

	role, err := kernel.RoleFromString(payload.Role)
	if err != nil {
		return ports.User{}, fmt.Errorf("identity service returned a malformed role: %w", err)
	}

	return ports.User{
		ID:       userID,
		Role:     role,
		Name:     payload.Name,
		IsActive: payload.IsActive,
	}, nil
}
