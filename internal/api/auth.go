package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vkstore/resume-dashboard/internal/types"
)

// Register creates a new account. Transport failures surface as errors;
// the calling screen folds them into its own user-facing message.
func (g *Gateway) Register(ctx context.Context, req types.RegisterRequest) (types.Status, error) {
	body, err := g.postJSON(ctx, "register", "/auth/register", req)
	if err != nil {
		return types.Status{}, err
	}
	return decodeStatus("register", body)
}

// Login verifies credentials. It carries no token; a true status is the
// entire outcome, and the caller follows up with FetchUserByIdentifier.
func (g *Gateway) Login(ctx context.Context, req types.LoginRequest) (types.Status, error) {
	body, err := g.postJSON(ctx, "login", "/auth/login", req)
	if err != nil {
		return types.Status{}, err
	}
	return decodeStatus("login", body)
}

// FetchUserByIdentifier retrieves the full user record after a successful
// login. The response wraps the record in a {user: ...} object and has no
// status field.
func (g *Gateway) FetchUserByIdentifier(ctx context.Context, email string) (types.UserRecord, error) {
	body, err := g.do(ctx, "fetch-user", "GET", "/api/user/"+escape(email), nil, "")
	if err != nil {
		return types.UserRecord{}, err
	}
	var wrapper struct {
		User json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return types.UserRecord{}, fmt.Errorf("failed to decode user response: %w", err)
	}
	return types.ParseUserRecord(wrapper.User), nil
}

func decodeStatus(op string, body []byte) (types.Status, error) {
	var status types.Status
	if err := json.Unmarshal(body, &status); err != nil {
		return types.Status{}, fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	return status, nil
}
