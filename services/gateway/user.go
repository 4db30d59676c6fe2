package gateway

import (
	"context"
	"fmt"
	"net/http"
)

// UserClient talks to the user management service.
type UserClient struct {
	client
}

func NewUserClient(base string, hc *http.Client, tokens TokenSource) *UserClient {
	return &UserClient{newClient("user", base, hc, tokens)}
}

// Profile is the user management service's profile record.
type Profile struct {
	UserID        int    `json:"user_id"`
	Bio           string `json:"bio,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
	Department    string `json:"department,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

func (c *UserClient) Profile(ctx context.Context, userID int) (Profile, error) {
	var p Profile
	err := c.doJSON(ctx, "getProfile", http.MethodGet, fmt.Sprintf("/%d", userID), nil, nil, &p)
	return p, err
}

func (c *UserClient) UpsertProfile(ctx context.Context, p Profile) (Profile, error) {
	var saved Profile
	err := c.doJSON(ctx, "upsertProfile", http.MethodPost, "/profile", nil, p, &saved)
	return saved, err
}

type roleAssignment struct {
	RoleID     int `json:"role_id"`
	AssignedBy int `json:"assigned_by"`
}

func (c *UserClient) AssignRole(ctx context.Context, userID, roleID, assignedBy int) error {
	req := roleAssignment{RoleID: roleID, AssignedBy: assignedBy}
	return c.doJSON(ctx, "assignRole", http.MethodPost, fmt.Sprintf("/%d/roles", userID), nil, req, nil)
}
