// client/users.go
package client

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/buildtrack/epc-console/logging"
	"github.com/buildtrack/epc-console/model"
	"github.com/buildtrack/epc-console/store"
	"github.com/buildtrack/epc-console/transport"
)

// IUserClient defines the user resource operations
type IUserClient interface {
	List(ctx context.Context, params transport.ListParams) ([]model.User, error)
	Get(ctx context.Context, userID int64) (*model.User, error)
	Create(ctx context.Context, req CreateUserRequest) (*model.User, error)
	Update(ctx context.Context, userID int64, req UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, userID int64) error
	UpdateStatus(ctx context.Context, userID int64, active bool) error
	UpdatePassword(ctx context.Context, userID int64, password string) error
	AssignAllThings(ctx context.Context, req AssignmentRequest) error
	GetAllThings(ctx context.Context, userID int64) (*model.UserAssignments, error)
}

type UserClient struct {
	api   *transport.Client
	store *store.Store
}

var _ IUserClient = &UserClient{}

func NewUserClient(api *transport.Client, st *store.Store) *UserClient {
	return &UserClient{api: api, store: st}
}

type CreateUserRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Designation string `json:"designation,omitempty"`
	Password    string `json:"password" validate:"required,min=8"`
}

type UpdateUserRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Designation string `json:"designation,omitempty"`
}

// AssignmentRequest links a user to a department and group, and optionally a
// project. Removal is per-field: RemoveProject drops only the project
// linkage while the department/group assignment stays.
type AssignmentRequest struct {
	UserID        int64  `json:"user_id" validate:"required"`
	DepartmentID  int64  `json:"department_id" validate:"required"`
	GroupID       int64  `json:"group_id" validate:"required"`
	ProjectID     *int64 `json:"project_id,omitempty"`
	RemoveProject bool   `json:"remove_project,omitempty"`
}

func (c *UserClient) List(ctx context.Context, params transport.ListParams) ([]model.User, error) {
	var users []model.User
	if err := c.api.Get(ctx, "/api/users/", params.Values(), &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (c *UserClient) Get(ctx context.Context, userID int64) (*model.User, error) {
	var user model.User
	if err := c.api.Get(ctx, fmt.Sprintf("/api/users/%d/", userID), nil, &user); err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (c *UserClient) Create(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	var user model.User
	if err := c.api.Post(ctx, "/api/users/", req, &user); err != nil {
		return nil, err
	}
	c.store.Invalidate(ctx, store.TagUsers)
	logger.Info("User created", zap.Int64("userID", user.ID), zap.String("username", user.Username))
	return &user, nil
}

func (c *UserClient) Update(ctx context.Context, userID int64, req UpdateUserRequest) (*model.User, error) {
	var user model.User
	if err := c.api.Put(ctx, fmt.Sprintf("/api/users/%d/", userID), req, &user); err != nil {
		return nil, err
	}
	c.store.Invalidate(ctx, store.TagUsers)
	logger.Info("User updated", zap.Int64("userID", userID))
	return &user, nil
}

func (c *UserClient) Delete(ctx context.Context, userID int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/api/users/%d/", userID)); err != nil {
		return err
	}
	c.store.Invalidate(ctx, store.TagUsers)
	logger.Info("User deleted", zap.Int64("userID", userID))
	return nil
}

// UpdateStatus toggles a user active/inactive. The UI refetches after the
// mutation resolves; there is no speculative update before the server
// confirms.
func (c *UserClient) UpdateStatus(ctx context.Context, userID int64, active bool) error {
	body := map[string]bool{"is_active": active}
	if err := c.api.Put(ctx, fmt.Sprintf("/api/users/%d/status/", userID), body, nil); err != nil {
		return err
	}
	c.store.Invalidate(ctx, store.TagUsers)
	logger.Info("User status updated", zap.Int64("userID", userID), zap.Bool("active", active))
	return nil
}

func (c *UserClient) UpdatePassword(ctx context.Context, userID int64, password string) error {
	body := map[string]string{"password": password}
	if err := c.api.Put(ctx, fmt.Sprintf("/api/users/%d/password/", userID), body, nil); err != nil {
		return err
	}
	logger.Info("User password updated", zap.Int64("userID", userID))
	return nil
}

// AssignAllThings sets a user's department, group and optional project
// linkage in one call.
func (c *UserClient) AssignAllThings(ctx context.Context, req AssignmentRequest) error {
	if err := c.api.Post(ctx, fmt.Sprintf("/api/users/%d/assign/", req.UserID), req, nil); err != nil {
		return err
	}
	c.store.Invalidate(ctx, store.TagUsers, store.TagAssignments)
	logger.Info("User assignments updated", zap.Int64("userID", req.UserID))
	return nil
}

// GetAllThings fetches the user's resolved department/group/project linkage.
func (c *UserClient) GetAllThings(ctx context.Context, userID int64) (*model.UserAssignments, error) {
	var assignments model.UserAssignments
	if err := c.api.Get(ctx, fmt.Sprintf("/api/users/%d/assignments/", userID), nil, &assignments); err != nil {
		return nil, fmt.Errorf("failed to fetch user assignments: %w", err)
	}
	return &assignments, nil
}
