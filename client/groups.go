// client/groups.go
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

// IGroupClient defines the group and permission resource operations
type IGroupClient interface {
	List(ctx context.Context, params transport.ListParams) ([]model.Group, error)
	Get(ctx context.Context, groupID int64) (*model.Group, error)
	Create(ctx context.Context, req GroupRequest) (*model.Group, error)
	Update(ctx context.Context, groupID int64, req GroupRequest) (*model.Group, error)
	Delete(ctx context.Context, groupID int64) error
	ListPermissions(ctx context.Context, params transport.ListParams) ([]model.Permission, error)
}

type GroupClient struct {
	api   *transport.Client
	store *store.Store
}

var _ IGroupClient = &GroupClient{}

func NewGroupClient(api *transport.Client, st *store.Store) *GroupClient {
	return &GroupClient{api: api, store: st}
}

// GroupRequest carries a group's name and its flat permission id set, as
// produced by the permission editor.
type GroupRequest struct {
	Name        string  `json:"name" validate:"required"`
	Permissions []int64 `json:"permissions" validate:"required,min=1"`
}

func (c *GroupClient) List(ctx context.Context, params transport.ListParams) ([]model.Group, error) {
	var groups []model.Group
	if err := c.api.Get(ctx, "/api/groups/", params.Values(), &groups); err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

func (c *GroupClient) Get(ctx context.Context, groupID int64) (*model.Group, error) {
	var group model.Group
	if err := c.api.Get(ctx, fmt.Sprintf("/api/groups/%d/", groupID), nil, &group); err != nil {
		return nil, fmt.Errorf("failed to fetch group: %w", err)
	}
	return &group, nil
}

func (c *GroupClient) Create(ctx context.Context, req GroupRequest) (*model.Group, error) {
	var group model.Group
	if err := c.api.Post(ctx, "/api/groups/", req, &group); err != nil {
		return nil, err
	}
	c.store.Invalidate(ctx, store.TagGroups)
	logger.Info("Group created", zap.Int64("groupID", group.ID), zap.String("name", group.Name))
	return &group, nil
}

func (c *GroupClient) Update(ctx context.Context, groupID int64, req GroupRequest) (*model.Group, error) {
	var group model.Group
	if err := c.api.Put(ctx, fmt.Sprintf("/api/groups/%d/", groupID), req, &group); err != nil {
		return nil, err
	}
	c.store.Invalidate(ctx, store.TagGroups)
	logger.Info("Group updated", zap.Int64("groupID", groupID))
	return &group, nil
}

func (c *GroupClient) Delete(ctx context.Context, groupID int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/api/groups/%d/", groupID)); err != nil {
		return err
	}
	c.store.Invalidate(ctx, store.TagGroups)
	logger.Info("Group deleted", zap.Int64("groupID", groupID))
	return nil
}

// ListPermissions fetches the permission catalogue: one row per named
// resource with its four independent action ids.
func (c *GroupClient) ListPermissions(ctx context.Context, params transport.ListParams) ([]model.Permission, error) {
	var permissions []model.Permission
	if err := c.api.Get(ctx, "/api/permissions/", params.Values(), &permissions); err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	return permissions, nil
}
