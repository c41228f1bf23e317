// client/items.go
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

// IQualityItemClient defines the quality item catalogue operations
type IQualityItemClient interface {
	List(ctx context.Context, params transport.ListParams) ([]model.QualityItem, error)
	Create(ctx context.Context, req QualityItemRequest) (*model.QualityItem, error)
	Update(ctx context.Context, itemID int64, req QualityItemRequest) (*model.QualityItem, error)
	Delete(ctx context.Context, itemID int64) error
	SetProjectItems(ctx context.Context, projectID int64, itemIDs []int64) error
	GetItemsByProject(ctx context.Context, projectID int64) ([]model.QualityItem, error)
}

type QualityItemClient struct {
	api   *transport.Client
	store *store.Store
}

var _ IQualityItemClient = &QualityItemClient{}

func NewQualityItemClient(api *transport.Client, st *store.Store) *QualityItemClient {
	return &QualityItemClient{api: api, store: st}
}

type QualityItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Unit        string `json:"unit,omitempty"`
	Description string `json:"description,omitempty"`
}

func (c *QualityItemClient) List(ctx context.Context, params transport.ListParams) ([]model.QualityItem, error) {
	var items []model.QualityItem
	if err := c.api.Get(ctx, "/api/quality-items/", params.Values(), &items); err != nil {
		return nil, fmt.Errorf("failed to list quality items: %w", err)
	}
	return items, nil
}

func (c *QualityItemClient) Create(ctx context.Context, req QualityItemRequest) (*model.QualityItem, error) {
	var item model.QualityItem
	if err := c.api.Post(ctx, "/api/quality-items/", req, &item); err != nil {
		return nil, err
	}
	c.store.Invalidate(ctx, store.TagQualityItems)
	logger.Info("Quality item created", zap.Int64("itemID", item.ID), zap.String("name", item.Name))
	return &item, nil
}

func (c *QualityItemClient) Update(ctx context.Context, itemID int64, req QualityItemRequest) (*model.QualityItem, error) {
	var item model.QualityItem
	if err := c.api.Put(ctx, fmt.Sprintf("/api/quality-items/%d/", itemID), req, &item); err != nil {
		return nil, err
	}
	c.store.Invalidate(ctx, store.TagQualityItems)
	logger.Info("Quality item updated", zap.Int64("itemID", itemID))
	return &item, nil
}

func (c *QualityItemClient) Delete(ctx context.Context, itemID int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/api/quality-items/%d/", itemID)); err != nil {
		return err
	}
	c.store.Invalidate(ctx, store.TagQualityItems)
	logger.Info("Quality item deleted", zap.Int64("itemID", itemID))
	return nil
}

// SetProjectItems replaces the set of quality items tracked on a project.
func (c *QualityItemClient) SetProjectItems(ctx context.Context, projectID int64, itemIDs []int64) error {
	body := map[string]any{"item_ids": itemIDs}
	if err := c.api.Post(ctx, fmt.Sprintf("/api/projects/%d/quality-items/", projectID), body, nil); err != nil {
		return err
	}
	c.store.Invalidate(ctx, store.TagQualityItems)
	logger.Info("Project quality items set", zap.Int64("projectID", projectID), zap.Int("count", len(itemIDs)))
	return nil
}

// GetItemsByProject fetches the quality items tracked on a project.
func (c *QualityItemClient) GetItemsByProject(ctx context.Context, projectID int64) ([]model.QualityItem, error) {
	var items []model.QualityItem
	if err := c.api.Get(ctx, fmt.Sprintf("/api/projects/%d/quality-items/", projectID), nil, &items); err != nil {
		return nil, fmt.Errorf("failed to fetch project quality items: %w", err)
	}
	return items, nil
}
