// client/vendors.go
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

// IVendorClient defines the vendor resource operations
type IVendorClient interface {
	List(ctx context.Context, params transport.ListParams) ([]model.Vendor, error)
	Create(ctx context.Context, req VendorRequest) (*model.Vendor, error)
	Update(ctx context.Context, vendorID int64, req VendorRequest) (*model.Vendor, error)
	Delete(ctx context.Context, vendorID int64) error
}

type VendorClient struct {
	api   *transport.Client
	store *store.Store
}

var _ IVendorClient = &VendorClient{}

func NewVendorClient(api *transport.Client, st *store.Store) *VendorClient {
	return &VendorClient{api: api, store: st}
}

type VendorRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	Address       string `json:"address,omitempty"`
}

func (c *VendorClient) List(ctx context.Context, params transport.ListParams) ([]model.Vendor, error) {
	var vendors []model.Vendor
	if err := c.api.Get(ctx, "/api/vendors/", params.Values(), &vendors); err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

func (c *VendorClient) Create(ctx context.Context, req VendorRequest) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := c.api.Post(ctx, "/api/vendors/", req, &vendor); err != nil {
		return nil, err
	}
	c.store.Invalidate(ctx, store.TagVendors)
	logger.Info("Vendor created", zap.Int64("vendorID", vendor.ID), zap.String("name", vendor.Name))
	return &vendor, nil
}

func (c *VendorClient) Update(ctx context.Context, vendorID int64, req VendorRequest) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := c.api.Put(ctx, fmt.Sprintf("/api/vendors/%d/", vendorID), req, &vendor); err != nil {
		return nil, err
	}
	c.store.Invalidate(ctx, store.TagVendors)
	logger.Info("Vendor updated", zap.Int64("vendorID", vendorID))
	return &vendor, nil
}

func (c *VendorClient) Delete(ctx context.Context, vendorID int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/api/vendors/%d/", vendorID)); err != nil {
		return err
	}
	c.store.Invalidate(ctx, store.TagVendors)
	logger.Info("Vendor deleted", zap.Int64("vendorID", vendorID))
	return nil
}
