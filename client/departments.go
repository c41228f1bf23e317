// client/departments.go
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

// IDepartmentClient defines the department resource operations
type IDepartmentClient interface {
	List(ctx context.Context, params transport.ListParams) ([]model.Department, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (*model.Department, error)
	Update(ctx context.Context, departmentID int64, req CreateDepartmentRequest) (*model.Department, error)
	Delete(ctx context.Context, departmentID int64) error
}

type DepartmentClient struct {
	api   *transport.Client
	store *store.Store
}

var _ IDepartmentClient = &DepartmentClient{}

func NewDepartmentClient(api *transport.Client, st *store.Store) *DepartmentClient {
	return &DepartmentClient{api: api, store: st}
}

// CreateDepartmentRequest is the single-field department payload.
type CreateDepartmentRequest struct {
	DepartmentName string `json:"department_name" validate:"required"`
}

func (c *DepartmentClient) List(ctx context.Context, params transport.ListParams) ([]model.Department, error) {
	var departments []model.Department
	if err := c.api.Get(ctx, "/api/departments/", params.Values(), &departments); err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

func (c *DepartmentClient) Create(ctx context.Context, req CreateDepartmentRequest) (*model.Department, error) {
	var department model.Department
	if err := c.api.Post(ctx, "/api/departments/", req, &department); err != nil {
		return nil, err
	}
	c.store.Invalidate(ctx, store.TagDepartments)
	logger.Info("Department created", zap.Int64("departmentID", department.ID), zap.String("name", department.DepartmentName))
	return &department, nil
}

func (c *DepartmentClient) Update(ctx context.Context, departmentID int64, req CreateDepartmentRequest) (*model.Department, error) {
	var department model.Department
	if err := c.api.Put(ctx, fmt.Sprintf("/api/departments/%d/", departmentID), req, &department); err != nil {
		return nil, err
	}
	c.store.Invalidate(ctx, store.TagDepartments)
	logger.Info("Department updated", zap.Int64("departmentID", departmentID))
	return &department, nil
}

func (c *DepartmentClient) Delete(ctx context.Context, departmentID int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/api/departments/%d/", departmentID)); err != nil {
		return err
	}
	c.store.Invalidate(ctx, store.TagDepartments)
	logger.Info("Department deleted", zap.Int64("departmentID", departmentID))
	return nil
}
