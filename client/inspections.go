// client/inspections.go
package client

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/buildtrack/epc-console/form"
	logger "github.com/buildtrack/epc-console/logging"
	"github.com/buildtrack/epc-console/model"
	"github.com/buildtrack/epc-console/store"
	"github.com/buildtrack/epc-console/transport"
)

const (
	inspectionFilesField     = "inspection_quality_report_attachments"
	inspectionRemoveIDsField = "remove_inspection_quality_report_attachments_id"
)

// IInspectionClient defines the material quality inspection operations
type IInspectionClient interface {
	ListByProject(ctx context.Context, projectID int64, params transport.ListParams) ([]model.Inspection, error)
	ListByMaterial(ctx context.Context, materialID int64, params transport.ListParams) ([]model.Inspection, error)
	Create(ctx context.Context, req CreateInspectionRequest) (*model.Inspection, error)
	Update(ctx context.Context, inspectionID int64, req UpdateInspectionRequest) (*model.Inspection, error)
	Delete(ctx context.Context, inspectionID int64) error
	Verify(ctx context.Context, inspectionID int64) error
}

type InspectionClient struct {
	api   *transport.Client
	store *store.Store
}

var _ IInspectionClient = &InspectionClient{}

func NewInspectionClient(api *transport.Client, st *store.Store) *InspectionClient {
	return &InspectionClient{api: api, store: st}
}

type CreateInspectionRequest struct {
	ProjectID  int64  `validate:"required"`
	MaterialID int64  `validate:"required"`
	Status     string `validate:"required"`
	Remarks    string
	Files      []form.NewFile
}

type UpdateInspectionRequest struct {
	Status      string `validate:"required"`
	Remarks     string
	Attachments *form.AttachmentDiff
}

func (c *InspectionClient) ListByProject(ctx context.Context, projectID int64, params transport.ListParams) ([]model.Inspection, error) {
	query := params.Values()
	query.Set("project_id", strconv.FormatInt(projectID, 10))
	var inspections []model.Inspection
	if err := c.api.Get(ctx, "/api/inspections/", query, &inspections); err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	return inspections, nil
}

func (c *InspectionClient) ListByMaterial(ctx context.Context, materialID int64, params transport.ListParams) ([]model.Inspection, error) {
	query := params.Values()
	query.Set("material_id", strconv.FormatInt(materialID, 10))
	var inspections []model.Inspection
	if err := c.api.Get(ctx, "/api/inspections/", query, &inspections); err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	return inspections, nil
}

func (c *InspectionClient) Create(ctx context.Context, req CreateInspectionRequest) (*model.Inspection, error) {
	body := transport.NewForm().
		SetInt("project_id", req.ProjectID).
		SetInt("material_id", req.MaterialID).
		Set("status", req.Status)
	if req.Remarks != "" {
		body.Set("remarks", req.Remarks)
	}
	for _, file := range req.Files {
		body.AddFile(inspectionFilesField, file.Name, bytes.NewReader(file.Content))
	}

	var inspection model.Inspection
	if err := c.api.PostForm(ctx, "/api/inspections/", body, &inspection); err != nil {
		return nil, err
	}
	c.store.Invalidate(ctx, store.TagInspections)
	logger.Info("Inspection created", zap.Int64("inspectionID", inspection.ID), zap.Int64("projectID", req.ProjectID))
	return &inspection, nil
}

func (c *InspectionClient) Update(ctx context.Context, inspectionID int64, req UpdateInspectionRequest) (*model.Inspection, error) {
	body := transport.NewForm().Set("status", req.Status)
	if req.Remarks != "" {
		body.Set("remarks", req.Remarks)
	}
	if req.Attachments != nil {
		req.Attachments.ApplyTo(body, inspectionRemoveIDsField, inspectionFilesField)
	}

	var inspection model.Inspection
	if err := c.api.PutForm(ctx, fmt.Sprintf("/api/inspections/%d/", inspectionID), body, &inspection); err != nil {
		return nil, err
	}
	c.store.Invalidate(ctx, store.TagInspections)
	logger.Info("Inspection updated", zap.Int64("inspectionID", inspectionID))
	return &inspection, nil
}

func (c *InspectionClient) Delete(ctx context.Context, inspectionID int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/api/inspections/%d/", inspectionID)); err != nil {
		return err
	}
	c.store.Invalidate(ctx, store.TagInspections)
	logger.Info("Inspection deleted", zap.Int64("inspectionID", inspectionID))
	return nil
}

// Verify marks an inspection as verified by the signed-in reviewer.
func (c *InspectionClient) Verify(ctx context.Context, inspectionID int64) error {
	if err := c.api.Put(ctx, fmt.Sprintf("/api/inspections/%d/verify/", inspectionID), map[string]bool{"verified": true}, nil); err != nil {
		return err
	}
	c.store.Invalidate(ctx, store.TagInspections)
	logger.Info("Inspection verified", zap.Int64("inspectionID", inspectionID))
	return nil
}
