// client/drawings.go
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

// Multipart field names of the drawing endpoints. They are fixed by the
// backend and must not be derived from anything else.
const (
	drawingFilesField     = "drawing_and_design_attachments"
	drawingRemoveIDsField = "remove_drawing_and_design_attachments_id"
)

// IDrawingClient defines the design-drawing resource operations
type IDrawingClient interface {
	ListByProject(ctx context.Context, projectID int64, params transport.ListParams) ([]model.Drawing, error)
	Get(ctx context.Context, drawingID int64) (*model.Drawing, error)
	Create(ctx context.Context, req CreateDrawingRequest) (*model.Drawing, error)
	Update(ctx context.Context, drawingID int64, req UpdateDrawingRequest) (*model.Drawing, error)
	Delete(ctx context.Context, drawingID int64) error
	Approve(ctx context.Context, drawingID int64, status, comment string) error
}

type DrawingClient struct {
	api   *transport.Client
	store *store.Store
}

var _ IDrawingClient = &DrawingClient{}

func NewDrawingClient(api *transport.Client, st *store.Store) *DrawingClient {
	return &DrawingClient{api: api, store: st}
}

type CreateDrawingRequest struct {
	Title          string `validate:"required"`
	DrawingNumber  string `validate:"required"`
	RevisionNumber string
	ProjectID      int64 `validate:"required"`
	Files          []form.NewFile
}

// UpdateDrawingRequest carries the editable drawing fields plus the
// attachment diff: ids to remove and new files to append. Attachments left
// untouched are not resent.
type UpdateDrawingRequest struct {
	Title          string `validate:"required"`
	DrawingNumber  string `validate:"required"`
	RevisionNumber string
	Attachments    *form.AttachmentDiff
}

func (c *DrawingClient) ListByProject(ctx context.Context, projectID int64, params transport.ListParams) ([]model.Drawing, error) {
	query := params.Values()
	query.Set("project_id", strconv.FormatInt(projectID, 10))
	var drawings []model.Drawing
	if err := c.api.Get(ctx, "/api/drawings/", query, &drawings); err != nil {
		return nil, fmt.Errorf("failed to list drawings: %w", err)
	}
	return drawings, nil
}

func (c *DrawingClient) Get(ctx context.Context, drawingID int64) (*model.Drawing, error) {
	var drawing model.Drawing
	if err := c.api.Get(ctx, fmt.Sprintf("/api/drawings/%d/", drawingID), nil, &drawing); err != nil {
		return nil, fmt.Errorf("failed to fetch drawing: %w", err)
	}
	return &drawing, nil
}

func (c *DrawingClient) Create(ctx context.Context, req CreateDrawingRequest) (*model.Drawing, error) {
	body := transport.NewForm().
		Set("title", req.Title).
		Set("drawing_number", req.DrawingNumber).
		SetInt("project_id", req.ProjectID)
	if req.RevisionNumber != "" {
		body.Set("revision_number", req.RevisionNumber)
	}
	for _, file := range req.Files {
		body.AddFile(drawingFilesField, file.Name, bytes.NewReader(file.Content))
	}

	var drawing model.Drawing
	if err := c.api.PostForm(ctx, "/api/drawings/", body, &drawing); err != nil {
		return nil, err
	}
	c.store.Invalidate(ctx, store.TagDrawings)
	logger.Info("Drawing created", zap.Int64("drawingID", drawing.ID), zap.String("number", drawing.DrawingNumber))
	return &drawing, nil
}

func (c *DrawingClient) Update(ctx context.Context, drawingID int64, req UpdateDrawingRequest) (*model.Drawing, error) {
	body := transport.NewForm().
		Set("title", req.Title).
		Set("drawing_number", req.DrawingNumber)
	if req.RevisionNumber != "" {
		body.Set("revision_number", req.RevisionNumber)
	}
	if req.Attachments != nil {
		req.Attachments.ApplyTo(body, drawingRemoveIDsField, drawingFilesField)
	}

	var drawing model.Drawing
	if err := c.api.PutForm(ctx, fmt.Sprintf("/api/drawings/%d/", drawingID), body, &drawing); err != nil {
		return nil, err
	}
	c.store.Invalidate(ctx, store.TagDrawings)
	logger.Info("Drawing updated", zap.Int64("drawingID", drawingID))
	return &drawing, nil
}

func (c *DrawingClient) Delete(ctx context.Context, drawingID int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/api/drawings/%d/", drawingID)); err != nil {
		return err
	}
	c.store.Invalidate(ctx, store.TagDrawings)
	logger.Info("Drawing deleted", zap.Int64("drawingID", drawingID))
	return nil
}

// Approve submits the next desired approval status with an optional
// reviewer comment. Which transitions are legal is entirely the server's
// decision; the client only displays the result.
func (c *DrawingClient) Approve(ctx context.Context, drawingID int64, status, comment string) error {
	body := map[string]string{"approval_status": status}
	if comment != "" {
		body["comment"] = comment
	}
	if err := c.api.Put(ctx, fmt.Sprintf("/api/drawings/%d/approve/", drawingID), body, nil); err != nil {
		return err
	}
	c.store.Invalidate(ctx, store.TagDrawings)
	logger.Info("Drawing approval submitted", zap.Int64("drawingID", drawingID), zap.String("status", status))
	return nil
}
