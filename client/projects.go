// client/projects.go
package client

import (
	"context"
	"fmt"

	"github.com/buildtrack/epc-console/model"
	"github.com/buildtrack/epc-console/transport"
)

// IProjectClient defines the project resource operations. Projects are
// read-only from the console; they are provisioned elsewhere.
type IProjectClient interface {
	ListMain(ctx context.Context) ([]model.Project, error)
	Get(ctx context.Context, projectID int64) (*model.Project, error)
}

type ProjectClient struct {
	api *transport.Client
}

var _ IProjectClient = &ProjectClient{}

func NewProjectClient(api *transport.Client) *ProjectClient {
	return &ProjectClient{api: api}
}

// ListMain fetches the main project list used to scope drawings,
// inspections and assignments.
func (c *ProjectClient) ListMain(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := c.api.Get(ctx, "/api/projects/main/", nil, &projects); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (c *ProjectClient) Get(ctx context.Context, projectID int64) (*model.Project, error) {
	var project model.Project
	if err := c.api.Get(ctx, fmt.Sprintf("/api/projects/%d/", projectID), nil, &project); err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return &project, nil
}
