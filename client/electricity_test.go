// client/electricity_test.go
package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildtrack/epc-console/client"
	"github.com/buildtrack/epc-console/form"
	"github.com/buildtrack/epc-console/model"
	"github.com/buildtrack/epc-console/testutil"
)

func TestElectricityLineClient_CreateUploadsDiagram(t *testing.T) {
	var got capturedForm
	clients, _, closeSrv := newTestClients(t, func(r *gin.Engine) {
		r.POST("/api/electricity-lines/", func(c *gin.Context) {
			got = captureMultipart(t, c)
			c.JSON(http.StatusCreated, testutil.OK(model.ElectricityLine{ID: 3, Name: "Feeder 11kV"}))
		})
	})
	defer closeSrv()

	created, err := clients.ElectricityLines.Create(context.Background(), client.ElectricityLineRequest{
		Name:      "Feeder 11kV",
		ProjectID: 4,
		File:      &form.NewFile{Name: "single-line.dwg", Content: []byte("dwg bytes")},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	assert.Equal(t, []string{"Feeder 11kV"}, got.fields["name"])
	assert.Equal(t, []string{"4"}, got.fields["project_id"])
	assert.Equal(t, []string{"single-line.dwg"}, got.files["electricity_line"])
}

func TestElectricityLineClient_UpdateWithoutFileKeepsStoredDiagram(t *testing.T) {
	var got capturedForm
	var gotPath string
	clients, _, closeSrv := newTestClients(t, func(r *gin.Engine) {
		r.PUT("/api/electricity-lines/:id/", func(c *gin.Context) {
			gotPath = c.Request.URL.Path
			got = captureMultipart(t, c)
			c.JSON(http.StatusOK, testutil.OK(model.ElectricityLine{ID: 3, Name: "Feeder 33kV"}))
		})
	})
	defer closeSrv()

	updated, err := clients.ElectricityLines.Update(context.Background(), 3, client.ElectricityLineRequest{
		Name:      "Feeder 33kV",
		ProjectID: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/electricity-lines/3/", gotPath)
	assert.Equal(t, "Feeder 33kV", updated.Name)
	assert.Equal(t, []string{"Feeder 33kV"}, got.fields["name"])
	// Omitting the file keeps the stored diagram; the field must not be sent
	// empty.
	assert.Empty(t, got.files)
}
