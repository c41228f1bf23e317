// transport/client_test.go
package transport_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	console_errors "github.com/buildtrack/epc-console/errors"
	logger "github.com/buildtrack/epc-console/logging"
	"github.com/buildtrack/epc-console/session"
	"github.com/buildtrack/epc-console/testutil"
	"github.com/buildtrack/epc-console/transport"
)

func TestMain(m *testing.M) {
	logger.InitLogger("")
	m.Run()
}

func TestClient_AuthorizationHeader(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	srv := testutil.NewServer(func(r *gin.Engine) {
		r.GET("/api/ping/", func(c *gin.Context) {
			_, hasAuth = c.Request.Header["Authorization"]
			gotAuth = c.GetHeader("Authorization")
			c.JSON(http.StatusOK, testutil.OK(nil))
		})
	})
	defer srv.Close()

	t.Run("TokenPresent_BearerAttached", func(t *testing.T) {
		sess := session.New("abc123")
		client, err := transport.New(srv.URL, sess)
		require.NoError(t, err)

		require.NoError(t, client.Get(context.Background(), "/api/ping/", nil, nil))
		assert.Equal(t, "Bearer abc123", gotAuth)
	})

	t.Run("NoToken_HeaderOmitted", func(t *testing.T) {
		sess := session.New("")
		client, err := transport.New(srv.URL, sess)
		require.NoError(t, err)

		require.NoError(t, client.Get(context.Background(), "/api/ping/", nil, nil))
		assert.False(t, hasAuth, "Authorization header must be omitted entirely, not sent empty")
	})

	t.Run("RotatedToken_UsedOnNextCall", func(t *testing.T) {
		sess := session.New("first")
		client, err := transport.New(srv.URL, sess)
		require.NoError(t, err)

		require.NoError(t, client.Get(context.Background(), "/api/ping/", nil, nil))
		assert.Equal(t, "Bearer first", gotAuth)

		sess.SetToken("second")
		require.NoError(t, client.Get(context.Background(), "/api/ping/", nil, nil))
		assert.Equal(t, "Bearer second", gotAuth)
	})
}

func TestClient_ListParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := testutil.NewServer(func(r *gin.Engine) {
		r.GET("/api/users/", func(c *gin.Context) {
			gotQuery = c.Request.URL.Query()
			c.JSON(http.StatusOK, testutil.OK([]gin.H{}))
		})
	})
	defer srv.Close()

	client, err := transport.New(srv.URL, session.New(""))
	require.NoError(t, err)

	t.Run("EmptyParamsOmitted", func(t *testing.T) {
		var out []struct{}
		require.NoError(t, client.Get(context.Background(), "/api/users/", transport.ListParams{}.Values(), &out))
		assert.NotContains(t, gotQuery, "search", "an empty search parameter would over-filter on the server")
		assert.NotContains(t, gotQuery, "page")
		assert.NotContains(t, gotQuery, "page_size")
	})

	t.Run("NonEmptyParamsSent", func(t *testing.T) {
		params := transport.ListParams{Page: 2, PageSize: 25, Search: "steel"}
		var out []struct{}
		require.NoError(t, client.Get(context.Background(), "/api/users/", params.Values(), &out))
		assert.Equal(t, []string{"2"}, gotQuery["page"])
		assert.Equal(t, []string{"25"}, gotQuery["page_size"])
		assert.Equal(t, []string{"steel"}, gotQuery["search"])
	})
}

func TestClient_EnvelopeDecoding(t *testing.T) {
	srv := testutil.NewServer(func(r *gin.Engine) {
		r.GET("/api/ok/", func(c *gin.Context) {
			c.JSON(http.StatusOK, testutil.OK(gin.H{"id": 7, "name": "Substation A"}))
		})
		r.GET("/api/soft-fail/", func(c *gin.Context) {
			// HTTP 200 but status=false: still a failure.
			c.JSON(http.StatusOK, testutil.Fail("Record is locked"))
		})
		r.GET("/api/hard-fail/", func(c *gin.Context) {
			c.JSON(http.StatusBadRequest, testutil.FailWithFields("Validation failed", map[string][]string{
				"email": {"Email already exists"},
			}))
		})
		r.DELETE("/api/empty/", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
	})
	defer srv.Close()

	client, err := transport.New(srv.URL, session.New("tok"))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("SuccessDecodesData", func(t *testing.T) {
		var out struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		}
		require.NoError(t, client.Get(ctx, "/api/ok/", nil, &out))
		assert.Equal(t, int64(7), out.ID)
		assert.Equal(t, "Substation A", out.Name)
	})

	t.Run("StatusFalseIsError", func(t *testing.T) {
		err := client.Get(ctx, "/api/soft-fail/", nil, nil)
		require.Error(t, err)
		apiErr, ok := console_errors.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, "Record is locked", apiErr.Message)
		assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	})

	t.Run("FieldErrorsFlattened", func(t *testing.T) {
		err := client.Get(ctx, "/api/hard-fail/", nil, nil)
		require.Error(t, err)
		apiErr, ok := console_errors.AsAPIError(err)
		require.True(t, ok)
		msg, ok := apiErr.FieldError("email")
		require.True(t, ok)
		assert.Equal(t, "Email already exists", msg)
	})

	t.Run("EmptySuccessBody", func(t *testing.T) {
		require.NoError(t, client.Delete(ctx, "/api/empty/"))
	})
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := transport.New("", session.New(""))
	assert.ErrorIs(t, err, console_errors.ErrMissingBaseURL)
}
