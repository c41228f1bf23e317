// testutil/server.go

// Package testutil hosts the fake EPC backend the client tests run against.
// It speaks the same {status, data, message} envelope as the real service.
package testutil

import (
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// OK wraps data in a success envelope.
func OK(data any) gin.H {
	return gin.H{"status": true, "data": data}
}

// Fail wraps a message in a failure envelope. The HTTP status of the
// response is chosen by the handler; a 200 with status=false is valid.
func Fail(message string) gin.H {
	return gin.H{"status": false, "message": message}
}

// FailWithFields wraps a failure envelope carrying a field-keyed error map.
func FailWithFields(message string, fields map[string][]string) gin.H {
	return gin.H{"status": false, "message": message, "errors": fields}
}

// NewServer starts an httptest server around a gin engine populated by
// register. Callers must Close it.
func NewServer(register func(r *gin.Engine)) *httptest.Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)
	return httptest.NewServer(r)
}
