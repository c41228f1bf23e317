// model/envelope.go
package model

import "encoding/json"

// Envelope is the wrapper every backend response follows. A 200 response can
// still carry Status=false with a human-readable Message, so Status must be
// checked before Data is trusted.
type Envelope struct {
	Status  bool                `json:"status"`
	Data    json.RawMessage     `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
