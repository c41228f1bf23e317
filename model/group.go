// model/group.go
package model

import (
	"encoding/json"
	"time"
)

// Permission exposes four independent permission ids for one named resource.
// No two of the four ids are related; each one is toggled on its own.
type Permission struct {
	Name   string `json:"name"`
	Add    int64  `json:"add"`
	Change int64  `json:"change"`
	Delete int64  `json:"delete"`
	View   int64  `json:"view"`
}

// IDs returns the four permission ids of the row.
func (p Permission) IDs() []int64 {
	return []int64{p.Add, p.Change, p.Delete, p.View}
}

type Group struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Permissions []int64 `json:"permissions,omitempty"`
	// PermissionList is the nested per-resource breakdown some group payloads
	// carry instead of the flat id list. Its shape varies between deployments,
	// so it is kept raw and decoded tolerantly by form.ExtractPermissionIDs.
	PermissionList json.RawMessage `json:"permission_list,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
