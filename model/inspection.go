// model/inspection.go
package model

import "time"

type Inspection struct {
	ID           int64        `json:"id"`
	ProjectID    int64        `json:"project_id"`
	MaterialID   int64        `json:"material_id,omitempty"`
	MaterialName string       `json:"material_name,omitempty"`
	Status       string       `json:"status"`
	Remarks      string       `json:"remarks,omitempty"`
	InspectedBy  string       `json:"inspected_by,omitempty"`
	VerifiedBy   string       `json:"verified_by,omitempty"`
	Attachments  []Attachment `json:"inspection_quality_report_attachments,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type QualityItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
