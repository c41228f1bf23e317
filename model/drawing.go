// model/drawing.go
package model

import "time"

// Attachment is always a member of an owning entity's attachment list.
// Updates express attachment changes as a diff (ids to remove plus new files
// to append), never by replacing the whole list.
type Attachment struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// Drawing represents one engineering drawing revision cycle
// (submit -> approve/comment -> resubmit). Version, revision and approval
// status are opaque server-decided values; the client only displays them and
// sends the next desired value.
type Drawing struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	DrawingNumber  string       `json:"drawing_number"`
	RevisionNumber string       `json:"revision_number,omitempty"`
	VersionNumber  string       `json:"version_number,omitempty"`
	ApprovalStatus string       `json:"approval_status,omitempty"`
	Comment        string       `json:"comment,omitempty"`
	ProjectID      int64        `json:"project_id"`
	Attachments    []Attachment `json:"drawing_and_design_attachments,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
