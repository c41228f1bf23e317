// model/user.go
package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Designation  string    `json:"designation,omitempty"`
	IsActive     bool      `json:"is_active"`
	DepartmentID int64     `json:"department_id,omitempty"`
	GroupID      int64     `json:"group_id,omitempty"`
	ProjectID    int64     `json:"project_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserAssignments is the resolved department/group/project linkage for a
// single user. Department and group are always present once a user has been
// assigned; the project linkage is optional and removable on its own.
type UserAssignments struct {
	User       User        `json:"user"`
	Department *Department `json:"department,omitempty"`
	Group      *Group      `json:"group,omitempty"`
	Project    *Project    `json:"project,omitempty"`
}
