package model

import "time"

// UserRole controls which signup fields are required: students must carry a
// class, admins a credential.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// User is a library account. BorrowedDocuments counts currently open
// borrowings and is maintained by the borrowing ledger, not by callers.
type User struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Role              UserRole  `json:"role"`
	Class             string    `json:"class,omitempty"`
	StudentID         string    `json:"student_id,omitempty"`
	PasswordHash      string    `json:"-"`
	BorrowedDocuments int       `json:"borrowed_documents"`
	CreatedAt         time.Time `json:"created_at"`
}
