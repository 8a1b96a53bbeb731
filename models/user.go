package models

import "time"

// Roles supported by the platform
const (
	RoleJobSeeker = "job_seeker"
	RoleRecruiter = "recruiter"
)

// User represents a user account in Firestore
// @Description User account information
type User struct {
	ID        string    `json:"id" firestore:"-" example:"f8a1c7e2-4b3d-4f6a-9c1e-2d5b8a7c6e4f"`
	Email     string    `json:"email" firestore:"email" example:"user@example.com"`
	Name      string    `json:"name" firestore:"name" example:"John Doe"`
	Password  string    `json:"-" firestore:"password"` // Hashed password, never sent to client
	Role      string    `json:"role" firestore:"role" example:"job_seeker"`
	Phone     string    `json:"phone,omitempty" firestore:"phone"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// RegisterRequest represents registration request
// @Description User registration request
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email" example:"user@example.com"`
	Password    string `json:"password" binding:"required,min=6" example:"password123"`
	Name        string `json:"name" binding:"required" example:"John Doe"`
	Role        string `json:"role" binding:"required,oneof=job_seeker recruiter" example:"job_seeker"`
	CompanyName string `json:"companyName,omitempty" example:"Acme Corp"` // required for recruiters
}

// LoginRequest represents login request
// @Description User login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// AuthResponse represents authentication response
// @Description Authentication response with JWT token
type AuthResponse struct {
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User    *User  `json:"user"`
	Message string `json:"message,omitempty" example:"Login successful"`
}
