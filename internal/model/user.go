package model

import (
	"database/sql"
	"time"
)

// User roles as stored in the users.role column.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a user row. AuthHash and the reset fields never leave the server.
type User struct {
	ID          int64
	Username    string
	Email       string
	Avatar      string
	Role        string
	AuthHash    string
	ResetToken  sql.NullString
	ResetExpiry sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateUserRequest is a registration request body.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is a login request body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Credentials is the payload of a successful login.
type Credentials struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

// PasswordMask is what the API returns in Profile.Password.
const PasswordMask = "********"

// Profile is the user record as the API exposes it. Password carries the mask
// on reads and, on updates, either the mask (keep current password) or a new
// plaintext password; the hash itself never leaves the server.
type Profile struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Password   string    `json:"password,omitempty"`
	Email      string    `json:"email"`
	Avatar     string    `json:"avatar,omitempty"`
	CreateTime time.Time `json:"createTime"`
}

// ProfileFromUser builds the API view of a user row.
func ProfileFromUser(u *User) Profile {
	return Profile{
		ID:         u.ID,
		Username:   u.Username,
		Password:   PasswordMask,
		Email:      u.Email,
		Avatar:     u.Avatar,
		CreateTime: u.CreatedAt,
	}
}
