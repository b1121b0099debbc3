package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the account row owned by the data backend. The raw row never
// crosses the service boundary; callers only ever see UserProfile.
type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Email     string    `gorm:"column:email;size:255;unique;not null" json:"email"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// Profile returns the reduced projection exposed to callers.
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}

// UserProfile is the safe subset of an account: no credential, no
// backend-internal fields.
type UserProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the safe subset of an authenticated session.
type Session struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

// RegisterRequest defines the input for account registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest defines the input for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
