// internal/model/user.go
package model

import (
	"strings"
	"time"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"type:varchar(254);not null;uniqueIndex"`
	FirstName    string `gorm:"type:varchar(150)"`
	LastName     string `gorm:"type:varchar(150)"`
	PasswordHash string `gorm:"not null"`
	IsStaff      bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type ContextKey string

const (
	UserIDKey  ContextKey = "userID"
	IsStaffKey ContextKey = "isStaff"
)

// UserResponse はクライアントに返すユーザー情報の構造体
type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

func NewUserResponse(u *User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, FullName: u.FullName()}
}
