package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// NotificationPermission mirrors the browser's tri-state notification
// permission for a user; the reminder scheduler only acts on "granted".
type NotificationPermission string

const (
	NotificationDefault NotificationPermission = "default"
	NotificationGranted NotificationPermission = "granted"
	NotificationDenied  NotificationPermission = "denied"
)

// Valid reports whether p is one of the known permission states.
func (p NotificationPermission) Valid() bool {
	switch p {
	case NotificationDefault, NotificationGranted, NotificationDenied:
		return true
	}
	return false
}

// User represents an account in the system
type User struct {
	BaseModel
	Email                  string                 `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password               string                 `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Name                   string                 `gorm:"size:100" json:"name"`
	NotificationPermission NotificationPermission `gorm:"size:10;default:'default'" json:"notificationPermission"`

	// Relations (not always preloaded)
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
	Medications   []Medication   `gorm:"foreignKey:UserID" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID                     string                 `json:"id"`
	Email                  string                 `json:"email"`
	Name                   string                 `json:"name"`
	NotificationPermission NotificationPermission `json:"notificationPermission"`
	CreatedAt              time.Time              `json:"createdAt"`
	UpdatedAt              time.Time              `json:"updatedAt"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:                     u.ID,
		Email:                  u.Email,
		Name:                   u.Name,
		NotificationPermission: u.NotificationPermission,
		CreatedAt:              u.CreatedAt,
		UpdatedAt:              u.UpdatedAt,
	}
}
