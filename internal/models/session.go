package models

import (
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	UserTypeStudent = "student"
	UserTypeAdmin   = "admin"
)

type Claims struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserType     string    `json:"user_type"`
	RefreshToken string    `json:"-"`
	DeviceInfo   string    `json:"device_info,omitempty"`
	IPAddress    string    `json:"ip_address,omitempty"`
	UserAgent    string    `json:"user_agent,omitempty"`
	LastActivity time.Time `json:"last_activity"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	RollNo   string `json:"roll_no"`
	Password string `json:"password"`
}
