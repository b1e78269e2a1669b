package models

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleOwner UserRole = "OWNER"
	RoleStaff UserRole = "STAFF"
)

func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleOwner:
		return RoleOwner, true
	case RoleStaff:
		return RoleStaff, true
	}
	return "", false
}

type User struct {
	ID           string    `json:"id"`
	BusinessID   string    `json:"business_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type Business struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	WhatsAppPhoneNumber string    `json:"whatsapp_phone_number"`
	CreatedAt           time.Time `json:"created_at"`
}
