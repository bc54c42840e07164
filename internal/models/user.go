package models

import "time"

type UserRole string

const (
	UserRoleUser    UserRole = "user"
	UserRoleOfficer UserRole = "officer"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
