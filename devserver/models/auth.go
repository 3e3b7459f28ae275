// ABOUTME: Auth request/response models for the single admin account
// ABOUTME: Defines registration, login, and provisioning status contracts

package models

// AuthRequest carries the admin password for register and login
type AuthRequest struct {
	Password string `json:"password"`
}

// AuthResponse is returned by a successful register or login
type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// AuthStatusResponse reports whether the admin has been provisioned
type AuthStatusResponse struct {
	HasAdmin bool `json:"hasAdmin"`
}

// MinPasswordLength is the shortest admin password accepted
const MinPasswordLength = 6

// AdminsCollection holds the one admin document with its password hash
const AdminsCollection = "admins"
