package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleGuest = "guest"
)

// User representa una cuenta con acceso a la API (el principal autenticado).
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, guest
	CreatedAt    time.Time
}

// ValidRole indica si role pertenece al conjunto cerrado de roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleGuest
}
