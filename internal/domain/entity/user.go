package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// ValidRole indica si el rol es uno de los soportados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin | employee
	CreatedAt    time.Time
}
