package entity

import "time"

// Role enumeración cerrada de roles de usuario, usada de punta a punta.
type Role string

const (
	RoleEmployer       Role = "employer"
	RoleEmployee       Role = "employee"
	RolePointOfContact Role = "point_of_contact"
)

// IsValid reporta si el rol es uno de los tres conocidos.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployer, RoleEmployee, RolePointOfContact:
		return true
	}
	return false
}

// RequiresCompany reporta si el rol exige empresa (employer y point_of_contact).
func (r Role) RequiresCompany() bool {
	return r == RoleEmployer || r == RolePointOfContact
}

// User representa una cuenta del portal. Inmutable después del registro.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt, nunca el password plano
	Role         Role
	Company      string // vacío salvo para employer y point_of_contact
	CreatedAt    time.Time
}
