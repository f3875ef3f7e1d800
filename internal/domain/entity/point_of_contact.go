package entity

import "time"

// PointOfContact persona de contacto asociada a cero o más empleadores
// (relación muchos-a-muchos vía employer_poc_association).
type PointOfContact struct {
	ID        string
	Name      string
	Email     string // clave natural única
	Phone     string
	CreatedAt time.Time
}
