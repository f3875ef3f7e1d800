package entity

import "time"

// Employer organización empleadora. Pertenece a exactamente una Company y se
// asocia a sus PoC por la tabla employer_poc_association; aquí solo se guarda
// la FK, las filas relacionadas se resuelven bajo demanda.
type Employer struct {
	ID        string
	Name      string // clave natural única
	Email     string // clave natural única
	Phone     string
	Industry  string
	CompanyID string
	CreatedAt time.Time
}
