package entity

import "time"

// Company representa una empresa registrada. Nombre y email son claves naturales únicas.
type Company struct {
	ID          string
	Name        string
	Industry    string
	About       string
	Website     string
	Email       string
	Phone       string
	Location    string
	Established int // año de fundación, 0 = no informado
	CreatedAt   time.Time
}
