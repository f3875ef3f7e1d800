package entity

import "time"

// JobPosting oferta publicada por un usuario con rol employer.
// (EmployerID, Title) es único; Company es texto libre, no una FK.
type JobPosting struct {
	ID          string
	Title       string
	Description string
	Company     string
	Location    string
	PostedAt    time.Time // reloj del servidor al crear
	EmployerID  string    // FK a users
}
