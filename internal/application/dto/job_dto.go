package dto

import "time"

// CreateJobPostingRequest entrada para publicar una oferta.
type CreateJobPostingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
}

// JobPostingResponse salida de una oferta publicada.
type JobPostingResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	PostedAt    time.Time `json:"posted_at"`
	EmployerID  string    `json:"employer_id"`
}
