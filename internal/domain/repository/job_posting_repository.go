package repository

import "github.com/tu-usuario/portal-empleo/internal/domain/entity"

// JobPostingRepository define el puerto de persistencia para JobPosting (DIP).
type JobPostingRepository interface {
	Create(job *entity.JobPosting) error
	// GetByEmployerAndTitle busca por la clave natural (employer_id, title).
	GetByEmployerAndTitle(employerID, title string) (*entity.JobPosting, error)
	ListByEmployer(employerID string) ([]*entity.JobPosting, error)
}
