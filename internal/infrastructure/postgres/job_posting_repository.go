package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/portal-empleo/internal/domain"
	"github.com/tu-usuario/portal-empleo/internal/domain/entity"
	"github.com/tu-usuario/portal-empleo/internal/domain/repository"
)

var _ repository.JobPostingRepository = (*JobPostingRepo)(nil)

const jobColumns = `id, title, description, COALESCE(company, ''), COALESCE(location, ''), posted_at, employer_id`

// JobPostingRepo implementación del puerto JobPostingRepository sobre PostgreSQL.
type JobPostingRepo struct {
	q Querier
}

// NewJobPostingRepository construye el adaptador de persistencia para ofertas.
func NewJobPostingRepository(q Querier) *JobPostingRepo {
	return &JobPostingRepo{q: q}
}

// Create persiste una oferta. La constraint UNIQUE (employer_id, title) es el
// backstop contra publicaciones duplicadas concurrentes; 23503 cubre el caso
// del usuario borrado entre el check y el insert.
func (r *JobPostingRepo) Create(job *entity.JobPosting) error {
	query := `
		INSERT INTO job_postings (id, title, description, company, location, posted_at, employer_id)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.Title, job.Description, job.Company, job.Location, job.PostedAt, job.EmployerID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrEmployerNotFound
		}
		return fmt.Errorf("insert job posting: %w", err)
	}
	return nil
}

// GetByEmployerAndTitle busca por la clave natural (employer_id, title).
func (r *JobPostingRepo) GetByEmployerAndTitle(employerID, title string) (*entity.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE employer_id = $1 AND title = $2`
	var j entity.JobPosting
	err := r.q.QueryRow(context.Background(), query, employerID, title).Scan(
		&j.ID, &j.Title, &j.Description, &j.Company, &j.Location, &j.PostedAt, &j.EmployerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job posting: %w", err)
	}
	return &j, nil
}

// ListByEmployer devuelve las ofertas de un empleador en orden de publicación.
func (r *JobPostingRepo) ListByEmployer(employerID string) ([]*entity.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE employer_id = $1 ORDER BY posted_at`
	rows, err := r.q.Query(context.Background(), query, employerID)
	if err != nil {
		return nil, fmt.Errorf("list job postings: %w", err)
	}
	defer rows.Close()
	var list []*entity.JobPosting
	for rows.Next() {
		var j entity.JobPosting
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.Company, &j.Location, &j.PostedAt, &j.EmployerID); err != nil {
			return nil, fmt.Errorf("scan job posting: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}
