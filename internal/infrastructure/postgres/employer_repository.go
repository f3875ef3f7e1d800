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

var _ repository.EmployerRepository = (*EmployerRepo)(nil)

const employerColumns = `id, name, email, COALESCE(phone, ''), COALESCE(industry, ''), company_id, created_at`

// EmployerRepo implementación del puerto EmployerRepository sobre PostgreSQL
// (usable con pool o tx).
type EmployerRepo struct {
	q Querier
}

// NewEmployerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployerRepository(q Querier) *EmployerRepo {
	return &EmployerRepo{q: q}
}

// Create persiste un nuevo empleador. Traduce 23505 a domain.ErrDuplicate y
// 23503 (empresa borrada entre el check y el insert) a domain.ErrCompanyNotFound.
func (r *EmployerRepo) Create(employer *entity.Employer) error {
	query := `
		INSERT INTO employers (id, name, email, phone, industry, company_id, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		employer.ID, employer.Name, employer.Email, employer.Phone,
		employer.Industry, employer.CompanyID, employer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrCompanyNotFound
		}
		return fmt.Errorf("insert employer: %w", err)
	}
	return nil
}

// GetByID obtiene un empleador por ID.
func (r *EmployerRepo) GetByID(id string) (*entity.Employer, error) {
	return r.scanOne(`SELECT `+employerColumns+` FROM employers WHERE id = $1`, id)
}

// GetByEmail obtiene un empleador por su clave natural.
func (r *EmployerRepo) GetByEmail(email string) (*entity.Employer, error) {
	return r.scanOne(`SELECT `+employerColumns+` FROM employers WHERE email = $1`, email)
}

// List devuelve todos los empleadores en orden de creación.
func (r *EmployerRepo) List() ([]*entity.Employer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+employerColumns+` FROM employers ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list employers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employer
	for rows.Next() {
		var e entity.Employer
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Industry, &e.CompanyID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employer: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update sobreescribe los campos mutables del empleador.
func (r *EmployerRepo) Update(employer *entity.Employer) error {
	query := `
		UPDATE employers
		SET name = $2, email = $3, phone = NULLIF($4, ''), industry = NULLIF($5, ''), company_id = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		employer.ID, employer.Name, employer.Email, employer.Phone, employer.Industry, employer.CompanyID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrCompanyNotFound
		}
		return fmt.Errorf("update employer: %w", err)
	}
	return nil
}

// ReplacePoCs reemplaza el conjunto de asociaciones empleador↔PoC. Debe correr
// dentro de la misma tx que el insert/update del empleador para que no queden
// asociaciones parciales.
func (r *EmployerRepo) ReplacePoCs(employerID string, pocIDs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`DELETE FROM employer_poc_association WHERE employer_id = $1`, employerID); err != nil {
		return fmt.Errorf("clear employer pocs: %w", err)
	}
	for _, pocID := range pocIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO employer_poc_association (employer_id, poc_id) VALUES ($1, $2)`,
			employerID, pocID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrPoCNotFound
			}
			return fmt.Errorf("insert employer poc: %w", err)
		}
	}
	return nil
}

// Delete elimina el empleador; sus asociaciones caen por ON DELETE CASCADE.
func (r *EmployerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employer: %w", err)
	}
	return nil
}

func (r *EmployerRepo) scanOne(query string, arg any) (*entity.Employer, error) {
	var e entity.Employer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&e.ID, &e.Name, &e.Email, &e.Phone, &e.Industry, &e.CompanyID, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employer: %w", err)
	}
	return &e, nil
}
