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

var _ repository.PointOfContactRepository = (*PoCRepo)(nil)

const pocColumns = `id, name, email, COALESCE(phone, ''), created_at`

// PoCRepo implementación del puerto PointOfContactRepository sobre PostgreSQL
// (usable con pool o tx).
type PoCRepo struct {
	q Querier
}

// NewPointOfContactRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPointOfContactRepository(q Querier) *PoCRepo {
	return &PoCRepo{q: q}
}

// Create persiste un nuevo PoC; email duplicado se traduce a domain.ErrDuplicate.
func (r *PoCRepo) Create(poc *entity.PointOfContact) error {
	query := `
		INSERT INTO pocs (id, name, email, phone, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)`
	_, err := r.q.Exec(context.Background(), query,
		poc.ID, poc.Name, poc.Email, poc.Phone, poc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert poc: %w", err)
	}
	return nil
}

// GetByID obtiene un PoC por ID.
func (r *PoCRepo) GetByID(id string) (*entity.PointOfContact, error) {
	return r.scanOne(`SELECT `+pocColumns+` FROM pocs WHERE id = $1`, id)
}

// GetByEmail obtiene un PoC por su clave natural.
func (r *PoCRepo) GetByEmail(email string) (*entity.PointOfContact, error) {
	return r.scanOne(`SELECT `+pocColumns+` FROM pocs WHERE email = $1`, email)
}

// GetByIDs resuelve un conjunto de ids; devuelve solo los existentes. El
// caller compara longitudes para detectar referencias rotas.
func (r *PoCRepo) GetByIDs(ids []string) ([]*entity.PointOfContact, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+pocColumns+` FROM pocs WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get pocs by ids: %w", err)
	}
	defer rows.Close()
	return scanPoCs(rows)
}

// List devuelve todos los PoC en orden de creación.
func (r *PoCRepo) List() ([]*entity.PointOfContact, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+pocColumns+` FROM pocs ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list pocs: %w", err)
	}
	defer rows.Close()
	return scanPoCs(rows)
}

// ListByEmployer devuelve los PoC asociados a un empleador vía la tabla de asociación.
func (r *PoCRepo) ListByEmployer(employerID string) ([]*entity.PointOfContact, error) {
	query := `
		SELECT p.id, p.name, p.email, COALESCE(p.phone, ''), p.created_at
		FROM pocs p
		JOIN employer_poc_association a ON a.poc_id = p.id
		WHERE a.employer_id = $1
		ORDER BY p.created_at`
	rows, err := r.q.Query(context.Background(), query, employerID)
	if err != nil {
		return nil, fmt.Errorf("list pocs by employer: %w", err)
	}
	defer rows.Close()
	return scanPoCs(rows)
}

// Update sobreescribe los campos mutables del PoC.
func (r *PoCRepo) Update(poc *entity.PointOfContact) error {
	query := `
		UPDATE pocs SET name = $2, email = $3, phone = NULLIF($4, '')
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, poc.ID, poc.Name, poc.Email, poc.Phone)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update poc: %w", err)
	}
	return nil
}

// Delete elimina un PoC; las filas de asociación caen por el ON DELETE CASCADE
// de la tabla employer_poc_association, los empleadores quedan intactos.
func (r *PoCRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pocs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete poc: %w", err)
	}
	return nil
}

func (r *PoCRepo) scanOne(query string, arg any) (*entity.PointOfContact, error) {
	var p entity.PointOfContact
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get poc: %w", err)
	}
	return &p, nil
}

func scanPoCs(rows pgx.Rows) ([]*entity.PointOfContact, error) {
	var list []*entity.PointOfContact
	for rows.Next() {
		var p entity.PointOfContact
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan poc: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
