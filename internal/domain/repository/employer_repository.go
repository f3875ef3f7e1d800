package repository

import "github.com/tu-usuario/portal-empleo/internal/domain/entity"

// EmployerRepository define el puerto de persistencia para Employer (DIP).
type EmployerRepository interface {
	Create(employer *entity.Employer) error
	GetByID(id string) (*entity.Employer, error)
	GetByEmail(email string) (*entity.Employer, error)
	List() ([]*entity.Employer, error)
	Update(employer *entity.Employer) error
	// ReplacePoCs reemplaza el conjunto completo de asociaciones empleador↔PoC.
	ReplacePoCs(employerID string, pocIDs []string) error
	// Delete elimina el empleador; sus filas de asociación caen por cascade.
	Delete(id string) error
}
