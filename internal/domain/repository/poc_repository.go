package repository

import "github.com/tu-usuario/portal-empleo/internal/domain/entity"

// PointOfContactRepository define el puerto de persistencia para PointOfContact (DIP).
type PointOfContactRepository interface {
	Create(poc *entity.PointOfContact) error
	GetByID(id string) (*entity.PointOfContact, error)
	GetByEmail(email string) (*entity.PointOfContact, error)
	// GetByIDs resuelve un conjunto de ids; devuelve solo los que existen.
	GetByIDs(ids []string) ([]*entity.PointOfContact, error)
	List() ([]*entity.PointOfContact, error)
	// ListByEmployer devuelve los PoC asociados a un empleador (join muchos-a-muchos).
	ListByEmployer(employerID string) ([]*entity.PointOfContact, error)
	Update(poc *entity.PointOfContact) error
	// Delete elimina el PoC; las filas de asociación caen por cascade, el
	// empleador del otro lado nunca se toca.
	Delete(id string) error
}
