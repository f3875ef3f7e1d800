package usecase

import (
	"context"

	"github.com/tu-usuario/portal-empleo/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción: el empleador y sus filas de
// asociación se escriben juntos o no se escribe nada. La implementación vive
// en infrastructure/postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		employerRepo repository.EmployerRepository,
		pocRepo repository.PointOfContactRepository,
	) error) error
}
