package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/portal-empleo/internal/application/dto"
	"github.com/tu-usuario/portal-empleo/internal/domain"
	"github.com/tu-usuario/portal-empleo/internal/domain/entity"
	"github.com/tu-usuario/portal-empleo/internal/domain/repository"
)

// EmployerUseCase aplica reglas de negocio para empleadores: integridad
// referencial contra Company y PoCs, y escritura transaccional de la entidad
// junto con sus filas de asociación.
type EmployerUseCase struct {
	employerRepo repository.EmployerRepository
	companyRepo  repository.CompanyRepository
	pocRepo      repository.PointOfContactRepository
	txRunner     TxRunner
}

// NewEmployerUseCase construye el caso de uso con los puertos de persistencia.
func NewEmployerUseCase(
	employerRepo repository.EmployerRepository,
	companyRepo repository.CompanyRepository,
	pocRepo repository.PointOfContactRepository,
	txRunner TxRunner,
) *EmployerUseCase {
	return &EmployerUseCase{
		employerRepo: employerRepo,
		companyRepo:  companyRepo,
		pocRepo:      pocRepo,
		txRunner:     txRunner,
	}
}

// Create registra un empleador. La empresa referenciada debe existir y todos
// los poc_ids deben existir; si falta uno solo, la operación falla completa y
// no queda ni el empleador ni ninguna fila de asociación parcial.
func (uc *EmployerUseCase) Create(in dto.CreateEmployerRequest) (*dto.EmployerResponse, error) {
	existing, err := uc.employerRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	if !isUUID(in.CompanyID) {
		return nil, domain.ErrCompanyNotFound
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	pocIDs := dedupe(in.PoCIDs)
	pocs, err := uc.resolvePoCs(pocIDs)
	if err != nil {
		return nil, err
	}

	employer := &entity.Employer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Industry:  in.Industry,
		CompanyID: in.CompanyID,
		CreatedAt: time.Now(),
	}

	// Entidad + asociaciones en una sola transacción: commit total o nada.
	err = uc.txRunner.Run(context.Background(), func(
		employerRepo repository.EmployerRepository,
		_ repository.PointOfContactRepository,
	) error {
		if err := employerRepo.Create(employer); err != nil {
			return err
		}
		return employerRepo.ReplacePoCs(employer.ID, pocIDs)
	})
	if err != nil {
		return nil, err
	}

	return uc.toEmployerResponse(employer, company, pocs), nil
}

// GetByID obtiene un empleador con empresa y PoCs anidados.
func (uc *EmployerUseCase) GetByID(id string) (*dto.EmployerResponse, error) {
	if !isUUID(id) {
		return nil, domain.ErrEmployerNotFound
	}
	employer, err := uc.employerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, domain.ErrEmployerNotFound
	}
	return uc.expand(employer)
}

// List devuelve todos los empleadores con sus relaciones resueltas bajo demanda.
func (uc *EmployerUseCase) List() ([]dto.EmployerResponse, error) {
	list, err := uc.employerRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployerResponse, 0, len(list))
	for _, e := range list {
		resp, err := uc.expand(e)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return items, nil
}

// Update sobreescribe todos los campos mutables y reemplaza el conjunto de
// PoCs asociados, con las mismas verificaciones referenciales que Create.
func (uc *EmployerUseCase) Update(id string, in dto.CreateEmployerRequest) (*dto.EmployerResponse, error) {
	if !isUUID(id) {
		return nil, domain.ErrEmployerNotFound
	}
	employer, err := uc.employerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, domain.ErrEmployerNotFound
	}

	if !isUUID(in.CompanyID) {
		return nil, domain.ErrCompanyNotFound
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	pocIDs := dedupe(in.PoCIDs)
	pocs, err := uc.resolvePoCs(pocIDs)
	if err != nil {
		return nil, err
	}

	employer.Name = in.Name
	employer.Email = in.Email
	employer.Phone = in.Phone
	employer.Industry = in.Industry
	employer.CompanyID = in.CompanyID

	err = uc.txRunner.Run(context.Background(), func(
		employerRepo repository.EmployerRepository,
		_ repository.PointOfContactRepository,
	) error {
		if err := employerRepo.Update(employer); err != nil {
			return err
		}
		return employerRepo.ReplacePoCs(employer.ID, pocIDs)
	})
	if err != nil {
		return nil, err
	}

	return uc.toEmployerResponse(employer, company, pocs), nil
}

// Delete elimina un empleador; sus filas de asociación caen por cascade y los
// PoC del otro lado quedan intactos.
func (uc *EmployerUseCase) Delete(id string) error {
	if !isUUID(id) {
		return domain.ErrEmployerNotFound
	}
	employer, err := uc.employerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if employer == nil {
		return domain.ErrEmployerNotFound
	}
	return uc.employerRepo.Delete(id)
}

// resolvePoCs trae los PoC referenciados y exige que existan todos. El caller
// pasa ids ya dedupeados; uno mal formado no puede existir y corta igual.
func (uc *EmployerUseCase) resolvePoCs(ids []string) ([]*entity.PointOfContact, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	for _, id := range ids {
		if !isUUID(id) {
			return nil, domain.ErrPoCNotFound
		}
	}
	pocs, err := uc.pocRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(pocs) != len(ids) {
		return nil, domain.ErrPoCNotFound
	}
	return pocs, nil
}

func (uc *EmployerUseCase) expand(e *entity.Employer) (*dto.EmployerResponse, error) {
	company, err := uc.companyRepo.GetByID(e.CompanyID)
	if err != nil {
		return nil, err
	}
	pocs, err := uc.pocRepo.ListByEmployer(e.ID)
	if err != nil {
		return nil, err
	}
	return uc.toEmployerResponse(e, company, pocs), nil
}

func (uc *EmployerUseCase) toEmployerResponse(e *entity.Employer, company *entity.Company, pocs []*entity.PointOfContact) *dto.EmployerResponse {
	pocItems := make([]dto.PoCResponse, 0, len(pocs))
	for _, p := range pocs {
		pocItems = append(pocItems, *toPoCResponse(p))
	}
	return &dto.EmployerResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Industry:  e.Industry,
		Company:   toCompanyResponse(company),
		PoCs:      pocItems,
		CreatedAt: e.CreatedAt,
	}
}
