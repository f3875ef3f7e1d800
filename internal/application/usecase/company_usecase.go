package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/portal-empleo/internal/application/dto"
	"github.com/tu-usuario/portal-empleo/internal/domain"
	"github.com/tu-usuario/portal-empleo/internal/domain/entity"
	"github.com/tu-usuario/portal-empleo/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registra una nueva empresa. Devuelve domain.ErrDuplicate si el nombre
// ya existe; el pre-check es solo optimización, la constraint única decide.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Industry:    in.Industry,
		About:       in.About,
		Website:     in.Website,
		Email:       in.Email,
		Phone:       in.Phone,
		Location:    in.Location,
		Established: in.Established,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List devuelve todas las empresas.
func (uc *CompanyUseCase) List() ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return items, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Industry:    c.Industry,
		About:       c.About,
		Website:     c.Website,
		Email:       c.Email,
		Phone:       c.Phone,
		Location:    c.Location,
		Established: c.Established,
		CreatedAt:   c.CreatedAt,
	}
}
