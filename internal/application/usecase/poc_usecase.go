package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/portal-empleo/internal/application/dto"
	"github.com/tu-usuario/portal-empleo/internal/domain"
	"github.com/tu-usuario/portal-empleo/internal/domain/entity"
	"github.com/tu-usuario/portal-empleo/internal/domain/repository"
)

// PoCUseCase aplica reglas de negocio para puntos de contacto.
type PoCUseCase struct {
	repo repository.PointOfContactRepository
}

// NewPoCUseCase construye el caso de uso con el puerto de persistencia.
func NewPoCUseCase(repo repository.PointOfContactRepository) *PoCUseCase {
	return &PoCUseCase{repo: repo}
}

// Create registra un PoC. Devuelve domain.ErrDuplicate si el email ya existe.
func (uc *PoCUseCase) Create(in dto.CreatePoCRequest) (*dto.PoCResponse, error) {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	poc := &entity.PointOfContact{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(poc); err != nil {
		return nil, err
	}
	return toPoCResponse(poc), nil
}

// GetByID obtiene un PoC; domain.ErrPoCNotFound si no existe. Un id mal
// formado nunca puede existir (columna UUID), así que responde igual.
func (uc *PoCUseCase) GetByID(id string) (*dto.PoCResponse, error) {
	if !isUUID(id) {
		return nil, domain.ErrPoCNotFound
	}
	poc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if poc == nil {
		return nil, domain.ErrPoCNotFound
	}
	return toPoCResponse(poc), nil
}

// List devuelve todos los PoC.
func (uc *PoCUseCase) List() ([]dto.PoCResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PoCResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPoCResponse(p))
	}
	return items, nil
}

// Update sobreescribe todos los campos mutables del PoC.
func (uc *PoCUseCase) Update(id string, in dto.CreatePoCRequest) (*dto.PoCResponse, error) {
	if !isUUID(id) {
		return nil, domain.ErrPoCNotFound
	}
	poc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if poc == nil {
		return nil, domain.ErrPoCNotFound
	}
	poc.Name = in.Name
	poc.Email = in.Email
	poc.Phone = in.Phone
	if err := uc.repo.Update(poc); err != nil {
		return nil, err
	}
	return toPoCResponse(poc), nil
}

// Delete elimina un PoC. Solo caen las filas de asociación, nunca los empleadores.
func (uc *PoCUseCase) Delete(id string) error {
	if !isUUID(id) {
		return domain.ErrPoCNotFound
	}
	poc, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if poc == nil {
		return domain.ErrPoCNotFound
	}
	return uc.repo.Delete(id)
}

func toPoCResponse(p *entity.PointOfContact) *dto.PoCResponse {
	if p == nil {
		return nil
	}
	return &dto.PoCResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
	}
}
