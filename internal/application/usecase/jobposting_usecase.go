package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/portal-empleo/internal/application/dto"
	"github.com/tu-usuario/portal-empleo/internal/domain"
	"github.com/tu-usuario/portal-empleo/internal/domain/entity"
	"github.com/tu-usuario/portal-empleo/internal/domain/repository"
)

// JobPostingUseCase aplica reglas de negocio para ofertas: solo el propio
// usuario autenticado con rol employer publica, y (employer_id, title) es único.
type JobPostingUseCase struct {
	jobRepo  repository.JobPostingRepository
	userRepo repository.UserRepository
}

// NewJobPostingUseCase construye el caso de uso con los puertos de persistencia.
func NewJobPostingUseCase(jobRepo repository.JobPostingRepository, userRepo repository.UserRepository) *JobPostingUseCase {
	return &JobPostingUseCase{jobRepo: jobRepo, userRepo: userRepo}
}

// Create publica una oferta a nombre de employerID. actor es el subject del
// bearer token: debe ser el mismo usuario que employerID. PostedAt lo fija el
// reloj del servidor.
func (uc *JobPostingUseCase) Create(actor, employerID string, in dto.CreateJobPostingRequest) (*dto.JobPostingResponse, error) {
	if !isUUID(employerID) {
		return nil, domain.ErrEmployerNotFound
	}
	employer, err := uc.userRepo.GetByID(employerID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, domain.ErrEmployerNotFound
	}
	if employer.Role != entity.RoleEmployer {
		return nil, domain.ErrForbidden
	}
	if employer.Username != actor {
		return nil, domain.ErrForbidden
	}

	existing, err := uc.jobRepo.GetByEmployerAndTitle(employerID, in.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	job := &entity.JobPosting{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Company:     in.Company,
		Location:    in.Location,
		PostedAt:    time.Now().UTC(),
		EmployerID:  employerID,
	}
	if err := uc.jobRepo.Create(job); err != nil {
		return nil, err
	}
	return toJobPostingResponse(job), nil
}

// ListByEmployer devuelve las ofertas de un empleador. Un empleador sin
// ofertas, inexistente o con id mal formado produce lista vacía, igual que el
// listado original.
func (uc *JobPostingUseCase) ListByEmployer(employerID string) ([]dto.JobPostingResponse, error) {
	if !isUUID(employerID) {
		return []dto.JobPostingResponse{}, nil
	}
	list, err := uc.jobRepo.ListByEmployer(employerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.JobPostingResponse, 0, len(list))
	for _, j := range list {
		items = append(items, *toJobPostingResponse(j))
	}
	return items, nil
}

func toJobPostingResponse(j *entity.JobPosting) *dto.JobPostingResponse {
	if j == nil {
		return nil
	}
	return &dto.JobPostingResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Company:     j.Company,
		Location:    j.Location,
		PostedAt:    j.PostedAt,
		EmployerID:  j.EmployerID,
	}
}
