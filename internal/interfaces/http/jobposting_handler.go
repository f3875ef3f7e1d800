package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/portal-empleo/internal/application/dto"
	"github.com/tu-usuario/portal-empleo/internal/application/usecase"
	"github.com/tu-usuario/portal-empleo/internal/domain"
)

// JobPostingHandler maneja publicación y listado de ofertas.
type JobPostingHandler struct {
	uc *usecase.JobPostingUseCase
}

// NewJobPostingHandler construye el handler de ofertas.
func NewJobPostingHandler(uc *usecase.JobPostingUseCase) *JobPostingHandler {
	return &JobPostingHandler{uc: uc}
}

// Create publica una oferta a nombre de employer_id (query). Corre detrás de
// AuthMiddleware: el subject del token debe ser el mismo usuario employer.
// 404 empleador inexistente, 403 rol incorrecto o usuario ajeno, 400 título duplicado.
func (h *JobPostingHandler) Create(c *fiber.Ctx) error {
	employerID := c.Query("employer_id")
	if employerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employer_id es requerido"})
	}
	var in dto.CreateJobPostingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y description son requeridos"})
	}
	job, err := h.uc.Create(GetSubject(c), employerID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmployerNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleador no encontrado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el propio employer puede publicar ofertas"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya publicaste una oferta con ese título"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// ListByEmployer devuelve las ofertas de un empleador.
func (h *JobPostingHandler) ListByEmployer(c *fiber.Ctx) error {
	items, err := h.uc.ListByEmployer(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(items)
}
