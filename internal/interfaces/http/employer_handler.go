package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/portal-empleo/internal/application/dto"
	"github.com/tu-usuario/portal-empleo/internal/application/usecase"
	"github.com/tu-usuario/portal-empleo/internal/domain"
)

// EmployerHandler maneja el CRUD de empleadores.
type EmployerHandler struct {
	uc *usecase.EmployerUseCase
}

// NewEmployerHandler construye el handler de empleadores.
func NewEmployerHandler(uc *usecase.EmployerUseCase) *EmployerHandler {
	return &EmployerHandler{uc: uc}
}

// Create registra un empleador. 400 para email duplicado, empresa inexistente
// o algún poc_id inexistente; en esos casos no se persiste nada.
func (h *EmployerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.CompanyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y company_id son requeridos"})
	}
	employer, err := h.uc.Create(in)
	if err != nil {
		return employerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(employer)
}

// List devuelve todos los empleadores con empresa y PoCs anidados.
func (h *EmployerHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(items)
}

// GetByID devuelve un empleador; 404 si no existe.
func (h *EmployerHandler) GetByID(c *fiber.Ctx) error {
	employer, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEmployerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleador no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(employer)
}

// Update sobreescribe el empleador y su conjunto de PoCs. 404 si no existe.
func (h *EmployerHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateEmployerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employer, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmployerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleador no encontrado"})
		}
		return employerError(c, err)
	}
	return c.JSON(employer)
}

// Delete elimina un empleador; sus filas de asociación caen por cascade. 404 si no existe.
func (h *EmployerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrEmployerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleador no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(fiber.Map{"message": "empleador eliminado"})
}

// employerError mapea los fallos de integridad de Create/Update. La superficie
// original responde 400 también para referencias rotas, así que se conserva.
func employerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un empleador con ese email o nombre"})
	case errors.Is(err, domain.ErrCompanyNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "la empresa no existe"})
	case errors.Is(err, domain.ErrPoCNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "POC_NOT_FOUND", Message: "uno o más PoC no existen"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
