package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	// ErrRoleCompany es la invariante rol/empresa: employer y point_of_contact
	// requieren empresa, employee no puede tenerla. Distinto de los errores de
	// formato para que el handler reporte el caso con su propio mensaje.
	ErrRoleCompany = errors.New("combinación de rol y empresa inválida")
)

// Variantes por entidad. Envuelven ErrNotFound: el handler distingue cada caso
// con errors.Is sobre la variante y un matcheo genérico sigue funcionando.
var (
	ErrCompanyNotFound  = fmt.Errorf("empresa no encontrada: %w", ErrNotFound)
	ErrPoCNotFound      = fmt.Errorf("uno o más PoC no existen: %w", ErrNotFound)
	ErrEmployerNotFound = fmt.Errorf("empleador no encontrado: %w", ErrNotFound)
)
