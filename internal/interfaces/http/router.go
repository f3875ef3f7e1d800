package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/portal-empleo/internal/application/auth"
	"github.com/tu-usuario/portal-empleo/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CompanyUC  *usecase.CompanyUseCase
	PoCUC      *usecase.PoCUseCase
	EmployerUC *usecase.EmployerUseCase
	JobUC      *usecase.JobPostingUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las rutas siguen la superficie del
// portal: registro/login públicos, registries públicos, y publicación de
// ofertas protegida con Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)

	// Companies
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	app.Post("/companies", companyHandler.Create)
	app.Get("/companies", companyHandler.List)

	// Points of contact
	pocHandler := NewPoCHandler(deps.PoCUC)
	app.Post("/pocs", pocHandler.Create)
	app.Get("/pocs", pocHandler.List)
	app.Get("/pocs/:id", pocHandler.GetByID)
	app.Put("/pocs/:id", pocHandler.Update)
	app.Delete("/pocs/:id", pocHandler.Delete)

	// Employers
	employerHandler := NewEmployerHandler(deps.EmployerUC)
	app.Post("/employers", employerHandler.Create)
	app.Get("/employers", employerHandler.List)
	app.Get("/employers/:id", employerHandler.GetByID)
	app.Put("/employers/:id", employerHandler.Update)
	app.Delete("/employers/:id", employerHandler.Delete)

	// Job postings: publicar requiere Bearer Token, listar es público
	jobHandler := NewJobPostingHandler(deps.JobUC)
	app.Post("/jobpost", AuthMiddleware(deps.JWTSecret), jobHandler.Create)
	app.Get("/jobpost/employer/:id", jobHandler.ListByEmployer)
}
