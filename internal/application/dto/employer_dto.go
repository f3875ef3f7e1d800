package dto

import "time"

// CreateEmployerRequest entrada para crear o actualizar un empleador.
// PoCIDs es el conjunto completo de asociaciones deseado.
type CreateEmployerRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	Industry  string   `json:"industry,omitempty"`
	CompanyID string   `json:"company_id"`
	PoCIDs    []string `json:"poc_ids"`
}

// EmployerResponse salida de un empleador con empresa y PoCs anidados.
type EmployerResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone,omitempty"`
	Industry  string           `json:"industry,omitempty"`
	Company   *CompanyResponse `json:"company,omitempty"`
	PoCs      []PoCResponse    `json:"pocs"`
	CreatedAt time.Time        `json:"created_at"`
}
