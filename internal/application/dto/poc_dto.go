package dto

import "time"

// CreatePoCRequest entrada para crear un punto de contacto.
// Los mismos campos sirven para actualizar: el update sobreescribe todo.
type CreatePoCRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// PoCResponse salida de un punto de contacto.
type PoCResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
