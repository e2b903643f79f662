package dto

import "time"

// CreateCampusRequest entrada para crear un campus.
type CreateCampusRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=120"`
	Code    string `json:"code" validate:"required,min=1,max=20"`
	Address string `json:"address" validate:"omitempty,max=300"`
}

// UpdateCampusRequest entrada para actualizar un campus (campos opcionales).
type UpdateCampusRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=120"`
	Code    *string `json:"code" validate:"omitempty,min=1,max=20"`
	Address *string `json:"address" validate:"omitempty,max=300"`
}

// CampusResponse salida de un campus.
type CampusResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CampusListResponse lista de campus.
type CampusListResponse struct {
	Items []CampusResponse `json:"items"`
}
