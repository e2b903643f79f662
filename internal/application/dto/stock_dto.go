package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockRequest entrada para crear un ítem de stock por formulario.
type CreateStockRequest struct {
	CampusID  string           `json:"campus_id" validate:"required,uuid"`
	ItemName  string           `json:"item_name" validate:"required,min=1,max=200"`
	Category  string           `json:"category" validate:"omitempty,max=100"`
	Quantity  int              `json:"quantity" validate:"min=0"`
	Unit      string           `json:"unit" validate:"omitempty,max=50"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Condition string           `json:"condition" validate:"omitempty"`
	Remarks   string           `json:"remarks" validate:"omitempty,max=500"`
}

// UpdateStockRequest entrada para editar un ítem (campos opcionales).
type UpdateStockRequest struct {
	ItemName  *string          `json:"item_name" validate:"omitempty,min=1,max=200"`
	Category  *string          `json:"category" validate:"omitempty,max=100"`
	Quantity  *int             `json:"quantity" validate:"omitempty,min=0"`
	Unit      *string          `json:"unit" validate:"omitempty,max=50"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Condition *string          `json:"condition"`
	Remarks   *string          `json:"remarks" validate:"omitempty,max=500"`
}

// StockResponse salida de un ítem de stock.
type StockResponse struct {
	ID         string          `json:"id"`
	CampusID   string          `json:"campus_id"`
	ItemName   string          `json:"item_name"`
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	Unit       string          `json:"unit"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalValue decimal.Decimal `json:"total_value"`
	Condition  string          `json:"condition"`
	Remarks    string          `json:"remarks"`
	AddedBy    string          `json:"added_by"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// StockListResponse lista de stock de un campus, con las categorías disponibles
// para filtrado.
type StockListResponse struct {
	Items      []StockResponse `json:"items"`
	Categories []string        `json:"categories"`
}
