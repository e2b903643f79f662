package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/campus-stock-api/internal/domain/entity"
)

// StockFilter filtros opcionales para listados de stock por campus.
type StockFilter struct {
	Search   string // substring sobre item_name (case-insensitive)
	Category string // igualdad exacta sobre category
}

// CampusSummary agregado por campus para el dashboard.
type CampusSummary struct {
	CampusID   string
	CampusName string
	CampusCode string
	ItemCount  int
	TotalValue decimal.Decimal // suma de quantity*unit_price
}

// StockRepository define el puerto de persistencia para Stock (DIP).
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	GetByID(ctx context.Context, id string) (*entity.Stock, error)
	Update(ctx context.Context, stock *entity.Stock) error
	ListByCampus(ctx context.Context, campusID string, filter StockFilter) ([]*entity.Stock, error)
	// FindByCampusAndName localiza un ítem por (campus_id, item_name) para el modo
	// de importación match-and-update. Devuelve nil, nil si no existe.
	FindByCampusAndName(ctx context.Context, campusID, itemName string) (*entity.Stock, error)
	CategoriesByCampus(ctx context.Context, campusID string) ([]string, error)
	SummaryByCampus(ctx context.Context) ([]CampusSummary, error)
	Delete(ctx context.Context, id string) error
}
