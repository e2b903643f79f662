package report

import (
	"context"

	"github.com/jhoicas/campus-stock-api/internal/domain/entity"
)

// StockReportGenerator puerto de generación del PDF de stock por campus
// (implementado en infrastructure/pdf con Maroto).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, campus *entity.Campus, stocks []*entity.Stock) ([]byte, error)
}
