// Package report genera la representación imprimible (PDF) del inventario de
// un campus, complementaria a la exportación xlsx.
package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/campus-stock-api/internal/domain"
	"github.com/jhoicas/campus-stock-api/internal/domain/repository"
)

// ReportUseCase caso de uso del reporte PDF por campus.
type ReportUseCase struct {
	campusRepo repository.CampusRepository
	stockRepo  repository.StockRepository
	generator  StockReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(campusRepo repository.CampusRepository, stockRepo repository.StockRepository, generator StockReportGenerator) *ReportUseCase {
	return &ReportUseCase{campusRepo: campusRepo, stockRepo: stockRepo, generator: generator}
}

// CampusReport genera el PDF del stock de un campus (orden: category, item_name).
// Devuelve el nombre de archivo sugerido y los bytes del documento.
func (uc *ReportUseCase) CampusReport(ctx context.Context, campusID string) (string, []byte, error) {
	campus, err := uc.campusRepo.GetByID(ctx, campusID)
	if err != nil {
		return "", nil, err
	}
	if campus == nil {
		return "", nil, domain.ErrNotFound
	}
	stocks, err := uc.stockRepo.ListByCampus(ctx, campusID, repository.StockFilter{})
	if err != nil {
		return "", nil, err
	}
	data, err := uc.generator.GenerateStockReport(ctx, campus, stocks)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("reporte_stock_%s.pdf", campus.Code), data, nil
}
