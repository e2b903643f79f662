package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/campus-stock-api/internal/application/dto"
	"github.com/jhoicas/campus-stock-api/internal/domain/repository"
)

// DashboardUseCase resumen global del inventario: conteos y valores por campus.
type DashboardUseCase struct {
	stockRepo repository.StockRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stockRepo repository.StockRepository) *DashboardUseCase {
	return &DashboardUseCase{stockRepo: stockRepo}
}

// Summary devuelve el desglose por campus más los totales globales.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	summaries, err := uc.stockRepo.SummaryByCampus(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.DashboardResponse{
		Campuses:   make([]dto.CampusStatsResponse, 0, len(summaries)),
		TotalValue: decimal.Zero,
	}
	for _, s := range summaries {
		out.Campuses = append(out.Campuses, dto.CampusStatsResponse{
			CampusID:   s.CampusID,
			CampusName: s.CampusName,
			CampusCode: s.CampusCode,
			ItemCount:  s.ItemCount,
			TotalValue: s.TotalValue,
		})
		out.TotalItems += s.ItemCount
		out.TotalValue = out.TotalValue.Add(s.TotalValue)
	}
	return out, nil
}
