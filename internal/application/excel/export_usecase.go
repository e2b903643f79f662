package excel

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/campus-stock-api/internal/domain"
	"github.com/jhoicas/campus-stock-api/internal/domain/repository"
)

// ExportUseCase genera las planillas de descarga (por campus, global y template).
type ExportUseCase struct {
	campusRepo repository.CampusRepository
	stockRepo  repository.StockRepository
	codec      StockWorkbookCodec
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(campusRepo repository.CampusRepository, stockRepo repository.StockRepository, codec StockWorkbookCodec) *ExportUseCase {
	return &ExportUseCase{campusRepo: campusRepo, stockRepo: stockRepo, codec: codec}
}

// ExportCampus genera la planilla de un campus. El orden de filas lo decide el
// repositorio (category, item_name). Devuelve el nombre de archivo sugerido.
func (uc *ExportUseCase) ExportCampus(ctx context.Context, campusID string) (string, []byte, error) {
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
	data, err := uc.codec.Render(campus.Name, stocks)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("stock_%s.xlsx", campus.Code), data, nil
}

// ExportAll genera un workbook con una hoja por campus, campus ordenados por
// nombre ascendente (orden estable). ErrNotFound si no hay campus.
func (uc *ExportUseCase) ExportAll(ctx context.Context) ([]byte, error) {
	campuses, err := uc.campusRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(campuses) == 0 {
		return nil, domain.ErrNotFound
	}
	sort.Slice(campuses, func(i, j int) bool { return campuses[i].Name < campuses[j].Name })

	groups := make([]CampusStocks, 0, len(campuses))
	for _, campus := range campuses {
		stocks, err := uc.stockRepo.ListByCampus(ctx, campus.ID, repository.StockFilter{})
		if err != nil {
			return nil, err
		}
		groups = append(groups, CampusStocks{Campus: campus, Stocks: stocks})
	}
	return uc.codec.RenderAll(groups)
}

// Template genera la planilla vacía que documenta el formato de subida.
func (uc *ExportUseCase) Template() ([]byte, error) {
	return uc.codec.RenderTemplate()
}
