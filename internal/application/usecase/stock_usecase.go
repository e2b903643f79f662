package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/campus-stock-api/internal/application/dto"
	"github.com/jhoicas/campus-stock-api/internal/domain"
	"github.com/jhoicas/campus-stock-api/internal/domain/entity"
	"github.com/jhoicas/campus-stock-api/internal/domain/repository"
)

// StockUseCase casos de uso CRUD para ítems de stock (entrada manual por formulario;
// la carga masiva vive en application/excel).
type StockUseCase struct {
	campusRepo repository.CampusRepository
	stockRepo  repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(campusRepo repository.CampusRepository, stockRepo repository.StockRepository) *StockUseCase {
	return &StockUseCase{campusRepo: campusRepo, stockRepo: stockRepo}
}

// Create crea un ítem de stock validando campus, cantidad, precio y condición.
func (uc *StockUseCase) Create(ctx context.Context, addedBy string, in dto.CreateStockRequest) (*dto.StockResponse, error) {
	campus, err := uc.campusRepo.GetByID(ctx, in.CampusID)
	if err != nil {
		return nil, err
	}
	if campus == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.ItemName) == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	price := decimal.Zero
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		price = *in.UnitPrice
	}
	if in.Condition != "" && !entity.ValidCondition(in.Condition) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	stock := &entity.Stock{
		ID:        uuid.New().String(),
		CampusID:  in.CampusID,
		ItemName:  strings.TrimSpace(in.ItemName),
		Category:  strings.TrimSpace(in.Category),
		Quantity:  in.Quantity,
		Unit:      strings.TrimSpace(in.Unit),
		UnitPrice: price,
		Condition: in.Condition,
		Remarks:   in.Remarks,
		AddedBy:   addedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.stockRepo.Create(ctx, stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// GetByID obtiene un ítem por ID.
func (uc *StockUseCase) GetByID(ctx context.Context, id string) (*dto.StockResponse, error) {
	stock, err := uc.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, nil
	}
	return toStockResponse(stock), nil
}

// Update edita un ítem existente.
func (uc *StockUseCase) Update(ctx context.Context, id string, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	stock, err := uc.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, nil
	}
	if in.ItemName != nil {
		if strings.TrimSpace(*in.ItemName) == "" {
			return nil, domain.ErrInvalidInput
		}
		stock.ItemName = strings.TrimSpace(*in.ItemName)
	}
	if in.Category != nil {
		stock.Category = strings.TrimSpace(*in.Category)
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		stock.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		stock.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		stock.UnitPrice = *in.UnitPrice
	}
	if in.Condition != nil {
		if *in.Condition != "" && !entity.ValidCondition(*in.Condition) {
			return nil, domain.ErrInvalidInput
		}
		stock.Condition = *in.Condition
	}
	if in.Remarks != nil {
		stock.Remarks = *in.Remarks
	}
	stock.UpdatedAt = time.Now()
	if err := uc.stockRepo.Update(ctx, stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// ListByCampus lista el stock de un campus con filtros opcionales, junto con
// las categorías disponibles.
func (uc *StockUseCase) ListByCampus(ctx context.Context, campusID string, filter repository.StockFilter) (*dto.StockListResponse, error) {
	campus, err := uc.campusRepo.GetByID(ctx, campusID)
	if err != nil {
		return nil, err
	}
	if campus == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.stockRepo.ListByCampus(ctx, campusID, filter)
	if err != nil {
		return nil, err
	}
	categories, err := uc.stockRepo.CategoriesByCampus(ctx, campusID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockResponse(s))
	}
	return &dto.StockListResponse{Items: items, Categories: categories}, nil
}

// Delete elimina un ítem por ID.
func (uc *StockUseCase) Delete(ctx context.Context, id string) error {
	stock, err := uc.stockRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if stock == nil {
		return domain.ErrNotFound
	}
	return uc.stockRepo.Delete(ctx, id)
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	if s == nil {
		return nil
	}
	return &dto.StockResponse{
		ID:         s.ID,
		CampusID:   s.CampusID,
		ItemName:   s.ItemName,
		Category:   s.Category,
		Quantity:   s.Quantity,
		Unit:       s.Unit,
		UnitPrice:  s.UnitPrice,
		TotalValue: s.TotalValue(),
		Condition:  s.Condition,
		Remarks:    s.Remarks,
		AddedBy:    s.AddedBy,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
