package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/campus-stock-api/internal/application/dto"
	"github.com/jhoicas/campus-stock-api/internal/domain"
	"github.com/jhoicas/campus-stock-api/internal/domain/entity"
	"github.com/jhoicas/campus-stock-api/internal/domain/repository"
)

// CampusUseCase casos de uso CRUD para campus.
type CampusUseCase struct {
	repo repository.CampusRepository
}

// NewCampusUseCase construye el caso de uso.
func NewCampusUseCase(repo repository.CampusRepository) *CampusUseCase {
	return &CampusUseCase{repo: repo}
}

// Create crea un campus. El código se normaliza a mayúsculas.
func (uc *CampusUseCase) Create(ctx context.Context, in dto.CreateCampusRequest) (*dto.CampusResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if existing, err := uc.repo.GetByCode(ctx, code); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrCampusCodeTaken
	}
	now := time.Now()
	campus := &entity.Campus{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Code:      code,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, campus); err != nil {
		return nil, err
	}
	return toCampusResponse(campus), nil
}

// GetByID obtiene un campus por ID.
func (uc *CampusUseCase) GetByID(ctx context.Context, id string) (*dto.CampusResponse, error) {
	campus, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campus == nil {
		return nil, nil
	}
	return toCampusResponse(campus), nil
}

// Update actualiza un campus.
func (uc *CampusUseCase) Update(ctx context.Context, id string, in dto.UpdateCampusRequest) (*dto.CampusResponse, error) {
	campus, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campus == nil {
		return nil, nil
	}
	if in.Name != nil {
		campus.Name = strings.TrimSpace(*in.Name)
	}
	if in.Code != nil {
		campus.Code = strings.ToUpper(strings.TrimSpace(*in.Code))
	}
	if in.Address != nil {
		campus.Address = *in.Address
	}
	campus.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, campus); err != nil {
		return nil, err
	}
	return toCampusResponse(campus), nil
}

// List lista todos los campus (ordenados por nombre).
func (uc *CampusUseCase) List(ctx context.Context) (*dto.CampusListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CampusResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCampusResponse(c))
	}
	return &dto.CampusListResponse{Items: items}, nil
}

// Delete elimina un campus y, en cascada, todo su stock (el esquema declara
// ON DELETE CASCADE sobre stocks.campus_id).
func (uc *CampusUseCase) Delete(ctx context.Context, id string) error {
	campus, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if campus == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toCampusResponse(c *entity.Campus) *dto.CampusResponse {
	if c == nil {
		return nil
	}
	return &dto.CampusResponse{
		ID:        c.ID,
		Name:      c.Name,
		Code:      c.Code,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
