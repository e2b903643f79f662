package repository

import (
	"context"

	"github.com/jhoicas/campus-stock-api/internal/domain/entity"
)

// CampusRepository define el puerto de persistencia para Campus (DIP).
// Delete elimina en cascada el stock del campus (política documentada en DESIGN.md).
type CampusRepository interface {
	Create(ctx context.Context, campus *entity.Campus) error
	GetByID(ctx context.Context, id string) (*entity.Campus, error)
	GetByCode(ctx context.Context, code string) (*entity.Campus, error)
	Update(ctx context.Context, campus *entity.Campus) error
	List(ctx context.Context) ([]*entity.Campus, error)
	Delete(ctx context.Context, id string) error
}
