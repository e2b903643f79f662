package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/campus-stock-api/internal/domain"
	"github.com/jhoicas/campus-stock-api/internal/domain/entity"
	"github.com/jhoicas/campus-stock-api/internal/domain/repository"
)

var _ repository.CampusRepository = (*CampusRepo)(nil)

// CampusRepo implementación del puerto CampusRepository sobre PostgreSQL.
type CampusRepo struct {
	pool *pgxpool.Pool
}

// NewCampusRepository construye el adaptador de persistencia para campus.
func NewCampusRepository(pool *pgxpool.Pool) *CampusRepo {
	return &CampusRepo{pool: pool}
}

// Create persiste un nuevo campus.
func (r *CampusRepo) Create(ctx context.Context, campus *entity.Campus) error {
	query := `
		INSERT INTO campuses (id, name, code, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		campus.ID, campus.Name, campus.Code, campus.Address,
		campus.CreatedAt, campus.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCampusCodeTaken
		}
		return fmt.Errorf("insert campus: %w", err)
	}
	return nil
}

// GetByID obtiene un campus por ID. nil, nil si no existe.
func (r *CampusRepo) GetByID(ctx context.Context, id string) (*entity.Campus, error) {
	return r.getBy(ctx, "id", id)
}

// GetByCode obtiene un campus por código. nil, nil si no existe.
func (r *CampusRepo) GetByCode(ctx context.Context, code string) (*entity.Campus, error) {
	return r.getBy(ctx, "code", code)
}

func (r *CampusRepo) getBy(ctx context.Context, column, value string) (*entity.Campus, error) {
	query := fmt.Sprintf(`
		SELECT id, name, code, address, created_at, updated_at
		FROM campuses WHERE %s = $1`, column)
	var c entity.Campus
	err := r.pool.QueryRow(ctx, query, value).Scan(
		&c.ID, &c.Name, &c.Code, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campus: %w", err)
	}
	return &c, nil
}

// Update actualiza un campus existente.
func (r *CampusRepo) Update(ctx context.Context, campus *entity.Campus) error {
	query := `
		UPDATE campuses SET name = $2, code = $3, address = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		campus.ID, campus.Name, campus.Code, campus.Address, campus.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCampusCodeTaken
		}
		return fmt.Errorf("update campus: %w", err)
	}
	return nil
}

// List lista todos los campus ordenados por nombre.
func (r *CampusRepo) List(ctx context.Context) ([]*entity.Campus, error) {
	query := `
		SELECT id, name, code, address, created_at, updated_at
		FROM campuses ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list campuses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Campus
	for rows.Next() {
		var c entity.Campus
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan campus: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un campus. El stock asociado cae en cascada (FK ON DELETE CASCADE).
func (r *CampusRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete campus: %w", err)
	}
	return nil
}
