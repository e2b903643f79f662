package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/campus-stock-api/internal/domain/entity"
	"github.com/jhoicas/campus-stock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL.
type StockRepo struct {
	pool *pgxpool.Pool
}

// NewStockRepository construye el adaptador de persistencia para stock.
func NewStockRepository(pool *pgxpool.Pool) *StockRepo {
	return &StockRepo{pool: pool}
}

const stockColumns = `id, campus_id, item_name, category, quantity, unit, unit_price, condition, remarks, added_by, created_at, updated_at`

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(
		&s.ID, &s.CampusID, &s.ItemName, &s.Category, &s.Quantity, &s.Unit,
		&s.UnitPrice, &s.Condition, &s.Remarks, &s.AddedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo ítem de stock. La fila se confirma individualmente:
// cada insert de una importación es su propia transacción implícita.
func (r *StockRepo) Create(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (` + stockColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		stock.ID, stock.CampusID, stock.ItemName, stock.Category, stock.Quantity,
		stock.Unit, stock.UnitPrice, stock.Condition, stock.Remarks, stock.AddedBy,
		stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert stock: campus inexistente")
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. nil, nil si no existe.
func (r *StockRepo) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1`
	s, err := scanStock(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// FindByCampusAndName localiza un ítem por (campus_id, item_name) para el modo
// match-and-update. Si hay duplicados toma el creado primero (orden estable).
func (r *StockRepo) FindByCampusAndName(ctx context.Context, campusID, itemName string) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + ` FROM stocks
		WHERE campus_id = $1 AND item_name = $2
		ORDER BY created_at LIMIT 1`
	s, err := scanStock(r.pool.QueryRow(ctx, query, campusID, itemName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find stock by name: %w", err)
	}
	return s, nil
}

// Update actualiza un ítem existente.
func (r *StockRepo) Update(ctx context.Context, stock *entity.Stock) error {
	query := `
		UPDATE stocks SET campus_id = $2, item_name = $3, category = $4, quantity = $5,
			unit = $6, unit_price = $7, condition = $8, remarks = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		stock.ID, stock.CampusID, stock.ItemName, stock.Category, stock.Quantity,
		stock.Unit, stock.UnitPrice, stock.Condition, stock.Remarks, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// ListByCampus lista el stock de un campus ordenado por (category, item_name),
// con filtros opcionales de búsqueda por nombre y categoría exacta.
func (r *StockRepo) ListByCampus(ctx context.Context, campusID string, filter repository.StockFilter) ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE campus_id = $1`
	args := []interface{}{campusID}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND item_name ILIKE $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY category, item_name"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// CategoriesByCampus lista las categorías no vacías de un campus (para filtros de UI).
func (r *StockRepo) CategoriesByCampus(ctx context.Context, campusID string) ([]string, error) {
	query := `
		SELECT DISTINCT category FROM stocks
		WHERE campus_id = $1 AND category <> ''
		ORDER BY category`
	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// SummaryByCampus agrega conteo de ítems y valor total por campus (dashboard).
// Incluye campus sin stock (LEFT JOIN) con conteo 0.
func (r *StockRepo) SummaryByCampus(ctx context.Context) ([]repository.CampusSummary, error) {
	query := `
		SELECT c.id, c.name, c.code,
			COUNT(s.id),
			COALESCE(SUM(s.quantity * s.unit_price), 0)
		FROM campuses c
		LEFT JOIN stocks s ON s.campus_id = c.id
		GROUP BY c.id, c.name, c.code
		ORDER BY c.name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("summary by campus: %w", err)
	}
	defer rows.Close()
	var list []repository.CampusSummary
	for rows.Next() {
		var s repository.CampusSummary
		if err := rows.Scan(&s.CampusID, &s.CampusName, &s.CampusCode, &s.ItemCount, &s.TotalValue); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina un ítem por ID.
func (r *StockRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM stocks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}
