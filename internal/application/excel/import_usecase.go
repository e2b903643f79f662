package excel

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/campus-stock-api/internal/domain"
	"github.com/jhoicas/campus-stock-api/internal/domain/entity"
	"github.com/jhoicas/campus-stock-api/internal/domain/repository"
)

// ImportPolicy decide qué hacer con cada fila validada.
type ImportPolicy string

const (
	// PolicyInsert inserta siempre un registro nuevo por fila (por defecto).
	PolicyInsert ImportPolicy = "insert"
	// PolicyUpsert busca por (campus_id, item_name) y actualiza si existe.
	PolicyUpsert ImportPolicy = "upsert"
)

// ParsePolicy normaliza el valor de configuración; desconocido → PolicyInsert.
func ParsePolicy(s string) ImportPolicy {
	if ImportPolicy(s) == PolicyUpsert {
		return PolicyUpsert
	}
	return PolicyInsert
}

// ImportUseCase reconcilia filas de planilla contra el stock de un campus.
// Atomicidad a nivel de fila: cada fila válida se confirma por separado y una
// fila mala nunca aborta el lote (sin transacción global por diseño del flujo
// de re-subida: el usuario corrige el archivo y vuelve a subir).
type ImportUseCase struct {
	campusRepo repository.CampusRepository
	stockRepo  repository.StockRepository
	codec      StockWorkbookCodec
	policy     ImportPolicy
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(campusRepo repository.CampusRepository, stockRepo repository.StockRepository, codec StockWorkbookCodec, policy ImportPolicy) *ImportUseCase {
	if policy == "" {
		policy = PolicyInsert
	}
	return &ImportUseCase{campusRepo: campusRepo, stockRepo: stockRepo, codec: codec, policy: policy}
}

// ImportFile parsea el archivo y reconcilia sus filas contra el campus.
// Errores fatales (*UnsupportedFileFormatError, *MissingRequiredColumnError,
// domain.ErrNotFound si el campus no existe) se devuelven antes de tocar el
// almacenamiento; los errores por fila se acumulan en el reporte.
func (uc *ImportUseCase) ImportFile(ctx context.Context, campusID, addedBy string, data []byte) (*ImportReport, error) {
	campus, err := uc.campusRepo.GetByID(ctx, campusID)
	if err != nil {
		return nil, err
	}
	if campus == nil {
		return nil, domain.ErrNotFound
	}

	rows, err := uc.codec.Parse(data)
	if err != nil {
		return nil, err
	}
	return uc.Import(ctx, campus, addedBy, rows), nil
}

// Import reconcilia filas ya parseadas, en orden de entrada.
// Invariante del reporte: Inserted + Updated + len(Errors) == TotalRows.
func (uc *ImportUseCase) Import(ctx context.Context, campus *entity.Campus, addedBy string, rows []RawRow) *ImportReport {
	report := &ImportReport{
		CampusID:   campus.ID,
		CampusName: campus.Name,
		TotalRows:  len(rows),
		Errors:     []RowError{},
	}

	for _, raw := range rows {
		candidate, reason := buildCandidate(raw)
		if reason != "" {
			report.Errors = append(report.Errors, RowError{Row: raw.Number, Reason: reason})
			continue
		}
		candidate.CampusID = campus.ID
		candidate.AddedBy = addedBy

		updated, err := uc.persist(ctx, candidate)
		if err != nil {
			// StorageError: se reporta como error de fila, sin reintento.
			report.Errors = append(report.Errors, RowError{Row: raw.Number, Reason: "almacenamiento: " + err.Error()})
			continue
		}
		if updated {
			report.Updated++
		} else {
			report.Inserted++
		}
	}
	return report
}

// persist aplica la política de importación. Devuelve true si actualizó un
// registro existente en vez de insertar.
func (uc *ImportUseCase) persist(ctx context.Context, candidate *entity.Stock) (bool, error) {
	now := time.Now()

	if uc.policy == PolicyUpsert {
		existing, err := uc.stockRepo.FindByCampusAndName(ctx, candidate.CampusID, candidate.ItemName)
		if err != nil {
			return false, err
		}
		if existing != nil {
			existing.Category = candidate.Category
			existing.Quantity = candidate.Quantity
			existing.Unit = candidate.Unit
			existing.UnitPrice = candidate.UnitPrice
			existing.Condition = candidate.Condition
			existing.Remarks = candidate.Remarks
			existing.UpdatedAt = now
			if err := uc.stockRepo.Update(ctx, existing); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	candidate.ID = uuid.New().String()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now
	if err := uc.stockRepo.Create(ctx, candidate); err != nil {
		return false, err
	}
	return false, nil
}
