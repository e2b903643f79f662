package excel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/campus-stock-api/internal/application/excel"
	"github.com/jhoicas/campus-stock-api/internal/domain"
	"github.com/jhoicas/campus-stock-api/internal/domain/entity"
	"github.com/jhoicas/campus-stock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCampusRepo struct {
	campuses map[string]*entity.Campus
}

func (r *fakeCampusRepo) Create(_ context.Context, c *entity.Campus) error {
	r.campuses[c.ID] = c
	return nil
}

func (r *fakeCampusRepo) GetByID(_ context.Context, id string) (*entity.Campus, error) {
	return r.campuses[id], nil
}

func (r *fakeCampusRepo) GetByCode(_ context.Context, code string) (*entity.Campus, error) {
	for _, c := range r.campuses {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCampusRepo) Update(_ context.Context, c *entity.Campus) error { return nil }

func (r *fakeCampusRepo) List(_ context.Context) ([]*entity.Campus, error) {
	out := make([]*entity.Campus, 0, len(r.campuses))
	for _, c := range r.campuses {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCampusRepo) Delete(_ context.Context, id string) error {
	delete(r.campuses, id)
	return nil
}

type fakeStockRepo struct {
	stocks     []*entity.Stock
	updates    int
	failOnName string // Create falla para este item_name (simula error de almacenamiento)
}

func (r *fakeStockRepo) Create(_ context.Context, s *entity.Stock) error {
	if r.failOnName != "" && s.ItemName == r.failOnName {
		return errors.New("conexión perdida")
	}
	copied := *s
	r.stocks = append(r.stocks, &copied)
	return nil
}

func (r *fakeStockRepo) GetByID(_ context.Context, id string) (*entity.Stock, error) {
	for _, s := range r.stocks {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) Update(_ context.Context, s *entity.Stock) error {
	for i, existing := range r.stocks {
		if existing.ID == s.ID {
			copied := *s
			r.stocks[i] = &copied
			r.updates++
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeStockRepo) ListByCampus(_ context.Context, campusID string, _ repository.StockFilter) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.stocks {
		if s.CampusID == campusID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) FindByCampusAndName(_ context.Context, campusID, itemName string) (*entity.Stock, error) {
	for _, s := range r.stocks {
		if s.CampusID == campusID && s.ItemName == itemName {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) CategoriesByCampus(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (r *fakeStockRepo) SummaryByCampus(_ context.Context) ([]repository.CampusSummary, error) {
	return nil, nil
}

func (r *fakeStockRepo) Delete(_ context.Context, _ string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testCampus() *entity.Campus {
	return &entity.Campus{ID: "campus-1", Name: "Campus Central", Code: "CC"}
}

func textRow(number int, name, quantity string) excel.RawRow {
	row := excel.RawRow{Number: number, Cells: map[string]excel.CellValue{}}
	if name != "" {
		row.Cells[excel.ColItemName] = excel.TextCell(name)
	}
	if quantity != "" {
		if n, err := decimal.NewFromString(quantity); err == nil {
			row.Cells[excel.ColQuantity] = excel.NumberCell(quantity, n)
		} else {
			row.Cells[excel.ColQuantity] = excel.TextCell(quantity)
		}
	}
	return row
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_FilasValidasEInvalidasMezcladas(t *testing.T) {
	stockRepo := &fakeStockRepo{}
	uc := excel.NewImportUseCase(nil, stockRepo, nil, excel.PolicyInsert)

	rows := []excel.RawRow{
		textRow(2, "Silla", "10"),
		textRow(3, "", "5"),        // item_name vacío
		textRow(4, "Mesa", "doce"), // quantity no numérico
	}
	report := uc.Import(context.Background(), testCampus(), "ana", rows)

	assert.Equal(t, 3, report.TotalRows)
	assert.Equal(t, 1, report.Inserted)
	assert.Equal(t, 0, report.Updated)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, 3, report.Errors[0].Row)
	assert.Contains(t, report.Errors[0].Reason, "item_name")
	assert.Equal(t, 4, report.Errors[1].Row)
	assert.Contains(t, report.Errors[1].Reason, "quantity")

	// Invariante del reporte
	assert.Equal(t, report.TotalRows, report.Inserted+report.Updated+len(report.Errors))

	require.Len(t, stockRepo.stocks, 1)
	created := stockRepo.stocks[0]
	assert.Equal(t, "campus-1", created.CampusID)
	assert.Equal(t, "ana", created.AddedBy)
	assert.NotEmpty(t, created.ID)
}

func TestImport_ErrorDeAlmacenamientoNoAbortaElLote(t *testing.T) {
	stockRepo := &fakeStockRepo{failOnName: "Mesa"}
	uc := excel.NewImportUseCase(nil, stockRepo, nil, excel.PolicyInsert)

	rows := []excel.RawRow{
		textRow(2, "Silla", "10"),
		textRow(3, "Mesa", "4"),
		textRow(4, "Pizarra", "1"),
	}
	report := uc.Import(context.Background(), testCampus(), "ana", rows)

	assert.Equal(t, 2, report.Inserted)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 3, report.Errors[0].Row)
	assert.Contains(t, report.Errors[0].Reason, "almacenamiento")
	assert.Equal(t, report.TotalRows, report.Inserted+report.Updated+len(report.Errors))
}

func TestImport_ModoUpsertActualizaExistentes(t *testing.T) {
	campus := testCampus()
	stockRepo := &fakeStockRepo{stocks: []*entity.Stock{
		{ID: "stock-1", CampusID: campus.ID, ItemName: "Silla", Quantity: 3, Category: "vieja"},
	}}
	uc := excel.NewImportUseCase(nil, stockRepo, nil, excel.PolicyUpsert)

	row := textRow(2, "Silla", "10")
	row.Cells[excel.ColCategory] = excel.TextCell("Muebles")
	report := uc.Import(context.Background(), campus, "ana", []excel.RawRow{
		row,
		textRow(3, "Mesa", "4"),
	})

	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.Inserted)
	assert.Empty(t, report.Errors)

	updated, err := stockRepo.FindByCampusAndName(context.Background(), campus.ID, "Silla")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "stock-1", updated.ID, "el upsert conserva la identidad")
	assert.Equal(t, 10, updated.Quantity)
	assert.Equal(t, "Muebles", updated.Category)
	require.Len(t, stockRepo.stocks, 2)
}

func TestImport_ModoInsertDuplicaNombres(t *testing.T) {
	stockRepo := &fakeStockRepo{}
	uc := excel.NewImportUseCase(nil, stockRepo, nil, excel.PolicyInsert)

	report := uc.Import(context.Background(), testCampus(), "ana", []excel.RawRow{
		textRow(2, "Silla", "10"),
		textRow(3, "Silla", "5"),
	})

	assert.Equal(t, 2, report.Inserted)
	assert.Equal(t, 0, report.Updated)
	require.Len(t, stockRepo.stocks, 2, "en modo insert cada fila crea un registro nuevo")
	assert.NotEqual(t, stockRepo.stocks[0].ID, stockRepo.stocks[1].ID)
}

func TestImport_ValidacionesDeFila(t *testing.T) {
	cases := []struct {
		name   string
		row    excel.RawRow
		reason string
	}{
		{
			name: "quantity decimal",
			row: excel.RawRow{Number: 2, Cells: map[string]excel.CellValue{
				excel.ColItemName: excel.TextCell("Silla"),
				excel.ColQuantity: excel.NumberCell("2.5", decimal.RequireFromString("2.5")),
			}},
			reason: "entero",
		},
		{
			name: "quantity negativo",
			row: excel.RawRow{Number: 2, Cells: map[string]excel.CellValue{
				excel.ColItemName: excel.TextCell("Silla"),
				excel.ColQuantity: excel.NumberCell("-1", decimal.NewFromInt(-1)),
			}},
			reason: "negativo",
		},
		{
			name: "unit_price no numérico",
			row: excel.RawRow{Number: 2, Cells: map[string]excel.CellValue{
				excel.ColItemName:  excel.TextCell("Silla"),
				excel.ColQuantity:  excel.NumberCell("1", decimal.NewFromInt(1)),
				excel.ColUnitPrice: excel.TextCell("caro"),
			}},
			reason: "unit_price",
		},
		{
			name: "condition desconocida",
			row: excel.RawRow{Number: 2, Cells: map[string]excel.CellValue{
				excel.ColItemName:  excel.TextCell("Silla"),
				excel.ColQuantity:  excel.NumberCell("1", decimal.NewFromInt(1)),
				excel.ColCondition: excel.TextCell("Regular"),
			}},
			reason: "condition",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stockRepo := &fakeStockRepo{}
			uc := excel.NewImportUseCase(nil, stockRepo, nil, excel.PolicyInsert)
			report := uc.Import(context.Background(), testCampus(), "ana", []excel.RawRow{tc.row})

			assert.Equal(t, 0, report.Inserted)
			require.Len(t, report.Errors, 1)
			assert.Contains(t, report.Errors[0].Reason, tc.reason)
			assert.Empty(t, stockRepo.stocks)
		})
	}
}

func TestImportFile_CampusInexistente(t *testing.T) {
	campusRepo := &fakeCampusRepo{campuses: map[string]*entity.Campus{}}
	uc := excel.NewImportUseCase(campusRepo, &fakeStockRepo{}, stubCodec{}, excel.PolicyInsert)

	_, err := uc.ImportFile(context.Background(), "no-existe", "ana", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImportFile_ErrorFatalDelCodec(t *testing.T) {
	campus := testCampus()
	campusRepo := &fakeCampusRepo{campuses: map[string]*entity.Campus{campus.ID: campus}}
	stockRepo := &fakeStockRepo{}
	uc := excel.NewImportUseCase(campusRepo, stockRepo, stubCodec{
		parseErr: &excel.MissingRequiredColumnError{Columns: []string{"quantity"}},
	}, excel.PolicyInsert)

	_, err := uc.ImportFile(context.Background(), campus.ID, "ana", []byte("x"))
	var missing *excel.MissingRequiredColumnError
	require.ErrorAs(t, err, &missing)
	assert.Empty(t, stockRepo.stocks, "un error fatal no toca el almacenamiento")
}

// stubCodec codec de prueba: Parse devuelve filas fijas o un error configurado.
type stubCodec struct {
	rows     []excel.RawRow
	parseErr error
}

func (s stubCodec) Parse(_ []byte) ([]excel.RawRow, error) {
	if s.parseErr != nil {
		return nil, s.parseErr
	}
	return s.rows, nil
}

func (s stubCodec) Render(_ string, _ []*entity.Stock) ([]byte, error) { return nil, nil }
func (s stubCodec) RenderAll(_ []excel.CampusStocks) ([]byte, error)   { return nil, nil }
func (s stubCodec) RenderTemplate() ([]byte, error)                    { return nil, nil }
