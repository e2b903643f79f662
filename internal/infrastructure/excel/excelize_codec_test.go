package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	appexcel "github.com/jhoicas/campus-stock-api/internal/application/excel"
	"github.com/jhoicas/campus-stock-api/internal/domain/entity"
	infraexcel "github.com/jhoicas/campus-stock-api/internal/infrastructure/excel"
)

// buildUpload arma un xlsx en memoria con el header y las filas dadas.
func buildUpload(t *testing.T, header []string, dataRows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for col, name := range header {
		ref, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, ref, name))
	}
	for i, row := range dataRows {
		for col, v := range row {
			if v == nil {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(col+1, i+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, ref, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParse_ClasificaCeldasYNumeraFilas(t *testing.T) {
	codec := infraexcel.NewExcelizeCodec()
	data := buildUpload(t,
		[]string{"item_name", "quantity", "category", "unit", "unit_price", "condition", "remarks"},
		[][]interface{}{
			{"Silla", 10, "Muebles", "pcs", 45000.5, "Good", "aula 3"},
			{"Mesa", "doce", nil, nil, nil, nil, nil},
		},
	)

	rows, err := codec.Parse(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, 2, first.Number, "la primera fila de datos es la fila 2 de la hoja")
	assert.Equal(t, appexcel.CellText, first.Cell("item_name").Kind)
	assert.Equal(t, "Silla", first.Cell("item_name").Text)
	assert.Equal(t, appexcel.CellNumber, first.Cell("quantity").Kind)
	assert.True(t, first.Cell("quantity").Number.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, appexcel.CellNumber, first.Cell("unit_price").Kind)

	second := rows[1]
	assert.Equal(t, 3, second.Number)
	assert.Equal(t, appexcel.CellText, second.Cell("quantity").Kind,
		"quantity no numérico se conserva como texto; el rechazo ocurre en la reconciliación")
	assert.Equal(t, appexcel.CellEmpty, second.Cell("category").Kind)
}

func TestParse_OmiteFilasCompletamenteVacias(t *testing.T) {
	codec := infraexcel.NewExcelizeCodec()
	data := buildUpload(t,
		[]string{"item_name", "quantity"},
		[][]interface{}{
			{"Silla", 10},
			{nil, nil},
			{"Mesa", 4},
		},
	)

	rows, err := codec.Parse(data)
	require.NoError(t, err)
	require.Len(t, rows, 2, "la fila en blanco no cuenta")
	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, 4, rows[1].Number, "la numeración conserva la posición real en la hoja")
}

func TestParse_ColumnaRequeridaAusente(t *testing.T) {
	codec := infraexcel.NewExcelizeCodec()
	data := buildUpload(t,
		[]string{"item_name", "category"}, // sin quantity
		[][]interface{}{{"Silla", "Muebles"}},
	)

	_, err := codec.Parse(data)
	var missing *appexcel.MissingRequiredColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"quantity"}, missing.Columns)
}

func TestParse_ColumnasNoReconocidasSeIgnoran(t *testing.T) {
	codec := infraexcel.NewExcelizeCodec()
	data := buildUpload(t,
		[]string{"item_name", "serial_number", "quantity"},
		[][]interface{}{{"Proyector", "SN-99", 1}},
	)

	rows, err := codec.Parse(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, appexcel.CellEmpty, rows[0].Cell("serial_number").Kind)
	assert.Equal(t, "Proyector", rows[0].Cell("item_name").Text)
}

func TestParse_ArchivoNoXLSX(t *testing.T) {
	codec := infraexcel.NewExcelizeCodec()
	_, err := codec.Parse([]byte("esto no es un zip"))
	var unsupported *appexcel.UnsupportedFileFormatError
	require.ErrorAs(t, err, &unsupported)
}

func TestRender_RoundTripConParse(t *testing.T) {
	codec := infraexcel.NewExcelizeCodec()
	stocks := []*entity.Stock{
		{ItemName: "Silla", Quantity: 10, Category: "Muebles", Unit: "pcs",
			UnitPrice: decimal.RequireFromString("45000.50"), Condition: "Good", Remarks: "aula 3"},
		{ItemName: "Pizarra", Quantity: 2}, // opcionales vacíos
	}

	data, err := codec.Render("Campus Central", stocks)
	require.NoError(t, err)

	rows, err := codec.Parse(data)
	require.NoError(t, err)
	require.Len(t, rows, 2, "la exportación debe poder volver a subirse tal cual")

	assert.Equal(t, "Silla", rows[0].Cell("item_name").Text)
	assert.True(t, rows[0].Cell("quantity").Number.Equal(decimal.NewFromInt(10)))
	assert.True(t, rows[0].Cell("unit_price").Number.Equal(decimal.RequireFromString("45000.5")))
	assert.Equal(t, "Good", rows[0].Cell("condition").Text)

	// Opcionales ausentes: celda en blanco, nunca texto "None" ni 0
	assert.Equal(t, appexcel.CellEmpty, rows[1].Cell("unit_price").Kind)
	assert.Equal(t, appexcel.CellEmpty, rows[1].Cell("category").Kind)
	assert.Equal(t, appexcel.CellEmpty, rows[1].Cell("condition").Kind)
}

func TestRenderTemplate_SoloHeader(t *testing.T) {
	codec := infraexcel.NewExcelizeCodec()
	data, err := codec.RenderTemplate()
	require.NoError(t, err)

	rows, err := codec.Parse(data)
	require.NoError(t, err)
	assert.Empty(t, rows, "la plantilla no tiene filas de datos")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	got, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, appexcel.Columns, got[0], "el header es el orden canónico de columnas")
}

func TestRenderAll_UnaHojaPorCampus(t *testing.T) {
	codec := infraexcel.NewExcelizeCodec()
	groups := []appexcel.CampusStocks{
		{Campus: &entity.Campus{Name: "Annex"}, Stocks: []*entity.Stock{{ItemName: "Mesa", Quantity: 1}}},
		{Campus: &entity.Campus{Name: "Main"}, Stocks: nil},
	}

	data, err := codec.RenderAll(groups)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Annex", "Main"}, f.GetSheetList(),
		"una hoja por campus en el orden recibido, sin la hoja por defecto")
}

func TestRenderAll_NombresDeHojaColisionan(t *testing.T) {
	codec := infraexcel.NewExcelizeCodec()
	groups := []appexcel.CampusStocks{
		{Campus: &entity.Campus{Name: "Sede A/B"}},
		{Campus: &entity.Campus{Name: "Sede AB"}}, // colisiona tras sanitizar
	}

	data, err := codec.RenderAll(groups)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	sheets := f.GetSheetList()
	require.Len(t, sheets, 2)
	assert.Equal(t, "Sede AB", sheets[0])
	assert.Equal(t, "Sede AB (2)", sheets[1])
}

func TestSanitizeSheetName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Campus Central", "Campus Central"},
		{"A/B:C*D?[E]", "ABCDE"},
		{"///", "Hoja"},
		{"", "Hoja"},
		{"Sede con un nombre larguísimo que excede el límite", "Sede con un nombre larguísimo q"},
	}
	for _, tc := range cases {
		got := infraexcel.SanitizeSheetName(tc.in)
		assert.Equal(t, tc.want, got, "entrada %q", tc.in)
		assert.LessOrEqual(t, len([]rune(got)), 31)
	}
}
