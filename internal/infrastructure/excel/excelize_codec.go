// Package excel implementa el puerto StockWorkbookCodec sobre excelize (xlsx).
//
// Formato de toda hoja generada:
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│ item_name │ quantity │ category │ unit │ unit_price │ condition │ remarks │
//	│ Silla     │       10 │ Muebles  │ pcs  │    45000.0 │ Good      │ ...     │
//	└──────────────────────────────────────────────────────────────────┘
//
// El header lleva estilo (fondo 4472C4, texto blanco en negrita) pero no hay
// filas de título ni totales: la salida debe poder volver a subirse tal cual
// (round-trip Parse ∘ Render).
package excel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	appexcel "github.com/jhoicas/campus-stock-api/internal/application/excel"
	"github.com/jhoicas/campus-stock-api/internal/domain/entity"
)

// maxSheetName límite de longitud de nombre de hoja en xlsx.
const maxSheetName = 31

var _ appexcel.StockWorkbookCodec = (*ExcelizeCodec)(nil)

// ExcelizeCodec codec de planillas basado en excelize.
type ExcelizeCodec struct{}

// NewExcelizeCodec construye el codec.
func NewExcelizeCodec() *ExcelizeCodec { return &ExcelizeCodec{} }

// ── Parse ─────────────────────────────────────────────────────────────────────

// Parse lee la primera hoja del workbook. El header (fila 1) debe contener
// item_name y quantity (match exacto, sensible a mayúsculas, tras recortar
// espacios); columnas no reconocidas se ignoran. Cada celda se clasifica
// eagerly en CellValue{Empty|Text|Number}; filas completamente vacías se
// omiten en silencio.
func (c *ExcelizeCodec) Parse(data []byte) ([]appexcel.RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &appexcel.UnsupportedFileFormatError{Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &appexcel.UnsupportedFileFormatError{Err: fmt.Errorf("workbook sin hojas")}
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &appexcel.UnsupportedFileFormatError{Err: err}
	}

	colIndex, err := headerIndex(rows)
	if err != nil {
		return nil, err
	}

	var out []appexcel.RawRow
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		raw := appexcel.RawRow{
			Number: i + 1, // la fila 1 de la hoja es el header
			Cells:  make(map[string]appexcel.CellValue, len(colIndex)),
		}
		empty := true
		for name, idx := range colIndex {
			cell := classifyCell(cellAt(row, idx))
			if cell.Kind != appexcel.CellEmpty {
				empty = false
			}
			raw.Cells[name] = cell
		}
		if empty {
			continue
		}
		out = append(out, raw)
	}
	return out, nil
}

// headerIndex mapea nombre canónico de columna → índice, validando las requeridas.
func headerIndex(rows [][]string) (map[string]int, error) {
	recognized := make(map[string]bool, len(appexcel.Columns))
	for _, name := range appexcel.Columns {
		recognized[name] = true
	}

	colIndex := make(map[string]int)
	if len(rows) > 0 {
		for idx, header := range rows[0] {
			name := strings.TrimSpace(header)
			if recognized[name] {
				colIndex[name] = idx
			}
		}
	}

	var missing []string
	for _, name := range appexcel.RequiredColumns {
		if _, ok := colIndex[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &appexcel.MissingRequiredColumnError{Columns: missing}
	}
	return colIndex, nil
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// classifyCell convierte el valor crudo de una celda en la variante etiquetada.
// Todo lo que parsea como decimal se marca Number; Text conserva el crudo.
func classifyCell(raw string) appexcel.CellValue {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return appexcel.EmptyCell()
	}
	if n, err := decimal.NewFromString(trimmed); err == nil {
		return appexcel.NumberCell(trimmed, n)
	}
	return appexcel.TextCell(trimmed)
}

// ── Render ────────────────────────────────────────────────────────────────────

// Render produce una hoja con el stock en el orden recibido.
func (c *ExcelizeCodec) Render(campusName string, stocks []*entity.Stock) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SanitizeSheetName(campusName)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}
	if err := writeSheet(f, sheet, stocks); err != nil {
		return nil, err
	}
	return toBytes(f)
}

// RenderAll produce una hoja por campus, en el orden recibido. Nombres de hoja
// repetidos tras sanitizar se desambiguan con un sufijo numérico.
func (c *ExcelizeCodec) RenderAll(groups []appexcel.CampusStocks) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	used := make(map[string]bool, len(groups))
	for _, g := range groups {
		sheet := uniqueSheetName(SanitizeSheetName(g.Campus.Name), used)
		used[sheet] = true
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("crear hoja %q: %w", sheet, err)
		}
		if err := writeSheet(f, sheet, g.Stocks); err != nil {
			return nil, err
		}
	}
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return nil, fmt.Errorf("eliminar hoja por defecto: %w", err)
	}
	return toBytes(f)
}

// RenderTemplate produce la planilla de formato: solo el header canónico.
func (c *ExcelizeCodec) RenderTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Stock Template"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}
	if err := writeHeader(f, sheet); err != nil {
		return nil, err
	}
	return toBytes(f)
}

// writeSheet escribe header + una fila por stock en la hoja dada.
func writeSheet(f *excelize.File, sheet string, stocks []*entity.Stock) error {
	if err := writeHeader(f, sheet); err != nil {
		return err
	}
	for i, s := range stocks {
		rowNum := i + 2
		cells := []interface{}{
			s.ItemName,
			s.Quantity,
			blankIfEmpty(s.Category),
			blankIfEmpty(s.Unit),
			priceCell(s.UnitPrice),
			blankIfEmpty(s.Condition),
			blankIfEmpty(s.Remarks),
		}
		for col, v := range cells {
			if v == nil {
				continue // opcional ausente: celda en blanco, nunca texto "None"
			}
			ref, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return fmt.Errorf("celda (%d,%d): %w", col+1, rowNum, err)
			}
			if err := f.SetCellValue(sheet, ref, v); err != nil {
				return fmt.Errorf("escribir celda %s: %w", ref, err)
			}
		}
	}
	return nil
}

// writeHeader escribe la fila 1 con los nombres de columna y el estilo de header.
func writeHeader(f *excelize.File, sheet string) error {
	for col, name := range appexcel.Columns {
		ref, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("celda header %d: %w", col+1, err)
		}
		if err := f.SetCellValue(sheet, ref, name); err != nil {
			return fmt.Errorf("escribir header %s: %w", ref, err)
		}
	}
	styleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("estilo header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(appexcel.Columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, styleID); err != nil {
		return fmt.Errorf("aplicar estilo header: %w", err)
	}
	return f.SetColWidth(sheet, "A", "G", 16)
}

func toBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// blankIfEmpty nil (celda en blanco) para strings opcionales vacíos.
func blankIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// priceCell nil si no hay precio registrado; número en caso contrario.
func priceCell(d decimal.Decimal) interface{} {
	if d.IsZero() {
		return nil
	}
	return d.InexactFloat64()
}

// ── Nombres de hoja ───────────────────────────────────────────────────────────

// SanitizeSheetName adapta un nombre de campus a las restricciones de xlsx:
// sin /\?*[]: y máximo 31 caracteres. Vacío tras limpiar → "Hoja".
func SanitizeSheetName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '?', '*', '[', ']', ':':
			return -1
		}
		return r
	}, name)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "Hoja"
	}
	runes := []rune(cleaned)
	if len(runes) > maxSheetName {
		cleaned = string(runes[:maxSheetName])
	}
	return cleaned
}

// uniqueSheetName desambigua colisiones post-sanitización con sufijo " (n)".
func uniqueSheetName(base string, used map[string]bool) string {
	if !used[base] {
		return base
	}
	for n := 2; ; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		runes := []rune(base)
		max := maxSheetName - len([]rune(suffix))
		if len(runes) > max {
			runes = runes[:max]
		}
		candidate := string(runes) + suffix
		if !used[candidate] {
			return candidate
		}
	}
}
