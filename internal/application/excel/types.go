// Package excel contiene el núcleo de importación/exportación de planillas:
// tipos de fila cruda, validación por fila y los casos de uso de
// reconciliación (upload) y exportación (download).
package excel

import "github.com/shopspring/decimal"

// Nombres de columna reconocidos, en el orden fijo de exportación.
const (
	ColItemName  = "item_name"
	ColQuantity  = "quantity"
	ColCategory  = "category"
	ColUnit      = "unit"
	ColUnitPrice = "unit_price"
	ColCondition = "condition"
	ColRemarks   = "remarks"
)

// Columns orden canónico de las siete columnas (header de toda planilla).
var Columns = []string{ColItemName, ColQuantity, ColCategory, ColUnit, ColUnitPrice, ColCondition, ColRemarks}

// RequiredColumns columnas que deben existir en el header de un upload.
var RequiredColumns = []string{ColItemName, ColQuantity}

// CellKind clase de una celda ya clasificada en el borde del Parse.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// CellValue variante etiquetada para valores de celda. Text conserva siempre
// el texto crudo; Number solo es válido cuando Kind == CellNumber.
type CellValue struct {
	Kind   CellKind
	Text   string
	Number decimal.Decimal
}

// EmptyCell celda vacía.
func EmptyCell() CellValue { return CellValue{Kind: CellEmpty} }

// TextCell celda de texto.
func TextCell(s string) CellValue { return CellValue{Kind: CellText, Text: s} }

// NumberCell celda numérica (conserva el texto original para columnas de texto).
func NumberCell(raw string, n decimal.Decimal) CellValue {
	return CellValue{Kind: CellNumber, Text: raw, Number: n}
}

// RawRow una fila de datos sin validar, con su número de fila 1-based en la
// hoja de origen (el header es la fila 1, los datos empiezan en la 2).
type RawRow struct {
	Number int
	Cells  map[string]CellValue // clave = nombre canónico de columna
}

// Cell devuelve la celda de la columna o una celda vacía si no vino en el archivo.
func (r RawRow) Cell(column string) CellValue {
	if c, ok := r.Cells[column]; ok {
		return c
	}
	return EmptyCell()
}

// RowError error no fatal de una fila: se acumula en el reporte sin abortar el lote.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportReport resumen de una importación: siempre se cumple
// Inserted + Updated + len(Errors) == TotalRows.
type ImportReport struct {
	CampusID   string     `json:"campus_id"`
	CampusName string     `json:"campus_name"`
	TotalRows  int        `json:"total_rows"`
	Inserted   int        `json:"inserted"`
	Updated    int        `json:"updated"`
	Errors     []RowError `json:"errors"`
}
