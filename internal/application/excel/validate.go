package excel

import (
	"strings"

	"github.com/jhoicas/campus-stock-api/internal/domain/entity"
)

// buildCandidate valida una RawRow y construye el Stock candidato, todavía
// sin identidad ni campus asignados.
// La segunda salida es la razón de rechazo; vacía si la fila es válida.
// La validación ocurre aquí (reconciliación) y no en Parse para que una fila
// malformada nunca aborte el lote completo.
func buildCandidate(raw RawRow) (*entity.Stock, string) {
	s := &entity.Stock{}

	name := strings.TrimSpace(raw.Cell(ColItemName).Text)
	if name == "" {
		return nil, "item_name vacío"
	}
	s.ItemName = name

	qty := raw.Cell(ColQuantity)
	if qty.Kind != CellNumber {
		return nil, "quantity no es numérico"
	}
	if !qty.Number.IsInteger() {
		return nil, "quantity debe ser un entero"
	}
	if qty.Number.IsNegative() {
		return nil, "quantity no puede ser negativo"
	}
	s.Quantity = int(qty.Number.IntPart())

	if price := raw.Cell(ColUnitPrice); price.Kind != CellEmpty {
		if price.Kind != CellNumber {
			return nil, "unit_price no es numérico"
		}
		if price.Number.IsNegative() {
			return nil, "unit_price no puede ser negativo"
		}
		s.UnitPrice = price.Number
	}

	if cond := raw.Cell(ColCondition); cond.Kind != CellEmpty {
		value := strings.TrimSpace(cond.Text)
		if !entity.ValidCondition(value) {
			return nil, "condition desconocida: " + value
		}
		s.Condition = value
	}

	s.Category = strings.TrimSpace(raw.Cell(ColCategory).Text)
	s.Unit = strings.TrimSpace(raw.Cell(ColUnit).Text)
	s.Remarks = strings.TrimSpace(raw.Cell(ColRemarks).Text)

	return s, ""
}
