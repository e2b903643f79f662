package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Condiciones válidas para Stock.Condition.
const (
	ConditionGood        = "Good"
	ConditionDamaged     = "Damaged"
	ConditionNeedsRepair = "Needs Repair"
)

// ValidCondition verifica que el valor pertenezca al enum de condiciones.
func ValidCondition(s string) bool {
	switch s {
	case ConditionGood, ConditionDamaged, ConditionNeedsRepair:
		return true
	}
	return false
}

// Stock representa un ítem de inventario perteneciente a exactamente un Campus.
// Quantity nunca es negativa; UnitPrice nunca es negativa cuando está presente.
type Stock struct {
	ID        string
	CampusID  string
	ItemName  string
	Category  string
	Quantity  int
	Unit      string // pcs, kg, litro, etc.
	UnitPrice decimal.Decimal
	Condition string // Good / Damaged / Needs Repair (vacío = sin registrar)
	Remarks   string
	AddedBy   string // username de quien creó el registro
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalValue devuelve quantity * unit_price (valor materializado en reportes).
func (s *Stock) TotalValue() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
