package dto

import "github.com/shopspring/decimal"

// CampusStatsResponse resumen de un campus para el dashboard.
type CampusStatsResponse struct {
	CampusID   string          `json:"campus_id"`
	CampusName string          `json:"campus_name"`
	CampusCode string          `json:"campus_code"`
	ItemCount  int             `json:"item_count"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// DashboardResponse resumen global: totales y desglose por campus.
type DashboardResponse struct {
	Campuses   []CampusStatsResponse `json:"campuses"`
	TotalItems int                   `json:"total_items"`
	TotalValue decimal.Decimal       `json:"total_value"`
}
