package entity

import "time"

// Campus representa una sede o campus que posee sus propios registros de stock.
type Campus struct {
	ID        string
	Name      string
	Code      string // código corto único (ej. MAIN, NORTE)
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
