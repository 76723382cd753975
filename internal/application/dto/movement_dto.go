package dto

import "time"

// MovementListRequest parámetros de GET /api/movements.
type MovementListRequest struct {
	Search  string `query:"search"`  // substring sobre el nombre del producto resuelto
	SortDir string `query:"sortDir"` // asc|desc por fecha; default desc (recientes primero)
}

// CreateMovementRequest cuerpo de POST /api/movements.
type CreateMovementRequest struct {
	ProductID     int64  `json:"productId"`
	MovementType  string `json:"movementType"` // ENTRY|EXIT
	QuantityMoved int64  `json:"quantityMoved"`
}

// MovementRowDTO fila del historial de movimientos.
type MovementRowDTO struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"productId"`
	ProductName   string    `json:"productName"` // "Produto não encontrado" si quedó colgante
	MovementType  string    `json:"movementType"`
	QuantityMoved int64     `json:"quantityMoved"`
	SignedDisplay string    `json:"signedDisplay"` // "+5" entrada, "-5" salida
	MovementDate  time.Time `json:"movementDate"`
}

// MovementListDTO respuesta de GET /api/movements.
type MovementListDTO struct {
	Items        []MovementRowDTO `json:"items"`
	ShowingCount int              `json:"showingCount"`
	TotalCount   int              `json:"totalCount"`
}
