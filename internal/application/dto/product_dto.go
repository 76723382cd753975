package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// ProductListRequest parámetros de GET /api/products. Todos opcionales:
// sin parámetros devuelve el snapshot completo en su orden de llegada.
type ProductListRequest struct {
	Search     string `query:"search"`     // substring multi-campo, sin acentos ni mayúsculas
	CategoryID *int64 `query:"categoryId"` // igualdad exacta, en AND con Search
	SortKey    string `query:"sortKey"`    // name|price|unit|quantity|min|max|category|totalValue
	SortDir    string `query:"sortDir"`    // asc|desc (default asc)
}

// ── Cuerpos de creación/edición (pass-through al backend) ─────────────────────

// CreateProductRequest cuerpo de POST /api/products. La validación de fondo
// (nombre 2–100, precio >= 0) la hace el backend dueño de los datos; aquí
// solo se exige la forma bien tipada.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Unit            string          `json:"unit"`
	QuantityInStock int64           `json:"quantityInStock"`
	MinQuantity     int64           `json:"minQuantity"`
	MaxQuantity     int64           `json:"maxQuantity"`
	CategoryID      int64           `json:"categoryId"`
}

// UpdateProductRequest cuerpo de PUT /api/products/:id.
type UpdateProductRequest = CreateProductRequest

// ── Respuestas ────────────────────────────────────────────────────────────────

// ProductRowDTO una fila de la tabla de productos con sus campos derivados.
type ProductRowDTO struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Unit            string          `json:"unit"`
	QuantityInStock int64           `json:"quantityInStock"`
	MinQuantity     int64           `json:"minQuantity"`
	MaxQuantity     int64           `json:"maxQuantity"`
	CategoryID      int64           `json:"categoryId"`
	CategoryName    string          `json:"categoryName"` // forma corta o "N/A"
	TotalValue      decimal.Decimal `json:"totalValue"`   // redondeado a 2 para mostrar
	StockStatus     string          `json:"stockStatus"`  // baixo|alto|normal
	LowStock        bool            `json:"lowStock"`
	HighStock       bool            `json:"highStock"`
}

// ProductListDTO respuesta de GET /api/products: la lista filtrada+ordenada
// más los contadores "Mostrando X de Y" y los totales de la vista.
type ProductListDTO struct {
	Items        []ProductRowDTO `json:"items"`
	ShowingCount int             `json:"showingCount"` // tras filtro
	TotalCount   int             `json:"totalCount"`   // snapshot completo
	TotalItems   int64           `json:"totalItems"`   // Σ stock de los filtrados
	TotalValue   decimal.Decimal `json:"totalValue"`   // Σ precio*stock, redondeado a 2
}
