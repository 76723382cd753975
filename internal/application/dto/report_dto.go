package dto

import "github.com/shopspring/decimal"

// BalanceDTO reporte de balance: totales del snapshot completo.
type BalanceDTO struct {
	TotalItems                 int64           `json:"totalItems"`
	TotalValue                 decimal.Decimal `json:"totalValue"` // redondeado a 2 para mostrar
	ProductCount               int             `json:"productCount"`
	CategoryCount              int             `json:"categoryCount"`
	MovementCount              int             `json:"movementCount"`
	AverageProductsPerCategory decimal.Decimal `json:"averageProductsPerCategory"`
}

// StockReportDTO productos fuera de rango: por debajo del mínimo o por
// encima del máximo.
type StockReportDTO struct {
	Low  []ProductRowDTO `json:"low"`
	High []ProductRowDTO `json:"high"`
}

// CategoryRollupDTO agregado por categoría del reporte "por categoría".
// Las categorías sin productos aparecen con ceros.
type CategoryRollupDTO struct {
	CategoryID           int64           `json:"categoryId"`
	CategoryName         string          `json:"categoryName"` // forma larga
	DistinctProductCount int             `json:"distinctProductCount"`
	TotalItems           int64           `json:"totalItems"`
	TotalValue           decimal.Decimal `json:"totalValue"` // redondeado a 2 para mostrar
}

// RankingRequest parámetros de GET /api/reports/rankings.
type RankingRequest struct {
	Type       string `query:"type"`       // ENTRY|EXIT; vacío = ambos
	CategoryID *int64 `query:"categoryId"` // alcance opcional
	Search     string `query:"search"`     // substring sobre el nombre del producto
}

// RankingEntryDTO una posición del top-10.
type RankingEntryDTO struct {
	Rank        int    `json:"rank"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Total       int64  `json:"total"`
}

// RankingsDTO respuesta de GET /api/reports/rankings. Una lista vacía ([])
// es un resultado válido: la vista muestra la sección vacía, no un error.
// La partición no pedida por ?type= viaja como null.
type RankingsDTO struct {
	Entries []RankingEntryDTO `json:"entries"`
	Exits   []RankingEntryDTO `json:"exits"`
}
