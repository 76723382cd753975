package report

import "github.com/tu-usuario/controle-estoque-front/internal/domain/entity"

// StockStatus clasificación del nivel de stock de un producto para los
// badges de la tabla y el reporte de reposición.
type StockStatus string

const (
	StockLow    StockStatus = "baixo"
	StockHigh   StockStatus = "alto"
	StockNormal StockStatus = "normal"
)

// IsLowStock indica stock por debajo del mínimo configurado.
// En el límite exacto (stock == mínimo) NO es bajo.
func IsLowStock(p entity.Product) bool {
	return p.QuantityInStock < p.MinQuantity
}

// IsHighStock indica stock por encima del máximo configurado.
// En el límite exacto (stock == máximo) NO es alto.
func IsHighStock(p entity.Product) bool {
	return p.QuantityInStock > p.MaxQuantity
}

// Classify devuelve el estado para presentación. Los dos predicados se
// evalúan de forma independiente: si el backend aceptó max < min un producto
// puede cumplir ambos, y en ese caso gana "baixo" (prioridad del badge en la
// UI original).
func Classify(p entity.Product) StockStatus {
	switch {
	case IsLowStock(p):
		return StockLow
	case IsHighStock(p):
		return StockHigh
	default:
		return StockNormal
	}
}
