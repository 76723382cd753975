package report

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/controle-estoque-front/internal/domain/entity"
)

// TotalItems suma las unidades en stock de todos los productos.
func TotalItems(products []entity.Product) int64 {
	var total int64
	for _, p := range products {
		total += p.QuantityInStock
	}
	return total
}

// TotalValue suma precio*stock de todos los productos. La acumulación usa
// valores sin redondear; redondear cada término antes de sumar acumularía
// error de centavos en inventarios grandes.
func TotalValue(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.TotalValue())
	}
	return total
}

// CategoryRollup agregado por categoría del reporte "por categoría".
type CategoryRollup struct {
	Category             entity.Category
	DistinctProductCount int
	TotalItems           int64
	TotalValue           decimal.Decimal
}

// RollupByCategory calcula el agregado de cada categoría del snapshot, en el
// orden de entrada de las categorías. Una categoría sin productos reporta
// ceros, no se omite: el reporte muestra la fila vacía.
//
// Productos con categoryId colgante no aparecen en ningún rollup (no hay
// fila de categoría que los contenga); sí cuentan en los totales globales.
func RollupByCategory(products []entity.Product, categories []entity.Category) []CategoryRollup {
	rollups := make([]CategoryRollup, 0, len(categories))
	for _, c := range categories {
		r := CategoryRollup{Category: c, TotalValue: decimal.Zero}
		for _, p := range products {
			if p.CategoryID != c.ID {
				continue
			}
			r.DistinctProductCount++
			r.TotalItems += p.QuantityInStock
			r.TotalValue = r.TotalValue.Add(p.TotalValue())
		}
		rollups = append(rollups, r)
	}
	return rollups
}

// AverageProductsPerCategory promedio de productos por categoría.
// Con cero categorías devuelve cero (guardia de división).
func AverageProductsPerCategory(productCount, categoryCount int) decimal.Decimal {
	if categoryCount == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(productCount)).
		Div(decimal.NewFromInt(int64(categoryCount)))
}
