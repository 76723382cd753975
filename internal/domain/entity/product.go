package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario tal como lo entrega el
// backend. El servicio nunca muta un Product: solo deriva vistas sobre él.
//
// CategoryID puede referenciar una categoría ausente del snapshot cargado;
// los consumidores deben resolverla vía report.CategoryIndex y degradar a
// "N/A" cuando no exista.
type Product struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Unit            string          `json:"unit"` // UN, KG, L, ...
	QuantityInStock int64           `json:"quantityInStock"`
	MinQuantity     int64           `json:"minQuantity"` // umbral de reposición
	MaxQuantity     int64           `json:"maxQuantity"` // umbral de sobrestock
	CategoryID      int64           `json:"categoryId"`
}

// TotalValue devuelve unitPrice * quantityInStock sin redondear.
// El redondeo a 2 decimales es responsabilidad de la capa de presentación.
func (p Product) TotalValue() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(p.QuantityInStock))
}
