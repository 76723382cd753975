package report

import (
	"sort"
	"strings"

	"github.com/tu-usuario/controle-estoque-front/internal/domain/entity"
)

// SortKey columna activa de ordenamiento en la tabla de productos.
// Exactamente una clave está activa a la vez.
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByPrice      SortKey = "price"
	SortByUnit       SortKey = "unit"
	SortByQuantity   SortKey = "quantity"
	SortByMin        SortKey = "min"
	SortByMax        SortKey = "max"
	SortByCategory   SortKey = "category"   // nombre visible vía índice
	SortByTotalValue SortKey = "totalValue" // clave derivada: precio * stock
)

// Direction sentido del ordenamiento.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort parámetro de ordenamiento de la vista (clave + sentido).
type Sort struct {
	Key SortKey
	Dir Direction
}

// NextSort implementa el toggle de los encabezados de la tabla: hacer click
// en la clave activa invierte el sentido; click en otra clave la activa en asc.
func NextSort(current Sort, clicked SortKey) Sort {
	if current.Key == clicked {
		if current.Dir == Asc {
			return Sort{Key: clicked, Dir: Desc}
		}
		return Sort{Key: clicked, Dir: Asc}
	}
	return Sort{Key: clicked, Dir: Asc}
}

// SortProducts devuelve una copia de products ordenada por s. El orden es
// estable: claves iguales preservan el orden relativo de entrada, por eso el
// comparador devuelve "igual" en vez de desempatar arbitrariamente.
// Strings se comparan en minúsculas; números numéricamente.
func SortProducts(products []entity.Product, ix CategoryIndex, s Sort) []entity.Product {
	out := make([]entity.Product, len(products))
	copy(out, products)

	cmp := productComparator(s.Key, ix)
	if cmp == nil {
		return out // clave desconocida: se deja el orden de entrada
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if s.Dir == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// productComparator devuelve -1/0/1 para la clave dada, o nil si no existe.
func productComparator(key SortKey, ix CategoryIndex) func(a, b entity.Product) int {
	switch key {
	case SortByName:
		return func(a, b entity.Product) int { return compareFold(a.Name, b.Name) }
	case SortByUnit:
		return func(a, b entity.Product) int { return compareFold(a.Unit, b.Unit) }
	case SortByCategory:
		return func(a, b entity.Product) int {
			return compareFold(ix.DisplayName(a.CategoryID), ix.DisplayName(b.CategoryID))
		}
	case SortByPrice:
		return func(a, b entity.Product) int { return a.UnitPrice.Cmp(b.UnitPrice) }
	case SortByQuantity:
		return func(a, b entity.Product) int { return compareInt(a.QuantityInStock, b.QuantityInStock) }
	case SortByMin:
		return func(a, b entity.Product) int { return compareInt(a.MinQuantity, b.MinQuantity) }
	case SortByMax:
		return func(a, b entity.Product) int { return compareInt(a.MaxQuantity, b.MaxQuantity) }
	case SortByTotalValue:
		return func(a, b entity.Product) int { return a.TotalValue().Cmp(b.TotalValue()) }
	default:
		return nil
	}
}

// SortMovementsByDate devuelve una copia ordenada por fecha; la vista de
// movimientos usa Desc por defecto (más recientes primero). Estable ante
// fechas iguales.
func SortMovementsByDate(movements []entity.Movement, dir Direction) []entity.Movement {
	out := make([]entity.Movement, len(movements))
	copy(out, movements)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return out[i].MovementDate.After(out[j].MovementDate)
		}
		return out[i].MovementDate.Before(out[j].MovementDate)
	})
	return out
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
