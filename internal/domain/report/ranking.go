package report

import (
	"sort"

	"github.com/tu-usuario/controle-estoque-front/internal/domain/entity"
)

// RankingSize cantidad de posiciones del ranking de entradas/salidas.
const RankingSize = 10

// RankingParams alcance del ranking: tipo de movimiento obligatorio,
// categoría y término de búsqueda opcionales.
type RankingParams struct {
	MovementType string // entity.MovementTypeEntry | entity.MovementTypeExit
	CategoryID   *int64 // nil = todas las categorías
	SearchTerm   string // substring sobre el nombre del producto; vacío = todos
}

// RankingEntry una posición del ranking. Rank es puramente posicional
// (1 = mayor cantidad acumulada) dentro de la lista ya truncada.
type RankingEntry struct {
	Product entity.Product
	Total   int64 // suma de quantityMoved del tipo pedido
	Rank    int
}

// TopMoved agrupa los movimientos del tipo pedido por producto, suma las
// cantidades y devuelve las RankingSize mayores en orden descendente.
//
// Reglas:
//   - movimientos cuyo productId no resuelve se descartan sin error;
//   - el alcance de categoría y el término de búsqueda filtran por el
//     producto resuelto ANTES de agrupar;
//   - empates en el total preservan el orden de primera aparición durante
//     la agrupación (el mapa va acompañado de un slice de orden de
//     inserción, los mapas de Go no garantizan orden).
func TopMoved(movements []entity.Movement, ix ProductIndex, params RankingParams) []RankingEntry {
	totals := make(map[int64]int64)
	order := make([]int64, 0)

	for _, m := range movements {
		if m.MovementType != params.MovementType {
			continue
		}
		p, ok := ix.Resolve(m.ProductID)
		if !ok {
			continue // referencia colgante: producto eliminado después del movimiento
		}
		if params.CategoryID != nil && p.CategoryID != *params.CategoryID {
			continue
		}
		if params.SearchTerm != "" && !containsFold(p.Name, params.SearchTerm) {
			continue
		}
		if _, seen := totals[m.ProductID]; !seen {
			order = append(order, m.ProductID)
		}
		totals[m.ProductID] += m.QuantityMoved
	}

	entries := make([]RankingEntry, 0, len(order))
	for _, id := range order {
		p, _ := ix.Resolve(id)
		entries = append(entries, RankingEntry{Product: p, Total: totals[id]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total > entries[j].Total
	})

	if len(entries) > RankingSize {
		entries = entries[:RankingSize]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
