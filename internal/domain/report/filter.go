package report

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/controle-estoque-front/internal/domain/entity"
)

// containsFold indica si s contiene term sin distinguir mayúsculas ni
// diacríticos: "agu" matchea "Água". El plegado de acentos importa en un
// catálogo en portugués donde nadie escribe "açúcar" con cedilla en el
// buscador. Ver decisión en DESIGN.md.
func containsFold(s, term string) bool {
	return strings.Contains(normalizeSearch(s), normalizeSearch(term))
}

// normalizeSearch pasa a minúsculas y elimina marcas diacríticas
// (NFD → quitar categoría Mn → NFC). La cadena de transformers se construye
// por llamada: transform.Chain mantiene buffers internos y no es segura
// para uso concurrente.
func normalizeSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// FilterProducts devuelve los productos que matchean el término de búsqueda
// y, si selectedCategory no es nil, pertenecen exactamente a esa categoría
// (semántica AND). Término vacío matchea todo; el orden de entrada se
// preserva y la entrada nunca se muta.
//
// Campos consultados por el término: nombre, nombre visible de la categoría
// resuelta, unidad y las formas string de precio unitario, stock, mínimo y
// máximo (así se comporta la búsqueda libre de la tabla de productos).
func FilterProducts(products []entity.Product, ix CategoryIndex, term string, selectedCategory *int64) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if selectedCategory != nil && p.CategoryID != *selectedCategory {
			continue
		}
		if term != "" && !productMatches(p, ix, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func productMatches(p entity.Product, ix CategoryIndex, term string) bool {
	fields := []string{
		p.Name,
		ix.DisplayName(p.CategoryID),
		p.Unit,
		p.UnitPrice.String(),
		strconv.FormatInt(p.QuantityInStock, 10),
		strconv.FormatInt(p.MinQuantity, 10),
		strconv.FormatInt(p.MaxQuantity, 10),
	}
	for _, f := range fields {
		if containsFold(f, term) {
			return true
		}
	}
	return false
}

// FilterCategories devuelve las categorías cuyo nombre, tamaño o embalaje
// contiene el término. Término vacío matchea todo.
func FilterCategories(categories []entity.Category, term string) []entity.Category {
	out := make([]entity.Category, 0, len(categories))
	for _, c := range categories {
		if term != "" &&
			!containsFold(c.Name, term) &&
			!containsFold(c.Size, term) &&
			!containsFold(c.Packaging, term) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterMovements devuelve los movimientos cuyo producto resuelto matchea el
// término. Solo se consulta el nombre del producto; un movimiento colgante
// expone el centinela "Produto não encontrado" y también es buscable por él.
func FilterMovements(movements []entity.Movement, ix ProductIndex, term string) []entity.Movement {
	out := make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		if term != "" && !containsFold(ix.DisplayName(m.ProductID), term) {
			continue
		}
		out = append(out, m)
	}
	return out
}
