// Package report contiene el motor de vistas derivadas del front-end de
// estoque: índices de búsqueda, filtrado multi-campo, ordenamiento estable,
// clasificación de stock, agregaciones financieras y rankings top-N.
//
// Todas las funciones son puras: reciben el snapshot en memoria (productos,
// categorías, movimientos) más los parámetros de la vista y devuelven
// estructuras nuevas sin mutar la entrada. Las referencias colgantes
// (categoryId/productId sin resolver) nunca producen error: se degradan a
// centinelas ("N/A", exclusión) según lo que cada vista necesita.
package report

import (
	"fmt"

	"github.com/tu-usuario/controle-estoque-front/internal/domain/entity"
)

// Centinelas de presentación para referencias que no resuelven en el snapshot.
const (
	CategoryNotAvailable = "N/A"
	ProductNotFound      = "Produto não encontrado"
)

// CategoryIndex resuelve una categoría por id en tiempo constante.
// Se construye una vez por snapshot y se comparte entre filtro, orden y DTOs.
type CategoryIndex map[int64]entity.Category

// NewCategoryIndex construye el índice id→Category. Ante ids duplicados
// (no debería ocurrir: el backend garantiza unicidad) gana la última entrada.
func NewCategoryIndex(categories []entity.Category) CategoryIndex {
	ix := make(CategoryIndex, len(categories))
	for _, c := range categories {
		ix[c.ID] = c
	}
	return ix
}

// Resolve busca la categoría; el segundo valor indica si existe en el snapshot.
func (ix CategoryIndex) Resolve(id int64) (entity.Category, bool) {
	c, ok := ix[id]
	return c, ok
}

// DisplayName devuelve la forma corta "Nombre (tamaño)" de la categoría
// referenciada, o "N/A" si el id no resuelve.
func (ix CategoryIndex) DisplayName(id int64) string {
	c, ok := ix[id]
	if !ok {
		return CategoryNotAvailable
	}
	return DisplayName(c)
}

// DisplayName forma corta usada en la tabla de productos: "Bebidas (pequeno)".
func DisplayName(c entity.Category) string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Size)
}

// DisplayNameFull forma larga usada en selectores y reportes:
// "Bebidas (pequeno - plastico)".
func DisplayNameFull(c entity.Category) string {
	return fmt.Sprintf("%s (%s - %s)", c.Name, c.Size, c.Packaging)
}

// ProductIndex resuelve un producto por id. Lo usan la vista de movimientos
// (nombre del producto) y el motor de rankings (descartar colgantes).
type ProductIndex map[int64]entity.Product

// NewProductIndex construye el índice id→Product.
func NewProductIndex(products []entity.Product) ProductIndex {
	ix := make(ProductIndex, len(products))
	for _, p := range products {
		ix[p.ID] = p
	}
	return ix
}

// Resolve busca el producto; el segundo valor indica si existe en el snapshot.
func (ix ProductIndex) Resolve(id int64) (entity.Product, bool) {
	p, ok := ix[id]
	return p, ok
}

// DisplayName devuelve el nombre del producto o el centinela de la vista de
// movimientos si el id quedó colgante.
func (ix ProductIndex) DisplayName(id int64) string {
	p, ok := ix[id]
	if !ok {
		return ProductNotFound
	}
	return p.Name
}
