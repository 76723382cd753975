package report_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/controle-estoque-front/internal/domain/entity"
	"github.com/tu-usuario/controle-estoque-front/internal/domain/report"
)

// Escenario B: dos entradas del mismo producto se agrupan y suman.
func TestTopMoved_AgrupaYSuma(t *testing.T) {
	ix := report.NewProductIndex(testProducts())

	entradas := report.TopMoved(testMovements(), ix, report.RankingParams{
		MovementType: entity.MovementTypeEntry,
	})

	require.Len(t, entradas, 2) // Suco (9) y Água (5+3); el colgante se descarta
	assert.Equal(t, "Suco de Uva", entradas[0].Product.Name)
	assert.Equal(t, int64(9), entradas[0].Total)
	assert.Equal(t, 1, entradas[0].Rank)
	assert.Equal(t, "Água", entradas[1].Product.Name)
	assert.Equal(t, int64(8), entradas[1].Total)
	assert.Equal(t, 2, entradas[1].Rank)
}

// Escenario C: el movimiento con productId 77 (eliminado) no aparece en
// ningún ranking y no provoca error, aunque su cantidad sea la mayor.
func TestTopMoved_DescartaColgantes(t *testing.T) {
	ix := report.NewProductIndex(testProducts())

	entradas := report.TopMoved(testMovements(), ix, report.RankingParams{
		MovementType: entity.MovementTypeEntry,
	})

	for _, e := range entradas {
		assert.NotEqual(t, int64(77), e.Product.ID)
	}
}

func TestTopMoved_ParticionaPorTipo(t *testing.T) {
	ix := report.NewProductIndex(testProducts())

	salidas := report.TopMoved(testMovements(), ix, report.RankingParams{
		MovementType: entity.MovementTypeExit,
	})

	require.Len(t, salidas, 1)
	assert.Equal(t, "Atum", salidas[0].Product.Name)
	assert.Equal(t, int64(2), salidas[0].Total)
}

func TestTopMoved_AlcanceDeCategoriaYBusqueda(t *testing.T) {
	ix := report.NewProductIndex(testProducts())

	// solo Bebidas (categoría 1)
	bebidas := report.TopMoved(testMovements(), ix, report.RankingParams{
		MovementType: entity.MovementTypeEntry,
		CategoryID:   i64(1),
	})
	require.Len(t, bebidas, 2)

	// alcance + búsqueda por nombre, con plegado de acentos
	agua := report.TopMoved(testMovements(), ix, report.RankingParams{
		MovementType: entity.MovementTypeEntry,
		CategoryID:   i64(1),
		SearchTerm:   "agu",
	})
	require.Len(t, agua, 1)
	assert.Equal(t, "Água", agua[0].Product.Name)

	// alcance sin movimientos: vacío válido, no error
	doces := report.TopMoved(testMovements(), ix, report.RankingParams{
		MovementType: entity.MovementTypeEntry,
		CategoryID:   i64(3),
	})
	assert.Empty(t, doces)
}

// Cota del ranking: nunca más de 10 posiciones, orden descendente, y los
// empates preservan el orden de primera aparición en la agrupación.
func TestTopMoved_TruncaEnDiezYDesempataEstable(t *testing.T) {
	products := make([]entity.Product, 0, 15)
	movements := make([]entity.Movement, 0, 15)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 15; i++ {
		products = append(products, entity.Product{ID: int64(i), Name: fmt.Sprintf("Produto %02d", i)})
		// todos con la misma cantidad: el orden final es el de aparición
		movements = append(movements, entity.Movement{
			ID: int64(i), ProductID: int64(i),
			MovementType: entity.MovementTypeEntry, QuantityMoved: 7,
			MovementDate: base.Add(time.Duration(i) * time.Minute),
		})
	}
	ix := report.NewProductIndex(products)

	got := report.TopMoved(movements, ix, report.RankingParams{MovementType: entity.MovementTypeEntry})

	require.Len(t, got, report.RankingSize)
	for i, e := range got {
		assert.Equal(t, int64(i+1), e.Product.ID, "empate total: gana el orden de primera aparición")
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestTopMoved_SinMovimientosEsVacioValido(t *testing.T) {
	ix := report.NewProductIndex(testProducts())

	got := report.TopMoved(nil, ix, report.RankingParams{MovementType: entity.MovementTypeEntry})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
