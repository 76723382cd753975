package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/application/usecase"
	"github.com/tu-usuario/controle-estoque-front/internal/domain/entity"
)

func TestReportBalance(t *testing.T) {
	api := newFakeStockAPI()
	uc := usecase.NewReportUseCase(newStore(t, api), nil)

	out := uc.Balance()

	assert.Equal(t, int64(73), out.TotalItems)
	assert.Equal(t, "306.7", out.TotalValue.String())
	assert.Equal(t, 3, out.ProductCount)
	assert.Equal(t, 3, out.CategoryCount)
	assert.Equal(t, 3, out.MovementCount)
	assert.Equal(t, "1", out.AverageProductsPerCategory.String())
}

func TestReportStock_BajoYAltoIndependientes(t *testing.T) {
	api := newFakeStockAPI()
	uc := usecase.NewReportUseCase(newStore(t, api), nil)

	out := uc.StockReport()

	require.Len(t, out.Low, 1)
	assert.Equal(t, "Atum", out.Low[0].Name)
	require.Len(t, out.High, 1)
	assert.Equal(t, "Açúcar", out.High[0].Name)
}

func TestReportByCategory_OrdenDelSnapshotYCerosIncluidos(t *testing.T) {
	api := newFakeStockAPI()
	uc := usecase.NewReportUseCase(newStore(t, api), nil)

	out := uc.ByCategory()

	require.Len(t, out, 3)
	assert.Equal(t, "Bebidas (pequeno - plastico)", out[0].CategoryName)
	assert.Equal(t, 1, out[0].DistinctProductCount)
	assert.Equal(t, int64(10), out[0].TotalItems)
	assert.Equal(t, "25", out[0].TotalValue.String())

	assert.Equal(t, "26.7", out[1].TotalValue.String())

	// Doces no tiene productos: fila presente con ceros.
	assert.Equal(t, 0, out[2].DistinctProductCount)
	assert.True(t, out[2].TotalValue.IsZero())
}

func TestReportRankings_AmbasParticionesPorDefecto(t *testing.T) {
	api := newFakeStockAPI()
	uc := usecase.NewReportUseCase(newStore(t, api), nil)

	out := uc.Rankings(dto.RankingRequest{})

	require.Len(t, out.Entries, 1)
	assert.Equal(t, 1, out.Entries[0].Rank)
	assert.Equal(t, "Água", out.Entries[0].ProductName)
	assert.Equal(t, int64(8), out.Entries[0].Total, "las dos entradas del producto se suman")

	require.Len(t, out.Exits, 1)
	assert.Equal(t, "Atum", out.Exits[0].ProductName)
	assert.Equal(t, int64(2), out.Exits[0].Total)
}

func TestReportRankings_TipoPedidoOmiteLaOtraParticion(t *testing.T) {
	api := newFakeStockAPI()
	uc := usecase.NewReportUseCase(newStore(t, api), nil)

	out := uc.Rankings(dto.RankingRequest{Type: entity.MovementTypeEntry})

	assert.NotNil(t, out.Entries)
	assert.Nil(t, out.Exits, "la partición no pedida viaja como null")
}

// fakePDF captura lo que el caso de uso le entrega al generador.
type fakePDF struct {
	balance dto.BalanceDTO
	rollups []dto.CategoryRollupDTO
}

func (f *fakePDF) GenerateBalancePDF(ctx context.Context, balance dto.BalanceDTO, rollups []dto.CategoryRollupDTO) ([]byte, error) {
	f.balance = balance
	f.rollups = rollups
	return []byte("%PDF-1.7"), nil
}

func TestReportBalancePDF_DelegaEnElGenerador(t *testing.T) {
	api := newFakeStockAPI()
	gen := &fakePDF{}
	uc := usecase.NewReportUseCase(newStore(t, api), gen)

	raw, err := uc.BalancePDF(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.7"), raw)
	assert.Equal(t, 3, gen.balance.ProductCount)
	assert.Len(t, gen.rollups, 3)
}

func TestReportBalancePDF_SinGeneradorConfigurado(t *testing.T) {
	api := newFakeStockAPI()
	uc := usecase.NewReportUseCase(newStore(t, api), nil)

	_, err := uc.BalancePDF(context.Background())
	assert.Error(t, err)
}
