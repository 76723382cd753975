package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/application/ports"
	"github.com/tu-usuario/controle-estoque-front/internal/domain/entity"
	"github.com/tu-usuario/controle-estoque-front/internal/domain/report"
)

// ReportUseCase reportes derivados: balance, stock fuera de rango, agregado
// por categoría y rankings de entradas/salidas. Todos se computan sobre el
// snapshot completo (a diferencia de Overview, que reporta lo filtrado).
type ReportUseCase struct {
	store *SnapshotStore
	pdf   ports.BalancePDFGenerator
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si la
// exportación no está cableada (los endpoints JSON siguen funcionando).
func NewReportUseCase(store *SnapshotStore, pdf ports.BalancePDFGenerator) *ReportUseCase {
	return &ReportUseCase{store: store, pdf: pdf}
}

// Balance totales financieros y contadores globales del snapshot.
func (uc *ReportUseCase) Balance() dto.BalanceDTO {
	snap := uc.store.Current()
	return dto.BalanceDTO{
		TotalItems:    report.TotalItems(snap.Products),
		TotalValue:    report.TotalValue(snap.Products).Round(displayMoneyPlaces),
		ProductCount:  len(snap.Products),
		CategoryCount: len(snap.Categories),
		MovementCount: len(snap.Movements),
		AverageProductsPerCategory: report.
			AverageProductsPerCategory(len(snap.Products), len(snap.Categories)).
			Round(displayMoneyPlaces),
	}
}

// StockReport productos bajo el mínimo y sobre el máximo. Un producto con
// umbrales invertidos (max < min) puede aparecer en ambas listas.
func (uc *ReportUseCase) StockReport() dto.StockReportDTO {
	snap := uc.store.Current()
	ix := report.NewCategoryIndex(snap.Categories)

	low := make([]dto.ProductRowDTO, 0)
	high := make([]dto.ProductRowDTO, 0)
	for _, p := range snap.Products {
		if report.IsLowStock(p) {
			low = append(low, toProductRow(p, ix))
		}
		if report.IsHighStock(p) {
			high = append(high, toProductRow(p, ix))
		}
	}
	return dto.StockReportDTO{Low: low, High: high}
}

// ByCategory agregado por categoría, en el orden del snapshot de categorías.
func (uc *ReportUseCase) ByCategory() []dto.CategoryRollupDTO {
	snap := uc.store.Current()

	rollups := report.RollupByCategory(snap.Products, snap.Categories)
	out := make([]dto.CategoryRollupDTO, 0, len(rollups))
	for _, r := range rollups {
		out = append(out, dto.CategoryRollupDTO{
			CategoryID:           r.Category.ID,
			CategoryName:         report.DisplayNameFull(r.Category),
			DistinctProductCount: r.DistinctProductCount,
			TotalItems:           r.TotalItems,
			TotalValue:           r.TotalValue.Round(displayMoneyPlaces),
		})
	}
	return out
}

// Rankings top-10 de entradas y/o salidas según el tipo pedido; con tipo
// vacío computa ambas particiones.
func (uc *ReportUseCase) Rankings(in dto.RankingRequest) dto.RankingsDTO {
	snap := uc.store.Current()
	ix := report.NewProductIndex(snap.Products)

	var out dto.RankingsDTO
	if in.Type == "" || in.Type == entity.MovementTypeEntry {
		out.Entries = toRankingEntries(report.TopMoved(snap.Movements, ix, report.RankingParams{
			MovementType: entity.MovementTypeEntry,
			CategoryID:   in.CategoryID,
			SearchTerm:   in.Search,
		}))
	}
	if in.Type == "" || in.Type == entity.MovementTypeExit {
		out.Exits = toRankingEntries(report.TopMoved(snap.Movements, ix, report.RankingParams{
			MovementType: entity.MovementTypeExit,
			CategoryID:   in.CategoryID,
			SearchTerm:   in.Search,
		}))
	}
	return out
}

// BalancePDF exporta el balance y los rollups por categoría como PDF.
func (uc *ReportUseCase) BalancePDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("reporte PDF: generador no configurado")
	}
	return uc.pdf.GenerateBalancePDF(ctx, uc.Balance(), uc.ByCategory())
}
